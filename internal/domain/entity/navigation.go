package entity

// UnknownRegionName is reported when the target is not tied to a service zone.
const UnknownRegionName = "Unknown"

// NavigationMethod identifies the strategy that produced a NavigationTarget.
type NavigationMethod string

const (
	NavigationMethodShippingAddressRegion    NavigationMethod = "shipping_address_region"
	NavigationMethodShippingCoordinatesMatch NavigationMethod = "shipping_coordinates_match"
	NavigationMethodAddressExtraction        NavigationMethod = "address_extraction"
	NavigationMethodClosestRegion            NavigationMethod = "closest_region"
	NavigationMethodFallbackOriginal         NavigationMethod = "fallback_original"
)

// NavigationTarget is the coordinate handed to an external map application.
type NavigationTarget struct {
	Latitude       float64          `json:"latitude"`
	Longitude      float64          `json:"longitude"`
	RegionName     string           `json:"regionName"`
	Method         NavigationMethod `json:"method"`
	DistanceMeters *float64         `json:"distanceMeters,omitempty"`
}

// Coordinates returns the target position.
func (t *NavigationTarget) Coordinates() Coordinates {
	return Coordinates{Latitude: t.Latitude, Longitude: t.Longitude}
}
