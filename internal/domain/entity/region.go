package entity

import (
	"github.com/paulmach/orb"
)

// DeliveryRegion is a named service zone with a reference centre.
// RadiusMeters is carried as reference data only; region matching uses centre distance.
type DeliveryRegion struct {
	Name         string
	Center       orb.Point
	RadiusMeters float64
}

// Latitude returns the latitude of the region centre.
func (r DeliveryRegion) Latitude() float64 {
	return r.Center.Lat()
}

// Longitude returns the longitude of the region centre.
func (r DeliveryRegion) Longitude() float64 {
	return r.Center.Lon()
}

// DefaultDeliveryRegions returns the Casablanca service zones in lookup order.
func DefaultDeliveryRegions() []DeliveryRegion {
	return []DeliveryRegion{
		{Name: "Hay Oulfa", Center: orb.Point{-7.6532, 33.5423}, RadiusMeters: 2000},
		{Name: "Hay Hassani", Center: orb.Point{-7.6789, 33.5156}, RadiusMeters: 2000},
		{Name: "Lissasfa", Center: orb.Point{-7.6123, 33.5234}, RadiusMeters: 2000},
		{Name: "Almaz", Center: orb.Point{-7.6234, 33.5378}, RadiusMeters: 2000},
		{Name: "Hay Laymoun", Center: orb.Point{-7.6445, 33.5512}, RadiusMeters: 2000},
		{Name: "Ciel", Center: orb.Point{-7.6456, 33.5289}, RadiusMeters: 2000},
		{Name: "Nassim", Center: orb.Point{-7.6298, 33.5334}, RadiusMeters: 2000},
		{Name: "Sidi Maarouf", Center: orb.Point{-7.6234, 33.5167}, RadiusMeters: 2000},
		{Name: "CFC", Center: orb.Point{-7.6567, 33.5445}, RadiusMeters: 2000},
	}
}
