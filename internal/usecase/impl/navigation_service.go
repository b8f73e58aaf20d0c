package impl

import (
	"log/slog"
	"math"
	"strings"

	"courier/config"
	"courier/internal/domain/entity"
	"courier/internal/usecase"

	"github.com/paulmach/orb"
)

const (
	// earthRadiusMeters is the mean earth radius of the spherical model
	earthRadiusMeters = 6371e3

	// regionCoordinateTolerance is the per-axis match tolerance in degrees (about 100m)
	regionCoordinateTolerance = 0.001
)

// DefaultMapCenter is where maps centre when an order has no location (Casablanca)
var DefaultMapCenter = entity.Coordinates{Latitude: 33.5731, Longitude: -7.5898}

// navigationService implements the NavigationUsecase interface.
// The region table is fixed at construction.
type navigationService struct {
	regions []entity.DeliveryRegion
	byName  map[string]entity.DeliveryRegion
	logger  *slog.Logger
}

// NewNavigationService builds the resolver from the configured regions, or the built-in table when none are set.
func NewNavigationService(cfg *config.Config, logger *slog.Logger) usecase.NavigationUsecase {
	regions := entity.DefaultDeliveryRegions()
	if cfg.Navigation != nil && len(cfg.Navigation.Regions) > 0 {
		regions = regionsFromConfig(cfg.Navigation.Regions, logger)
	}

	logger.Info("Delivery regions loaded", slog.Int("count", len(regions)))

	return newNavigationService(regions, logger)
}

func newNavigationService(regions []entity.DeliveryRegion, logger *slog.Logger) *navigationService {
	table := make([]entity.DeliveryRegion, len(regions))
	copy(table, regions)

	byName := make(map[string]entity.DeliveryRegion, len(table))
	for _, region := range table {
		if _, exists := byName[region.Name]; !exists {
			byName[region.Name] = region
		}
	}

	return &navigationService{
		regions: table,
		byName:  byName,
		logger:  logger,
	}
}

func regionsFromConfig(configured []config.RegionConfig, logger *slog.Logger) []entity.DeliveryRegion {
	regions := make([]entity.DeliveryRegion, 0, len(configured))
	for _, rc := range configured {
		if strings.TrimSpace(rc.Name) == "" {
			logger.Warn("Skipping delivery region without a name",
				slog.Float64("latitude", rc.Latitude),
				slog.Float64("longitude", rc.Longitude),
			)

			continue
		}
		regions = append(regions, entity.DeliveryRegion{
			Name:         rc.Name,
			Center:       orb.Point{rc.Longitude, rc.Latitude},
			RadiusMeters: rc.RadiusMeters,
		})
	}

	return regions
}

// ResolveTarget tries, in order: the declared shipping region, shipping coordinates at a region centre,
// a region name inside the address text, the nearest region centre, and the raw order coordinates.
func (srv *navigationService) ResolveTarget(order *entity.Order) (*entity.NavigationTarget, bool) {
	if order == nil {
		return nil, false
	}

	if shipping := order.ShippingAddress; shipping != nil {
		if region, ok := srv.byName[shipping.Region]; ok && shipping.Region != "" {
			return regionTarget(region, entity.NavigationMethodShippingAddressRegion), true
		}

		if loc := shipping.Location; loc != nil {
			for _, region := range srv.regions {
				if math.Abs(loc.Latitude-region.Latitude()) < regionCoordinateTolerance &&
					math.Abs(loc.Longitude-region.Longitude()) < regionCoordinateTolerance {
					return regionTarget(region, entity.NavigationMethodShippingCoordinatesMatch), true
				}
			}
		}
	}

	if order.Address != "" {
		address := strings.ToLower(order.Address)
		for _, region := range srv.regions {
			if strings.Contains(address, strings.ToLower(region.Name)) {
				return regionTarget(region, entity.NavigationMethodAddressExtraction), true
			}
		}
	}

	if !order.HasResolvedCoordinates() {
		srv.logger.Debug("Order has no usable location", slog.String("order_id", order.ID))

		return nil, false
	}

	position := order.Coordinates.Point()

	if region, distance, ok := srv.closestRegion(position); ok {
		target := regionTarget(region, entity.NavigationMethodClosestRegion)
		target.DistanceMeters = &distance

		return target, true
	}

	return &entity.NavigationTarget{
		Latitude:   order.Coordinates.Latitude,
		Longitude:  order.Coordinates.Longitude,
		RegionName: entity.UnknownRegionName,
		Method:     entity.NavigationMethodFallbackOriginal,
	}, true
}

// closestRegion returns the region whose centre is nearest; ties keep the earlier region
func (srv *navigationService) closestRegion(position orb.Point) (entity.DeliveryRegion, float64, bool) {
	var (
		closest  entity.DeliveryRegion
		shortest = math.Inf(1)
		found    bool
	)

	for _, region := range srv.regions {
		distance := Haversine(position, region.Center)
		if distance < shortest {
			closest = region
			shortest = distance
			found = true
		}
	}

	return closest, shortest, found
}

func (srv *navigationService) DisplayCoordinates(order *entity.Order) entity.Coordinates {
	if target, ok := srv.ResolveTarget(order); ok {
		return target.Coordinates()
	}

	if order != nil && order.CoordinateSource != entity.CoordinateSourceDefault {
		return order.Coordinates
	}

	return DefaultMapCenter
}

func (srv *navigationService) Regions() []entity.DeliveryRegion {
	regions := make([]entity.DeliveryRegion, len(srv.regions))
	copy(regions, srv.regions)

	return regions
}

func regionTarget(region entity.DeliveryRegion, method entity.NavigationMethod) *entity.NavigationTarget {
	return &entity.NavigationTarget{
		Latitude:   region.Latitude(),
		Longitude:  region.Longitude(),
		RegionName: region.Name,
		Method:     method,
	}
}

// Haversine returns the great-circle distance in meters between two points on a sphere
// with the mean earth radius.
func Haversine(a, b orb.Point) float64 {
	lat1 := a.Lat() * math.Pi / 180
	lat2 := b.Lat() * math.Pi / 180
	deltaLat := (b.Lat() - a.Lat()) * math.Pi / 180
	deltaLon := (b.Lon() - a.Lon()) * math.Pi / 180

	sinLat := math.Sin(deltaLat / 2)
	sinLon := math.Sin(deltaLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon

	return earthRadiusMeters * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}
