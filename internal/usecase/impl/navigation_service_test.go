package impl

import (
	"testing"

	"courier/config"
	"courier/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestNavigationService() *navigationService {
	return newNavigationService(entity.DefaultDeliveryRegions(), discardLogger())
}

func TestHaversine(t *testing.T) {
	oulfa := orb.Point{-7.6532, 33.5423}
	hassani := orb.Point{-7.6789, 33.5156}

	assert.Zero(t, Haversine(oulfa, oulfa))
	assert.Equal(t, Haversine(oulfa, hassani), Haversine(hassani, oulfa))
	// One degree of longitude along the equator
	assert.InDelta(t, 111194.93, Haversine(orb.Point{0, 0}, orb.Point{1, 0}), 0.01)
	assert.InDelta(t, 3800, Haversine(oulfa, hassani), 200)
}

func TestNavigationService_CoordinatesOnlyResolveToClosestRegion(t *testing.T) {
	srv := createTestNavigationService()

	order := MapOrderFields(entity.RawOrder{
		"coordinates": map[string]any{"latitude": 33.5423, "longitude": -7.6532},
		"address":     "123 Hay Oulfa St",
	})

	target, ok := srv.ResolveTarget(order)
	require.True(t, ok)
	assert.Equal(t, "Hay Oulfa", target.RegionName)
	assert.Equal(t, entity.NavigationMethodClosestRegion, target.Method)
	require.NotNil(t, target.DistanceMeters)
	assert.Zero(t, *target.DistanceMeters)
	assert.Equal(t, 33.5423, target.Latitude)
	assert.Equal(t, -7.6532, target.Longitude)
}

func TestNavigationService_ShippingCoordinatesMatchRegionCentre(t *testing.T) {
	srv := createTestNavigationService()

	order := MapOrderFields(entity.RawOrder{
		"coordinates":     map[string]any{"latitude": 33.5423, "longitude": -7.6532},
		"shippingAddress": map[string]any{"latitude": 33.5423, "longitude": -7.6532},
	})

	target, ok := srv.ResolveTarget(order)
	require.True(t, ok)
	assert.Equal(t, "Hay Oulfa", target.RegionName)
	assert.Equal(t, entity.NavigationMethodShippingCoordinatesMatch, target.Method)
	assert.Nil(t, target.DistanceMeters)
}

func TestNavigationService_NoLocationIsNotFound(t *testing.T) {
	srv := createTestNavigationService()

	order := MapOrderFields(entity.RawOrder{
		"address": map[string]any{"address": "Unknown Street"},
	})

	target, ok := srv.ResolveTarget(order)
	assert.False(t, ok)
	assert.Nil(t, target)
	assert.Equal(t, DefaultMapCenter, srv.DisplayCoordinates(order))
}

func TestNavigationService_ResolveTarget(t *testing.T) {
	tests := []struct {
		name       string
		order      *entity.Order
		wantRegion string
		wantMethod entity.NavigationMethod
	}{
		{
			name: "declared region beats address text",
			order: &entity.Order{
				Address:          "Near Hay Oulfa mosque",
				ShippingAddress:  &entity.ShippingAddress{Region: "CFC"},
				CoordinateSource: entity.CoordinateSourceDefault,
			},
			wantRegion: "CFC",
			wantMethod: entity.NavigationMethodShippingAddressRegion,
		},
		{
			name: "unknown declared region falls through to shipping coordinates",
			order: &entity.Order{
				ShippingAddress: &entity.ShippingAddress{
					Region:   "Nowhere",
					Location: &entity.Coordinates{Latitude: 33.5294, Longitude: -7.6451},
				},
				CoordinateSource: entity.CoordinateSourceDefault,
			},
			wantRegion: "Ciel",
			wantMethod: entity.NavigationMethodShippingCoordinatesMatch,
		},
		{
			name: "shipping coordinates outside tolerance fall through to address",
			order: &entity.Order{
				Address: "Résidence ALMAZ, bloc 4",
				ShippingAddress: &entity.ShippingAddress{
					Location: &entity.Coordinates{Latitude: 33.5334 + 0.002, Longitude: -7.6298},
				},
				CoordinateSource: entity.CoordinateSourceDefault,
			},
			wantRegion: "Almaz",
			wantMethod: entity.NavigationMethodAddressExtraction,
		},
		{
			name: "address match ignores case",
			order: &entity.Order{
				Address:          "12 rue x, sidi maarouf",
				Coordinates:      entity.Coordinates{Latitude: 33.5423, Longitude: -7.6532},
				CoordinateSource: entity.CoordinateSourceCoordinates,
			},
			wantRegion: "Sidi Maarouf",
			wantMethod: entity.NavigationMethodAddressExtraction,
		},
		{
			name: "nearest centre",
			order: &entity.Order{
				Address:          "Route de l'aéroport",
				Coordinates:      entity.Coordinates{Latitude: 33.5340, Longitude: -7.6300},
				CoordinateSource: entity.CoordinateSourceDeliveryLocation,
			},
			wantRegion: "Nassim",
			wantMethod: entity.NavigationMethodClosestRegion,
		},
	}

	srv := createTestNavigationService()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, ok := srv.ResolveTarget(tt.order)
			require.True(t, ok)
			assert.Equal(t, tt.wantRegion, target.RegionName)
			assert.Equal(t, tt.wantMethod, target.Method)
		})
	}
}

func TestNavigationService_ClosestRegionReportsDistance(t *testing.T) {
	srv := createTestNavigationService()

	order := &entity.Order{
		Coordinates:      entity.Coordinates{Latitude: 33.5340, Longitude: -7.6300},
		CoordinateSource: entity.CoordinateSourceCoordinates,
	}

	target, ok := srv.ResolveTarget(order)
	require.True(t, ok)
	require.NotNil(t, target.DistanceMeters)

	nassim := orb.Point{-7.6298, 33.5334}
	assert.InDelta(t, Haversine(order.Coordinates.Point(), nassim), *target.DistanceMeters, 1e-9)
	assert.Less(t, *target.DistanceMeters, 100.0)

	for _, region := range srv.Regions() {
		assert.GreaterOrEqual(t, Haversine(order.Coordinates.Point(), region.Center), *target.DistanceMeters)
	}
}

func TestNavigationService_ClosestRegionTieKeepsFirst(t *testing.T) {
	centre := orb.Point{-7.6, 33.5}
	srv := newNavigationService([]entity.DeliveryRegion{
		{Name: "First", Center: centre},
		{Name: "Second", Center: centre},
	}, discardLogger())

	target, ok := srv.ResolveTarget(&entity.Order{
		Coordinates:      entity.Coordinates{Latitude: 33.6, Longitude: -7.7},
		CoordinateSource: entity.CoordinateSourceCoordinates,
	})
	require.True(t, ok)
	assert.Equal(t, "First", target.RegionName)
}

func TestNavigationService_EmptyRegionTable(t *testing.T) {
	srv := newNavigationService(nil, discardLogger())

	t.Run("order coordinates are used as is", func(t *testing.T) {
		order := &entity.Order{
			Address:          "Hay Oulfa",
			Coordinates:      entity.Coordinates{Latitude: 34.0209, Longitude: -6.8416},
			CoordinateSource: entity.CoordinateSourceCoordinates,
		}

		target, ok := srv.ResolveTarget(order)
		require.True(t, ok)
		assert.Equal(t, entity.NavigationMethodFallbackOriginal, target.Method)
		assert.Equal(t, entity.UnknownRegionName, target.RegionName)
		assert.Equal(t, order.Coordinates, target.Coordinates())
		assert.Nil(t, target.DistanceMeters)
	})

	t.Run("default coordinates are not a location", func(t *testing.T) {
		_, ok := srv.ResolveTarget(MapOrderFields(entity.RawOrder{}))
		assert.False(t, ok)
	})
}

func TestNavigationService_ZeroCoordinateIsNotALocation(t *testing.T) {
	srv := createTestNavigationService()

	order := MapOrderFields(entity.RawOrder{
		"coordinates": map[string]any{"latitude": 0, "longitude": -7.6},
	})
	require.Equal(t, entity.CoordinateSourceCoordinates, order.CoordinateSource)

	_, ok := srv.ResolveTarget(order)
	assert.False(t, ok)
	assert.Equal(t, entity.Coordinates{Latitude: 0, Longitude: -7.6}, srv.DisplayCoordinates(order))
}

func TestNavigationService_DisplayCoordinates(t *testing.T) {
	srv := createTestNavigationService()

	order := &entity.Order{
		ShippingAddress:  &entity.ShippingAddress{Region: "Lissasfa"},
		Coordinates:      entity.Coordinates{Latitude: 33.6, Longitude: -7.5},
		CoordinateSource: entity.CoordinateSourceCoordinates,
	}
	assert.Equal(t, entity.Coordinates{Latitude: 33.5234, Longitude: -7.6123}, srv.DisplayCoordinates(order))

	assert.Equal(t, DefaultMapCenter, srv.DisplayCoordinates(nil))
}

func TestNavigationService_ResolveTargetNilOrder(t *testing.T) {
	_, ok := createTestNavigationService().ResolveTarget(nil)
	assert.False(t, ok)
}

func TestNewNavigationService_Regions(t *testing.T) {
	t.Run("built-in table without configuration", func(t *testing.T) {
		srv := NewNavigationService(&config.Config{}, discardLogger())

		regions := srv.Regions()
		require.Len(t, regions, 9)
		assert.Equal(t, "Hay Oulfa", regions[0].Name)
		assert.Equal(t, "CFC", regions[8].Name)
	})

	t.Run("configured regions replace the table", func(t *testing.T) {
		cfg := &config.Config{Navigation: &config.NavigationConfig{Regions: []config.RegionConfig{
			{Name: "Depot", Latitude: 33.6, Longitude: -7.5, RadiusMeters: 500},
			{Name: "  ", Latitude: 1, Longitude: 1},
		}}}
		srv := NewNavigationService(cfg, discardLogger())

		regions := srv.Regions()
		require.Len(t, regions, 1)
		assert.Equal(t, "Depot", regions[0].Name)
		assert.Equal(t, 33.6, regions[0].Latitude())
		assert.Equal(t, -7.5, regions[0].Longitude())

		target, ok := srv.ResolveTarget(&entity.Order{ShippingAddress: &entity.ShippingAddress{Region: "Depot"}})
		require.True(t, ok)
		assert.Equal(t, entity.NavigationMethodShippingAddressRegion, target.Method)
	})

	t.Run("regions are returned as a copy", func(t *testing.T) {
		srv := createTestNavigationService()

		regions := srv.Regions()
		regions[0].Name = "changed"

		assert.Equal(t, "Hay Oulfa", srv.Regions()[0].Name)
	})
}
