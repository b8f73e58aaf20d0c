package impl

import (
	"testing"
	"time"

	"courier/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/type/latlng"
)

func TestMapOrderFields_Defaults(t *testing.T) {
	before := time.Now()
	order := MapOrderFields(entity.RawOrder{})

	assert.Empty(t, order.ID)
	assert.Empty(t, order.UserID)
	assert.Nil(t, order.DriverID)
	assert.Equal(t, entity.DefaultOrderCoordinates, order.Coordinates)
	assert.Equal(t, entity.CoordinateSourceDefault, order.CoordinateSource)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, entity.PaymentStatusUnpaid, order.PaymentStatus)
	assert.Equal(t, entity.PaymentMethodCashOnDelivery, order.PaymentMethod)
	assert.Equal(t, "delivery", order.OrderType)
	assert.NotNil(t, order.Items)
	assert.Empty(t, order.Items)
	assert.Nil(t, order.ShippingAddress)
	assert.Nil(t, order.CreatedAt)
	assert.Nil(t, order.UpdatedAt)
	assert.False(t, order.Date.Before(before))
}

func TestMapOrderFields_FallbackCoordinates(t *testing.T) {
	records := []entity.RawOrder{
		{},
		{"address": "12 Rue Atlas"},
		{"address": map[string]any{"address": "12 Rue Atlas"}},
		{"coordinates": map[string]any{"latitude": "33.5", "longitude": "-7.6"}},
		{"deliveryLocation": map[string]any{"latitude": 33.5}},
		{"coordinates": nil, "deliveryLocation": "somewhere"},
	}

	for _, raw := range records {
		order := MapOrderFields(raw)
		assert.Equal(t, entity.Coordinates{Latitude: 32.3373, Longitude: -6.3498}, order.Coordinates)
		assert.Equal(t, entity.CoordinateSourceDefault, order.CoordinateSource)
	}
}

func TestResolveCoordinates_Priority(t *testing.T) {
	coordinates := map[string]any{"latitude": 33.1, "longitude": -7.1}
	deliveryLocation := map[string]any{"latitude": 33.2, "longitude": -7.2}
	address := map[string]any{"latitude": 33.3, "longitude": -7.3}

	tests := []struct {
		name       string
		raw        entity.RawOrder
		want       entity.Coordinates
		wantSource entity.CoordinateSource
	}{
		{
			name:       "coordinates first",
			raw:        entity.RawOrder{"coordinates": coordinates, "deliveryLocation": deliveryLocation, "address": address},
			want:       entity.Coordinates{Latitude: 33.1, Longitude: -7.1},
			wantSource: entity.CoordinateSourceCoordinates,
		},
		{
			name:       "deliveryLocation second",
			raw:        entity.RawOrder{"deliveryLocation": deliveryLocation, "address": address},
			want:       entity.Coordinates{Latitude: 33.2, Longitude: -7.2},
			wantSource: entity.CoordinateSourceDeliveryLocation,
		},
		{
			name:       "nested address third",
			raw:        entity.RawOrder{"address": address},
			want:       entity.Coordinates{Latitude: 33.3, Longitude: -7.3},
			wantSource: entity.CoordinateSourceAddress,
		},
		{
			name:       "invalid coordinates skipped",
			raw:        entity.RawOrder{"coordinates": map[string]any{"latitude": "x", "longitude": -7.1}, "address": address},
			want:       entity.Coordinates{Latitude: 33.3, Longitude: -7.3},
			wantSource: entity.CoordinateSourceAddress,
		},
		{
			name:       "zero is structurally valid",
			raw:        entity.RawOrder{"coordinates": map[string]any{"latitude": 0.0, "longitude": 0.0}, "address": address},
			want:       entity.Coordinates{},
			wantSource: entity.CoordinateSourceCoordinates,
		},
		{
			name:       "integer values",
			raw:        entity.RawOrder{"deliveryLocation": map[string]any{"latitude": int64(33), "longitude": int64(-7)}},
			want:       entity.Coordinates{Latitude: 33, Longitude: -7},
			wantSource: entity.CoordinateSourceDeliveryLocation,
		},
		{
			name:       "geo point",
			raw:        entity.RawOrder{"coordinates": &latlng.LatLng{Latitude: 33.54, Longitude: -7.65}},
			want:       entity.Coordinates{Latitude: 33.54, Longitude: -7.65},
			wantSource: entity.CoordinateSourceCoordinates,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, source := ResolveCoordinates(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantSource, source)
		})
	}
}

func TestMapOrderFields_FieldSources(t *testing.T) {
	created := time.Date(2025, 2, 1, 9, 30, 0, 0, time.UTC)

	raw := entity.RawOrder{
		"id":            "o1",
		"userId":        "u1",
		"driverId":      "d7",
		"customerName":  "Salma",
		"phoneNumber":   "0612345678",
		"customerPhone": "0700000000",
		"deliveryLocation": map[string]any{
			"address":      "Lot 4, Hay Hassani",
			"instructions": "Ring twice",
		},
		"additionalNote": "",
		"status":         "in-progress",
		"paymentStatus":  "paid",
		"paymentMethod":  "card",
		"total":          0,
		"grandTotal":     "85.5",
		"deliveryFee":    int64(10),
		"tipAmount":      2.5,
		"notes":          "Leave at door",
		"createdAt":      created,
		"date":           "2025-02-01T09:30:00Z",
		"restaurantId":   "r9",
		"cuisineName":    "Moroccan",
		"deliveryOption": "express",
	}

	order := MapOrderFields(raw)

	assert.Equal(t, "o1", order.ID)
	assert.Equal(t, "u1", order.UserID)
	require.NotNil(t, order.DriverID)
	assert.Equal(t, "d7", *order.DriverID)
	assert.Equal(t, "Salma", order.CustomerName)
	assert.Equal(t, "0612345678", order.CustomerPhone)
	assert.Equal(t, "Lot 4, Hay Hassani", order.Address)
	assert.Equal(t, "Ring twice", order.DeliveryInstructions)
	assert.Equal(t, entity.OrderStatusInProgress, order.Status)
	assert.Equal(t, entity.PaymentStatusPaid, order.PaymentStatus)
	assert.Equal(t, entity.PaymentMethodCard, order.PaymentMethod)
	assert.InDelta(t, 85.5, order.Total, 1e-9)
	assert.InDelta(t, 10.0, order.DeliveryFee, 1e-9)
	assert.InDelta(t, 2.5, order.TipAmount, 1e-9)
	assert.Equal(t, "Leave at door", order.Notes)
	require.NotNil(t, order.CreatedAt)
	assert.True(t, created.Equal(*order.CreatedAt))
	assert.True(t, created.Equal(order.Date))
	assert.Equal(t, "r9", order.RestaurantID)
	assert.Equal(t, "Moroccan", order.CuisineName)
	assert.Equal(t, "express", order.OrderType)
}

func TestMapOrderFields_AddressAndInstructions(t *testing.T) {
	t.Run("nested address object wins", func(t *testing.T) {
		order := MapOrderFields(entity.RawOrder{
			"address":         map[string]any{"address": "5 Bd Anfa", "instructions": "Floor 3"},
			"deliveryAddress": "ignored",
			"additionalNote":  "also ignored",
		})

		assert.Equal(t, "5 Bd Anfa", order.Address)
		assert.Equal(t, "Floor 3", order.DeliveryInstructions)
		assert.Equal(t, "also ignored", order.Notes)
	})

	t.Run("plain string address is not a display source", func(t *testing.T) {
		order := MapOrderFields(entity.RawOrder{"address": "123 Hay Oulfa St"})

		assert.Empty(t, order.Address)
	})

	t.Run("deliveryAddress and notes fallbacks", func(t *testing.T) {
		order := MapOrderFields(entity.RawOrder{
			"deliveryAddress": "Ciel residence",
			"notes":           "Call on arrival",
		})

		assert.Equal(t, "Ciel residence", order.Address)
		assert.Equal(t, "Call on arrival", order.DeliveryInstructions)
		assert.Equal(t, "Call on arrival", order.Notes)
	})
}

func TestMapOrderFields_ShippingAddress(t *testing.T) {
	order := MapOrderFields(entity.RawOrder{
		"shippingAddress": map[string]any{"region": "Almaz", "latitude": 33.5378, "longitude": -7.6234},
	})

	require.NotNil(t, order.ShippingAddress)
	assert.Equal(t, "Almaz", order.ShippingAddress.Region)
	require.NotNil(t, order.ShippingAddress.Location)
	assert.Equal(t, entity.Coordinates{Latitude: 33.5378, Longitude: -7.6234}, *order.ShippingAddress.Location)

	assert.Nil(t, MapOrderFields(entity.RawOrder{"shippingAddress": map[string]any{}}).ShippingAddress)
	assert.Nil(t, MapOrderFields(entity.RawOrder{"shippingAddress": map[string]any{"latitude": 33.5}}).ShippingAddress)
}

func TestStandardizeItems(t *testing.T) {
	t.Run("non list input", func(t *testing.T) {
		for _, input := range []any{nil, "items", 3, map[string]any{"id": "x"}} {
			items := StandardizeItems(input)
			assert.NotNil(t, items)
			assert.Empty(t, items)
		}
	})

	t.Run("price sources", func(t *testing.T) {
		items := StandardizeItems([]any{
			map[string]any{"price": 12.0, "priceAtPurchase": 99.0},
			map[string]any{"priceAtPurchase": 30.0},
			map[string]any{"name": "free"},
		})

		require.Len(t, items, 3)
		assert.InDelta(t, 12.0, items[0].Price, 1e-9)
		assert.InDelta(t, 30.0, items[1].Price, 1e-9)
		assert.Zero(t, items[2].Price)
	})

	t.Run("field fallbacks", func(t *testing.T) {
		variations := []any{map[string]any{"name": "Large"}}
		addons := []any{"cheese"}

		items := StandardizeItems([]map[string]any{
			{
				"productId":          "p1",
				"name":               "Tajine",
				"price":              45,
				"quantity":           2,
				"image":              map[string]any{"uri": "https://img/tajine.jpg"},
				"selectedVariations": variations,
				"selectedAddons":     addons,
			},
			{
				"id":       "p2",
				"image":    "https://img/tea.jpg",
				"quantity": 0,
			},
		})

		require.Len(t, items, 2)
		assert.Equal(t, "p1", items[0].ID)
		assert.Equal(t, "Tajine", items[0].Name)
		assert.InDelta(t, 2.0, items[0].Quantity, 1e-9)
		assert.Equal(t, "https://img/tajine.jpg", items[0].Image)
		assert.Equal(t, variations, items[0].Variations)
		assert.Equal(t, addons, items[0].Addons)
		assert.InDelta(t, 90.0, items[0].Subtotal, 1e-9)

		assert.Equal(t, "p2", items[1].ID)
		assert.Equal(t, "https://img/tea.jpg", items[1].Image)
		assert.InDelta(t, 1.0, items[1].Quantity, 1e-9)
		assert.NotNil(t, items[1].Variations)
		assert.NotNil(t, items[1].Addons)
	})

	t.Run("subtotal", func(t *testing.T) {
		items := StandardizeItems([]any{
			map[string]any{"price": 0.1, "quantity": 3},
			map[string]any{"price": 10.0, "quantity": 2, "subtotal": 18.0},
		})

		require.Len(t, items, 2)
		assert.Equal(t, 0.3, items[0].Subtotal)
		assert.InDelta(t, 18.0, items[1].Subtotal, 1e-9)
	})

	t.Run("non map item gets defaults", func(t *testing.T) {
		items := StandardizeItems([]any{"oops"})

		require.Len(t, items, 1)
		assert.Empty(t, items[0].ID)
		assert.InDelta(t, 1.0, items[0].Quantity, 1e-9)
		assert.Zero(t, items[0].Subtotal)
	})
}

func TestMapOrderFields_Idempotent(t *testing.T) {
	created := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

	records := map[string]entity.RawOrder{
		"empty": {},
		"top-level coordinates": {
			"id":           "o1",
			"userId":       "u1",
			"coordinates":  map[string]any{"latitude": 33.5423, "longitude": -7.6532},
			"address":      "123 Hay Oulfa St",
			"phoneNumber":  int64(612345678),
			"grandTotal":   "42",
			"items":        []any{map[string]any{"productId": "p1", "priceAtPurchase": 21, "quantity": 2}},
			"createdAt":    created,
			"status":       "confirmed",
			"cuisineName":  "Italian",
			"restaurantId": "r1",
		},
		"delivery location": {
			"id":               "o2",
			"deliveryLocation": map[string]any{"latitude": 33.5, "longitude": -7.6, "address": "Nassim", "instructions": "Gate B"},
			"additionalNote":   "Fragile",
			"driverId":         "d1",
			"shippingAddress":  map[string]any{"region": "Nassim", "latitude": 33.5334, "longitude": -7.6298},
		},
		"nested address": {
			"id":      "o3",
			"address": map[string]any{"address": "CFC Tower", "latitude": 33.5445, "longitude": -7.6567},
			"notes":   "Reception",
			"items":   "not-a-list",
		},
	}

	for name, raw := range records {
		t.Run(name, func(t *testing.T) {
			first := MapOrderFields(raw)
			second := MapOrderFields(first.ToRaw())

			assert.Equal(t, first, second)
		})
	}
}
