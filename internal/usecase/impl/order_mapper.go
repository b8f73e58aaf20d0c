package impl

import (
	"math"
	"strconv"
	"strings"
	"time"

	"courier/internal/domain/entity"

	"github.com/shopspring/decimal"
	"google.golang.org/genproto/googleapis/type/latlng"
)

const defaultOrderType = "delivery"

// MapOrderFields converts a raw order document into a canonical order.
// Every field falls back to a default; empty strings and zero numbers count as missing.
func MapOrderFields(raw entity.RawOrder) *entity.Order {
	address, _ := asMap(raw["address"])
	deliveryLocation, _ := asMap(raw["deliveryLocation"])

	coordinates, source := ResolveCoordinates(raw)

	order := &entity.Order{
		ID:     firstString(raw["id"]),
		UserID: firstString(raw["userId"]),

		CustomerName:  firstString(raw["customerName"]),
		CustomerPhone: firstString(raw["phoneNumber"], raw["customerPhone"]),

		Address: firstString(address["address"], raw["deliveryAddress"], deliveryLocation["address"]),
		DeliveryInstructions: firstString(
			address["instructions"],
			raw["additionalNote"],
			deliveryLocation["instructions"],
			raw["notes"],
		),
		Coordinates:      coordinates,
		CoordinateSource: source,
		ShippingAddress:  mapShippingAddress(raw["shippingAddress"]),

		Status:        entity.OrderStatus(firstStringOr(string(entity.OrderStatusPending), raw["status"])),
		PaymentStatus: entity.PaymentStatus(firstStringOr(string(entity.PaymentStatusUnpaid), raw["paymentStatus"])),
		PaymentMethod: entity.PaymentMethod(firstStringOr(string(entity.PaymentMethodCashOnDelivery), raw["paymentMethod"])),

		Total:       firstNumber(0, raw["total"], raw["grandTotal"]),
		Subtotal:    firstNumber(0, raw["subtotal"]),
		DeliveryFee: firstNumber(0, raw["deliveryFee"]),
		TipAmount:   firstNumber(0, raw["tipAmount"]),

		Items: StandardizeItems(raw["items"]),

		Notes: firstString(raw["notes"], raw["additionalNote"]),

		RestaurantID: firstString(raw["restaurantId"]),
		CuisineName:  firstString(raw["cuisineName"]),
		OrderType:    firstStringOr(defaultOrderType, raw["orderType"], raw["deliveryOption"]),
	}

	if driverID := firstString(raw["driverId"]); driverID != "" {
		order.DriverID = &driverID
	}

	if date, ok := toTime(raw["date"]); ok {
		order.Date = date
	} else {
		order.Date = time.Now()
	}
	if createdAt, ok := toTime(raw["createdAt"]); ok {
		order.CreatedAt = &createdAt
	}
	if updatedAt, ok := toTime(raw["updatedAt"]); ok {
		order.UpdatedAt = &updatedAt
	}

	return order
}

// ResolveCoordinates returns the first structurally valid position of a raw order,
// checking coordinates, then deliveryLocation, then the nested address object.
// Zero is a valid component; DefaultOrderCoordinates is returned when nothing matches.
func ResolveCoordinates(raw entity.RawOrder) (entity.Coordinates, entity.CoordinateSource) {
	if coords, ok := coordinatePair(raw["coordinates"]); ok {
		return coords, entity.CoordinateSourceCoordinates
	}
	if coords, ok := coordinatePair(raw["deliveryLocation"]); ok {
		return coords, entity.CoordinateSourceDeliveryLocation
	}
	if address, ok := asMap(raw["address"]); ok {
		if coords, ok := coordinatePair(address); ok {
			return coords, entity.CoordinateSourceAddress
		}
	}

	return entity.DefaultOrderCoordinates, entity.CoordinateSourceDefault
}

// StandardizeItems converts raw order lines into OrderItems.
// Anything other than a list yields an empty slice.
func StandardizeItems(value any) []entity.OrderItem {
	var rawItems []any
	switch v := value.(type) {
	case []any:
		rawItems = v
	case []map[string]any:
		rawItems = make([]any, 0, len(v))
		for _, item := range v {
			rawItems = append(rawItems, item)
		}
	default:
		return []entity.OrderItem{}
	}

	items := make([]entity.OrderItem, 0, len(rawItems))
	for _, rawItem := range rawItems {
		item, _ := asMap(rawItem)
		items = append(items, standardizeItem(item))
	}

	return items
}

func standardizeItem(item map[string]any) entity.OrderItem {
	price := firstNumber(0, item["price"], item["priceAtPurchase"])
	quantity := firstNumber(1, item["quantity"])

	subtotal, ok := truthyNumber(item["subtotal"])
	if !ok {
		subtotal = decimal.NewFromFloat(price).Mul(decimal.NewFromFloat(quantity)).InexactFloat64()
	}

	return entity.OrderItem{
		ID:         firstString(item["id"], item["productId"]),
		Name:       firstString(item["name"]),
		Price:      price,
		Quantity:   quantity,
		Image:      itemImage(item["image"]),
		Variations: firstList(item["variations"], item["selectedVariations"]),
		Addons:     firstList(item["addons"], item["selectedAddons"]),
		Subtotal:   subtotal,
	}
}

func mapShippingAddress(value any) *entity.ShippingAddress {
	shipping, ok := asMap(value)
	if !ok {
		return nil
	}

	result := &entity.ShippingAddress{
		Region: firstString(shipping["region"]),
	}

	lat, latOK := truthyNumber(shipping["latitude"])
	lng, lngOK := truthyNumber(shipping["longitude"])
	if latOK && lngOK {
		result.Location = &entity.Coordinates{Latitude: lat, Longitude: lng}
	}

	if result.Region == "" && result.Location == nil {
		return nil
	}

	return result
}

func itemImage(value any) string {
	if image, ok := asMap(value); ok {
		uri, _ := image["uri"].(string)

		return uri
	}

	image, _ := value.(string)

	return image
}

// coordinatePair accepts a map with numeric latitude and longitude, or a Firestore GeoPoint
func coordinatePair(value any) (entity.Coordinates, bool) {
	switch v := value.(type) {
	case *latlng.LatLng:
		if v == nil {
			return entity.Coordinates{}, false
		}

		return entity.Coordinates{Latitude: v.GetLatitude(), Longitude: v.GetLongitude()}, true
	case entity.Coordinates:
		return v, true
	}

	m, ok := asMap(value)
	if !ok {
		return entity.Coordinates{}, false
	}

	lat, latOK := numeric(m["latitude"])
	lng, lngOK := numeric(m["longitude"])
	if !latOK || !lngOK {
		return entity.Coordinates{}, false
	}

	return entity.Coordinates{Latitude: lat, Longitude: lng}, true
}

func asMap(value any) (map[string]any, bool) {
	switch v := value.(type) {
	case map[string]any:
		return v, v != nil
	case entity.RawOrder:
		return v, v != nil
	default:
		return nil, false
	}
}

func firstList(values ...any) []any {
	for _, value := range values {
		if list, ok := value.([]any); ok {
			return list
		}
	}

	return []any{}
}

// firstString returns the first non-empty value rendered as a string
func firstString(values ...any) string {
	return firstStringOr("", values...)
}

func firstStringOr(fallback string, values ...any) string {
	for _, value := range values {
		if s, ok := truthyString(value); ok {
			return s
		}
	}

	return fallback
}

func truthyString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, v != ""
	case entity.OrderStatus:
		return string(v), v != ""
	case entity.PaymentStatus:
		return string(v), v != ""
	case entity.PaymentMethod:
		return string(v), v != ""
	}

	if n, ok := numeric(value); ok && n != 0 {
		return strconv.FormatFloat(n, 'f', -1, 64), true
	}

	return "", false
}

// firstNumber returns the first non-zero number, accepting numeric strings
func firstNumber(fallback float64, values ...any) float64 {
	for _, value := range values {
		if n, ok := truthyNumber(value); ok {
			return n
		}
	}

	return fallback
}

func truthyNumber(value any) (float64, bool) {
	if n, ok := numeric(value); ok {
		return n, n != 0
	}

	s, ok := value.(string)
	if !ok {
		return 0, false
	}

	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}

	return n, true
}

// numeric reports whether value is a Go number, as decoded from Firestore or JSON
func numeric(value any) (float64, bool) {
	var n float64
	switch v := value.(type) {
	case float64:
		n = v
	case float32:
		n = float64(v)
	case int:
		n = float64(v)
	case int32:
		n = float64(v)
	case int64:
		n = float64(v)
	case uint:
		n = float64(v)
	case uint32:
		n = float64(v)
	case uint64:
		n = float64(v)
	default:
		return 0, false
	}

	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}

	return n, true
}

func toTime(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, !v.IsZero()
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}

		return *v, !v.IsZero()
	case string:
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return time.Time{}, false
		}

		return t, true
	default:
		return time.Time{}, false
	}
}
