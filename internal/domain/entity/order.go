package entity

import (
	"time"

	"github.com/paulmach/orb"
)

// DefaultOrderCoordinates is used when a record carries no usable position (Beni Mellal city centre).
var DefaultOrderCoordinates = Coordinates{Latitude: 32.3373, Longitude: -6.3498}

// RawOrder is an order document as stored, before normalization.
type RawOrder map[string]any

// Coordinates is a latitude/longitude pair in degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude" firestore:"latitude"`
	Longitude float64 `json:"longitude" firestore:"longitude"`
}

// Point converts the coordinates to an orb.Point (longitude first).
func (c Coordinates) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// CoordinatesFromPoint converts an orb.Point to Coordinates.
func CoordinatesFromPoint(p orb.Point) Coordinates {
	return Coordinates{Latitude: p.Lat(), Longitude: p.Lon()}
}

// CoordinateSource names the raw field the order position was read from.
type CoordinateSource string

const (
	CoordinateSourceCoordinates      CoordinateSource = "coordinates"
	CoordinateSourceDeliveryLocation CoordinateSource = "deliveryLocation"
	CoordinateSourceAddress          CoordinateSource = "address"
	// CoordinateSourceDefault means no candidate was usable and DefaultOrderCoordinates was applied.
	CoordinateSourceDefault CoordinateSource = "default"
)

// ShippingAddress holds the region hints a customer app may attach to an order.
type ShippingAddress struct {
	Region   string       `json:"region,omitempty"`
	Location *Coordinates `json:"location,omitempty"`
}

// OrderItem is a standardized order line.
type OrderItem struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   float64 `json:"quantity"`
	Image      string  `json:"image"`
	Variations []any   `json:"variations"`
	Addons     []any   `json:"addons"`
	Subtotal   float64 `json:"subtotal"`
}

// Order is the canonical order representation used by the courier service.
// Coordinates and Status are always populated.
type Order struct {
	ID       string  `json:"id"`
	UserID   string  `json:"userId"`
	DriverID *string `json:"driverId"`

	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`

	Address              string           `json:"address"`
	DeliveryInstructions string           `json:"deliveryInstructions"`
	Coordinates          Coordinates      `json:"coordinates"`
	CoordinateSource     CoordinateSource `json:"coordinateSource"`
	ShippingAddress      *ShippingAddress `json:"shippingAddress,omitempty"`

	Status        OrderStatus   `json:"status"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`

	Total       float64 `json:"total"`
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"deliveryFee"`
	TipAmount   float64 `json:"tipAmount"`

	Items []OrderItem `json:"items"`

	Notes     string     `json:"notes"`
	Date      time.Time  `json:"date"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`

	RestaurantID string `json:"restaurantId"`
	CuisineName  string `json:"cuisineName"`
	OrderType    string `json:"orderType"`
}

// HasResolvedCoordinates reports whether the order position came from the record
// rather than the fixed default.
func (o *Order) HasResolvedCoordinates() bool {
	if o.CoordinateSource == CoordinateSourceDefault {
		return false
	}

	return o.Coordinates.Latitude != 0 && o.Coordinates.Longitude != 0
}

// Reference returns the composite "ownerId_orderId" reference used in deep links.
func (o *Order) Reference() string {
	if o.UserID == "" || o.UserID == o.ID {
		return o.ID
	}

	return o.UserID + "_" + o.ID
}

// ToRaw re-expresses the order with raw field names so it can be mapped again.
func (o *Order) ToRaw() RawOrder {
	position := map[string]any{
		"latitude":  o.Coordinates.Latitude,
		"longitude": o.Coordinates.Longitude,
	}

	address := map[string]any{
		"address":      o.Address,
		"instructions": o.DeliveryInstructions,
	}

	raw := RawOrder{
		"id":            o.ID,
		"userId":        o.UserID,
		"customerName":  o.CustomerName,
		"customerPhone": o.CustomerPhone,
		"address":       address,
		"status":        string(o.Status),
		"paymentStatus": string(o.PaymentStatus),
		"paymentMethod": string(o.PaymentMethod),
		"total":         o.Total,
		"subtotal":      o.Subtotal,
		"deliveryFee":   o.DeliveryFee,
		"tipAmount":     o.TipAmount,
		"notes":         o.Notes,
		"date":          o.Date,
		"restaurantId":  o.RestaurantID,
		"cuisineName":   o.CuisineName,
		"orderType":     o.OrderType,
	}

	switch o.CoordinateSource {
	case CoordinateSourceDefault:
	case CoordinateSourceDeliveryLocation:
		raw["deliveryLocation"] = position
	case CoordinateSourceAddress:
		address["latitude"] = o.Coordinates.Latitude
		address["longitude"] = o.Coordinates.Longitude
	default:
		raw["coordinates"] = position
	}

	if o.DriverID != nil {
		raw["driverId"] = *o.DriverID
	}
	if o.CreatedAt != nil {
		raw["createdAt"] = *o.CreatedAt
	}
	if o.UpdatedAt != nil {
		raw["updatedAt"] = *o.UpdatedAt
	}

	if o.ShippingAddress != nil {
		shipping := map[string]any{}
		if o.ShippingAddress.Region != "" {
			shipping["region"] = o.ShippingAddress.Region
		}
		if loc := o.ShippingAddress.Location; loc != nil {
			shipping["latitude"] = loc.Latitude
			shipping["longitude"] = loc.Longitude
		}
		raw["shippingAddress"] = shipping
	}

	items := make([]any, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, map[string]any{
			"id":         item.ID,
			"name":       item.Name,
			"price":      item.Price,
			"quantity":   item.Quantity,
			"image":      item.Image,
			"variations": item.Variations,
			"addons":     item.Addons,
			"subtotal":   item.Subtotal,
		})
	}
	raw["items"] = items

	return raw
}
