package usecase

import (
	"courier/internal/domain/entity"
)

// NavigationUsecase picks the coordinate handed to an external map application
type NavigationUsecase interface {
	// ResolveTarget returns the navigation target of an order; false when the order has no location
	ResolveTarget(order *entity.Order) (*entity.NavigationTarget, bool)

	// DisplayCoordinates returns the coordinate a map should centre on for the order
	DisplayCoordinates(order *entity.Order) entity.Coordinates

	// Regions lists the delivery regions in lookup order
	Regions() []entity.DeliveryRegion
}
