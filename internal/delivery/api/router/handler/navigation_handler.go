package handler

import (
	"log/slog"
	"net/http"

	"courier/internal/delivery/api/response"
	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NavigationHandlerParams holds dependencies for NavigationHandler, injected by Fx.
type NavigationHandlerParams struct {
	fx.In

	OrderUC      usecase.OrderUsecase
	NavigationUC usecase.NavigationUsecase
	Logger       *slog.Logger
}

// NavigationHandler serves map targets and the delivery region table
type NavigationHandler struct {
	orderUC      usecase.OrderUsecase
	navigationUC usecase.NavigationUsecase
	logger       *slog.Logger
}

// NewNavigationHandler is the constructor for NavigationHandler
func NewNavigationHandler(params NavigationHandlerParams) *NavigationHandler {
	return &NavigationHandler{
		orderUC:      params.OrderUC,
		navigationUC: params.NavigationUC,
		logger:       params.Logger,
	}
}

// NavigationResponse is where the courier app should route to for an order
type NavigationResponse struct {
	OrderID string                   `json:"orderId"`
	Target  *entity.NavigationTarget `json:"target"`
}

// RegionResponse describes one delivery region
type RegionResponse struct {
	Name         string  `json:"name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters float64 `json:"radiusMeters"`
}

// GetNavigation handles resolving the navigation target of an order
func (h *NavigationHandler) GetNavigation(c echo.Context) error {
	ctx := c.Request().Context()

	order, ok := h.orderUC.FetchOne(ctx, c.Param("ownerId"), c.Param("orderId"))
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrOrderNotFound)
	}

	target, ok := h.navigationUC.ResolveTarget(order)
	if !ok {
		requestLogger(c, h.logger).Info("Order has no usable location", slog.String("reference", order.Reference()))

		return response.HandleAppError(c, domainerrors.ErrNavigationUnavailable)
	}

	return response.Success(c, http.StatusOK, &NavigationResponse{
		OrderID: order.ID,
		Target:  target,
	})
}

// ListRegions handles listing the delivery regions in lookup order
func (h *NavigationHandler) ListRegions(c echo.Context) error {
	regions := h.navigationUC.Regions()

	items := make([]RegionResponse, 0, len(regions))
	for _, region := range regions {
		items = append(items, RegionResponse{
			Name:         region.Name,
			Latitude:     region.Latitude(),
			Longitude:    region.Longitude(),
			RadiusMeters: region.RadiusMeters,
		})
	}

	return response.Success(c, http.StatusOK, items)
}
