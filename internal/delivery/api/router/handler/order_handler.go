// Package handler contains the echo handlers of the courier API.
package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"courier/internal/delivery/api/response"
	deliverycontext "courier/internal/delivery/context"
	"courier/internal/delivery/api/validator"
	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC      usecase.OrderUsecase
	NavigationUC usecase.NavigationUsecase
	Logger       *slog.Logger
}

// OrderHandler holds dependencies for order-related handlers
type OrderHandler struct {
	orderUC      usecase.OrderUsecase
	navigationUC usecase.NavigationUsecase
	logger       *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC:      params.OrderUC,
		navigationUC: params.NavigationUC,
		logger:       params.Logger,
	}
}

// OrderResponse is a canonical order with the values couriers see on screen
type OrderResponse struct {
	*entity.Order
	Reference          string             `json:"reference"`
	StatusLabel        string             `json:"statusLabel"`
	DisplayCoordinates entity.Coordinates `json:"displayCoordinates"`
}

func newOrderResponse(navigationUC usecase.NavigationUsecase, order *entity.Order) *OrderResponse {
	return &OrderResponse{
		Order:              order,
		Reference:          order.Reference(),
		StatusLabel:        order.Status.DisplayName(),
		DisplayCoordinates: navigationUC.DisplayCoordinates(order),
	}
}

// requestLogger returns the request-scoped logger carrying the request id
func requestLogger(c echo.Context, fallback *slog.Logger) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), fallback)
}

// reservedStatusFields are owned by the status update itself and cannot be sent as extra fields
var reservedStatusFields = []string{"status", "updatedAt"}

// UpdateStatusRequest represents the request body for a status change
type UpdateStatusRequest struct {
	Status string         `json:"status" validate:"required"`
	Fields map[string]any `json:"fields"`
}

// StatusUpdateResponse reports the status an order was moved to
type StatusUpdateResponse struct {
	OrderID string             `json:"orderId"`
	OwnerID string             `json:"ownerId,omitempty"`
	Status  entity.OrderStatus `json:"status"`
}

// OrderListResponse is a filtered order list with the per-tab counts of the whole list
type OrderListResponse struct {
	Orders []*OrderResponse     `json:"orders"`
	Counts usecase.OrderCounts `json:"counts"`
}

// ListOrders handles retrieving every order from both collections.
// Optional query parameters: status and q (search over customer name, address and id).
func (h *OrderHandler) ListOrders(c echo.Context) error {
	filter := usecase.OrderFilter{Search: c.QueryParam("q")}
	if raw := c.QueryParam("status"); raw != "" {
		status, ok := entity.ParseOrderStatus(raw)
		if !ok {
			return response.ValidationError(c, map[string]string{"status": "unknown status " + raw})
		}
		filter.Status = status
	}

	orders := h.orderUC.FetchAll(c.Request().Context())
	matched := filter.Apply(orders)

	items := make([]*OrderResponse, 0, len(matched))
	for _, order := range matched {
		items = append(items, newOrderResponse(h.navigationUC, order))
	}

	return response.Success(c, http.StatusOK, &OrderListResponse{
		Orders: items,
		Counts: usecase.CountOrders(orders),
	})
}

// GetOrder handles retrieving an order by id alone
func (h *OrderHandler) GetOrder(c echo.Context) error {
	order, ok := h.orderUC.FindByID(c.Request().Context(), c.Param("id"))
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrOrderNotFound)
	}

	return response.Success(c, http.StatusOK, newOrderResponse(h.navigationUC, order))
}

// ResolveReference handles retrieving an order from a scanned "ownerId_orderId" reference
func (h *OrderHandler) ResolveReference(c echo.Context) error {
	reference := strings.TrimSpace(c.Param("ref"))
	if reference == "" || strings.Count(reference, "_") > 1 {
		return response.HandleAppError(c, domainerrors.ErrInvalidOrderReference)
	}

	order, ok := h.orderUC.ResolveReference(c.Request().Context(), reference)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrOrderNotFound)
	}

	return response.Success(c, http.StatusOK, newOrderResponse(h.navigationUC, order))
}

// GetOwnerOrder handles retrieving an order filed under an owner
func (h *OrderHandler) GetOwnerOrder(c echo.Context) error {
	order, ok := h.orderUC.FetchOne(c.Request().Context(), c.Param("ownerId"), c.Param("orderId"))
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrOrderNotFound)
	}

	return response.Success(c, http.StatusOK, newOrderResponse(h.navigationUC, order))
}

// UpdateOrderStatus handles a status change of a flat-collection order
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	return h.updateStatus(c, "", c.Param("id"))
}

// UpdateOwnerOrderStatus handles a status change written to both order locations
func (h *OrderHandler) UpdateOwnerOrderStatus(c echo.Context) error {
	return h.updateStatus(c, c.Param("ownerId"), c.Param("orderId"))
}

func (h *OrderHandler) updateStatus(c echo.Context, ownerID, orderID string) error {
	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		requestLogger(c, h.logger).Debug("Invalid status update body", slog.String("order_id", orderID), slog.Any("error", err))

		return response.BindingError(c, "INVALID_INPUT", "Invalid status update input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.FieldErrors(err))
	}

	status, ok := entity.ParseOrderStatus(req.Status)
	if !ok {
		return response.ValidationError(c, map[string]string{"status": "unknown status " + req.Status})
	}

	for _, field := range reservedStatusFields {
		if _, found := req.Fields[field]; found {
			requestLogger(c, h.logger).Warn("Status update tried to set a reserved field",
				slog.String("order_id", orderID),
				slog.String("field", field),
			)

			return response.ValidationError(c, map[string]string{"fields." + field: "reserved"})
		}
	}

	if !h.orderUC.UpdateStatus(c.Request().Context(), ownerID, orderID, status, req.Fields) {
		return response.HandleAppError(c, domainerrors.ErrStatusUpdateFailed)
	}

	return response.Success(c, http.StatusOK, &StatusUpdateResponse{
		OrderID: orderID,
		OwnerID: ownerID,
		Status:  status,
	})
}

// AcceptOrder handles a courier taking an order
func (h *OrderHandler) AcceptOrder(c echo.Context) error {
	ownerID, orderID := c.Param("ownerId"), c.Param("orderId")
	if !h.orderUC.AcceptOrder(c.Request().Context(), ownerID, orderID) {
		return response.HandleAppError(c, domainerrors.ErrStatusUpdateFailed)
	}

	return response.Success(c, http.StatusOK, &StatusUpdateResponse{
		OrderID: orderID,
		OwnerID: ownerID,
		Status:  entity.OrderStatusConfirmed,
	})
}

// StartDelivery handles a courier leaving with an order
func (h *OrderHandler) StartDelivery(c echo.Context) error {
	ownerID, orderID := c.Param("ownerId"), c.Param("orderId")
	if !h.orderUC.StartDelivery(c.Request().Context(), ownerID, orderID) {
		return response.HandleAppError(c, domainerrors.ErrStatusUpdateFailed)
	}

	return response.Success(c, http.StatusOK, &StatusUpdateResponse{
		OrderID: orderID,
		OwnerID: ownerID,
		Status:  entity.OrderStatusInProgress,
	})
}
