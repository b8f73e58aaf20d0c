// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	deliverycontext "courier/internal/delivery/context"
	"courier/internal/domain/entity"
	"courier/internal/domain/repository"
	"courier/internal/domain/service"
	"courier/internal/errors"
	"courier/internal/usecase"

	"golang.org/x/sync/errgroup"
)

const referenceSeparator = "_"

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo repository.OrderRepository
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	orderRepo repository.OrderRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		orderRepo: orderRepo,
		publisher: publisher,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *orderService) MapOrderFields(raw entity.RawOrder) *entity.Order {
	return MapOrderFields(raw)
}

func (srv *orderService) FetchAll(ctx context.Context) []*entity.Order {
	var ownerDocs, flatDocs []*repository.OrderDocument

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		docs, err := srv.orderRepo.ListOwnerOrders(groupCtx)
		ownerDocs = docs

		return errors.Wrap(err, "list owner orders")
	})
	group.Go(func() error {
		docs, err := srv.orderRepo.ListFlatOrders(groupCtx)
		flatDocs = docs

		return errors.Wrap(err, "list flat orders")
	})

	if err := group.Wait(); err != nil {
		srv.log(ctx).Error("Failed to fetch orders", slog.Any("error", err))

		return []*entity.Order{}
	}

	orders := make([]*entity.Order, 0, len(ownerDocs)+len(flatDocs))
	seen := make(map[string]struct{}, len(ownerDocs))

	for _, doc := range ownerDocs {
		orders = append(orders, MapOrderFields(withIdentity(doc.Data, doc.ID, doc.OwnerID)))
		seen[doc.ID] = struct{}{}
	}

	duplicates := 0
	for _, doc := range flatDocs {
		if _, ok := seen[doc.ID]; ok {
			duplicates++

			continue
		}

		// Flat orders without a stored owner use their own id as owner
		ownerID := firstStringOr(doc.ID, doc.Data["userId"])
		orders = append(orders, MapOrderFields(withIdentity(doc.Data, doc.ID, ownerID)))
	}

	srv.log(ctx).Debug("Orders fetched",
		slog.Int("owner_orders", len(ownerDocs)),
		slog.Int("flat_orders", len(flatDocs)),
		slog.Int("duplicates", duplicates),
		slog.Int("total", len(orders)),
	)

	return orders
}

func (srv *orderService) FetchOne(ctx context.Context, ownerID, orderID string) (*entity.Order, bool) {
	if orderID == "" {
		return nil, false
	}

	// Owner equal to order id is a malformed pair; only a full search can place it
	if ownerID == "" || ownerID == orderID {
		srv.log(ctx).Debug("Owner id unusable, searching all orders",
			slog.String("owner_id", ownerID),
			slog.String("order_id", orderID),
		)

		return srv.FindByID(ctx, orderID)
	}

	doc, err := srv.orderRepo.FindOwnerOrder(ctx, ownerID, orderID)
	if err != nil {
		if !errors.Is(err, repository.ErrOrderNotFound) {
			srv.log(ctx).Warn("Failed to read owner order",
				slog.String("owner_id", ownerID),
				slog.String("order_id", orderID),
				slog.Any("error", err),
			)
		}

		return srv.FindByID(ctx, orderID)
	}

	return MapOrderFields(withIdentity(doc.Data, orderID, ownerID)), true
}

func (srv *orderService) FindByID(ctx context.Context, orderID string) (*entity.Order, bool) {
	if orderID == "" {
		return nil, false
	}

	for _, order := range srv.FetchAll(ctx) {
		if order.ID == orderID {
			return order, true
		}
	}

	srv.log(ctx).Info("Order not found", slog.String("order_id", orderID))

	return nil, false
}

func (srv *orderService) ResolveReference(ctx context.Context, reference string) (*entity.Order, bool) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, false
	}

	if !strings.Contains(reference, referenceSeparator) {
		return srv.FindByID(ctx, reference)
	}

	parts := strings.Split(reference, referenceSeparator)
	if len(parts) != 2 {
		srv.log(ctx).Warn("Malformed order reference", slog.String("reference", reference))

		return nil, false
	}

	return srv.FetchOne(ctx, parts[0], parts[1])
}

func (srv *orderService) UpdateStatus(
	ctx context.Context,
	ownerID, orderID string,
	status entity.OrderStatus,
	extra map[string]any,
) bool {
	if orderID == "" || status == "" {
		srv.log(ctx).Warn("Status update missing order id or status",
			slog.String("order_id", orderID),
			slog.String("status", status.String()),
		)

		return false
	}

	patch := make(map[string]any, len(extra)+1)
	patch["status"] = status.String()
	for key, value := range extra {
		patch[key] = value
	}

	var (
		wg       sync.WaitGroup
		ownerErr error
		flatErr  error
	)

	writeOwner := ownerID != "" && ownerID != orderID
	if writeOwner {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ownerErr = srv.orderRepo.UpdateOwnerOrder(ctx, ownerID, orderID, patch)
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		flatErr = srv.orderRepo.UpdateFlatOrder(ctx, orderID, patch)
	}()

	wg.Wait()

	if writeOwner && ownerErr != nil {
		srv.log(ctx).Warn("Owner order status write failed",
			slog.String("owner_id", ownerID),
			slog.String("order_id", orderID),
			slog.Any("error", ownerErr),
		)
	}
	if flatErr != nil {
		srv.log(ctx).Warn("Flat order status write failed",
			slog.String("order_id", orderID),
			slog.Any("error", flatErr),
		)
	}

	updated := (writeOwner && ownerErr == nil) || flatErr == nil
	if !updated {
		srv.log(ctx).Error("Order status update failed in every location",
			slog.String("order_id", orderID),
			slog.String("status", status.String()),
		)

		return false
	}

	srv.log(ctx).Info("Order status updated",
		slog.String("owner_id", ownerID),
		slog.String("order_id", orderID),
		slog.Any("status", patch["status"]),
	)

	srv.announceStatusChange(ctx, ownerID, orderID, patch)

	return true
}

func (srv *orderService) AcceptOrder(ctx context.Context, ownerID, orderID string) bool {
	return srv.UpdateStatus(ctx, ownerID, orderID, entity.OrderStatusConfirmed, map[string]any{
		"acceptedAt": repository.ServerTimestamp{},
	})
}

func (srv *orderService) StartDelivery(ctx context.Context, ownerID, orderID string) bool {
	return srv.UpdateStatus(ctx, ownerID, orderID, entity.OrderStatusInProgress, map[string]any{
		"startedAt": repository.ServerTimestamp{},
	})
}

func (srv *orderService) MarkDelivered(ctx context.Context, ownerID, orderID string, delivery map[string]any) bool {
	extra := map[string]any{
		"deliveredAt": repository.ServerTimestamp{},
	}
	for key, value := range delivery {
		extra[key] = value
	}

	return srv.UpdateStatus(ctx, ownerID, orderID, entity.OrderStatusDelivered, extra)
}

// announceStatusChange publishes the status event. The worker turns it into the owner push.
// Failures are logged only; the write already took effect.
func (srv *orderService) announceStatusChange(ctx context.Context, ownerID, orderID string, patch map[string]any) {
	if srv.publisher == nil {
		return
	}

	changedAt := time.Now().UTC()
	status, _ := patch["status"].(string)

	fields := make(map[string]any, len(patch))
	for key, value := range patch {
		if key == "status" {
			continue
		}
		if _, ok := value.(repository.ServerTimestamp); ok {
			value = changedAt
		}
		fields[key] = value
	}

	event := &service.OrderStatusEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:   orderID,
		OwnerID:   ownerID,
		Status:    status,
		Fields:    fields,
		ChangedAt: changedAt,
	}
	if err := srv.publisher.PublishOrderStatusEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order status event",
			slog.String("order_id", orderID),
			slog.Any("error", err),
		)
	}
}

// withIdentity copies a raw document and sets its id and owner
func withIdentity(data entity.RawOrder, id, ownerID string) entity.RawOrder {
	raw := make(entity.RawOrder, len(data)+2)
	for key, value := range data {
		raw[key] = value
	}
	raw["id"] = id
	raw["userId"] = ownerID

	return raw
}
