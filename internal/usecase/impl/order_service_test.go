package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	deliverycontext "courier/internal/delivery/context"
	"courier/internal/domain/entity"
	"courier/internal/domain/repository"
	"courier/internal/domain/service"
	mockRepo "courier/internal/mocks/repository"
	mockService "courier/internal/mocks/service"
	"courier/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	orderRepo *mockRepo.MockOrderRepository
	publisher *mockService.MockEventPublisher
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	publisher := mockService.NewMockEventPublisher(t)

	return orderServiceFixtures{
		service:   NewOrderService(orderRepo, publisher, discardLogger()),
		orderRepo: orderRepo,
		publisher: publisher,
	}
}

// allowAnnouncements accepts any status event.
func (f orderServiceFixtures) allowAnnouncements() {
	f.publisher.EXPECT().PublishOrderStatusEvent(mock.Anything, mock.Anything).Return(nil).Maybe()
}

func (f orderServiceFixtures) expectListing(ownerDocs, flatDocs []*repository.OrderDocument) {
	f.orderRepo.EXPECT().ListOwnerOrders(mock.Anything).Return(ownerDocs, nil)
	f.orderRepo.EXPECT().ListFlatOrders(mock.Anything).Return(flatDocs, nil)
}

func ownerDoc(ownerID, orderID string, data entity.RawOrder) *repository.OrderDocument {
	return &repository.OrderDocument{ID: orderID, OwnerID: ownerID, Data: data}
}

func flatDoc(orderID string, data entity.RawOrder) *repository.OrderDocument {
	return &repository.OrderDocument{ID: orderID, Data: data}
}

func TestOrderService_FetchAll_SubcollectionWinsOnCollision(t *testing.T) {
	f := createTestOrderService(t)
	ctx := context.Background()

	f.expectListing(
		[]*repository.OrderDocument{ownerDoc("u1", "X", entity.RawOrder{"customerName": "from owner"})},
		[]*repository.OrderDocument{
			flatDoc("X", entity.RawOrder{"customerName": "from flat"}),
			flatDoc("Y", entity.RawOrder{"customerName": "flat only", "userId": "u2"}),
		},
	)

	orders := f.service.FetchAll(ctx)

	require.Len(t, orders, 2)
	assert.Equal(t, "X", orders[0].ID)
	assert.Equal(t, "u1", orders[0].UserID)
	assert.Equal(t, "from owner", orders[0].CustomerName)
	assert.Equal(t, "Y", orders[1].ID)
	assert.Equal(t, "u2", orders[1].UserID)
}

func TestOrderService_FetchAll_FlatOrderWithoutOwnerUsesOwnID(t *testing.T) {
	f := createTestOrderService(t)

	f.expectListing(nil, []*repository.OrderDocument{flatDoc("Z", entity.RawOrder{"status": "pending"})})

	orders := f.service.FetchAll(context.Background())

	require.Len(t, orders, 1)
	assert.Equal(t, "Z", orders[0].UserID)
	assert.Equal(t, "Z", orders[0].Reference())
}

func TestOrderService_FetchAll_DocumentIDOverridesStoredFields(t *testing.T) {
	f := createTestOrderService(t)

	f.expectListing([]*repository.OrderDocument{
		ownerDoc("u1", "o1", entity.RawOrder{"id": "stale", "userId": "someone-else"}),
	}, nil)

	orders := f.service.FetchAll(context.Background())

	require.Len(t, orders, 1)
	assert.Equal(t, "o1", orders[0].ID)
	assert.Equal(t, "u1", orders[0].UserID)
}

func TestOrderService_FetchAll_ErrorYieldsEmpty(t *testing.T) {
	f := createTestOrderService(t)

	f.orderRepo.EXPECT().ListOwnerOrders(mock.Anything).Return(nil, errors.New("permission denied"))
	f.orderRepo.EXPECT().ListFlatOrders(mock.Anything).Return([]*repository.OrderDocument{flatDoc("Y", nil)}, nil)

	orders := f.service.FetchAll(context.Background())

	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}

func TestOrderService_FetchOne_Direct(t *testing.T) {
	f := createTestOrderService(t)
	ctx := context.Background()

	f.orderRepo.EXPECT().
		FindOwnerOrder(ctx, "u1", "o1").
		Return(ownerDoc("u1", "o1", entity.RawOrder{"status": "confirmed"}), nil)

	order, ok := f.service.FetchOne(ctx, "u1", "o1")
	require.True(t, ok)
	assert.Equal(t, "o1", order.ID)
	assert.Equal(t, "u1", order.UserID)
	assert.Equal(t, entity.OrderStatusConfirmed, order.Status)
}

func TestOrderService_FetchOne_OwnerEqualsOrderSkipsDirectRead(t *testing.T) {
	f := createTestOrderService(t)
	ctx := context.Background()

	// No FindOwnerOrder expectation: a direct read would fail the mock
	f.expectListing([]*repository.OrderDocument{ownerDoc("u9", "o1", entity.RawOrder{})}, nil)

	order, ok := f.service.FetchOne(ctx, "o1", "o1")
	require.True(t, ok)
	assert.Equal(t, "u9", order.UserID)
}

func TestOrderService_FetchOne_MissFallsBackToSearch(t *testing.T) {
	tests := []struct {
		name    string
		readErr error
	}{
		{name: "not found", readErr: repository.ErrOrderNotFound},
		{name: "read failure", readErr: errors.New("deadline exceeded")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestOrderService(t)
			ctx := context.Background()

			f.orderRepo.EXPECT().FindOwnerOrder(ctx, "wrong-owner", "o1").Return(nil, tt.readErr)
			f.expectListing(
				[]*repository.OrderDocument{ownerDoc("u1", "o1", entity.RawOrder{})},
				nil,
			)

			order, ok := f.service.FetchOne(ctx, "wrong-owner", "o1")
			require.True(t, ok)
			assert.Equal(t, "u1", order.UserID)
		})
	}
}

func TestOrderService_FetchOne_NotFoundAnywhere(t *testing.T) {
	f := createTestOrderService(t)
	ctx := context.Background()

	f.orderRepo.EXPECT().FindOwnerOrder(ctx, "u1", "missing").Return(nil, repository.ErrOrderNotFound)
	f.expectListing(nil, nil)

	order, ok := f.service.FetchOne(ctx, "u1", "missing")
	assert.False(t, ok)
	assert.Nil(t, order)
}

func TestOrderService_FindByID(t *testing.T) {
	f := createTestOrderService(t)

	f.expectListing(
		[]*repository.OrderDocument{ownerDoc("u1", "a", entity.RawOrder{}), ownerDoc("u2", "b", entity.RawOrder{})},
		[]*repository.OrderDocument{flatDoc("c", entity.RawOrder{})},
	)

	order, ok := f.service.FindByID(context.Background(), "b")
	require.True(t, ok)
	assert.Equal(t, "u2", order.UserID)

	_, ok = f.service.FindByID(context.Background(), "")
	assert.False(t, ok)
}

func TestOrderService_ResolveReference(t *testing.T) {
	t.Run("composite reference reads owner order", func(t *testing.T) {
		f := createTestOrderService(t)
		ctx := context.Background()

		f.orderRepo.EXPECT().FindOwnerOrder(ctx, "u1", "o1").Return(ownerDoc("u1", "o1", entity.RawOrder{}), nil)

		order, ok := f.service.ResolveReference(ctx, "u1_o1")
		require.True(t, ok)
		assert.Equal(t, "u1_o1", order.Reference())
	})

	t.Run("bare id searches all orders", func(t *testing.T) {
		f := createTestOrderService(t)
		f.expectListing(nil, []*repository.OrderDocument{flatDoc("o5", entity.RawOrder{"userId": "u5"})})

		order, ok := f.service.ResolveReference(context.Background(), " o5 ")
		require.True(t, ok)
		assert.Equal(t, "u5", order.UserID)
	})

	t.Run("too many parts", func(t *testing.T) {
		f := createTestOrderService(t)

		_, ok := f.service.ResolveReference(context.Background(), "a_b_c")
		assert.False(t, ok)
	})

	t.Run("empty", func(t *testing.T) {
		f := createTestOrderService(t)

		_, ok := f.service.ResolveReference(context.Background(), "  ")
		assert.False(t, ok)
	})
}

func TestOrderService_UpdateStatus_FlatWriteAloneSucceeds(t *testing.T) {
	f := createTestOrderService(t)
	f.allowAnnouncements()
	ctx := context.Background()

	want := map[string]any{"status": "delivered", "amountCollected": 22.5}
	f.orderRepo.EXPECT().UpdateOwnerOrder(ctx, "u1", "o1", want).Return(errors.New("unavailable"))
	f.orderRepo.EXPECT().UpdateFlatOrder(ctx, "o1", want).Return(nil)

	ok := f.service.UpdateStatus(ctx, "u1", "o1", entity.OrderStatusDelivered, map[string]any{"amountCollected": 22.5})
	assert.True(t, ok)
}

func TestOrderService_UpdateStatus_OwnerWriteAloneSucceeds(t *testing.T) {
	f := createTestOrderService(t)
	f.allowAnnouncements()
	ctx := context.Background()

	f.orderRepo.EXPECT().UpdateOwnerOrder(ctx, "u1", "o1", mock.Anything).Return(nil)
	f.orderRepo.EXPECT().UpdateFlatOrder(ctx, "o1", mock.Anything).Return(repository.ErrOrderNotFound)

	assert.True(t, f.service.UpdateStatus(ctx, "u1", "o1", entity.OrderStatusConfirmed, nil))
}

func TestOrderService_UpdateStatus_BothWritesFail(t *testing.T) {
	f := createTestOrderService(t)
	ctx := context.Background()

	f.orderRepo.EXPECT().UpdateOwnerOrder(ctx, "u1", "o1", mock.Anything).Return(errors.New("unavailable"))
	f.orderRepo.EXPECT().UpdateFlatOrder(ctx, "o1", mock.Anything).Return(repository.ErrOrderNotFound)

	// No announcement expectations: a failed update must not publish
	assert.False(t, f.service.UpdateStatus(ctx, "u1", "o1", entity.OrderStatusConfirmed, nil))
}

func TestOrderService_UpdateStatus_OnlyFlatPathWithoutUsableOwner(t *testing.T) {
	for _, ownerID := range []string{"", "o1"} {
		t.Run("owner="+ownerID, func(t *testing.T) {
			f := createTestOrderService(t)
			ctx := context.Background()

			f.publisher.EXPECT().PublishOrderStatusEvent(ctx, mock.Anything).Return(nil)
			f.orderRepo.EXPECT().UpdateFlatOrder(ctx, "o1", map[string]any{"status": "cancelled"}).Return(nil)

			assert.True(t, f.service.UpdateStatus(ctx, ownerID, "o1", entity.OrderStatusCancelled, nil))
		})
	}
}

func TestOrderService_UpdateStatus_RejectsMissingInput(t *testing.T) {
	f := createTestOrderService(t)

	assert.False(t, f.service.UpdateStatus(context.Background(), "u1", "", entity.OrderStatusConfirmed, nil))
	assert.False(t, f.service.UpdateStatus(context.Background(), "u1", "o1", "", nil))
}

func TestOrderService_UpdateStatus_ExtraFieldsAppliedLast(t *testing.T) {
	f := createTestOrderService(t)
	f.allowAnnouncements()
	ctx := context.Background()

	want := map[string]any{"status": "completed"}
	f.orderRepo.EXPECT().UpdateOwnerOrder(ctx, "u1", "o1", want).Return(nil)
	f.orderRepo.EXPECT().UpdateFlatOrder(ctx, "o1", want).Return(nil)

	assert.True(t, f.service.UpdateStatus(ctx, "u1", "o1", entity.OrderStatusDelivered, map[string]any{"status": "completed"}))
}

func TestOrderService_UpdateStatus_AnnouncesChange(t *testing.T) {
	f := createTestOrderService(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")

	f.orderRepo.EXPECT().UpdateOwnerOrder(ctx, "u1", "o1", mock.Anything).Return(nil)
	f.orderRepo.EXPECT().UpdateFlatOrder(ctx, "o1", mock.Anything).Return(repository.ErrOrderNotFound)

	f.publisher.EXPECT().
		PublishOrderStatusEvent(ctx, mock.MatchedBy(func(event *service.OrderStatusEvent) bool {
			return event.RequestID == "req-42" &&
				event.OrderID == "o1" &&
				event.OwnerID == "u1" &&
				event.Status == "in-progress" &&
				!event.ChangedAt.IsZero()
		})).
		Return(errors.New("publish failed"))

	// Publish failures do not change the outcome
	assert.True(t, f.service.UpdateStatus(ctx, "u1", "o1", entity.OrderStatusInProgress, nil))
}

func TestOrderService_AcceptOrder(t *testing.T) {
	f := createTestOrderService(t)
	ctx := context.Background()

	want := map[string]any{"status": "confirmed", "acceptedAt": repository.ServerTimestamp{}}
	f.orderRepo.EXPECT().UpdateOwnerOrder(ctx, "u1", "o1", want).Return(nil)
	f.orderRepo.EXPECT().UpdateFlatOrder(ctx, "o1", want).Return(nil)

	f.publisher.EXPECT().
		PublishOrderStatusEvent(ctx, mock.MatchedBy(func(event *service.OrderStatusEvent) bool {
			acceptedAt, ok := event.Fields["acceptedAt"].(time.Time)

			return ok && acceptedAt.Equal(event.ChangedAt)
		})).
		Return(nil)

	assert.True(t, f.service.AcceptOrder(ctx, "u1", "o1"))
}

func TestOrderService_StartDelivery(t *testing.T) {
	f := createTestOrderService(t)
	f.allowAnnouncements()
	ctx := context.Background()

	want := map[string]any{"status": "in-progress", "startedAt": repository.ServerTimestamp{}}
	f.orderRepo.EXPECT().UpdateOwnerOrder(ctx, "u1", "o1", want).Return(nil)
	f.orderRepo.EXPECT().UpdateFlatOrder(ctx, "o1", want).Return(nil)

	assert.True(t, f.service.StartDelivery(ctx, "u1", "o1"))
}

func TestOrderService_MarkDelivered(t *testing.T) {
	f := createTestOrderService(t)
	f.allowAnnouncements()
	ctx := context.Background()

	want := map[string]any{
		"status":          "delivered",
		"deliveredAt":     repository.ServerTimestamp{},
		"amountCollected": 120.0,
		"signatureUrl":    "mem:///deliveries/u1/o1/signature.png",
	}
	f.orderRepo.EXPECT().UpdateOwnerOrder(ctx, "u1", "o1", want).Return(nil)
	f.orderRepo.EXPECT().UpdateFlatOrder(ctx, "o1", want).Return(repository.ErrOrderNotFound)

	assert.True(t, f.service.MarkDelivered(ctx, "u1", "o1", map[string]any{
		"amountCollected": 120.0,
		"signatureUrl":    "mem:///deliveries/u1/o1/signature.png",
	}))
}

func TestOrderService_MapOrderFields(t *testing.T) {
	f := createTestOrderService(t)

	order := f.service.MapOrderFields(entity.RawOrder{"id": "o1", "status": "delivered"})
	assert.Equal(t, "o1", order.ID)
	assert.Equal(t, "Livrée", order.Status.DisplayName())
}
