package firestore

import (
	"context"
	"log/slog"
	"sort"

	"courier/config"
	deliverycontext "courier/internal/delivery/context"
	"courier/internal/domain/repository"
	"courier/internal/errors"

	cloudfirestore "cloud.google.com/go/firestore"
	"go.uber.org/fx"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const updatedAtField = "updatedAt"

type orderRepository struct {
	client          *cloudfirestore.Client
	ownerCollection string
	orderCollection string
	logger          *slog.Logger
}

// OrderRepositoryParams holds dependencies for the order repository, injected by Fx
type OrderRepositoryParams struct {
	fx.In

	Client *cloudfirestore.Client
	Config *config.Config
	Logger *slog.Logger
}

// NewOrderRepository creates a Firestore-backed OrderRepository
func NewOrderRepository(params OrderRepositoryParams) repository.OrderRepository {
	return newOrderRepository(params.Client, params.Config.Firestore, params.Logger)
}

func newOrderRepository(client *cloudfirestore.Client, cfg *config.FirestoreConfig, logger *slog.Logger) *orderRepository {
	return &orderRepository{
		client:          client,
		ownerCollection: cfg.OwnerCollection,
		orderCollection: cfg.OrderCollection,
		logger:          logger,
	}
}

func (r *orderRepository) ListOwnerOrders(ctx context.Context) ([]*repository.OrderDocument, error) {
	// The collection group also matches the top-level collection of the same name
	snapshots, err := r.client.CollectionGroup(r.orderCollection).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query %s collection group", r.orderCollection)
	}

	docs := make([]*repository.OrderDocument, 0, len(snapshots))
	for _, snap := range snapshots {
		ownerID, ok := r.ownerIDFromRef(snap.Ref)
		if !ok {
			continue
		}
		docs = append(docs, &repository.OrderDocument{
			ID:      snap.Ref.ID,
			OwnerID: ownerID,
			Data:    snap.Data(),
		})
	}

	deliverycontext.GetLoggerOrDefault(ctx, r.logger).Debug("Owner orders listed",
		slog.Int("matched", len(snapshots)),
		slog.Int("owner_orders", len(docs)),
	)

	return docs, nil
}

func (r *orderRepository) ListFlatOrders(ctx context.Context) ([]*repository.OrderDocument, error) {
	snapshots, err := r.client.Collection(r.orderCollection).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query %s collection", r.orderCollection)
	}

	docs := make([]*repository.OrderDocument, 0, len(snapshots))
	for _, snap := range snapshots {
		docs = append(docs, &repository.OrderDocument{
			ID:   snap.Ref.ID,
			Data: snap.Data(),
		})
	}

	return docs, nil
}

func (r *orderRepository) FindOwnerOrder(ctx context.Context, ownerID, orderID string) (*repository.OrderDocument, error) {
	snap, err := r.ownerOrderRef(ownerID, orderID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrapf(err, "failed to read order %s of owner %s", orderID, ownerID)
	}

	return &repository.OrderDocument{
		ID:      snap.Ref.ID,
		OwnerID: ownerID,
		Data:    snap.Data(),
	}, nil
}

func (r *orderRepository) UpdateOwnerOrder(ctx context.Context, ownerID, orderID string, fields map[string]any) error {
	return r.update(ctx, r.ownerOrderRef(ownerID, orderID), fields)
}

func (r *orderRepository) UpdateFlatOrder(ctx context.Context, orderID string, fields map[string]any) error {
	return r.update(ctx, r.client.Collection(r.orderCollection).Doc(orderID), fields)
}

// update merges fields into an existing document; Update fails when the document is missing
func (r *orderRepository) update(ctx context.Context, ref *cloudfirestore.DocumentRef, fields map[string]any) error {
	if _, err := ref.Update(ctx, buildUpdates(fields)); err != nil {
		if isNotFound(err) {
			return repository.ErrOrderNotFound
		}

		return errors.Wrapf(err, "failed to update %s", ref.Path)
	}

	return nil
}

func (r *orderRepository) ownerOrderRef(ownerID, orderID string) *cloudfirestore.DocumentRef {
	return r.client.Collection(r.ownerCollection).Doc(ownerID).Collection(r.orderCollection).Doc(orderID)
}

// ownerIDFromRef returns the owner of a subcollection order document.
// Documents not nested directly under the owner collection are rejected.
func (r *orderRepository) ownerIDFromRef(ref *cloudfirestore.DocumentRef) (string, bool) {
	if ref == nil || ref.Parent == nil {
		return "", false
	}

	ownerDoc := ref.Parent.Parent
	if ownerDoc == nil || ownerDoc.Parent == nil || ownerDoc.Parent.ID != r.ownerCollection {
		return "", false
	}

	return ownerDoc.ID, true
}

// buildUpdates converts a patch into Firestore updates and stamps updatedAt with server time.
// Keys are literal field names, never dotted paths.
func buildUpdates(fields map[string]any) []cloudfirestore.Update {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	updates := make([]cloudfirestore.Update, 0, len(keys)+1)
	for _, key := range keys {
		updates = append(updates, cloudfirestore.Update{
			FieldPath: cloudfirestore.FieldPath{key},
			Value:     toFirestoreValue(fields[key]),
		})
	}

	if _, ok := fields[updatedAtField]; !ok {
		updates = append(updates, cloudfirestore.Update{
			FieldPath: cloudfirestore.FieldPath{updatedAtField},
			Value:     cloudfirestore.ServerTimestamp,
		})
	}

	return updates
}

func toFirestoreValue(value any) any {
	if _, ok := value.(repository.ServerTimestamp); ok {
		return cloudfirestore.ServerTimestamp
	}

	return value
}

func isNotFound(err error) bool {
	return status.Code(errors.Cause(err)) == codes.NotFound
}
