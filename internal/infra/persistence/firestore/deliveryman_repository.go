package firestore

import (
	"context"
	"log/slog"

	"courier/config"
	deliverycontext "courier/internal/delivery/context"
	"courier/internal/domain/entity"
	"courier/internal/domain/repository"
	"courier/internal/errors"

	cloudfirestore "cloud.google.com/go/firestore"
	"go.uber.org/fx"
	"google.golang.org/api/iterator"
)

const createdAtField = "createdAt"

type deliverymanRepository struct {
	client                *cloudfirestore.Client
	deliverymanCollection string
	applicationCollection string
	logger                *slog.Logger
}

// DeliverymanRepositoryParams holds dependencies for the deliveryman repository, injected by Fx
type DeliverymanRepositoryParams struct {
	fx.In

	Client *cloudfirestore.Client
	Config *config.Config
	Logger *slog.Logger
}

// NewDeliverymanRepository creates a Firestore-backed DeliverymanRepository
func NewDeliverymanRepository(params DeliverymanRepositoryParams) repository.DeliverymanRepository {
	return newDeliverymanRepository(params.Client, params.Config.Firestore, params.Logger)
}

func newDeliverymanRepository(client *cloudfirestore.Client, cfg *config.FirestoreConfig, logger *slog.Logger) *deliverymanRepository {
	return &deliverymanRepository{
		client:                client,
		deliverymanCollection: cfg.DeliverymanCollection,
		applicationCollection: cfg.ApplicationCollection,
		logger:                logger,
	}
}

func (r *deliverymanRepository) CreateApplication(ctx context.Context, application *entity.DeliverymanApplication) (string, error) {
	ref := r.client.Collection(r.applicationCollection).NewDoc()

	fields := applicationFields(ref.ID, application)
	fields[createdAtField] = cloudfirestore.ServerTimestamp
	fields[updatedAtField] = cloudfirestore.ServerTimestamp

	if _, err := ref.Create(ctx, fields); err != nil {
		return "", errors.Wrapf(err, "failed to create application in %s", r.applicationCollection)
	}

	deliverycontext.GetLoggerOrDefault(ctx, r.logger).Debug("Deliveryman application stored",
		slog.String("application_id", ref.ID),
	)

	return ref.ID, nil
}

func (r *deliverymanRepository) FindByID(ctx context.Context, id string) (*entity.Deliveryman, error) {
	snap, err := r.client.Collection(r.deliverymanCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrDeliverymanNotFound
		}

		return nil, errors.Wrapf(err, "failed to read deliveryman %s", id)
	}

	return decodeDeliveryman(snap)
}

func (r *deliverymanRepository) FindByEmail(ctx context.Context, email string) (*entity.Deliveryman, error) {
	iter := r.client.Collection(r.deliverymanCollection).
		Where("email", "==", entity.NormalizeEmail(email)).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		return nil, repository.ErrDeliverymanNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query %s by email", r.deliverymanCollection)
	}

	return decodeDeliveryman(snap)
}

func decodeDeliveryman(snap *cloudfirestore.DocumentSnapshot) (*entity.Deliveryman, error) {
	var doc deliverymanDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode deliveryman %s", snap.Ref.ID)
	}

	return toDeliverymanDomain(snap.Ref.ID, &doc), nil
}
