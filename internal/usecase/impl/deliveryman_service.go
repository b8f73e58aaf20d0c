package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	deliverycontext "courier/internal/delivery/context"
	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/repository"
	"courier/internal/domain/service"
	"courier/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	birthdateLayout = "2006-01-02"

	profileImagePrefix  = "deliverymen_applications/profiles"
	identityImagePrefix = "deliverymen_applications/identity_documents"
)

// deliverymanService implements the DeliverymanUsecase interface.
type deliverymanService struct {
	deliverymen repository.DeliverymanRepository
	storage     service.ProofStorage
	logger      *slog.Logger
	now         func() time.Time
}

// NewDeliverymanService is the constructor for deliverymanService.
func NewDeliverymanService(
	deliverymen repository.DeliverymanRepository,
	storage service.ProofStorage,
	logger *slog.Logger,
) usecase.DeliverymanUsecase {
	return &deliverymanService{
		deliverymen: deliverymen,
		storage:     storage,
		logger:      logger,
		now:         time.Now,
	}
}

func (srv *deliverymanService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitApplication rejects emails that already belong to an account, uploads the images
// and stores the application as inactive until support approves it.
func (srv *deliverymanService) SubmitApplication(ctx context.Context, input *usecase.DeliverymanApplicationInput) (string, error) {
	if len(input.IdentityImage) == 0 {
		return "", domainerrors.ErrValidationFailed.WithDetails("identity image is required")
	}

	age, err := ageOn(input.Birthdate, srv.now())
	if err != nil {
		return "", domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}
	if age < usecase.MinimumDeliverymanAge {
		return "", domainerrors.ErrValidationFailed.WithDetails(
			"applicants must be at least " + strconv.Itoa(usecase.MinimumDeliverymanAge) + " years old")
	}

	email := entity.NormalizeEmail(input.Email)
	if _, err := srv.deliverymen.FindByEmail(ctx, email); err == nil {
		return "", domainerrors.ErrDeliverymanAlreadyExists
	} else if !errors.Is(err, repository.ErrDeliverymanNotFound) {
		return "", domainerrors.NewStorageExecuteError(err, "failed to check existing accounts")
	}

	application := &entity.DeliverymanApplication{
		FirstName:      strings.TrimSpace(input.FirstName),
		LastName:       strings.TrimSpace(input.LastName),
		Email:          email,
		Phone:          strings.TrimSpace(input.Phone),
		Zone:           input.Zone,
		Vehicle:        input.Vehicle,
		IdentityType:   input.IdentityType,
		IdentityNumber: strings.TrimSpace(input.IdentityNumber),
		Age:            age,
		Birthdate:      input.Birthdate,
		Status:         entity.DeliverymanStatusInactive,
	}

	if len(input.ProfileImage) > 0 {
		application.ProfileImageURL, err = srv.uploadImage(ctx, profileImagePrefix, input.ProfileImage, input.ProfileImageContentType)
		if err != nil {
			return "", err
		}
	}

	application.IdentityImageURL, err = srv.uploadImage(ctx, identityImagePrefix, input.IdentityImage, input.IdentityImageContentType)
	if err != nil {
		return "", err
	}

	id, err := srv.deliverymen.CreateApplication(ctx, application)
	if err != nil {
		srv.log(ctx).Error("Failed to store deliveryman application", slog.Any("error", err))

		return "", domainerrors.NewStorageExecuteError(err, "failed to store application")
	}

	srv.log(ctx).Info("Deliveryman application submitted",
		slog.String("application_id", id),
		slog.String("zone", application.Zone),
	)

	return id, nil
}

func (srv *deliverymanService) uploadImage(ctx context.Context, prefix string, data []byte, contentType string) (string, error) {
	contentType = contentTypeOr(contentType, proofContentType)
	key := prefix + "/" + uuid.NewString() + imageExtension(contentType)

	url, err := srv.storage.Upload(ctx, key, data, contentType)
	if err != nil {
		srv.log(ctx).Error("Failed to store application image",
			slog.String("key", key),
			slog.Any("error", err),
		)

		return "", domainerrors.NewStorageExecuteError(err, "failed to store application image")
	}

	return url, nil
}

// GetProfile retrieves an approved courier account.
func (srv *deliverymanService) GetProfile(ctx context.Context, id string) (*entity.Deliveryman, error) {
	srv.log(ctx).Debug("Getting deliveryman profile", slog.String("deliveryman_id", id))

	if strings.TrimSpace(id) == "" {
		return nil, domainerrors.ErrDeliverymanNotFound
	}

	deliveryman, err := srv.deliverymen.FindByID(ctx, id)
	if err != nil {
		return nil, srv.lookupError(err, "failed to find deliveryman by id")
	}

	return deliveryman, nil
}

func (srv *deliverymanService) FindByEmail(ctx context.Context, email string) (*entity.Deliveryman, error) {
	if entity.NormalizeEmail(email) == "" {
		return nil, domainerrors.ErrDeliverymanNotFound
	}

	deliveryman, err := srv.deliverymen.FindByEmail(ctx, email)
	if err != nil {
		return nil, srv.lookupError(err, "failed to find deliveryman by email")
	}

	return deliveryman, nil
}

// VerifyStatus gates sign-in: only active accounts pass.
func (srv *deliverymanService) VerifyStatus(ctx context.Context, email string) (*entity.Deliveryman, error) {
	deliveryman, err := srv.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	switch deliveryman.Status {
	case entity.DeliverymanStatusActive:
		return deliveryman, nil
	case entity.DeliverymanStatusInactive:
		err = domainerrors.ErrAccountInactive
	case entity.DeliverymanStatusSuspended:
		err = domainerrors.ErrAccountSuspended
	default:
		err = domainerrors.NewAccountNotActiveError(deliveryman.Status)
	}

	srv.log(ctx).Info("Deliveryman sign-in refused",
		slog.String("deliveryman_id", deliveryman.ID),
		slog.String("status", string(deliveryman.Status)),
	)

	return nil, err
}

func (srv *deliverymanService) lookupError(err error, message string) error {
	if errors.Is(err, repository.ErrDeliverymanNotFound) {
		return errors.Wrap(domainerrors.ErrDeliverymanNotFound, message)
	}

	return domainerrors.NewStorageExecuteError(err, message)
}

// ageOn returns the age in whole years on the given day of someone born on birthdate.
func ageOn(birthdate string, now time.Time) (int, error) {
	born, err := time.Parse(birthdateLayout, birthdate)
	if err != nil {
		return 0, errors.New("birthdate must be formatted YYYY-MM-DD")
	}

	now = now.UTC()
	if born.After(now) {
		return 0, errors.New("birthdate is in the future")
	}

	age := now.Year() - born.Year()
	if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
		age--
	}

	return age, nil
}

func imageExtension(contentType string) string {
	if contentType == "image/png" {
		return ".png"
	}

	return ".jpg"
}
