package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"courier/internal/delivery/api/response"
	"courier/internal/delivery/api/validator"
	"courier/internal/domain/entity"
	"courier/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	profileImageFormField  = "profileImage"
	identityImageFormField = "identityImage"
)

// DeliverymanHandlerParams holds dependencies for DeliverymanHandler, injected by Fx.
type DeliverymanHandlerParams struct {
	fx.In

	DeliverymanUC usecase.DeliverymanUsecase
	Logger        *slog.Logger
}

// DeliverymanHandler serves courier sign-up, profiles and sign-in status checks
type DeliverymanHandler struct {
	deliverymanUC usecase.DeliverymanUsecase
	logger        *slog.Logger
}

// NewDeliverymanHandler is the constructor for DeliverymanHandler
func NewDeliverymanHandler(params DeliverymanHandlerParams) *DeliverymanHandler {
	return &DeliverymanHandler{
		deliverymanUC: params.DeliverymanUC,
		logger:        params.Logger,
	}
}

// ApplicationRequest is a courier sign-up.
// Multipart forms carry the images as "profileImage" and "identityImage" files;
// JSON bodies carry them base64 encoded.
type ApplicationRequest struct {
	FirstName      string `json:"firstName" form:"firstName" validate:"required"`
	LastName       string `json:"lastName" form:"lastName" validate:"required"`
	Email          string `json:"email" form:"email" validate:"required,email"`
	Phone          string `json:"phone" form:"phone" validate:"required"`
	Zone           string `json:"zone" form:"zone" validate:"required"`
	Vehicle        string `json:"vehicle" form:"vehicle"`
	IdentityType   string `json:"identityType" form:"identityType"`
	IdentityNumber string `json:"identityNumber" form:"identityNumber" validate:"required"`
	Birthdate      string `json:"birthdate" form:"birthdate" validate:"required,datetime=2006-01-02"`

	ProfileImage  []byte `json:"profileImage"`
	IdentityImage []byte `json:"identityImage"`
}

// ApplicationResponse identifies a stored application
type ApplicationResponse struct {
	ApplicationID string `json:"applicationId"`
	Status        string `json:"status"`
}

// EmailQuery selects a courier account by email
type EmailQuery struct {
	Email string `json:"email" query:"email" validate:"required,email"`
}

// SubmitApplication handles a courier applying for an account
func (h *DeliverymanHandler) SubmitApplication(c echo.Context) error {
	var req ApplicationRequest
	if err := c.Bind(&req); err != nil {
		requestLogger(c, h.logger).Debug("Invalid application body", slog.Any("error", err))

		return response.BindingError(c, "INVALID_INPUT", "Invalid application input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.FieldErrors(err))
	}

	input := &usecase.DeliverymanApplicationInput{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		Zone:           req.Zone,
		Vehicle:        req.Vehicle,
		IdentityType:   req.IdentityType,
		IdentityNumber: req.IdentityNumber,
		Birthdate:      req.Birthdate,
		ProfileImage:   req.ProfileImage,
		IdentityImage:  req.IdentityImage,
	}

	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		var err error
		input.ProfileImage, input.ProfileImageContentType, err = readFormFile(c, profileImageFormField)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		input.IdentityImage, input.IdentityImageContentType, err = readFormFile(c, identityImageFormField)
		if err != nil {
			return response.HandleAppError(c, err)
		}
	}

	id, err := h.deliverymanUC.SubmitApplication(c.Request().Context(), input)
	if err != nil {
		requestLogger(c, h.logger).Info("Application refused", slog.Any("error", err))

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, &ApplicationResponse{
		ApplicationID: id,
		Status:        "inactive",
	})
}

// GetDeliveryman handles retrieving a courier profile by id
func (h *DeliverymanHandler) GetDeliveryman(c echo.Context) error {
	deliveryman, err := h.deliverymanUC.GetProfile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, deliveryman)
}

// FindDeliveryman handles retrieving a courier profile by email
func (h *DeliverymanHandler) FindDeliveryman(c echo.Context) error {
	return h.byEmail(c, h.deliverymanUC.FindByEmail)
}

// VerifyStatus handles the sign-in check: 200 with the profile for active accounts,
// 403 with the reason for the rest
func (h *DeliverymanHandler) VerifyStatus(c echo.Context) error {
	return h.byEmail(c, h.deliverymanUC.VerifyStatus)
}

func (h *DeliverymanHandler) byEmail(
	c echo.Context,
	lookup func(ctx context.Context, email string) (*entity.Deliveryman, error),
) error {
	var query EmailQuery
	if err := c.Bind(&query); err != nil {
		requestLogger(c, h.logger).Debug("Invalid email query", slog.Any("error", err))

		return response.BindingError(c, "INVALID_INPUT", "Invalid email")
	}

	if err := c.Validate(&query); err != nil {
		return response.ValidationError(c, validator.FieldErrors(err))
	}

	deliveryman, err := lookup(c.Request().Context(), query.Email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, deliveryman)
}
