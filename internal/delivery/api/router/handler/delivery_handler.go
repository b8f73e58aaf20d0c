package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"courier/internal/delivery/api/response"
	"courier/internal/delivery/api/validator"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	signatureFormField = "signature"
	proofFormField     = "proof"
)

// DeliveryHandlerParams holds dependencies for DeliveryHandler, injected by Fx.
type DeliveryHandlerParams struct {
	fx.In

	DeliveryUC   usecase.DeliveryUsecase
	NavigationUC usecase.NavigationUsecase
	Logger       *slog.Logger
}

// DeliveryHandler holds dependencies for order hand-over handlers
type DeliveryHandler struct {
	deliveryUC   usecase.DeliveryUsecase
	navigationUC usecase.NavigationUsecase
	logger       *slog.Logger
}

// NewDeliveryHandler is the constructor for DeliveryHandler
func NewDeliveryHandler(params DeliveryHandlerParams) *DeliveryHandler {
	return &DeliveryHandler{
		deliveryUC:   params.DeliveryUC,
		navigationUC: params.NavigationUC,
		logger:       params.Logger,
	}
}

// ConfirmDeliveryRequest is the JSON form of a delivery confirmation; images are base64 encoded
type ConfirmDeliveryRequest struct {
	Notes           string   `json:"notes" validate:"max=2000"`
	AmountCollected *float64 `json:"amountCollected" validate:"omitempty,gte=0"`
	Signature       []byte   `json:"signature"`
	ProofImage      []byte   `json:"proofImage"`
}

// ScanOrderRequest carries the raw text read from an order QR code
type ScanOrderRequest struct {
	Data string `json:"data" validate:"required"`
}

// ConfirmDelivery handles a courier handing an order over.
// Accepts multipart/form-data with "signature" and "proof" files, or a JSON body.
func (h *DeliveryHandler) ConfirmDelivery(c echo.Context) error {
	var confirmation *usecase.DeliveryConfirmation

	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		var err error
		if confirmation, err = confirmationFromForm(c); err != nil {
			requestLogger(c, h.logger).Warn("Invalid delivery confirmation form", slog.Any("error", err))

			return response.HandleAppError(c, err)
		}
	} else {
		var req ConfirmDeliveryRequest
		if err := c.Bind(&req); err != nil {
			requestLogger(c, h.logger).Debug("Invalid delivery confirmation body", slog.Any("error", err))

			return response.BindingError(c, "INVALID_INPUT", "Invalid delivery confirmation input")
		}

		if err := c.Validate(&req); err != nil {
			return response.ValidationError(c, validator.FieldErrors(err))
		}

		confirmation = &usecase.DeliveryConfirmation{
			Notes:           req.Notes,
			AmountCollected: req.AmountCollected,
			Signature:       req.Signature,
			ProofImage:      req.ProofImage,
		}
	}

	receipt, err := h.deliveryUC.ConfirmDelivery(c.Request().Context(), c.Param("ownerId"), c.Param("orderId"), confirmation)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, receipt)
}

func confirmationFromForm(c echo.Context) (*usecase.DeliveryConfirmation, error) {
	confirmation := &usecase.DeliveryConfirmation{
		Notes: c.FormValue("notes"),
	}

	if raw := strings.TrimSpace(c.FormValue("amountCollected")); raw != "" {
		amount, err := strconv.ParseFloat(raw, 64)
		if err != nil || amount < 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("amountCollected must be a non-negative number")
		}
		confirmation.AmountCollected = &amount
	}

	var err error
	confirmation.Signature, confirmation.SignatureContentType, err = readFormFile(c, signatureFormField)
	if err != nil {
		return nil, err
	}

	confirmation.ProofImage, confirmation.ProofContentType, err = readFormFile(c, proofFormField)
	if err != nil {
		return nil, err
	}

	return confirmation, nil
}

// readFormFile returns the content of an optional uploaded file
func readFormFile(c echo.Context, field string) ([]byte, string, error) {
	header, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", domainerrors.ErrValidationFailed.WithDetails("invalid " + field + " upload")
	}

	file, err := header.Open()
	if err != nil {
		return nil, "", errors.Wrapf(err, "open %s upload", field)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", errors.Wrapf(err, "read %s upload", field)
	}

	return data, header.Header.Get(echo.HeaderContentType), nil
}

// GetOrderQRCode handles rendering the QR code couriers scan to open an order
func (h *DeliveryHandler) GetOrderQRCode(c echo.Context) error {
	png, err := h.deliveryUC.OrderQRCode(c.Request().Context(), c.Param("ownerId"), c.Param("orderId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ScanOrder handles opening an order from a scanned QR code
func (h *DeliveryHandler) ScanOrder(c echo.Context) error {
	var req ScanOrderRequest
	if err := c.Bind(&req); err != nil {
		requestLogger(c, h.logger).Debug("Invalid scan body", slog.Any("error", err))

		return response.BindingError(c, "INVALID_INPUT", "Invalid scan input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.FieldErrors(err))
	}

	order, err := h.deliveryUC.ScanOrderQR(c.Request().Context(), req.Data)
	if err != nil {
		requestLogger(c, h.logger).Info("Scanned code did not open an order", slog.Any("error", err))

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrderResponse(h.navigationUC, order))
}
