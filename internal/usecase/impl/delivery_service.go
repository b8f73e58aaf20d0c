package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "courier/internal/delivery/context"
	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/service"
	"courier/internal/usecase"

	"github.com/pkg/errors"
)

const (
	signatureObject      = "signature.png"
	proofObject          = "proof.jpg"
	signatureContentType = "image/png"
	proofContentType     = "image/jpeg"
)

// deliveryService implements the DeliveryUsecase interface.
type deliveryService struct {
	orders  usecase.OrderUsecase
	storage service.ProofStorage
	qrcode  service.QRCodeService
	logger  *slog.Logger
}

// NewDeliveryService is the constructor for deliveryService.
func NewDeliveryService(
	orders usecase.OrderUsecase,
	storage service.ProofStorage,
	qrcode service.QRCodeService,
	logger *slog.Logger,
) usecase.DeliveryUsecase {
	return &deliveryService{
		orders:  orders,
		storage: storage,
		qrcode:  qrcode,
		logger:  logger,
	}
}

func (srv *deliveryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ConfirmDelivery uploads the proofs under deliveries/{owner}/{order}/ and marks the order delivered.
// The owner is taken from the resolved order, which may differ from ownerID after a fallback search.
func (srv *deliveryService) ConfirmDelivery(
	ctx context.Context,
	ownerID, orderID string,
	confirmation *usecase.DeliveryConfirmation,
) (*usecase.DeliveryReceipt, error) {
	if confirmation == nil || (len(confirmation.Signature) == 0 && len(confirmation.ProofImage) == 0) {
		return nil, domainerrors.ErrProofRequired
	}

	order, ok := srv.orders.FetchOne(ctx, ownerID, orderID)
	if !ok {
		return nil, domainerrors.ErrOrderNotFound
	}

	receipt := &usecase.DeliveryReceipt{
		OrderID: order.ID,
		OwnerID: order.UserID,
	}

	payload := map[string]any{
		"notes": confirmation.Notes,
	}
	if confirmation.AmountCollected != nil {
		payload["amountCollected"] = *confirmation.AmountCollected
	}

	if len(confirmation.Signature) > 0 {
		url, err := srv.upload(ctx, receipt, signatureObject, confirmation.Signature,
			contentTypeOr(confirmation.SignatureContentType, signatureContentType))
		if err != nil {
			return nil, err
		}
		receipt.SignatureURL = url
		payload["signatureUrl"] = url
	}

	if len(confirmation.ProofImage) > 0 {
		url, err := srv.upload(ctx, receipt, proofObject, confirmation.ProofImage,
			contentTypeOr(confirmation.ProofContentType, proofContentType))
		if err != nil {
			return nil, err
		}
		receipt.ProofOfDeliveryURL = url
		payload["proofOfDeliveryUrl"] = url
	}

	if !srv.orders.MarkDelivered(ctx, order.UserID, order.ID, payload) {
		return nil, domainerrors.ErrStatusUpdateFailed
	}

	receipt.DeliveredAt = time.Now().UTC()

	srv.log(ctx).Info("Delivery confirmed",
		slog.String("owner_id", receipt.OwnerID),
		slog.String("order_id", receipt.OrderID),
		slog.Bool("signature", receipt.SignatureURL != ""),
		slog.Bool("proof", receipt.ProofOfDeliveryURL != ""),
	)

	return receipt, nil
}

func (srv *deliveryService) upload(ctx context.Context, receipt *usecase.DeliveryReceipt, object string, data []byte, contentType string) (string, error) {
	key := fmt.Sprintf("deliveries/%s/%s/%s", receipt.OwnerID, receipt.OrderID, object)

	url, err := srv.storage.Upload(ctx, key, data, contentType)
	if err != nil {
		srv.log(ctx).Error("Failed to store delivery proof",
			slog.String("key", key),
			slog.Any("error", err),
		)

		return "", domainerrors.NewStorageExecuteError(err, "failed to store "+object)
	}

	return url, nil
}

func (srv *deliveryService) OrderQRCode(ctx context.Context, ownerID, orderID string) ([]byte, error) {
	order, ok := srv.orders.FetchOne(ctx, ownerID, orderID)
	if !ok {
		return nil, domainerrors.ErrOrderNotFound
	}

	png, err := srv.qrcode.GenerateOrderQR(order.Reference())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate order QR code")
	}

	return png, nil
}

func (srv *deliveryService) ScanOrderQR(ctx context.Context, data string) (*entity.Order, error) {
	reference, err := srv.qrcode.ParseOrderQR(data)
	if err != nil {
		srv.log(ctx).Warn("Unreadable order QR code", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidOrderReference.WithDetails(err.Error())
	}

	order, ok := srv.orders.ResolveReference(ctx, reference)
	if !ok {
		return nil, domainerrors.ErrOrderNotFound
	}

	return order, nil
}

func contentTypeOr(contentType, fallback string) string {
	if contentType == "" {
		return fallback
	}

	return contentType
}
