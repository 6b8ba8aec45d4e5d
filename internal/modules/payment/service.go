package payment

import (
	"context"
	"errors"
	"time"

	"github.com/georgemunganga/dagangcerdas-backend/internal/apperr"
	"github.com/georgemunganga/dagangcerdas-backend/internal/modules/sales"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CheckoutOrderPrefix prefixes order ids generated for checkouts.
const CheckoutOrderPrefix = "ORDER"

var enabledPayments = []string{"gopay", "shopeepay", "other_qris"}

// Service starts hosted QRIS/e-wallet payments.
type Service interface {
	Checkout(ctx context.Context, req CheckoutRequest) (*CheckoutResponse, error)
}

type service struct {
	gateway  Gateway
	pending  PendingSaleWriter
	orderIDs *sales.OrderIDGenerator
	now      func() time.Time
	logger   zerolog.Logger
}

func NewService(gateway Gateway, pending PendingSaleWriter, now func() time.Time, logger zerolog.Logger) Service {
	if now == nil {
		now = time.Now
	}
	return &service{
		gateway:  gateway,
		pending:  pending,
		orderIDs: sales.NewOrderIDGenerator(CheckoutOrderPrefix, now),
		now:      now,
		logger:   logger,
	}
}

func (s *service) Checkout(ctx context.Context, req CheckoutRequest) (*CheckoutResponse, error) {
	if req.UserID == "" || req.StoreID == "" || req.Amount == nil || !req.Amount.IsPositive() {
		return nil, apperr.Validation("userId, storeId and amount are required")
	}

	orderID := req.OrderID
	if orderID == "" {
		orderID = s.orderIDs.Next()
	}

	snapReq := SnapRequest{
		TransactionDetails: TransactionDetails{
			OrderID:     orderID,
			GrossAmount: req.Amount.Round(0).IntPart(),
		},
		CustomerDetails: customerDetails(req.Customer),
		EnabledPayments: enabledPayments,
	}
	tx, err := s.gateway.CreateTransaction(ctx, snapReq)
	if err != nil {
		if errors.Is(err, ErrNotConfigured) {
			return nil, err
		}
		return nil, apperr.Downstream("midtrans checkout", orderID, err)
	}

	placeholder := &sales.Sale{
		ID:            uuid.NewString(),
		OrderID:       orderID,
		UserID:        req.UserID,
		StoreID:       req.StoreID,
		Items:         sales.LineItems{},
		TotalAmount:   *req.Amount,
		TotalItems:    0,
		PaymentMethod: MethodQRIS,
		PaymentStatus: StatusPending,
		CreatedAt:     s.now(),
	}
	if err := s.pending.InsertPlaceholder(ctx, placeholder); err != nil {
		s.logger.Warn().Err(err).Str("order_id", orderID).Msg("Failed to insert pending sale for Midtrans order")
	}

	s.logger.Info().Str("order_id", orderID).Str("store_id", req.StoreID).Msg("Midtrans checkout started")
	return &CheckoutResponse{
		SnapToken:   tx.Token,
		RedirectURL: tx.RedirectURL,
		OrderID:     orderID,
	}, nil
}

func customerDetails(c *Customer) CustomerDetails {
	d := CustomerDetails{
		FirstName: "Customer",
		Email:     "customer@example.com",
		Phone:     "08123456789",
	}
	if c == nil {
		return d
	}
	if c.FirstName != "" {
		d.FirstName = c.FirstName
	}
	if c.Email != "" {
		d.Email = c.Email
	}
	if c.Phone != "" {
		d.Phone = c.Phone
	}
	return d
}
