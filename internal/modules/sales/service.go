package sales

import (
	"context"
	"errors"
	"time"

	"github.com/georgemunganga/dagangcerdas-backend/internal/apperr"
	"github.com/georgemunganga/dagangcerdas-backend/internal/modules/inventory"
	"github.com/georgemunganga/dagangcerdas-backend/internal/modules/promotion"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const summaryDays = 30

// StockAdjuster applies the stock changes of a recorded sale.
type StockAdjuster interface {
	Apply(ctx context.Context, orderID, storeID string, changes []inventory.StockChange) inventory.Report
}

// PromotionIssuer runs the hot-product scan over a sale's products.
type PromotionIssuer interface {
	Run(ctx context.Context, userID, storeID string, candidates []promotion.Candidate) promotion.Report
}

// Service defines sales business logic.
type Service interface {
	CreateSale(ctx context.Context, req CreateSaleRequest) (*Outcome, error)
	GetSummary(ctx context.Context, userID, storeID string) (*SummaryResult, error)
}

type service struct {
	repo     Repository
	stock    StockAdjuster
	promos   PromotionIssuer
	orderIDs *OrderIDGenerator
	now      func() time.Time
	logger   zerolog.Logger

	salesRecorded   metric.Int64Counter
	stockFailures   metric.Int64Counter
	promosIssued    metric.Int64Counter
	promoScanErrors metric.Int64Counter
}

// NewService wires the sale recorder. Counters come from the global otel meter
// provider, which is a no-op until telemetry is configured.
func NewService(repo Repository, stock StockAdjuster, promos PromotionIssuer, now func() time.Time, logger zerolog.Logger) Service {
	if now == nil {
		now = time.Now
	}
	s := &service{
		repo:     repo,
		stock:    stock,
		promos:   promos,
		orderIDs: NewOrderIDGenerator(SaleOrderPrefix, now),
		now:      now,
		logger:   logger,
	}

	meter := otel.Meter("sales-service")
	var err error
	if s.salesRecorded, err = meter.Int64Counter("sales.recorded",
		metric.WithDescription("Sales persisted")); err != nil {
		logger.Warn().Err(err).Msg("sales.recorded counter unavailable")
	}
	if s.stockFailures, err = meter.Int64Counter("sales.stock_update.failures",
		metric.WithDescription("Line items whose stock update failed")); err != nil {
		logger.Warn().Err(err).Msg("sales.stock_update.failures counter unavailable")
	}
	if s.promosIssued, err = meter.Int64Counter("promotions.auto.issued",
		metric.WithDescription("Auto promotions created for hot products")); err != nil {
		logger.Warn().Err(err).Msg("promotions.auto.issued counter unavailable")
	}
	if s.promoScanErrors, err = meter.Int64Counter("promotions.auto.failures",
		metric.WithDescription("Hot product checks that failed")); err != nil {
		logger.Warn().Err(err).Msg("promotions.auto.failures counter unavailable")
	}
	return s
}

func (s *service) CreateSale(ctx context.Context, req CreateSaleRequest) (*Outcome, error) {
	tracer := otel.Tracer("sales-service")
	ctx, span := tracer.Start(ctx, "CreateSale",
		trace.WithAttributes(attribute.String("sale.user_id", req.UserID)))
	defer span.End()

	if req.UserID == "" || req.StoreID == "" || len(req.Items) == 0 {
		err := apperr.Validation("userId, storeId and items are required")
		span.RecordError(err)
		return nil, err
	}

	sale := &Sale{
		ID:            uuid.NewString(),
		OrderID:       req.OrderID,
		UserID:        req.UserID,
		StoreID:       req.StoreID,
		Items:         LineItems(req.Items),
		TotalAmount:   req.TotalAmount,
		TotalItems:    req.TotalItems,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: req.PaymentStatus,
		CustomerInfo:  req.CustomerInfo,
		CreatedAt:     s.now(),
	}
	if sale.OrderID == "" {
		sale.OrderID = s.orderIDs.Next()
	}
	if sale.TotalItems <= 0 {
		sale.TotalItems = sale.Items.Quantity()
	}
	if sale.PaymentMethod == "" {
		sale.PaymentMethod = DefaultPaymentMethod
	}
	if sale.PaymentStatus == "" {
		sale.PaymentStatus = DefaultPaymentStatus
	}
	if req.MidtransToken != "" {
		sale.MidtransToken = &req.MidtransToken
	}
	if req.MidtransRedirectURL != "" {
		sale.MidtransRedirectURL = &req.MidtransRedirectURL
	}

	span.SetAttributes(
		attribute.String("sale.order_id", sale.OrderID),
		attribute.String("sale.store_id", sale.StoreID),
		attribute.Int("sale.items", len(sale.Items)),
	)

	if err := s.repo.Insert(ctx, sale); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "sale insert failed")
		var ve *apperr.ValidationError
		if errors.As(err, &ve) {
			return nil, err
		}
		return nil, apperr.Persistence("insert sale", err)
	}
	s.count(ctx, s.salesRecorded, 1)
	s.logger.Info().
		Str("order_id", sale.OrderID).
		Str("store_id", sale.StoreID).
		Int("items", len(sale.Items)).
		Msg("Sale recorded")

	out := &Outcome{Sale: sale}
	out.Stock = s.adjustStock(ctx, sale)
	out.StockStatus = statusOf(out.Stock.Degraded())
	out.Promotions = s.scanHotProducts(ctx, sale)
	out.PromotionStatus = statusOf(out.Promotions.Degraded())
	return out, nil
}

func (s *service) adjustStock(ctx context.Context, sale *Sale) inventory.Report {
	ctx, span := otel.Tracer("sales-service").Start(ctx, "AdjustStock")
	defer span.End()

	changes := make([]inventory.StockChange, 0, len(sale.Items))
	for _, it := range sale.Items {
		changes = append(changes, inventory.StockChange{ProductID: it.ID, Quantity: it.Qty})
	}
	report := s.stock.Apply(ctx, sale.OrderID, sale.StoreID, changes)
	if report.Degraded() {
		span.SetStatus(codes.Error, "stock update degraded")
		s.count(ctx, s.stockFailures, int64(len(report.Failures)))
	}
	return report
}

func (s *service) scanHotProducts(ctx context.Context, sale *Sale) promotion.Report {
	ctx, span := otel.Tracer("sales-service").Start(ctx, "ScanHotProducts")
	defer span.End()

	candidates := make([]promotion.Candidate, 0, len(sale.Items))
	seen := make(map[string]bool, len(sale.Items))
	for _, it := range sale.Items {
		if it.ID == "" || seen[it.ID] {
			continue
		}
		seen[it.ID] = true
		candidates = append(candidates, promotion.Candidate{ProductID: it.ID, Name: it.Name})
	}
	report := s.promos.Run(ctx, sale.UserID, sale.StoreID, candidates)

	issued := report.Issued()
	span.SetAttributes(attribute.Int("promotions.issued", len(issued)))
	s.count(ctx, s.promosIssued, int64(len(issued)))
	if report.Degraded() {
		span.SetStatus(codes.Error, "hot product scan degraded")
		var failed int64
		for _, r := range report.Results {
			if r.Decision == promotion.DecisionFailed {
				failed++
			}
		}
		s.count(ctx, s.promoScanErrors, failed)
	}
	return report
}

func (s *service) count(ctx context.Context, c metric.Int64Counter, n int64) {
	if c == nil || n == 0 {
		return
	}
	c.Add(ctx, n)
}

func (s *service) GetSummary(ctx context.Context, userID, storeID string) (*SummaryResult, error) {
	if userID == "" {
		return nil, apperr.Validation("userId is required")
	}

	now := s.now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	yesterdayStart := todayStart.AddDate(0, 0, -1)
	weekAgo := todayStart.AddDate(0, 0, -7)
	monthAgo := todayStart.AddDate(0, 0, -summaryDays)

	sales, err := s.repo.ListCompletedSince(ctx, userID, storeID, monthAgo)
	if err != nil {
		return nil, apperr.Persistence("list sales", err)
	}
	if sales == nil {
		sales = []Sale{}
	}

	var sum Summary
	for _, sale := range sales {
		at := sale.CreatedAt
		if !at.Before(todayStart) {
			sum.Today.add(sale)
		}
		if !at.Before(yesterdayStart) && at.Before(todayStart) {
			sum.Yesterday.add(sale)
		}
		if !at.Before(weekAgo) {
			sum.Week.add(sale)
		}
		if !at.Before(monthAgo) {
			sum.Month.add(sale)
		}
	}
	return &SummaryResult{Summary: sum, Sales: sales}, nil
}
