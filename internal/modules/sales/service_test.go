package sales

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/georgemunganga/dagangcerdas-backend/internal/apperr"
	"github.com/georgemunganga/dagangcerdas-backend/internal/modules/inventory"
	"github.com/georgemunganga/dagangcerdas-backend/internal/modules/promotion"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

type flow struct {
	now      time.Time
	sales    *memorySales
	products *memoryProducts
	promos   *memoryPromotions
	svc      Service
}

// newFlow wires the recorder with the real adjuster, detector and issuer
// over in-memory stores.
func newFlow() *flow {
	f := &flow{now: fixedNow}
	clock := func() time.Time { return f.now }
	f.sales = &memorySales{now: clock}
	f.products = &memoryProducts{
		products: map[string]*inventory.Product{
			"P1": {ID: "P1", UserID: "U1", StoreID: strPtr("S1"), Name: "Roti", Stock: 10},
			"P2": {ID: "P2", UserID: "U1", StoreID: strPtr("S1"), Name: "Kopi", Stock: 50},
		},
		failFor: map[string]error{},
	}
	f.promos = &memoryPromotions{}

	policy := promotion.DefaultPolicy()
	detector := promotion.NewDetector(f.sales, policy, clock)
	issuer := promotion.NewIssuer(f.promos, f.products, detector, policy, clock, zerolog.Nop())
	adjuster := inventory.NewAdjuster(f.products, zerolog.Nop())
	f.svc = NewService(f.sales, adjuster, issuer, clock, zerolog.Nop())
	return f
}

func (f *flow) seed(ago time.Duration, totalItems int, items ...LineItem) {
	f.sales.sales = append(f.sales.sales, Sale{
		OrderID:    "SEED-" + f.now.Add(-ago).Format(time.RFC3339Nano),
		UserID:     "U1",
		StoreID:    "S1",
		Items:      items,
		TotalItems: totalItems,
		CreatedAt:  f.now.Add(-ago),
	})
}

func saleRequest(items ...LineItem) CreateSaleRequest {
	total := 0
	for _, it := range items {
		total += it.Qty
	}
	return CreateSaleRequest{
		UserID:      "U1",
		StoreID:     "S1",
		Items:       items,
		TotalAmount: decimal.NewFromInt(int64(total) * 5000),
		TotalItems:  total,
	}
}

func TestCreateSale_ValidationRejectsBeforeWrite(t *testing.T) {
	item := LineItem{ID: "P1", Qty: 1, Price: decimal.NewFromInt(5000)}
	tests := []struct {
		name string
		req  CreateSaleRequest
	}{
		{"missing userId", CreateSaleRequest{StoreID: "S1", Items: []LineItem{item}}},
		{"missing storeId", CreateSaleRequest{UserID: "U1", Items: []LineItem{item}}},
		{"empty items", CreateSaleRequest{UserID: "U1", StoreID: "S1", Items: []LineItem{}}},
		{"nil items", CreateSaleRequest{UserID: "U1", StoreID: "S1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			stock := new(MockStockAdjuster)
			promos := new(MockPromotionIssuer)
			svc := NewService(repo, stock, promos, nil, zerolog.Nop())

			out, err := svc.CreateSale(context.Background(), tt.req)

			assert.Nil(t, out)
			var ve *apperr.ValidationError
			assert.ErrorAs(t, err, &ve)
			repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
			stock.AssertNotCalled(t, "Apply", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			promos.AssertNotCalled(t, "Run", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCreateSale_DecrementsStock(t *testing.T) {
	f := newFlow()

	out, err := f.svc.CreateSale(context.Background(), saleRequest(LineItem{ID: "P1", Qty: 3, Name: "Roti"}))

	require.NoError(t, err)
	assert.Equal(t, 7, f.products.stock("P1"))
	assert.Equal(t, StepOK, out.StockStatus)
	assert.Equal(t, []string{"P1"}, out.Stock.Applied)
}

func TestCreateSale_IssuesPromotionWhenProductTurnsHot(t *testing.T) {
	f := newFlow()
	f.seed(48*time.Hour, 9, LineItem{ID: "P2", Qty: 9, Name: "Kopi"})

	out, err := f.svc.CreateSale(context.Background(), saleRequest(LineItem{ID: "P2", Qty: 3, Name: "Kopi"}))

	require.NoError(t, err)
	require.Len(t, f.promos.promos, 1)
	p := f.promos.promos[0]
	assert.Equal(t, "Diskon produk laris Kopi", p.Name)
	assert.Equal(t, promotion.DiscountPercentage, p.DiscountType)
	assert.True(t, decimal.NewFromInt(10).Equal(p.DiscountValue))
	assert.Equal(t, 1, p.MinOrderQuantity)
	assert.True(t, p.IsActive)
	assert.Equal(t, 7*24*time.Hour, p.EndDate.Sub(*p.StartDate))
	assert.Equal(t, "S1", p.StoreID)

	require.Len(t, out.Promotions.Results, 1)
	assert.Equal(t, 12, out.Promotions.Results[0].Volume)
	assert.Equal(t, promotion.DecisionIssued, out.Promotions.Results[0].Decision)
	assert.Equal(t, StepOK, out.PromotionStatus)
}

func TestCreateSale_DatabaseClockAheadStillCountsNewSale(t *testing.T) {
	f := newFlow()
	f.sales.now = func() time.Time { return f.now.Add(2 * time.Millisecond) }
	f.seed(48*time.Hour, 9, LineItem{ID: "P2", Qty: 9, Name: "Kopi"})

	out, err := f.svc.CreateSale(context.Background(), saleRequest(LineItem{ID: "P2", Qty: 3, Name: "Kopi"}))

	require.NoError(t, err)
	assert.Equal(t, fixedNow, out.Sale.CreatedAt)
	require.Len(t, out.Promotions.Results, 1)
	assert.Equal(t, 12, out.Promotions.Results[0].Volume)
	assert.Equal(t, promotion.DecisionIssued, out.Promotions.Results[0].Decision)
	assert.Len(t, f.promos.promos, 1)
}

func TestCreateSale_DerivesTotalItemsFromLines(t *testing.T) {
	f := newFlow()
	f.seed(48*time.Hour, 9, LineItem{ID: "P2", Qty: 9, Name: "Kopi"})
	req := saleRequest(LineItem{ID: "P2", Qty: 2, Name: "Kopi"}, LineItem{ID: "P1", Qty: 1, Name: "Roti"})
	req.TotalItems = 0

	out, err := f.svc.CreateSale(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 3, out.Sale.TotalItems)
	require.Len(t, out.Promotions.Results, 2)
	assert.Equal(t, 11, out.Promotions.Results[0].Volume)
	assert.Equal(t, promotion.DecisionIssued, out.Promotions.Results[0].Decision)

	summary, err := f.svc.GetSummary(context.Background(), "U1", "S1")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Summary.Today.TotalTransactions)
}

func TestCreateSale_RetriggerDoesNotDuplicatePromotion(t *testing.T) {
	f := newFlow()
	f.seed(48*time.Hour, 9, LineItem{ID: "P2", Qty: 9, Name: "Kopi"})

	_, err := f.svc.CreateSale(context.Background(), saleRequest(LineItem{ID: "P2", Qty: 3, Name: "Kopi"}))
	require.NoError(t, err)

	f.now = f.now.Add(time.Hour)
	out, err := f.svc.CreateSale(context.Background(), saleRequest(LineItem{ID: "P2", Qty: 1, Name: "Kopi"}))

	require.NoError(t, err)
	assert.Len(t, f.promos.promos, 1)
	assert.Equal(t, promotion.DecisionAlreadyActive, out.Promotions.Results[0].Decision)
}

func TestCreateSale_PlaceholderAndStaleSalesExcludedFromVolume(t *testing.T) {
	f := newFlow()
	f.seed(time.Hour, 0, LineItem{ID: "P2", Qty: 100})
	f.seed(8*24*time.Hour, 50, LineItem{ID: "P2", Qty: 50})
	f.seed(7*24*time.Hour, 20, LineItem{ID: "P2", Qty: 20})

	out, err := f.svc.CreateSale(context.Background(), saleRequest(LineItem{ID: "P2", Qty: 3, Name: "Kopi"}))

	require.NoError(t, err)
	assert.Equal(t, 3, out.Promotions.Results[0].Volume)
	assert.Equal(t, promotion.DecisionBelowThreshold, out.Promotions.Results[0].Decision)
	assert.Empty(t, f.promos.promos)
}

func TestCreateSale_StockFailureStillReturnsSale(t *testing.T) {
	f := newFlow()
	f.products.failFor["P1"] = errors.New("deadlock detected")

	out, err := f.svc.CreateSale(context.Background(), saleRequest(
		LineItem{ID: "P1", Qty: 1, Name: "Roti"},
		LineItem{ID: "P2", Qty: 2, Name: "Kopi"},
		LineItem{ID: "P404", Qty: 1, Name: "Hilang"},
	))

	require.NoError(t, err)
	require.NotNil(t, out.Sale)
	assert.Equal(t, StepDegraded, out.StockStatus)
	assert.Len(t, out.Stock.Failures, 2)
	assert.Equal(t, []string{"P2"}, out.Stock.Applied)
	assert.Equal(t, 48, f.products.stock("P2"))
	assert.Len(t, f.sales.sales, 1)
}

func TestCreateSale_DefaultsAndGeneratedOrderID(t *testing.T) {
	repo := new(MockRepository)
	stock := new(MockStockAdjuster)
	promos := new(MockPromotionIssuer)
	svc := NewService(repo, stock, promos, func() time.Time { return fixedNow }, zerolog.Nop())

	repo.On("Insert", mock.Anything, mock.AnythingOfType("*sales.Sale")).Return(nil)
	stock.On("Apply", mock.Anything, mock.Anything, "S1", []inventory.StockChange{{ProductID: "P1", Quantity: 2}}).
		Return(inventory.Report{Applied: []string{"P1"}})
	promos.On("Run", mock.Anything, "U1", "S1", []promotion.Candidate{{ProductID: "P1", Name: "Roti"}}).
		Return(promotion.Report{})

	req := saleRequest(LineItem{ID: "P1", Qty: 2, Name: "Roti"})
	req.CustomerInfo = NewCustomerInfo([]byte(`{"name":"Budi"}`))
	out, err := svc.CreateSale(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "ORD-20240315-1710496800000", out.Sale.OrderID)
	assert.Equal(t, "cash", out.Sale.PaymentMethod)
	assert.Equal(t, "completed", out.Sale.PaymentStatus)
	assert.True(t, out.Sale.CustomerInfo.Valid)
	assert.NotEmpty(t, out.Sale.ID)
	repo.AssertExpectations(t)
	stock.AssertExpectations(t)
	promos.AssertExpectations(t)
}

func TestCreateSale_KeepsClientOrderID(t *testing.T) {
	repo := new(MockRepository)
	stock := new(MockStockAdjuster)
	promos := new(MockPromotionIssuer)
	svc := NewService(repo, stock, promos, nil, zerolog.Nop())

	repo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	stock.On("Apply", mock.Anything, "ORD-CLIENT-1", "S1", mock.Anything).Return(inventory.Report{})
	promos.On("Run", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(promotion.Report{})

	req := saleRequest(LineItem{ID: "P1", Qty: 1})
	req.OrderID = "ORD-CLIENT-1"
	req.PaymentMethod = "qris"
	out, err := svc.CreateSale(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "ORD-CLIENT-1", out.Sale.OrderID)
	assert.Equal(t, "qris", out.Sale.PaymentMethod)
	stock.AssertExpectations(t)
}

func TestCreateSale_DuplicateProductScannedOnce(t *testing.T) {
	repo := new(MockRepository)
	stock := new(MockStockAdjuster)
	promos := new(MockPromotionIssuer)
	svc := NewService(repo, stock, promos, nil, zerolog.Nop())

	repo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	stock.On("Apply", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(inventory.Report{})
	promos.On("Run", mock.Anything, "U1", "S1", []promotion.Candidate{{ProductID: "P1", Name: "Roti"}}).
		Return(promotion.Report{})

	_, err := svc.CreateSale(context.Background(), saleRequest(
		LineItem{ID: "P1", Qty: 1, Name: "Roti"},
		LineItem{ID: "P1", Qty: 2, Name: "Roti"},
	))

	require.NoError(t, err)
	promos.AssertExpectations(t)
}

func TestCreateSale_InsertFailureIsPersistenceError(t *testing.T) {
	repo := new(MockRepository)
	stock := new(MockStockAdjuster)
	promos := new(MockPromotionIssuer)
	svc := NewService(repo, stock, promos, nil, zerolog.Nop())
	repo.On("Insert", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	out, err := svc.CreateSale(context.Background(), saleRequest(LineItem{ID: "P1", Qty: 1}))

	assert.Nil(t, out)
	var pe *apperr.PersistenceError
	assert.ErrorAs(t, err, &pe)
	stock.AssertNotCalled(t, "Apply", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	promos.AssertNotCalled(t, "Run", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateSale_DuplicateOrderIDIsValidationError(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, new(MockStockAdjuster), new(MockPromotionIssuer), nil, zerolog.Nop())
	repo.On("Insert", mock.Anything, mock.Anything).Return(apperr.Validation("order_id ORD-1 already exists"))

	req := saleRequest(LineItem{ID: "P1", Qty: 1})
	req.OrderID = "ORD-1"
	_, err := svc.CreateSale(context.Background(), req)

	var ve *apperr.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestGetSummary_BucketsByPeriod(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	repo := new(MockRepository)
	svc := NewService(repo, nil, nil, func() time.Time { return now }, zerolog.Nop())

	today := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	sales := []Sale{
		{OrderID: "A", TotalAmount: decimal.NewFromInt(10000), TotalItems: 2, CreatedAt: today.Add(9 * time.Hour)},
		{OrderID: "B", TotalAmount: decimal.NewFromInt(5000), TotalItems: 1, CreatedAt: today.Add(-2 * time.Hour)},
		{OrderID: "C", TotalAmount: decimal.NewFromInt(7000), TotalItems: 3, CreatedAt: today.AddDate(0, 0, -5)},
		{OrderID: "D", TotalAmount: decimal.NewFromInt(1000), TotalItems: 1, CreatedAt: today.AddDate(0, 0, -20)},
	}
	repo.On("ListCompletedSince", mock.Anything, "U1", "S1", today.AddDate(0, 0, -30)).Return(sales, nil)

	res, err := svc.GetSummary(context.Background(), "U1", "S1")

	require.NoError(t, err)
	assert.Equal(t, 1, res.Summary.Today.TotalTransactions)
	assert.True(t, decimal.NewFromInt(10000).Equal(res.Summary.Today.TotalRevenue))
	assert.Equal(t, 1, res.Summary.Yesterday.TotalTransactions)
	assert.Equal(t, 1, res.Summary.Yesterday.TotalItems)
	assert.Equal(t, 3, res.Summary.Week.TotalTransactions)
	assert.True(t, decimal.NewFromInt(22000).Equal(res.Summary.Week.TotalRevenue))
	assert.Equal(t, 4, res.Summary.Month.TotalTransactions)
	assert.Equal(t, 7, res.Summary.Month.TotalItems)
	assert.Len(t, res.Sales, 4)
}

func TestGetSummary_RequiresUserID(t *testing.T) {
	svc := NewService(new(MockRepository), nil, nil, nil, zerolog.Nop())

	_, err := svc.GetSummary(context.Background(), "", "S1")

	var ve *apperr.ValidationError
	assert.ErrorAs(t, err, &ve)
}
