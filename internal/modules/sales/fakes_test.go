package sales

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/georgemunganga/dagangcerdas-backend/internal/apperr"
	"github.com/georgemunganga/dagangcerdas-backend/internal/modules/inventory"
	"github.com/georgemunganga/dagangcerdas-backend/internal/modules/promotion"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Insert(ctx context.Context, s *Sale) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockRepository) InsertPlaceholder(ctx context.Context, s *Sale) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockRepository) ListCompletedSince(ctx context.Context, userID, storeID string, since time.Time) ([]Sale, error) {
	args := m.Called(ctx, userID, storeID, since)
	sales, _ := args.Get(0).([]Sale)
	return sales, args.Error(1)
}

func (m *MockRepository) CountCompletedSince(ctx context.Context, userID, storeID string, since time.Time) (int, error) {
	args := m.Called(ctx, userID, storeID, since)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) SumProductQuantity(ctx context.Context, userID, storeID, productID string, from, to time.Time) (int, error) {
	args := m.Called(ctx, userID, storeID, productID, from, to)
	return args.Int(0), args.Error(1)
}

type MockStockAdjuster struct {
	mock.Mock
}

func (m *MockStockAdjuster) Apply(ctx context.Context, orderID, storeID string, changes []inventory.StockChange) inventory.Report {
	args := m.Called(ctx, orderID, storeID, changes)
	return args.Get(0).(inventory.Report)
}

type MockPromotionIssuer struct {
	mock.Mock
}

func (m *MockPromotionIssuer) Run(ctx context.Context, userID, storeID string, candidates []promotion.Candidate) promotion.Report {
	args := m.Called(ctx, userID, storeID, candidates)
	return args.Get(0).(promotion.Report)
}

// memorySales keeps sales in memory and answers volume queries with the
// same predicates as the SQL repository.
type memorySales struct {
	mu    sync.Mutex
	sales []Sale
	now   func() time.Time // database clock, used only when no created_at is given
}

func (m *memorySales) Insert(_ context.Context, s *Sale) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.sales {
		if existing.OrderID == s.OrderID {
			return apperr.Validation("order_id %s already exists", s.OrderID)
		}
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = m.now()
	}
	m.sales = append(m.sales, *s)
	return nil
}

func (m *memorySales) InsertPlaceholder(_ context.Context, s *Sale) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.sales {
		if existing.OrderID == s.OrderID {
			return nil
		}
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = m.now()
	}
	m.sales = append(m.sales, *s)
	return nil
}

func (m *memorySales) ListCompletedSince(_ context.Context, userID, storeID string, since time.Time) ([]Sale, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Sale
	for _, s := range m.sales {
		if s.UserID == userID && (storeID == "" || s.StoreID == storeID) && !s.CreatedAt.Before(since) && s.TotalItems > 0 {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memorySales) CountCompletedSince(ctx context.Context, userID, storeID string, since time.Time) (int, error) {
	list, err := m.ListCompletedSince(ctx, userID, storeID, since)
	return len(list), err
}

func (m *memorySales) SumProductQuantity(_ context.Context, userID, storeID, productID string, from, to time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for _, s := range m.sales {
		if s.UserID != userID || s.StoreID != storeID || s.TotalItems <= 0 {
			continue
		}
		if !s.CreatedAt.After(from) || s.CreatedAt.After(to) {
			continue
		}
		for _, it := range s.Items {
			if it.ID == productID {
				total += it.Qty
			}
		}
	}
	return total, nil
}

// memoryProducts is an inventory.ProductRepository over a map.
type memoryProducts struct {
	mu       sync.Mutex
	products map[string]*inventory.Product
	failFor  map[string]error
}

func (m *memoryProducts) Create(_ context.Context, p *inventory.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products[p.ID] = p
	return nil
}

func (m *memoryProducts) GetByID(_ context.Context, id string) (*inventory.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return nil, apperr.NotFound("product", id)
	}
	cp := *p
	return &cp, nil
}

func (m *memoryProducts) Update(ctx context.Context, id string, _ inventory.UpdateProductRequest) (*inventory.Product, error) {
	return m.GetByID(ctx, id)
}

func (m *memoryProducts) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.products, id)
	return nil
}

func (m *memoryProducts) DecrementStock(_ context.Context, productID, storeID string, qty int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failFor[productID]; err != nil {
		return err
	}
	p, ok := m.products[productID]
	if !ok || p.StoreID == nil || *p.StoreID != storeID {
		return apperr.NotFound("product in store", productID)
	}
	p.Stock -= qty
	return nil
}

func (m *memoryProducts) CountLowStock(_ context.Context, userID, storeID string, limit int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, p := range m.products {
		if p.UserID == userID && p.StoreID != nil && *p.StoreID == storeID && p.Stock <= limit {
			n++
		}
	}
	return n, nil
}

func (m *memoryProducts) stock(id string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.products[id].Stock
}

// memoryPromotions is a promotion.Repository over a slice.
type memoryPromotions struct {
	mu     sync.Mutex
	promos []promotion.Promotion
}

func (m *memoryPromotions) Create(_ context.Context, p *promotion.Promotion) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.promos = append(m.promos, *p)
	return nil
}

func (m *memoryPromotions) ExistsActiveByName(_ context.Context, storeID, name string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.promos {
		if p.StoreID == storeID && p.Name == name && p.IsActive {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryPromotions) Update(_ context.Context, id string, _ promotion.UpdatePromotionRequest) (*promotion.Promotion, error) {
	return nil, apperr.NotFound("promotion", id)
}

func (m *memoryPromotions) Delete(_ context.Context, id string) error {
	return apperr.NotFound("promotion", id)
}
