package promotion

import (
	"context"
	"fmt"
	"time"

	"github.com/georgemunganga/dagangcerdas-backend/internal/apperr"
	"github.com/georgemunganga/dagangcerdas-backend/internal/modules/inventory"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	autoNamePrefix  = "Diskon produk laris "
	fallbackProduct = "Produk Laris"
)

// AutoName derives the auto-promotion name for a product display name.
// Different products sharing a display name map to the same promotion.
func AutoName(displayName string) string {
	if displayName == "" {
		displayName = fallbackProduct
	}
	return autoNamePrefix + displayName
}

// Candidate is a product from a just-recorded sale.
type Candidate struct {
	ProductID string
	// Name is the display name carried on the sale line, may be empty.
	Name string
}

// Decision is what happened to one candidate.
type Decision string

const (
	DecisionBelowThreshold Decision = "below_threshold"
	DecisionIssued         Decision = "issued"
	DecisionAlreadyActive  Decision = "already_active"
	DecisionFailed         Decision = "failed"
)

// Result is the outcome for one candidate.
type Result struct {
	ProductID   string   `json:"product_id"`
	Volume      int      `json:"volume"`
	Decision    Decision `json:"decision"`
	PromotionID string   `json:"promotion_id,omitempty"`
	Reason      string   `json:"reason,omitempty"`
	Err         error    `json:"-"`
}

// Report collects the results of one auto-promotion pass.
type Report struct {
	Results []Result `json:"results"`
}

// Degraded reports whether any candidate failed.
func (r Report) Degraded() bool {
	for _, res := range r.Results {
		if res.Decision == DecisionFailed {
			return true
		}
	}
	return false
}

// Issued returns the ids of promotions created in this pass.
func (r Report) Issued() []string {
	var ids []string
	for _, res := range r.Results {
		if res.Decision == DecisionIssued {
			ids = append(ids, res.PromotionID)
		}
	}
	return ids
}

// ProductReader looks up a product for its display name.
type ProductReader interface {
	GetByID(ctx context.Context, id string) (*inventory.Product, error)
}

// Issuer creates a time-boxed percentage promotion when a product turns hot.
//
// Deduplication is a check on an active promotion with the derived name
// followed by an insert; concurrent qualifying sales can both insert.
type Issuer struct {
	repo     Repository
	products ProductReader
	detector *Detector
	policy   Policy
	now      func() time.Time
	logger   zerolog.Logger
}

func NewIssuer(repo Repository, products ProductReader, detector *Detector, policy Policy, now func() time.Time, logger zerolog.Logger) *Issuer {
	if now == nil {
		now = time.Now
	}
	return &Issuer{
		repo:     repo,
		products: products,
		detector: detector,
		policy:   policy,
		now:      now,
		logger:   logger,
	}
}

// Run scans every candidate and issues promotions for hot ones.
// A failure on one candidate is recorded and the scan continues.
func (i *Issuer) Run(ctx context.Context, userID, storeID string, candidates []Candidate) Report {
	var report Report
	for _, c := range candidates {
		if c.ProductID == "" {
			continue
		}
		res := i.evaluate(ctx, userID, storeID, c)
		if res.Err != nil {
			i.logger.Error().Err(res.Err).
				Str("store_id", storeID).
				Str("product_id", c.ProductID).
				Msg("Failed to create auto promotion for hot product")
		}
		report.Results = append(report.Results, res)
	}
	return report
}

func (i *Issuer) evaluate(ctx context.Context, userID, storeID string, c Candidate) Result {
	res := Result{ProductID: c.ProductID}

	volume, err := i.detector.Volume(ctx, userID, storeID, c.ProductID)
	if err != nil {
		return failed(res, "volume query", err)
	}
	res.Volume = volume
	if !i.detector.IsHot(volume) {
		res.Decision = DecisionBelowThreshold
		return res
	}

	p, err := i.Issue(ctx, userID, storeID, i.displayName(ctx, c), volume)
	if err != nil {
		return failed(res, "promotion issue", err)
	}
	if p == nil {
		res.Decision = DecisionAlreadyActive
		return res
	}
	res.Decision = DecisionIssued
	res.PromotionID = p.ID
	return res
}

// Issue creates the auto-promotion for displayName unless an active one exists.
// It returns nil, nil when skipped.
func (i *Issuer) Issue(ctx context.Context, userID, storeID, displayName string, volume int) (*Promotion, error) {
	if displayName == "" {
		displayName = fallbackProduct
	}
	name := AutoName(displayName)

	exists, err := i.repo.ExistsActiveByName(ctx, storeID, name)
	if err != nil {
		return nil, fmt.Errorf("check active promotion: %w", err)
	}
	if exists {
		i.logger.Debug().Str("store_id", storeID).Str("name", name).Msg("Auto promotion already active")
		return nil, nil
	}

	start := i.now()
	end := start.Add(i.policy.Duration)
	p := &Promotion{
		ID:      uuid.NewString(),
		UserID:  userID,
		StoreID: storeID,
		Name:    name,
		Description: fmt.Sprintf("Diskon otomatis karena %s laris terjual %d item dalam %d hari terakhir",
			displayName, volume, i.policy.windowDays()),
		DiscountType:     DiscountPercentage,
		DiscountValue:    i.policy.DiscountPercent,
		MinOrderQuantity: i.policy.MinOrderQuantity,
		StartDate:        &start,
		EndDate:          &end,
		IsActive:         true,
	}
	if err := i.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("insert promotion: %w", err)
	}
	i.logger.Info().
		Str("store_id", storeID).
		Str("promotion_id", p.ID).
		Str("name", name).
		Int("volume", volume).
		Msg("Created auto promotion for hot product")
	return p, nil
}

// displayName prefers the name on the sale line, then the product row.
func (i *Issuer) displayName(ctx context.Context, c Candidate) string {
	if c.Name != "" {
		return c.Name
	}
	if i.products == nil {
		return fallbackProduct
	}
	p, err := i.products.GetByID(ctx, c.ProductID)
	if err != nil || p.Name == "" {
		i.logger.Debug().Err(err).Str("product_id", c.ProductID).Msg("Product name unavailable, using fallback")
		return fallbackProduct
	}
	return p.Name
}

func failed(res Result, step string, err error) Result {
	res.Decision = DecisionFailed
	res.Reason = err.Error()
	res.Err = apperr.Downstream(step, res.ProductID, err)
	return res
}
