package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	SandboxBaseURL    = "https://app.sandbox.midtrans.com"
	ProductionBaseURL = "https://app.midtrans.com"
)

// ErrNotConfigured is returned when no Midtrans server key is set.
var ErrNotConfigured = errors.New("midtrans is not configured")

// Gateway creates hosted payment transactions with a provider.
type Gateway interface {
	CreateTransaction(ctx context.Context, req SnapRequest) (*SnapTransaction, error)
}

// BaseURL picks the Snap host. An explicit override wins unless it is the
// sandbox default while production is requested.
func BaseURL(override string, isProduction bool) string {
	switch {
	case isProduction && (override == "" || override == SandboxBaseURL):
		return ProductionBaseURL
	case override == "":
		return SandboxBaseURL
	default:
		return strings.TrimRight(override, "/")
	}
}

type snapGateway struct {
	client    *resty.Client
	serverKey string
}

// NewSnapGateway returns a Midtrans Snap client authenticating with serverKey.
func NewSnapGateway(baseURL, serverKey string) Gateway {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(15*time.Second).
		SetBasicAuth(serverKey, "").
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")
	return &snapGateway{client: client, serverKey: serverKey}
}

func (g *snapGateway) CreateTransaction(ctx context.Context, req SnapRequest) (*SnapTransaction, error) {
	if g.serverKey == "" {
		return nil, ErrNotConfigured
	}

	var out SnapTransaction
	var apiErr snapError
	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		SetError(&apiErr).
		Post("/snap/v1/transactions")
	if err != nil {
		return nil, fmt.Errorf("snap create transaction: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("snap create transaction: status %d: %s",
			resp.StatusCode(), strings.Join(apiErr.ErrorMessages, "; "))
	}
	if out.Token == "" {
		return nil, errors.New("snap create transaction: empty token")
	}
	return &out, nil
}
