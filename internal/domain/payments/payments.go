// Package payments crea intents de pago para donaciones con un proveedor
// externo.
package payments

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"pet-adoption-api/internal/domain"
)

var ErrNotConfigured = fmt.Errorf("%w: payment provider not configured", domain.ErrUpstream)

// Intent es un pedido de cobro en unidades menores.
type Intent struct {
	Amount   int64
	Currency string
}

type IntentResult struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	AuthorizeURI string `json:"authorizeUri,omitempty"`
	SourceID     string `json:"sourceId,omitempty"`
}

type Provider interface {
	CreateIntent(ctx context.Context, in Intent) (IntentResult, error)
}

type Service struct {
	provider Provider
	currency string
}

// NewService crea el servicio. provider puede ser nil; entonces todo falla
// con ErrNotConfigured.
func NewService(provider Provider, defaultCurrency string) *Service {
	cur := strings.ToLower(strings.TrimSpace(defaultCurrency))
	if cur == "" {
		cur = "thb"
	}
	return &Service{provider: provider, currency: cur}
}

// ToMinor pasa un precio a unidades menores, redondeando .5 hacia afuera.
func ToMinor(price float64) int64 {
	return int64(math.Round(price * 100))
}

func (s *Service) CreateIntent(ctx context.Context, price float64, currency string) (IntentResult, error) {
	if s.provider == nil {
		return IntentResult{}, ErrNotConfigured
	}
	if price <= 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return IntentResult{}, fmt.Errorf("%w: price must be positive", domain.ErrInvalidInput)
	}
	amount := ToMinor(price)
	if amount <= 0 {
		return IntentResult{}, fmt.Errorf("%w: price below smallest unit", domain.ErrInvalidInput)
	}

	cur := strings.ToLower(strings.TrimSpace(currency))
	if cur == "" {
		cur = s.currency
	}

	res, err := s.provider.CreateIntent(ctx, Intent{Amount: amount, Currency: cur})
	if err != nil {
		if errors.Is(err, domain.ErrUpstream) {
			return IntentResult{}, err
		}
		return IntentResult{}, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	return res, nil
}
