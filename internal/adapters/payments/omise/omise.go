// Package omise crea intents de pago como charges de Omise sobre un source
// (PromptPay salvo que se configure otro).
package omise

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/omise/omise-go"
	"github.com/omise/omise-go/operations"

	"pet-adoption-api/internal/domain"
	"pet-adoption-api/internal/domain/payments"
)

const DefaultSourceType = "promptpay"

type Config struct {
	PublicKey  string
	SecretKey  string
	SourceType string
	ReturnURI  string
}

// gateway es la parte de la API de Omise que usa el provider.
type gateway interface {
	CreateSource(ctx context.Context, src *omise.Source, op *operations.CreateSource) error
	CreateCharge(ctx context.Context, ch *omise.Charge, op *operations.CreateCharge) error
}

type sdkGateway struct {
	c *omise.Client
}

// WithContext devuelve una copia por llamada; cancelar ctx corta el request.
func (g sdkGateway) CreateSource(ctx context.Context, src *omise.Source, op *operations.CreateSource) error {
	return g.c.WithContext(ctx).Do(src, op)
}

func (g sdkGateway) CreateCharge(ctx context.Context, ch *omise.Charge, op *operations.CreateCharge) error {
	return g.c.WithContext(ctx).Do(ch, op)
}

type Provider struct {
	gw         gateway
	sourceType string
	returnURI  string
}

var _ payments.Provider = (*Provider)(nil)

func New(cfg Config) (*Provider, error) {
	if cfg.PublicKey == "" || cfg.SecretKey == "" {
		return nil, errors.New("omise: public and secret keys are required")
	}
	c, err := omise.NewClient(cfg.PublicKey, cfg.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("omise: new client: %w", err)
	}
	return newProvider(sdkGateway{c: c}, cfg), nil
}

func newProvider(gw gateway, cfg Config) *Provider {
	st := strings.TrimSpace(cfg.SourceType)
	if st == "" {
		st = DefaultSourceType
	}
	return &Provider{gw: gw, sourceType: st, returnURI: cfg.ReturnURI}
}

// CreateIntent crea un source y lo cobra.
func (p *Provider) CreateIntent(ctx context.Context, in payments.Intent) (payments.IntentResult, error) {
	if err := ctx.Err(); err != nil {
		return payments.IntentResult{}, err
	}

	src := &omise.Source{}
	if err := p.gw.CreateSource(ctx, src, &operations.CreateSource{
		Type:     p.sourceType,
		Amount:   in.Amount,
		Currency: in.Currency,
	}); err != nil {
		return payments.IntentResult{}, fmt.Errorf("%w: omise create source: %v", domain.ErrUpstream, err)
	}

	ch := &omise.Charge{}
	if err := p.gw.CreateCharge(ctx, ch, &operations.CreateCharge{
		Amount:    in.Amount,
		Currency:  in.Currency,
		Source:    src.ID,
		ReturnURI: p.returnURI,
	}); err != nil {
		return payments.IntentResult{}, fmt.Errorf("%w: omise create charge: %v", domain.ErrUpstream, err)
	}

	return payments.IntentResult{
		ID:           ch.ID,
		Status:       string(ch.Status),
		Amount:       ch.Amount,
		Currency:     ch.Currency,
		AuthorizeURI: ch.AuthorizeURI,
		SourceID:     src.ID,
	}, nil
}
