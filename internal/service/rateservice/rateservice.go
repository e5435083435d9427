package rateservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/avelarde/recargas/internal/domain"
)

type Repo interface {
	FindRate(ctx context.Context, fromCurrencyID, toCurrencyID int, asOf time.Time) (*domain.Cotizacion, error)
	FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)
}

var ErrNoRateAvailable = errors.New("no rate available for currency pair")

// Conversion is the result of expressing an amount in another currency,
// together with the rate snapshot used.
type Conversion struct {
	Amount float64
	Rate   float64
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// Convert is a pure read; it is safe to call concurrently. A zero asOf
// means "now". Identical currencies convert at rate 1 without a lookup.
func (s *Service) Convert(ctx context.Context, amount float64, fromCurrencyID, toCurrencyID int, asOf time.Time) (*Conversion, error) {
	if fromCurrencyID == toCurrencyID {
		return &Conversion{Amount: amount, Rate: 1}, nil
	}
	if asOf.IsZero() {
		asOf = time.Now()
	}

	rate, err := s.repo.FindRate(ctx, fromCurrencyID, toCurrencyID, asOf)
	if err != nil {
		zap.L().Error("failed to get rate", zap.Error(err))
		return nil, err
	}
	if rate == nil {
		return nil, ErrNoRateAvailable
	}

	return &Conversion{Amount: amount * rate.SellRate, Rate: rate.SellRate}, nil
}

func (s *Service) GetCurrency(ctx context.Context, code string) (*domain.Currency, error) {
	currency, err := s.repo.FindCurrencyByCode(ctx, code)
	if err != nil {
		zap.L().Error("failed to get currency", zap.Error(err))
		return nil, err
	}
	return currency, nil
}
