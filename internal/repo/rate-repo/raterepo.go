package raterepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/avelarde/recargas/internal/domain"
	"github.com/avelarde/recargas/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// FindRate returns the newest cotización for the pair in effect at asOf.
func (r *Repository) FindRate(ctx context.Context, fromCurrencyID, toCurrencyID int, asOf time.Time) (*domain.Cotizacion, error) {
	query := `
        SELECT id, from_currency_id, to_currency_id, buy_rate, sell_rate, valid_from
        FROM cotizaciones
        WHERE from_currency_id = $1 AND to_currency_id = $2 AND valid_from <= $3
        ORDER BY valid_from DESC
        LIMIT 1
    `
	row := r.db.QueryRow(ctx, query, fromCurrencyID, toCurrencyID, asOf)
	var c domain.Cotizacion
	err := row.Scan(&c.ID, &c.FromCurrencyID, &c.ToCurrencyID, &c.BuyRate, &c.SellRate, &c.ValidFrom)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find rate", zap.Error(err))
		return nil, err
	}
	return &c, nil
}

func (r *Repository) FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	query := `
        SELECT id, code, name
        FROM currencies
        WHERE code = $1
    `
	row := r.db.QueryRow(ctx, query, code)
	var c domain.Currency
	err := row.Scan(&c.ID, &c.Code, &c.Name)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find currency", zap.Error(err))
		return nil, err
	}
	return &c, nil
}
