package walletrepo

import (
	"context"

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

func (r *Repository) FindWallet(ctx context.Context, userID, currencyID int) (*domain.Wallet, error) {
	query := `
        SELECT id, user_id, currency_id, active, created_at
        FROM wallets
        WHERE user_id = $1 AND currency_id = $2
    `
	row := r.db.QueryRow(ctx, query, userID, currencyID)
	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.UserID, &wallet.CurrencyID, &wallet.Active, &wallet.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

// CreateWallet upserts on the (user_id, currency_id) unique key so two
// concurrent first recharges end up with the same wallet row.
func (r *Repository) CreateWallet(ctx context.Context, userID, currencyID int) (*domain.Wallet, error) {
	query := `
        INSERT INTO wallets (user_id, currency_id)
        VALUES ($1, $2)
        ON CONFLICT (user_id, currency_id) DO UPDATE SET user_id = EXCLUDED.user_id
        RETURNING id, user_id, currency_id, active, created_at
    `
	row := r.db.QueryRow(ctx, query, userID, currencyID)
	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.UserID, &wallet.CurrencyID, &wallet.Active, &wallet.CreatedAt)
	if err != nil {
		zap.L().Error("can't create wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

// LockWallet takes the wallet's row lock for the rest of the ambient
// transaction. Appends that must check the balance call it first so no
// concurrent committed movement can slip between the sum and the insert.
func (r *Repository) LockWallet(ctx context.Context, walletID int) error {
	query := `
        SELECT id
        FROM wallets
        WHERE id = $1
        FOR UPDATE
    `
	var id int
	if err := r.db.QueryRow(ctx, query, walletID).Scan(&id); err != nil {
		zap.L().Error("can't lock wallet", zap.Error(err))
		return err
	}
	return nil
}

// GetBalance derives the balance by summation over committed movements.
// There is no stored counter to diverge from this.
func (r *Repository) GetBalance(ctx context.Context, walletID int) (float64, error) {
	query := `
        SELECT COALESCE(SUM(CASE WHEN type = 'credit' THEN amount ELSE -amount END), 0)
        FROM movimientos
        WHERE wallet_id = $1 AND status = 'committed'
    `
	var balance float64
	if err := r.db.QueryRow(ctx, query, walletID).Scan(&balance); err != nil {
		zap.L().Error("can't compute wallet balance", zap.Error(err))
		return 0, err
	}
	return balance, nil
}

func (r *Repository) InsertMovement(ctx context.Context, mv *domain.Movimiento) (*domain.Movimiento, error) {
	query := `
        INSERT INTO movimientos (uuid, wallet_id, type, amount, currency_id, rate, status, solicitud_id, created_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		mv.UUID, mv.WalletID, mv.Type, mv.Amount, mv.CurrencyID, mv.Rate, mv.Status, mv.SolicitudID, mv.CreatedBy).
		Scan(&mv.ID, &mv.CreatedAt)
	if err != nil {
		zap.L().Error("can't save movement", zap.Error(err))
		return nil, err
	}
	return mv, nil
}

func (r *Repository) FindMovementByID(ctx context.Context, id int) (*domain.Movimiento, error) {
	query := `
        SELECT id, uuid, wallet_id, type, amount, currency_id, rate, status, solicitud_id, created_by, created_at
        FROM movimientos
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var mv domain.Movimiento
	err := row.Scan(&mv.ID, &mv.UUID, &mv.WalletID, &mv.Type, &mv.Amount, &mv.CurrencyID, &mv.Rate, &mv.Status, &mv.SolicitudID, &mv.CreatedBy, &mv.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find movement", zap.Error(err))
		return nil, err
	}
	return &mv, nil
}

// FindPendingBySolicitud returns the open pending movement of a recharge
// request. Rejected movements of earlier cycles never match.
func (r *Repository) FindPendingBySolicitud(ctx context.Context, solicitudID int) (*domain.Movimiento, error) {
	query := `
        SELECT id, uuid, wallet_id, type, amount, currency_id, rate, status, solicitud_id, created_by, created_at
        FROM movimientos
        WHERE solicitud_id = $1 AND status = 'pending'
        ORDER BY created_at DESC
        LIMIT 1
    `
	row := r.db.QueryRow(ctx, query, solicitudID)
	var mv domain.Movimiento
	err := row.Scan(&mv.ID, &mv.UUID, &mv.WalletID, &mv.Type, &mv.Amount, &mv.CurrencyID, &mv.Rate, &mv.Status, &mv.SolicitudID, &mv.CreatedBy, &mv.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find pending movement", zap.Error(err))
		return nil, err
	}
	return &mv, nil
}

// CommitMovement flips exactly one pending row to committed. The status
// guard makes terminal rows immutable; zero affected rows means the caller
// raced a concurrent transition.
func (r *Repository) CommitMovement(ctx context.Context, id int, amount, rate float64) (bool, error) {
	query := `
        UPDATE movimientos
        SET status = 'committed', amount = $2, rate = $3
        WHERE id = $1 AND status = 'pending'
    `
	tag, err := r.db.Exec(ctx, query, id, amount, rate)
	if err != nil {
		zap.L().Error("can't commit movement", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) RejectMovement(ctx context.Context, id int) (bool, error) {
	query := `
        UPDATE movimientos
        SET status = 'rejected'
        WHERE id = $1 AND status = 'pending'
    `
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't reject movement", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) ListMovements(ctx context.Context, walletID, limit, offset int) ([]domain.Movimiento, error) {
	query := `
        SELECT id, uuid, wallet_id, type, amount, currency_id, rate, status, solicitud_id, created_by, created_at
        FROM movimientos
        WHERE wallet_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3
    `
	rows, err := r.db.Query(ctx, query, walletID, limit, offset)
	if err != nil {
		zap.L().Error("can't get movements", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var movements []domain.Movimiento
	for rows.Next() {
		var mv domain.Movimiento
		err := rows.Scan(&mv.ID, &mv.UUID, &mv.WalletID, &mv.Type, &mv.Amount, &mv.CurrencyID, &mv.Rate, &mv.Status, &mv.SolicitudID, &mv.CreatedBy, &mv.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan movement row", zap.Error(err))
			return nil, err
		}
		movements = append(movements, mv)
	}
	return movements, nil
}
