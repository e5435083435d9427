package ledgerservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/avelarde/recargas/internal/domain"
	"github.com/avelarde/recargas/internal/pg"
)

type Repo interface {
	FindWallet(ctx context.Context, userID, currencyID int) (*domain.Wallet, error)
	CreateWallet(ctx context.Context, userID, currencyID int) (*domain.Wallet, error)
	LockWallet(ctx context.Context, walletID int) error
	GetBalance(ctx context.Context, walletID int) (float64, error)
	InsertMovement(ctx context.Context, mv *domain.Movimiento) (*domain.Movimiento, error)
	FindMovementByID(ctx context.Context, id int) (*domain.Movimiento, error)
	FindPendingBySolicitud(ctx context.Context, solicitudID int) (*domain.Movimiento, error)
	CommitMovement(ctx context.Context, id int, amount, rate float64) (bool, error)
	RejectMovement(ctx context.Context, id int) (bool, error)
	ListMovements(ctx context.Context, walletID, limit, offset int) ([]domain.Movimiento, error)
}

var (
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrMovementNotOpen   = errors.New("movement is not pending")
)

// Service owns the append-only ledger. Balance is always derived by
// summation over committed movements; nothing here maintains a counter.
type Service struct {
	repo      Repo
	txManager pg.TXManager
}

func New(repo Repo, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
	}
}

func (s *Service) GetOrCreateWallet(ctx context.Context, userID, currencyID int) (*domain.Wallet, error) {
	wallet, err := s.repo.FindWallet(ctx, userID, currencyID)
	if err != nil {
		return nil, err
	}
	if wallet != nil {
		return wallet, nil
	}
	return s.repo.CreateWallet(ctx, userID, currencyID)
}

// Append inserts one movement. A pending movement may carry a zero amount
// when the real figure is confirmed later; committed ones never do. A
// committed debit locks the wallet row and re-derives the balance inside
// the same transaction, so no concurrent append can make it go negative.
func (s *Service) Append(ctx context.Context, walletID int, movType string, amount float64, currencyID int, status string, solicitudID *int, createdBy int) (*domain.Movimiento, error) {
	if amount < 0 || (amount == 0 && status != domain.MovementPending) {
		return nil, ErrInvalidAmount
	}

	mv := &domain.Movimiento{
		UUID:        uuid.NewString(),
		WalletID:    walletID,
		Type:        movType,
		Amount:      amount,
		CurrencyID:  currencyID,
		Status:      status,
		SolicitudID: solicitudID,
		CreatedBy:   createdBy,
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if movType == domain.MovementDebit && status == domain.MovementCommitted {
			if err := s.guardFunds(ctx, walletID, amount); err != nil {
				return err
			}
		}
		_, err := s.repo.InsertMovement(ctx, mv)
		return err
	})
	if err != nil {
		return nil, err
	}
	return mv, nil
}

// Commit finalizes a pending movement with its confirmed amount and the
// rate snapshot in effect. This is the only path that moves money.
func (s *Service) Commit(ctx context.Context, movementID int, amount, rate float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		mv, err := s.repo.FindMovementByID(ctx, movementID)
		if err != nil {
			return err
		}
		if mv == nil || mv.Status != domain.MovementPending {
			return ErrMovementNotOpen
		}

		if mv.Type == domain.MovementDebit {
			if err := s.guardFunds(ctx, mv.WalletID, amount); err != nil {
				return err
			}
		}

		ok, err := s.repo.CommitMovement(ctx, movementID, amount, rate)
		if err != nil {
			return err
		}
		if !ok {
			return ErrMovementNotOpen
		}
		return nil
	})
}

// Reject closes a pending movement without ever touching the balance. The
// rejected row stays in the ledger untouched from then on.
func (s *Service) Reject(ctx context.Context, movementID int) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.repo.RejectMovement(ctx, movementID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrMovementNotOpen
		}
		return nil
	})
}

func (s *Service) GetBalance(ctx context.Context, walletID int) (float64, error) {
	balance, err := s.repo.GetBalance(ctx, walletID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return 0, err
	}
	return balance, nil
}

func (s *Service) FindPendingBySolicitud(ctx context.Context, solicitudID int) (*domain.Movimiento, error) {
	return s.repo.FindPendingBySolicitud(ctx, solicitudID)
}

func (s *Service) ListMovements(ctx context.Context, walletID, limit, offset int) ([]domain.Movimiento, error) {
	movements, err := s.repo.ListMovements(ctx, walletID, limit, offset)
	if err != nil {
		zap.L().Error("failed to fetch movements", zap.Error(err))
		return nil, err
	}
	return movements, nil
}

func (s *Service) guardFunds(ctx context.Context, walletID int, amount float64) error {
	if err := s.repo.LockWallet(ctx, walletID); err != nil {
		return err
	}
	balance, err := s.repo.GetBalance(ctx, walletID)
	if err != nil {
		return err
	}
	if balance < amount {
		return ErrInsufficientFunds
	}
	return nil
}
