package rechargeservice

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/avelarde/recargas/internal/domain"
	"github.com/avelarde/recargas/internal/pg"
	"github.com/avelarde/recargas/internal/service/rateservice"
)

type Repo interface {
	Create(ctx context.Context, s *domain.SolicitudRecarga) (*domain.SolicitudRecarga, error)
	FindByID(ctx context.Context, id int) (*domain.SolicitudRecarga, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.SolicitudRecarga, error)
	FindUnassignedPendientes(ctx context.Context, limit int) ([]domain.SolicitudRecarga, error)
	SetVerifier(ctx context.Context, id, verifierID int) error
	MarkVerified(ctx context.Context, id, verifierID int, amount float64) (bool, error)
	MarkRejected(ctx context.Context, id, verifierID int, motivo string) (bool, error)
	MarkReenabled(ctx context.Context, id, userID int, observacion string) (bool, error)
}

type Ledger interface {
	GetOrCreateWallet(ctx context.Context, userID, currencyID int) (*domain.Wallet, error)
	Append(ctx context.Context, walletID int, movType string, amount float64, currencyID int, status string, solicitudID *int, createdBy int) (*domain.Movimiento, error)
	Commit(ctx context.Context, movementID int, amount, rate float64) error
	Reject(ctx context.Context, movementID int) error
	FindPendingBySolicitud(ctx context.Context, solicitudID int) (*domain.Movimiento, error)
}

type Rates interface {
	Convert(ctx context.Context, amount float64, fromCurrencyID, toCurrencyID int, asOf time.Time) (*rateservice.Conversion, error)
}

type Assigner interface {
	Assign(ctx context.Context, itemType string, itemID int, group string) (*domain.Asignacion, error)
	Complete(ctx context.Context, itemType string, itemID, workerID int) error
}

type Publisher interface {
	Publish(ctx context.Context, event string, userID, itemID int)
}

var (
	ErrValidation     = errors.New("invalid request")
	ErrInvalidState   = errors.New("invalid state transition")
	ErrAmountMismatch = errors.New("confirmed amount outside tolerance")
)

// Transition events raised for the notification collaborator.
const (
	EventPendiente  = "recarga.pendiente"
	EventVerificado = "recarga.verificado"
	EventRechazado  = "recarga.rechazado"
)

// baseCurrencyID is the platform currency every approval snapshots a rate
// against.
const baseCurrencyID = 1

// amountTolerance is the accepted relative gap between the requested and
// the confirmed amount.
const amountTolerance = 0.01

// Service drives a recharge request through pendiente, verificado,
// rechazado and back via rehabilitación. Every transition commits together
// with its ledger and assignment writes in one transaction.
type Service struct {
	repo      Repo
	ledger    Ledger
	rates     Rates
	assigner  Assigner
	publisher Publisher
	txManager pg.TXManager
}

func New(repo Repo, ledger Ledger, rates Rates, assigner Assigner, publisher Publisher, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		ledger:    ledger,
		rates:     rates,
		assigner:  assigner,
		publisher: publisher,
		txManager: txManager,
	}
}

// Solicitar creates the request in pendiente with its pending movement,
// then tries to hand it to a verifier. A full verifier pool does not fail
// the request; the sweeper retries it later.
func (s *Service) Solicitar(ctx context.Context, userID, currencyID int, movType string, amount float64, reference, description string) (*domain.SolicitudRecarga, error) {
	if currencyID <= 0 {
		return nil, ErrValidation
	}
	if movType != domain.MovementCredit && movType != domain.MovementDebit {
		return nil, ErrValidation
	}
	if amount < 0 {
		return nil, ErrValidation
	}

	solicitud := &domain.SolicitudRecarga{
		UUID:        uuid.NewString(),
		UserID:      userID,
		CurrencyID:  currencyID,
		Type:        movType,
		Amount:      amount,
		Reference:   reference,
		Description: description,
		State:       domain.SolicitudPendiente,
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		wallet, err := s.ledger.GetOrCreateWallet(ctx, userID, currencyID)
		if err != nil {
			return err
		}
		if _, err := s.repo.Create(ctx, solicitud); err != nil {
			return err
		}
		_, err = s.ledger.Append(ctx, wallet.ID, movType, amount, currencyID, domain.MovementPending, &solicitud.ID, userID)
		return err
	})
	if err != nil {
		zap.L().Error("can't create solicitud", zap.Error(err))
		return nil, err
	}

	s.tryAssign(ctx, solicitud)
	s.publisher.Publish(ctx, EventPendiente, solicitud.UserID, solicitud.ID)
	return solicitud, nil
}

// AssignPending gives a pendiente request to a verifier and records who it
// went to, in one transaction. Used on creation, re-enablement and by the
// background sweep.
func (s *Service) AssignPending(ctx context.Context, solicitud *domain.SolicitudRecarga) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		assignment, err := s.assigner.Assign(ctx, domain.ItemSolicitud, solicitud.ID, domain.GroupVerificador)
		if err != nil {
			return err
		}
		solicitud.VerifierID = &assignment.WorkerID
		return s.repo.SetVerifier(ctx, solicitud.ID, assignment.WorkerID)
	})
}

// Verificar commits the pending movement with the confirmed amount and the
// rate snapshot of that instant, and closes the request. Only the assigned
// verifier may call it, and only while the request is pendiente.
func (s *Service) Verificar(ctx context.Context, solicitudID, verifierID int, montoConfirmado float64) error {
	if montoConfirmado <= 0 {
		return ErrValidation
	}

	var solicitud *domain.SolicitudRecarga
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		solicitud, err = s.repo.FindByID(ctx, solicitudID)
		if err != nil {
			return err
		}
		if solicitud == nil {
			return ErrValidation
		}
		if solicitud.State != domain.SolicitudPendiente || solicitud.VerifierID == nil || *solicitud.VerifierID != verifierID {
			return ErrInvalidState
		}
		if solicitud.Amount > 0 && math.Abs(montoConfirmado-solicitud.Amount) > solicitud.Amount*amountTolerance {
			return ErrAmountMismatch
		}

		movement, err := s.ledger.FindPendingBySolicitud(ctx, solicitudID)
		if err != nil {
			return err
		}
		if movement == nil {
			return ErrInvalidState
		}

		conversion, err := s.rates.Convert(ctx, montoConfirmado, solicitud.CurrencyID, baseCurrencyID, time.Now())
		if err != nil {
			return err
		}

		if err := s.ledger.Commit(ctx, movement.ID, montoConfirmado, conversion.Rate); err != nil {
			return err
		}

		ok, err := s.repo.MarkVerified(ctx, solicitudID, verifierID, montoConfirmado)
		if err != nil {
			return err
		}
		if !ok {
			return ErrInvalidState
		}

		return s.assigner.Complete(ctx, domain.ItemSolicitud, solicitudID, verifierID)
	})
	if err != nil {
		return err
	}

	s.publisher.Publish(ctx, EventVerificado, solicitud.UserID, solicitudID)
	return nil
}

// Rechazar closes the request without moving money: the pending movement
// becomes rejected and is never touched again.
func (s *Service) Rechazar(ctx context.Context, solicitudID, verifierID int, motivo string) error {
	if motivo == "" {
		return ErrValidation
	}

	var solicitud *domain.SolicitudRecarga
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		solicitud, err = s.repo.FindByID(ctx, solicitudID)
		if err != nil {
			return err
		}
		if solicitud == nil {
			return ErrValidation
		}
		if solicitud.State != domain.SolicitudPendiente || solicitud.VerifierID == nil || *solicitud.VerifierID != verifierID {
			return ErrInvalidState
		}

		movement, err := s.ledger.FindPendingBySolicitud(ctx, solicitudID)
		if err != nil {
			return err
		}
		if movement == nil {
			return ErrInvalidState
		}
		if err := s.ledger.Reject(ctx, movement.ID); err != nil {
			return err
		}

		ok, err := s.repo.MarkRejected(ctx, solicitudID, verifierID, motivo)
		if err != nil {
			return err
		}
		if !ok {
			return ErrInvalidState
		}

		return s.assigner.Complete(ctx, domain.ItemSolicitud, solicitudID, verifierID)
	})
	if err != nil {
		return err
	}

	s.publisher.Publish(ctx, EventRechazado, solicitud.UserID, solicitudID)
	return nil
}

// Rehabilitar re-enters a rejected request into the queue. The rejected
// movement stays as it is; a brand-new pending movement starts the next
// cycle.
func (s *Service) Rehabilitar(ctx context.Context, solicitudID, userID int, observacion string) error {
	var solicitud *domain.SolicitudRecarga
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		solicitud, err = s.repo.FindByID(ctx, solicitudID)
		if err != nil {
			return err
		}
		if solicitud == nil {
			return ErrValidation
		}
		if solicitud.State != domain.SolicitudRechazado || solicitud.UserID != userID {
			return ErrInvalidState
		}

		ok, err := s.repo.MarkReenabled(ctx, solicitudID, userID, observacion)
		if err != nil {
			return err
		}
		if !ok {
			return ErrInvalidState
		}
		solicitud.State = domain.SolicitudPendiente
		solicitud.VerifierID = nil

		wallet, err := s.ledger.GetOrCreateWallet(ctx, solicitud.UserID, solicitud.CurrencyID)
		if err != nil {
			return err
		}
		_, err = s.ledger.Append(ctx, wallet.ID, solicitud.Type, solicitud.Amount, solicitud.CurrencyID, domain.MovementPending, &solicitud.ID, userID)
		return err
	})
	if err != nil {
		return err
	}

	s.tryAssign(ctx, solicitud)
	s.publisher.Publish(ctx, EventPendiente, solicitud.UserID, solicitudID)
	return nil
}

func (s *Service) GetSolicitudes(ctx context.Context, userID int) ([]domain.SolicitudRecarga, error) {
	solicitudes, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get solicitudes", zap.Error(err))
		return nil, err
	}
	return solicitudes, nil
}

func (s *Service) FindUnassigned(ctx context.Context, limit int) ([]domain.SolicitudRecarga, error) {
	return s.repo.FindUnassignedPendientes(ctx, limit)
}

func (s *Service) tryAssign(ctx context.Context, solicitud *domain.SolicitudRecarga) {
	if err := s.AssignPending(ctx, solicitud); err != nil {
		// The item stays unassigned; the sweeper picks it up later.
		zap.L().Warn("solicitud left unassigned",
			zap.Int("solicitud_id", solicitud.ID), zap.Error(err))
	}
}
