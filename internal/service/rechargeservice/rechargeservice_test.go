package rechargeservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/avelarde/recargas/internal/domain"
	"github.com/avelarde/recargas/internal/pg"
	"github.com/avelarde/recargas/internal/service/rateservice"
)

type mocks struct {
	repo      *MockRepo
	ledger    *MockLedger
	rates     *MockRates
	assigner  *MockAssigner
	publisher *MockPublisher
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := &mocks{
		repo:      NewMockRepo(ctrl),
		ledger:    NewMockLedger(ctrl),
		rates:     NewMockRates(ctrl),
		assigner:  NewMockAssigner(ctrl),
		publisher: NewMockPublisher(ctrl),
	}
	mockTxManager := pg.NewMockTXManager(ctrl)
	mockTxManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		}).AnyTimes()

	service := New(m.repo, m.ledger, m.rates, m.assigner, m.publisher, mockTxManager)
	return service, m
}

func pendiente(verifierID *int) *domain.SolicitudRecarga {
	return &domain.SolicitudRecarga{
		ID:         1,
		UUID:       "uuid-1",
		UserID:     10,
		CurrencyID: 2,
		Type:       domain.MovementCredit,
		Amount:     100,
		State:      domain.SolicitudPendiente,
		VerifierID: verifierID,
	}
}

func TestService_Solicitar(t *testing.T) {
	ctx := context.Background()

	t.Run("Invalid currency is rejected", func(t *testing.T) {
		service, _ := NewMock(t)

		s, err := service.Solicitar(ctx, 10, 0, domain.MovementCredit, 100, "", "")
		assert.ErrorIs(t, err, ErrValidation)
		assert.Nil(t, s)
	})

	t.Run("Unknown movement type is rejected", func(t *testing.T) {
		service, _ := NewMock(t)

		s, err := service.Solicitar(ctx, 10, 2, "transfer", 100, "", "")
		assert.ErrorIs(t, err, ErrValidation)
		assert.Nil(t, s)
	})

	t.Run("Negative amount is rejected", func(t *testing.T) {
		service, _ := NewMock(t)

		s, err := service.Solicitar(ctx, 10, 2, domain.MovementCredit, -5, "", "")
		assert.ErrorIs(t, err, ErrValidation)
		assert.Nil(t, s)
	})

	t.Run("Creates request, pending movement and assignment", func(t *testing.T) {
		service, m := NewMock(t)
		wallet := &domain.Wallet{ID: 4, UserID: 10, CurrencyID: 2}

		m.ledger.EXPECT().GetOrCreateWallet(ctx, 10, 2).Return(wallet, nil)
		m.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, s *domain.SolicitudRecarga) (*domain.SolicitudRecarga, error) {
				s.ID = 1
				return s, nil
			})
		m.ledger.EXPECT().Append(ctx, 4, domain.MovementCredit, 100.0, 2, domain.MovementPending, gomock.Any(), 10).
			Return(&domain.Movimiento{ID: 9}, nil)
		m.assigner.EXPECT().Assign(ctx, domain.ItemSolicitud, 1, domain.GroupVerificador).
			Return(&domain.Asignacion{ID: 1, WorkerID: 3}, nil)
		m.repo.EXPECT().SetVerifier(ctx, 1, 3).Return(nil)
		m.publisher.EXPECT().Publish(ctx, EventPendiente, 10, 1)

		s, err := service.Solicitar(ctx, 10, 2, domain.MovementCredit, 100, "79927398713", "bank deposit")
		assert.NoError(t, err)
		assert.Equal(t, domain.SolicitudPendiente, s.State)
		assert.NotNil(t, s.VerifierID)
		assert.Equal(t, 3, *s.VerifierID)
	})

	t.Run("Zero amount is an open request", func(t *testing.T) {
		service, m := NewMock(t)
		wallet := &domain.Wallet{ID: 4}

		m.ledger.EXPECT().GetOrCreateWallet(ctx, 10, 2).Return(wallet, nil)
		m.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, s *domain.SolicitudRecarga) (*domain.SolicitudRecarga, error) {
				s.ID = 1
				return s, nil
			})
		m.ledger.EXPECT().Append(ctx, 4, domain.MovementCredit, 0.0, 2, domain.MovementPending, gomock.Any(), 10).
			Return(&domain.Movimiento{ID: 9}, nil)
		m.assigner.EXPECT().Assign(ctx, domain.ItemSolicitud, 1, domain.GroupVerificador).
			Return(&domain.Asignacion{WorkerID: 3}, nil)
		m.repo.EXPECT().SetVerifier(ctx, 1, 3).Return(nil)
		m.publisher.EXPECT().Publish(ctx, EventPendiente, 10, 1)

		s, err := service.Solicitar(ctx, 10, 2, domain.MovementCredit, 0, "", "")
		assert.NoError(t, err)
		assert.NotNil(t, s)
	})

	t.Run("Exhausted verifier pool leaves the request unassigned", func(t *testing.T) {
		service, m := NewMock(t)
		wallet := &domain.Wallet{ID: 4}

		m.ledger.EXPECT().GetOrCreateWallet(ctx, 10, 2).Return(wallet, nil)
		m.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, s *domain.SolicitudRecarga) (*domain.SolicitudRecarga, error) {
				s.ID = 1
				return s, nil
			})
		m.ledger.EXPECT().Append(ctx, 4, domain.MovementCredit, 100.0, 2, domain.MovementPending, gomock.Any(), 10).
			Return(&domain.Movimiento{ID: 9}, nil)
		m.assigner.EXPECT().Assign(ctx, domain.ItemSolicitud, 1, domain.GroupVerificador).
			Return(nil, errors.New("no worker available"))
		m.publisher.EXPECT().Publish(ctx, EventPendiente, 10, 1)

		s, err := service.Solicitar(ctx, 10, 2, domain.MovementCredit, 100, "", "")
		assert.NoError(t, err)
		assert.Nil(t, s.VerifierID)
	})

	t.Run("Ledger failure rolls the whole creation back", func(t *testing.T) {
		service, m := NewMock(t)
		wallet := &domain.Wallet{ID: 4}

		m.ledger.EXPECT().GetOrCreateWallet(ctx, 10, 2).Return(wallet, nil)
		m.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, s *domain.SolicitudRecarga) (*domain.SolicitudRecarga, error) {
				s.ID = 1
				return s, nil
			})
		m.ledger.EXPECT().Append(ctx, 4, domain.MovementCredit, 100.0, 2, domain.MovementPending, gomock.Any(), 10).
			Return(nil, errors.New("database error"))

		s, err := service.Solicitar(ctx, 10, 2, domain.MovementCredit, 100, "", "")
		assert.Error(t, err)
		assert.Nil(t, s)
	})
}

func TestService_Verificar(t *testing.T) {
	ctx := context.Background()
	verifierID := 3

	t.Run("Non-positive confirmed amount is rejected", func(t *testing.T) {
		service, _ := NewMock(t)

		assert.ErrorIs(t, service.Verificar(ctx, 1, 3, 0), ErrValidation)
	})

	t.Run("Assigned verifier commits within tolerance", func(t *testing.T) {
		service, m := NewMock(t)
		mv := &domain.Movimiento{ID: 9, WalletID: 4, Type: domain.MovementCredit, Status: domain.MovementPending}

		m.repo.EXPECT().FindByID(ctx, 1).Return(pendiente(&verifierID), nil)
		m.ledger.EXPECT().FindPendingBySolicitud(ctx, 1).Return(mv, nil)
		m.rates.EXPECT().Convert(ctx, 100.5, 2, 1, gomock.Any()).
			Return(&rateservice.Conversion{Amount: 699.48, Rate: 6.96}, nil)
		m.ledger.EXPECT().Commit(ctx, 9, 100.5, 6.96).Return(nil)
		m.repo.EXPECT().MarkVerified(ctx, 1, 3, 100.5).Return(true, nil)
		m.assigner.EXPECT().Complete(ctx, domain.ItemSolicitud, 1, 3).Return(nil)
		m.publisher.EXPECT().Publish(ctx, EventVerificado, 10, 1)

		assert.NoError(t, service.Verificar(ctx, 1, 3, 100.5))
	})

	t.Run("Unknown solicitud is rejected", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByID(ctx, 1).Return(nil, nil)

		assert.ErrorIs(t, service.Verificar(ctx, 1, 3, 100), ErrValidation)
	})

	t.Run("Verifier other than the assigned one is refused", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByID(ctx, 1).Return(pendiente(&verifierID), nil)

		assert.ErrorIs(t, service.Verificar(ctx, 1, 99, 100), ErrInvalidState)
	})

	t.Run("Unassigned solicitud cannot be verified", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByID(ctx, 1).Return(pendiente(nil), nil)

		assert.ErrorIs(t, service.Verificar(ctx, 1, 3, 100), ErrInvalidState)
	})

	t.Run("Already closed solicitud is refused", func(t *testing.T) {
		service, m := NewMock(t)
		s := pendiente(&verifierID)
		s.State = domain.SolicitudVerificado
		m.repo.EXPECT().FindByID(ctx, 1).Return(s, nil)

		assert.ErrorIs(t, service.Verificar(ctx, 1, 3, 100), ErrInvalidState)
	})

	t.Run("Confirmed amount outside the tolerance band", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByID(ctx, 1).Return(pendiente(&verifierID), nil)

		assert.ErrorIs(t, service.Verificar(ctx, 1, 3, 101.5), ErrAmountMismatch)
	})

	t.Run("Exactly one percent off still passes", func(t *testing.T) {
		service, m := NewMock(t)
		mv := &domain.Movimiento{ID: 9, WalletID: 4, Type: domain.MovementCredit, Status: domain.MovementPending}

		m.repo.EXPECT().FindByID(ctx, 1).Return(pendiente(&verifierID), nil)
		m.ledger.EXPECT().FindPendingBySolicitud(ctx, 1).Return(mv, nil)
		m.rates.EXPECT().Convert(ctx, 101.0, 2, 1, gomock.Any()).
			Return(&rateservice.Conversion{Amount: 702.96, Rate: 6.96}, nil)
		m.ledger.EXPECT().Commit(ctx, 9, 101.0, 6.96).Return(nil)
		m.repo.EXPECT().MarkVerified(ctx, 1, 3, 101.0).Return(true, nil)
		m.assigner.EXPECT().Complete(ctx, domain.ItemSolicitud, 1, 3).Return(nil)
		m.publisher.EXPECT().Publish(ctx, EventVerificado, 10, 1)

		assert.NoError(t, service.Verificar(ctx, 1, 3, 101.0))
	})

	t.Run("Open-amount request accepts any confirmed amount", func(t *testing.T) {
		service, m := NewMock(t)
		s := pendiente(&verifierID)
		s.Amount = 0
		mv := &domain.Movimiento{ID: 9, WalletID: 4, Type: domain.MovementCredit, Status: domain.MovementPending}

		m.repo.EXPECT().FindByID(ctx, 1).Return(s, nil)
		m.ledger.EXPECT().FindPendingBySolicitud(ctx, 1).Return(mv, nil)
		m.rates.EXPECT().Convert(ctx, 5000.0, 2, 1, gomock.Any()).
			Return(&rateservice.Conversion{Amount: 34800.0, Rate: 6.96}, nil)
		m.ledger.EXPECT().Commit(ctx, 9, 5000.0, 6.96).Return(nil)
		m.repo.EXPECT().MarkVerified(ctx, 1, 3, 5000.0).Return(true, nil)
		m.assigner.EXPECT().Complete(ctx, domain.ItemSolicitud, 1, 3).Return(nil)
		m.publisher.EXPECT().Publish(ctx, EventVerificado, 10, 1)

		assert.NoError(t, service.Verificar(ctx, 1, 3, 5000.0))
	})

	t.Run("Missing pending movement is an invalid state", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByID(ctx, 1).Return(pendiente(&verifierID), nil)
		m.ledger.EXPECT().FindPendingBySolicitud(ctx, 1).Return(nil, nil)

		assert.ErrorIs(t, service.Verificar(ctx, 1, 3, 100), ErrInvalidState)
	})

	t.Run("No rate blocks the verification", func(t *testing.T) {
		service, m := NewMock(t)
		mv := &domain.Movimiento{ID: 9, WalletID: 4, Type: domain.MovementCredit, Status: domain.MovementPending}

		m.repo.EXPECT().FindByID(ctx, 1).Return(pendiente(&verifierID), nil)
		m.ledger.EXPECT().FindPendingBySolicitud(ctx, 1).Return(mv, nil)
		m.rates.EXPECT().Convert(ctx, 100.0, 2, 1, gomock.Any()).
			Return(nil, rateservice.ErrNoRateAvailable)

		assert.ErrorIs(t, service.Verificar(ctx, 1, 3, 100), rateservice.ErrNoRateAvailable)
	})

	t.Run("Raced guarded update is an invalid state", func(t *testing.T) {
		service, m := NewMock(t)
		mv := &domain.Movimiento{ID: 9, WalletID: 4, Type: domain.MovementCredit, Status: domain.MovementPending}

		m.repo.EXPECT().FindByID(ctx, 1).Return(pendiente(&verifierID), nil)
		m.ledger.EXPECT().FindPendingBySolicitud(ctx, 1).Return(mv, nil)
		m.rates.EXPECT().Convert(ctx, 100.0, 2, 1, gomock.Any()).
			Return(&rateservice.Conversion{Amount: 696.0, Rate: 6.96}, nil)
		m.ledger.EXPECT().Commit(ctx, 9, 100.0, 6.96).Return(nil)
		m.repo.EXPECT().MarkVerified(ctx, 1, 3, 100.0).Return(false, nil)

		assert.ErrorIs(t, service.Verificar(ctx, 1, 3, 100), ErrInvalidState)
	})
}

func TestService_Rechazar(t *testing.T) {
	ctx := context.Background()
	verifierID := 3

	t.Run("Motivo is mandatory", func(t *testing.T) {
		service, _ := NewMock(t)

		assert.ErrorIs(t, service.Rechazar(ctx, 1, 3, ""), ErrValidation)
	})

	t.Run("Assigned verifier rejects without moving funds", func(t *testing.T) {
		service, m := NewMock(t)
		mv := &domain.Movimiento{ID: 9, WalletID: 4, Status: domain.MovementPending}

		m.repo.EXPECT().FindByID(ctx, 1).Return(pendiente(&verifierID), nil)
		m.ledger.EXPECT().FindPendingBySolicitud(ctx, 1).Return(mv, nil)
		m.ledger.EXPECT().Reject(ctx, 9).Return(nil)
		m.repo.EXPECT().MarkRejected(ctx, 1, 3, "no deposit found").Return(true, nil)
		m.assigner.EXPECT().Complete(ctx, domain.ItemSolicitud, 1, 3).Return(nil)
		m.publisher.EXPECT().Publish(ctx, EventRechazado, 10, 1)

		assert.NoError(t, service.Rechazar(ctx, 1, 3, "no deposit found"))
	})

	t.Run("Verifier other than the assigned one is refused", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByID(ctx, 1).Return(pendiente(&verifierID), nil)

		assert.ErrorIs(t, service.Rechazar(ctx, 1, 99, "no deposit found"), ErrInvalidState)
	})

	t.Run("Already closed solicitud is refused", func(t *testing.T) {
		service, m := NewMock(t)
		s := pendiente(&verifierID)
		s.State = domain.SolicitudRechazado
		m.repo.EXPECT().FindByID(ctx, 1).Return(s, nil)

		assert.ErrorIs(t, service.Rechazar(ctx, 1, 3, "no deposit found"), ErrInvalidState)
	})
}

func TestService_Rehabilitar(t *testing.T) {
	ctx := context.Background()

	rechazado := func() *domain.SolicitudRecarga {
		verifierID := 3
		s := pendiente(&verifierID)
		s.State = domain.SolicitudRechazado
		return s
	}

	t.Run("Owner re-enables with a fresh pending movement", func(t *testing.T) {
		service, m := NewMock(t)
		wallet := &domain.Wallet{ID: 4}

		m.repo.EXPECT().FindByID(ctx, 1).Return(rechazado(), nil)
		m.repo.EXPECT().MarkReenabled(ctx, 1, 10, "deposit retried").Return(true, nil)
		m.ledger.EXPECT().GetOrCreateWallet(ctx, 10, 2).Return(wallet, nil)
		m.ledger.EXPECT().Append(ctx, 4, domain.MovementCredit, 100.0, 2, domain.MovementPending, gomock.Any(), 10).
			Return(&domain.Movimiento{ID: 12}, nil)
		m.assigner.EXPECT().Assign(ctx, domain.ItemSolicitud, 1, domain.GroupVerificador).
			Return(&domain.Asignacion{WorkerID: 5}, nil)
		m.repo.EXPECT().SetVerifier(ctx, 1, 5).Return(nil)
		m.publisher.EXPECT().Publish(ctx, EventPendiente, 10, 1)

		assert.NoError(t, service.Rehabilitar(ctx, 1, 10, "deposit retried"))
	})

	t.Run("Only rechazado requests can be re-enabled", func(t *testing.T) {
		service, m := NewMock(t)
		verifierID := 3
		m.repo.EXPECT().FindByID(ctx, 1).Return(pendiente(&verifierID), nil)

		assert.ErrorIs(t, service.Rehabilitar(ctx, 1, 10, ""), ErrInvalidState)
	})

	t.Run("Only the requester may re-enable", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByID(ctx, 1).Return(rechazado(), nil)

		assert.ErrorIs(t, service.Rehabilitar(ctx, 1, 99, ""), ErrInvalidState)
	})

	t.Run("Unknown solicitud is rejected", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByID(ctx, 1).Return(nil, nil)

		assert.ErrorIs(t, service.Rehabilitar(ctx, 1, 10, ""), ErrValidation)
	})
}

func TestService_AssignPending(t *testing.T) {
	ctx := context.Background()

	t.Run("Records the assigned verifier", func(t *testing.T) {
		service, m := NewMock(t)
		s := pendiente(nil)

		m.assigner.EXPECT().Assign(ctx, domain.ItemSolicitud, 1, domain.GroupVerificador).
			Return(&domain.Asignacion{WorkerID: 3}, nil)
		m.repo.EXPECT().SetVerifier(ctx, 1, 3).Return(nil)

		assert.NoError(t, service.AssignPending(ctx, s))
		assert.Equal(t, 3, *s.VerifierID)
	})

	t.Run("Assignment failure propagates", func(t *testing.T) {
		service, m := NewMock(t)
		s := pendiente(nil)

		m.assigner.EXPECT().Assign(ctx, domain.ItemSolicitud, 1, domain.GroupVerificador).
			Return(nil, errors.New("no worker available"))

		assert.Error(t, service.AssignPending(ctx, s))
		assert.Nil(t, s.VerifierID)
	})
}

func TestService_GetSolicitudes(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the user's requests", func(t *testing.T) {
		service, m := NewMock(t)
		solicitudes := []domain.SolicitudRecarga{*pendiente(nil)}
		m.repo.EXPECT().FindByUserID(ctx, 10).Return(solicitudes, nil)

		got, err := service.GetSolicitudes(ctx, 10)
		assert.NoError(t, err)
		assert.Equal(t, solicitudes, got)
	})

	t.Run("Repo error propagates", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByUserID(ctx, 10).Return(nil, errors.New("database error"))

		got, err := service.GetSolicitudes(ctx, 10)
		assert.Error(t, err)
		assert.Nil(t, got)
	})
}

func TestService_FindUnassigned(t *testing.T) {
	ctx := context.Background()

	service, m := NewMock(t)
	solicitudes := []domain.SolicitudRecarga{*pendiente(nil)}
	m.repo.EXPECT().FindUnassignedPendientes(ctx, 100).Return(solicitudes, nil)

	got, err := service.FindUnassigned(ctx, 100)
	assert.NoError(t, err)
	assert.Equal(t, solicitudes, got)
}
