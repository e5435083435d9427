package rechargerepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/avelarde/recargas/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)

	return repo, mockDB
}

func solicitudRows(now time.Time, verifierID *int) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "uuid", "user_id", "currency_id", "type", "amount", "reference", "description", "state",
		"verifier_id", "motivo", "observacion", "created_at", "verified_at", "rejected_at", "reenabled_at",
	}).AddRow(1, "uuid-1", 10, 2, domain.MovementCredit, 100.0, "79927398713", "bank deposit", domain.SolicitudPendiente,
		verifierID, "", "", now, nil, nil, nil)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	defer mock.Close()

	now := time.Now()
	query := `
        INSERT INTO solicitudes_recarga (uuid, user_id, currency_id, type, amount, reference, description, state)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at
    `

	t.Run("Inserts and fills id and created_at", func(t *testing.T) {
		s := &domain.SolicitudRecarga{
			UUID:        "uuid-1",
			UserID:      10,
			CurrencyID:  2,
			Type:        domain.MovementCredit,
			Amount:      100,
			Reference:   "79927398713",
			Description: "bank deposit",
			State:       domain.SolicitudPendiente,
		}
		rows := pgxmock.NewRows([]string{"id", "created_at"}).AddRow(1, now)
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs("uuid-1", 10, 2, domain.MovementCredit, 100.0, "79927398713", "bank deposit", domain.SolicitudPendiente).
			WillReturnRows(rows)

		saved, err := repo.Create(context.Background(), s)
		assert.NoError(t, err)
		assert.Equal(t, 1, saved.ID)
		assert.Equal(t, now, saved.CreatedAt)
	})

	t.Run("Database error", func(t *testing.T) {
		s := &domain.SolicitudRecarga{UUID: "uuid-2", UserID: 10, CurrencyID: 2, Type: domain.MovementCredit, State: domain.SolicitudPendiente}
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs("uuid-2", 10, 2, domain.MovementCredit, 0.0, "", "", domain.SolicitudPendiente).
			WillReturnError(errors.New("database error"))

		saved, err := repo.Create(context.Background(), s)
		assert.Error(t, err)
		assert.Nil(t, saved)
	})
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	defer mock.Close()

	now := time.Now()
	verifierID := 3
	query := `
        SELECT ` + solicitudColumns + `
        FROM solicitudes_recarga
        WHERE id = $1
    `

	t.Run("Existing solicitud is returned", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(1).
			WillReturnRows(solicitudRows(now, &verifierID))

		s, err := repo.FindByID(context.Background(), 1)
		assert.NoError(t, err)
		assert.NotNil(t, s)
		assert.Equal(t, domain.SolicitudPendiente, s.State)
		assert.Equal(t, &verifierID, s.VerifierID)
	})

	t.Run("Missing solicitud returns nil", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(99).
			WillReturnError(pgx.ErrNoRows)

		s, err := repo.FindByID(context.Background(), 99)
		assert.NoError(t, err)
		assert.Nil(t, s)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(1).
			WillReturnError(errors.New("database error"))

		s, err := repo.FindByID(context.Background(), 1)
		assert.Error(t, err)
		assert.Nil(t, s)
	})
}

func TestRepository_FindByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	defer mock.Close()

	now := time.Now()
	query := `
        SELECT ` + solicitudColumns + `
        FROM solicitudes_recarga
        WHERE user_id = $1
        ORDER BY created_at DESC
    `

	t.Run("Returns user's solicitudes", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(10).
			WillReturnRows(solicitudRows(now, nil))

		solicitudes, err := repo.FindByUserID(context.Background(), 10)
		assert.NoError(t, err)
		assert.Len(t, solicitudes, 1)
		assert.Equal(t, "uuid-1", solicitudes[0].UUID)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(10).
			WillReturnError(errors.New("database error"))

		solicitudes, err := repo.FindByUserID(context.Background(), 10)
		assert.Error(t, err)
		assert.Nil(t, solicitudes)
	})
}

func TestRepository_FindUnassignedPendientes(t *testing.T) {
	repo, mock := NewMock(t)
	defer mock.Close()

	now := time.Now()
	query := `
        SELECT ` + solicitudColumns + `
        FROM solicitudes_recarga s
        WHERE s.state = 'pendiente'
          AND NOT EXISTS (
            SELECT 1 FROM asignaciones a
            WHERE a.item_type = 'solicitud' AND a.item_id = s.id AND a.active
          )
        ORDER BY created_at ASC
        LIMIT $1
    `

	t.Run("Returns unassigned pendientes", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(100).
			WillReturnRows(solicitudRows(now, nil))

		solicitudes, err := repo.FindUnassignedPendientes(context.Background(), 100)
		assert.NoError(t, err)
		assert.Len(t, solicitudes, 1)
		assert.Nil(t, solicitudes[0].VerifierID)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(100).
			WillReturnError(errors.New("database error"))

		solicitudes, err := repo.FindUnassignedPendientes(context.Background(), 100)
		assert.Error(t, err)
		assert.Nil(t, solicitudes)
	})
}

func TestRepository_SetVerifier(t *testing.T) {
	repo, mock := NewMock(t)
	defer mock.Close()

	query := `
        UPDATE solicitudes_recarga
        SET verifier_id = $2
        WHERE id = $1
    `

	t.Run("Records the verifier", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(query)).
			WithArgs(1, 3).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, repo.SetVerifier(context.Background(), 1, 3))
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(query)).
			WithArgs(1, 3).
			WillReturnError(errors.New("database error"))

		assert.Error(t, repo.SetVerifier(context.Background(), 1, 3))
	})
}

func TestRepository_MarkVerified(t *testing.T) {
	repo, mock := NewMock(t)
	defer mock.Close()

	query := `
        UPDATE solicitudes_recarga
        SET state = 'verificado', amount = $3, verified_at = now()
        WHERE id = $1 AND state = 'pendiente' AND verifier_id = $2
    `

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		ok        bool
	}{
		{
			name: "Pendiente with matching verifier transitions",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs(1, 3, 100.0).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectErr: false,
			ok:        true,
		},
		{
			name: "Wrong verifier or state affects no rows",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs(1, 3, 100.0).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectErr: false,
			ok:        false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs(1, 3, 100.0).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			ok:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			ok, err := repo.MarkVerified(context.Background(), 1, 3, 100.0)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestRepository_MarkRejected(t *testing.T) {
	repo, mock := NewMock(t)
	defer mock.Close()

	query := `
        UPDATE solicitudes_recarga
        SET state = 'rechazado', motivo = $3, rejected_at = now()
        WHERE id = $1 AND state = 'pendiente' AND verifier_id = $2
    `

	t.Run("Pendiente with matching verifier is rejected", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(query)).
			WithArgs(1, 3, "no deposit found").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		ok, err := repo.MarkRejected(context.Background(), 1, 3, "no deposit found")
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Already closed solicitud affects no rows", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(query)).
			WithArgs(1, 3, "no deposit found").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		ok, err := repo.MarkRejected(context.Background(), 1, 3, "no deposit found")
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestRepository_MarkReenabled(t *testing.T) {
	repo, mock := NewMock(t)
	defer mock.Close()

	query := `
        UPDATE solicitudes_recarga
        SET state = 'pendiente', observacion = $3, reenabled_at = now(), verifier_id = NULL
        WHERE id = $1 AND state = 'rechazado' AND user_id = $2
    `

	t.Run("Rechazado owned by the caller goes back to pendiente", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(query)).
			WithArgs(1, 10, "deposit retried").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		ok, err := repo.MarkReenabled(context.Background(), 1, 10, "deposit retried")
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Non-rechazado or foreign solicitud affects no rows", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(query)).
			WithArgs(1, 10, "deposit retried").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		ok, err := repo.MarkReenabled(context.Background(), 1, 10, "deposit retried")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(query)).
			WithArgs(1, 10, "deposit retried").
			WillReturnError(errors.New("database error"))

		ok, err := repo.MarkReenabled(context.Background(), 1, 10, "deposit retried")
		assert.Error(t, err)
		assert.False(t, ok)
	})
}
