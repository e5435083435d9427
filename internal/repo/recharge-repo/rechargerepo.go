package rechargerepo

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

const solicitudColumns = `id, uuid, user_id, currency_id, type, amount, reference, description, state,
	verifier_id, motivo, observacion, created_at, verified_at, rejected_at, reenabled_at`

func scanSolicitud(row pgx.Row) (*domain.SolicitudRecarga, error) {
	var s domain.SolicitudRecarga
	err := row.Scan(&s.ID, &s.UUID, &s.UserID, &s.CurrencyID, &s.Type, &s.Amount, &s.Reference, &s.Description,
		&s.State, &s.VerifierID, &s.Motivo, &s.Observacion, &s.CreatedAt, &s.VerifiedAt, &s.RejectedAt, &s.ReenabledAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) Create(ctx context.Context, s *domain.SolicitudRecarga) (*domain.SolicitudRecarga, error) {
	query := `
        INSERT INTO solicitudes_recarga (uuid, user_id, currency_id, type, amount, reference, description, state)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		s.UUID, s.UserID, s.CurrencyID, s.Type, s.Amount, s.Reference, s.Description, s.State).
		Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		zap.L().Error("can't save solicitud", zap.Error(err))
		return nil, err
	}
	return s, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.SolicitudRecarga, error) {
	query := `
        SELECT ` + solicitudColumns + `
        FROM solicitudes_recarga
        WHERE id = $1
    `
	s, err := scanSolicitud(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find solicitud", zap.Error(err))
		return nil, err
	}
	return s, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.SolicitudRecarga, error) {
	query := `
        SELECT ` + solicitudColumns + `
        FROM solicitudes_recarga
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get solicitudes", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var solicitudes []domain.SolicitudRecarga
	for rows.Next() {
		s, err := scanSolicitud(rows)
		if err != nil {
			zap.L().Error("can't scan solicitud row", zap.Error(err))
			return nil, err
		}
		solicitudes = append(solicitudes, *s)
	}
	return solicitudes, nil
}

// FindUnassignedPendientes returns pendiente requests with no active
// assignment, oldest first, for the reassignment sweep.
func (r *Repository) FindUnassignedPendientes(ctx context.Context, limit int) ([]domain.SolicitudRecarga, error) {
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
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't get unassigned solicitudes", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var solicitudes []domain.SolicitudRecarga
	for rows.Next() {
		s, err := scanSolicitud(rows)
		if err != nil {
			zap.L().Error("can't scan solicitud row", zap.Error(err))
			return nil, err
		}
		solicitudes = append(solicitudes, *s)
	}
	return solicitudes, nil
}

func (r *Repository) SetVerifier(ctx context.Context, id, verifierID int) error {
	query := `
        UPDATE solicitudes_recarga
        SET verifier_id = $2
        WHERE id = $1
    `
	if _, err := r.db.Exec(ctx, query, id, verifierID); err != nil {
		zap.L().Error("can't set verifier", zap.Error(err))
		return err
	}
	return nil
}

// The Mark* updates carry the source state and verifier in the WHERE clause.
// Zero affected rows means the transition already happened elsewhere; the
// caller maps that to an invalid-state error instead of repeating it.

func (r *Repository) MarkVerified(ctx context.Context, id, verifierID int, amount float64) (bool, error) {
	query := `
        UPDATE solicitudes_recarga
        SET state = 'verificado', amount = $3, verified_at = now()
        WHERE id = $1 AND state = 'pendiente' AND verifier_id = $2
    `
	tag, err := r.db.Exec(ctx, query, id, verifierID, amount)
	if err != nil {
		zap.L().Error("can't mark solicitud verified", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) MarkRejected(ctx context.Context, id, verifierID int, motivo string) (bool, error) {
	query := `
        UPDATE solicitudes_recarga
        SET state = 'rechazado', motivo = $3, rejected_at = now()
        WHERE id = $1 AND state = 'pendiente' AND verifier_id = $2
    `
	tag, err := r.db.Exec(ctx, query, id, verifierID, motivo)
	if err != nil {
		zap.L().Error("can't mark solicitud rejected", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// MarkReenabled records the rehabilitada transition and lands the request
// back in pendiente with a clean verifier slot for the new cycle.
func (r *Repository) MarkReenabled(ctx context.Context, id, userID int, observacion string) (bool, error) {
	query := `
        UPDATE solicitudes_recarga
        SET state = 'pendiente', observacion = $3, reenabled_at = now(), verifier_id = NULL
        WHERE id = $1 AND state = 'rechazado' AND user_id = $2
    `
	tag, err := r.db.Exec(ctx, query, id, userID, observacion)
	if err != nil {
		zap.L().Error("can't mark solicitud reenabled", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
