package workerrepo

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

// PickWorker selects the least-loaded eligible worker and takes its row
// lock. SKIP LOCKED makes concurrent assignments fall through to the next
// candidate instead of waiting, so two racing calls never pick the same
// worker and never block each other. Must run inside a transaction; the
// lock holds until that transaction commits.
//
// Ranking: open assignments ASC, completions in the trailing 7 days DESC,
// last activity ASC (idle first), then random jitter.
func (r *Repository) PickWorker(ctx context.Context, group string) (*domain.Worker, error) {
	query := `
        SELECT u.id, u.work_group,
            (SELECT COUNT(*) FROM asignaciones a
             WHERE a.worker_id = u.id AND a.active) AS open_count,
            (SELECT COUNT(*) FROM asignaciones a
             WHERE a.worker_id = u.id AND NOT a.active AND a.closed_at > now() - INTERVAL '7 days') AS recent_done,
            u.last_activity_at
        FROM users u
        WHERE u.work_group = $1 AND u.active
        ORDER BY open_count ASC, recent_done DESC, u.last_activity_at ASC NULLS FIRST, random()
        LIMIT 1
        FOR UPDATE OF u SKIP LOCKED
    `
	row := r.db.QueryRow(ctx, query, group)
	var w domain.Worker
	err := row.Scan(&w.ID, &w.WorkGroup, &w.OpenCount, &w.RecentDone, &w.LastActivityAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't pick worker", zap.Error(err))
		return nil, err
	}
	return &w, nil
}

func (r *Repository) CreateAssignment(ctx context.Context, itemType string, itemID, workerID int) (*domain.Asignacion, error) {
	query := `
        INSERT INTO asignaciones (item_type, item_id, worker_id)
        VALUES ($1, $2, $3)
        RETURNING id, item_type, item_id, worker_id, active, assigned_at
    `
	row := r.db.QueryRow(ctx, query, itemType, itemID, workerID)
	var a domain.Asignacion
	err := row.Scan(&a.ID, &a.ItemType, &a.ItemID, &a.WorkerID, &a.Active, &a.AssignedAt)
	if err != nil {
		zap.L().Error("can't save assignment", zap.Error(err))
		return nil, err
	}
	return &a, nil
}

// CloseAssignment closes whatever active assignment the item has. Closing a
// never-assigned item is a no-op.
func (r *Repository) CloseAssignment(ctx context.Context, itemType string, itemID int) error {
	query := `
        UPDATE asignaciones
        SET active = FALSE, closed_at = now()
        WHERE item_type = $1 AND item_id = $2 AND active
    `
	if _, err := r.db.Exec(ctx, query, itemType, itemID); err != nil {
		zap.L().Error("can't close assignment", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindActiveAssignment(ctx context.Context, itemType string, itemID int) (*domain.Asignacion, error) {
	query := `
        SELECT id, item_type, item_id, worker_id, active, assigned_at, closed_at
        FROM asignaciones
        WHERE item_type = $1 AND item_id = $2 AND active
    `
	row := r.db.QueryRow(ctx, query, itemType, itemID)
	var a domain.Asignacion
	err := row.Scan(&a.ID, &a.ItemType, &a.ItemID, &a.WorkerID, &a.Active, &a.AssignedAt, &a.ClosedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find active assignment", zap.Error(err))
		return nil, err
	}
	return &a, nil
}

func (r *Repository) TouchActivity(ctx context.Context, workerID int) error {
	query := `
        UPDATE users
        SET last_activity_at = now()
        WHERE id = $1
    `
	if _, err := r.db.Exec(ctx, query, workerID); err != nil {
		zap.L().Error("can't touch worker activity", zap.Error(err))
		return err
	}
	return nil
}
