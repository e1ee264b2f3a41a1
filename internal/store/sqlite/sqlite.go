package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/draftbox/mediaroute/internal/store"
	"github.com/draftbox/mediaroute/internal/store/model"
)

// DB defines the interface for database operations (satisfied by *sqlx.DB and *sqlx.Tx)
type DB interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// SqliteRepository implements store.Repository
type SqliteRepository struct {
	db       *sqlx.DB // Required for starting new transactions
	executor DB       // Used for actual queries (can be *sqlx.DB or *sqlx.Tx)
}

func NewSqliteRepository(db *sqlx.DB) *SqliteRepository {
	return &SqliteRepository{
		db:       db,
		executor: db,
	}
}

func (r *SqliteRepository) Close() error {
	return r.db.Close()
}

func (r *SqliteRepository) WithTx(ctx context.Context, fn func(repo store.Repository) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	txRepo := &SqliteRepository{
		db:       r.db,
		executor: tx,
	}

	if err := fn(txRepo); err != nil {
		// attempt rollback, but prioritize original error
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

func (r *SqliteRepository) Generations() store.GenerationRepository {
	return &generationRepo{db: r.executor}
}

type generationRepo struct {
	db DB
}

func (r *generationRepo) Log(ctx context.Context, log *model.GenerationLog) error {
	query := `
	INSERT INTO generation_logs (
		id, operation, model_id, status, error_kind,
		request_id, poll_count, latency_ms,
		result_url, stored_path, fallback,
		brand, session_id, created_at
	) VALUES (
		:id, :operation, :model_id, :status, :error_kind,
		:request_id, :poll_count, :latency_ms,
		:result_url, :stored_path, :fallback,
		:brand, :session_id, :created_at
	)`
	_, err := r.db.NamedExecContext(ctx, query, log)
	return err
}

func (r *generationRepo) GetByID(ctx context.Context, id string) (*model.GenerationLog, error) {
	var log model.GenerationLog
	if err := r.db.GetContext(ctx, &log, `SELECT * FROM generation_logs WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return &log, nil
}

func (r *generationRepo) GetRecent(ctx context.Context, operation string, limit int) ([]model.GenerationLog, error) {
	var logs []model.GenerationLog
	if operation == "" {
		err := r.db.SelectContext(ctx, &logs,
			`SELECT * FROM generation_logs ORDER BY created_at DESC LIMIT ?`, limit)
		return logs, err
	}
	err := r.db.SelectContext(ctx, &logs,
		`SELECT * FROM generation_logs WHERE operation = ? ORDER BY created_at DESC LIMIT ?`,
		operation, limit)
	return logs, err
}

func (r *generationRepo) GetDailyStats(ctx context.Context, days int) ([]model.DailyStats, error) {
	var stats []model.DailyStats
	query := `
		SELECT
			DATE(created_at) as date,
			COUNT(*) as total,
			SUM(CASE WHEN status = 'failed' THEN 1 ELSE 0 END) as failed,
			AVG(latency_ms) as avg_latency,
			AVG(poll_count) as avg_polls,
			SUM(CASE WHEN fallback THEN 1 ELSE 0 END) as fallbacks
		FROM generation_logs
		WHERE created_at >= DATE('now', ?)
		GROUP BY date
		ORDER BY date DESC
	`
	// SQLite date offset format is '-7 days'
	err := r.db.SelectContext(ctx, &stats, query, fmt.Sprintf("-%d days", days))
	return stats, err
}
