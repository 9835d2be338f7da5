// Package postgres loads generated datasets into PostgreSQL.
package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dipak1920basnet/Personal-Fitness-Data-Analysis/internal/domain"
	"github.com/dipak1920basnet/Personal-Fitness-Data-Analysis/internal/observability"
)

const schemaDDL = `
CREATE TABLE IF NOT EXISTS generation_runs (
    run_id           UUID PRIMARY KEY,
    seed             BIGINT NOT NULL,
    users            INTEGER NOT NULL,
    days             INTEGER NOT NULL,
    start_date       DATE NOT NULL,
    row_count        INTEGER NOT NULL,
    missing_fraction DOUBLE PRECISION NOT NULL,
    outlier_fraction DOUBLE PRECISION NOT NULL,
    created_at       TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS daily_records (
    run_id              UUID NOT NULL REFERENCES generation_runs (run_id) ON DELETE CASCADE,
    record_date         DATE NOT NULL,
    user_id             INTEGER NOT NULL,
    gender              TEXT NOT NULL,
    age                 INTEGER NOT NULL,
    height_cm           DOUBLE PRECISION NOT NULL,
    weight_kg           DOUBLE PRECISION NOT NULL,
    steps               INTEGER,
    active_minutes      DOUBLE PRECISION NOT NULL,
    calories_burned     DOUBLE PRECISION NOT NULL,
    resting_heart_rate  DOUBLE PRECISION,
    sleep_hours         DOUBLE PRECISION,
    stress_level        TEXT NOT NULL,
    diet_quality        TEXT NOT NULL,
    water_intake_liters DOUBLE PRECISION,
    fitness_score       DOUBLE PRECISION NOT NULL,
    weight_change_kg    DOUBLE PRECISION NOT NULL,
    goal_achieved       BOOLEAN NOT NULL,
    PRIMARY KEY (run_id, user_id, record_date)
);`

var recordColumns = []string{
	"run_id", "record_date", "user_id", "gender", "age", "height_cm", "weight_kg",
	"steps", "active_minutes", "calories_burned", "resting_heart_rate", "sleep_hours",
	"stress_level", "diet_quality", "water_intake_liters", "fitness_score",
	"weight_change_kg", "goal_achieved",
}

// Repository provides Postgres-backed storage for generated datasets.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a Repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// EnsureSchema creates the run and record tables if they do not exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, schemaDDL)
	return err
}

// SaveDataset records the run and bulk-loads its records inside a single transaction.
func (r *Repository) SaveDataset(ctx context.Context, run domain.Run, ds *domain.Dataset) error {
	runID, err := parseRunID(run.ID)
	if err != nil {
		return err
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		}
	}()

	_, err = tx.Exec(ctx,
		`INSERT INTO generation_runs (run_id, seed, users, days, start_date, row_count, missing_fraction, outlier_fraction, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		runID,
		run.Seed,
		ds.Users(),
		ds.Days(),
		run.StartDate,
		len(ds.Records),
		run.MissingFraction,
		run.OutlierFraction,
		run.CreatedAt,
	)
	if err != nil {
		return err
	}

	copied, err := tx.CopyFrom(ctx, pgx.Identifier{"daily_records"}, recordColumns,
		pgx.CopyFromSlice(len(ds.Records), func(i int) ([]any, error) {
			rec := &ds.Records[i]
			return []any{
				runID,
				rec.Date,
				rec.UserID,
				string(rec.Gender),
				rec.Age,
				rec.HeightCM,
				rec.WeightKG,
				rec.Steps,
				rec.ActiveMinutes,
				rec.CaloriesBurned,
				rec.RestingHeartRate,
				rec.SleepHours,
				string(rec.StressLevel),
				string(rec.DietQuality),
				rec.WaterIntakeLiters,
				rec.FitnessScore,
				rec.WeightChangeKG,
				rec.GoalAchieved,
			}, nil
		}),
	)
	if err != nil {
		return err
	}
	if int(copied) != len(ds.Records) {
		err = fmt.Errorf("copied %d of %d records", copied, len(ds.Records))
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return err
	}
	observability.RecordSinkWrite("postgres", len(ds.Records))
	return nil
}

// CountRecords returns the number of stored records for a run.
func (r *Repository) CountRecords(ctx context.Context, runID string) (int, error) {
	id, err := parseRunID(runID)
	if err != nil {
		return 0, err
	}
	var n int
	err = r.pool.QueryRow(ctx, `SELECT count(*) FROM daily_records WHERE run_id = $1`, id).Scan(&n)
	return n, err
}

// CountMissing returns how many records of a run have a NULL in column.
func (r *Repository) CountMissing(ctx context.Context, runID, column string) (int, error) {
	if !nullableColumn(column) {
		return 0, fmt.Errorf("column %q is not nullable", column)
	}
	id, err := parseRunID(runID)
	if err != nil {
		return 0, err
	}
	query := fmt.Sprintf(`SELECT count(*) FROM daily_records WHERE run_id = $1 AND %s IS NULL`, pgx.Identifier{column}.Sanitize())
	var n int
	err = r.pool.QueryRow(ctx, query, id).Scan(&n)
	return n, err
}

func parseRunID(runID string) (pgtype.UUID, error) {
	id, err := uuid.Parse(runID)
	if err != nil {
		return pgtype.UUID{}, fmt.Errorf("invalid run id %q: %w", runID, err)
	}
	return pgtype.UUID{Bytes: id, Valid: true}, nil
}

func nullableColumn(column string) bool {
	for _, c := range domain.MissingColumns {
		if c == column {
			return true
		}
	}
	return false
}
