// Package seed inserts the default records the application ships with.
// Seeding is idempotent and runs on every startup after migrations.
package seed

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/coursehub/backend/internal/db"
)

// Fixed identifiers for the seed records
var (
	seedInstructorID = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	seedCourseID     = uuid.MustParse("22222222-2222-2222-2222-222222222222")
)

// CreateDefaultData inserts the default instructor and course if they
// don't exist. Both rows go in within one transaction so a partial seed
// never persists.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data...")

	err := db.WithTransaction(ctx, dbPool, func(ctx context.Context, tx pgx.Tx) error {
		bio := "Experienced software developer and instructor"
		_, err := tx.Exec(ctx, `
			INSERT INTO instructors (id, first_name, last_name, bio, specialization, is_active)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (id) DO NOTHING`,
			seedInstructorID, "John", "Doe", bio, "SoftwareDevelopment", true)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO courses (id, name, description, category, start_date, end_date, is_active, instructor_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (id) DO NOTHING`,
			seedCourseID,
			"Introduction to C#",
			"Learn the fundamentals of C# programming",
			"Programming",
			time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
			true,
			seedInstructorID)
		return err
	})

	if err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data")
		return err
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return nil
}
