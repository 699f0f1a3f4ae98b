package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/coursehub/backend/internal/app/models"
	"github.com/coursehub/backend/internal/pkg/apperrors"
	"github.com/coursehub/backend/internal/pkg/helpers"
	"github.com/coursehub/backend/internal/pkg/logger"
)

// InstructorRepository handles instructor database operations
type InstructorRepository struct {
	*Repository[models.Instructor]
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewInstructorRepository creates a new InstructorRepository
func NewInstructorRepository(db *pgxpool.Pool) *InstructorRepository {
	return &InstructorRepository{
		Repository: NewRepository(db, EntityMeta[models.Instructor]{
			Table:        "instructors",
			Columns:      []string{"id", "first_name", "last_name", "bio", "specialization", "is_active"},
			DefaultOrder: "last_name ASC, first_name ASC",
			ScanRow:      scanInstructor,
			Values: func(i *models.Instructor) map[string]any {
				return map[string]any{
					"id":             i.ID,
					"first_name":     i.FirstName,
					"last_name":      i.LastName,
					"bio":            helpers.GetNullString(i.Bio),
					"specialization": string(i.Specialization),
					"is_active":      i.IsActive,
				}
			},
			ID: func(i *models.Instructor) uuid.UUID { return i.ID },
		}),
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanInstructor(row pgx.Row) (*models.Instructor, error) {
	instructor := &models.Instructor{}
	err := row.Scan(
		&instructor.ID, &instructor.FirstName, &instructor.LastName,
		&instructor.Bio, &instructor.Specialization, &instructor.IsActive,
	)
	if err != nil {
		return nil, err
	}
	return instructor, nil
}

// GetActive retrieves all active instructors
func (r *InstructorRepository) GetActive(ctx context.Context) ([]*models.Instructor, error) {
	return r.GetAllWhere(ctx, squirrel.Eq{"is_active": true})
}

// GetWithCourses retrieves an instructor together with the courses they
// teach. Returns apperrors.ErrInstructorNotFound when the id does not exist.
func (r *InstructorRepository) GetWithCourses(ctx context.Context, id uuid.UUID) (*models.Instructor, error) {
	instructor, err := r.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrInstructorNotFound
		}
		return nil, err
	}

	sql, args, err := r.sb.Select("id", "name", "description", "category", "start_date", "end_date", "is_active", "instructor_id").
		From("courses").
		Where(squirrel.Eq{"instructor_id": id}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building instructor courses SQL")
		return nil, fmt.Errorf("failed to build instructor courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("instructorID", id.String()).Msg("Error executing instructor courses query")
		return nil, fmt.Errorf("error querying instructor courses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning instructor course row")
			return nil, fmt.Errorf("error scanning instructor course row: %w", err)
		}
		instructor.Courses = append(instructor.Courses, *course)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating instructor course rows")
		return nil, fmt.Errorf("error iterating instructor course rows: %w", err)
	}

	return instructor, nil
}
