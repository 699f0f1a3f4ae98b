package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/coursehub/backend/internal/app/models"
	"github.com/coursehub/backend/internal/pkg/apperrors"
	"github.com/coursehub/backend/internal/pkg/dberrors"
	"github.com/coursehub/backend/internal/pkg/helpers"
	"github.com/coursehub/backend/internal/pkg/logger"
)

// courseNameConstraint is the unique index on courses.name
const courseNameConstraint = "idx_courses_name"

// courseJoinColumns selects a course together with its instructor.
// The instructor side is nullable because of the LEFT JOIN.
var courseJoinColumns = []string{
	"c.id", "c.name", "c.description", "c.category",
	"c.start_date", "c.end_date", "c.is_active", "c.instructor_id",
	"i.id", "i.first_name", "i.last_name", "i.bio", "i.specialization", "i.is_active",
}

// CourseSearchParams are the filters for a paginated course search
type CourseSearchParams struct {
	SearchText string
	Category   string
	Page       int
	PageSize   int
}

// CourseRepository handles course database operations
type CourseRepository struct {
	*Repository[models.Course]
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		Repository: NewRepository(db, EntityMeta[models.Course]{
			Table:        "courses",
			Columns:      []string{"id", "name", "description", "category", "start_date", "end_date", "is_active", "instructor_id"},
			DefaultOrder: "name ASC",
			ScanRow:      scanCourse,
			Values: func(c *models.Course) map[string]any {
				return map[string]any{
					"id":            c.ID,
					"name":          c.Name,
					"description":   c.Description,
					"category":      string(c.Category),
					"start_date":    c.StartDate,
					"end_date":      c.EndDate,
					"is_active":     c.IsActive,
					"instructor_id": c.InstructorID,
				}
			},
			ID: func(c *models.Course) uuid.UUID { return c.ID },
		}),
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	course := &models.Course{}
	err := row.Scan(
		&course.ID, &course.Name, &course.Description, &course.Category,
		&course.StartDate, &course.EndDate, &course.IsActive, &course.InstructorID,
	)
	if err != nil {
		return nil, err
	}
	return course, nil
}

func scanCourseWithInstructor(row pgx.Row) (*models.Course, error) {
	course := &models.Course{}
	var (
		instructorID   *uuid.UUID
		firstName      sql.NullString
		lastName       sql.NullString
		bio            sql.NullString
		specialization sql.NullString
		isActive       sql.NullBool
	)
	err := row.Scan(
		&course.ID, &course.Name, &course.Description, &course.Category,
		&course.StartDate, &course.EndDate, &course.IsActive, &course.InstructorID,
		&instructorID, &firstName, &lastName, &bio, &specialization, &isActive,
	)
	if err != nil {
		return nil, err
	}
	if instructorID != nil {
		course.Instructor = &models.Instructor{
			ID:             *instructorID,
			FirstName:      firstName.String,
			LastName:       lastName.String,
			Bio:            helpers.GetStringPtr(bio),
			Specialization: models.Specialization(specialization.String),
			IsActive:       isActive.Bool,
		}
	}
	return course, nil
}

// Add inserts a course, translating constraint violations into
// domain errors
func (r *CourseRepository) Add(ctx context.Context, course *models.Course) error {
	if err := r.Repository.Add(ctx, course); err != nil {
		return translateCourseConstraint(err)
	}
	return nil
}

// Update overwrites a course, translating constraint violations into
// domain errors
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	if err := r.Repository.Update(ctx, course); err != nil {
		return translateCourseConstraint(err)
	}
	return nil
}

func translateCourseConstraint(err error) error {
	if dberrors.IsDuplicateConstraintError(err, courseNameConstraint) {
		return apperrors.ErrCourseNameTaken
	}
	if dberrors.IsForeignKeyViolation(err) {
		return apperrors.ErrInstructorNotFound
	}
	return err
}

// GetWithInstructor retrieves a course with its instructor joined.
// Returns apperrors.ErrCourseNotFound when the id does not exist.
func (r *CourseRepository) GetWithInstructor(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	sql, args, err := r.sb.Select(courseJoinColumns...).
		From("courses c").
		LeftJoin("instructors i ON i.id = c.instructor_id").
		Where(squirrel.Eq{"c.id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get course with instructor SQL")
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course, err := scanCourseWithInstructor(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Str("courseID", id.String()).Msg("Error scanning course with instructor")
		return nil, fmt.Errorf("error getting course with instructor: %w", err)
	}

	return course, nil
}

// GetByCategory retrieves the courses in a category with instructors joined
func (r *CourseRepository) GetByCategory(ctx context.Context, category models.CourseCategory) ([]*models.Course, error) {
	sql, args, err := r.sb.Select(courseJoinColumns...).
		From("courses c").
		LeftJoin("instructors i ON i.id = c.instructor_id").
		Where(squirrel.Eq{"c.category": string(category)}).
		OrderBy("c.name ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get courses by category SQL")
		return nil, fmt.Errorf("failed to build get courses by category query: %w", err)
	}

	return r.queryCoursesWithInstructor(ctx, sql, args)
}

// IsNameUnique reports whether no other course uses the exact name.
// The comparison is case sensitive, matching the unique index.
func (r *CourseRepository) IsNameUnique(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error) {
	pred := squirrel.And{squirrel.Eq{"name": name}}
	if excludeID != nil {
		pred = append(pred, squirrel.NotEq{"id": *excludeID})
	}

	exists, err := r.Exists(ctx, pred)
	if err != nil {
		return false, err
	}
	return !exists, nil
}

// buildCourseSearchQueries builds the count and page queries for a search.
// Both carry the same predicates; only the page query joins the instructor,
// orders by name and applies OFFSET/LIMIT, so the count reflects the full
// match set regardless of the requested page.
func buildCourseSearchQueries(sb squirrel.StatementBuilderType, params CourseSearchParams) (squirrel.SelectBuilder, squirrel.SelectBuilder) {
	conds := squirrel.And{}
	if text := strings.TrimSpace(params.SearchText); text != "" {
		conds = append(conds, squirrel.ILike{"c.name": "%" + escapeWildcards(text) + "%"})
	}
	if params.Category != "" {
		conds = append(conds, squirrel.Eq{"c.category": params.Category})
	}

	offset, limit := helpers.CalculateOffsetLimit(params.Page, params.PageSize)

	countQuery := sb.Select("COUNT(*)").From("courses c")
	pageQuery := sb.Select(courseJoinColumns...).
		From("courses c").
		LeftJoin("instructors i ON i.id = c.instructor_id").
		OrderBy("c.name ASC").
		Offset(offset).
		Limit(limit)

	if len(conds) > 0 {
		countQuery = countQuery.Where(conds)
		pageQuery = pageQuery.Where(conds)
	}

	return countQuery, pageQuery
}

// Search retrieves a page of courses matching the filters, with instructors
// joined, and the total match count before pagination. The name match is a
// case-insensitive substring comparison.
func (r *CourseRepository) Search(ctx context.Context, params CourseSearchParams) ([]*models.Course, int64, error) {
	countQuery, pageQuery := buildCourseSearchQueries(r.sb, params)

	countSql, countArgs, err := countQuery.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building course search count SQL")
		return nil, 0, fmt.Errorf("failed to build course search count query: %w", err)
	}

	var totalCount int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&totalCount); err != nil {
		logger.Error().Err(err).Msg("Error executing course search count query")
		return nil, 0, fmt.Errorf("error counting course search results: %w", err)
	}

	sql, args, err := pageQuery.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building course search SQL")
		return nil, 0, fmt.Errorf("failed to build course search query: %w", err)
	}

	courses, err := r.queryCoursesWithInstructor(ctx, sql, args)
	if err != nil {
		return nil, 0, err
	}

	return courses, totalCount, nil
}

func (r *CourseRepository) queryCoursesWithInstructor(ctx context.Context, query string, args []any) ([]*models.Course, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing course query")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course, err := scanCourseWithInstructor(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning course row")
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating course rows")
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, nil
}

// escapeWildcards escapes LIKE pattern metacharacters in user input so a
// search for "100%" matches the literal text
func escapeWildcards(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
