package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alumnet/api/internal/app/models/dto"
	"github.com/alumnet/api/internal/db"
	"github.com/alumnet/api/internal/pkg/apperrors"
)

// AlumniRepository handles database operations for alumni profiles and the
// public alumni directory
type AlumniRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAlumniRepository creates a new alumni repository
func NewAlumniRepository(db *pgxpool.Pool) *AlumniRepository {
	return &AlumniRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetProfile retrieves the joined users+alumni self profile
func (r *AlumniRepository) GetProfile(ctx context.Context, userID int64) (*dto.AlumniProfileResponse, error) {
	query := `
		SELECT u.user_id, u.name, u.email, u.phone,
		       a.graduation_year, a.degree, a.department,
		       a.current_position, a.company, a.location,
		       u.created_at
		FROM users u
		JOIN alumni a ON a.user_id = u.user_id
		WHERE u.user_id = $1
	`

	var profile dto.AlumniProfileResponse
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.UserID,
		&profile.Name,
		&profile.Email,
		&profile.Phone,
		&profile.GraduationYear,
		&profile.Degree,
		&profile.Department,
		&profile.CurrentPosition,
		&profile.Company,
		&profile.Location,
		&profile.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAlumniProfileNotFound
		}
		return nil, fmt.Errorf("error retrieving alumni profile: %w", err)
	}

	return &profile, nil
}

// UpdateProfile applies a partial update over the users and alumni tables in
// one transaction; nil fields keep their prior values.
func (r *AlumniRepository) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateAlumniProfileRequest) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE users
			SET name = COALESCE($1, name),
			    phone = COALESCE($2, phone)
			WHERE user_id = $3`,
			req.Name, req.Phone, userID)
		if err != nil {
			return fmt.Errorf("error updating user: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrAlumniProfileNotFound
		}

		tag, err = tx.Exec(ctx, `
			UPDATE alumni
			SET graduation_year = COALESCE($1, graduation_year),
			    degree = COALESCE($2, degree),
			    department = COALESCE($3, department),
			    current_position = COALESCE($4, current_position),
			    company = COALESCE($5, company),
			    location = COALESCE($6, location)
			WHERE user_id = $7`,
			req.GraduationYear, req.Degree, req.Department,
			req.CurrentPosition, req.Company, req.Location, userID)
		if err != nil {
			return fmt.Errorf("error updating alumni profile: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrAlumniProfileNotFound
		}

		return nil
	})
}

// directoryPredicate builds the shared WHERE condition of the directory data
// and count queries. Both queries must apply identical predicates; keeping
// the construction in one place holds that property as filters are added.
func directoryPredicate(filter dto.AlumniDirectoryFilter) squirrel.And {
	where := squirrel.And{}

	if s := strings.TrimSpace(filter.Search); s != "" {
		where = append(where, squirrel.ILike{"u.name": "%" + s + "%"})
	}
	if s := strings.TrimSpace(filter.Company); s != "" {
		where = append(where, squirrel.ILike{"a.company": "%" + s + "%"})
	}
	if s := strings.TrimSpace(filter.Department); s != "" {
		where = append(where, squirrel.ILike{"a.department": "%" + s + "%"})
	}
	if s := strings.TrimSpace(filter.Degree); s != "" {
		where = append(where, squirrel.ILike{"a.degree": "%" + s + "%"})
	}
	if s := strings.TrimSpace(filter.Location); s != "" {
		where = append(where, squirrel.ILike{"a.location": "%" + s + "%"})
	}
	if s := strings.TrimSpace(filter.GraduationYear); s != "" {
		where = append(where, squirrel.Eq{"a.graduation_year": s})
	}

	return where
}

// GetDirectory retrieves one page of the filtered alumni directory together
// with the total record count under the same predicates.
func (r *AlumniRepository) GetDirectory(ctx context.Context, filter dto.AlumniDirectoryFilter, offset uint64, limit int) ([]dto.AlumniDirectoryEntry, int64, error) {
	where := directoryPredicate(filter)

	countSelect := r.sb.Select("COUNT(*)").
		From("alumni a").
		Join("users u ON a.user_id = u.user_id").
		Where(where)

	countSql, countArgs, err := countSelect.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build directory count query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting alumni: %w", err)
	}

	baseSelect := r.sb.Select(
		"u.user_id", "u.name", "u.email",
		"a.graduation_year", "a.degree", "a.department",
		"a.current_position", "a.company", "a.location",
	).
		From("alumni a").
		Join("users u ON a.user_id = u.user_id").
		Where(where).
		OrderBy("a.graduation_year DESC", "u.name ASC").
		Limit(uint64(limit)).
		Offset(offset)

	dataSql, dataArgs, err := baseSelect.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build directory query: %w", err)
	}

	rows, err := r.db.Query(ctx, dataSql, dataArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying alumni directory: %w", err)
	}
	defer rows.Close()

	var entries []dto.AlumniDirectoryEntry
	for rows.Next() {
		var e dto.AlumniDirectoryEntry
		if err := rows.Scan(
			&e.UserID,
			&e.Name,
			&e.Email,
			&e.GraduationYear,
			&e.Degree,
			&e.Department,
			&e.CurrentPosition,
			&e.Company,
			&e.Location,
		); err != nil {
			return nil, 0, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

// GetFilterOptions retrieves the distinct values offered for the directory
// dropdowns
func (r *AlumniRepository) GetFilterOptions(ctx context.Context) (*dto.FilterOptions, error) {
	options := &dto.FilterOptions{}

	stringColumns := []struct {
		column string
		dest   *[]string
	}{
		{"company", &options.Companies},
		{"department", &options.Departments},
		{"degree", &options.Degrees},
		{"location", &options.Locations},
	}

	for _, c := range stringColumns {
		query := fmt.Sprintf(`
			SELECT DISTINCT %s FROM alumni
			WHERE %s IS NOT NULL AND %s != ''
			ORDER BY %s`, c.column, c.column, c.column, c.column)

		rows, err := r.db.Query(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("error querying filter options: %w", err)
		}

		for rows.Next() {
			var value string
			if err := rows.Scan(&value); err != nil {
				rows.Close()
				return nil, err
			}
			*c.dest = append(*c.dest, value)
		}
		rows.Close()

		if err := rows.Err(); err != nil {
			return nil, err
		}
	}

	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT graduation_year FROM alumni ORDER BY graduation_year DESC`)
	if err != nil {
		return nil, fmt.Errorf("error querying graduation years: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var year int
		if err := rows.Scan(&year); err != nil {
			return nil, err
		}
		options.Years = append(options.Years, year)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return options, nil
}

// GetYearStats retrieves the alumni count per graduation year
func (r *AlumniRepository) GetYearStats(ctx context.Context) ([]dto.YearStat, error) {
	query := `
		SELECT graduation_year, COUNT(*) AS total
		FROM alumni
		GROUP BY graduation_year
		ORDER BY graduation_year
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying year stats: %w", err)
	}
	defer rows.Close()

	var stats []dto.YearStat
	for rows.Next() {
		var s dto.YearStat
		if err := rows.Scan(&s.GraduationYear, &s.Count); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}
