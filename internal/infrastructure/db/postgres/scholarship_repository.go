package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/scholarfind/scholarship-api/internal/core/domain"
	"github.com/scholarfind/scholarship-api/internal/core/ports"
)

const scholarshipColumns = `id, title, provider, category, amount, deadline,
	eligibility, location, description, created_by, created_at`

type ScholarshipRepository struct {
	db *sql.DB
}

func NewScholarshipRepository(db *sql.DB) *ScholarshipRepository {
	return &ScholarshipRepository{db: db}
}

func (r *ScholarshipRepository) Insert(ctx context.Context, s *domain.Scholarship) (int64, error) {
	query := `INSERT INTO scholarships
	          (title, provider, category, amount, deadline, eligibility, location, description, created_by)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	          RETURNING id`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		s.Title, s.Provider, s.Category, s.Amount, s.Deadline,
		s.Eligibility, s.Location, s.Description, s.CreatedBy,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert scholarship: %w", err)
	}

	return id, nil
}

func (r *ScholarshipRepository) FindByID(ctx context.Context, id int64) (*domain.Scholarship, error) {
	query := `SELECT ` + scholarshipColumns + ` FROM scholarships WHERE id = $1`

	s, err := scanScholarship(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrScholarshipNotFound
		}
		return nil, fmt.Errorf("find scholarship: %w", err)
	}

	return s, nil
}

// buildListQuery assembles the filtered SELECT. All conditions AND together;
// the filter values travel as placeholders, never interpolated into the SQL.
func buildListQuery(filter ports.ScholarshipFilter) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + scholarshipColumns + ` FROM scholarships WHERE 1=1`)

	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Category != "" {
		sb.WriteString(` AND category = ` + arg(filter.Category))
	}
	if filter.MinAmount != nil {
		sb.WriteString(` AND amount >= ` + arg(*filter.MinAmount))
	}
	if filter.MaxAmount != nil {
		sb.WriteString(` AND amount <= ` + arg(*filter.MaxAmount))
	}
	if filter.Location != "" {
		sb.WriteString(` AND location ILIKE ` + arg("%"+filter.Location+"%"))
	}
	if filter.Search != "" {
		p := arg("%" + filter.Search + "%")
		sb.WriteString(` AND (title ILIKE ` + p + ` OR provider ILIKE ` + p + ` OR description ILIKE ` + p + `)`)
	}

	sb.WriteString(` ORDER BY created_at DESC`)

	if filter.Limit > 0 {
		sb.WriteString(` LIMIT ` + arg(filter.Limit))
	}

	return sb.String(), args
}

// List runs the filtered query; an empty result set is not an error.
func (r *ScholarshipRepository) List(ctx context.Context, filter ports.ScholarshipFilter) ([]*domain.Scholarship, error) {
	query, args := buildListQuery(filter)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list scholarships: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.Scholarship, 0)
	for rows.Next() {
		s, err := scanScholarship(rows)
		if err != nil {
			return nil, fmt.Errorf("list scholarships: %w", err)
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list scholarships: %w", err)
	}

	return items, nil
}

// Update fully replaces the mutable fields. No rows-affected check: an
// unknown id succeeds silently.
func (r *ScholarshipRepository) Update(ctx context.Context, id int64, in ports.ScholarshipInput) error {
	query := `UPDATE scholarships
	          SET title = $1, provider = $2, category = $3, amount = $4,
	              deadline = $5, eligibility = $6, location = $7, description = $8
	          WHERE id = $9`

	_, err := r.db.ExecContext(ctx, query,
		in.Title, in.Provider, in.Category, in.Amount, in.Deadline,
		in.Eligibility, in.Location, in.Description, id,
	)
	if err != nil {
		return fmt.Errorf("update scholarship: %w", err)
	}

	return nil
}

// Delete removes a row; an unknown id succeeds silently.
func (r *ScholarshipRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM scholarships WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete scholarship: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScholarship(row rowScanner) (*domain.Scholarship, error) {
	s := &domain.Scholarship{}
	err := row.Scan(
		&s.ID, &s.Title, &s.Provider, &s.Category, &s.Amount, &s.Deadline,
		&s.Eligibility, &s.Location, &s.Description, &s.CreatedBy, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}
