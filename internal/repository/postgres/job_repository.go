package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"jobportal/internal/database"
	"jobportal/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type JobRepository struct {
	db database.DB
}

func NewJobRepository(db database.DB) *JobRepository {
	return &JobRepository{db: db}
}

const jobColumns = `
	id, title, description, company_name, role, location, job_type, category_id,
	salary_range, posted_by, date_posted, deadline, is_active, is_closed,
	requirements, benefits, tags, views_count`

func (r *JobRepository) Create(ctx context.Context, j job.Job) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO jobs (id, title, description, company_name, role, location, job_type,
		                   category_id, salary_range, posted_by, deadline, is_active, is_closed,
		                   requirements, benefits, tags)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		j.ID, j.Title, j.Description, j.CompanyName, j.Role, j.Location, j.JobType,
		j.CategoryID, j.SalaryRange, j.PostedBy, j.Deadline, j.IsActive, j.IsClosed,
		j.Requirements, j.Benefits, j.Tags)
	return err
}

func (r *JobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx, `SELECT`+jobColumns+` FROM jobs WHERE id = $1`, id)
	return scanJob(row)
}

func (r *JobRepository) Update(ctx context.Context, j job.Job) error {
	n, err := r.db.Exec(ctx,
		`UPDATE jobs
		 SET title = $2, description = $3, company_name = $4, role = $5, location = $6,
		     job_type = $7, category_id = $8, salary_range = $9, deadline = $10,
		     is_active = $11, is_closed = $12, requirements = $13, benefits = $14, tags = $15
		 WHERE id = $1`,
		j.ID, j.Title, j.Description, j.CompanyName, j.Role, j.Location, j.JobType,
		j.CategoryID, j.SalaryRange, j.Deadline, j.IsActive, j.IsClosed,
		j.Requirements, j.Benefits, j.Tags)
	if err != nil {
		return err
	}
	if n == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (r *JobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (r *JobRepository) List(ctx context.Context, f job.Filter) ([]job.Job, error) {
	var where []string
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	switch f.Scope {
	case job.ScopeOwner:
		where = append(where, `posted_by = `+arg(f.RecruiterID))
	case job.ScopeAll:
		// no state filter
	default:
		where = append(where, `is_active AND NOT is_closed`)
	}

	if f.JobType != "" {
		where = append(where, `job_type = `+arg(f.JobType))
	}
	if f.Location != "" {
		where = append(where, `location ILIKE `+arg("%"+f.Location+"%"))
	}
	if f.CategoryID != nil {
		where = append(where, `category_id = `+arg(*f.CategoryID))
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		p := arg("%" + s + "%")
		where = append(where, fmt.Sprintf(
			`(title ILIKE %[1]s OR description ILIKE %[1]s OR company_name ILIKE %[1]s OR role ILIKE %[1]s OR tags ILIKE %[1]s)`, p))
	}

	q := `SELECT` + jobColumns + ` FROM jobs`
	if len(where) > 0 {
		q += ` WHERE ` + strings.Join(where, ` AND `)
	}
	q += ` ORDER BY date_posted DESC`

	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}
	q += ` LIMIT ` + arg(limit) + ` OFFSET ` + arg(offset)

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

func (r *JobRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `UPDATE jobs SET views_count = views_count + 1 WHERE id = $1`, id)
	return err
}

func (r *JobRepository) Suggestions(ctx context.Context, prefix string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.db.Query(ctx,
		`SELECT title, company_name FROM jobs
		 WHERE is_active AND NOT is_closed AND (title ILIKE $1 OR company_name ILIKE $1)
		 ORDER BY date_posted DESC
		 LIMIT $2`,
		"%"+prefix+"%", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seen := map[string]struct{}{}
	out := make([]string, 0, limit)
	add := func(s string) {
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok || s == "" || len(out) >= limit {
			return
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}

	for rows.Next() {
		var title, company string
		if err := rows.Scan(&title, &company); err != nil {
			return nil, err
		}
		add(title)
		add(company)
	}
	return out, rows.Err()
}

func (r *JobRepository) CountByRecruiter(ctx context.Context, recruiterID uuid.UUID) (job.RecruiterJobCounts, error) {
	var c job.RecruiterJobCounts
	row := r.db.QueryRow(ctx,
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE is_active AND NOT is_closed)
		 FROM jobs WHERE posted_by = $1`, recruiterID)
	if err := row.Scan(&c.Total, &c.Active); err != nil {
		return job.RecruiterJobCounts{}, err
	}
	return c, nil
}

func (r *JobRepository) RecentByRecruiter(ctx context.Context, recruiterID uuid.UUID, n int) ([]job.Job, error) {
	return r.List(ctx, job.Filter{Scope: job.ScopeOwner, RecruiterID: recruiterID, Limit: n})
}

func (r *JobRepository) CountAll(ctx context.Context) (int, int, error) {
	var total, active int
	row := r.db.QueryRow(ctx,
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE is_active AND NOT is_closed) FROM jobs`)
	if err := row.Scan(&total, &active); err != nil {
		return 0, 0, err
	}
	return total, active, nil
}

func (r *JobRepository) CountPostedSince(ctx context.Context, since time.Time) (int, error) {
	var n int
	row := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE date_posted >= $1`, since)
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *JobRepository) ListCategories(ctx context.Context) ([]job.Category, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, description, created_at FROM job_categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Category, 0)
	for rows.Next() {
		var c job.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *JobRepository) PopularCategories(ctx context.Context, n int) ([]job.Category, error) {
	if n <= 0 {
		n = 10
	}
	rows, err := r.db.Query(ctx,
		`SELECT c.id, c.name, c.description, c.created_at, COUNT(j.id) AS job_count
		 FROM job_categories c
		 LEFT JOIN jobs j ON j.category_id = c.id
		 GROUP BY c.id
		 ORDER BY job_count DESC
		 LIMIT $1`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Category, 0, n)
	for rows.Next() {
		var c job.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.JobCount); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *JobRepository) CreateCategory(ctx context.Context, c job.Category) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO job_categories (id, name, description) VALUES ($1, $2, $3)`,
		c.ID, c.Name, c.Description)
	if isUniqueViolation(err, "job_categories_name_key") {
		return job.ErrDuplicateCategory
	}
	return err
}

func (r *JobRepository) ListBookmarks(ctx context.Context, studentID uuid.UUID) ([]job.Bookmark, error) {
	rows, err := r.db.Query(ctx,
		`SELECT b.id, b.student_id, b.job_id, b.created_at,`+prefixedJobColumns("j")+`
		 FROM bookmarked_jobs b
		 JOIN jobs j ON j.id = b.job_id
		 WHERE b.student_id = $1
		 ORDER BY b.created_at DESC`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Bookmark, 0)
	for rows.Next() {
		var b job.Bookmark
		j := &b.Job
		if err := rows.Scan(&b.ID, &b.StudentID, &b.JobID, &b.CreatedAt,
			&j.ID, &j.Title, &j.Description, &j.CompanyName, &j.Role, &j.Location, &j.JobType,
			&j.CategoryID, &j.SalaryRange, &j.PostedBy, &j.DatePosted, &j.Deadline,
			&j.IsActive, &j.IsClosed, &j.Requirements, &j.Benefits, &j.Tags, &j.ViewsCount,
		); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *JobRepository) CreateBookmark(ctx context.Context, b job.Bookmark) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO bookmarked_jobs (id, student_id, job_id) VALUES ($1, $2, $3)`,
		b.ID, b.StudentID, b.JobID)
	if isUniqueViolation(err, "bookmarked_jobs_student_id_job_id_key") {
		return job.ErrDuplicateBookmark
	}
	return err
}

func (r *JobRepository) DeleteBookmark(ctx context.Context, id, studentID uuid.UUID) error {
	n, err := r.db.Exec(ctx,
		`DELETE FROM bookmarked_jobs WHERE id = $1 AND student_id = $2`, id, studentID)
	if err != nil {
		return err
	}
	if n == 0 {
		return job.ErrBookmarkNotFound
	}
	return nil
}

func scanJob(row database.Row) (job.Job, error) {
	var j job.Job
	err := row.Scan(
		&j.ID, &j.Title, &j.Description, &j.CompanyName, &j.Role, &j.Location, &j.JobType,
		&j.CategoryID, &j.SalaryRange, &j.PostedBy, &j.DatePosted, &j.Deadline,
		&j.IsActive, &j.IsClosed, &j.Requirements, &j.Benefits, &j.Tags, &j.ViewsCount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func prefixedJobColumns(alias string) string {
	cols := strings.Split(jobColumns, ",")
	for i, c := range cols {
		cols[i] = " " + alias + "." + strings.TrimSpace(c)
	}
	return strings.Join(cols, ",")
}
