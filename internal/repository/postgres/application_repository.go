package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"jobportal/internal/database"
	"jobportal/internal/domain/application"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ApplicationRepository struct {
	db database.DB
}

func NewApplicationRepository(db database.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

const applicationDetailQuery = `
	SELECT a.id, a.job_id, a.student_id, a.resume, a.cover_letter, a.status,
	       a.recruiter_notes, a.applied_date, a.updated_at,
	       j.title, j.company_name, j.posted_by, ru.email,
	       s.first_name, s.last_name, su.email, su.id
	FROM applications a
	JOIN jobs j ON j.id = a.job_id
	JOIN recruiters r ON r.id = j.posted_by
	JOIN users ru ON ru.id = r.user_id
	JOIN students s ON s.id = a.student_id
	JOIN users su ON su.id = s.user_id`

func (r *ApplicationRepository) Create(ctx context.Context, a application.Application) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO applications (id, job_id, student_id, resume, cover_letter, status, recruiter_notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.ID, a.JobID, a.StudentID, a.Resume, a.CoverLetter, a.Status, a.RecruiterNotes)
	if isUniqueViolation(err, "applications_job_id_student_id_key") {
		return application.ErrAlreadyApplied
	}
	return err
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (application.Detail, error) {
	row := r.db.QueryRow(ctx, applicationDetailQuery+` WHERE a.id = $1`, id)
	return scanApplicationDetail(row)
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status application.Status, notes string) error {
	n, err := r.db.Exec(ctx,
		`UPDATE applications SET status = $2, recruiter_notes = $3, updated_at = now() WHERE id = $1`,
		id, status, notes)
	if err != nil {
		return err
	}
	if n == 0 {
		return application.ErrNotFound
	}
	return nil
}

func (r *ApplicationRepository) ListByStudent(ctx context.Context, studentID uuid.UUID, limit int) ([]application.Detail, error) {
	return r.list(ctx, ` WHERE a.student_id = $1 ORDER BY a.applied_date DESC`+limitClause(limit), studentID)
}

func (r *ApplicationRepository) ListByRecruiter(ctx context.Context, recruiterID uuid.UUID, limit int) ([]application.Detail, error) {
	return r.list(ctx, ` WHERE j.posted_by = $1 ORDER BY a.applied_date DESC`+limitClause(limit), recruiterID)
}

func (r *ApplicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]application.Detail, error) {
	return r.list(ctx, ` WHERE a.job_id = $1 ORDER BY a.applied_date DESC`, jobID)
}

func (r *ApplicationRepository) ListAll(ctx context.Context) ([]application.Detail, error) {
	return r.list(ctx, ` ORDER BY a.applied_date DESC`)
}

func (r *ApplicationRepository) list(ctx context.Context, suffix string, args ...any) ([]application.Detail, error) {
	rows, err := r.db.Query(ctx, applicationDetailQuery+suffix, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.Detail, 0)
	for rows.Next() {
		d, err := scanApplicationDetail(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *ApplicationRepository) StatusCountsByStudent(ctx context.Context, studentID uuid.UUID) (application.StatusCounts, error) {
	return r.statusCounts(ctx, ` WHERE a.student_id = $1`, studentID)
}

func (r *ApplicationRepository) StatusCountsByRecruiter(ctx context.Context, recruiterID uuid.UUID) (application.StatusCounts, error) {
	return r.statusCounts(ctx, ` WHERE j.posted_by = $1`, recruiterID)
}

func (r *ApplicationRepository) StatusCountsAll(ctx context.Context) (application.StatusCounts, error) {
	return r.statusCounts(ctx, ``)
}

func (r *ApplicationRepository) statusCounts(ctx context.Context, where string, args ...any) (application.StatusCounts, error) {
	var c application.StatusCounts
	row := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FILTER (WHERE a.status = 'applied'),
		       COUNT(*) FILTER (WHERE a.status = 'accepted'),
		       COUNT(*) FILTER (WHERE a.status = 'rejected')
		FROM applications a
		JOIN jobs j ON j.id = a.job_id`+where, args...)
	if err := row.Scan(&c.Applied, &c.Accepted, &c.Rejected); err != nil {
		return application.StatusCounts{}, err
	}
	return c, nil
}

func (r *ApplicationRepository) CountAppliedSince(ctx context.Context, since time.Time) (int, error) {
	var n int
	row := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM applications WHERE applied_date >= $1`, since)
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func scanApplicationDetail(row database.Row) (application.Detail, error) {
	var d application.Detail
	var first, last string
	err := row.Scan(
		&d.ID, &d.JobID, &d.StudentID, &d.Resume, &d.CoverLetter, &d.Status,
		&d.RecruiterNotes, &d.AppliedDate, &d.UpdatedAt,
		&d.JobTitle, &d.JobCompany, &d.JobRecruiterID, &d.RecruiterEmail,
		&first, &last, &d.StudentEmail, &d.StudentUserID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return application.Detail{}, application.ErrNotFound
		}
		return application.Detail{}, err
	}
	d.StudentName = first + " " + last
	return d, nil
}

func limitClause(limit int) string {
	if limit <= 0 {
		return ""
	}
	// limit values come from internal callers, never from request input
	return " LIMIT " + strconv.Itoa(limit)
}
