package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"jobportal/internal/database"
	"jobportal/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	db database.DB
}

func NewUserRepository(db database.DB) *UserRepository {
	return &UserRepository{db: db}
}

const accountColumns = `
	u.id, u.username, u.email, u.phone_number, u.password_hash, u.role, u.is_staff,
	u.created_at, u.updated_at,
	s.id, s.first_name, s.last_name, s.bio, s.skills, s.education, s.experience,
	s.location, s.created_at, s.updated_at,
	r.id, r.company_name, r.company_description, r.company_website, r.location,
	r.is_approved, r.created_at, r.updated_at`

const accountFrom = `
	FROM users u
	LEFT JOIN students s ON s.user_id = u.id
	LEFT JOIN recruiters r ON r.user_id = u.id`

func (repo *UserRepository) CreateStudentAccount(ctx context.Context, u user.User, p user.StudentProfile) error {
	tx, err := repo.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx,
		`INSERT INTO users (id, username, email, phone_number, password_hash, role, is_staff)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID, u.Username, u.Email, u.PhoneNumber, u.PasswordHash, u.Role, u.IsStaff,
	); err != nil {
		if isUniqueViolation(err, "users_username_key") {
			return user.ErrDuplicateUsername
		}
		return err
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO students (id, user_id, first_name, last_name, bio, skills, education, experience, location)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		p.ID, u.ID, p.FirstName, p.LastName, p.Bio, p.Skills, p.Education, p.Experience, p.Location,
	); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (repo *UserRepository) CreateRecruiterAccount(ctx context.Context, u user.User, p user.RecruiterProfile) error {
	tx, err := repo.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx,
		`INSERT INTO users (id, username, email, phone_number, password_hash, role, is_staff)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID, u.Username, u.Email, u.PhoneNumber, u.PasswordHash, u.Role, u.IsStaff,
	); err != nil {
		if isUniqueViolation(err, "users_username_key") {
			return user.ErrDuplicateUsername
		}
		return err
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO recruiters (id, user_id, company_name, company_description, company_website, location, is_approved)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, u.ID, p.CompanyName, p.CompanyDescription, p.CompanyWebsite, p.Location, p.IsApproved,
	); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (repo *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.Account, error) {
	row := repo.db.QueryRow(ctx, `SELECT`+accountColumns+accountFrom+` WHERE u.id = $1`, id)
	return scanAccount(row)
}

func (repo *UserRepository) GetByUsername(ctx context.Context, username string) (user.Account, error) {
	row := repo.db.QueryRow(ctx, `SELECT`+accountColumns+accountFrom+` WHERE u.username = $1`, username)
	return scanAccount(row)
}

func (repo *UserRepository) List(ctx context.Context, role user.Role) ([]user.Account, error) {
	q := `SELECT` + accountColumns + accountFrom
	args := []any{}
	if role != "" {
		q += ` WHERE u.role = $1`
		args = append(args, role)
	}
	q += ` ORDER BY u.created_at DESC`

	rows, err := repo.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]user.Account, 0)
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (repo *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := repo.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (repo *UserRepository) GetRecruiter(ctx context.Context, recruiterID uuid.UUID) (user.RecruiterProfile, error) {
	row := repo.db.QueryRow(ctx,
		`SELECT id, user_id, company_name, company_description, company_website, location, is_approved, created_at, updated_at
		 FROM recruiters WHERE id = $1`, recruiterID)
	return scanRecruiter(row)
}

func (repo *UserRepository) GetStudent(ctx context.Context, studentID uuid.UUID) (user.StudentProfile, error) {
	row := repo.db.QueryRow(ctx,
		`SELECT id, user_id, first_name, last_name, bio, skills, education, experience, location, created_at, updated_at
		 FROM students WHERE id = $1`, studentID)
	return scanStudent(row)
}

func (repo *UserRepository) SetRecruiterApproval(ctx context.Context, recruiterID uuid.UUID, approved bool) (user.RecruiterProfile, error) {
	n, err := repo.db.Exec(ctx,
		`UPDATE recruiters SET is_approved = $2, updated_at = now() WHERE id = $1`,
		recruiterID, approved)
	if err != nil {
		return user.RecruiterProfile{}, err
	}
	if n == 0 {
		return user.RecruiterProfile{}, user.ErrNotFound
	}
	return repo.GetRecruiter(ctx, recruiterID)
}

func (repo *UserRepository) UpdateStudentProfile(ctx context.Context, p user.StudentProfile) error {
	n, err := repo.db.Exec(ctx,
		`UPDATE students
		 SET first_name = $2, last_name = $3, bio = $4, skills = $5, education = $6,
		     experience = $7, location = $8, updated_at = now()
		 WHERE id = $1`,
		p.ID, p.FirstName, p.LastName, p.Bio, p.Skills, p.Education, p.Experience, p.Location)
	if err != nil {
		return err
	}
	if n == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (repo *UserRepository) UpdateRecruiterProfile(ctx context.Context, p user.RecruiterProfile) error {
	n, err := repo.db.Exec(ctx,
		`UPDATE recruiters
		 SET company_name = $2, company_description = $3, company_website = $4,
		     location = $5, updated_at = now()
		 WHERE id = $1`,
		p.ID, p.CompanyName, p.CompanyDescription, p.CompanyWebsite, p.Location)
	if err != nil {
		return err
	}
	if n == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (repo *UserRepository) Counts(ctx context.Context) (user.Counts, error) {
	var c user.Counts
	row := repo.db.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM students),
			(SELECT COUNT(*) FROM recruiters),
			(SELECT COUNT(*) FROM recruiters WHERE NOT is_approved)`)
	if err := row.Scan(&c.Users, &c.Students, &c.Recruiters, &c.PendingRecruiters); err != nil {
		return user.Counts{}, err
	}
	return c, nil
}

func (repo *UserRepository) CountCreatedSince(ctx context.Context, since time.Time) (int, error) {
	var n int
	row := repo.db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE created_at >= $1`, since)
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func scanAccount(row database.Row) (user.Account, error) {
	var a user.Account
	var (
		sID                                            *uuid.UUID
		sFirst, sLast, sBio, sSkills, sEdu, sExp, sLoc *string
		sCreated, sUpdated                             *time.Time
		rID                                            *uuid.UUID
		rCompany, rDesc, rWebsite, rLoc                *string
		rApproved                                      *bool
		rCreated, rUpdated                             *time.Time
	)

	err := row.Scan(
		&a.ID, &a.Username, &a.Email, &a.PhoneNumber, &a.PasswordHash, &a.Role, &a.IsStaff,
		&a.CreatedAt, &a.UpdatedAt,
		&sID, &sFirst, &sLast, &sBio, &sSkills, &sEdu, &sExp, &sLoc, &sCreated, &sUpdated,
		&rID, &rCompany, &rDesc, &rWebsite, &rLoc, &rApproved, &rCreated, &rUpdated,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return user.Account{}, user.ErrNotFound
		}
		return user.Account{}, err
	}

	if sID != nil {
		a.Student = &user.StudentProfile{
			ID:         *sID,
			UserID:     a.ID,
			FirstName:  deref(sFirst),
			LastName:   deref(sLast),
			Bio:        deref(sBio),
			Skills:     deref(sSkills),
			Education:  deref(sEdu),
			Experience: deref(sExp),
			Location:   deref(sLoc),
			CreatedAt:  derefTime(sCreated),
			UpdatedAt:  derefTime(sUpdated),
		}
	}
	if rID != nil {
		a.Recruiter = &user.RecruiterProfile{
			ID:                 *rID,
			UserID:             a.ID,
			CompanyName:        deref(rCompany),
			CompanyDescription: deref(rDesc),
			CompanyWebsite:     deref(rWebsite),
			Location:           deref(rLoc),
			IsApproved:         rApproved != nil && *rApproved,
			CreatedAt:          derefTime(rCreated),
			UpdatedAt:          derefTime(rUpdated),
		}
	}

	return a, nil
}

func scanStudent(row database.Row) (user.StudentProfile, error) {
	var p user.StudentProfile
	err := row.Scan(&p.ID, &p.UserID, &p.FirstName, &p.LastName, &p.Bio, &p.Skills,
		&p.Education, &p.Experience, &p.Location, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return user.StudentProfile{}, user.ErrNotFound
		}
		return user.StudentProfile{}, err
	}
	return p, nil
}

func scanRecruiter(row database.Row) (user.RecruiterProfile, error) {
	var p user.RecruiterProfile
	err := row.Scan(&p.ID, &p.UserID, &p.CompanyName, &p.CompanyDescription, &p.CompanyWebsite,
		&p.Location, &p.IsApproved, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return user.RecruiterProfile{}, user.ErrNotFound
		}
		return user.RecruiterProfile{}, err
	}
	return p, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
