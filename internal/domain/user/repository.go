package user

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound          = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already taken")
)

type Counts struct {
	Users             int
	Students          int
	Recruiters        int
	PendingRecruiters int
}

type Repository interface {
	CreateStudentAccount(ctx context.Context, u User, p StudentProfile) error
	CreateRecruiterAccount(ctx context.Context, u User, p RecruiterProfile) error

	GetByID(ctx context.Context, id uuid.UUID) (Account, error)
	GetByUsername(ctx context.Context, username string) (Account, error)
	List(ctx context.Context, role Role) ([]Account, error)
	Delete(ctx context.Context, id uuid.UUID) error

	GetRecruiter(ctx context.Context, recruiterID uuid.UUID) (RecruiterProfile, error)
	GetStudent(ctx context.Context, studentID uuid.UUID) (StudentProfile, error)
	SetRecruiterApproval(ctx context.Context, recruiterID uuid.UUID, approved bool) (RecruiterProfile, error)

	UpdateStudentProfile(ctx context.Context, p StudentProfile) error
	UpdateRecruiterProfile(ctx context.Context, p RecruiterProfile) error

	Counts(ctx context.Context) (Counts, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int, error)
}
