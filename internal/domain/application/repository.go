package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound       = errors.New("application not found")
	ErrAlreadyApplied = errors.New("already applied for this job")
)

type Repository interface {
	Create(ctx context.Context, a Application) error
	GetByID(ctx context.Context, id uuid.UUID) (Detail, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status, notes string) error

	ListByStudent(ctx context.Context, studentID uuid.UUID, limit int) ([]Detail, error)
	ListByRecruiter(ctx context.Context, recruiterID uuid.UUID, limit int) ([]Detail, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]Detail, error)
	ListAll(ctx context.Context) ([]Detail, error)

	StatusCountsByStudent(ctx context.Context, studentID uuid.UUID) (StatusCounts, error)
	StatusCountsByRecruiter(ctx context.Context, recruiterID uuid.UUID) (StatusCounts, error)
	StatusCountsAll(ctx context.Context) (StatusCounts, error)
	CountAppliedSince(ctx context.Context, since time.Time) (int, error)
}
