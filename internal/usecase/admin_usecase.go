package usecase

import (
	"context"
	"errors"

	"jobportal/internal/domain/application"
	"jobportal/internal/domain/job"
	"jobportal/internal/domain/user"
	"jobportal/internal/pkg/authz"

	"github.com/google/uuid"
)

type AdminUsecase interface {
	ListUsers(ctx context.Context, viewerID uuid.UUID, role user.Role) ([]user.Account, error)
	DeleteUser(ctx context.Context, viewerID uuid.UUID, id uuid.UUID) error
	SetRecruiterApproval(ctx context.Context, viewerID uuid.UUID, recruiterID uuid.UUID, approved bool) (user.RecruiterProfile, error)

	ListJobs(ctx context.Context, viewerID uuid.UUID, in JobListInput) ([]job.Job, error)
	DeleteJob(ctx context.Context, viewerID uuid.UUID, jobID uuid.UUID) error

	ListApplications(ctx context.Context, viewerID uuid.UUID) ([]application.Detail, error)
}

type Admin struct {
	users        user.Repository
	jobs         job.Repository
	applications application.Repository
}

func NewAdminUsecase(users user.Repository, jobs job.Repository, applications application.Repository) *Admin {
	return &Admin{users: users, jobs: jobs, applications: applications}
}

func (s *Admin) ListUsers(ctx context.Context, viewerID uuid.UUID, role user.Role) ([]user.Account, error) {
	if err := s.requireAdmin(ctx, viewerID); err != nil {
		return nil, err
	}
	if role != "" && !role.Valid() {
		return nil, ErrInvalidInput
	}

	accounts, err := s.users.List(ctx, role)
	if err != nil {
		return nil, ErrInternal
	}
	for i := range accounts {
		accounts[i].PasswordHash = ""
	}
	return accounts, nil
}

// DeleteUser removes an account and, through the schema, its profile, jobs
// and applications. Admin accounts cannot be deleted this way.
func (s *Admin) DeleteUser(ctx context.Context, viewerID uuid.UUID, id uuid.UUID) error {
	if err := s.requireAdmin(ctx, viewerID); err != nil {
		return err
	}

	target, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.ErrNotFound
		}
		return ErrInternal
	}
	if authz.IsAdmin(target) {
		return ErrForbidden
	}

	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.ErrNotFound
		}
		return ErrInternal
	}
	return nil
}

func (s *Admin) SetRecruiterApproval(ctx context.Context, viewerID uuid.UUID, recruiterID uuid.UUID, approved bool) (user.RecruiterProfile, error) {
	if err := s.requireAdmin(ctx, viewerID); err != nil {
		return user.RecruiterProfile{}, err
	}

	profile, err := s.users.SetRecruiterApproval(ctx, recruiterID, approved)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.RecruiterProfile{}, user.ErrNotFound
		}
		return user.RecruiterProfile{}, ErrInternal
	}
	return profile, nil
}

// ListJobs returns every job, inactive and closed ones included.
func (s *Admin) ListJobs(ctx context.Context, viewerID uuid.UUID, in JobListInput) ([]job.Job, error) {
	if err := s.requireAdmin(ctx, viewerID); err != nil {
		return nil, err
	}

	f := job.Filter{
		Scope:      job.ScopeAll,
		Search:     in.Search,
		JobType:    in.JobType,
		Location:   in.Location,
		CategoryID: in.CategoryID,
		Limit:      pageSize(in.Limit),
		Offset:     max(in.Offset, 0),
	}
	jobs, err := s.jobs.List(ctx, f)
	if err != nil {
		return nil, ErrInternal
	}
	return jobs, nil
}

func (s *Admin) DeleteJob(ctx context.Context, viewerID uuid.UUID, jobID uuid.UUID) error {
	if err := s.requireAdmin(ctx, viewerID); err != nil {
		return err
	}
	if err := s.jobs.Delete(ctx, jobID); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.ErrNotFound
		}
		return ErrInternal
	}
	return nil
}

func (s *Admin) ListApplications(ctx context.Context, viewerID uuid.UUID) ([]application.Detail, error) {
	if err := s.requireAdmin(ctx, viewerID); err != nil {
		return nil, err
	}
	out, err := s.applications.ListAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (s *Admin) requireAdmin(ctx context.Context, viewerID uuid.UUID) error {
	acc, err := loadAccount(ctx, s.users, viewerID)
	if err != nil {
		return err
	}
	if !authz.IsAdmin(acc) {
		return ErrForbidden
	}
	return nil
}
