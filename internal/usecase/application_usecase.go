package usecase

import (
	"context"
	"errors"
	"strings"

	"jobportal/internal/domain/application"
	"jobportal/internal/domain/job"
	"jobportal/internal/domain/user"
	"jobportal/internal/notify"
	"jobportal/internal/pkg/authz"

	"github.com/google/uuid"
)

type ApplyInput struct {
	JobID       uuid.UUID
	Resume      string
	CoverLetter string
}

type StatusUpdateInput struct {
	Status         application.Status
	RecruiterNotes string
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, viewerID uuid.UUID, in ApplyInput) (application.Detail, error)
	Get(ctx context.Context, viewerID uuid.UUID, id uuid.UUID) (application.Detail, error)
	UpdateStatus(ctx context.Context, viewerID uuid.UUID, id uuid.UUID, in StatusUpdateInput) (application.Detail, error)
	ListMine(ctx context.Context, viewerID uuid.UUID) ([]application.Detail, error)
	ListForJob(ctx context.Context, viewerID uuid.UUID, jobID uuid.UUID) ([]application.Detail, error)
}

type Applications struct {
	applications application.Repository
	jobs         job.Repository
	users        user.Repository
	notifier     notify.Sender
}

func NewApplicationUsecase(applications application.Repository, jobs job.Repository, users user.Repository, notifier notify.Sender) *Applications {
	if notifier == nil {
		notifier = notify.Noop{}
	}
	return &Applications{applications: applications, jobs: jobs, users: users, notifier: notifier}
}

// Apply files an application for an open job. A second application for the
// same job is rejected as invalid input, matching the duplicate constraint.
func (s *Applications) Apply(ctx context.Context, viewerID uuid.UUID, in ApplyInput) (application.Detail, error) {
	acc, err := loadAccount(ctx, s.users, viewerID)
	if err != nil {
		return application.Detail{}, err
	}
	if !authz.IsStudent(acc) {
		return application.Detail{}, ErrForbidden
	}
	profile, ok := acc.StudentProfile()
	if !ok {
		return application.Detail{}, ErrForbidden
	}

	if strings.TrimSpace(in.Resume) == "" {
		return application.Detail{}, ErrInvalidInput
	}

	j, err := s.jobs.GetByID(ctx, in.JobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return application.Detail{}, job.ErrNotFound
		}
		return application.Detail{}, ErrInternal
	}
	if !j.PubliclyVisible() {
		return application.Detail{}, ErrInvalidInput
	}

	a := application.Application{
		ID:          uuid.New(),
		JobID:       j.ID,
		StudentID:   profile.ID,
		Resume:      in.Resume,
		CoverLetter: in.CoverLetter,
		Status:      application.StatusApplied,
	}
	if err := s.applications.Create(ctx, a); err != nil {
		if errors.Is(err, application.ErrAlreadyApplied) {
			return application.Detail{}, application.ErrAlreadyApplied
		}
		return application.Detail{}, ErrInternal
	}

	detail, err := s.applications.GetByID(ctx, a.ID)
	if err != nil {
		return application.Detail{}, ErrInternal
	}

	s.notifier.ApplicationReceived(eventFor(detail))
	return detail, nil
}

func (s *Applications) Get(ctx context.Context, viewerID uuid.UUID, id uuid.UUID) (application.Detail, error) {
	acc, err := loadAccount(ctx, s.users, viewerID)
	if err != nil {
		return application.Detail{}, err
	}

	detail, err := s.applications.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return application.Detail{}, application.ErrNotFound
		}
		return application.Detail{}, ErrInternal
	}
	if !canSeeApplication(acc, detail) {
		return application.Detail{}, application.ErrNotFound
	}
	return detail, nil
}

// UpdateStatus moves an application through the pipeline. Only the recruiter
// who posted the job, or an admin, may change it. The student is notified
// when the status actually changes.
func (s *Applications) UpdateStatus(ctx context.Context, viewerID uuid.UUID, id uuid.UUID, in StatusUpdateInput) (application.Detail, error) {
	acc, err := loadAccount(ctx, s.users, viewerID)
	if err != nil {
		return application.Detail{}, err
	}

	if !in.Status.Valid() {
		return application.Detail{}, ErrInvalidInput
	}

	detail, err := s.applications.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return application.Detail{}, application.ErrNotFound
		}
		return application.Detail{}, ErrInternal
	}
	if !authz.IsAdmin(acc) && !authz.OwnsJob(acc, detail.JobRecruiterID) {
		return application.Detail{}, ErrForbidden
	}

	changed := detail.Status != in.Status
	if err := s.applications.UpdateStatus(ctx, id, in.Status, in.RecruiterNotes); err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return application.Detail{}, application.ErrNotFound
		}
		return application.Detail{}, ErrInternal
	}

	detail.Status = in.Status
	detail.RecruiterNotes = in.RecruiterNotes

	if changed {
		s.notifier.ApplicationStatusChanged(eventFor(detail))
	}
	return detail, nil
}

// ListMine returns the viewer's applications: the student's own, every
// application against the recruiter's postings, or all of them for an admin.
func (s *Applications) ListMine(ctx context.Context, viewerID uuid.UUID) ([]application.Detail, error) {
	acc, err := loadAccount(ctx, s.users, viewerID)
	if err != nil {
		return nil, err
	}

	if authz.IsAdmin(acc) {
		out, err := s.applications.ListAll(ctx)
		if err != nil {
			return nil, ErrInternal
		}
		return out, nil
	}
	if p, ok := acc.StudentProfile(); ok {
		out, err := s.applications.ListByStudent(ctx, p.ID, 0)
		if err != nil {
			return nil, ErrInternal
		}
		return out, nil
	}
	if p, ok := acc.RecruiterProfile(); ok {
		out, err := s.applications.ListByRecruiter(ctx, p.ID, 0)
		if err != nil {
			return nil, ErrInternal
		}
		return out, nil
	}
	return nil, ErrForbidden
}

// ListForJob returns the applications for one job. A recruiter asking about a
// job they do not own learns nothing: the job reads as not found.
func (s *Applications) ListForJob(ctx context.Context, viewerID uuid.UUID, jobID uuid.UUID) ([]application.Detail, error) {
	acc, err := loadAccount(ctx, s.users, viewerID)
	if err != nil {
		return nil, err
	}

	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return nil, job.ErrNotFound
		}
		return nil, ErrInternal
	}
	if !authz.IsAdmin(acc) && !authz.OwnsJob(acc, j.PostedBy) {
		return nil, job.ErrNotFound
	}

	out, err := s.applications.ListByJob(ctx, jobID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func canSeeApplication(acc user.Account, d application.Detail) bool {
	if authz.IsAdmin(acc) {
		return true
	}
	if p, ok := acc.StudentProfile(); ok && p.ID == d.StudentID {
		return true
	}
	return authz.OwnsJob(acc, d.JobRecruiterID)
}

func eventFor(d application.Detail) notify.ApplicationEvent {
	return notify.ApplicationEvent{
		ApplicationID:  d.ID,
		JobTitle:       d.JobTitle,
		JobCompany:     d.JobCompany,
		Status:         string(d.Status),
		StudentName:    d.StudentName,
		StudentEmail:   d.StudentEmail,
		StudentUserID:  d.StudentUserID,
		RecruiterEmail: d.RecruiterEmail,
	}
}
