package usecase

import (
	"context"
	"errors"
	"testing"

	"jobportal/internal/domain/application"
	"jobportal/internal/domain/job"
	"jobportal/internal/domain/user"

	"github.com/google/uuid"
)

type applicationFixture struct {
	uc       *Applications
	users    *fakeUserRepo
	jobs     *fakeJobRepo
	apps     *fakeApplicationRepo
	notifier *recordingNotifier

	recruiter user.Account
	student   user.Account
	job       job.Job
}

func newApplicationFixture(t *testing.T) *applicationFixture {
	t.Helper()

	users := newFakeUserRepo()
	jobs := newFakeJobRepo()
	apps := newFakeApplicationRepo()
	notifier := &recordingNotifier{}

	recruiter := recruiterAccount("acme", true)
	student := studentAccount("ada")
	users.put(recruiter)
	users.put(student)

	j := job.Job{
		ID:          uuid.New(),
		Title:       "Backend Engineer",
		CompanyName: "Acme",
		JobType:     job.TypeFullTime,
		PostedBy:    recruiter.Recruiter.ID,
		IsActive:    true,
	}
	if err := jobs.Create(context.Background(), j); err != nil {
		t.Fatalf("seed job: %v", err)
	}

	return &applicationFixture{
		uc:        NewApplicationUsecase(apps, jobs, users, notifier),
		users:     users,
		jobs:      jobs,
		apps:      apps,
		notifier:  notifier,
		recruiter: recruiter,
		student:   student,
		job:       j,
	}
}

func (f *applicationFixture) apply(t *testing.T) application.Detail {
	t.Helper()
	d, err := f.uc.Apply(context.Background(), f.student.ID, ApplyInput{JobID: f.job.ID, Resume: "resume.pdf"})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	// fill the joins the SQL layer resolves
	f.apps.enrich(d.ID, func(d *application.Detail) {
		d.JobRecruiterID = f.recruiter.Recruiter.ID
		d.StudentUserID = f.student.ID
		d.StudentName = f.student.DisplayName()
	})
	return d
}

func TestApplications_Apply_Success(t *testing.T) {
	f := newApplicationFixture(t)

	d := f.apply(t)
	if d.Status != application.StatusApplied {
		t.Fatalf("expected applied status, got %s", d.Status)
	}
	if len(f.notifier.received) != 1 {
		t.Fatalf("expected 1 received event, got %d", len(f.notifier.received))
	}
}

func TestApplications_Apply_Duplicate(t *testing.T) {
	f := newApplicationFixture(t)

	f.apply(t)
	_, err := f.uc.Apply(context.Background(), f.student.ID, ApplyInput{JobID: f.job.ID, Resume: "resume.pdf"})
	if !errors.Is(err, application.ErrAlreadyApplied) {
		t.Fatalf("expected ErrAlreadyApplied, got %v", err)
	}
}

func TestApplications_Apply_ClosedJob(t *testing.T) {
	f := newApplicationFixture(t)

	f.job.IsClosed = true
	if err := f.jobs.Update(context.Background(), f.job); err != nil {
		t.Fatalf("close job: %v", err)
	}

	_, err := f.uc.Apply(context.Background(), f.student.ID, ApplyInput{JobID: f.job.ID, Resume: "resume.pdf"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for closed job, got %v", err)
	}
}

func TestApplications_Apply_RecruiterForbidden(t *testing.T) {
	f := newApplicationFixture(t)

	_, err := f.uc.Apply(context.Background(), f.recruiter.ID, ApplyInput{JobID: f.job.ID, Resume: "resume.pdf"})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestApplications_Apply_MissingResume(t *testing.T) {
	f := newApplicationFixture(t)

	_, err := f.uc.Apply(context.Background(), f.student.ID, ApplyInput{JobID: f.job.ID})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestApplications_UpdateStatus_OwnerNotifiesStudent(t *testing.T) {
	f := newApplicationFixture(t)
	d := f.apply(t)

	updated, err := f.uc.UpdateStatus(context.Background(), f.recruiter.ID, d.ID, StatusUpdateInput{
		Status:         application.StatusAccepted,
		RecruiterNotes: "interview next week",
	})
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if updated.Status != application.StatusAccepted {
		t.Fatalf("expected accepted, got %s", updated.Status)
	}
	if len(f.notifier.changed) != 1 {
		t.Fatalf("expected 1 status event, got %d", len(f.notifier.changed))
	}
	if f.notifier.changed[0].Status != string(application.StatusAccepted) {
		t.Fatalf("event carries wrong status: %+v", f.notifier.changed[0])
	}
}

func TestApplications_UpdateStatus_SameStatusNoEvent(t *testing.T) {
	f := newApplicationFixture(t)
	d := f.apply(t)

	if _, err := f.uc.UpdateStatus(context.Background(), f.recruiter.ID, d.ID, StatusUpdateInput{Status: application.StatusApplied}); err != nil {
		t.Fatalf("update status: %v", err)
	}
	if len(f.notifier.changed) != 0 {
		t.Fatalf("unchanged status must not notify, got %d events", len(f.notifier.changed))
	}
}

func TestApplications_UpdateStatus_NonOwnerForbidden(t *testing.T) {
	f := newApplicationFixture(t)
	d := f.apply(t)

	other := recruiterAccount("globex", true)
	f.users.put(other)

	_, err := f.uc.UpdateStatus(context.Background(), other.ID, d.ID, StatusUpdateInput{Status: application.StatusRejected})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestApplications_UpdateStatus_InvalidStatus(t *testing.T) {
	f := newApplicationFixture(t)
	d := f.apply(t)

	_, err := f.uc.UpdateStatus(context.Background(), f.recruiter.ID, d.ID, StatusUpdateInput{Status: "shortlisted"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestApplications_Get_StrangerSeesNotFound(t *testing.T) {
	f := newApplicationFixture(t)
	d := f.apply(t)

	stranger := studentAccount("eve")
	f.users.put(stranger)

	_, err := f.uc.Get(context.Background(), stranger.ID, d.ID)
	if !errors.Is(err, application.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestApplications_ListForJob_NonOwnerSeesNotFound(t *testing.T) {
	f := newApplicationFixture(t)
	f.apply(t)

	other := recruiterAccount("globex", true)
	f.users.put(other)

	_, err := f.uc.ListForJob(context.Background(), other.ID, f.job.ID)
	if !errors.Is(err, job.ErrNotFound) {
		t.Fatalf("expected job not found for non-owner, got %v", err)
	}

	out, err := f.uc.ListForJob(context.Background(), f.recruiter.ID, f.job.ID)
	if err != nil {
		t.Fatalf("owner list: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 application, got %d", len(out))
	}
}

func TestApplications_ListMine_AdminSeesAll(t *testing.T) {
	f := newApplicationFixture(t)
	f.apply(t)

	admin := adminAccount("root")
	f.users.put(admin)

	out, err := f.uc.ListMine(context.Background(), admin.ID)
	if err != nil {
		t.Fatalf("list mine as admin: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected every application, got %d", len(out))
	}
}

func TestApplications_ListMine_Student(t *testing.T) {
	f := newApplicationFixture(t)
	f.apply(t)

	out, err := f.uc.ListMine(context.Background(), f.student.ID)
	if err != nil {
		t.Fatalf("list mine: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 application, got %d", len(out))
	}
}
