package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"jobportal/internal/domain/application"
	"jobportal/internal/domain/job"

	"github.com/google/uuid"
)

func TestDashboard_Student(t *testing.T) {
	users := newFakeUserRepo()
	jobs := newFakeJobRepo()
	bookmarks := newFakeBookmarkRepo()
	apps := newFakeApplicationRepo()
	convs := newFakeMessagingRepo()

	student := studentAccount("ada")
	users.put(student)

	jobID := uuid.New()
	seedApplication(t, apps, jobID, student.Student.ID, application.StatusApplied)
	seedApplication(t, apps, uuid.New(), student.Student.ID, application.StatusAccepted)

	if err := bookmarks.CreateBookmark(context.Background(), job.Bookmark{
		ID:        uuid.New(),
		StudentID: student.Student.ID,
		JobID:     jobID,
	}); err != nil {
		t.Fatalf("seed bookmark: %v", err)
	}

	uc := NewDashboardUsecase(users, jobs, &fakeCategoryRepo{}, bookmarks, apps, convs)
	d, err := uc.Student(context.Background(), student.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if d.TotalApplications != 2 {
		t.Fatalf("expected 2 applications, got %d", d.TotalApplications)
	}
	if d.StatusSummary.Applied != 1 || d.StatusSummary.Accepted != 1 {
		t.Fatalf("unexpected summary: %+v", d.StatusSummary)
	}
	if d.BookmarkedJobs != 1 {
		t.Fatalf("expected 1 bookmark, got %d", d.BookmarkedJobs)
	}
	if len(d.RecentApplications) != 2 {
		t.Fatalf("expected 2 recent applications, got %d", len(d.RecentApplications))
	}
}

func TestDashboard_Recruiter(t *testing.T) {
	users := newFakeUserRepo()
	jobs := newFakeJobRepo()
	apps := newFakeApplicationRepo()
	convs := newFakeMessagingRepo()

	rec := recruiterAccount("acme", true)
	users.put(rec)

	active := job.Job{ID: uuid.New(), Title: "Open", PostedBy: rec.Recruiter.ID, IsActive: true, DatePosted: time.Now()}
	closed := job.Job{ID: uuid.New(), Title: "Done", PostedBy: rec.Recruiter.ID, IsActive: true, IsClosed: true, DatePosted: time.Now()}
	if err := jobs.Create(context.Background(), active); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := jobs.Create(context.Background(), closed); err != nil {
		t.Fatalf("seed: %v", err)
	}

	id := seedApplication(t, apps, active.ID, uuid.New(), application.StatusApplied)
	apps.enrich(id, func(d *application.Detail) { d.JobRecruiterID = rec.Recruiter.ID })

	uc := NewDashboardUsecase(users, jobs, &fakeCategoryRepo{}, newFakeBookmarkRepo(), apps, convs)
	d, err := uc.Recruiter(context.Background(), rec.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if d.TotalJobs != 2 || d.ActiveJobs != 1 {
		t.Fatalf("unexpected job counts: %+v", d)
	}
	if d.TotalApplications != 1 {
		t.Fatalf("expected 1 application, got %d", d.TotalApplications)
	}
	if len(d.RecentJobs) != 2 {
		t.Fatalf("expected 2 recent jobs, got %d", len(d.RecentJobs))
	}
	if !d.IsApproved {
		t.Fatalf("approved recruiter must see is_approved set")
	}
}

func TestDashboard_Admin(t *testing.T) {
	users := newFakeUserRepo()
	jobs := newFakeJobRepo()
	apps := newFakeApplicationRepo()

	admin := adminAccount("root")
	rec := recruiterAccount("acme", false)
	student := studentAccount("ada")
	users.put(admin)
	users.put(rec)
	users.put(student)

	j := job.Job{ID: uuid.New(), Title: "Open", PostedBy: rec.Recruiter.ID, IsActive: true, DatePosted: time.Now()}
	if err := jobs.Create(context.Background(), j); err != nil {
		t.Fatalf("seed: %v", err)
	}
	seedApplication(t, apps, j.ID, student.Student.ID, application.StatusApplied)

	categories := &fakeCategoryRepo{}
	if err := categories.CreateCategory(context.Background(), job.Category{ID: uuid.New(), Name: "Engineering"}); err != nil {
		t.Fatalf("seed category: %v", err)
	}

	uc := NewDashboardUsecase(users, jobs, categories, newFakeBookmarkRepo(), apps, newFakeMessagingRepo())
	d, err := uc.Admin(context.Background(), admin.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if d.TotalUsers != 3 || d.TotalStudents != 1 || d.TotalRecruiters != 1 {
		t.Fatalf("unexpected user counts: %+v", d)
	}
	if d.PendingRecruiters != 1 {
		t.Fatalf("expected 1 pending recruiter, got %d", d.PendingRecruiters)
	}
	if d.TotalJobs != 1 || d.ActiveJobs != 1 {
		t.Fatalf("unexpected job counts: %+v", d)
	}
	if d.TotalApplications != 1 {
		t.Fatalf("expected 1 application, got %d", d.TotalApplications)
	}
	if d.NewApplications30d != 1 {
		t.Fatalf("expected recent application counted, got %d", d.NewApplications30d)
	}
	if len(d.TopCategories) != 1 || d.TopCategories[0].Name != "Engineering" {
		t.Fatalf("unexpected top categories: %+v", d.TopCategories)
	}
}

func TestDashboard_Admin_ForbiddenForStudent(t *testing.T) {
	users := newFakeUserRepo()
	student := studentAccount("ada")
	users.put(student)

	uc := NewDashboardUsecase(users, newFakeJobRepo(), &fakeCategoryRepo{}, newFakeBookmarkRepo(), newFakeApplicationRepo(), newFakeMessagingRepo())
	if _, err := uc.Admin(context.Background(), student.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestDashboard_Student_ForbiddenForRecruiter(t *testing.T) {
	users := newFakeUserRepo()
	rec := recruiterAccount("acme", true)
	users.put(rec)

	uc := NewDashboardUsecase(users, newFakeJobRepo(), &fakeCategoryRepo{}, newFakeBookmarkRepo(), newFakeApplicationRepo(), newFakeMessagingRepo())
	if _, err := uc.Student(context.Background(), rec.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func seedApplication(t *testing.T, apps *fakeApplicationRepo, jobID, studentID uuid.UUID, status application.Status) uuid.UUID {
	t.Helper()
	a := application.Application{
		ID:        uuid.New(),
		JobID:     jobID,
		StudentID: studentID,
		Resume:    "resume.pdf",
		Status:    status,
	}
	if err := apps.Create(context.Background(), a); err != nil {
		t.Fatalf("seed application: %v", err)
	}
	return a.ID
}
