package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"jobportal/internal/domain/job"

	"github.com/google/uuid"
)

func newJobsForTest() (*Jobs, *fakeUserRepo, *fakeJobRepo) {
	users := newFakeUserRepo()
	jobs := newFakeJobRepo()
	uc := NewJobUsecase(jobs, &fakeCategoryRepo{}, users, nil)
	return uc, users, jobs
}

func validJobInput() JobInput {
	return JobInput{
		Title:       "Backend Engineer",
		Description: "Build services",
		JobType:     job.TypeFullTime,
		Location:    "Remote",
	}
}

func TestJobs_Create_RequiresApprovedRecruiter(t *testing.T) {
	uc, users, _ := newJobsForTest()

	pending := recruiterAccount("acme", false)
	users.put(pending)

	_, err := uc.Create(context.Background(), pending.ID, validJobInput())
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for pending recruiter, got %v", err)
	}

	if _, err := users.SetRecruiterApproval(context.Background(), pending.Recruiter.ID, true); err != nil {
		t.Fatalf("approve: %v", err)
	}
	j, err := uc.Create(context.Background(), pending.ID, validJobInput())
	if err != nil {
		t.Fatalf("unexpected err after approval: %v", err)
	}
	if j.PostedBy != pending.Recruiter.ID {
		t.Fatalf("job not attributed to recruiter")
	}
	if !j.IsActive || j.IsClosed {
		t.Fatalf("new job should be publicly visible")
	}
}

func TestJobs_Create_RejectsStudent(t *testing.T) {
	uc, users, _ := newJobsForTest()

	student := studentAccount("ada")
	users.put(student)

	_, err := uc.Create(context.Background(), student.ID, validJobInput())
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestJobs_Create_InvalidType(t *testing.T) {
	uc, users, _ := newJobsForTest()

	rec := recruiterAccount("acme", true)
	users.put(rec)

	in := validJobInput()
	in.JobType = "gig"
	_, err := uc.Create(context.Background(), rec.ID, in)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestJobs_Get_CountsViewForOtherViewers(t *testing.T) {
	uc, users, _ := newJobsForTest()

	rec := recruiterAccount("acme", true)
	student := studentAccount("ada")
	users.put(rec)
	users.put(student)

	created, err := uc.Create(context.Background(), rec.ID, validJobInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := uc.Get(context.Background(), student.ID, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ViewsCount != 1 {
		t.Fatalf("expected 1 view, got %d", got.ViewsCount)
	}
}

func TestJobs_Get_OwnerViewNotCounted(t *testing.T) {
	uc, users, jobs := newJobsForTest()

	rec := recruiterAccount("acme", true)
	users.put(rec)

	created, err := uc.Create(context.Background(), rec.ID, validJobInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := uc.Get(context.Background(), rec.ID, created.ID); err != nil {
		t.Fatalf("get: %v", err)
	}
	stored, _ := jobs.GetByID(context.Background(), created.ID)
	if stored.ViewsCount != 0 {
		t.Fatalf("owner view must not count, got %d", stored.ViewsCount)
	}
}

func TestJobs_Get_HiddenJobInvisibleToOthers(t *testing.T) {
	uc, users, _ := newJobsForTest()

	rec := recruiterAccount("acme", true)
	student := studentAccount("ada")
	users.put(rec)
	users.put(student)

	closed := true
	in := validJobInput()
	in.IsClosed = &closed
	created, err := uc.Create(context.Background(), rec.ID, in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := uc.Get(context.Background(), student.ID, created.ID); !errors.Is(err, job.ErrNotFound) {
		t.Fatalf("expected not found for hidden job, got %v", err)
	}
	if _, err := uc.Get(context.Background(), rec.ID, created.ID); err != nil {
		t.Fatalf("owner should still see it: %v", err)
	}
}

func TestJobs_List_PublicExcludesClosed(t *testing.T) {
	uc, users, _ := newJobsForTest()

	rec := recruiterAccount("acme", true)
	users.put(rec)

	if _, err := uc.Create(context.Background(), rec.ID, validJobInput()); err != nil {
		t.Fatalf("create: %v", err)
	}
	closed := true
	in := validJobInput()
	in.Title = "Closed Role"
	in.IsClosed = &closed
	if _, err := uc.Create(context.Background(), rec.ID, in); err != nil {
		t.Fatalf("create closed: %v", err)
	}

	public, err := uc.List(context.Background(), uuid.Nil, JobListInput{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(public) != 1 {
		t.Fatalf("expected 1 public job, got %d", len(public))
	}

	mine, err := uc.List(context.Background(), rec.ID, JobListInput{MyJobs: true})
	if err != nil {
		t.Fatalf("list mine: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected 2 owned jobs, got %d", len(mine))
	}
}

func TestJobs_List_MyJobsRejectsStudent(t *testing.T) {
	uc, users, _ := newJobsForTest()

	student := studentAccount("ada")
	users.put(student)

	_, err := uc.List(context.Background(), student.ID, JobListInput{MyJobs: true})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestJobs_Update_NonOwnerForbidden(t *testing.T) {
	uc, users, _ := newJobsForTest()

	owner := recruiterAccount("acme", true)
	other := recruiterAccount("globex", true)
	users.put(owner)
	users.put(other)

	created, err := uc.Create(context.Background(), owner.ID, validJobInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = uc.Update(context.Background(), other.ID, created.ID, validJobInput())
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := uc.Delete(context.Background(), other.ID, created.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden on delete, got %v", err)
	}
}

func TestJobs_Update_OwnerCanClose(t *testing.T) {
	uc, users, _ := newJobsForTest()

	owner := recruiterAccount("acme", true)
	users.put(owner)

	created, err := uc.Create(context.Background(), owner.ID, validJobInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	closed := true
	in := validJobInput()
	in.IsClosed = &closed
	updated, err := uc.Update(context.Background(), owner.ID, created.ID, in)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.PubliclyVisible() {
		t.Fatalf("closed job must not be publicly visible")
	}
}

func TestJobs_Suggestions_ShortPrefix(t *testing.T) {
	uc, _, _ := newJobsForTest()

	out, err := uc.Suggestions(context.Background(), "a")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected no suggestions for short prefix, got %v", out)
	}
}

func TestJobs_PopularCategories_TopTen(t *testing.T) {
	uc, users, _ := newJobsForTest()

	admin := adminAccount("root")
	users.put(admin)

	for i := 0; i < 12; i++ {
		name := fmt.Sprintf("Category %d", i)
		if _, err := uc.CreateCategory(context.Background(), admin.ID, CategoryInput{Name: name}); err != nil {
			t.Fatalf("seed category: %v", err)
		}
	}

	cats, err := uc.PopularCategories(context.Background())
	if err != nil {
		t.Fatalf("popular: %v", err)
	}
	if len(cats) != 10 {
		t.Fatalf("expected top 10 categories, got %d", len(cats))
	}
}

func TestJobs_CreateCategory_AdminOnly(t *testing.T) {
	uc, users, _ := newJobsForTest()

	admin := adminAccount("root")
	student := studentAccount("ada")
	users.put(admin)
	users.put(student)

	if _, err := uc.CreateCategory(context.Background(), student.ID, CategoryInput{Name: "Engineering"}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	c, err := uc.CreateCategory(context.Background(), admin.ID, CategoryInput{Name: "Engineering"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if c.Name != "Engineering" {
		t.Fatalf("unexpected category: %+v", c)
	}

	if _, err := uc.CreateCategory(context.Background(), admin.ID, CategoryInput{Name: "Engineering"}); !errors.Is(err, job.ErrDuplicateCategory) {
		t.Fatalf("expected ErrDuplicateCategory, got %v", err)
	}
}
