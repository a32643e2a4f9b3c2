package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"jobportal/internal/domain/job"
	"jobportal/internal/domain/user"
	"jobportal/internal/pkg/authz"

	"github.com/google/uuid"
)

// Cache is the optional read-through cache. cache.Redis implements it; a nil
// Cache disables caching.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error
}

const (
	suggestionCacheTTL   = 10 * time.Minute
	suggestionLimit      = 10
	defaultListPageSize  = 20
	maxListPageSize      = 100
	popularCategoryCount = 10
)

type JobInput struct {
	Title        string
	Description  string
	CompanyName  string
	Role         string
	Location     string
	JobType      string
	CategoryID   *uuid.UUID
	SalaryRange  string
	Deadline     *time.Time
	IsActive     *bool
	IsClosed     *bool
	Requirements string
	Benefits     string
	Tags         string
}

type JobListInput struct {
	Search     string
	JobType    string
	Location   string
	CategoryID *uuid.UUID
	MyJobs     bool
	Limit      int
	Offset     int
}

type CategoryInput struct {
	Name        string
	Description string
}

type JobUsecase interface {
	Create(ctx context.Context, viewerID uuid.UUID, in JobInput) (job.Job, error)
	List(ctx context.Context, viewerID uuid.UUID, in JobListInput) ([]job.Job, error)
	Get(ctx context.Context, viewerID uuid.UUID, jobID uuid.UUID) (job.Job, error)
	Update(ctx context.Context, viewerID uuid.UUID, jobID uuid.UUID, in JobInput) (job.Job, error)
	Delete(ctx context.Context, viewerID uuid.UUID, jobID uuid.UUID) error

	Suggestions(ctx context.Context, prefix string) ([]string, error)
	ListCategories(ctx context.Context) ([]job.Category, error)
	PopularCategories(ctx context.Context) ([]job.Category, error)
	CreateCategory(ctx context.Context, viewerID uuid.UUID, in CategoryInput) (job.Category, error)
}

type Jobs struct {
	jobs       job.Repository
	categories job.CategoryRepository
	users      user.Repository
	cache      Cache
	now        func() time.Time
}

func NewJobUsecase(jobs job.Repository, categories job.CategoryRepository, users user.Repository, cache Cache) *Jobs {
	return &Jobs{jobs: jobs, categories: categories, users: users, cache: cache, now: time.Now}
}

func (s *Jobs) Create(ctx context.Context, viewerID uuid.UUID, in JobInput) (job.Job, error) {
	acc, err := loadAccount(ctx, s.users, viewerID)
	if err != nil {
		return job.Job{}, err
	}
	if !authz.IsApprovedRecruiter(acc) {
		return job.Job{}, ErrForbidden
	}
	profile, _ := acc.RecruiterProfile()

	if err := validateJobInput(in); err != nil {
		return job.Job{}, err
	}

	company := strings.TrimSpace(in.CompanyName)
	if company == "" {
		company = profile.CompanyName
	}

	j := job.Job{
		ID:           uuid.New(),
		Title:        strings.TrimSpace(in.Title),
		Description:  in.Description,
		CompanyName:  company,
		Role:         strings.TrimSpace(in.Role),
		Location:     strings.TrimSpace(in.Location),
		JobType:      in.JobType,
		CategoryID:   in.CategoryID,
		SalaryRange:  in.SalaryRange,
		PostedBy:     profile.ID,
		DatePosted:   s.now().UTC(),
		Deadline:     in.Deadline,
		IsActive:     true,
		IsClosed:     false,
		Requirements: in.Requirements,
		Benefits:     in.Benefits,
		Tags:         in.Tags,
	}
	if in.IsActive != nil {
		j.IsActive = *in.IsActive
	}
	if in.IsClosed != nil {
		j.IsClosed = *in.IsClosed
	}

	if err := s.jobs.Create(ctx, j); err != nil {
		return job.Job{}, ErrInternal
	}
	return j, nil
}

// List returns the public catalog. With MyJobs set a recruiter instead gets
// their own postings, closed and inactive ones included.
func (s *Jobs) List(ctx context.Context, viewerID uuid.UUID, in JobListInput) ([]job.Job, error) {
	f := job.Filter{
		Scope:      job.ScopePublic,
		Search:     strings.TrimSpace(in.Search),
		JobType:    in.JobType,
		Location:   strings.TrimSpace(in.Location),
		CategoryID: in.CategoryID,
		Limit:      pageSize(in.Limit),
		Offset:     max(in.Offset, 0),
	}

	if in.MyJobs {
		acc, err := loadAccount(ctx, s.users, viewerID)
		if err != nil {
			return nil, err
		}
		profile, ok := acc.RecruiterProfile()
		if !ok {
			return nil, ErrForbidden
		}
		f.Scope = job.ScopeOwner
		f.RecruiterID = profile.ID
	}

	jobs, err := s.jobs.List(ctx, f)
	if err != nil {
		return nil, ErrInternal
	}
	return jobs, nil
}

// Get returns one job and counts the view. The posting recruiter reads their
// own job without bumping the counter.
func (s *Jobs) Get(ctx context.Context, viewerID uuid.UUID, jobID uuid.UUID) (job.Job, error) {
	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, ErrInternal
	}

	owner := false
	if viewerID != uuid.Nil {
		acc, err := loadAccount(ctx, s.users, viewerID)
		if err != nil {
			return job.Job{}, err
		}
		owner = authz.OwnsJob(acc, j.PostedBy)
		if !j.PubliclyVisible() && !owner && !authz.IsAdmin(acc) {
			return job.Job{}, job.ErrNotFound
		}
	} else if !j.PubliclyVisible() {
		return job.Job{}, job.ErrNotFound
	}

	if !owner {
		if err := s.jobs.IncrementViews(ctx, j.ID); err == nil {
			j.ViewsCount++
		}
	}
	return j, nil
}

func (s *Jobs) Update(ctx context.Context, viewerID uuid.UUID, jobID uuid.UUID, in JobInput) (job.Job, error) {
	acc, err := loadAccount(ctx, s.users, viewerID)
	if err != nil {
		return job.Job{}, err
	}

	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, ErrInternal
	}
	if !authz.OwnsJob(acc, j.PostedBy) {
		return job.Job{}, ErrForbidden
	}

	if err := validateJobInput(in); err != nil {
		return job.Job{}, err
	}

	j.Title = strings.TrimSpace(in.Title)
	j.Description = in.Description
	if c := strings.TrimSpace(in.CompanyName); c != "" {
		j.CompanyName = c
	}
	j.Role = strings.TrimSpace(in.Role)
	j.Location = strings.TrimSpace(in.Location)
	j.JobType = in.JobType
	j.CategoryID = in.CategoryID
	j.SalaryRange = in.SalaryRange
	j.Deadline = in.Deadline
	j.Requirements = in.Requirements
	j.Benefits = in.Benefits
	j.Tags = in.Tags
	if in.IsActive != nil {
		j.IsActive = *in.IsActive
	}
	if in.IsClosed != nil {
		j.IsClosed = *in.IsClosed
	}

	if err := s.jobs.Update(ctx, j); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, ErrInternal
	}
	return j, nil
}

func (s *Jobs) Delete(ctx context.Context, viewerID uuid.UUID, jobID uuid.UUID) error {
	acc, err := loadAccount(ctx, s.users, viewerID)
	if err != nil {
		return err
	}

	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.ErrNotFound
		}
		return ErrInternal
	}
	if !authz.OwnsJob(acc, j.PostedBy) {
		return ErrForbidden
	}

	if err := s.jobs.Delete(ctx, jobID); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.ErrNotFound
		}
		return ErrInternal
	}
	return nil
}

func (s *Jobs) Suggestions(ctx context.Context, prefix string) ([]string, error) {
	prefix = strings.TrimSpace(prefix)
	if len(prefix) < 2 {
		return []string{}, nil
	}

	key := fmt.Sprintf("jobs:suggest:%s", strings.ToLower(prefix))
	if s.cache != nil {
		var cached []string
		if ok, _ := s.cache.GetJSON(ctx, key, &cached); ok {
			return cached, nil
		}
	}

	out, err := s.jobs.Suggestions(ctx, prefix, suggestionLimit)
	if err != nil {
		return nil, ErrInternal
	}
	if out == nil {
		out = []string{}
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, key, out, suggestionCacheTTL)
	}
	return out, nil
}

func (s *Jobs) ListCategories(ctx context.Context) ([]job.Category, error) {
	cats, err := s.categories.ListCategories(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return cats, nil
}

func (s *Jobs) PopularCategories(ctx context.Context) ([]job.Category, error) {
	cats, err := s.categories.PopularCategories(ctx, popularCategoryCount)
	if err != nil {
		return nil, ErrInternal
	}
	return cats, nil
}

func (s *Jobs) CreateCategory(ctx context.Context, viewerID uuid.UUID, in CategoryInput) (job.Category, error) {
	acc, err := loadAccount(ctx, s.users, viewerID)
	if err != nil {
		return job.Category{}, err
	}
	if !authz.IsAdmin(acc) {
		return job.Category{}, ErrForbidden
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return job.Category{}, ErrInvalidInput
	}

	c := job.Category{
		ID:          uuid.New(),
		Name:        name,
		Description: in.Description,
	}
	if err := s.categories.CreateCategory(ctx, c); err != nil {
		if errors.Is(err, job.ErrDuplicateCategory) {
			return job.Category{}, job.ErrDuplicateCategory
		}
		return job.Category{}, ErrInternal
	}
	return c, nil
}

func validateJobInput(in JobInput) error {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Description) == "" {
		return ErrInvalidInput
	}
	if !job.ValidType(in.JobType) {
		return ErrInvalidInput
	}
	return nil
}

func pageSize(n int) int {
	if n <= 0 {
		return defaultListPageSize
	}
	if n > maxListPageSize {
		return maxListPageSize
	}
	return n
}

func loadAccount(ctx context.Context, users user.Repository, id uuid.UUID) (user.Account, error) {
	if id == uuid.Nil {
		return user.Account{}, ErrUnauthenticated
	}
	acc, err := users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.Account{}, ErrUnauthenticated
		}
		return user.Account{}, ErrInternal
	}
	return acc, nil
}
