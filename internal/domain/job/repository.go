package job

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound          = errors.New("job not found")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrDuplicateCategory = errors.New("category already exists")
	ErrBookmarkNotFound  = errors.New("bookmark not found")
	ErrDuplicateBookmark = errors.New("job already bookmarked")
)

type RecruiterJobCounts struct {
	Total  int
	Active int
}

type Repository interface {
	Create(ctx context.Context, j Job) error
	GetByID(ctx context.Context, id uuid.UUID) (Job, error)
	Update(ctx context.Context, j Job) error
	Delete(ctx context.Context, id uuid.UUID) error

	List(ctx context.Context, f Filter) ([]Job, error)
	IncrementViews(ctx context.Context, id uuid.UUID) error
	Suggestions(ctx context.Context, prefix string, limit int) ([]string, error)

	CountByRecruiter(ctx context.Context, recruiterID uuid.UUID) (RecruiterJobCounts, error)
	RecentByRecruiter(ctx context.Context, recruiterID uuid.UUID, n int) ([]Job, error)
	CountAll(ctx context.Context) (total, active int, err error)
	CountPostedSince(ctx context.Context, since time.Time) (int, error)
}

type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]Category, error)
	PopularCategories(ctx context.Context, n int) ([]Category, error)
	CreateCategory(ctx context.Context, c Category) error
}

type BookmarkRepository interface {
	ListBookmarks(ctx context.Context, studentID uuid.UUID) ([]Bookmark, error)
	CreateBookmark(ctx context.Context, b Bookmark) error
	DeleteBookmark(ctx context.Context, id, studentID uuid.UUID) error
}
