package usecase

import (
	"context"
	"errors"

	"jobportal/internal/domain/job"
	"jobportal/internal/domain/user"
	"jobportal/internal/pkg/authz"

	"github.com/google/uuid"
)

type BookmarkUsecase interface {
	List(ctx context.Context, viewerID uuid.UUID) ([]job.Bookmark, error)
	Add(ctx context.Context, viewerID uuid.UUID, jobID uuid.UUID) (job.Bookmark, error)
	Remove(ctx context.Context, viewerID uuid.UUID, bookmarkID uuid.UUID) error
}

type Bookmarks struct {
	bookmarks job.BookmarkRepository
	jobs      job.Repository
	users     user.Repository
}

func NewBookmarkUsecase(bookmarks job.BookmarkRepository, jobs job.Repository, users user.Repository) *Bookmarks {
	return &Bookmarks{bookmarks: bookmarks, jobs: jobs, users: users}
}

func (s *Bookmarks) List(ctx context.Context, viewerID uuid.UUID) ([]job.Bookmark, error) {
	profile, err := s.studentProfile(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	out, err := s.bookmarks.ListBookmarks(ctx, profile.ID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (s *Bookmarks) Add(ctx context.Context, viewerID uuid.UUID, jobID uuid.UUID) (job.Bookmark, error) {
	profile, err := s.studentProfile(ctx, viewerID)
	if err != nil {
		return job.Bookmark{}, err
	}

	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Bookmark{}, job.ErrNotFound
		}
		return job.Bookmark{}, ErrInternal
	}

	b := job.Bookmark{
		ID:        uuid.New(),
		StudentID: profile.ID,
		JobID:     j.ID,
		Job:       j,
	}
	if err := s.bookmarks.CreateBookmark(ctx, b); err != nil {
		if errors.Is(err, job.ErrDuplicateBookmark) {
			return job.Bookmark{}, job.ErrDuplicateBookmark
		}
		return job.Bookmark{}, ErrInternal
	}
	return b, nil
}

func (s *Bookmarks) Remove(ctx context.Context, viewerID uuid.UUID, bookmarkID uuid.UUID) error {
	profile, err := s.studentProfile(ctx, viewerID)
	if err != nil {
		return err
	}
	if err := s.bookmarks.DeleteBookmark(ctx, bookmarkID, profile.ID); err != nil {
		if errors.Is(err, job.ErrBookmarkNotFound) {
			return job.ErrBookmarkNotFound
		}
		return ErrInternal
	}
	return nil
}

func (s *Bookmarks) studentProfile(ctx context.Context, viewerID uuid.UUID) (user.StudentProfile, error) {
	acc, err := loadAccount(ctx, s.users, viewerID)
	if err != nil {
		return user.StudentProfile{}, err
	}
	if !authz.IsStudent(acc) {
		return user.StudentProfile{}, ErrForbidden
	}
	profile, ok := acc.StudentProfile()
	if !ok {
		return user.StudentProfile{}, ErrForbidden
	}
	return profile, nil
}
