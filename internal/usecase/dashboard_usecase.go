package usecase

import (
	"context"
	"time"

	"jobportal/internal/domain/application"
	"jobportal/internal/domain/job"
	"jobportal/internal/domain/user"
	"jobportal/internal/pkg/authz"

	"github.com/google/uuid"
)

const (
	dashboardLookback = 30 * 24 * time.Hour
	dashboardRecent   = 5
)

type StudentDashboard struct {
	TotalApplications  int                      `json:"total_applications"`
	StatusSummary      application.StatusCounts `json:"status_summary"`
	BookmarkedJobs     int                      `json:"bookmarked_jobs"`
	UnreadMessages     int                      `json:"unread_messages"`
	RecentApplications []application.Detail     `json:"recent_applications"`
}

type RecruiterDashboard struct {
	IsApproved         bool                     `json:"is_approved"`
	TotalJobs          int                      `json:"total_jobs"`
	ActiveJobs         int                      `json:"active_jobs"`
	TotalApplications  int                      `json:"total_applications"`
	StatusSummary      application.StatusCounts `json:"status_summary"`
	UnreadMessages     int                      `json:"unread_messages"`
	RecentJobs         []job.Job                `json:"recent_jobs"`
	RecentApplications []application.Detail     `json:"recent_applications"`
}

type AdminDashboard struct {
	TotalUsers        int `json:"total_users"`
	TotalStudents     int `json:"total_students"`
	TotalRecruiters   int `json:"total_recruiters"`
	PendingRecruiters int `json:"pending_recruiters"`

	TotalJobs  int `json:"total_jobs"`
	ActiveJobs int `json:"active_jobs"`

	TotalApplications int                      `json:"total_applications"`
	StatusSummary     application.StatusCounts `json:"status_summary"`

	NewUsers30d        int `json:"new_users_30d"`
	NewJobs30d         int `json:"new_jobs_30d"`
	NewApplications30d int `json:"new_applications_30d"`

	TopCategories []job.Category `json:"top_categories"`
}

type MessageCounter interface {
	UnreadCountForRecruiter(ctx context.Context, recruiterID, userID uuid.UUID) (int, error)
	UnreadCountForStudent(ctx context.Context, studentID, userID uuid.UUID) (int, error)
}

type DashboardUsecase interface {
	Student(ctx context.Context, viewerID uuid.UUID) (StudentDashboard, error)
	Recruiter(ctx context.Context, viewerID uuid.UUID) (RecruiterDashboard, error)
	Admin(ctx context.Context, viewerID uuid.UUID) (AdminDashboard, error)
}

type Dashboards struct {
	users        user.Repository
	jobs         job.Repository
	categories   job.CategoryRepository
	bookmarks    job.BookmarkRepository
	applications application.Repository
	messages     MessageCounter
	now          func() time.Time
}

func NewDashboardUsecase(users user.Repository, jobs job.Repository, categories job.CategoryRepository, bookmarks job.BookmarkRepository, applications application.Repository, messages MessageCounter) *Dashboards {
	return &Dashboards{
		users:        users,
		jobs:         jobs,
		categories:   categories,
		bookmarks:    bookmarks,
		applications: applications,
		messages:     messages,
		now:          time.Now,
	}
}

func (s *Dashboards) Student(ctx context.Context, viewerID uuid.UUID) (StudentDashboard, error) {
	acc, err := loadAccount(ctx, s.users, viewerID)
	if err != nil {
		return StudentDashboard{}, err
	}
	profile, ok := acc.StudentProfile()
	if !ok {
		return StudentDashboard{}, ErrForbidden
	}

	counts, err := s.applications.StatusCountsByStudent(ctx, profile.ID)
	if err != nil {
		return StudentDashboard{}, ErrInternal
	}
	recent, err := s.applications.ListByStudent(ctx, profile.ID, dashboardRecent)
	if err != nil {
		return StudentDashboard{}, ErrInternal
	}
	marks, err := s.bookmarks.ListBookmarks(ctx, profile.ID)
	if err != nil {
		return StudentDashboard{}, ErrInternal
	}
	unread, err := s.messages.UnreadCountForStudent(ctx, profile.ID, acc.ID)
	if err != nil {
		return StudentDashboard{}, ErrInternal
	}

	return StudentDashboard{
		TotalApplications:  counts.Total(),
		StatusSummary:      counts,
		BookmarkedJobs:     len(marks),
		UnreadMessages:     unread,
		RecentApplications: recent,
	}, nil
}

func (s *Dashboards) Recruiter(ctx context.Context, viewerID uuid.UUID) (RecruiterDashboard, error) {
	acc, err := loadAccount(ctx, s.users, viewerID)
	if err != nil {
		return RecruiterDashboard{}, err
	}
	profile, ok := acc.RecruiterProfile()
	if !ok {
		return RecruiterDashboard{}, ErrForbidden
	}

	jobCounts, err := s.jobs.CountByRecruiter(ctx, profile.ID)
	if err != nil {
		return RecruiterDashboard{}, ErrInternal
	}
	recentJobs, err := s.jobs.RecentByRecruiter(ctx, profile.ID, dashboardRecent)
	if err != nil {
		return RecruiterDashboard{}, ErrInternal
	}
	counts, err := s.applications.StatusCountsByRecruiter(ctx, profile.ID)
	if err != nil {
		return RecruiterDashboard{}, ErrInternal
	}
	recentApps, err := s.applications.ListByRecruiter(ctx, profile.ID, dashboardRecent)
	if err != nil {
		return RecruiterDashboard{}, ErrInternal
	}
	unread, err := s.messages.UnreadCountForRecruiter(ctx, profile.ID, acc.ID)
	if err != nil {
		return RecruiterDashboard{}, ErrInternal
	}

	return RecruiterDashboard{
		IsApproved:         profile.IsApproved,
		TotalJobs:          jobCounts.Total,
		ActiveJobs:         jobCounts.Active,
		TotalApplications:  counts.Total(),
		StatusSummary:      counts,
		UnreadMessages:     unread,
		RecentJobs:         recentJobs,
		RecentApplications: recentApps,
	}, nil
}

func (s *Dashboards) Admin(ctx context.Context, viewerID uuid.UUID) (AdminDashboard, error) {
	acc, err := loadAccount(ctx, s.users, viewerID)
	if err != nil {
		return AdminDashboard{}, err
	}
	if !authz.IsAdmin(acc) {
		return AdminDashboard{}, ErrForbidden
	}

	since := s.now().UTC().Add(-dashboardLookback)

	userCounts, err := s.users.Counts(ctx)
	if err != nil {
		return AdminDashboard{}, ErrInternal
	}
	totalJobs, activeJobs, err := s.jobs.CountAll(ctx)
	if err != nil {
		return AdminDashboard{}, ErrInternal
	}
	appCounts, err := s.applications.StatusCountsAll(ctx)
	if err != nil {
		return AdminDashboard{}, ErrInternal
	}
	newUsers, err := s.users.CountCreatedSince(ctx, since)
	if err != nil {
		return AdminDashboard{}, ErrInternal
	}
	newJobs, err := s.jobs.CountPostedSince(ctx, since)
	if err != nil {
		return AdminDashboard{}, ErrInternal
	}
	newApps, err := s.applications.CountAppliedSince(ctx, since)
	if err != nil {
		return AdminDashboard{}, ErrInternal
	}
	topCats, err := s.categories.PopularCategories(ctx, popularCategoryCount)
	if err != nil {
		return AdminDashboard{}, ErrInternal
	}

	return AdminDashboard{
		TotalUsers:         userCounts.Users,
		TotalStudents:      userCounts.Students,
		TotalRecruiters:    userCounts.Recruiters,
		PendingRecruiters:  userCounts.PendingRecruiters,
		TotalJobs:          totalJobs,
		ActiveJobs:         activeJobs,
		TotalApplications:  appCounts.Total(),
		StatusSummary:      appCounts,
		NewUsers30d:        newUsers,
		NewJobs30d:         newJobs,
		NewApplications30d: newApps,
		TopCategories:      topCats,
	}, nil
}
