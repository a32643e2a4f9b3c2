package usecase

import (
	"context"
	"strings"

	"jobportal/internal/domain/user"

	"github.com/google/uuid"
)

type StudentProfileInput struct {
	FirstName  string
	LastName   string
	Bio        string
	Skills     string
	Education  string
	Experience string
	Location   string
}

type RecruiterProfileInput struct {
	CompanyName        string
	CompanyDescription string
	CompanyWebsite     string
	Location           string
}

type ProfileUsecase interface {
	Get(ctx context.Context, viewerID uuid.UUID) (user.Account, error)
	UpdateStudent(ctx context.Context, viewerID uuid.UUID, in StudentProfileInput) (user.Account, error)
	UpdateRecruiter(ctx context.Context, viewerID uuid.UUID, in RecruiterProfileInput) (user.Account, error)
}

type Profiles struct {
	users user.Repository
}

func NewProfileUsecase(users user.Repository) *Profiles {
	return &Profiles{users: users}
}

func (s *Profiles) Get(ctx context.Context, viewerID uuid.UUID) (user.Account, error) {
	acc, err := loadAccount(ctx, s.users, viewerID)
	if err != nil {
		return user.Account{}, err
	}
	acc.PasswordHash = ""
	return acc, nil
}

func (s *Profiles) UpdateStudent(ctx context.Context, viewerID uuid.UUID, in StudentProfileInput) (user.Account, error) {
	acc, err := loadAccount(ctx, s.users, viewerID)
	if err != nil {
		return user.Account{}, err
	}
	profile, ok := acc.StudentProfile()
	if !ok {
		return user.Account{}, ErrForbidden
	}

	first := strings.TrimSpace(in.FirstName)
	last := strings.TrimSpace(in.LastName)
	if first == "" || last == "" {
		return user.Account{}, ErrInvalidInput
	}

	profile.FirstName = first
	profile.LastName = last
	profile.Bio = in.Bio
	profile.Skills = in.Skills
	profile.Education = in.Education
	profile.Experience = in.Experience
	profile.Location = in.Location

	if err := s.users.UpdateStudentProfile(ctx, profile); err != nil {
		return user.Account{}, ErrInternal
	}
	return s.Get(ctx, viewerID)
}

func (s *Profiles) UpdateRecruiter(ctx context.Context, viewerID uuid.UUID, in RecruiterProfileInput) (user.Account, error) {
	acc, err := loadAccount(ctx, s.users, viewerID)
	if err != nil {
		return user.Account{}, err
	}
	profile, ok := acc.RecruiterProfile()
	if !ok {
		return user.Account{}, ErrForbidden
	}

	name := strings.TrimSpace(in.CompanyName)
	if name == "" {
		return user.Account{}, ErrInvalidInput
	}

	profile.CompanyName = name
	profile.CompanyDescription = in.CompanyDescription
	profile.CompanyWebsite = strings.TrimSpace(in.CompanyWebsite)
	profile.Location = in.Location

	if err := s.users.UpdateRecruiterProfile(ctx, profile); err != nil {
		return user.Account{}, ErrInternal
	}
	return s.Get(ctx, viewerID)
}
