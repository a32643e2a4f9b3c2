package user

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleStudent   Role = "student"
	RoleRecruiter Role = "recruiter"
	RoleAdmin     Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleRecruiter, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phone_number"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	IsStaff      bool      `json:"is_staff"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type StudentProfile struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Bio        string    `json:"bio"`
	Skills     string    `json:"skills"`
	Education  string    `json:"education"`
	Experience string    `json:"experience"`
	Location   string    `json:"location"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (p StudentProfile) FullName() string {
	if p.FirstName == "" {
		return p.LastName
	}
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

type RecruiterProfile struct {
	ID                 uuid.UUID `json:"id"`
	UserID             uuid.UUID `json:"user_id"`
	CompanyName        string    `json:"company_name"`
	CompanyDescription string    `json:"company_description"`
	CompanyWebsite     string    `json:"company_website"`
	Location           string    `json:"location"`
	IsApproved         bool      `json:"is_approved"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Account is a user together with the profile its role implies. The role tag
// decides which profile pointer is set: students carry a StudentProfile,
// recruiters a RecruiterProfile, admins neither.
type Account struct {
	User
	Student   *StudentProfile   `json:"student,omitempty"`
	Recruiter *RecruiterProfile `json:"recruiter,omitempty"`
}

func (a Account) StudentProfile() (StudentProfile, bool) {
	if a.Role != RoleStudent || a.Student == nil {
		return StudentProfile{}, false
	}
	return *a.Student, true
}

func (a Account) RecruiterProfile() (RecruiterProfile, bool) {
	if a.Role != RoleRecruiter || a.Recruiter == nil {
		return RecruiterProfile{}, false
	}
	return *a.Recruiter, true
}

func (a Account) DisplayName() string {
	if p, ok := a.StudentProfile(); ok {
		return p.FullName()
	}
	if p, ok := a.RecruiterProfile(); ok {
		return p.CompanyName
	}
	return a.Username
}
