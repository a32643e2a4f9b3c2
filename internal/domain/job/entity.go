package job

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeInternship = "internship"
	TypeFullTime   = "full-time"
	TypePartTime   = "part-time"
	TypeContract   = "contract"
)

func ValidType(t string) bool {
	switch t {
	case TypeInternship, TypeFullTime, TypePartTime, TypeContract:
		return true
	}
	return false
}

type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	JobCount    int       `json:"job_count,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type Job struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	CompanyName  string     `json:"company_name"`
	Role         string     `json:"role"`
	Location     string     `json:"location"`
	JobType      string     `json:"job_type"`
	CategoryID   *uuid.UUID `json:"category_id,omitempty"`
	SalaryRange  string     `json:"salary_range"`
	PostedBy     uuid.UUID  `json:"posted_by"`
	DatePosted   time.Time  `json:"date_posted"`
	Deadline     *time.Time `json:"deadline,omitempty"`
	IsActive     bool       `json:"is_active"`
	IsClosed     bool       `json:"is_closed"`
	Requirements string     `json:"requirements"`
	Benefits     string     `json:"benefits"`
	Tags         string     `json:"tags"`
	ViewsCount   int        `json:"views_count"`
}

// PubliclyVisible reports whether the job shows up in the public listing.
func (j Job) PubliclyVisible() bool {
	return j.IsActive && !j.IsClosed
}

type Bookmark struct {
	ID        uuid.UUID `json:"id"`
	StudentID uuid.UUID `json:"student_id"`
	JobID     uuid.UUID `json:"job_id"`
	Job       Job       `json:"job"`
	CreatedAt time.Time `json:"created_at"`
}

type Scope int

const (
	// ScopePublic limits listings to active, non-closed jobs.
	ScopePublic Scope = iota
	// ScopeOwner returns every job of one recruiter regardless of state.
	ScopeOwner
	// ScopeAll returns everything; reserved for admin listings.
	ScopeAll
)

type Filter struct {
	Scope       Scope
	RecruiterID uuid.UUID

	Search     string
	JobType    string
	Location   string
	CategoryID *uuid.UUID

	Limit  int
	Offset int
}
