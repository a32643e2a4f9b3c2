package application

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusApplied  Status = "applied"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusApplied, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

type Application struct {
	ID             uuid.UUID `json:"id"`
	JobID          uuid.UUID `json:"job_id"`
	StudentID      uuid.UUID `json:"student_id"`
	Resume         string    `json:"resume"`
	CoverLetter    string    `json:"cover_letter"`
	Status         Status    `json:"status"`
	RecruiterNotes string    `json:"recruiter_notes"`
	AppliedDate    time.Time `json:"applied_date"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Detail carries the display fields list and detail endpoints join in.
type Detail struct {
	Application

	JobTitle       string    `json:"job_title"`
	JobCompany     string    `json:"job_company"`
	JobRecruiterID uuid.UUID `json:"-"`
	RecruiterEmail string    `json:"-"`
	StudentName    string    `json:"student_name"`
	StudentEmail   string    `json:"-"`
	StudentUserID  uuid.UUID `json:"-"`
}

type StatusCounts struct {
	Applied  int `json:"applied"`
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
}

func (c StatusCounts) Total() int {
	return c.Applied + c.Accepted + c.Rejected
}
