// Package authz holds the role predicates every protected operation is gated
// on. Predicates take the fully loaded account so approval state is always
// read fresh from the database, never from token claims.
package authz

import (
	"jobportal/internal/domain/user"

	"github.com/google/uuid"
)

func IsStudent(a user.Account) bool {
	return a.Role == user.RoleStudent
}

func IsRecruiter(a user.Account) bool {
	return a.Role == user.RoleRecruiter
}

// IsApprovedRecruiter is false for recruiters whose profile is missing or
// still pending admin approval.
func IsApprovedRecruiter(a user.Account) bool {
	p, ok := a.RecruiterProfile()
	return ok && p.IsApproved
}

func IsAdmin(a user.Account) bool {
	return a.Role == user.RoleAdmin || a.IsStaff
}

// OwnsJob reports whether the account is the recruiter a job was posted by.
func OwnsJob(a user.Account, postedBy uuid.UUID) bool {
	p, ok := a.RecruiterProfile()
	return ok && p.ID == postedBy
}
