package usecase

import (
	"context"
	"errors"
	"testing"
)

func TestProfiles_Get_StripsPasswordHash(t *testing.T) {
	users := newFakeUserRepo()
	uc := NewProfileUsecase(users)

	student := studentAccount("ada")
	student.PasswordHash = "$2a$10$notarealhash"
	users.put(student)

	acc, err := uc.Get(context.Background(), student.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if acc.PasswordHash != "" {
		t.Fatalf("password hash leaked")
	}
	if acc.ID != student.ID {
		t.Fatalf("wrong account returned")
	}
}

func TestProfiles_UpdateStudent(t *testing.T) {
	users := newFakeUserRepo()
	uc := NewProfileUsecase(users)

	student := studentAccount("ada")
	users.put(student)

	acc, err := uc.UpdateStudent(context.Background(), student.ID, StudentProfileInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Skills:    "Go, SQL",
		Location:  "London",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	p, ok := acc.StudentProfile()
	if !ok {
		t.Fatalf("student profile missing after update")
	}
	if p.FirstName != "Ada" || p.Skills != "Go, SQL" {
		t.Fatalf("profile not persisted: %+v", p)
	}
}

func TestProfiles_UpdateStudent_RequiresName(t *testing.T) {
	users := newFakeUserRepo()
	uc := NewProfileUsecase(users)

	student := studentAccount("ada")
	users.put(student)

	_, err := uc.UpdateStudent(context.Background(), student.ID, StudentProfileInput{
		FirstName: "  ",
		LastName:  "Lovelace",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank name, got %v", err)
	}
}

func TestProfiles_UpdateStudent_WrongRole(t *testing.T) {
	users := newFakeUserRepo()
	uc := NewProfileUsecase(users)

	rec := recruiterAccount("acme", true)
	users.put(rec)

	_, err := uc.UpdateStudent(context.Background(), rec.ID, StudentProfileInput{
		FirstName: "A",
		LastName:  "B",
	})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for recruiter, got %v", err)
	}
}

func TestProfiles_UpdateRecruiter(t *testing.T) {
	users := newFakeUserRepo()
	uc := NewProfileUsecase(users)

	rec := recruiterAccount("acme", true)
	users.put(rec)

	acc, err := uc.UpdateRecruiter(context.Background(), rec.ID, RecruiterProfileInput{
		CompanyName:    "Acme Corp",
		CompanyWebsite: " https://acme.example ",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	p, ok := acc.RecruiterProfile()
	if !ok {
		t.Fatalf("recruiter profile missing after update")
	}
	if p.CompanyName != "Acme Corp" {
		t.Fatalf("company name not persisted: %q", p.CompanyName)
	}
	if p.CompanyWebsite != "https://acme.example" {
		t.Fatalf("website not trimmed: %q", p.CompanyWebsite)
	}

	if _, err := uc.UpdateRecruiter(context.Background(), rec.ID, RecruiterProfileInput{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty company, got %v", err)
	}
}
