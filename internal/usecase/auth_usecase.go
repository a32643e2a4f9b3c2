package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"jobportal/internal/domain/user"
	"jobportal/internal/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// TokenStore is the revocation list behind logout. cache.Redis implements it.
type TokenStore interface {
	DenyToken(ctx context.Context, tokenID string, ttl time.Duration) error
	IsTokenDenied(ctx context.Context, tokenID string) bool
}

type TokenPair struct {
	Access  string `json:"access_token"`
	Refresh string `json:"refresh_token"`
}

type StudentSignupInput struct {
	Username    string
	Email       string
	PhoneNumber string
	Password    string
	Password2   string
	FirstName   string
	LastName    string
	Bio         string
	Skills      string
	Education   string
	Experience  string
	Location    string
}

type RecruiterSignupInput struct {
	Username           string
	Email              string
	PhoneNumber        string
	Password           string
	Password2          string
	CompanyName        string
	CompanyDescription string
	CompanyWebsite     string
	Location           string
}

type LoginInput struct {
	Username string
	Password string
}

type AuthUsecase interface {
	SignupStudent(ctx context.Context, in StudentSignupInput) (user.Account, TokenPair, error)
	SignupRecruiter(ctx context.Context, in RecruiterSignupInput) (user.Account, TokenPair, error)
	Login(ctx context.Context, in LoginInput) (user.Account, TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
	CurrentUser(ctx context.Context, userID uuid.UUID) (user.Account, error)
}

type Auth struct {
	users  user.Repository
	jwt    jwt.Service
	tokens TokenStore
	now    func() time.Time
}

func NewAuthUsecase(users user.Repository, jwtSvc jwt.Service, tokens TokenStore) *Auth {
	return &Auth{users: users, jwt: jwtSvc, tokens: tokens, now: time.Now}
}

func (a *Auth) SignupStudent(ctx context.Context, in StudentSignupInput) (user.Account, TokenPair, error) {
	username, err := validateSignup(in.Username, in.Email, in.Password, in.Password2)
	if err != nil {
		return user.Account{}, TokenPair{}, err
	}
	if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" {
		return user.Account{}, TokenPair{}, ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.Account{}, TokenPair{}, ErrInternal
	}

	u := user.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        strings.TrimSpace(in.Email),
		PhoneNumber:  strings.TrimSpace(in.PhoneNumber),
		PasswordHash: string(hash),
		Role:         user.RoleStudent,
	}
	p := user.StudentProfile{
		ID:         uuid.New(),
		UserID:     u.ID,
		FirstName:  strings.TrimSpace(in.FirstName),
		LastName:   strings.TrimSpace(in.LastName),
		Bio:        in.Bio,
		Skills:     in.Skills,
		Education:  in.Education,
		Experience: in.Experience,
		Location:   in.Location,
	}

	if err := a.users.CreateStudentAccount(ctx, u, p); err != nil {
		if errors.Is(err, user.ErrDuplicateUsername) {
			return user.Account{}, TokenPair{}, ErrUsernameTaken
		}
		return user.Account{}, TokenPair{}, ErrInternal
	}

	return a.issueFor(ctx, u.ID)
}

func (a *Auth) SignupRecruiter(ctx context.Context, in RecruiterSignupInput) (user.Account, TokenPair, error) {
	username, err := validateSignup(in.Username, in.Email, in.Password, in.Password2)
	if err != nil {
		return user.Account{}, TokenPair{}, err
	}
	if strings.TrimSpace(in.CompanyName) == "" {
		return user.Account{}, TokenPair{}, ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.Account{}, TokenPair{}, ErrInternal
	}

	u := user.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        strings.TrimSpace(in.Email),
		PhoneNumber:  strings.TrimSpace(in.PhoneNumber),
		PasswordHash: string(hash),
		Role:         user.RoleRecruiter,
	}
	p := user.RecruiterProfile{
		ID:                 uuid.New(),
		UserID:             u.ID,
		CompanyName:        strings.TrimSpace(in.CompanyName),
		CompanyDescription: in.CompanyDescription,
		CompanyWebsite:     strings.TrimSpace(in.CompanyWebsite),
		Location:           in.Location,
		IsApproved:         false,
	}

	if err := a.users.CreateRecruiterAccount(ctx, u, p); err != nil {
		if errors.Is(err, user.ErrDuplicateUsername) {
			return user.Account{}, TokenPair{}, ErrUsernameTaken
		}
		return user.Account{}, TokenPair{}, ErrInternal
	}

	return a.issueFor(ctx, u.ID)
}

func (a *Auth) Login(ctx context.Context, in LoginInput) (user.Account, TokenPair, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return user.Account{}, TokenPair{}, ErrInvalidCredentials
	}

	acc, err := a.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.Account{}, TokenPair{}, ErrInvalidCredentials
		}
		return user.Account{}, TokenPair{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(in.Password)); err != nil {
		return user.Account{}, TokenPair{}, ErrInvalidCredentials
	}

	pair, err := a.tokenPair(acc)
	if err != nil {
		return user.Account{}, TokenPair{}, err
	}
	acc.PasswordHash = ""
	return acc, pair, nil
}

// Logout puts the refresh token on the denylist for the remainder of its
// lifetime. An already-expired token is accepted as a no-op.
func (a *Auth) Logout(ctx context.Context, refreshToken string) error {
	if strings.TrimSpace(refreshToken) == "" {
		return ErrInvalidRefreshToken
	}

	claims, err := a.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil
		}
		return ErrInvalidRefreshToken
	}
	if !a.jwt.IsRefreshToken(claims) {
		return ErrInvalidRefreshToken
	}

	ttl := claims.ExpiredAt.Sub(a.now())
	if ttl <= 0 {
		return nil
	}
	if a.tokens != nil {
		// best effort: without redis the token simply ages out
		_ = a.tokens.DenyToken(ctx, claims.ID, ttl)
	}
	return nil
}

func (a *Auth) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	if refreshToken == "" {
		return TokenPair{}, ErrUnauthenticated
	}

	claims, err := a.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return TokenPair{}, ErrRefreshTokenExpired
		}
		return TokenPair{}, ErrInvalidRefreshToken
	}
	if !a.jwt.IsRefreshToken(claims) {
		return TokenPair{}, ErrInvalidRefreshToken
	}
	if a.tokens != nil && a.tokens.IsTokenDenied(ctx, claims.ID) {
		return TokenPair{}, ErrInvalidRefreshToken
	}

	acc, err := a.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return TokenPair{}, ErrInvalidRefreshToken
		}
		return TokenPair{}, ErrInternal
	}

	return a.tokenPair(acc)
}

func (a *Auth) CurrentUser(ctx context.Context, userID uuid.UUID) (user.Account, error) {
	acc, err := a.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.Account{}, ErrUnauthenticated
		}
		return user.Account{}, ErrInternal
	}
	acc.PasswordHash = ""
	return acc, nil
}

func (a *Auth) issueFor(ctx context.Context, userID uuid.UUID) (user.Account, TokenPair, error) {
	acc, err := a.users.GetByID(ctx, userID)
	if err != nil {
		return user.Account{}, TokenPair{}, ErrInternal
	}
	pair, err := a.tokenPair(acc)
	if err != nil {
		return user.Account{}, TokenPair{}, err
	}
	acc.PasswordHash = ""
	return acc, pair, nil
}

func (a *Auth) tokenPair(acc user.Account) (TokenPair, error) {
	access, err := a.jwt.GenerateAccessToken(acc.ID, string(acc.Role))
	if err != nil {
		return TokenPair{}, ErrInternal
	}
	refresh, err := a.jwt.GenerateRefreshToken(acc.ID)
	if err != nil {
		return TokenPair{}, ErrInternal
	}
	return TokenPair{Access: access, Refresh: refresh}, nil
}

func validateSignup(username, email, password, password2 string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(email) == "" {
		return "", ErrInvalidInput
	}
	if len(password) < 8 {
		return "", ErrInvalidInput
	}
	if password != password2 {
		return "", ErrInvalidInput
	}
	return username, nil
}
