package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/SAI-CHANDHAN/My-portfolio/internal/apperr"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/auth/domain"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/auth/repository"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/storage"
)

const (
	MinPasswordLength = 8
	msgBadCredentials = "Invalid credentials"
)

// TokenIssuer signs session tokens for a user.
type TokenIssuer interface {
	Issue(u *domain.User) (string, time.Time, error)
}

type AuthService struct {
	userRepo repository.UserRepository
	issuer   TokenIssuer
	validate *validator.Validate
	cost     int
	now      func() time.Time
	// compared against when the email is unknown so both paths cost a hash
	dummyHash []byte
}

func NewAuthService(userRepo repository.UserRepository, issuer TokenIssuer) *AuthService {
	s := &AuthService{
		userRepo: userRepo,
		issuer:   issuer,
		validate: validator.New(),
		cost:     bcrypt.DefaultCost,
		now:      func() time.Time { return time.Now().UTC() },
	}
	s.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), s.cost)
	return s
}

// LoginResult is returned on a successful login.
type LoginResult struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      *domain.User `json:"user"`
}

// Login checks the password and issues a token. Unknown emails and wrong
// passwords produce the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	u, err := s.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, storage.ErrNotFound) {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
		return nil, apperr.Unauthenticated(msgBadCredentials)
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, apperr.Unauthenticated(msgBadCredentials)
	}

	token, exp, err := s.issuer.Issue(u)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &LoginResult{Token: token, ExpiresAt: exp, User: u}, nil
}

// CreateUser stores a new account with a bcrypt hash of password.
func (s *AuthService) CreateUser(ctx context.Context, email, password, name, role string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var fields []apperr.FieldError
	if s.validate.Var(email, "required,email") != nil {
		fields = append(fields, apperr.FieldError{Field: "email", Message: "Please provide a valid email"})
	}
	if len(password) < MinPasswordLength {
		fields = append(fields, apperr.FieldError{Field: "password", Message: "Password must be at least 8 characters"})
	}
	if s.validate.Var(role, "oneof=admin user") != nil {
		fields = append(fields, apperr.FieldError{Field: "role", Message: "Role must be admin or user"})
	}
	if len(fields) > 0 {
		return nil, apperr.Validation(fields)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	now := s.now()
	u := &domain.User{
		ID:           primitive.NewObjectID(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(name),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.userRepo.Insert(ctx, u); err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, apperr.Conflict("A user with this email already exists", err)
		}
		return nil, apperr.Internal(err)
	}
	return u, nil
}

func (s *AuthService) CreateAdmin(ctx context.Context, email, password, name string) (*domain.User, error) {
	return s.CreateUser(ctx, email, password, name, domain.RoleAdmin)
}
