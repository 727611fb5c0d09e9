// Package auth orchestrates signup, login, and identity lookup. It owns the
// enumeration-safety rule: a failed login never reveals whether the email or
// the password was wrong.
package auth

import (
	"context"
	"errors"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/ashishshah/live-attendance/internal/apperrors"
	"github.com/ashishshah/live-attendance/internal/logger"
	"github.com/ashishshah/live-attendance/internal/password"
	"github.com/ashishshah/live-attendance/internal/token"
	"github.com/ashishshah/live-attendance/internal/user"
)

const tracerName = "github.com/ashishshah/live-attendance/internal/auth"

// Service implements the authentication operations.
type Service struct {
	store  user.Store
	hasher password.Hasher
	codec  *token.Codec
	log    *logger.Logger
	tracer trace.Tracer

	signups metric.Int64Counter
	logins  metric.Int64Counter
}

// NewService creates the authentication service.
func NewService(store user.Store, hasher password.Hasher, codec *token.Codec, log *logger.Logger) *Service {
	meter := otel.Meter(tracerName)
	signups, _ := meter.Int64Counter("auth.signups",
		metric.WithDescription("Completed signups"))
	logins, _ := meter.Int64Counter("auth.logins",
		metric.WithDescription("Completed logins"))

	return &Service{
		store:   store,
		hasher:  hasher,
		codec:   codec,
		log:     log.WithComponent("auth"),
		tracer:  otel.Tracer(tracerName),
		signups: signups,
		logins:  logins,
	}
}

// Result is returned by Signup and Login.
type Result struct {
	User        user.Summary `json:"user"`
	AccessToken string       `json:"accessToken"`
}

// Signup creates a new identity and issues an access token for it.
// The plaintext password is hashed before any persistence and discarded.
func (s *Service) Signup(ctx context.Context, email, plaintext string, role user.Role) (*Result, error) {
	ctx, span := s.tracer.Start(ctx, "auth.Signup")
	defer span.End()

	if !role.Valid() {
		return nil, apperrors.Validation("role must be one of: student teacher")
	}
	email = NormalizeEmail(email)

	hash, err := s.hasher.Hash(plaintext)
	if err != nil {
		return nil, apperrors.Validation("password is not acceptable").WithCause(err)
	}

	u := &user.User{Email: email, PasswordHash: hash, Role: role}
	if err := s.store.Create(ctx, u); err != nil {
		if errors.Is(err, user.ErrDuplicateEmail) {
			return nil, apperrors.Conflict("user")
		}
		return nil, s.dependencyFailure(ctx, "signup", err)
	}

	accessToken, err := s.codec.IssueAccess(u.ID.String(), u.Role)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	span.SetAttributes(attribute.String("user.role", string(role)))
	s.signups.Add(ctx, 1, metric.WithAttributes(attribute.String("role", string(role))))
	s.log.Info("user signed up", logger.Fields(
		logger.FieldUserID, u.ID.String(),
		logger.FieldRole, string(u.Role),
	))

	return &Result{User: u.Summary(), AccessToken: accessToken}, nil
}

// Login verifies the credential and issues an access token. Unknown email
// and wrong password produce the identical error.
func (s *Service) Login(ctx context.Context, email, plaintext string) (*Result, error) {
	ctx, span := s.tracer.Start(ctx, "auth.Login")
	defer span.End()

	email = NormalizeEmail(email)

	u, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, apperrors.InvalidCredentials()
		}
		return nil, s.dependencyFailure(ctx, "login", err)
	}

	if err := s.hasher.Verify(plaintext, u.PasswordHash); err != nil {
		return nil, apperrors.InvalidCredentials()
	}

	accessToken, err := s.codec.IssueAccess(u.ID.String(), u.Role)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	span.SetAttributes(attribute.String("user.role", string(u.Role)))
	s.logins.Add(ctx, 1, metric.WithAttributes(attribute.String("role", string(u.Role))))
	s.log.Info("user logged in", logger.Fields(
		logger.FieldUserID, u.ID.String(),
		logger.FieldRole, string(u.Role),
	))

	return &Result{User: u.Summary(), AccessToken: accessToken}, nil
}

// Me returns the identity detail for a verified token's subject id.
func (s *Service) Me(ctx context.Context, userID string) (*user.Detail, error) {
	ctx, span := s.tracer.Start(ctx, "auth.Me")
	defer span.End()

	u, err := s.store.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, apperrors.NotFound("user")
		}
		return nil, s.dependencyFailure(ctx, "me", err)
	}

	detail := u.Detail()
	return &detail, nil
}

// dependencyFailure logs the real store error server-side and returns the
// client-safe dependency error.
func (s *Service) dependencyFailure(_ context.Context, op string, err error) error {
	s.log.Error("user store unavailable", logger.ErrorFields(op, err))
	return apperrors.Dependency("user store", err)
}

// NormalizeEmail lowercases and trims an email before lookup or creation.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
