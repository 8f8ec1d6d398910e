// Package session authenticates the console user against the backend's
// user accounts.
package session

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/erp/console/internal/domain/catalog"
	"github.com/erp/console/internal/infrastructure/api"
)

// ErrBadCredentials is returned for an unknown email or a wrong password.
// Both cases share one message so the login screen does not reveal which
// accounts exist.
var ErrBadCredentials = errors.New("invalid email or password")

// ErrInactive is returned when the account exists but is not active.
var ErrInactive = errors.New("account is inactive")

// Session is an authenticated console user.
type Session struct {
	UserID    int
	Email     string
	FirstName string
	LastName  string
}

// DisplayName renders the user for the status bar.
func (s *Session) DisplayName() string {
	name := strings.TrimSpace(s.FirstName + " " + s.LastName)
	if name == "" {
		return s.Email
	}
	return name
}

// Login fetches the user accounts and checks the credentials locally. Email
// matching is case-insensitive. Stored passwords are bcrypt hashes; a
// legacy plaintext value is compared directly so pre-migration rows still
// work.
func Login(ctx context.Context, client *api.Client, log *zap.Logger, email, password string) (*Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrBadCredentials
	}

	users, ok := catalog.ByName("users")
	if !ok {
		return nil, errors.New("users entity not registered")
	}
	recs, err := client.List(ctx, users.Resource())
	if err != nil {
		return nil, err
	}

	for _, rec := range recs {
		if strings.ToLower(str(rec["email"])) != email {
			continue
		}
		if !passwordMatches(str(rec["password"]), password) {
			log.Info("login rejected", zap.String("email", email))
			return nil, ErrBadCredentials
		}
		if !strings.EqualFold(str(rec["status"]), "active") {
			return nil, ErrInactive
		}
		s := &Session{
			UserID:    users.ID(rec),
			Email:     str(rec["email"]),
			FirstName: str(rec["first_name"]),
			LastName:  str(rec["last_name"]),
		}
		log.Info("login accepted", zap.String("email", s.Email), zap.Int("user_id", s.UserID))
		return s, nil
	}
	return nil, ErrBadCredentials
}

func passwordMatches(stored, given string) bool {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	return stored != "" && stored == given
}

func str(v any) string {
	s, _ := v.(string)
	return s
}
