package session

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/erp/console/internal/domain/catalog"
	"github.com/erp/console/internal/infrastructure/api"
)

// ErrEmailTaken is returned when an account with the given email exists.
var ErrEmailTaken = errors.New("an account with this email already exists")

var validate = validator.New()

// Registration carries the sign-up form values.
type Registration struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Password    string
	Confirm     string
}

// Validate returns a message per invalid field, keyed by the users
// entity's UI field names. An empty map means the registration is
// well-formed.
func (r Registration) Validate() map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(r.FirstName) == "" {
		errs["first_name"] = "First name is required"
	}
	if strings.TrimSpace(r.LastName) == "" {
		errs["last_name"] = "Last name is required"
	}
	email := strings.TrimSpace(r.Email)
	if email == "" {
		errs["email"] = "Email is required"
	} else if validate.Var(email, "email") != nil {
		errs["email"] = "Email is invalid"
	}
	if r.Password == "" {
		errs["password"] = "Password is required"
	} else if len(r.Password) < 6 {
		errs["password"] = "Password must be at least 6 characters"
	}
	if r.Confirm == "" {
		errs["confirm"] = "Please confirm your password"
	} else if r.Password != r.Confirm {
		errs["confirm"] = "Passwords do not match"
	}
	return errs
}

// Register creates a user account and signs it in. The email must not
// belong to an existing account; the password is stored bcrypt-hashed
// and the new account starts active.
func Register(ctx context.Context, client *api.Client, log *zap.Logger, r Registration) (*Session, error) {
	if errs := r.Validate(); len(errs) > 0 {
		for _, msg := range errs {
			return nil, errors.New(msg)
		}
	}

	email := strings.ToLower(strings.TrimSpace(r.Email))
	users, ok := catalog.ByName("users")
	if !ok {
		return nil, errors.New("users entity not registered")
	}
	recs, err := client.List(ctx, users.Resource())
	if err != nil {
		return nil, err
	}
	for _, rec := range recs {
		if strings.ToLower(str(rec["email"])) == email {
			return nil, ErrEmailTaken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(r.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := catalog.User{
		Email:       email,
		Password:    string(hash),
		FirstName:   strings.TrimSpace(r.FirstName),
		LastName:    strings.TrimSpace(r.LastName),
		PhoneNumber: strings.TrimSpace(r.PhoneNumber),
		Status:      "active",
	}
	if err := api.CreateAs(ctx, client, users.Resource(), u); err != nil {
		return nil, err
	}
	log.Info("account registered", zap.String("email", email))

	// The backend assigns the user id, so sign in with the credentials
	// we just stored to pick it up.
	return Login(ctx, client, log, email, r.Password)
}
