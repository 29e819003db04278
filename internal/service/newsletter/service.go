package newsletter

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"

	"perfume-storefront/internal/domain"
	newsletterrepo "perfume-storefront/internal/repository/newsletter"

	"github.com/go-playground/validator/v10"
)

var ErrInvalidEmail = errors.New("invalid email")

type Service struct {
	repo     newsletterrepo.Repository
	validate *validator.Validate
	logger   *log.Logger
}

func New(repo newsletterrepo.Repository, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{repo: repo, validate: validator.New(), logger: logger}
}

// Result reports a signup. AlreadySubscribed is set, with no error, when the
// email was on file before.
type Result struct {
	Email             string `json:"email"`
	AlreadySubscribed bool   `json:"alreadySubscribed"`
}

// Subscribe validates the email before any store call and records it.
func (s *Service) Subscribe(ctx context.Context, email string) (*Result, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := s.validate.Var(email, "required,email"); err != nil {
		return nil, ErrInvalidEmail
	}

	_, err := s.repo.Create(ctx, email)
	switch {
	case errors.Is(err, domain.ErrAlreadySubscribed):
		return &Result{Email: email, AlreadySubscribed: true}, nil
	case err != nil:
		s.logger.Printf("newsletter service: subscribe error=%v", err)
		return nil, err
	}
	return &Result{Email: email}, nil
}
