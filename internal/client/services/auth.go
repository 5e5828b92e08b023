// Package services holds the CLI's account session: it remembers the token
// from the last login and attaches it to update and delete calls.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/usersvc/internal/client/client"
)

// AccountService is what the REPL drives.
type AccountService interface {
	Register(ctx context.Context, name, email string, password []byte) (string, error)
	Login(ctx context.Context, email string, password []byte) (*client.User, error)
	Update(ctx context.Context, p client.Profile) (string, error)
	Delete(ctx context.Context, id string) (string, error)
	Whoami() (client.User, bool)
	Logout()
	Ping(ctx context.Context) error
}

type accountService struct {
	client client.Client

	mu    sync.Mutex
	token string
	user  client.User
}

func NewAccountService(c client.Client) AccountService {
	return &accountService{client: c}
}

func (s *accountService) Register(ctx context.Context, name, email string, password []byte) (string, error) {
	r, err := s.client.Register(ctx, name, email, password)
	if err != nil {
		return "", err
	}
	return r.Message, nil
}

// Login replaces the current session on success and leaves it untouched
// otherwise.
func (s *accountService) Login(ctx context.Context, email string, password []byte) (*client.User, error) {
	sess, err := s.client.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	s.mu.Lock()
	s.token, s.user = sess.Token, sess.User
	s.mu.Unlock()

	u := sess.User
	return &u, nil
}

// Update sends the current token, which may be empty; the server decides.
// A 401 drops the session.
func (s *accountService) Update(ctx context.Context, p client.Profile) (string, error) {
	r, err := s.client.Update(ctx, s.currentToken(), p)
	if err != nil {
		s.dropOnUnauthorized(err)
		return "", err
	}

	s.mu.Lock()
	if p.Name != "" {
		s.user.Name = p.Name
	}
	if p.Email != "" {
		s.user.Email = p.Email
	}
	s.mu.Unlock()

	return r.Message, nil
}

// Delete removes account id, or the logged-in account when id is empty.
// Deleting the logged-in account ends the session.
func (s *accountService) Delete(ctx context.Context, id string) (string, error) {
	s.mu.Lock()
	token, self := s.token, s.user.ID
	s.mu.Unlock()

	if id == "" {
		if self == "" {
			return "", errors.New("not logged in: pass an id")
		}
		id = self
	}

	r, err := s.client.Delete(ctx, token, id)
	if err != nil {
		s.dropOnUnauthorized(err)
		return "", err
	}

	if id == self {
		s.Logout()
	}
	return r.Message, nil
}

func (s *accountService) Whoami() (client.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user, s.token != ""
}

func (s *accountService) Logout() {
	s.mu.Lock()
	s.token, s.user = "", client.User{}
	s.mu.Unlock()
}

func (s *accountService) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}

func (s *accountService) currentToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *accountService) dropOnUnauthorized(err error) {
	if errors.Is(err, client.ErrUnauthorized) {
		s.Logout()
	}
}
