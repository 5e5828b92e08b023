// Package services contains the server-side business logic: the account
// operations of UserService and the bearer token check of TokenVerifier.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/usersvc/internal/common"
	"github.com/dmitrijs2005/usersvc/internal/dbx"
	"github.com/dmitrijs2005/usersvc/internal/server/auth"
	"github.com/dmitrijs2005/usersvc/internal/server/config"
	"github.com/dmitrijs2005/usersvc/internal/server/models"
	"github.com/dmitrijs2005/usersvc/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/usersvc/internal/server/repositories/users"
)

// seams for tests
var (
	hashPassword  = auth.HashPassword
	checkPassword = auth.CheckPassword
	generateToken = auth.GenerateToken
)

// RegisterInput is a validated registration request.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput is a login request.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateInput is a partial profile change. Empty fields are left alone.
type UpdateInput struct {
	Name     string
	Email    string
	Password string
}

// IsEmpty reports whether p asks for no change at all.
func (p UpdateInput) IsEmpty() bool {
	return p.Name == "" && p.Email == "" && p.Password == ""
}

// LoginResult carries the token and masked user on OutcomeAuthenticated.
type LoginResult struct {
	Outcome Outcome
	Token   string
	User    *models.UserView
}

// UserService implements registration, login, update and deletion of
// accounts. Only the account itself may update or delete it.
type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	bcryptCost                  int
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		bcryptCost:                  cfg.BcryptCost,
	}
}

// Register creates an account unless the email is already registered.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (Outcome, error) {
	repo := s.repomanager.Users(s.db)

	_, err := repo.GetByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return OutcomeConflict, nil
	case !errors.Is(err, common.ErrorNotFound):
		return "", fmt.Errorf("error checking email: %w", err)
	}

	hash, err := hashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	if _, err := repo.Create(ctx, models.NewUser(in.Name, in.Email, hash)); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return OutcomeConflict, nil
		}
		return "", fmt.Errorf("error creating user: %w", err)
	}

	return OutcomeCreated, nil
}

// Login checks the credentials and, when they match, issues an access token.
func (s *UserService) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return &LoginResult{Outcome: OutcomeNotFound}, nil
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	ok, err := checkPassword(user.Password, in.Password)
	if err != nil {
		return nil, fmt.Errorf("error checking password: %w", err)
	}
	if !ok {
		return &LoginResult{Outcome: OutcomeInvalidCredentials}, nil
	}

	token, err := generateToken(auth.Identity{ID: user.ID, Name: user.Name, Email: user.Email},
		s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	view := user.View()
	return &LoginResult{Outcome: OutcomeAuthenticated, Token: token, User: &view}, nil
}

// Update applies patch to the acting account.
//
// The lookup, the ownership and email checks, and the write run in one
// transaction; a unique violation on write still yields OutcomeConflict.
func (s *UserService) Update(ctx context.Context, acting *models.User, patch UpdateInput) (Outcome, error) {
	if patch.IsEmpty() {
		return OutcomeNoChangeRequested, nil
	}

	var outcome Outcome
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		outcome, err = s.update(ctx, s.repomanager.Users(tx), acting, patch)
		return err
	})

	switch {
	case err == nil:
		return outcome, nil
	case errors.Is(err, common.ErrorAlreadyExists):
		return OutcomeConflict, nil
	case errors.Is(err, common.ErrorNotFound):
		return OutcomeNotFound, nil
	default:
		return "", fmt.Errorf("error updating user: %w", err)
	}
}

func (s *UserService) update(ctx context.Context, repo users.Repository, acting *models.User, patch UpdateInput) (Outcome, error) {
	current, err := repo.GetByID(ctx, acting.ID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return OutcomeNotFound, nil
		}
		return "", err
	}

	if current.ID != acting.ID {
		return OutcomeEditForbidden, nil
	}

	if patch.Email != "" && patch.Email != current.Email {
		taken, err := repo.EmailTakenByOther(ctx, patch.Email, acting.ID)
		if err != nil {
			return "", err
		}
		if taken {
			return OutcomeConflict, nil
		}
		current.Email = patch.Email
	}

	if patch.Name != "" {
		current.Name = patch.Name
	}

	if patch.Password != "" {
		hash, err := hashPassword(patch.Password, s.bcryptCost)
		if err != nil {
			return "", fmt.Errorf("error hashing password: %w", err)
		}
		current.Password = hash
	}

	// a failed statement aborts the transaction, so errors from the write are
	// returned as-is and mapped by the caller after rollback
	if err := repo.Update(ctx, current); err != nil {
		return "", err
	}

	return OutcomeAccepted, nil
}

// Delete removes the account targetID, which must be the acting account.
func (s *UserService) Delete(ctx context.Context, acting *models.User, targetID string) (Outcome, error) {
	if targetID != acting.ID {
		return OutcomeDeleteForbidden, nil
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)
		if _, err := repo.GetByID(ctx, targetID); err != nil {
			return err
		}
		return repo.Delete(ctx, targetID)
	})

	switch {
	case err == nil:
		return OutcomeDeleted, nil
	case errors.Is(err, common.ErrorNotFound):
		return OutcomeNotFound, nil
	default:
		return "", fmt.Errorf("error deleting user: %w", err)
	}
}
