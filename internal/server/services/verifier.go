package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/usersvc/internal/common"
	"github.com/dmitrijs2005/usersvc/internal/server/auth"
	"github.com/dmitrijs2005/usersvc/internal/server/config"
	"github.com/dmitrijs2005/usersvc/internal/server/models"
	"github.com/dmitrijs2005/usersvc/internal/server/repositories/repomanager"
)

// TokenVerifier resolves a bearer token to the account it was issued for.
type TokenVerifier struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	jwtSecret   []byte
}

// NewTokenVerifier returns a verifier that checks tokens signed with
// cfg.SecretKey and looks accounts up through m.
func NewTokenVerifier(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *TokenVerifier {
	return &TokenVerifier{db: db, repomanager: m, jwtSecret: []byte(cfg.SecretKey)}
}

// Authenticate returns the account named by rawToken's email claim. The
// account must still carry the id the token was issued for.
//
// Every rejection wraps common.ErrorUnauthorized together with its reason:
// common.ErrMissingToken, common.ErrTokenExpired, common.ErrInvalidToken or
// common.ErrAccountNotFound. Storage failures wrap common.ErrorInternal.
func (v *TokenVerifier) Authenticate(ctx context.Context, rawToken string) (*models.User, error) {
	if rawToken == "" {
		return nil, fmt.Errorf("%w: %w", common.ErrorUnauthorized, common.ErrMissingToken)
	}

	claims, err := auth.ParseToken(rawToken, v.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorUnauthorized, err)
	}

	user, err := v.repomanager.Users(v.db).GetByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, fmt.Errorf("%w: %w", common.ErrorUnauthorized, common.ErrAccountNotFound)
		}
		return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}

	// the email was released and registered again by another account
	if user.ID != claims.UserID {
		return nil, fmt.Errorf("%w: %w", common.ErrorUnauthorized, common.ErrAccountNotFound)
	}

	return user, nil
}
