package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/usersvc/internal/dbx"
	"github.com/dmitrijs2005/usersvc/internal/server/auth"
	"github.com/dmitrijs2005/usersvc/internal/server/config"
	"github.com/dmitrijs2005/usersvc/internal/server/models"
	"github.com/dmitrijs2005/usersvc/internal/server/repositories/users"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

// fakeUsersRepo is an in-memory repository with per-method error injection.
type fakeUsersRepo struct {
	*users.InMemoryRepository

	getByIDErr    error
	getByEmailErr error
	takenErr      error
	createErr     error
	updateErr     error
	deleteErr     error

	// foreignID makes GetByID return a record with another id
	foreignID string

	calls []string
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{InMemoryRepository: users.NewInMemoryRepository()}
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.calls = append(f.calls, "Create")
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.InMemoryRepository.Create(ctx, u)
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	f.calls = append(f.calls, "GetByID")
	if f.getByIDErr != nil {
		return nil, f.getByIDErr
	}
	u, err := f.InMemoryRepository.GetByID(ctx, id)
	if err == nil && f.foreignID != "" {
		u.ID = f.foreignID
	}
	return u, err
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	f.calls = append(f.calls, "GetByEmail")
	if f.getByEmailErr != nil {
		return nil, f.getByEmailErr
	}
	return f.InMemoryRepository.GetByEmail(ctx, email)
}

func (f *fakeUsersRepo) EmailTakenByOther(ctx context.Context, email, exceptID string) (bool, error) {
	f.calls = append(f.calls, "EmailTakenByOther")
	if f.takenErr != nil {
		return false, f.takenErr
	}
	return f.InMemoryRepository.EmailTakenByOther(ctx, email, exceptID)
}

func (f *fakeUsersRepo) Update(ctx context.Context, u *models.User) error {
	f.calls = append(f.calls, "Update")
	if f.updateErr != nil {
		return f.updateErr
	}
	return f.InMemoryRepository.Update(ctx, u)
}

func (f *fakeUsersRepo) Delete(ctx context.Context, id string) error {
	f.calls = append(f.calls, "Delete")
	if f.deleteErr != nil {
		return f.deleteErr
	}
	return f.InMemoryRepository.Delete(ctx, id)
}

func (f *fakeUsersRepo) wrote() bool {
	for _, c := range f.calls {
		if c == "Create" || c == "Update" || c == "Delete" {
			return true
		}
	}
	return false
}

type fakeRepoManager struct {
	u       *fakeUsersRepo
	handles []dbx.DBTX
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) users.Repository {
	m.handles = append(m.handles, db)
	return m.u
}

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet(), "sql expectations")
		_ = db.Close()
	})
	return db, mock
}

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:                   "test-secret",
		AccessTokenValidityDuration: time.Hour,
		BcryptCost:                  bcrypt.MinCost,
	}
}

func newUserService(t *testing.T, db *sql.DB, repo *fakeUsersRepo) (*UserService, *fakeRepoManager) {
	t.Helper()
	rm := &fakeRepoManager{u: repo}
	return NewUserService(db, rm, testConfig()), rm
}

// seedUser stores an account with a real bcrypt hash of password.
func seedUser(t *testing.T, repo *fakeUsersRepo, name, email, password string) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	u, err := repo.InMemoryRepository.Create(context.Background(), models.NewUser(name, email, hash))
	require.NoError(t, err)
	return u
}
