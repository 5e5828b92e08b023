package models

import (
	"testing"

	"github.com/dmitrijs2005/usersvc/internal/common"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	u := NewUser("Ann", "ann@x.com", "$2a$10$hash")

	_, err := uuid.Parse(u.ID)
	require.NoError(t, err, "id must be a uuid")
	assert.Equal(t, "Ann", u.Name)
	assert.Equal(t, "ann@x.com", u.Email)
	assert.Equal(t, "$2a$10$hash", u.Password)

	other := NewUser("Ann", "ann@x.com", "$2a$10$hash")
	assert.NotEqual(t, u.ID, other.ID)
}

func TestUser_View_MasksPassword(t *testing.T) {
	u := &User{ID: "u-1", Name: "Ann", Email: "ann@x.com", Password: "$2a$10$hash"}

	v := u.View()

	assert.Equal(t, UserView{ID: "u-1", Name: "Ann", Email: "ann@x.com", Password: common.MaskedPassword}, v)
	assert.NotContains(t, v.Password, "$2a$")
}

func TestUser_View_FixedLengthMask(t *testing.T) {
	short := (&User{Password: "x"}).View()
	long := (&User{Password: "$2a$10$0123456789012345678901234567890123456789012345678901"}).View()
	assert.Equal(t, short.Password, long.Password)
}
