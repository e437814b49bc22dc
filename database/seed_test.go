package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBootstrapCreatesAdminAndSkills(t *testing.T) {
	db := NewMemory()

	require.NoError(t, Bootstrap(db, "sekrit"))

	admin, err := db.Users().FindByUsername(AdminUsername)
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.True(t, admin.IsAdmin)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("sekrit")))

	skills, err := db.Skills().FindAll()
	require.NoError(t, err)
	assert.Len(t, skills, len(defaultSkills))
	for _, s := range skills {
		assert.GreaterOrEqual(t, s.Percentage, 0)
		assert.LessOrEqual(t, s.Percentage, 100)
	}
}

func TestBootstrapIsIdempotent(t *testing.T) {
	db := NewMemory()

	require.NoError(t, Bootstrap(db, "sekrit"))
	require.NoError(t, Bootstrap(db, "other-password"))

	admin, err := db.Users().FindByUsername(AdminUsername)
	require.NoError(t, err)
	require.NotNil(t, admin)
	// the existing admin is left alone, password included
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("sekrit")))

	skills, err := db.Skills().FindAll()
	require.NoError(t, err)
	assert.Len(t, skills, len(defaultSkills))
}
