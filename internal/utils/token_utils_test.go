package utils_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmirandadev06/dashboard-braseiro/internal/core/domain"
	"github.com/rmirandadev06/dashboard-braseiro/internal/utils"
)

const testSecret = "test-secret-key-for-tests-only"

func testUser() *domain.User {
	return &domain.User{
		UserID: "user-1",
		Name:   "Dono do Braseiro",
		Email:  "dono@braseiro.com",
		Role:   domain.RoleAdmin,
	}
}

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := utils.GenerateJWT(testUser(), testSecret, time.Hour, "dashboard-braseiro")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ParseAndValidateJWT(token, testSecret)
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
	assert.Equal(t, "Dono do Braseiro", claims.Nome)
	assert.Equal(t, "dashboard-braseiro", claims.Issuer)
}

func TestParseAndValidateJWT_WrongSecret(t *testing.T) {
	token, err := utils.GenerateJWT(testUser(), testSecret, time.Hour, "dashboard-braseiro")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, "another-secret")

	require.Error(t, err)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestParseAndValidateJWT_Expired(t *testing.T) {
	token, err := utils.GenerateJWT(testUser(), testSecret, -time.Minute, "dashboard-braseiro")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, testSecret)

	require.Error(t, err)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseAndValidateJWT_Garbage(t *testing.T) {
	claims, err := utils.ParseAndValidateJWT("not.a.token", testSecret)

	require.Error(t, err)
	assert.Nil(t, claims)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := utils.HashPassword("senha123")
	require.NoError(t, err)
	assert.NotEqual(t, "senha123", hash)

	assert.True(t, utils.CheckPasswordHash("senha123", hash))
	assert.False(t, utils.CheckPasswordHash("errada", hash))
}
