package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseWith(t *testing.T, tokenString string, key []byte) (*Claims, error) {
	t.Helper()
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return key, nil
	})
	return claims, err
}

// A secret installed from configuration must be the key tokens are
// actually signed with. The published default must stop verifying as
// soon as a real secret is set.
func TestSetKeyConfiguredSecretSignsTokens(t *testing.T) {
	t.Cleanup(func() { jwtKey = []byte("default_secret_key") })

	SetKey("real_secret_from_dotenv")

	tokenString, err := GenerateToken(7, "asha@example.com", true)
	require.NoError(t, err)

	claims, err := parseWith(t, tokenString, []byte("real_secret_from_dotenv"))
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "asha@example.com", claims.Email)
	assert.True(t, claims.IsStaff)

	_, err = parseWith(t, tokenString, []byte("default_secret_key"))
	assert.Error(t, err)

	// ValidateToken uses the installed key too.
	claims, err = ValidateToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
}

func TestSetKeyEmptyKeepsDefault(t *testing.T) {
	t.Cleanup(func() { jwtKey = []byte("default_secret_key") })

	SetKey("")

	tokenString, err := GenerateToken(3, "ravi@example.com", false)
	require.NoError(t, err)

	_, err = parseWith(t, tokenString, []byte("default_secret_key"))
	assert.NoError(t, err)
}
