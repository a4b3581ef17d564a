package service

import (
	"testing"
	"time"

	"landivo-be/internal/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashToken(t *testing.T) {
	// Refresh tokens are stored hashed; the same raw value must always map
	// to the same digest or lookups break.
	a := hashToken("some-refresh-token")
	b := hashToken("some-refresh-token")
	assert.Equal(t, a, b)
	assert.Len(t, a, 64) // sha256 hex

	assert.NotEqual(t, a, hashToken("another-refresh-token"))
}

func TestSignAccessToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")

	user := &entity.User{
		Id:        uuid.New(),
		Email:     "agent@landivo.local",
		FirstName: "Dana",
		LastName:  "Whitfield",
		Role:      entity.UserRoleAdmin,
	}
	expiresAt := time.Now().Add(time.Hour)

	signed, err := signAccessToken(user, expiresAt)
	require.NoError(t, err)

	parsed, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("test_secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, user.Id.String(), claims["user_id"])
	assert.Equal(t, "admin", claims["role"])
	assert.Equal(t, "agent@landivo.local", claims["email"])
	assert.Equal(t, "Dana Whitfield", claims["name"])
	assert.Equal(t, float64(expiresAt.Unix()), claims["exp"])
}
