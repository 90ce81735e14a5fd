package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := GenerateSessionToken(&SessionClaims{
		UserID:       42,
		Email:        "ravi@acme.example",
		MobileNumber: "9876543210",
		CompanyName:  "Acme Freight",
		UserType:     "shipper",
	}, "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ValidateSessionToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "shipper", claims.UserType)
	assert.Equal(t, "Acme Freight", claims.CompanyName)
}

func TestSessionTokenWrongSecret(t *testing.T) {
	token, err := GenerateSessionToken(&SessionClaims{UserID: 1, UserType: "shipper"}, "secret", time.Hour)
	require.NoError(t, err)

	_, err = ValidateSessionToken(token, "other-secret")
	assert.Error(t, err)
}

func TestSessionTokenExpired(t *testing.T) {
	token, err := GenerateSessionToken(&SessionClaims{UserID: 1, UserType: "shipper"}, "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateSessionToken(token, "secret")
	assert.Error(t, err)
}

func TestEmailVerificationTokenRoundTrip(t *testing.T) {
	token, err := GenerateEmailVerificationToken("ravi@acme.example", "27AAPFU0939F1ZV", "shipper", "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseEmailVerificationToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "ravi@acme.example", claims.Email)
	assert.Equal(t, "27AAPFU0939F1ZV", claims.GSTNumber)
	assert.Equal(t, "shipper", claims.UserType)
}

func TestEmailVerificationTokenGarbage(t *testing.T) {
	_, err := ParseEmailVerificationToken("not-a-token", "secret")
	assert.Error(t, err)
}
