package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the signed session embedded in the Authorization header.
type SessionClaims struct {
	UserID       uint   `json:"id"`
	Email        string `json:"email,omitempty"`
	MobileNumber string `json:"mobileNumber,omitempty"`
	CompanyName  string `json:"companyName,omitempty"`
	UserType     string `json:"userType"`
	jwt.RegisteredClaims
}

func GenerateSessionToken(claims *SessionClaims, secret string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ValidateSessionToken(tokenString, secret string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	return claims, nil
}

// EmailVerificationClaims is the payload of an email verification link.
type EmailVerificationClaims struct {
	Email     string `json:"email"`
	GSTNumber string `json:"gstNumber"`
	UserType  string `json:"userType"`
	jwt.RegisteredClaims
}

func GenerateEmailVerificationToken(email, gstNumber, userType, secret string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := &EmailVerificationClaims{
		Email:     email,
		GSTNumber: gstNumber,
		UserType:  userType,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseEmailVerificationToken(tokenString, secret string) (*EmailVerificationClaims, error) {
	claims := &EmailVerificationClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	return claims, nil
}
