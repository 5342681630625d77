package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/agency-portal/models"
	"github.com/golang-jwt/jwt/v5"
)

// SessionDuration is the lifetime of a session token.
const SessionDuration = 7 * 24 * time.Hour

var (
	// ErrSessionExpired is returned for a well-formed, correctly signed token
	// whose exp claim is in the past.
	ErrSessionExpired = errors.New("session expired")

	// ErrSessionInvalid is returned for any other verification failure: bad
	// signature, unexpected algorithm, wrong issuer or malformed claims.
	ErrSessionInvalid = errors.New("session invalid")
)

// GenerateSessionToken creates a signed HMAC-SHA256 session token for user.
//
// The token carries the user's id, email and name as private claims and the
// standard claims iss, sub (user id), iat (now) and exp (now + SessionDuration).
// It never carries the admin flag.
//
// Example usage:
//
//	token, err := utils.GenerateSessionToken("agency-portal", user, "secret")
func GenerateSessionToken(issuer string, user models.User, signKey string) (models.Token, error) {
	if issuer == "" || signKey == "" || user.ID <= 0 {
		return models.Token{}, errors.New("invalid params for generating session token")
	}

	now := time.Now()
	session := models.Session{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
	}
	claims := &models.SessionClaims{
		Session: session,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(user.ID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return models.Token{SignedString: tokenString, Session: session}, nil
}

// ParseSessionToken verifies tokenString and returns the session it carries.
//
// Verification includes the HS256 signature with signKey (any other
// algorithm is rejected), the issuer and the expiration. Expired tokens
// yield ErrSessionExpired, every other failure ErrSessionInvalid.
func ParseSessionToken(tokenString, signKey, issuer string) (models.Session, error) {
	claims := &models.SessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Session{}, fmt.Errorf("%w: %w", ErrSessionExpired, err)
		}
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionInvalid, err)
	}

	subject, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || subject <= 0 || subject != claims.UserID {
		return models.Session{}, fmt.Errorf("%w: subject does not match user id", ErrSessionInvalid)
	}

	return claims.Session, nil
}
