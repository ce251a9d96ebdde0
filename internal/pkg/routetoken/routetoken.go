// Package routetoken implements the capability tokens that grant drivers
// access to a single order's delivery view without a staff session.
//
// A token is a stateless signed value: nothing is persisted server-side, so
// there is no revocation list. Expiry is the only invalidation mechanism;
// rotating the signing secret invalidates every outstanding token at once.
package routetoken

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TTL is how long an issued token remains valid.
const TTL = 30 * 24 * time.Hour

var (
	// ErrMalformedToken is returned when a token does not have exactly three
	// colon-separated fields or its timestamp is not a valid integer.
	ErrMalformedToken = errors.New("route token is malformed")

	// ErrInvalidSignature is returned when a token's signature does not match
	// the payload.
	ErrInvalidSignature = errors.New("route token signature is invalid")

	// ErrExpired is returned when a token's issue time is older than TTL.
	ErrExpired = errors.New("route token is expired")
)

// Service issues and verifies route tokens with a server-held secret.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	secret  []byte
	baseURL string
}

// NewService creates a token service. The secret signs every token; baseURL
// is the driver client origin used by BuildViewURL.
func NewService(secret, baseURL string) (*Service, error) {
	if secret == "" {
		return nil, errors.New("route token secret is required")
	}
	return &Service{
		secret:  []byte(secret),
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Issue creates a token granting access to a single order's delivery view.
// The wire format is "orderID:epochMillis:signature" where the signature is
// the base64url HMAC-SHA256 of "orderID:epochMillis".
func (s *Service) Issue(orderID string, now time.Time) string {
	payload := fmt.Sprintf("%s:%d", orderID, now.UnixMilli())
	return payload + ":" + s.sign(payload)
}

// Verify checks a token and returns the order identifier it grants access to.
// The signature comparison is constant-time; the length check before it only
// guards hmac.Equal against mismatched input sizes.
func (s *Service) Verify(token string, now time.Time) (string, error) {
	parts := strings.Split(token, ":")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return "", ErrMalformedToken
	}

	orderID, timestamp, signature := parts[0], parts[1], parts[2]
	issuedMillis, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return "", ErrMalformedToken
	}

	expected := s.sign(orderID + ":" + timestamp)
	if len(expected) != len(signature) || !hmac.Equal([]byte(expected), []byte(signature)) {
		return "", ErrInvalidSignature
	}

	if now.UnixMilli()-issuedMillis > TTL.Milliseconds() {
		return "", ErrExpired
	}

	return orderID, nil
}

// BuildViewURL returns the driver-facing URL embedding the token.
func (s *Service) BuildViewURL(token string) string {
	return fmt.Sprintf("%s/driver/route?token=%s", s.baseURL, token)
}

func (s *Service) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
