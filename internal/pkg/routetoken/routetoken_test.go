package routetoken_test

import (
	"strings"
	"testing"
	"time"

	"dispatch/internal/pkg/routetoken"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *routetoken.Service {
	t.Helper()
	svc, err := routetoken.NewService("test-secret", "https://shop.example.com")
	require.NoError(t, err)
	return svc
}

func TestNewService(t *testing.T) {
	t.Run("requires a secret", func(t *testing.T) {
		_, err := routetoken.NewService("", "https://shop.example.com")
		require.Error(t, err)
	})

	t.Run("trims trailing slash from base URL", func(t *testing.T) {
		svc, err := routetoken.NewService("s", "https://shop.example.com/")
		require.NoError(t, err)
		assert.Equal(t, "https://shop.example.com/driver/route?token=abc", svc.BuildViewURL("abc"))
	})
}

func TestService_RoundTrip(t *testing.T) {
	svc := newTestService(t)
	now := time.Now()

	token := svc.Issue("550e8400-e29b-41d4-a716-446655440000", now)

	orderID, err := svc.Verify(token, now)
	require.NoError(t, err)
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", orderID)
}

func TestService_Verify_Expiry(t *testing.T) {
	svc := newTestService(t)
	issuedAt := time.Now()
	token := svc.Issue("order-1", issuedAt)

	t.Run("valid at the TTL boundary", func(t *testing.T) {
		_, err := svc.Verify(token, issuedAt.Add(routetoken.TTL))
		require.NoError(t, err)
	})

	t.Run("expired one millisecond past the TTL", func(t *testing.T) {
		_, err := svc.Verify(token, issuedAt.Add(routetoken.TTL+time.Millisecond))
		require.ErrorIs(t, err, routetoken.ErrExpired)
	})
}

func TestService_Verify_Malformed(t *testing.T) {
	svc := newTestService(t)
	now := time.Now()

	testCases := []struct {
		name  string
		token string
	}{
		{name: "empty token", token: ""},
		{name: "missing signature", token: "order-1:1700000000000"},
		{name: "missing fields", token: "order-1"},
		{name: "empty signature field", token: "order-1:1700000000000:"},
		{name: "timestamp is not an integer", token: "order-1:yesterday:c2ln"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Verify(tc.token, now)
			require.ErrorIs(t, err, routetoken.ErrMalformedToken)
		})
	}
}

func TestService_Verify_TamperedSignature(t *testing.T) {
	svc := newTestService(t)
	now := time.Now()
	token := svc.Issue("order-1", now)

	lastColon := strings.LastIndex(token, ":")
	payload, signature := token[:lastColon], token[lastColon+1:]

	// Flipping any character of the signature must be rejected.
	for i := range signature {
		flipped := []byte(signature)
		if flipped[i] == 'A' {
			flipped[i] = 'B'
		} else {
			flipped[i] = 'A'
		}

		_, err := svc.Verify(payload+":"+string(flipped), now)
		require.ErrorIs(t, err, routetoken.ErrInvalidSignature, "signature byte %d", i)
	}
}

func TestService_Verify_WrongSecret(t *testing.T) {
	issuer, err := routetoken.NewService("secret-a", "https://shop.example.com")
	require.NoError(t, err)
	verifier, err := routetoken.NewService("secret-b", "https://shop.example.com")
	require.NoError(t, err)

	token := issuer.Issue("order-1", time.Now())

	_, verifyErr := verifier.Verify(token, time.Now())
	require.ErrorIs(t, verifyErr, routetoken.ErrInvalidSignature)
}
