package helpers

import (
	"strings"
	"sync"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-for-token-service"

func TestTokenService_IssueAndVerify(t *testing.T) {
	t.Parallel()
	svc := NewTokenService(testSecret)

	tok, err := svc.Issue("user-123")
	require.NoError(t, err)
	assert.Len(t, strings.Split(tok, "."), 3)

	sub, err := svc.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-123", sub)
}

func TestTokenService_IssueIsDeterministic(t *testing.T) {
	t.Parallel()
	svc := NewTokenService(testSecret)

	a, err := svc.Issue("u1")
	require.NoError(t, err)
	b, err := svc.Issue("u1")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := svc.Issue("u2")
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestTokenService_PayloadShape(t *testing.T) {
	t.Parallel()
	svc := NewTokenService(testSecret)

	tok, err := svc.Issue("abc")
	require.NoError(t, err)

	parsed, _, err := jwt.NewParser().ParseUnverified(tok, jwt.MapClaims{})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	user, ok := claims["user"].(map[string]any)
	require.True(t, ok, "expected user object in payload")
	assert.Equal(t, "abc", user["id"])
	_, hasExp := claims["exp"]
	assert.False(t, hasExp)
}

func TestTokenService_IssueEmptySubject(t *testing.T) {
	t.Parallel()
	_, err := NewTokenService(testSecret).Issue("")
	assert.ErrorIs(t, err, ErrMissingSubject)
}

func TestTokenService_TamperedSignature(t *testing.T) {
	t.Parallel()
	svc := NewTokenService(testSecret)
	tok, err := svc.Issue("user-1")
	require.NoError(t, err)

	tampered := tok[:len(tok)-5] + "XXXXX"
	_, err = svc.Verify(tampered)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestTokenService_TamperedPayload(t *testing.T) {
	t.Parallel()
	svc := NewTokenService(testSecret)
	victim, err := svc.Issue("victim")
	require.NoError(t, err)
	attacker, err := svc.Issue("attacker")
	require.NoError(t, err)

	// attacker's signature on victim's payload
	v := strings.Split(victim, ".")
	a := strings.Split(attacker, ".")
	forged := v[0] + "." + v[1] + "." + a[2]

	_, err = svc.Verify(forged)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestTokenService_WrongSecret(t *testing.T) {
	t.Parallel()
	tok, err := NewTokenService("right-secret").Issue("u2")
	require.NoError(t, err)

	_, err = NewTokenService("wrong-secret").Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestTokenService_Malformed(t *testing.T) {
	t.Parallel()
	svc := NewTokenService(testSecret)

	for _, in := range []string{"", "not-a-jwt", "not.a.jwt", "a.b", "%%%.%%%.%%%"} {
		_, err := svc.Verify(in)
		assert.ErrorIs(t, err, ErrMalformedToken, "input %q", in)
	}
}

func TestTokenService_NoneAlgorithmRejected(t *testing.T) {
	t.Parallel()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"user": map[string]string{"id": "admin"},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenService(testSecret).Verify(tok)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMissingSubject)
}

func TestTokenService_MissingSubject(t *testing.T) {
	t.Parallel()
	secret := []byte(testSecret)

	cases := map[string]jwt.MapClaims{
		"no user":    {"foo": "bar"},
		"empty user": {"user": map[string]string{}},
		"empty id":   {"user": map[string]string{"id": ""}},
	}
	for name, claims := range cases {
		tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
		require.NoError(t, err, name)

		_, err = NewTokenService(testSecret).Verify(tok)
		assert.ErrorIs(t, err, ErrMissingSubject, name)
	}
}

func TestTokenService_ConcurrentVerify(t *testing.T) {
	t.Parallel()
	svc := NewTokenService(testSecret)
	tok, err := svc.Issue("shared")
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Verify(tok); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("verify: %v", err)
	}
}
