package jwtx

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testIssuer = "storefront-test"

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func newTestPair(t *testing.T) (*HS256Signer, *HS256Verifier) {
	t.Helper()
	signer, err := NewSignerHS256(testSecret)
	require.NoError(t, err)
	return signer, NewVerifierHS256(testSecret, testIssuer)
}

func TestNewSignerHS256_WeakSecret(t *testing.T) {
	_, err := NewSignerHS256(nil)
	require.ErrorIs(t, err, ErrWeakSecret)

	_, err = NewSignerHS256([]byte("short"))
	require.ErrorIs(t, err, ErrWeakSecret)
}

func TestSignVerify_RoundTrip(t *testing.T) {
	signer, verifier := newTestPair(t)

	claims := NewSessionClaims("user-1", "alice", testIssuer, DefaultSessionTokenTTL, time.Now())
	token, err := signer.Sign(claims)
	require.NoError(t, err)
	require.Equal(t, 3, len(strings.Split(token, ".")), "compact JWS has three segments")

	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", got.Subject)
	require.Equal(t, "alice", got.Username)
	require.Equal(t, testIssuer, got.Issuer)
	require.WithinDuration(t,
		got.IssuedAt.Add(DefaultSessionTokenTTL), got.ExpiresAt.Time, time.Second)
}

func TestVerify_TamperedSignature(t *testing.T) {
	signer, verifier := newTestPair(t)

	claims := NewSessionClaims("user-1", "alice", testIssuer, DefaultSessionTokenTTL, time.Now())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	// Flip the first signature character; every bit of it is covered by the
	// decoded signature bytes.
	parts := strings.Split(token, ".")
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = verifier.Verify(tampered)
	require.ErrorIs(t, err, ErrInvalidSig)
}

func TestVerify_TamperedPayload(t *testing.T) {
	signer, verifier := newTestPair(t)

	claims := NewSessionClaims("user-1", "alice", testIssuer, DefaultSessionTokenTTL, time.Now())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	// Swap the payload for one claiming a different subject; the signature
	// no longer covers it.
	other, err := signer.Sign(
		NewSessionClaims("user-2", "mallory", testIssuer, DefaultSessionTokenTTL, time.Now()))
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	otherParts := strings.Split(other, ".")
	spliced := parts[0] + "." + otherParts[1] + "." + parts[2]

	_, err = verifier.Verify(spliced)
	require.ErrorIs(t, err, ErrInvalidSig)
}

func TestVerify_WrongSecret(t *testing.T) {
	signer, _ := newTestPair(t)
	verifier := NewVerifierHS256([]byte("another-secret-another-secret!!!"), testIssuer)

	token, err := signer.Sign(
		NewSessionClaims("user-1", "alice", testIssuer, DefaultSessionTokenTTL, time.Now()))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrInvalidSig)
}

func TestVerify_Expired(t *testing.T) {
	signer, verifier := newTestPair(t)

	// Zero and negative TTLs produce tokens that are already expired.
	for _, ttl := range []time.Duration{0, -time.Minute} {
		token, err := signer.Sign(
			NewSessionClaims("user-1", "alice", testIssuer, ttl, time.Now().Add(-time.Second)))
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		require.ErrorIs(t, err, ErrExpired)
	}
}

func TestVerify_NotYetValid(t *testing.T) {
	signer, verifier := newTestPair(t)

	token, err := signer.Sign(
		NewSessionClaims("user-1", "alice", testIssuer, time.Hour, time.Now().Add(time.Hour)))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrNotYetValid)
}

func TestVerify_IssuerMismatch(t *testing.T) {
	signer, verifier := newTestPair(t)

	token, err := signer.Sign(
		NewSessionClaims("user-1", "alice", "someone-else", DefaultSessionTokenTTL, time.Now()))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrIssuer)
}

func TestVerify_Malformed(t *testing.T) {
	_, verifier := newTestPair(t)

	for _, raw := range []string{"", "garbage", "a.b", "a.b.c.d", "not.a.jwt"} {
		_, err := verifier.Verify(raw)
		require.ErrorIs(t, err, ErrMalformed, "input %q", raw)
	}
}

func TestVerify_RejectsOtherAlgorithms(t *testing.T) {
	_, verifier := newTestPair(t)

	claims := NewSessionClaims("user-1", "alice", testIssuer, DefaultSessionTokenTTL, time.Now())

	// HS512 signed with the right secret still fails the method allow-list.
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	signed, err := token.SignedString(testSecret)
	require.NoError(t, err)

	_, err = verifier.Verify(signed)
	require.Error(t, err)

	// alg=none is never acceptable.
	noneToken := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	signedNone, err := noneToken.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = verifier.Verify(signedNone)
	require.Error(t, err)
}
