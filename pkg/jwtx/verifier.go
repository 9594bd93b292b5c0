package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates a session token and gives you back the claims if it's
// legit. Verification is pure: no state, no store lookups.
type Verifier interface {
	Verify(token string) (Claims, error)
}

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")
	ErrIssuer      = errors.New("jwtx: issuer mismatch")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
)

// HS256Verifier checks HS256 tokens against the shared secret. Any other
// signing algorithm in the token header is rejected outright, so a forged
// "none" or asymmetric token can never pass.
type HS256Verifier struct {
	secret []byte
	issuer string
	parser *jwt.Parser
}

// NewVerifierHS256 creates a verifier bound to the shared secret. An empty
// issuer disables issuer enforcement.
func NewVerifierHS256(secret []byte, issuer string) *HS256Verifier {
	return &HS256Verifier{
		secret: secret,
		issuer: issuer,
		// Claims validation happens below via Claims.ValidateExpiry so the
		// error taxonomy stays ours.
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithoutClaimsValidation(),
		),
	}
}

// Verify parses raw, checks the signature, issuer and expiry, and returns
// the embedded claims.
func (v *HS256Verifier) Verify(raw string) (Claims, error) {
	var claims Claims
	_, err := v.parser.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, ErrInvalidSig
		case errors.Is(err, jwt.ErrTokenMalformed):
			return Claims{}, ErrMalformed
		default:
			return Claims{}, ErrMalformed
		}
	}

	if err := claims.ValidateIssuer(v.issuer); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateExpiry(); err != nil {
		return Claims{}, err
	}

	return claims, nil
}
