package auth

import (
	"context"
	"crypto"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// SigningAlgorithm is the only algorithm accepted for cliente API tokens
const SigningAlgorithm = "EdDSA"

type claimsCtxKey struct{}

// JwtClaims represents JWT claims
type JwtClaims struct {
	jwt.RegisteredClaims
}

// Jwt represents signed jwt and unix expires at
type Jwt struct {
	Signed    string
	ExpiresAt int64
}

// WithClaims stores verified claims in context
func WithClaims(ctx context.Context, claims JwtClaims) context.Context {
	return context.WithValue(ctx, claimsCtxKey{}, claims)
}

// ClaimsFromContext returns claims verified for current request
func ClaimsFromContext(ctx context.Context) (JwtClaims, bool) {
	claims, ok := ctx.Value(claimsCtxKey{}).(JwtClaims)
	return claims, ok
}

// JwtIssuer issues jwt according to config
type JwtIssuer struct {
	issuer     string
	method     jwt.SigningMethod
	timeToLive time.Duration
	privateKey crypto.PrivateKey
}

// NewJwtIssuer builds JwtIssuer
func NewJwtIssuer(issuer string, ttl time.Duration, key crypto.PrivateKey) *JwtIssuer {
	return &JwtIssuer{
		issuer:     issuer,
		method:     jwt.GetSigningMethod(SigningAlgorithm),
		timeToLive: ttl,
		privateKey: key,
	}
}

// Sign issues new jwt for subject
func (j *JwtIssuer) Sign(subj string, issuedAt time.Time) (*Jwt, error) {
	expiresAt := issuedAt.Add(j.timeToLive)

	claims := JwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    j.issuer,
			Subject:   subj,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
	}

	signed, err := jwt.NewWithClaims(j.method, claims).SignedString(j.privateKey)
	if err != nil {
		return nil, err
	}

	return &Jwt{Signed: signed, ExpiresAt: expiresAt.Unix()}, nil
}

// JwtValidator verifies jwt signature, expiration and issuer
type JwtValidator struct {
	issuer    string
	publicKey crypto.PublicKey
}

// NewJwtValidator builds new JwtValidator, empty issuer accepts tokens of any issuer
func NewJwtValidator(issuer string, key crypto.PublicKey) *JwtValidator {
	return &JwtValidator{issuer: issuer, publicKey: key}
}

// Verify checks if jwt valid
func (j *JwtValidator) Verify(rawToken string) (JwtClaims, error) {
	var claims JwtClaims
	if _, err := jwt.ParseWithClaims(rawToken, &claims, j.keyFunc); err != nil {
		return JwtClaims{}, err
	}

	if j.issuer != "" && !claims.VerifyIssuer(j.issuer, true) {
		return JwtClaims{}, fmt.Errorf("token issued by unexpected issuer %q", claims.Issuer)
	}
	return claims, nil
}

func (j *JwtValidator) keyFunc(token *jwt.Token) (any, error) {
	if token.Method.Alg() != SigningAlgorithm {
		return nil, errors.New("failed to verify signing algorithm")
	}
	return j.publicKey, nil
}

// LoadPrivateKey reads Ed25519 private key from PEM file
func LoadPrivateKey(path string) (crypto.PrivateKey, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key file for jwt - %w", err)
	}

	key, err := jwt.ParseEdPrivateKeyFromPEM(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key for jwt - %w", err)
	}
	return key, nil
}

// LoadPublicKey reads Ed25519 public key from PEM file
func LoadPublicKey(path string) (crypto.PublicKey, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read public key file for jwt - %w", err)
	}

	key, err := jwt.ParseEdPublicKeyFromPEM(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key for jwt - %w", err)
	}
	return key, nil
}
