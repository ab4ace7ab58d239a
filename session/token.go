package session

import (
	"context"
	"fmt"
	"time"

	"github.com/auth0/go-jwt-middleware/v2/validator"
	jose "gopkg.in/go-jose/go-jose.v2"
	josejwt "gopkg.in/go-jose/go-jose.v2/jwt"
)

// Access-token parameters for configured-backend mode. Tokens are HS256 JWTs
// signed with the backend API key, so the backend's own tooling can validate
// sessions issued here and vice versa.
const (
	tokenIssuer   = "https://storefront-api.local/"
	tokenAudience = "storefront-api"
	tokenTTL      = 24 * time.Hour
)

// signToken issues a signed access token for the given user ID
func signToken(secret, userID string) (string, error) {
	signer, err := jose.NewSigner(
		jose.SigningKey{Algorithm: jose.HS256, Key: []byte(secret)},
		(&jose.SignerOptions{}).WithType("JWT"),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create token signer: %w", err)
	}

	now := time.Now()
	claims := josejwt.Claims{
		Subject:  userID,
		Issuer:   tokenIssuer,
		Audience: josejwt.Audience{tokenAudience},
		IssuedAt: josejwt.NewNumericDate(now),
		Expiry:   josejwt.NewNumericDate(now.Add(tokenTTL)),
	}

	raw, err := josejwt.Signed(signer).Claims(claims).CompactSerialize()
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return raw, nil
}

// newTokenValidator builds a validator for tokens signed with signToken
func newTokenValidator(secret string) (*validator.Validator, error) {
	return validator.New(
		func(ctx context.Context) (interface{}, error) {
			return []byte(secret), nil
		},
		validator.HS256,
		tokenIssuer,
		[]string{tokenAudience},
		validator.WithAllowedClockSkew(time.Minute),
	)
}

// tokenSubject validates raw and returns its subject claim (the user ID)
func tokenSubject(ctx context.Context, v *validator.Validator, raw string) (string, error) {
	claims, err := v.ValidateToken(ctx, raw)
	if err != nil {
		return "", err
	}
	validated, ok := claims.(*validator.ValidatedClaims)
	if !ok {
		return "", fmt.Errorf("unexpected claims type %T", claims)
	}
	return validated.RegisteredClaims.Subject, nil
}
