// Package auth resolves the bearer token on a request to the internal owner id.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage/user"
)

// IdentityProvider turns a bearer token into an owner id. It returns
// ledger.ErrUnauthenticated for any token it does not accept.
type IdentityProvider interface {
	Resolve(ctx context.Context, bearerToken string) (uuid.UUID, error)
}

// Claims are the token claims read by JWTProvider.
type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

var _ IdentityProvider = (*JWTProvider)(nil)

// JWTProvider verifies HS256 tokens and maps their subject onto a user row.
type JWTProvider struct {
	secret    []byte
	directory user.IDirectory
	parser    *jwt.Parser
}

type Option func(*options)

type options struct {
	issuer   string
	audience string
}

// WithIssuer requires the iss claim to equal issuer. Empty disables the check.
func WithIssuer(issuer string) Option {
	return func(o *options) { o.issuer = issuer }
}

// WithAudience requires audience in the aud claim. Empty disables the check.
func WithAudience(audience string) Option {
	return func(o *options) { o.audience = audience }
}

func NewJWTProvider(secret string, directory user.IDirectory, opts ...Option) (*JWTProvider, error) {
	if secret == "" {
		return nil, errors.New("auth: empty jwt secret")
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if o.issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(o.issuer))
	}
	if o.audience != "" {
		parserOpts = append(parserOpts, jwt.WithAudience(o.audience))
	}

	return &JWTProvider{
		secret:    []byte(secret),
		directory: directory,
		parser:    jwt.NewParser(parserOpts...),
	}, nil
}

func (p *JWTProvider) Resolve(ctx context.Context, bearerToken string) (uuid.UUID, error) {
	bearerToken = strings.TrimSpace(bearerToken)
	if bearerToken == "" {
		return uuid.Nil, ledger.ErrUnauthenticated
	}

	claims := new(Claims)
	token, err := p.parser.ParseWithClaims(bearerToken, claims, func(*jwt.Token) (any, error) {
		return p.secret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, fmt.Errorf("%w: %v", ledger.ErrUnauthenticated, err)
	}
	if claims.Subject == "" {
		return uuid.Nil, fmt.Errorf("%w: missing subject", ledger.ErrUnauthenticated)
	}

	ownerID, err := p.directory.Ensure(ctx, claims.Subject, claims.Email)
	if err != nil {
		return uuid.Nil, ledger.WrapStorage(ledger.StageFetch, err)
	}
	return ownerID, nil
}
