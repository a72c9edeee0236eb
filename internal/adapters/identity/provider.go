// Package identity resolves bearer session tokens issued by the external identity
// provider (Clerk-compatible API) into domain identities.
//
// Session tokens are verified locally against the provider's RS256 public key;
// the user's primary email and its verification status are then read from the
// provider's backend API on every call, so verification is never trusted from
// an earlier request.
package identity

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"

	"opternportal/internal/domain"
)

const (
	defaultAPIURL   = "https://api.clerk.com"
	verifiedStatus  = "verified"
	clockSkewLeeway = 5 * time.Second
)

// ErrMissingEmail is returned when the provider user has no email address.
var ErrMissingEmail = errors.New("authenticated user does not have an email address")

// Config configures the identity provider client.
type Config struct {
	APIURL       string
	SecretKey    string
	JWTPublicKey string
	Issuer       string
}

type provider struct {
	apiURL    string
	publicKey *rsa.PublicKey
	issuer    string
	client    *http.Client
	logger    *slog.Logger
}

// NewProvider builds the process-wide identity provider client. base may be nil.
func NewProvider(cfg Config, base *http.Client, logger *slog.Logger) (domain.IdentityProvider, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(normalizePEM(cfg.JWTPublicKey)))
	if err != nil {
		return nil, fmt.Errorf("parse identity public key: %w", err)
	}
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("identity secret key is required")
	}
	apiURL := strings.TrimSuffix(cfg.APIURL, "/")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	if base == nil {
		base = &http.Client{Timeout: 10 * time.Second}
	}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.SecretKey, TokenType: "Bearer"})
	return &provider{
		apiURL:    apiURL,
		publicKey: key,
		issuer:    cfg.Issuer,
		client:    oauth2.NewClient(ctx, src),
		logger:    logger,
	}, nil
}

// normalizePEM allows keys passed through env vars with literal "\n" sequences.
func normalizePEM(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), `\n`, "\n")
}

func (p *provider) Resolve(ctx context.Context, bearerToken string) (*domain.Identity, error) {
	userID, err := p.verify(bearerToken)
	if err != nil {
		p.logger.DebugContext(ctx, "session token rejected", "err", err)
		return nil, domain.ErrUnauthorized
	}
	u, err := p.fetchUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	primary := u.primaryEmail()
	if primary == nil || strings.TrimSpace(primary.EmailAddress) == "" {
		return nil, ErrMissingEmail
	}
	return &domain.Identity{
		UserID:        userID,
		Email:         strings.TrimSpace(primary.EmailAddress),
		EmailVerified: primary.Verification != nil && primary.Verification.Status == verifiedStatus,
	}, nil
}

func (p *provider) verify(token string) (string, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(clockSkewLeeway),
	}
	if p.issuer != "" {
		opts = append(opts, jwt.WithIssuer(p.issuer))
	}
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return p.publicKey, nil
	}, opts...)
	if err != nil {
		return "", err
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", fmt.Errorf("token has no subject")
	}
	return claims.Subject, nil
}

type providerUser struct {
	ID                    string         `json:"id"`
	PrimaryEmailAddressID string         `json:"primary_email_address_id"`
	EmailAddresses        []emailAddress `json:"email_addresses"`
}

type emailAddress struct {
	ID           string        `json:"id"`
	EmailAddress string        `json:"email_address"`
	Verification *verification `json:"verification"`
}

type verification struct {
	Status string `json:"status"`
}

// primaryEmail returns the address marked primary, falling back to the first one.
func (u *providerUser) primaryEmail() *emailAddress {
	for i := range u.EmailAddresses {
		if u.EmailAddresses[i].ID == u.PrimaryEmailAddressID {
			return &u.EmailAddresses[i]
		}
	}
	if len(u.EmailAddresses) > 0 {
		return &u.EmailAddresses[0]
	}
	return nil
}

func (p *provider) fetchUser(ctx context.Context, userID string) (*providerUser, error) {
	endpoint := fmt.Sprintf("%s/v1/users/%s", p.apiURL, url.PathEscape(userID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch identity user: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrUnauthorized
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("identity api returned status: %d", resp.StatusCode)
	}

	var u providerUser
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return nil, fmt.Errorf("failed to decode identity user: %w", err)
	}
	return &u, nil
}
