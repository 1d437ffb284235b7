// Copyright (c) 2021-present Orvium (https://orvium.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package principal resolves the acting user identity from an incoming
// request's access token. The request layer uses the resolved identity to
// load the user snapshot that authorization evaluates against; a request
// without a token resolves to an anonymous visitor, not an error.
package principal

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/deep-rent/nexus/backoff"
	"github.com/deep-rent/nexus/cache"
	"github.com/deep-rent/nexus/header"
	"github.com/deep-rent/nexus/jose/jwk"
	"github.com/deep-rent/nexus/jose/jwt"
	"github.com/deep-rent/nexus/retry"

	"github.com/LedgerProject/orvium-backend/internal/logger"
)

var (
	// ErrInvalidToken indicates a token that was presented but failed
	// verification.
	ErrInvalidToken = errors.New("invalid access token")
	// ErrMissingSubject indicates a verified token without a subject claim.
	ErrMissingSubject = errors.New("undefined subject in access token")
)

// Identity is the authenticated caller extracted from an access token.
type Identity struct {
	// Sub is the identity provider's subject, the user's stable id.
	Sub string
	// Email is the verified email claim, if present.
	Email string
}

// Config controls token verification and key-set refresh.
type Config struct {
	TokenIssuers            []string
	TokenAudiences          []string
	TokenLeeway             time.Duration
	TokenMaxAge             time.Duration
	TokenAuthScheme         string
	TokenEmailClaim         string
	KeysURL                 string
	KeysUserAgent           string
	KeysTimeout             time.Duration
	KeysMinRefreshInterval  time.Duration
	KeysMaxRefreshInterval  time.Duration
	KeysBackoffMinDelay     time.Duration
	KeysBackoffMaxDelay     time.Duration
	KeysBackoffGrowthFactor float64
	KeysBackoffJitterAmount float64
	Logger                  *slog.Logger
}

// Resolver verifies bearer tokens against a cached JWKS and extracts the
// caller identity.
type Resolver struct {
	verifier   *jwt.Verifier[*jwt.DynamicClaims]
	authScheme string
	emailClaim string
	logger     *slog.Logger
}

// New creates a Resolver. The auth scheme defaults to "Bearer" and the email
// claim to "email".
func New(cfg *Config) *Resolver {
	log := cfg.Logger
	if log == nil {
		log = logger.Silent()
	}
	scheme := cfg.TokenAuthScheme
	if scheme == "" {
		scheme = "Bearer"
	}
	emailClaim := cfg.TokenEmailClaim
	if emailClaim == "" {
		emailClaim = "email"
	}
	set := jwk.NewCacheSet(
		cfg.KeysURL,
		cache.WithLogger(log),
		cache.WithTimeout(cfg.KeysTimeout),
		cache.WithMinInterval(cfg.KeysMinRefreshInterval),
		cache.WithMaxInterval(cfg.KeysMaxRefreshInterval),
		cache.WithHeader("User-Agent", cfg.KeysUserAgent),
		cache.WithRetryOptions(
			retry.WithLogger(log),
			retry.WithBackoff(backoff.New(
				backoff.WithMinDelay(cfg.KeysBackoffMinDelay),
				backoff.WithMaxDelay(cfg.KeysBackoffMaxDelay),
				backoff.WithJitterAmount(cfg.KeysBackoffJitterAmount),
				backoff.WithGrowthFactor(cfg.KeysBackoffGrowthFactor),
			)),
		),
	)
	return &Resolver{
		verifier: jwt.NewVerifier[*jwt.DynamicClaims](set).
			WithIssuers(cfg.TokenIssuers...).
			WithAudiences(cfg.TokenAudiences...).
			WithLeeway(cfg.TokenLeeway).
			WithMaxAge(cfg.TokenMaxAge),
		authScheme: scheme,
		emailClaim: emailClaim,
		logger:     log,
	}
}

// Resolve extracts and verifies the access token from the request. It
// returns a nil Identity for requests without a token: those proceed as
// anonymous visitors. A token that is present but unverifiable is an error.
func (r *Resolver) Resolve(req *http.Request) (*Identity, error) {
	token := header.Credentials(req.Header, r.authScheme)
	if token == "" {
		return nil, nil
	}
	claims, err := r.verifier.Verify([]byte(token))
	if err != nil {
		r.logger.DebugContext(
			req.Context(),
			"Token verification failed",
			slog.Any("error", err),
		)
		return nil, ErrInvalidToken
	}
	if claims.Sub == "" {
		return nil, ErrMissingSubject
	}
	email, ok := jwt.Get[string](claims, r.emailClaim)
	if !ok {
		email = ""
	}
	return &Identity{
		Sub:   claims.Sub,
		Email: email,
	}, nil
}
