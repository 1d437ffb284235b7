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

package principal_test

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/deep-rent/nexus/jose/jwa"
	"github.com/deep-rent/nexus/jose/jwk"
	"github.com/deep-rent/nexus/jose/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LedgerProject/orvium-backend/internal/logger"
	"github.com/LedgerProject/orvium-backend/internal/principal"
)

func TestResolverResolve(t *testing.T) {
	secretKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	keyID := "test"

	sharedKey := jwk.NewKeyBuilder(jwa.ES256).
		WithKeyID(keyID).
		Build(&secretKey.PublicKey)

	keyPair := jwk.NewKeyBuilder(jwa.ES256).
		WithKeyID(keyID).
		BuildPair(secretKey)

	bytes, err := jwk.WriteSet(jwk.Singleton(sharedKey))
	require.NoError(t, err)

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write(bytes)
	})
	s := httptest.NewServer(h)
	defer s.Close()

	r := principal.New(&principal.Config{
		TokenIssuers:            []string{"https://issuer.example.com"},
		TokenAudiences:          []string{"orvium-api"},
		KeysURL:                 s.URL,
		KeysUserAgent:           "Orvium-Test",
		KeysTimeout:             1 * time.Second,
		KeysMinRefreshInterval:  1 * time.Minute,
		KeysMaxRefreshInterval:  1 * time.Hour,
		KeysBackoffMinDelay:     10 * time.Millisecond,
		KeysBackoffMaxDelay:     50 * time.Millisecond,
		KeysBackoffGrowthFactor: 2.0,
		KeysBackoffJitterAmount: 0.1,
		Logger:                  logger.Silent(),
	})

	createToken := func(claims any) string {
		token, err := jwt.Sign(keyPair, claims)
		require.NoError(t, err)
		return string(token)
	}

	warmup := createToken(map[string]any{
		"sub": "warmup",
		"iss": "https://issuer.example.com",
		"aud": "orvium-api",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	require.Eventually(t, func() bool {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer "+warmup)
		id, err := r.Resolve(req)
		return err == nil && id != nil
	},
		2*time.Second,
		50*time.Millisecond,
		"Resolver failed to load keys from mock server",
	)

	t.Run("resolves subject and email", func(t *testing.T) {
		token := createToken(map[string]any{
			"sub":   "auth0|alice",
			"iss":   "https://issuer.example.com",
			"aud":   "orvium-api",
			"exp":   time.Now().Add(time.Hour).Unix(),
			"email": "alice@example.com",
		})
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		id, err := r.Resolve(req)
		require.NoError(t, err)
		require.NotNil(t, id)
		assert.Equal(t, "auth0|alice", id.Sub)
		assert.Equal(t, "alice@example.com", id.Email)
	})

	t.Run("missing email claim is not an error", func(t *testing.T) {
		token := createToken(map[string]any{
			"sub": "auth0|bob",
			"iss": "https://issuer.example.com",
			"aud": "orvium-api",
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		id, err := r.Resolve(req)
		require.NoError(t, err)
		require.NotNil(t, id)
		assert.Empty(t, id.Email)
	})

	t.Run("no token resolves to anonymous", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		id, err := r.Resolve(req)
		require.NoError(t, err)
		assert.Nil(t, id)
	})

	t.Run("wrong scheme resolves to anonymous", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Basic xyz")
		id, err := r.Resolve(req)
		require.NoError(t, err)
		assert.Nil(t, id)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		_, err := r.Resolve(req)
		assert.ErrorIs(t, err, principal.ErrInvalidToken)
	})

	t.Run("missing subject is rejected", func(t *testing.T) {
		token := createToken(map[string]any{
			"iss": "https://issuer.example.com",
			"aud": "orvium-api",
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		_, err := r.Resolve(req)
		assert.ErrorIs(t, err, principal.ErrMissingSubject)
	})

	t.Run("wrong audience is rejected", func(t *testing.T) {
		token := createToken(map[string]any{
			"sub": "auth0|carol",
			"iss": "https://issuer.example.com",
			"aud": "other-api",
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		_, err := r.Resolve(req)
		assert.ErrorIs(t, err, principal.ErrInvalidToken)
	})
}
