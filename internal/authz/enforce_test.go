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

package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LedgerProject/orvium-backend/internal/authz"
	"github.com/LedgerProject/orvium-backend/internal/domain"
)

func TestRequire(t *testing.T) {
	draft := &domain.Deposit{Owner: "u1", Status: domain.DepositDraft}

	t.Run("passes for the owner", func(t *testing.T) {
		ability := authz.DefineAbilityFor(registeredUser("u1"))
		require.NoError(t, authz.Require(ability, "update", draft))
	})

	t.Run("denies other users with the generic message", func(t *testing.T) {
		ability := authz.DefineAbilityFor(registeredUser("u2"))
		err := authz.Require(ability, "update", draft)
		require.Error(t, err)
		assert.Equal(t, authz.ErrUnauthorized, err)
		assert.Equal(t, "Unauthorized", err.Error())
	})

	t.Run("denies anonymous users", func(t *testing.T) {
		ability := authz.DefineAbilityFor(nil)
		err := authz.Require(ability, "update", draft)
		assert.Equal(t, authz.ErrUnauthorized, err)
	})

	t.Run("surfaces the reviewed moderator reason", func(t *testing.T) {
		ability := authz.DefineAbilityFor(registeredUser("mod", "moderator:orvium"))
		deposit := &domain.Deposit{
			Owner:     "u2",
			Status:    domain.DepositPublished,
			Community: domain.CommunityRef{ID: "orvium"},
		}
		err := authz.Require(ability, "delete", deposit)
		require.Error(t, err)
		var denied *authz.DeniedError
		require.ErrorAs(t, err, &denied)
		assert.Equal(t, authz.ReasonModeratorDeleteDeposit, denied.Error())
	})
}

func TestCheck(t *testing.T) {
	draft := &domain.Deposit{Owner: "u1", Status: domain.DepositDraft}

	t.Run("mirrors Require without errors", func(t *testing.T) {
		owner := authz.DefineAbilityFor(registeredUser("u1"))
		other := authz.DefineAbilityFor(registeredUser("u2"))
		assert.True(t, authz.Check(owner, "update", draft))
		assert.False(t, authz.Check(other, "update", draft))
	})

	t.Run("type-level create check", func(t *testing.T) {
		ability := authz.DefineAbilityFor(registeredUser("u1"))
		assert.True(t, authz.Check(ability, "create", authz.SubjectType(domain.SubjectDeposit)))
		assert.False(t, authz.Check(ability, "create", authz.SubjectType(domain.SubjectReview)))
	})
}
