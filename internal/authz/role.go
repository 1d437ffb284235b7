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

package authz

import (
	"strings"

	"github.com/LedgerProject/orvium-backend/internal/domain"
)

// Role names one of the classifier's fixed outcomes. A user holds several
// roles at once; every user, authenticated or not, holds RoleVisitor.
type Role string

const (
	RoleVisitor              Role = "visitor"
	RoleIncompleteRegistered Role = "incompleteRegistered"
	RoleRegistered           Role = "registered"
	RoleAdmin                Role = "admin"
	RoleModerator            Role = "moderator"
)

const (
	adminRoleString = "admin"
	moderatorPrefix = "moderator:"
)

// RoleSet is the classified set of roles a user holds, together with the
// community ids scoping the moderator role. It is computed once per
// evaluation from the user snapshot and never stored.
type RoleSet struct {
	roles     []Role
	moderated []string
}

// ClassifyRoles derives the role set from a user snapshot. A nil user yields
// exactly the visitor role. Moderator scope comes from role strings of the
// form "moderator:<communityId>"; strings with an empty id are ignored.
func ClassifyRoles(user *domain.User) RoleSet {
	set := RoleSet{roles: []Role{RoleVisitor}}
	if user == nil {
		return set
	}

	if !user.EmailConfirmed || !user.IsOnboarded {
		set.roles = append(set.roles, RoleIncompleteRegistered)
	} else {
		set.roles = append(set.roles, RoleRegistered)
	}

	admin := false
	for _, r := range user.Roles {
		if r == adminRoleString {
			admin = true
			continue
		}
		if id := strings.TrimPrefix(r, moderatorPrefix); id != r && id != "" {
			set.moderated = append(set.moderated, id)
		}
	}
	if admin {
		set.roles = append(set.roles, RoleAdmin)
	}
	if len(set.moderated) > 0 {
		set.roles = append(set.roles, RoleModerator)
	}
	return set
}

// Roles returns the held roles in classification order.
func (s RoleSet) Roles() []Role {
	out := make([]Role, len(s.roles))
	copy(out, s.roles)
	return out
}

// Has reports whether the set contains the role.
func (s RoleSet) Has(role Role) bool {
	for _, r := range s.roles {
		if r == role {
			return true
		}
	}
	return false
}

// Moderated returns the community ids the user moderates.
func (s RoleSet) Moderated() []string {
	out := make([]string, len(s.moderated))
	copy(out, s.moderated)
	return out
}
