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

import "github.com/LedgerProject/orvium-backend/internal/domain"

// Ability is the merged rule set for one principal. It is immutable after
// construction; build a fresh one for every evaluation.
type Ability struct {
	rules []Rule
}

// DefineAbilityFor builds the ability for a user snapshot. A nil user is an
// anonymous visitor. Visitor rules are merged first for every principal, so
// authenticated users keep the public read surface regardless of their other
// roles.
func DefineAbilityFor(user *domain.User) *Ability {
	set := ClassifyRoles(user)
	rules := visitorRules()
	for _, role := range set.Roles() {
		switch role {
		case RoleIncompleteRegistered:
			rules = append(rules, incompleteRegisteredRules(user)...)
		case RoleRegistered:
			rules = append(rules, registeredRules(user)...)
		case RoleAdmin:
			rules = append(rules, adminRules()...)
		case RoleModerator:
			rules = append(rules, moderatorRules(set.Moderated())...)
		}
	}
	return &Ability{rules: rules}
}

// Can reports whether the action is allowed on the subject. The result is
// independent of rule order: the action is allowed iff some grant matches
// and no denial matches.
func (a *Ability) Can(action string, sub Subject) bool {
	granted := false
	for _, r := range a.rules {
		if !r.matches(action, sub) {
			continue
		}
		if r.Inverted {
			// A matching denial is final.
			return false
		}
		granted = true
	}
	return granted
}

// Cannot is the negation of Can.
func (a *Ability) Cannot(action string, sub Subject) bool {
	return !a.Can(action, sub)
}

// Rules returns a copy of the merged rule list.
func (a *Ability) Rules() []Rule {
	out := make([]Rule, len(a.rules))
	copy(out, a.rules)
	return out
}

// denialReason returns the reason of the first denial matching the query,
// or the empty string when no denial matches.
func (a *Ability) denialReason(action string, sub Subject) string {
	for _, r := range a.rules {
		if r.Inverted && r.matches(action, sub) {
			return r.Reason
		}
	}
	return ""
}
