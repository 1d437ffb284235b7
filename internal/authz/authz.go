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

// Package authz decides, for every (user, action, resource) triple, whether
// the action is allowed. Roles are derived from the user snapshot, each role
// contributes a list of declarative rules, and the merged rule set answers
// point queries through Ability.Can.
//
// Evaluation is pure and synchronous: all inputs are in-memory snapshots
// resolved by the caller, and an Ability is rebuilt for every evaluation
// because user state may change between requests.
package authz

import "github.com/LedgerProject/orvium-backend/internal/domain"

// Subject identifies a resource a rule may apply to. Domain snapshots
// implement it together with Attributes; a bare SubjectType stands in when
// no instance exists yet, such as checking whether a user may create a
// deposit at all.
type Subject interface {
	SubjectName() string
}

// Attributer exposes the snapshot fields conditions are evaluated against.
// Subjects that do not implement Attributer are treated as type-level
// references and skip condition evaluation.
type Attributer interface {
	Attributes() map[string]any
}

// SubjectType references a subject kind by name for type-level checks.
type SubjectType string

// SubjectName returns the referenced subject kind.
func (s SubjectType) SubjectName() string { return string(s) }

// Wildcards used by the admin grant: manage on all matches every action on
// every subject.
const (
	ActionManage = "manage"
	SubjectAll   = "all"
)

// vocabularies maps each subject kind to its closed action vocabulary, in
// the order actions are reported by the introspection service. Populated
// once here and treated as immutable configuration.
var vocabularies = map[string][]string{
	domain.SubjectDeposit: {
		"read", "update", "create", "delete", "inviteReviewers",
		"createVersion", "submit", "deleteComment", "createComment", "review",
	},
	domain.SubjectReview:    {"read", "update", "delete"},
	domain.SubjectUser:      {"read", "update"},
	domain.SubjectCommunity: {"read", "update", "join", "moderate"},
	domain.SubjectInvite:    {"read", "update"},
}

// Vocabulary returns the action vocabulary for a subject kind, or nil when
// the kind is unknown. The returned slice is a copy.
func Vocabulary(subject string) []string {
	vocab, ok := vocabularies[subject]
	if !ok {
		return nil
	}
	out := make([]string, len(vocab))
	copy(out, vocab)
	return out
}
