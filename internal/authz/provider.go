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

// Rule providers, one per role. Each is a pure function of the user
// snapshot. DefineAbilityFor merges their outputs, so providers only state
// their own delta: visitor rules are merged for every principal and are not
// repeated here.

// visitorRules grants the public read surface available to everyone,
// including anonymous callers.
func visitorRules() []Rule {
	return []Rule{
		{Actions: []string{"read"}, Subject: domain.SubjectUser},
		{Actions: []string{"read"}, Subject: domain.SubjectDeposit, Conditions: Condition{
			"status": In(string(domain.DepositPreprint), string(domain.DepositPublished)),
		}},
		{Actions: []string{"read"}, Subject: domain.SubjectReview, Conditions: Condition{
			"status": In(string(domain.ReviewPublished)),
		}},
		{Actions: []string{"read"}, Subject: domain.SubjectCommunity},
	}
}

// incompleteRegisteredRules covers users who have not confirmed their email
// or finished onboarding: they may maintain their own profile and nothing
// else beyond the visitor surface.
func incompleteRegisteredRules(user *domain.User) []Rule {
	return []Rule{
		{Actions: []string{"update"}, Subject: domain.SubjectUser, Conditions: Condition{
			"userId": Eq(user.UserID),
		}},
	}
}

// registeredRules covers fully onboarded users.
func registeredRules(user *domain.User) []Rule {
	visible := In(string(domain.DepositPreprint), string(domain.DepositPublished))
	return []Rule{
		// Deposits
		{Actions: []string{"read"}, Subject: domain.SubjectDeposit, Conditions: Condition{
			"owner": Eq(user.UserID),
		}},
		{Actions: []string{"create"}, Subject: domain.SubjectDeposit},
		{Actions: []string{"update", "delete"}, Subject: domain.SubjectDeposit, Conditions: Condition{
			"owner":  Eq(user.UserID),
			"status": Eq(string(domain.DepositDraft)),
		}},
		{Actions: []string{"createVersion", "inviteReviewers"}, Subject: domain.SubjectDeposit, Conditions: Condition{
			"owner":  Eq(user.UserID),
			"status": visible,
		}},
		{Actions: []string{"createComment"}, Subject: domain.SubjectDeposit, Conditions: Condition{
			"status": visible,
		}},
		{Actions: []string{"review"}, Subject: domain.SubjectDeposit, Conditions: Condition{
			"owner":         Ne(user.UserID),
			"status":        visible,
			"canBeReviewed": Eq(true),
		}},
		// Owners moderate the comments on their own deposits.
		{Actions: []string{"deleteComment"}, Subject: domain.SubjectDeposit, Conditions: Condition{
			"owner": Eq(user.UserID),
		}},
		// Reviews
		{Actions: []string{"read"}, Subject: domain.SubjectReview, Conditions: Condition{
			"owner": Eq(user.UserID),
		}},
		{Actions: []string{"update", "delete"}, Subject: domain.SubjectReview, Conditions: Condition{
			"owner":  Eq(user.UserID),
			"status": Eq(string(domain.ReviewDraft)),
		}},
		// Communities
		{Actions: []string{"join"}, Subject: domain.SubjectCommunity, Conditions: Condition{
			"users.userId": Ne(user.UserID),
		}},
		// Profile
		{Actions: []string{"update"}, Subject: domain.SubjectUser, Conditions: Condition{
			"userId": Eq(user.UserID),
		}},
		// Invites: readable by the sender or the addressee, two rules with
		// OR semantics at evaluation.
		{Actions: []string{"read"}, Subject: domain.SubjectInvite, Conditions: Condition{
			"sender": Eq(user.ID),
		}},
		{Actions: []string{"read"}, Subject: domain.SubjectInvite, Conditions: Condition{
			"addressee": Eq(user.Email),
		}},
		{Actions: []string{"update"}, Subject: domain.SubjectInvite, Conditions: Condition{
			"status":    Eq(string(domain.InvitePending)),
			"addressee": Eq(user.Email),
		}},
	}
}

// moderatorRules covers users moderating the given communities. Moderators
// can see and curate submissions in their communities but may never delete
// them, stated as an inverted rule so the denial wins over any grant the
// same user holds through another role.
func moderatorRules(communities []string) []Rule {
	scope := In(values(communities)...)
	return []Rule{
		{Actions: []string{"read", "update", "deleteComment", "createComment"}, Subject: domain.SubjectDeposit, Conditions: Condition{
			"community._id": scope,
			"status": In(
				string(domain.DepositPendingApproval),
				string(domain.DepositPreprint),
				string(domain.DepositPublished),
			),
		}},
		{Actions: []string{"inviteReviewers"}, Subject: domain.SubjectDeposit, Conditions: Condition{
			"community._id": scope,
			"status":        In(string(domain.DepositPreprint), string(domain.DepositPublished)),
		}},
		{
			Inverted: true,
			Actions:  []string{"delete"},
			Subject:  domain.SubjectDeposit,
			Conditions: Condition{
				"community._id": scope,
			},
			Reason: ReasonModeratorDeleteDeposit,
		},
		{Actions: []string{"update", "moderate"}, Subject: domain.SubjectCommunity, Conditions: Condition{
			"_id": scope,
		}},
	}
}

// adminRules grants everything on everything.
func adminRules() []Rule {
	return []Rule{
		{Actions: []string{ActionManage}, Subject: SubjectAll},
	}
}

func values(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
