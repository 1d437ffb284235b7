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

package domain

// InviteStatus is the lifecycle state of a reviewer invitation.
type InviteStatus string

// Invite lifecycle states.
const (
	InvitePending  InviteStatus = "pending"
	InviteAccepted InviteStatus = "accepted"
	InviteRejected InviteStatus = "rejected"
)

// Invite is the snapshot of a reviewer invitation. Sender holds the inviting
// user's document id; Addressee holds the invited reviewer's email address.
type Invite struct {
	ID        string       `json:"_id"`
	Status    InviteStatus `json:"status"`
	Sender    string       `json:"sender"`
	Addressee string       `json:"addressee"`
	Deposit   string       `json:"deposit"`
}

// SubjectName returns the subject discriminant for invites.
func (i *Invite) SubjectName() string { return SubjectInvite }

// Attributes exposes the fields permission conditions may reference.
func (i *Invite) Attributes() map[string]any {
	return map[string]any{
		"status":    string(i.Status),
		"sender":    i.Sender,
		"addressee": i.Addressee,
	}
}
