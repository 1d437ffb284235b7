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

// DepositStatus is the lifecycle state of a deposit.
type DepositStatus string

// Deposit lifecycle states. The string values are the wire values stored in
// the documents and must not change.
const (
	DepositDraft           DepositStatus = "draft"
	DepositPendingApproval DepositStatus = "pending approval"
	DepositInReview        DepositStatus = "in review"
	DepositPreprint        DepositStatus = "preprint"
	DepositPublished       DepositStatus = "published"
)

// CommunityRef references the community a deposit was submitted to.
// The zero value means the deposit belongs to no community.
type CommunityRef struct {
	ID string `json:"_id"`
}

// Deposit is the snapshot of a submitted scholarly work.
type Deposit struct {
	ID            string        `json:"_id"`
	Owner         string        `json:"owner"`
	Title         string        `json:"title"`
	Status        DepositStatus `json:"status"`
	Community     CommunityRef  `json:"community"`
	CanBeReviewed bool          `json:"canBeReviewed"`
	Version       int           `json:"version"`
}

// SubjectName returns the subject discriminant for deposits.
func (d *Deposit) SubjectName() string { return SubjectDeposit }

// Attributes exposes the fields permission conditions may reference.
func (d *Deposit) Attributes() map[string]any {
	return map[string]any{
		"owner":         d.Owner,
		"status":        string(d.Status),
		"canBeReviewed": d.CanBeReviewed,
		"community": map[string]any{
			"_id": d.Community.ID,
		},
	}
}
