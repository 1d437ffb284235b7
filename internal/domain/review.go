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

// ReviewStatus is the lifecycle state of a peer review.
type ReviewStatus string

// Review lifecycle states.
const (
	ReviewDraft     ReviewStatus = "draft"
	ReviewPublished ReviewStatus = "published"
)

// Review is the snapshot of a peer review written for a deposit.
type Review struct {
	ID      string       `json:"_id"`
	Owner   string       `json:"owner"`
	Deposit string       `json:"deposit"`
	Status  ReviewStatus `json:"status"`
}

// SubjectName returns the subject discriminant for reviews.
func (r *Review) SubjectName() string { return SubjectReview }

// Attributes exposes the fields permission conditions may reference.
func (r *Review) Attributes() map[string]any {
	return map[string]any{
		"owner":  r.Owner,
		"status": string(r.Status),
	}
}
