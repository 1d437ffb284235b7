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

// Package domain holds the resource snapshots the authorization core
// evaluates against. Snapshots are plain data already fetched by the caller:
// no live database handles, no lazy loading. Every snapshot carries an
// explicit subject discriminant via SubjectName and exposes the fields that
// permission conditions may reference via Attributes.
package domain

// Subject names identify the resource kinds known to the permission model.
// The set is closed: extending it requires both a new snapshot type and new
// provider rules.
const (
	SubjectUser      = "User"
	SubjectDeposit   = "Deposit"
	SubjectReview    = "Review"
	SubjectCommunity = "Community"
	SubjectInvite    = "Invite"
)

// User is the snapshot of a platform user profile.
type User struct {
	ID             string   `json:"_id"`
	UserID         string   `json:"userId"`
	Nickname       string   `json:"nickname"`
	Email          string   `json:"email"`
	EmailConfirmed bool     `json:"emailConfirmed"`
	IsOnboarded    bool     `json:"isOnboarded"`
	Roles          []string `json:"roles"`
}

// SubjectName returns the subject discriminant for user profiles.
func (u *User) SubjectName() string { return SubjectUser }

// Attributes exposes the fields permission conditions may reference.
func (u *User) Attributes() map[string]any {
	return map[string]any{
		"userId": u.UserID,
	}
}
