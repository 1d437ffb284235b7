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

// CommunityUser records one user's membership in a community.
type CommunityUser struct {
	UserID string `json:"userId"`
}

// Community is the snapshot of a scholarly community.
type Community struct {
	ID    string          `json:"_id"`
	Name  string          `json:"name"`
	Users []CommunityUser `json:"users"`
}

// SubjectName returns the subject discriminant for communities.
func (c *Community) SubjectName() string { return SubjectCommunity }

// Attributes exposes the fields permission conditions may reference.
// Membership is flattened to a list so conditions can match against
// "users.userId" the way the stored documents are queried.
func (c *Community) Attributes() map[string]any {
	users := make([]any, 0, len(c.Users))
	for _, u := range c.Users {
		users = append(users, map[string]any{"userId": u.UserID})
	}
	return map[string]any{
		"_id":   c.ID,
		"users": users,
	}
}
