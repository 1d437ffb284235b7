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

// Denial messages that may be surfaced to end users. Require only exposes
// messages listed in knownReasons; everything else collapses to the generic
// "Unauthorized" so internal rule details never leak through error text.
const (
	// ReasonModeratorDeleteDeposit explains the moderator deposit-delete
	// denial.
	ReasonModeratorDeleteDeposit = "moderators cannot delete community deposits"
)

var knownReasons = map[string]struct{}{
	ReasonModeratorDeleteDeposit: {},
}
