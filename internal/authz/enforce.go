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

// DeniedError indicates that the caller is not authorized to perform an
// action. Denial is the normal outcome of a failed check, not a programming
// error; callers translate it into a 401/403-equivalent response.
type DeniedError struct {
	msg string
}

// Error implements the error interface.
func (e *DeniedError) Error() string {
	return e.msg
}

// ErrUnauthorized is the generic denial returned when no reviewed reason
// applies.
var ErrUnauthorized = &DeniedError{msg: "Unauthorized"}

// Require asserts that the ability allows the action on the subject. On
// denial it returns a DeniedError: the matching denial's message when it is
// in the reviewed reasons table, ErrUnauthorized otherwise.
func Require(a *Ability, action string, sub Subject) error {
	if a.Can(action, sub) {
		return nil
	}
	if reason := a.denialReason(action, sub); reason != "" {
		if _, ok := knownReasons[reason]; ok {
			return &DeniedError{msg: reason}
		}
	}
	return ErrUnauthorized
}

// Check reports whether the ability allows the action on the subject.
// Same evaluation as Require, for callers that branch instead of aborting.
func Check(a *Ability, action string, sub Subject) bool {
	return a.Can(action, sub)
}
