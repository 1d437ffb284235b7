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

// Rule declares one grant of actions on a subject kind, or, when Inverted,
// one denial. A denial matching a query forces the result to false no matter
// which grants also match. Reason carries the user-facing denial message and
// is only meaningful on inverted rules.
type Rule struct {
	Actions    []string
	Subject    string
	Conditions Condition
	Inverted   bool
	Reason     string
}

// matches reports whether the rule applies to the action/subject pair.
// Conditions are evaluated against the subject's attributes; a bare
// SubjectType has none, so conditional rules match it at the type level.
func (r Rule) matches(action string, sub Subject) bool {
	if r.Subject == SubjectAll {
		if !contains(r.Actions, ActionManage) {
			return false
		}
	} else if r.Subject != sub.SubjectName() || !contains(r.Actions, action) {
		return false
	}
	if r.Conditions == nil {
		return true
	}
	a, ok := sub.(Attributer)
	if !ok {
		return true
	}
	return r.Conditions.Matches(a.Attributes())
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}
