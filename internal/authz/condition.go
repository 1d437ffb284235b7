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

import "strings"

// Operator selects how a predicate compares a snapshot field. The set is
// fixed: equality, negated equality, and set membership are all the rule
// tables need.
type Operator uint8

const (
	// OpEqual matches when some resolved field value equals Value.
	OpEqual Operator = iota
	// OpNotEqual matches when the field path resolves and no resolved value
	// equals Value.
	OpNotEqual
	// OpIn matches when some resolved field value is one of Values.
	OpIn
)

// Predicate constrains a single snapshot field.
type Predicate struct {
	Op     Operator
	Value  any
	Values []any
}

// Eq builds an equality predicate.
func Eq(v any) Predicate { return Predicate{Op: OpEqual, Value: v} }

// Ne builds a negated-equality predicate.
func Ne(v any) Predicate { return Predicate{Op: OpNotEqual, Value: v} }

// In builds a set-membership predicate.
func In(vs ...any) Predicate { return Predicate{Op: OpIn, Values: vs} }

// Condition maps dot-separated field paths to predicates. A rule with a
// condition applies only to resources for which every predicate holds.
type Condition map[string]Predicate

// Matches reports whether every predicate holds against the snapshot
// attributes. A path whose map key is absent fails its predicate, including
// negated equality.
func (c Condition) Matches(attrs map[string]any) bool {
	for path, p := range c {
		values, ok := resolve(attrs, strings.Split(path, "."))
		if !ok {
			return false
		}
		if !p.matches(values) {
			return false
		}
	}
	return true
}

func (p Predicate) matches(values []any) bool {
	switch p.Op {
	case OpEqual:
		for _, v := range values {
			if equal(v, p.Value) {
				return true
			}
		}
		return false
	case OpNotEqual:
		for _, v := range values {
			if equal(v, p.Value) {
				return false
			}
		}
		return true
	case OpIn:
		for _, v := range values {
			for _, w := range p.Values {
				if equal(v, w) {
					return true
				}
			}
		}
		return false
	}
	return false
}

// resolve walks a field path through nested maps, fanning out over list
// fields so that a path like "users.userId" yields the value from every
// element. The boolean result reports whether the path was present: a list
// field counts as present even when empty, a missing map key does not.
func resolve(v any, path []string) ([]any, bool) {
	if len(path) == 0 {
		return []any{v}, true
	}
	switch t := v.(type) {
	case map[string]any:
		child, ok := t[path[0]]
		if !ok {
			return nil, false
		}
		return resolve(child, path[1:])
	case []any:
		values := make([]any, 0, len(t))
		for _, e := range t {
			vs, ok := resolve(e, path)
			if !ok {
				continue
			}
			values = append(values, vs...)
		}
		return values, true
	}
	return nil, false
}

// equal compares a snapshot value with a predicate value. Snapshot fields
// are strings and booleans; anything else is a type mismatch and fails.
func equal(a, b any) bool {
	switch x := a.(type) {
	case string:
		y, ok := b.(string)
		return ok && x == y
	case bool:
		y, ok := b.(bool)
		return ok && x == y
	}
	return false
}
