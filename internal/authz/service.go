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

import (
	"log/slog"

	"github.com/LedgerProject/orvium-backend/internal/domain"
	"github.com/LedgerProject/orvium-backend/internal/logger"
)

// Service answers which actions a user may currently perform on a resource.
// Serialization code attaches the result to response payloads so clients can
// decide which affordances to show.
type Service struct {
	logger *slog.Logger
}

// NewService creates a Service. A nil logger disables logging.
func NewService(log *slog.Logger) *Service {
	if log == nil {
		log = logger.Silent()
	}
	return &Service{logger: log}
}

// SubjectActions returns the actions from the subject's vocabulary that the
// user's ability allows, in vocabulary order. An unrecognized subject kind
// yields an empty list, never an error: a resource with no vocabulary simply
// offers no actions.
func (s *Service) SubjectActions(user *domain.User, sub Subject) []string {
	vocab, ok := vocabularies[sub.SubjectName()]
	if !ok {
		s.logger.Debug(
			"No action vocabulary for subject",
			slog.String("subject", sub.SubjectName()),
		)
		return []string{}
	}

	ability := DefineAbilityFor(user)
	actions := make([]string, 0, len(vocab))
	for _, action := range vocab {
		if ability.Can(action, sub) {
			actions = append(actions, action)
		}
	}
	return actions
}
