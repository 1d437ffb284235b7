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

// Command abilities probes the permission model from the command line.
// Given a user snapshot and a resource snapshot (JSON files), it prints the
// actions the user may perform, or tests a single action and exits non-zero
// on denial. Useful when debugging why a moderator or reviewer cannot see a
// button the UI should offer.
//
//	abilities -type Deposit -subject deposit.json -user user.json
//	abilities -type Deposit -action create -user user.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/LedgerProject/orvium-backend/internal/authz"
	"github.com/LedgerProject/orvium-backend/internal/domain"
	"github.com/LedgerProject/orvium-backend/internal/logger"
)

func main() {
	var (
		userPath    = flag.String("user", "", "path to a user snapshot (omit for anonymous)")
		subjectPath = flag.String("subject", "", "path to a resource snapshot (omit for a type-level check)")
		subjectType = flag.String("type", "", "subject type: User, Deposit, Review, Community, or Invite")
		action      = flag.String("action", "", "test a single action instead of listing all")
		level       = flag.String("level", "info", "log level")
	)
	flag.Parse()

	log := logger.New(*level)
	if *subjectType == "" {
		fmt.Fprintln(os.Stderr, "missing -type")
		os.Exit(2)
	}

	user, err := loadUser(*userPath)
	if err != nil {
		log.Error("Failed to load user snapshot", "error", err)
		os.Exit(2)
	}
	sub, err := loadSubject(*subjectType, *subjectPath)
	if err != nil {
		log.Error("Failed to load resource snapshot", "error", err)
		os.Exit(2)
	}

	if *action != "" {
		ability := authz.DefineAbilityFor(user)
		if err := authz.Require(ability, *action, sub); err != nil {
			fmt.Printf("deny: %s\n", err)
			os.Exit(1)
		}
		fmt.Println("allow")
		return
	}

	svc := authz.NewService(log)
	out, err := json.Marshal(svc.SubjectActions(user, sub))
	if err != nil {
		log.Error("Failed to encode actions", "error", err)
		os.Exit(2)
	}
	fmt.Println(string(out))
}

func loadUser(path string) (*domain.User, error) {
	if path == "" {
		return nil, nil
	}
	var user domain.User
	if err := decode(path, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func loadSubject(typ, path string) (authz.Subject, error) {
	if path == "" {
		return authz.SubjectType(typ), nil
	}
	switch typ {
	case domain.SubjectUser:
		var v domain.User
		return &v, decode(path, &v)
	case domain.SubjectDeposit:
		var v domain.Deposit
		return &v, decode(path, &v)
	case domain.SubjectReview:
		var v domain.Review
		return &v, decode(path, &v)
	case domain.SubjectCommunity:
		var v domain.Community
		return &v, decode(path, &v)
	case domain.SubjectInvite:
		var v domain.Invite
		return &v, decode(path, &v)
	}
	return nil, fmt.Errorf("unknown subject type %q", typ)
}

func decode(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
