// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the chat session.
package model

import (
	"testing"
)

// =============================================================================
// MODE / SUBJECT TESTS
// =============================================================================

func TestAppMode_Valid(t *testing.T) {
	for _, m := range Modes {
		if !m.Valid() {
			t.Errorf("mode %q should be valid", m)
		}
	}
	if AppMode("Entertainment").Valid() {
		t.Error("unknown mode should not be valid")
	}
}

func TestSubject_Valid(t *testing.T) {
	for _, s := range Subjects {
		if !s.Valid() {
			t.Errorf("subject %q should be valid", s)
		}
	}
	if !SubjectNone.Valid() {
		t.Error("SubjectNone should be valid")
	}
	if Subject("Astrology").Valid() {
		t.Error("unknown subject should not be valid")
	}
}

func TestSubjects_ExcludesNone(t *testing.T) {
	for _, s := range Subjects {
		if s == SubjectNone {
			t.Error("Subjects must not contain SubjectNone")
		}
	}
}

// =============================================================================
// MESSAGE TESTS
// =============================================================================

func TestNewUserMessage(t *testing.T) {
	msg := NewUserMessage("What is velocity?", ModeSubjectLearning, SubjectPhysics)

	if msg.ID == "" {
		t.Error("message should have a generated ID")
	}
	if msg.Role != RoleUser {
		t.Errorf("Role = %q, want %q", msg.Role, RoleUser)
	}
	if msg.Mode != ModeSubjectLearning || msg.Subject != SubjectPhysics {
		t.Error("message should record the active mode and subject")
	}
	if msg.Timestamp.IsZero() {
		t.Error("timestamp should be set")
	}
}

func TestNewModelMessage_Sources(t *testing.T) {
	sources := []Source{{URI: "https://example.org", Title: "Example"}}
	msg := NewModelMessage("answer", ModeGeneralKnowledge, SubjectNone, sources)

	if msg.Role != RoleModel {
		t.Errorf("Role = %q, want %q", msg.Role, RoleModel)
	}
	if len(msg.Sources) != 1 {
		t.Fatalf("Sources length = %d, want 1", len(msg.Sources))
	}
}

func TestMessage_Preview(t *testing.T) {
	msg := NewUserMessage("hello world this is a long message", ModeGeneralKnowledge, SubjectNone)

	short := msg.Preview(10)
	if len([]rune(short)) != 10 {
		t.Errorf("Preview(10) rune length = %d, want 10", len([]rune(short)))
	}

	// Bengali text must not be split mid-rune.
	bn := NewUserMessage("আমি শুধুমাত্র শিক্ষা", ModeGeneralKnowledge, SubjectNone)
	_ = bn.Preview(7)
}

// =============================================================================
// PREFERENCES TESTS
// =============================================================================

func TestDefaultPreferences(t *testing.T) {
	p := DefaultPreferences()
	if p.Mode != ModeSubjectLearning {
		t.Errorf("default Mode = %q, want %q", p.Mode, ModeSubjectLearning)
	}
	if p.Subject != SubjectNone {
		t.Errorf("default Subject = %q, want %q", p.Subject, SubjectNone)
	}
	if p.IsSearchEnabled {
		t.Error("search should be disabled by default")
	}
}

func TestPreferences_Normalize(t *testing.T) {
	p := Preferences{Mode: "Bogus", Subject: "Alchemy", IsSearchEnabled: true}
	n := p.Normalize()

	if n.Mode != ModeSubjectLearning {
		t.Errorf("normalized Mode = %q, want default", n.Mode)
	}
	if n.Subject != SubjectNone {
		t.Errorf("normalized Subject = %q, want SubjectNone", n.Subject)
	}
	if !n.IsSearchEnabled {
		t.Error("Normalize must not touch the search toggle")
	}
}
