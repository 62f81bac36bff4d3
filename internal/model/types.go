// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the chat session.
package model

// =============================================================================
// APP MODE
// =============================================================================

// AppMode is the top-level interaction type. It selects the mode-specific
// instruction block sent to the generation service and is recorded on every
// message created while it was active.
type AppMode string

const (
	ModeSubjectLearning  AppMode = "Subject Learning"
	ModeGeneralKnowledge AppMode = "General Knowledge"
	ModeFlashcards       AppMode = "Flashcards"
)

// Modes lists all interaction modes in display order.
var Modes = []AppMode{ModeSubjectLearning, ModeGeneralKnowledge, ModeFlashcards}

// String returns the display name of the mode.
func (m AppMode) String() string {
	return string(m)
}

// Valid reports whether m is a known mode.
func (m AppMode) Valid() bool {
	switch m {
	case ModeSubjectLearning, ModeGeneralKnowledge, ModeFlashcards:
		return true
	}
	return false
}

// =============================================================================
// SUBJECT
// =============================================================================

// Subject is the academic discipline scoping a Subject Learning query.
// SubjectNone means no subject has been selected yet.
type Subject string

const (
	SubjectPhysics   Subject = "Physics"
	SubjectChemistry Subject = "Chemistry"
	SubjectMath      Subject = "Math"
	SubjectBiology   Subject = "Biology"
	SubjectICT       Subject = "ICT"
	SubjectNone      Subject = "None"
)

// Subjects lists the selectable subjects in display order.
// SubjectNone is deliberately excluded; it is the unselected state.
var Subjects = []Subject{
	SubjectPhysics,
	SubjectChemistry,
	SubjectMath,
	SubjectBiology,
	SubjectICT,
}

// String returns the display name of the subject.
func (s Subject) String() string {
	return string(s)
}

// Valid reports whether s is a known subject (including SubjectNone).
func (s Subject) Valid() bool {
	switch s {
	case SubjectPhysics, SubjectChemistry, SubjectMath, SubjectBiology, SubjectICT, SubjectNone:
		return true
	}
	return false
}

// =============================================================================
// ROLE
// =============================================================================

// Role identifies the sender of a transcript message.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// String returns the wire representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a human-readable name for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleModel:
		return "Medha"
	default:
		return string(r)
	}
}
