// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the chat session.
//
// This package defines the domain vocabulary shared by every other package:
// interaction modes, academic subjects, transcript messages with citations,
// the daily usage record, and persisted preferences. It has no behavior
// beyond construction and display helpers; all mutation happens through the
// session package's state transitions.
package model
