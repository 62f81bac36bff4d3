// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package prompt builds the instruction set and conversation payload sent to
// the generation service.
//
// A request is composed of three parts: the fixed base persona/policy
// instruction, a mode-specific behavior block, and the conversation turns
// (a bounded window of prior transcript entries plus the formatted current
// query). The Assembler is pure; it performs no I/O and never talks to the
// service itself.
package prompt
