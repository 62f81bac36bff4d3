// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management.
//
// Configuration lives in ~/.medha/config.toml (or config.json), with
// environment variable overrides (MEDHA_API_KEY, MEDHA_MODEL, MEDHA_BASE_URL,
// MEDHA_DAILY_LIMIT) applied on top. The Watcher reloads the file when it
// changes on disk so a running session picks up edits.
//
// The shipped defaults (daily limit 25, history window 10, temperature 0.6,
// top_p 0.9) match the hosted Medha web app.
package config
