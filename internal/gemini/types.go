// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package gemini provides the HTTP client for the hosted generation service.
package gemini

import "github.com/medha-ai/medha-tui/internal/model"

// =============================================================================
// REQUEST TYPES
// =============================================================================

// content is one role-tagged conversation entry on the wire.
type content struct {
	Role  string `json:"role,omitempty"` // "user" or "model"
	Parts []part `json:"parts"`
}

// part carries a text fragment.
type part struct {
	Text string `json:"text"`
}

// generationConfig holds the sampling parameters for a request.
type generationConfig struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"topP"`
}

// tool declares a capability the model may use. Only search grounding is
// ever requested, and only when the user has the search toggle on.
type tool struct {
	GoogleSearch *googleSearch `json:"google_search,omitempty"`
}

type googleSearch struct{}

// generateContentRequest is the request body for :generateContent.
type generateContentRequest struct {
	SystemInstruction *content         `json:"system_instruction,omitempty"`
	Contents          []content        `json:"contents"`
	GenerationConfig  generationConfig `json:"generationConfig"`
	Tools             []tool           `json:"tools,omitempty"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// generateContentResponse is the response body for :generateContent.
// Only the fields this client reads are declared.
type generateContentResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content           content            `json:"content"`
	GroundingMetadata *groundingMetadata `json:"groundingMetadata,omitempty"`
}

// groundingMetadata carries web citations when search grounding was used.
type groundingMetadata struct {
	GroundingChunks []groundingChunk `json:"groundingChunks"`
}

type groundingChunk struct {
	Web *webSource `json:"web,omitempty"`
}

type webSource struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// apiError is the service's error envelope.
type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// =============================================================================
// NORMALIZED RESPONSE
// =============================================================================

// Response is the normalized result of one generation call: the reply text
// (never empty; a localized fallback is substituted) and zero or more
// citations extracted from grounding metadata.
type Response struct {
	Text    string
	Sources []model.Source
}
