// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/time/rate"

	"github.com/medha-ai/medha-tui/internal/model"
	"github.com/medha-ai/medha-tui/internal/prompt"
)

// =============================================================================
// LOCALIZED MESSAGES
// =============================================================================

// User-facing strings are Bengali. Raw error detail never reaches the chat
// transcript; it goes to the log instead.
const (
	// FallbackReply is shown when the service returns an empty reply.
	FallbackReply = "দুঃখিত, আমি উত্তর দিতে পারছি না।"

	quotaMessage   = "API লিমিট শেষ হয়েছে। কিছুক্ষণ পর আবার চেষ্টা করুন।"
	networkMessage = "নেটওয়ার্ক সমস্যা। অনুগ্রহ করে আবার চেষ্টা করুন।"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ErrorType classifies client failures for caller-side handling.
type ErrorType string

const (
	ErrTypeQuota           ErrorType = "quota"
	ErrTypeNetwork         ErrorType = "network"
	ErrTypeInvalidResponse ErrorType = "invalid_response"
)

// ClientError wraps errors with type information and a message that is safe
// to show in the transcript.
type ClientError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// IsQuotaError reports whether err is a quota-exhaustion failure.
func IsQuotaError(err error) bool {
	var ce *ClientError
	return errors.As(err, &ce) && ce.Type == ErrTypeQuota
}

// IsNetworkError reports whether err is a transport-level failure.
func IsNetworkError(err error) bool {
	var ce *ClientError
	return errors.As(err, &ce) && ce.Type == ErrTypeNetwork
}

// classify maps a raw failure to a typed, localized client error. A status
// of 429, or raw detail mentioning "quota" or "429", means the upstream
// quota is exhausted; everything else is reported as a network problem.
func classify(status int, detail string, cause error) *ClientError {
	lower := strings.ToLower(detail)
	if status == http.StatusTooManyRequests ||
		strings.Contains(lower, "quota") || strings.Contains(lower, "429") {
		return &ClientError{Type: ErrTypeQuota, Message: quotaMessage, Cause: cause}
	}
	return &ClientError{Type: ErrTypeNetwork, Message: networkMessage, Cause: cause}
}

// =============================================================================
// CLIENT
// =============================================================================

// ClientConfig holds the connection settings for a Client.
type ClientConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Client talks to the generation service over HTTP. A small rate limiter
// paces outgoing calls so a key-mashing user cannot burst requests.
type Client struct {
	cfg        ClientConfig
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a client with the given settings.
func NewClient(cfg ClientConfig) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		// One request per second sustained, short bursts of two.
		limiter: rate.NewLimiter(rate.Every(time.Second), 2),
	}
}

// Generate performs a single generation call for the assembled request.
// There is no retry: a failed call surfaces immediately so the user can
// decide whether to resend.
func (c *Client) Generate(ctx context.Context, req prompt.Request) (Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return Response{}, &ClientError{Type: ErrTypeNetwork, Message: networkMessage, Cause: err}
	}

	body := buildRequest(req)
	payload, err := json.Marshal(body)
	if err != nil {
		return Response{}, &ClientError{Type: ErrTypeInvalidResponse, Message: networkMessage, Cause: err}
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent",
		strings.TrimRight(c.cfg.BaseURL, "/"), c.cfg.Model)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return Response{}, &ClientError{Type: ErrTypeNetwork, Message: networkMessage, Cause: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	// SECURITY: key travels in a header, never in the URL, so it cannot
	// leak through proxy logs.
	httpReq.Header.Set("x-goog-api-key", c.cfg.APIKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.Printf("gemini: request failed: %v", err)
		return Response{}, classify(0, err.Error(), err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("gemini: reading response failed: %v", err)
		return Response{}, classify(resp.StatusCode, err.Error(), err)
	}

	if resp.StatusCode != http.StatusOK {
		detail := errorDetail(raw)
		log.Printf("gemini: HTTP %d: %s", resp.StatusCode, detail)
		return Response{}, classify(resp.StatusCode, detail,
			fmt.Errorf("HTTP %d: %s", resp.StatusCode, detail))
	}

	var parsed generateContentResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		log.Printf("gemini: malformed response: %v", err)
		return Response{}, classify(resp.StatusCode, err.Error(), err)
	}

	return normalize(parsed, req.SearchEnabled), nil
}

// buildRequest maps an assembled prompt onto the wire format.
func buildRequest(req prompt.Request) generateContentRequest {
	out := generateContentRequest{
		SystemInstruction: &content{Parts: []part{{Text: req.Instruction}}},
		GenerationConfig: generationConfig{
			Temperature: req.Temperature,
			TopP:        req.TopP,
		},
	}
	for _, t := range req.Turns {
		out.Contents = append(out.Contents, content{
			Role:  t.Role.String(),
			Parts: []part{{Text: t.Text}},
		})
	}
	if req.SearchEnabled {
		out.Tools = []tool{{GoogleSearch: &googleSearch{}}}
	}
	return out
}

// errorDetail extracts the service's error message from a non-200 body,
// falling back to the raw body when the envelope does not parse.
func errorDetail(raw []byte) string {
	var envelope apiError
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error.Message != "" {
		return envelope.Error.Message
	}
	return string(raw)
}

// normalize extracts reply text and citations from a parsed response.
// Empty or missing text becomes the localized fallback so the transcript
// never shows a blank model turn. Text is NFC-normalized; Bengali combining
// sequences otherwise render inconsistently across terminals.
func normalize(parsed generateContentResponse, searchEnabled bool) Response {
	out := Response{Text: FallbackReply}
	if len(parsed.Candidates) == 0 {
		return out
	}
	cand := parsed.Candidates[0]

	var sb strings.Builder
	for _, p := range cand.Content.Parts {
		sb.WriteString(p.Text)
	}
	if text := strings.TrimSpace(sb.String()); text != "" {
		out.Text = norm.NFC.String(text)
	}

	// Citations are only meaningful when grounding was requested.
	if searchEnabled && cand.GroundingMetadata != nil {
		for _, chunk := range cand.GroundingMetadata.GroundingChunks {
			if chunk.Web == nil || chunk.Web.URI == "" {
				continue
			}
			title := chunk.Web.Title
			if title == "" {
				title = chunk.Web.URI
			}
			out.Sources = append(out.Sources, model.Source{
				URI:   chunk.Web.URI,
				Title: title,
			})
		}
	}
	return out
}
