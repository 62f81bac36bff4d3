// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"fmt"

	"github.com/medha-ai/medha-tui/internal/model"
)

// Localized rejection messages. Quota text names the numeric limit so the
// user knows how many questions a day buys.
const (
	quotaMessageFormat    = "আজকের লিমিট (%d) শেষ। আগামীকাল আবার চেষ্টা করুন।"
	selectSubjectMessage  = "অনুগ্রহ করে একটি বিষয় (Subject) নির্বাচন করুন।"
)

// rejection is a failed validation: the message to show and whether the
// subject picker should take focus.
type rejection struct {
	message       string
	focusSubjects bool
}

// validate checks a submission against the current state. Quota is checked
// before the subject requirement, so an out-of-quota user sees the quota
// message even with no subject selected. A nil return means the query may
// proceed.
func (c *Core) validate(s State) *rejection {
	if s.Usage.Count >= c.Limit {
		return &rejection{message: fmt.Sprintf(quotaMessageFormat, c.Limit)}
	}
	if s.CurrentMode == model.ModeSubjectLearning && s.CurrentSubject == model.SubjectNone {
		return &rejection{message: selectSubjectMessage, focusSubjects: true}
	}
	return nil
}
