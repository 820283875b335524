// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package llm

import (
	"context"
	"fmt"

	"github.com/curioswitch/campuscopilot/internal/i18n"
)

var languageNames = map[string]string{
	"en": "English",
	"hi": "Hindi",
	"ta": "Tamil",
	"te": "Telugu",
	"bn": "Bengali",
	"mr": "Marathi",
	"kn": "Kannada",
	"ja": "Japanese",
}

// SystemPrompt returns the system instruction for open-ended campus questions, replying in
// the user's language when known.
func SystemPrompt(ctx context.Context) string {
	language, ok := languageNames[i18n.UserLanguage(ctx)]
	if !ok {
		language = "the same language as the question"
	}
	return fmt.Sprintf(systemPrompt, language)
}

const systemPrompt = `You are CampusCopilot, a friendly AI assistant for college students. Answer the student's question
helpfully and concisely in a few short paragraphs at most. You know about campus life in general: studying, exams, assignments,
campus food, events, administrative forms and managing time. If a question needs information specific to the student's college
that you do not have, say so and suggest where on campus they could find it, such as the department notice board or the
administration office. Keep a warm, encouraging tone and never invent dates or deadlines.

Reply in %s.
`
