// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package responder

import "strings"

var chaiBreakPhrases = []string{
	"chai break",
	"coffee break",
	"tea break",
	"time for chai",
	"need a break",
	"let's take a break",
}

// DetectChaiBreak reports whether message asks for a break.
func DetectChaiBreak(message string) bool {
	return containsAny(strings.ToLower(message), chaiBreakPhrases...)
}
