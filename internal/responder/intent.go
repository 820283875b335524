// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package responder

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/curioswitch/campuscopilot/internal/catalog"
)

// Kind is the category a query is classified into.
type Kind int

const (
	// KindFallback delegates the raw query to the language model.
	KindFallback Kind = iota
	// KindBudget recommends food within a rupee budget.
	KindBudget
	// KindFood lists nearby food places or the menu.
	KindFood
	// KindRoster lists the students on the roster.
	KindRoster
	// KindCourse lists the courses students are enrolled in.
	KindCourse
	// KindTopic answers a fixed campus topic.
	KindTopic
	// KindReminderAck acknowledges a request for a reminder.
	KindReminderAck
	// KindThanks replies to thanks.
	KindThanks
	// KindFarewell replies to a goodbye.
	KindFarewell
)

func (k Kind) String() string {
	switch k {
	case KindBudget:
		return "budget"
	case KindFood:
		return "food"
	case KindRoster:
		return "roster"
	case KindCourse:
		return "course"
	case KindTopic:
		return "topic"
	case KindReminderAck:
		return "reminder_ack"
	case KindThanks:
		return "thanks"
	case KindFarewell:
		return "farewell"
	default:
		return "fallback"
	}
}

// Intent is the result of classifying a query.
type Intent struct {
	Kind Kind

	// Budget is the parsed rupee amount, set for KindBudget.
	Budget int

	// Topic is the matched topic, set for KindTopic.
	Topic catalog.Topic
}

var budgetPattern = regexp.MustCompile(`(\d+)\s*(?:rupees?|rs)`)

var foodKeywords = []string{"food", "eat", "restaurant", "menu"}

type topicMatch struct {
	keywords []string
	topic    catalog.Topic
}

var topicMatches = []topicMatch{
	{keywords: []string{"exam"}, topic: catalog.TopicExams},
	{keywords: []string{"assignment", "homework"}, topic: catalog.TopicAssignments},
	{keywords: []string{"event"}, topic: catalog.TopicEvents},
	{keywords: []string{"form", "document"}, topic: catalog.TopicForms},
}

// Classify returns the intent of query. Detectors run in a fixed order on the lower-cased
// query and the first to match wins.
func Classify(query string) Intent {
	q := strings.ToLower(query)

	if m := budgetPattern.FindStringSubmatch(q); m != nil {
		// Amounts too large for an int are not a budget.
		if b, err := strconv.Atoi(m[1]); err == nil {
			return Intent{Kind: KindBudget, Budget: b}
		}
	}

	if containsAny(q, foodKeywords...) {
		return Intent{Kind: KindFood}
	}

	if strings.Contains(q, "student") && strings.Contains(q, "list") {
		return Intent{Kind: KindRoster}
	}

	if containsAny(q, "course", "program") {
		return Intent{Kind: KindCourse}
	}

	for _, tm := range topicMatches {
		if containsAny(q, tm.keywords...) {
			return Intent{Kind: KindTopic, Topic: tm.topic}
		}
	}

	if strings.Contains(q, "remind") {
		return Intent{Kind: KindReminderAck}
	}

	if strings.Contains(q, "thank") {
		return Intent{Kind: KindThanks}
	}

	if containsAny(q, "bye", "goodbye") {
		return Intent{Kind: KindFarewell}
	}

	return Intent{Kind: KindFallback}
}

func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
