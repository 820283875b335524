// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package responder turns a student's question into a reply, either from canned campus
// content, the canteen menu, nearby venues, or a language model.
package responder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/curioswitch/campuscopilot/internal/budget"
	"github.com/curioswitch/campuscopilot/internal/catalog"
	"github.com/curioswitch/campuscopilot/internal/llm"
	"github.com/curioswitch/campuscopilot/internal/places"
	"github.com/curioswitch/campuscopilot/internal/roster"
)

const (
	// ApologyReply is returned when a reply could not be composed.
	ApologyReply = "I apologize, but I encountered an error processing your request. Please try again."

	// StillLearningReply is returned when the language model could not answer.
	StillLearningReply = "I'm still learning to answer that type of question. Could you try asking something about exams, assignments, events, forms, food options, or your budget?"

	// ThanksReply answers thanks.
	ThanksReply = "You're welcome! Let me know if there's anything else I can help you with. 😊"

	// FarewellReply answers a goodbye.
	FarewellReply = "Goodbye! Have a great day on campus! 👋"

	reminderAck = "I can help you with reminders! Use the reminder form to add a new task with a due date, and I'll keep track of it for you. ⏰"
)

// Greetings prefix every reply except social replies and language model answers.
var Greetings = []string{"Hi!", "Hello!", "Hey there!", "Greetings!", "Hi friend!"}

var topicRemarks = map[catalog.Topic]string{
	catalog.TopicExams:       "Good luck with your preparation! 📚",
	catalog.TopicAssignments: "You've got this! Try to tackle them one at a time. 💪",
	catalog.TopicEvents:      "Hope to see you there! 🎉",
	catalog.TopicForms:       "Let me know if you need help with any of these forms! 📝",
}

// foodBudget is the budget assumed when listing food places without one.
const foodBudget = 200

const highlightCount = 5

// PlacesFinder looks up nearby venues, returning none on failure.
type PlacesFinder interface {
	Nearby(ctx context.Context, req places.Request) []places.Recommendation
}

// Snapshot is the data a reply is composed from.
type Snapshot struct {
	// CatalogAvailable is false when the canteen menu should be treated as empty.
	CatalogAvailable bool

	// Roster is the student roster.
	Roster []roster.Student
}

// Option configures a Responder.
type Option func(*Responder)

// WithPlaces sets the venue lookup. Without it, food and budget questions are answered
// from the menu.
func WithPlaces(p PlacesFinder) Option {
	return func(r *Responder) {
		r.places = p
	}
}

// WithLLM sets the language model for questions no other intent matches.
func WithLLM(c llm.Client) Option {
	return func(r *Responder) {
		r.llm = c
	}
}

// WithPicker sets the function choosing a greeting index in [0, n).
func WithPicker(pick func(n int) int) Option {
	return func(r *Responder) {
		r.pick = pick
	}
}

// WithLogger sets the logger for failures.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Responder) {
		r.logger = logger
	}
}

// New returns a Responder.
func New(opts ...Option) *Responder {
	r := &Responder{
		llm:    llm.Unavailable{},
		pick:   rand.IntN,
		logger: slog.Default(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Responder composes replies. It holds no state between calls and is safe for concurrent
// use.
type Responder struct {
	places PlacesFinder
	llm    llm.Client
	pick   func(n int) int
	logger *slog.Logger
}

// Respond returns the reply to query. It never fails: errors are logged and replaced with
// ApologyReply.
func (r *Responder) Respond(ctx context.Context, query string, snap Snapshot) (reply string) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.ErrorContext(ctx, "responder: panic composing reply", "panic", p)
			reply = ApologyReply
		}
	}()

	intent := Classify(query)
	reply, err := r.compose(ctx, query, intent, snap)
	if err != nil {
		r.logger.ErrorContext(ctx, "responder: composing reply", "intent", intent.Kind.String(), "error", err)
		return ApologyReply
	}
	return reply
}

var errUnknownIntent = errors.New("responder: unknown intent")

func (r *Responder) compose(ctx context.Context, query string, intent Intent, snap Snapshot) (string, error) {
	menu := r.menu(snap)

	switch intent.Kind {
	case KindBudget:
		return r.budgetReply(ctx, intent.Budget, menu), nil
	case KindFood:
		return r.foodReply(ctx, menu), nil
	case KindRoster:
		return r.rosterReply(snap.Roster), nil
	case KindCourse:
		return r.courseReply(snap.Roster), nil
	case KindTopic:
		answer := catalog.Answer(intent.Topic)
		if answer == "" {
			return "", fmt.Errorf("responder: no answer for topic %q", intent.Topic) //nolint:err113
		}
		return r.greeting() + "\n\n" + answer + "\n\n" + topicRemarks[intent.Topic], nil
	case KindReminderAck:
		return r.greeting() + " " + reminderAck, nil
	case KindThanks:
		return ThanksReply, nil
	case KindFarewell:
		return FarewellReply, nil
	case KindFallback:
		return r.fallbackReply(ctx, query), nil
	}
	return "", fmt.Errorf("%w: %d", errUnknownIntent, intent.Kind)
}

func (r *Responder) menu(snap Snapshot) []catalog.Item {
	if !snap.CatalogAvailable {
		return nil
	}
	return catalog.Menu()
}

func (r *Responder) greeting() string {
	return Greetings[r.pick(len(Greetings))]
}

func (r *Responder) nearby(ctx context.Context, b int) []places.Recommendation {
	if r.places == nil {
		return nil
	}
	tier := budget.PriceTier(b)
	var out []places.Recommendation
	for _, p := range r.places.Nearby(ctx, places.Request{
		MaxTier: tier,
		Keyword: places.DefaultKeyword,
		Radius:  places.DefaultRadius,
	}) {
		if p.PriceTier <= tier {
			out = append(out, p)
		}
	}
	return out
}

func (r *Responder) budgetReply(ctx context.Context, b int, menu []catalog.Item) string {
	greeting := r.greeting()

	if venues := r.nearby(ctx, b); len(venues) > 0 {
		var sb strings.Builder
		fmt.Fprintf(&sb, "%s With a budget of ₹%d, here are some nearby places you can try:\n\n", greeting, b)
		for _, v := range venues {
			writeVenue(&sb, v)
			if v.IsOpenNow != nil && *v.IsOpenNow {
				sb.WriteString("  🟢 Open now\n\n")
			} else {
				sb.WriteString("  🔴 Closed\n\n")
			}
		}
		sb.WriteString("These recommendations are based on your location and budget. Enjoy your meal! 🍽️")
		return sb.String()
	}

	return MenuReply(greeting, b, menu)
}

// MenuReply renders the menu items affordable within b, grouped by category.
func MenuReply(greeting string, b int, menu []catalog.Item) string {
	groups := budget.Recommend(menu, b)
	if len(groups) == 0 {
		return greeting + " I'm sorry, but the minimum item in our menu starts from ₹15. You might want to check back when you have a bigger budget! 💰"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s With ₹%d, you can get these items from our menu:\n\n", greeting, b)
	for _, g := range groups {
		sb.WriteString(strings.ToUpper(string(g.Category)))
		sb.WriteString(":\n")
		for _, item := range g.Items {
			fmt.Fprintf(&sb, "• %s (₹%d) - %s\n", item.Name, item.Price, item.Description)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("Enjoy your meal! 🍽️\n\n(This is showing our campus menu as I couldn't connect to the location service)")
	return sb.String()
}

func (r *Responder) foodReply(ctx context.Context, menu []catalog.Item) string {
	greeting := r.greeting()

	if venues := r.nearby(ctx, foodBudget); len(venues) > 0 {
		var sb strings.Builder
		sb.WriteString(greeting)
		sb.WriteString(" Here are some food places near you:\n\n")
		for _, v := range venues {
			writeVenue(&sb, v)
			sb.WriteString("\n")
		}
		sb.WriteString("\nYou can also ask me what's available within your budget! For example, 'What can I get for 100 rupees?' 🍽️")
		return sb.String()
	}

	var sb strings.Builder
	sb.WriteString(greeting)
	sb.WriteString("\n\n")
	sb.WriteString(catalog.Answer(catalog.TopicFood))
	if len(menu) > 0 {
		sb.WriteString("\n\nOur Menu Highlights:")
		for _, item := range menu[:min(highlightCount, len(menu))] {
			fmt.Fprintf(&sb, "\n• %s - ₹%d (%s)", item.Name, item.Price, item.Description)
		}
	}
	sb.WriteString("\n\nYou can also ask me what you can get within your budget! 🍽️")
	return sb.String()
}

func writeVenue(sb *strings.Builder, v places.Recommendation) {
	fmt.Fprintf(sb, "• %s - %s\n", v.Name, priceRange(v.PriceTier))
	fmt.Fprintf(sb, "  %s\n", v.Address)
	if v.Rating != nil && *v.Rating > 0 {
		fmt.Fprintf(sb, "  Rating: %s/5\n", strconv.FormatFloat(*v.Rating, 'f', -1, 64))
	}
}

func priceRange(tier int) string {
	if !budget.ValidTier(tier) {
		return budget.PriceUnavailable
	}
	return "₹" + budget.DisplayRange(tier)
}

const noStudents = "I couldn't find any student records right now. Please check back later! 🎓"

func (r *Responder) rosterReply(students []roster.Student) string {
	greeting := r.greeting()
	if len(students) == 0 {
		return greeting + " " + noStudents
	}
	names := make([]string, len(students))
	for i, s := range students {
		names[i] = s.Name
	}
	return greeting + " Here are the students in our records: " + strings.Join(names, ", ")
}

func (r *Responder) courseReply(students []roster.Student) string {
	greeting := r.greeting()
	courses := Courses(students)
	if len(courses) == 0 {
		return greeting + " " + noStudents
	}
	return greeting + " Students are currently enrolled in these courses: " + strings.Join(courses, ", ")
}

// Courses returns the distinct courses of students in first-seen order.
func Courses(students []roster.Student) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, s := range students {
		if _, ok := seen[s.Course]; ok {
			continue
		}
		seen[s.Course] = struct{}{}
		out = append(out, s.Course)
	}
	return out
}

func (r *Responder) fallbackReply(ctx context.Context, query string) string {
	answer, err := r.llm.Generate(ctx, query)
	if err != nil {
		r.logger.WarnContext(ctx, "responder: generating answer", "error", err)
		return StillLearningReply
	}
	return answer
}
