// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package catalog

// Topic is a fixed subject with a canned answer.
type Topic string

const (
	TopicExams       Topic = "exams"
	TopicAssignments Topic = "assignments"
	TopicFood        Topic = "food"
	TopicEvents      Topic = "events"
	TopicForms       Topic = "forms"
)

var answers = map[Topic]string{
	TopicExams:       "The next internal exams are scheduled for May 15-20, 2025. Make sure to check the department notice board for the exact schedule.",
	TopicAssignments: "You have 3 pending assignments:\n1. Data Structures project due tomorrow\n2. Economics essay due on Friday\n3. Physics lab report due next Monday",
	TopicFood: `Here are some popular food spots near campus:
• Campus Café - Budget-friendly meals (₹30-80)
• Dosa Corner - South Indian specials (₹40-100)
• Snack Shack - Quick bites (₹15-50)
• Juice Junction - Fresh beverages (₹20-60)`,
	TopicEvents: "Upcoming campus events:\n• Tech Fest - April 30\n• Cultural Night - May 5\n• Career Fair - May 10",
	TopicForms:  "Common forms you might need:\n• KYC verification\n• Scholarship application\n• Hostel extension\n• Internship certification",
}

// Answer returns the canned paragraph for a topic, or an empty string for an unknown topic.
func Answer(t Topic) string {
	return answers[t]
}
