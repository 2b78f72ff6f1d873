package services

import "strings"

// DefaultCategory is used when a request carries no category.
const DefaultCategory = "general"

// questionRule pairs a category token with the questions asked for it.
type questionRule struct {
	token     string
	questions []string
}

// questionRules is evaluated in order; the first token found in the
// category wins.
var questionRules = []questionRule{
	{
		token: "laptop",
		questions: []string{
			"What is the primary use (gaming, work, etc.)?",
			"How important is battery life for you?",
			"Do you prefer lightweight or performance models?",
		},
	},
	{
		token: "phone",
		questions: []string{
			"Do you need a high-end camera?",
			"What is your preferred screen size?",
			"Do you prefer Android or iOS?",
		},
	},
}

var fallbackQuestions = []string{
	"What are the key features you're looking for?",
	"What is your budget range?",
	"Do you value brand reputation highly?",
}

// SelectQuestions returns the lower-cased category together with the
// follow-up questions for it. The returned slice is always a fresh copy.
func SelectQuestions(category string) (string, []string) {
	normalized := strings.ToLower(category)
	for _, rule := range questionRules {
		if strings.Contains(normalized, rule.token) {
			return normalized, append([]string(nil), rule.questions...)
		}
	}
	return normalized, append([]string(nil), fallbackQuestions...)
}
