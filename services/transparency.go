package services

import "strings"

const (
	baseTransparencyScore = 50
	maxTransparencyScore  = 100
	minTransparencyScore  = 0

	keywordBonus = 10
	answerBonus  = 5

	// Answers need more than this many words to earn the answer bonus.
	minDetailedAnswerWords = 3
)

// transparencyKeywords are matched as lower-case substrings, so "eco" also
// matches inside "ecosystem" and both "recycle" and "recyclable" may hit.
var transparencyKeywords = []string{
	"eco",
	"recycle",
	"sustainable",
	"warranty",
	"recyclable",
	"green",
	"environment",
}

// ScoreBreakdown explains how a transparency score was reached.
type ScoreBreakdown struct {
	Score           int
	RawScore        int
	MatchedKeywords []string
	DetailedAnswers int
}

// EstimateTransparency scores a product description and its answers.
func EstimateTransparency(description string, answers map[string]string) int {
	return ExplainTransparency(description, answers).Score
}

// ExplainTransparency computes the transparency score and the terms that
// contributed to it.
func ExplainTransparency(description string, answers map[string]string) ScoreBreakdown {
	b := ScoreBreakdown{RawScore: baseTransparencyScore}

	lowered := strings.ToLower(description)
	for _, kw := range transparencyKeywords {
		if strings.Contains(lowered, kw) {
			b.MatchedKeywords = append(b.MatchedKeywords, kw)
			b.RawScore += keywordBonus
		}
	}

	for _, answer := range answers {
		if len(strings.Fields(answer)) > minDetailedAnswerWords {
			b.DetailedAnswers++
			b.RawScore += answerBonus
		}
	}

	b.Score = clampScore(b.RawScore)
	return b
}

func clampScore(score int) int {
	if score > maxTransparencyScore {
		return maxTransparencyScore
	}
	if score < minTransparencyScore {
		return minTransparencyScore
	}
	return score
}
