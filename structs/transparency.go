package structs

import "sort"

// TransparencyRequest is the body of POST /transparency-score.
// AIAnswers is decoded loosely so that non-string values can be skipped
// instead of failing the whole request.
type TransparencyRequest struct {
	Description *string        `json:"description"`
	AIAnswers   map[string]any `json:"aiAnswers"`
}

// DescriptionOrDefault returns the description, or "" when absent.
func (r TransparencyRequest) DescriptionOrDefault() string {
	if r.Description == nil {
		return ""
	}
	return *r.Description
}

// TextAnswers returns the string-valued answers and the sorted keys of any
// entries that were skipped because their value was not a string.
func (r TransparencyRequest) TextAnswers() (map[string]string, []string) {
	answers := make(map[string]string, len(r.AIAnswers))
	var skipped []string
	for key, value := range r.AIAnswers {
		text, ok := value.(string)
		if !ok {
			skipped = append(skipped, key)
			continue
		}
		answers[key] = text
	}
	sort.Strings(skipped)
	return answers, skipped
}

type TransparencyResponse struct {
	TransparencyScore int `json:"transparency_score"`
}
