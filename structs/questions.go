package structs

import "transparencyhub/services"

// QuestionRequest is the body of POST /generate-questions.
// A missing or null category falls back to services.DefaultCategory.
type QuestionRequest struct {
	Category *string `json:"category"`
}

// CategoryOrDefault returns the requested category with the default applied.
func (r QuestionRequest) CategoryOrDefault() string {
	if r.Category == nil {
		return services.DefaultCategory
	}
	return *r.Category
}

type QuestionResponse struct {
	Category  string   `json:"category"`
	Questions []string `json:"questions"`
}
