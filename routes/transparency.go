package routes

import (
	"net/http"

	"transparencyhub/services"
	"transparencyhub/structs"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// TransparencyScoreRouteHandler scores a product description and its AI answers.
// Answers that are not strings are skipped rather than failing the request.
func TransparencyScoreRouteHandler(c *gin.Context) {
	var req structs.TransparencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	answers, skipped := req.TextAnswers()
	if len(skipped) > 0 {
		log.Debug().Strs("keys", skipped).Msg("Skipping non-text answers")
	}

	breakdown := services.ExplainTransparency(req.DescriptionOrDefault(), answers)
	log.Debug().
		Int("score", breakdown.Score).
		Int("raw_score", breakdown.RawScore).
		Strs("keywords", breakdown.MatchedKeywords).
		Int("detailed_answers", breakdown.DetailedAnswers).
		Msg("Computed transparency score")

	c.JSON(http.StatusOK, structs.TransparencyResponse{TransparencyScore: breakdown.Score})
}
