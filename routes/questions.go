package routes

import (
	"net/http"

	"transparencyhub/services"
	"transparencyhub/structs"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// GenerateQuestionsRouteHandler returns the follow-up questions for a product category
func GenerateQuestionsRouteHandler(c *gin.Context) {
	var req structs.QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	category, questions := services.SelectQuestions(req.CategoryOrDefault())
	log.Debug().Str("category", category).Msg("Selected questions")

	c.JSON(http.StatusOK, structs.QuestionResponse{
		Category:  category,
		Questions: questions,
	})
}
