package student

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Moorhen/internal/dto"
	"github.com/lshigami/Moorhen/internal/service"
	"github.com/rs/zerolog/log"
)

type StudentQuizController struct {
	quizService service.QuizService
}

func NewStudentQuizController(quizService service.QuizService) *StudentQuizController {
	return &StudentQuizController{quizService: quizService}
}

// GetAllQuizzes godoc
// @Summary (Student) List available quizzes
// @Description Lists quizzes with their question counts.
// @Tags Student - Quizzes
// @Produce json
// @Success 200 {array} dto.QuizSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes [get]
func (c *StudentQuizController) GetAllQuizzes(ctx *gin.Context) {
	quizzes, err := c.quizService.GetAllQuizzes()
	if err != nil {
		log.Error().Err(err).Msg("Student GetAllQuizzes: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve quizzes", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, quizzes)
}

// GetQuizDetails godoc
// @Summary (Student) Get a quiz with its questions and options
// @Description Full quiz content for taking an attempt. Options never include the correctness flag.
// @Tags Student - Quizzes
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {object} dto.QuizResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid quiz ID format"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quizzes/{quiz_id} [get]
func (c *StudentQuizController) GetQuizDetails(ctx *gin.Context) {
	quizID, err := strconv.ParseUint(ctx.Param("quiz_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid quiz ID format"})
		return
	}

	quiz, err := c.quizService.GetQuizDetails(uint(quizID))
	if err != nil {
		if errors.Is(err, service.ErrQuizNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Uint64("quizID", quizID).Msg("Student GetQuizDetails: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve quiz", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, quiz)
}
