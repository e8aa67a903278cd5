package teacher

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Moorhen/internal/dto"
	"github.com/lshigami/Moorhen/internal/middleware"
	"github.com/lshigami/Moorhen/internal/service"
	"github.com/rs/zerolog/log"
)

type TeacherQuizController struct {
	teacherQuizService service.TeacherQuizService
}

func NewTeacherQuizController(teacherQuizService service.TeacherQuizService) *TeacherQuizController {
	return &TeacherQuizController{teacherQuizService: teacherQuizService}
}

// CreateQuiz godoc
// @Summary (Teacher) Create a quiz
// @Description Creates a quiz, optionally with nested questions and options. Requires the teacher role.
// @Tags Teacher - Quizzes
// @Accept json
// @Produce json
// @Param quiz_data body dto.QuizCreateDTO true "Quiz with optional nested questions"
// @Success 201 {object} dto.QuizResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 403 {object} dto.ErrorResponse "Caller lacks write access"
// @Router /quizzes [post]
func (c *TeacherQuizController) CreateQuiz(ctx *gin.Context) {
	var req dto.QuizCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Teacher CreateQuiz: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	identity := middleware.IdentityFromContext(ctx)
	quizResp, err := c.teacherQuizService.CreateQuiz(identity.UserID, req)
	if err != nil {
		log.Error().Err(err).Msg("Teacher CreateQuiz: service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to create quiz", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, quizResp)
}

// UpdateQuiz godoc
// @Summary (Teacher) Update quiz metadata
// @Description Updates a quiz's title and description. Requires the teacher role.
// @Tags Teacher - Quizzes
// @Accept json
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Param quiz_data body dto.QuizUpdateDTO true "New title and description"
// @Success 200 {object} dto.QuizResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quizzes/{quiz_id} [put]
func (c *TeacherQuizController) UpdateQuiz(ctx *gin.Context) {
	quizID, err := strconv.ParseUint(ctx.Param("quiz_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid quiz ID format"})
		return
	}

	var req dto.QuizUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	quizResp, err := c.teacherQuizService.UpdateQuiz(uint(quizID), req)
	if err != nil {
		if errors.Is(err, service.ErrQuizNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Uint64("quizID", quizID).Msg("Teacher UpdateQuiz: service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to update quiz", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, quizResp)
}

// AddQuestion godoc
// @Summary (Teacher) Add a question to a quiz
// @Description Adds a question with its options to an existing quiz. Requires the teacher role.
// @Tags Teacher - Quizzes
// @Accept json
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Param question_data body dto.QuestionCreateDTO true "Question with options"
// @Success 201 {object} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quizzes/{quiz_id}/questions [post]
func (c *TeacherQuizController) AddQuestion(ctx *gin.Context) {
	quizID, err := strconv.ParseUint(ctx.Param("quiz_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid quiz ID format"})
		return
	}

	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	questionResp, err := c.teacherQuizService.AddQuestion(uint(quizID), req)
	if err != nil {
		if errors.Is(err, service.ErrQuizNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Uint64("quizID", quizID).Msg("Teacher AddQuestion: service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to add question", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, questionResp)
}

// AddOption godoc
// @Summary (Teacher) Add an option to a question
// @Description Adds a selectable option to an existing question. Requires the teacher role.
// @Tags Teacher - Quizzes
// @Accept json
// @Produce json
// @Param question_id path int true "Question ID"
// @Param option_data body dto.OptionCreateDTO true "Option text and correctness"
// @Success 201 "Created"
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /questions/{question_id}/options [post]
func (c *TeacherQuizController) AddOption(ctx *gin.Context) {
	questionID, err := strconv.ParseUint(ctx.Param("question_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid question ID format"})
		return
	}

	var req dto.OptionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	if err := c.teacherQuizService.AddOption(uint(questionID), req); err != nil {
		if errors.Is(err, service.ErrQuestionNotInQuiz) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "question not found"})
			return
		}
		log.Error().Err(err).Uint64("questionID", questionID).Msg("Teacher AddOption: service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to add option", Details: []string{err.Error()}})
		return
	}
	ctx.Status(http.StatusCreated)
}
