package student

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

type StudentAttemptController struct {
	attemptService    service.AttemptService
	submissionService service.SubmissionService
}

func NewStudentAttemptController(
	attemptService service.AttemptService,
	submissionService service.SubmissionService,
) *StudentAttemptController {
	return &StudentAttemptController{
		attemptService:    attemptService,
		submissionService: submissionService,
	}
}

// StartAttempt godoc
// @Summary (Student) Start a new attempt
// @Description Creates a pending attempt against a quiz, owned by the caller.
// @Tags Student - Attempts
// @Accept json
// @Produce json
// @Param attempt_data body dto.AttemptCreateDTO true "Quiz id to attempt"
// @Success 201 {object} dto.AttemptSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /attempts [post]
func (c *StudentAttemptController) StartAttempt(ctx *gin.Context) {
	var req dto.AttemptCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	identity := middleware.IdentityFromContext(ctx)
	attempt, err := c.attemptService.StartAttempt(identity.UserID, req)
	if err != nil {
		if errors.Is(err, service.ErrQuizNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Uint("userID", identity.UserID).Msg("Student StartAttempt: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to start attempt", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, attempt)
}

// ListAttempts godoc
// @Summary (Student) List the caller's attempts
// @Description Lists only the caller's own attempts, most recent first.
// @Tags Student - Attempts
// @Produce json
// @Success 200 {array} dto.AttemptSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attempts [get]
func (c *StudentAttemptController) ListAttempts(ctx *gin.Context) {
	identity := middleware.IdentityFromContext(ctx)
	attempts, err := c.attemptService.ListUserAttempts(identity.UserID)
	if err != nil {
		log.Error().Err(err).Uint("userID", identity.UserID).Msg("Student ListAttempts: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve attempts", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, attempts)
}

// GetAttemptDetails godoc
// @Summary (Student) Get one of the caller's attempts
// @Description Full attempt detail with recorded answers. Attempts owned by other users look like missing ones.
// @Tags Student - Attempts
// @Produce json
// @Param attempt_id path int true "Attempt ID"
// @Success 200 {object} dto.AttemptDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid attempt ID format"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Router /attempts/{attempt_id} [get]
func (c *StudentAttemptController) GetAttemptDetails(ctx *gin.Context) {
	attemptID, err := strconv.ParseUint(ctx.Param("attempt_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid attempt ID format"})
		return
	}

	identity := middleware.IdentityFromContext(ctx)
	detail, err := c.attemptService.GetAttemptDetails(uint(attemptID), identity.UserID)
	if err != nil {
		if errors.Is(err, service.ErrAttemptNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Uint64("attemptID", attemptID).Msg("Student GetAttemptDetails: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve attempt", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

// SubmitAttempt godoc
// @Summary (Student) Submit answers for an attempt
// @Description Validates and grades the batch of answers, finalizes the attempt and returns the score. All-or-nothing: any invalid entry leaves the attempt untouched.
// @Tags Student - Attempts
// @Accept json
// @Produce json
// @Param attempt_id path int true "Attempt ID"
// @Param submission body dto.AttemptSubmitDTO true "Answers, one entry per question"
// @Success 200 {object} dto.ScoreResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Malformed payload, invalid question/option, misconfigured question, or already submitted"
// @Failure 404 {object} dto.ErrorResponse "Attempt missing or not owned by caller"
// @Router /attempts/{attempt_id}/submit [post]
func (c *StudentAttemptController) SubmitAttempt(ctx *gin.Context) {
	attemptID, err := strconv.ParseUint(ctx.Param("attempt_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid attempt ID format"})
		return
	}

	var req dto.AttemptSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Student SubmitAttempt: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	identity := middleware.IdentityFromContext(ctx)
	score, err := c.submissionService.SubmitAttempt(uint(attemptID), identity.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAttemptNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		case errors.Is(err, service.ErrAlreadySubmitted),
			errors.Is(err, service.ErrQuestionNotInQuiz),
			errors.Is(err, service.ErrOptionNotInQuestion),
			errors.Is(err, service.ErrQuestionMisconfigured):
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		default:
			log.Error().Err(err).Uint64("attemptID", attemptID).Msg("Student SubmitAttempt: service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to submit attempt", Details: []string{err.Error()}})
		}
		return
	}
	ctx.JSON(http.StatusOK, dto.ScoreResponseDTO{Score: score})
}
