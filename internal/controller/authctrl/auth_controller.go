package authctrl

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Moorhen/internal/dto"
	"github.com/lshigami/Moorhen/internal/service"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register godoc
// @Summary Register a new user
// @Description Creates a user account and returns a bearer token. Role defaults to "student".
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body dto.RegisterDTO true "Username, password and optional role"
// @Success 201 {object} dto.TokenResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input or username taken"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	token, err := c.authService.Register(req)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Str("username", req.Username).Msg("Register: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to register user"})
		return
	}
	ctx.JSON(http.StatusCreated, dto.TokenResponseDTO{Token: token})
}

// Login godoc
// @Summary Log in
// @Description Verifies credentials and returns a bearer token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginDTO true "Username and password"
// @Success 200 {object} dto.TokenResponseDTO
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	token, err := c.authService.Login(req)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid credentials"})
		return
	}
	ctx.JSON(http.StatusOK, dto.TokenResponseDTO{Token: token})
}
