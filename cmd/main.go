package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/Moorhen/config"
	"github.com/lshigami/Moorhen/database"
	_ "github.com/lshigami/Moorhen/docs" // Swagger docs - auto-generated
	"github.com/lshigami/Moorhen/internal/auth"
	"github.com/lshigami/Moorhen/internal/controller/authctrl"
	"github.com/lshigami/Moorhen/internal/controller/student"
	"github.com/lshigami/Moorhen/internal/controller/teacher"
	"github.com/lshigami/Moorhen/internal/logger"
	"github.com/lshigami/Moorhen/internal/middleware"
	"github.com/lshigami/Moorhen/internal/model"
	"github.com/lshigami/Moorhen/internal/repository"
	"github.com/lshigami/Moorhen/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Moorhen Quiz API
// @version 1.0
// @description REST API for authoring quizzes, taking attempts and exact-set grading.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories Layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewQuizRepository,
			repository.NewQuestionRepository,
			repository.NewOptionRepository,
			repository.NewAttemptRepository,
			repository.NewAnswerRepository,
		),

		// Services Layer
		fx.Provide(
			func(userRepo repository.UserRepository, cfg *config.Config) service.AuthService {
				return service.NewAuthService(userRepo, cfg.JWTSecret)
			},
			service.NewQuizService,
			service.NewTeacherQuizService,
			service.NewAttemptService,
			service.NewSubmissionService,
		),

		// API Controllers Layer
		fx.Provide(
			authctrl.NewAuthController,
			teacher.NewTeacherQuizController,
			student.NewStudentQuizController,
			student.NewStudentAttemptController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	// Route gin's request log through zerolog.
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authService service.AuthService,
	authCtrl *authctrl.AuthController,
	teacherQuizCtrl *teacher.TeacherQuizController,
	studentQuizCtrl *student.StudentQuizController,
	studentAttemptCtrl *student.StudentAttemptController,
) {
	writePerm := auth.TeacherOrReadOnly{}

	api := router.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		authGroup.POST("/register", authCtrl.Register)
		authGroup.POST("/login", authCtrl.Login)

		// Everything below requires an authenticated identity.
		authed := api.Group("")
		authed.Use(middleware.JWTAuth(authService))

		authed.GET("/quizzes", studentQuizCtrl.GetAllQuizzes)
		authed.GET("/quizzes/:quiz_id", studentQuizCtrl.GetQuizDetails)

		authed.POST("/attempts", studentAttemptCtrl.StartAttempt)
		authed.GET("/attempts", studentAttemptCtrl.ListAttempts)
		authed.GET("/attempts/:attempt_id", studentAttemptCtrl.GetAttemptDetails)
		authed.POST("/attempts/:attempt_id/submit", studentAttemptCtrl.SubmitAttempt)

		// Authoring endpoints sit behind the write gate.
		authoring := authed.Group("")
		authoring.Use(middleware.RequireWrite(writePerm))
		authoring.POST("/quizzes", teacherQuizCtrl.CreateQuiz)
		authoring.PUT("/quizzes/:quiz_id", teacherQuizCtrl.UpdateQuiz)
		authoring.POST("/quizzes/:quiz_id/questions", teacherQuizCtrl.AddQuestion)
		authoring.POST("/questions/:question_id/options", teacherQuizCtrl.AddOption)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Quiz API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Quiz{},
		&model.Question{},
		&model.Option{},
		&model.Attempt{},
		&model.Answer{},
		&model.AnswerOption{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
