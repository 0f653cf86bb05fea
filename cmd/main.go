package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/intervia/testbank/config"
	"github.com/intervia/testbank/database"
	_ "github.com/intervia/testbank/docs" // Swagger docs - auto-generated
	"github.com/intervia/testbank/internal/controller"
	"github.com/intervia/testbank/internal/logger"
	"github.com/intervia/testbank/internal/middleware"
	"github.com/intervia/testbank/internal/model"
	"github.com/intervia/testbank/internal/rbac"
	"github.com/intervia/testbank/internal/repository"
	"github.com/intervia/testbank/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Interview Test Platform API
// @version 1.0
// @description Role-gated interview question bank with frozen-snapshot tests and automated grading.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
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
			repository.NewRoleRepository,
			repository.NewUserRepository,
			repository.NewCategoryRepository,
			repository.NewSubcategoryRepository,
			repository.NewQuestionRepository,
			repository.NewTestRepository,
			repository.NewCandidateRepository,
			repository.NewResponseRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewTokenService,
			service.NewAuthService,
			service.NewRoleService,
			service.NewCategoryService,
			service.NewQuestionService,
			service.NewTestCodeGenerator,
			service.NewTestService,
			service.NewSubmissionService,
			service.NewResultService,
		),

		// API Controllers Layer
		fx.Provide(
			controller.NewAuthController,
			controller.NewRoleController,
			controller.NewCategoryController,
			controller.NewQuestionController,
			controller.NewTestController,
			controller.NewCandidateController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
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
	tokens service.TokenService,
	authCtrl *controller.AuthController,
	roleCtrl *controller.RoleController,
	categoryCtrl *controller.CategoryController,
	questionCtrl *controller.QuestionController,
	testCtrl *controller.TestController,
	candidateCtrl *controller.CandidateController,
) {
	api := router.Group("/api/v1")

	// Public routes
	api.POST("/auth/register", authCtrl.Register)
	api.POST("/auth/login", authCtrl.Login)
	api.POST("/candidates/submit", candidateCtrl.SubmitTest)

	// Authenticated routes
	authed := api.Group("")
	authed.Use(middleware.Authenticate(tokens))
	{
		users := authed.Group("/users", middleware.Require(rbac.ActionManageUsers))
		users.GET("", authCtrl.GetUsers)
		users.GET("/:id", authCtrl.GetUser)

		roles := authed.Group("/roles")
		roles.GET("", roleCtrl.GetRoles)
		roles.GET("/:id", roleCtrl.GetRole)
		roles.POST("", middleware.Require(rbac.ActionManageRoles), roleCtrl.CreateRole)
		roles.DELETE("/:id", middleware.Require(rbac.ActionManageRoles), roleCtrl.DeleteRole)

		categories := authed.Group("/categories")
		categories.GET("", categoryCtrl.GetCategories)
		categories.GET("/:id", categoryCtrl.GetCategory)
		categories.POST("", middleware.Require(rbac.ActionManageCategories), categoryCtrl.CreateCategory)
		categories.DELETE("/:id", middleware.Require(rbac.ActionManageCategories), categoryCtrl.DeleteCategory)

		subcategories := authed.Group("/subcategories")
		subcategories.GET("/:id", categoryCtrl.GetSubcategory)
		subcategories.GET("/category/:category_id", categoryCtrl.GetSubcategoriesByCategory)
		subcategories.POST("", middleware.Require(rbac.ActionManageCategories), categoryCtrl.CreateSubcategory)
		subcategories.DELETE("/:id", middleware.Require(rbac.ActionManageCategories), categoryCtrl.DeleteSubcategory)

		questions := authed.Group("/questions")
		questions.GET("", questionCtrl.GetQuestions)
		questions.GET("/:id", questionCtrl.GetQuestion)
		questions.GET("/category/:category_id", questionCtrl.GetQuestionsByCategory)
		questions.GET("/subcategory/:subcategory_id", questionCtrl.GetQuestionsBySubcategory)
		questions.GET("/difficulty/:difficulty", questionCtrl.GetQuestionsByDifficulty)
		questions.POST("", middleware.Require(rbac.ActionManageQuestions), questionCtrl.CreateQuestion)
		questions.PUT("/:id", middleware.Require(rbac.ActionManageQuestions), questionCtrl.UpdateQuestion)
		questions.DELETE("/:id", middleware.Require(rbac.ActionManageQuestions), questionCtrl.DeleteQuestion)

		tests := authed.Group("/tests")
		tests.GET("/questions", questionCtrl.GetQuestionsForTest)
		tests.GET("/my-tests", testCtrl.GetMyTests)
		tests.GET("/:test_code", testCtrl.GetTestByCode)
		tests.POST("/create", middleware.Require(rbac.ActionCreateTests), testCtrl.CreateTest)

		candidates := authed.Group("/candidates")
		candidates.GET("/result/:candidate_id", middleware.Require(rbac.ActionViewResults), candidateCtrl.GetCandidateResult)
		candidates.GET("/results", middleware.Require(rbac.ActionViewResults), candidateCtrl.GetAllResults)
		candidates.DELETE("/response/:response_id", middleware.Require(rbac.ActionDeleteCandidates), candidateCtrl.DeleteResponse)
		candidates.DELETE("/:candidate_id", middleware.Require(rbac.ActionDeleteCandidates), candidateCtrl.DeleteCandidate)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Interview Test Platform server starting on port %s", cfg.Server.Port)
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
		&model.Role{},
		&model.User{},
		&model.Category{},
		&model.Subcategory{},
		&model.Question{},
		&model.Test{},
		&model.Candidate{},
		&model.Response{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
