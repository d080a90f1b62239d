package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/workforcehq/workforce-api/internal/config"
	"github.com/workforcehq/workforce-api/internal/database"
	"github.com/workforcehq/workforce-api/internal/handlers"
	"github.com/workforcehq/workforce-api/internal/middleware"
	"github.com/workforcehq/workforce-api/internal/repository"
	"github.com/workforcehq/workforce-api/internal/services"
	"go.uber.org/zap"
)

func main() {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	logger, err := newLogger(cfg.GinMode)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	// Repositories
	sequenceRepo := repository.NewSequenceRepository(db)
	officeRepo := repository.NewOfficeRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	accountRepo := repository.NewUserAccountRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	// Services
	sequenceService := services.NewSequenceService(sequenceRepo)
	officeService := services.NewOfficeService(officeRepo, sequenceService, logger)
	roleService := services.NewRoleService(roleRepo, sequenceService, logger)
	teamService := services.NewTeamService(teamRepo, sequenceService, logger)
	accountService := services.NewUserAccountService(accountRepo, teamRepo, officeRepo, roleRepo, sequenceService, logger)
	taskService := services.NewTaskService(taskRepo, accountRepo, sequenceService, logger)
	logWorkService := services.NewLogWorkService(taskRepo, logger)

	// Handlers
	officeHandler := handlers.NewOfficeHandler(officeService)
	roleHandler := handlers.NewRoleHandler(roleService)
	teamHandler := handlers.NewTeamHandler(teamService, accountService)
	accountHandler := handlers.NewUserAccountHandler(accountService)
	taskHandler := handlers.NewTaskHandler(taskService)
	logWorkHandler := handlers.NewLogWorkHandler(logWorkService)

	r := gin.New()
	r.Use(middleware.RequestLogger(logger), gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		offices := api.Group("/offices")
		{
			offices.POST("", officeHandler.CreateOffice)
			offices.GET("", officeHandler.SearchOffices)
			offices.GET("/:id", officeHandler.GetOffice)
			offices.PUT("", officeHandler.UpdateOffice)
			offices.DELETE("/:id", officeHandler.DeleteOffice)
		}

		roles := api.Group("/roles")
		{
			roles.POST("", roleHandler.CreateRole)
			roles.GET("", roleHandler.SearchRoles)
			roles.GET("/:id", roleHandler.GetRole)
			roles.PUT("", roleHandler.UpdateRole)
			roles.DELETE("/:id", roleHandler.DeleteRole)
		}

		teams := api.Group("/teams")
		{
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("", teamHandler.SearchTeams)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.PUT("", teamHandler.UpdateTeam)
			teams.DELETE("/:id", teamHandler.DeleteTeam)
			teams.POST("/:id/users", teamHandler.AddUsersToTeam)
			teams.DELETE("/:id/users", teamHandler.RemoveUsersFromTeam)
		}

		accounts := api.Group("/user-accounts")
		{
			accounts.POST("", accountHandler.CreateUserAccount)
			accounts.GET("", accountHandler.SearchUserAccounts)
			accounts.GET("/:id", accountHandler.GetUserAccount)
			accounts.PUT("", accountHandler.UpdateUserAccount)
			accounts.DELETE("/:id", accountHandler.DeleteUserAccount)
		}

		tasks := api.Group("/tasks")
		{
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("", taskHandler.SearchTasks)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.PUT("", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
			tasks.PATCH("/:id/assignee", taskHandler.AssignTask)

			tasks.POST("/:id/logworks", logWorkHandler.CreateLogWork)
			tasks.GET("/:id/logworks", logWorkHandler.ListLogWorks)
			tasks.GET("/:id/logworks/:logworkId", logWorkHandler.GetLogWork)
			tasks.PUT("/:id/logworks", logWorkHandler.UpdateLogWork)
			tasks.DELETE("/:id/logworks/:logworkId", logWorkHandler.DeleteLogWork)
		}
	}

	logger.Info("server starting", zap.String("port", cfg.ServerPort))
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(mode string) (*zap.Logger, error) {
	if mode == gin.ReleaseMode {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
