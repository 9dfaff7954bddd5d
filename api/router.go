// Package api assembles the HTTP surface: repositories, controllers,
// handlers and routes.
package api

import (
	"github.com/avivsarig/gtd/api/handlers"
	"github.com/avivsarig/gtd/pkg/controllers"
	"github.com/avivsarig/gtd/pkg/repository"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewRouter wires the full application and returns the gin engine.
func NewRouter(db *gorm.DB, log *zap.Logger) *gin.Engine {
	taskRepo := repository.NewTaskRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	contextRepo := repository.NewContextRepository(db)
	inboxRepo := repository.NewInboxRepository(db)
	searchRepo := repository.NewSearchRepository(db)

	taskCtrl := controllers.NewTaskController(taskRepo)
	projectCtrl := controllers.NewProjectController(projectRepo)
	noteCtrl := controllers.NewNoteController(noteRepo)
	contextCtrl := controllers.NewContextController(contextRepo)
	inboxCtrl := controllers.NewInboxController(inboxRepo, taskCtrl, noteCtrl, projectCtrl)
	searchCtrl := controllers.NewSearchController(searchRepo)

	taskHandler := handlers.NewTaskHandler(taskCtrl)
	projectHandler := handlers.NewProjectHandler(projectCtrl)
	noteHandler := handlers.NewNoteHandler(noteCtrl)
	contextHandler := handlers.NewContextHandler(contextCtrl)
	inboxHandler := handlers.NewInboxHandler(inboxCtrl)
	searchHandler := handlers.NewSearchHandler(searchCtrl)

	r := gin.New()
	r.Use(RequestLogger(log), gin.Recovery())

	// Ping endpoint for health check
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	v1 := r.Group("/api/v1")
	{
		v1.GET("/tasks", taskHandler.List)
		v1.POST("/tasks", taskHandler.Create)
		v1.GET("/tasks/:id", taskHandler.Get)
		v1.PUT("/tasks/:id", taskHandler.Update)
		v1.DELETE("/tasks/:id", taskHandler.Delete)
		v1.POST("/tasks/:id/complete", taskHandler.Complete)
		v1.POST("/tasks/:id/uncomplete", taskHandler.Uncomplete)
		v1.POST("/tasks/bulk/status", taskHandler.BulkStatus)

		v1.GET("/projects", projectHandler.List)
		v1.POST("/projects", projectHandler.Create)
		v1.GET("/projects/:id", projectHandler.Get)
		v1.PUT("/projects/:id", projectHandler.Update)
		v1.DELETE("/projects/:id", projectHandler.Delete)
		v1.POST("/projects/:id/complete", projectHandler.Complete)

		v1.GET("/notes", noteHandler.List)
		v1.POST("/notes", noteHandler.Create)
		v1.GET("/notes/:id", noteHandler.Get)
		v1.PUT("/notes/:id", noteHandler.Update)
		v1.DELETE("/notes/:id", noteHandler.Delete)

		v1.GET("/contexts", contextHandler.List)
		v1.POST("/contexts", contextHandler.Create)
		v1.GET("/contexts/:id", contextHandler.Get)
		v1.PUT("/contexts/:id", contextHandler.Update)
		v1.DELETE("/contexts/:id", contextHandler.Delete)

		v1.GET("/inbox", inboxHandler.List)
		v1.GET("/inbox/count", inboxHandler.Count)
		v1.POST("/inbox", inboxHandler.Create)
		v1.GET("/inbox/:id", inboxHandler.Get)
		v1.PUT("/inbox/:id", inboxHandler.Update)
		v1.DELETE("/inbox/:id", inboxHandler.Delete)
		v1.POST("/inbox/:id/convert-to-task", inboxHandler.ConvertToTask)
		v1.POST("/inbox/:id/convert-to-note", inboxHandler.ConvertToNote)
		v1.POST("/inbox/:id/convert-to-project", inboxHandler.ConvertToProject)

		v1.GET("/search", searchHandler.Search)
	}

	return r
}
