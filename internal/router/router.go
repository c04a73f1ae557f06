package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/taskflow-dev/taskflow/internal/handlers"
)

func New(allowedOrigins []string, h *handlers.Handler, requireAuth gin.HandlerFunc) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.HealthCheck)
	r.GET("/protected", requireAuth, h.Protected)

	api := r.Group("/api")
	{
		api.POST("/register", h.Register)
		api.POST("/login", h.Login)
		api.GET("/users/me", requireAuth, h.Me)
		api.GET("/ws/:board_id", requireAuth, h.BoardSocket)

		boards := api.Group("/boards", requireAuth)
		{
			boards.GET("", h.ListBoards)
			boards.POST("", h.CreateBoard)
			boards.GET("/:board_id", h.GetBoard)
			boards.PUT("/:board_id", h.UpdateBoard)
			boards.DELETE("/:board_id", h.DeleteBoard)

			boards.POST("/:board_id/columns", h.CreateColumn)

			boards.GET("/:board_id/epics", h.ListEpics)
			boards.POST("/:board_id/epics", h.CreateEpic)
		}

		columns := api.Group("/columns", requireAuth)
		{
			columns.PUT("/:column_id", h.UpdateColumn)
			columns.DELETE("/:column_id", h.DeleteColumn)

			columns.POST("/:column_id/tasks", h.CreateTask)
		}

		tasks := api.Group("/tasks", requireAuth)
		{
			tasks.GET("/:task_id", h.GetTask)
			tasks.PUT("/:task_id", h.UpdateTask)
			tasks.PATCH("/:task_id", h.UpdateTask)
			tasks.DELETE("/:task_id", h.DeleteTask)
		}

		epics := api.Group("/epics", requireAuth)
		{
			epics.GET("/:epic_id", h.GetEpic)
			epics.PUT("/:epic_id", h.UpdateEpic)
			epics.DELETE("/:epic_id", h.DeleteEpic)
		}
	}

	return r
}
