package http

import (
	"marceneiro/internal/adapter/http/handlers"
	"marceneiro/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Health *handlers.HealthHandler
	Obras  *handlers.ObraHandler
	Tasks  *handlers.TaskHandler
	Board  *handlers.BoardHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)

		obras := api.Group("/obras")
		{
			obras.GET("", h.Obras.ListObras)
			obras.POST("", h.Obras.CreateObra)
			obras.GET("/:id", h.Obras.GetObra)
			obras.DELETE("/:id", h.Obras.DeleteObra)
			obras.POST("/:id/status/next", h.Obras.CycleStatus)
			obras.GET("/:id/tarefas", h.Tasks.ListTasks)
			obras.POST("/:id/tarefas", h.Tasks.CreateTask)
			obras.PATCH("/:id/tarefas/:taskId", h.Tasks.UpdateTask)
			obras.GET("/:id/quadro", h.Board.GetBoard)
		}

		api.GET("/selecao", h.Board.GetSelection)
		api.PUT("/selecao", h.Board.SelectObra)
	}

	r.NoRoute(middleware.LanguageMiddleware(), handlers.NotFound)
}
