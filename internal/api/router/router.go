package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/aliskhannn/notification-dispatcher/internal/api/handlers/deadletter"
	"github.com/aliskhannn/notification-dispatcher/internal/api/handlers/notification"
	"github.com/aliskhannn/notification-dispatcher/internal/middlewares"
)

func New(notifHandler *notification.Handler, dlqHandler *deadletter.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.CORSMiddleware())
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	notifications := e.Group("/api/v1/notifications")
	{
		notifications.POST("", notifHandler.Create)
		notifications.POST("/broadcast", notifHandler.CreateBroadcast)
		notifications.GET("/status/:id", notifHandler.GetStatus)
		notifications.POST("/status/bulk", notifHandler.GetBulkStatus)
		notifications.PATCH("/status", notifHandler.UpdateStatus)
		notifications.GET("/user/:user_id", notifHandler.ListByUser)
		notifications.GET("/list/:status", notifHandler.ListByStatus)
		notifications.GET("/stats", notifHandler.Stats)
	}

	deadLetter := e.Group("/api/v1/dead-letter")
	{
		deadLetter.GET("", dlqHandler.List)
		deadLetter.GET("/stats", dlqHandler.Stats)
		deadLetter.GET("/:id", dlqHandler.Get)
		deadLetter.POST("/:id/retry", dlqHandler.Retry)
		deadLetter.POST("/retry/bulk", dlqHandler.RetryBulk)
		deadLetter.DELETE("/:id", dlqHandler.Clear)
	}

	return e
}
