package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/c13-isotope/landingpage/controllers"
)

func SetupMessageRoutes(api *gin.RouterGroup) {
	messageController := controllers.NewMessageController()
	grp := api.Group("/message")
	{
		grp.GET("", messageController.Ping)
		grp.POST("", messageController.Create)
		grp.GET("/all", messageController.List)
		grp.PUT("/:id", messageController.Update)
		grp.DELETE("/:id", messageController.Delete)
		grp.GET("/search", messageController.Search)
	}
}
