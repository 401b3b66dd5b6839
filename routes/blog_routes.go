package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/c13-isotope/landingpage/config"
	"github.com/c13-isotope/landingpage/controllers"
	"github.com/c13-isotope/landingpage/middleware"
)

func SetupBlogRoutes(api *gin.RouterGroup, cfg *config.Config) {
	blogController := controllers.NewBlogController(time.Duration(cfg.CacheTTL) * time.Second)
	grp := api.Group("/blog")
	{
		// Public
		grp.GET("/public/list", blogController.ListPublic)
		grp.GET("/public/search", blogController.SearchPublic)
		grp.GET("/public/resolve/:slug", blogController.ResolvePublic)
		grp.GET("/public/:slug", blogController.GetPublicBySlug)

		// Admin (protected by x-admin-key header)
		grp.POST("", middleware.AdminKeyMiddleware(), blogController.Create)
		grp.PUT("/:id", middleware.AdminKeyMiddleware(), blogController.Update)
		grp.DELETE("/:id", middleware.AdminKeyMiddleware(), blogController.Delete)
	}
}
