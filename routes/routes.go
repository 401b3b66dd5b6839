package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/c13-isotope/landingpage/config"
	"github.com/c13-isotope/landingpage/middleware"
	"github.com/c13-isotope/landingpage/utils"
)

// SetupRouter builds the gin.Engine and registers every route.
func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RecoveryMiddleware())

	// CORS before any route
	allowList, allowAll := utils.ParseOriginList(cfg.ClientOrigin)
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "x-admin-key"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if allowAll {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOriginFunc = func(origin string) bool {
			incoming := utils.NormalizeOrigin(origin)
			for _, allowed := range allowList {
				if incoming == allowed {
					return true
				}
			}
			return false
		}
	}
	r.Use(cors.New(corsCfg))

	api := r.Group("/api")
	api.Use(middleware.RateLimitMiddleware(cfg.RateLimitMax, time.Duration(cfg.RateLimitWindow)*time.Second))

	SetupMessageRoutes(api)
	SetupBlogRoutes(api, cfg)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "env": cfg.AppEnv})
	})
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Landing page API is live with MongoDB!")
	})

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	return r
}
