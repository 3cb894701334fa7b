package route

import (
	"archviz/controller"

	"github.com/gin-gonic/gin"
)

// Unprotected mounts the routes open to any visitor.
func Unprotected(router *gin.Engine, h *controller.Handler) {
	router.GET("/", h.Root)

	api := router.Group("/api")
	api.GET("/projects", h.Projects.List)
	api.GET("/projects/categories", h.Categories)
	api.GET("/projects/:id", h.Projects.Get)

	api.GET("/blog", h.BlogPosts.List)
	api.GET("/blog/:id", h.BlogPosts.Get)

	api.GET("/testimonials", h.Testimonials.List)
	api.GET("/testimonials/:id", h.Testimonials.Get)

	api.GET("/settings", h.GetSettings)
	api.POST("/contact", h.CreateContact)

	if h.LoginEnabled() {
		api.POST("/auth/login", h.Login)
		api.POST("/auth/logout", h.Logout)
	}
}
