package route

import (
	"archviz/controller"
	mw "archviz/middlewares"

	"github.com/gin-gonic/gin"
)

// Protected mounts writes and admin listings. They require an admin token
// when secret is set and are open otherwise.
func Protected(router *gin.Engine, h *controller.Handler, secret string) {
	protected := router.Group("/api")
	if secret != "" {
		protected.Use(mw.JWT(secret))
	}

	protected.POST("/projects", h.Projects.Create)
	protected.PUT("/projects/:id", h.Projects.Update)
	protected.DELETE("/projects/:id", h.Projects.Delete)

	protected.POST("/blog", h.BlogPosts.Create)
	protected.PUT("/blog/:id", h.BlogPosts.Update)
	protected.DELETE("/blog/:id", h.BlogPosts.Delete)

	protected.POST("/testimonials", h.Testimonials.Create)
	protected.PUT("/testimonials/:id", h.Testimonials.Update)
	protected.DELETE("/testimonials/:id", h.Testimonials.Delete)

	protected.PUT("/settings", h.UpdateSettings)
	protected.GET("/contacts", h.ListContacts)

	if h.UploadsEnabled() {
		protected.POST("/uploads", h.Upload)
	}
}
