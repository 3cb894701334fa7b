package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Categories lists the distinct project categories.
func (h *Handler) Categories(c *gin.Context) {
	ctx, cancel := h.context(c)
	defer cancel()

	categories, err := h.Projects.coll.Distinct(ctx, "category")
	if err != nil {
		fail(c, err, "Project not found")
		return
	}
	c.JSON(http.StatusOK, categories)
}
