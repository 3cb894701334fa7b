package controller

import (
	"net/http"

	"archviz/media"
	"archviz/schema"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Upload stores the multipart "image" file and returns its public URL.
func (h *Handler) Upload(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		fail(c, &schema.Error{Fields: []schema.FieldError{{Field: "image", Message: "file required"}}}, "")
		return
	}

	content, err := file.Open()
	if err != nil {
		fail(c, err, "")
		return
	}
	defer content.Close()

	key := media.ObjectKey(c.DefaultPostForm("folder", "projects"), uuid.NewString(), file.Filename)

	ctx, cancel := h.context(c)
	defer cancel()

	url, err := h.uploader.Upload(ctx, key, content, file.Header.Get("Content-Type"))
	if err != nil {
		fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url, "key": key})
}
