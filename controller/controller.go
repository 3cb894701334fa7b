package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"archviz/config"
	"archviz/database"
	"archviz/media"
	"archviz/models"
	"archviz/schema"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Handler serves the portfolio API. It holds no request state; every call
// does at most one store round trip.
type Handler struct {
	Projects     *Resource[models.Project, *models.Project]
	BlogPosts    *Resource[models.BlogPost, *models.BlogPost]
	Testimonials *Resource[models.Testimonial, *models.Testimonial]

	settings *database.Collection[models.Settings]
	contacts *database.Collection[models.Contact]

	timeout  time.Duration
	now      func() time.Time
	auth     config.AuthConfig
	uploader media.Uploader
}

type Option func(*Handler)

// WithTimeout bounds each store call.
func WithTimeout(d time.Duration) Option {
	return func(h *Handler) { h.timeout = d }
}

// WithClock replaces time.Now for server-assigned timestamps.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) { h.now = now }
}

// WithAuth enables the login endpoint.
func WithAuth(auth config.AuthConfig) Option {
	return func(h *Handler) { h.auth = auth }
}

// WithUploader enables image uploads.
func WithUploader(u media.Uploader) Option {
	return func(h *Handler) { h.uploader = u }
}

func NewHandler(db database.Database, opts ...Option) *Handler {
	h := &Handler{
		settings: database.NewCollection[models.Settings](db, models.SettingsCollection),
		contacts: database.NewCollection[models.Contact](db, models.ContactsCollection),
		timeout:  10 * time.Second,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}

	h.Projects = &Resource[models.Project, *models.Project]{
		h:        h,
		label:    "Project",
		coll:     database.NewCollection[models.Project](db, models.ProjectsCollection),
		schema:   models.ProjectSchema,
		preserve: []string{"created_at"},
	}
	h.BlogPosts = &Resource[models.BlogPost, *models.BlogPost]{
		h:      h,
		label:  "Blog post",
		coll:   database.NewCollection[models.BlogPost](db, models.BlogPostsCollection),
		schema: models.BlogPostSchema,
		sort:   database.Newest("published_at"),
	}
	h.Testimonials = &Resource[models.Testimonial, *models.Testimonial]{
		h:      h,
		label:  "Testimonial",
		coll:   database.NewCollection[models.Testimonial](db, models.TestimonialsCollection),
		schema: models.TestimonialSchema,
	}
	return h
}

// UploadsEnabled reports whether an uploader was configured.
func (h *Handler) UploadsEnabled() bool {
	return h.uploader != nil
}

// LoginEnabled reports whether tokens can be issued over HTTP.
func (h *Handler) LoginEnabled() bool {
	return h.auth.Enabled() && h.auth.AdminPasswordHash != ""
}

func (h *Handler) context(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), h.timeout)
}

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Architectural Visualization Portfolio API"})
}

// NotFound answers unknown routes.
func (h *Handler) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"status": http.StatusNotFound, "detail": "not found"})
}

// fail maps err onto the error response taxonomy. missing is the detail for
// a NotFound.
func fail(c *gin.Context, err error, missing string) {
	var verr *schema.Error
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"detail": "validation failed",
			"errors": verr.Fields,
		})
	case errors.Is(err, database.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"status": http.StatusNotFound, "detail": missing})
	default:
		log.WithError(err).WithField("path", c.Request.URL.Path).Error("store operation failed")
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"detail": "internal server error",
		})
	}
}
