package controller

import (
	"net/http"

	"archviz/database"
	"archviz/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateContact stores a contact form submission. No id is returned.
func (h *Handler) CreateContact(c *gin.Context) {
	var contact models.Contact
	if err := bindBody(c, models.ContactSchema, &contact); err != nil {
		fail(c, err, "Contact not found")
		return
	}
	contact.ID = uuid.NewString()
	contact.CreatedAt = h.now()

	ctx, cancel := h.context(c)
	defer cancel()

	if err := h.contacts.Insert(ctx, contact); err != nil {
		fail(c, err, "Contact not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contact form submitted successfully"})
}

// ListContacts returns submissions newest first.
func (h *Handler) ListContacts(c *gin.Context) {
	ctx, cancel := h.context(c)
	defer cancel()

	contacts, err := h.contacts.All(ctx, database.Newest("created_at"))
	if err != nil {
		fail(c, err, "Contact not found")
		return
	}
	c.JSON(http.StatusOK, contacts)
}
