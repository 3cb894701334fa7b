package controller

import (
	"net/http"

	"archviz/database"
	"archviz/models"
	"archviz/schema"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Resource is the CRUD surface shared by id-keyed collections.
type Resource[T any, P interface {
	*T
	models.Record
}] struct {
	h        *Handler
	label    string
	coll     *database.Collection[T]
	schema   schema.Schema
	sort     *database.Sort
	preserve []string
}

func (r *Resource[T, P]) notFound() string {
	return r.label + " not found"
}

func (r *Resource[T, P]) List(c *gin.Context) {
	ctx, cancel := r.h.context(c)
	defer cancel()

	docs, err := r.coll.All(ctx, r.sort)
	if err != nil {
		fail(c, err, r.notFound())
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (r *Resource[T, P]) Get(c *gin.Context) {
	ctx, cancel := r.h.context(c)
	defer cancel()

	doc, err := r.coll.Get(ctx, c.Param("id"))
	if err != nil {
		fail(c, err, r.notFound())
		return
	}
	c.JSON(http.StatusOK, doc)
}

// Create assigns a fresh id and timestamps, ignoring any the client sent.
func (r *Resource[T, P]) Create(c *gin.Context) {
	doc, ok := r.bind(c)
	if !ok {
		return
	}

	id := uuid.NewString()
	P(&doc).SetID(id)
	P(&doc).Stamp(r.h.now(), true)

	ctx, cancel := r.h.context(c)
	defer cancel()

	if err := r.coll.Insert(ctx, doc); err != nil {
		fail(c, err, r.notFound())
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "message": r.label + " created successfully"})
}

// Update replaces every client-owned field of the document. Unknown ids are
// reported, never inserted.
func (r *Resource[T, P]) Update(c *gin.Context) {
	doc, ok := r.bind(c)
	if !ok {
		return
	}
	P(&doc).Stamp(r.h.now(), false)

	ctx, cancel := r.h.context(c)
	defer cancel()

	if err := r.coll.Replace(ctx, c.Param("id"), doc, r.preserve...); err != nil {
		fail(c, err, r.notFound())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": r.label + " updated successfully"})
}

func (r *Resource[T, P]) Delete(c *gin.Context) {
	ctx, cancel := r.h.context(c)
	defer cancel()

	if err := r.coll.Delete(ctx, c.Param("id")); err != nil {
		fail(c, err, r.notFound())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": r.label + " deleted successfully"})
}

func (r *Resource[T, P]) bind(c *gin.Context) (T, bool) {
	var doc T
	if err := bindBody(c, r.schema, &doc); err != nil {
		fail(c, err, r.notFound())
		return doc, false
	}
	return doc, true
}

func bindBody(c *gin.Context, s schema.Schema, dst any) error {
	body, err := c.GetRawData()
	if err != nil {
		return err
	}
	return s.Bind(body, dst)
}
