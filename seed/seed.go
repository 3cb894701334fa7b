// Package seed fills empty collections with example content on startup.
package seed

import (
	"context"
	"fmt"
	"time"

	"archviz/database"
	"archviz/models"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Run inserts the example records into every empty collection. Collections
// that already hold a document are left untouched.
func Run(ctx context.Context, db database.Database, now time.Time) error {
	if err := seedSettings(ctx, db); err != nil {
		return err
	}
	if err := seedIfEmpty(ctx, database.NewCollection[models.Project](db, models.ProjectsCollection), projects(now)); err != nil {
		return err
	}
	if err := seedIfEmpty(ctx, database.NewCollection[models.BlogPost](db, models.BlogPostsCollection), blogPosts(now)); err != nil {
		return err
	}
	return seedIfEmpty(ctx, database.NewCollection[models.Testimonial](db, models.TestimonialsCollection), testimonials())
}

func seedSettings(ctx context.Context, db database.Database) error {
	coll := database.NewCollection[models.Settings](db, models.SettingsCollection)
	n, err := coll.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}
	if n > 0 {
		return nil
	}
	if err := coll.Upsert(ctx, models.SettingsKey, defaultSettings()); err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}
	log.WithField("collection", coll.Name()).Info("seeded default settings")
	return nil
}

func seedIfEmpty[T any](ctx context.Context, coll *database.Collection[T], docs []T) error {
	n, err := coll.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed %s: %w", coll.Name(), err)
	}
	if n > 0 {
		log.WithField("collection", coll.Name()).Debug("collection not empty, skipping seed")
		return nil
	}
	if err := coll.Insert(ctx, docs...); err != nil {
		return fmt.Errorf("seed %s: %w", coll.Name(), err)
	}
	log.WithFields(log.Fields{"collection": coll.Name(), "count": len(docs)}).Info("seeded example records")
	return nil
}

func newID() string {
	return uuid.NewString()
}
