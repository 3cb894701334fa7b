package models

import (
	"time"

	"archviz/schema"
)

// Collection names.
const (
	ProjectsCollection     = "projects"
	BlogPostsCollection    = "blog_posts"
	TestimonialsCollection = "testimonials"
	SettingsCollection     = "settings"
	ContactsCollection     = "contacts"
)

// Record is an entity whose id and timestamps are assigned by the server.
type Record interface {
	SetID(id string)
	// Stamp sets server-owned timestamps. created is true on insert.
	Stamp(now time.Time, created bool)
}

// Project is a portfolio piece.
type Project struct {
	ID            string    `json:"id" bson:"_id"`
	Title         string    `json:"title" bson:"title"`
	Description   string    `json:"description" bson:"description"`
	Category      string    `json:"category" bson:"category"`
	ImageURL      string    `json:"image_url" bson:"image_url"`
	GalleryImages []string  `json:"gallery_images" bson:"gallery_images"`
	SoftwareUsed  []string  `json:"software_used" bson:"software_used"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}

func (p *Project) SetID(id string) { p.ID = id }

func (p *Project) Stamp(now time.Time, created bool) {
	if created {
		p.CreatedAt = now
	}
}

var ProjectSchema = schema.Schema{
	schema.Required("title", schema.String),
	schema.Required("description", schema.String),
	schema.Required("category", schema.String),
	schema.Required("image_url", schema.String),
	schema.Optional("gallery_images", schema.StringList, []string{}),
	schema.Optional("software_used", schema.StringList, []string{}),
}

// BlogPost is an article. PublishedAt is reset on every write.
type BlogPost struct {
	ID          string    `json:"id" bson:"_id"`
	Title       string    `json:"title" bson:"title"`
	Content     string    `json:"content" bson:"content"`
	Excerpt     string    `json:"excerpt" bson:"excerpt"`
	ImageURL    string    `json:"image_url" bson:"image_url"`
	Category    string    `json:"category" bson:"category"`
	Tags        []string  `json:"tags" bson:"tags"`
	PublishedAt time.Time `json:"published_at" bson:"published_at"`
	ReadTime    int       `json:"read_time" bson:"read_time"`
}

func (b *BlogPost) SetID(id string) { b.ID = id }

func (b *BlogPost) Stamp(now time.Time, _ bool) { b.PublishedAt = now }

var BlogPostSchema = schema.Schema{
	schema.Required("title", schema.String),
	schema.Required("content", schema.String),
	schema.Required("excerpt", schema.String),
	schema.Required("image_url", schema.String),
	schema.Required("category", schema.String),
	schema.Optional("tags", schema.StringList, []string{}),
	schema.Nullable("read_time", schema.Int, 5),
}

type Testimonial struct {
	ID       string `json:"id" bson:"_id"`
	Name     string `json:"name" bson:"name"`
	Company  string `json:"company" bson:"company"`
	Role     string `json:"role" bson:"role"`
	Content  string `json:"content" bson:"content"`
	ImageURL string `json:"image_url" bson:"image_url"`
	Rating   int    `json:"rating" bson:"rating"`
}

func (t *Testimonial) SetID(id string) { t.ID = id }

func (t *Testimonial) Stamp(time.Time, bool) {}

var TestimonialSchema = schema.Schema{
	schema.Required("name", schema.String),
	schema.Required("company", schema.String),
	schema.Required("role", schema.String),
	schema.Required("content", schema.String),
	schema.Required("image_url", schema.String),
	schema.Optional("rating", schema.Int, 5),
}

// SettingsKey is the store key of the one settings document.
const SettingsKey = "site"

// Settings is the site-wide profile. Only one exists.
type Settings struct {
	ID           string            `json:"-" bson:"_id"`
	Name         string            `json:"name" bson:"name"`
	Title        string            `json:"title" bson:"title"`
	Bio          string            `json:"bio" bson:"bio"`
	ProfileImage string            `json:"profile_image" bson:"profile_image"`
	CVURL        string            `json:"cv_url" bson:"cv_url"`
	Email        string            `json:"email" bson:"email"`
	Phone        string            `json:"phone" bson:"phone"`
	Location     string            `json:"location" bson:"location"`
	SocialLinks  map[string]string `json:"social_links" bson:"social_links"`
}

var SettingsSchema = schema.Schema{
	schema.Required("name", schema.String),
	schema.Required("title", schema.String),
	schema.Required("bio", schema.String),
	schema.Required("profile_image", schema.String),
	schema.Required("cv_url", schema.String),
	schema.Required("email", schema.String),
	schema.Required("phone", schema.String),
	schema.Required("location", schema.String),
	schema.Optional("social_links", schema.StringMap, map[string]string{}),
}

// Contact is a submitted contact form. The id never leaves the server.
type Contact struct {
	ID        string    `json:"-" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Message   string    `json:"message" bson:"message"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

var ContactSchema = schema.Schema{
	schema.Required("name", schema.String),
	schema.Required("email", schema.String),
	schema.Required("message", schema.String),
}
