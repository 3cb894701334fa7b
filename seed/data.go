package seed

import (
	"time"

	"archviz/models"
)

func defaultSettings() models.Settings {
	return models.Settings{
		ID:           models.SettingsKey,
		Name:         "Rabiul Hasan",
		Title:        "Architectural Visualizer | AI Enthusiast",
		Bio:          "Creative and detail-oriented Architectural Visualizer with a Diploma in Civil Engineering and certified training under the IsDB-BISEW IT Scholarship. Passionate about leveraging technology and AI to create stunning and realistic architectural representations.",
		ProfileImage: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=400&fit=crop&crop=face",
		CVURL:        "/downloads/cv.pdf",
		Email:        "rabiul.hasan@example.com",
		Phone:        "+880 1234 567890",
		Location:     "Dhaka, Bangladesh",
		SocialLinks: map[string]string{
			"linkedin":  "https://linkedin.com/in/rabiul-hasan",
			"behance":   "https://behance.net/rabiul-hasan",
			"instagram": "https://instagram.com/rabiul.archviz",
			"facebook":  "https://facebook.com/rabiul.hasan",
		},
	}
}

func projects(now time.Time) []models.Project {
	return []models.Project{
		{
			ID:          newID(),
			Title:       "Cozy Living Room",
			Description: "An interior design visualization for a cozy and inviting living space. The project focuses on warm lighting, comfortable furniture, and a harmonious color palette.",
			Category:    "Interior Design",
			ImageURL:    "https://images.unsplash.com/photo-1749464251742-107093fc5650?crop=entropy&cs=srgb&fm=jpg&q=85",
			GalleryImages: []string{
				"https://images.unsplash.com/photo-1747538454771-c6500c61266d?crop=entropy&cs=srgb&fm=jpg&q=85",
				"https://images.unsplash.com/photo-1747538454763-3c80e36f17bf?crop=entropy&cs=srgb&fm=jpg&q=85",
			},
			SoftwareUsed: []string{"3ds Max", "Corona Renderer", "Photoshop"},
			CreatedAt:    now,
		},
		{
			ID:          newID(),
			Title:       "Modern Villa Exterior",
			Description: "A photorealistic rendering of a contemporary villa featuring clean lines, large windows, and modern architectural elements.",
			Category:    "Exterior Design",
			ImageURL:    "https://images.pexels.com/photos/32984408/pexels-photo-32984408.jpeg",
			GalleryImages: []string{
				"https://images.unsplash.com/photo-1618221195710-dd6b41faaea6?crop=entropy&cs=srgb&fm=jpg&q=85",
			},
			SoftwareUsed: []string{"3ds Max", "V-ray", "AutoCAD"},
			CreatedAt:    now,
		},
		{
			ID:            newID(),
			Title:         "Corporate Office Interior",
			Description:   "Professional office space design emphasizing productivity, comfort, and modern aesthetics.",
			Category:      "Commercial Design",
			ImageURL:      "https://images.pexels.com/photos/1571460/pexels-photo-1571460.jpeg",
			GalleryImages: []string{},
			SoftwareUsed:  []string{"Revit", "3ds Max", "Lumion"},
			CreatedAt:     now,
		},
	}
}

func blogPosts(now time.Time) []models.BlogPost {
	return []models.BlogPost{
		{
			ID:          newID(),
			Title:       "Mastering Photorealism in 3ds Max and Corona",
			Content:     "Achieving photorealism requires a deep understanding of lighting, materials, and composition. In this tutorial, we walk through the essential techniques in 3ds Max and Corona Renderer to take your visualizations from good to breathtakingly realistic.",
			Excerpt:     "Learn essential techniques for creating photorealistic architectural visualizations using 3ds Max and Corona Renderer.",
			ImageURL:    "https://images.unsplash.com/photo-1749464251742-107093fc5650?crop=entropy&cs=srgb&fm=jpg&q=85",
			Category:    "Tutorial",
			Tags:        []string{"3ds Max", "Corona", "Photorealism"},
			PublishedAt: now,
			ReadTime:    8,
		},
		{
			ID:          newID(),
			Title:       "The Future of AI in Architectural Visualization",
			Content:     "Artificial Intelligence is revolutionizing architectural visualization, from automated material generation to intelligent lighting solutions. Explore how AI tools are transforming our workflow and enhancing creative possibilities.",
			Excerpt:     "Discover how AI is transforming the architectural visualization industry and what it means for designers.",
			ImageURL:    "https://images.unsplash.com/photo-1747538454771-c6500c61266d?crop=entropy&cs=srgb&fm=jpg&q=85",
			Category:    "Technology",
			Tags:        []string{"AI", "Future", "Innovation"},
			PublishedAt: now,
			ReadTime:    6,
		},
	}
}

func testimonials() []models.Testimonial {
	return []models.Testimonial{
		{
			ID:       newID(),
			Name:     "Sarah Johnson",
			Company:  "Modern Architecture Studio",
			Role:     "Principal Architect",
			Content:  "Rabiul's architectural visualizations are exceptional. His attention to detail and ability to bring our designs to life is remarkable. The photorealistic quality of his work has helped us win several major projects.",
			ImageURL: "https://images.unsplash.com/photo-1494790108755-2616b612b390?w=150&h=150&fit=crop&crop=face",
			Rating:   5,
		},
		{
			ID:       newID(),
			Name:     "Michael Chen",
			Company:  "Urban Design Group",
			Role:     "Creative Director",
			Content:  "Working with Rabiul has been a game-changer for our firm. His technical expertise in 3ds Max and Corona, combined with his artistic vision, produces stunning visualizations that exceed client expectations.",
			ImageURL: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face",
			Rating:   5,
		},
		{
			ID:       newID(),
			Name:     "Emma Rodriguez",
			Company:  "Residential Designs Inc.",
			Role:     "Interior Designer",
			Content:  "Rabiul's interior visualizations are incredibly realistic and help our clients visualize their future spaces perfectly. His understanding of lighting and materials is outstanding.",
			ImageURL: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=150&h=150&fit=crop&crop=face",
			Rating:   5,
		},
	}
}
