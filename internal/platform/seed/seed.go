package seed

import (
	"time"

	directoryentities "ideabazaar/contexts/identity-access/principal-directory/domain/entities"
	"ideabazaar/contexts/marketplace-core/listing-exchange/domain/entities"
)

// Development catalog used when SEED_CATALOG is enabled. IDs are stable so
// local clients and docs can reference them.

func SampleListings() []entities.Listing {
	base := time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)
	return []entities.Listing{
		{
			ListingID:   "idea-1",
			Kind:        entities.ListingKindIdea,
			Title:       "AI-Powered Personalized Learning Platform",
			Description: "A platform that uses AI to create customized learning paths and content for students based on their individual learning styles, pace, and performance.",
			Category:    "Education",
			Price:       1500,
			CreatorID:   "creator-1",
			IsPublished: true,
			IsFeatured:  true,
			Tags:        []string{"AI", "Education", "Personalization", "E-learning"},
			ImageURL:    "/images/ai-learning-platform.jpg",
			Rating:      4.8,
			ReviewCount: 24,
			Plan: entities.BusinessPlan{
				ExecutiveSummary: "Adaptive learning platform that personalizes curricula in real time.",
				MarketAnalysis:   "EdTech spending keeps growing across K-12, higher education, and corporate training.",
				BusinessModel:    "SaaS subscription, licensing fees, custom implementation.",
			},
			CreatedAt: base,
			UpdatedAt: base,
		},
		{
			ListingID:   "idea-2",
			Kind:        entities.ListingKindIdea,
			Title:       "Subscription Box for Sustainable Living",
			Description: "Curated monthly boxes filled with eco-friendly and sustainable products, from household items to personal care, aimed at reducing environmental impact.",
			Category:    "E-commerce",
			Price:       1200,
			CreatorID:   "creator-1",
			IsPublished: true,
			Tags:        []string{"Sustainability", "Subscription", "E-commerce"},
			Rating:      4.5,
			ReviewCount: 11,
			Plan: entities.BusinessPlan{
				ExecutiveSummary: "Monthly curated boxes of sustainable household and personal-care products.",
				BusinessModel:    "Tiered subscriptions with brand partnership margins.",
			},
			CreatedAt: base.Add(24 * time.Hour),
			UpdatedAt: base.Add(24 * time.Hour),
		},
		{
			ListingID:   "idea-3",
			Kind:        entities.ListingKindIdea,
			Title:       "Virtual Reality Fitness Studio",
			Description: "Immersive VR workouts that turn exercise into engaging game-like experiences, accessible from home.",
			Category:    "Healthcare",
			Price:       2000,
			CreatorID:   "creator-2",
			IsPublished: true,
			Tags:        []string{"VR", "Fitness", "Health"},
			Rating:      4.2,
			ReviewCount: 7,
			CreatedAt:   base.Add(48 * time.Hour),
			UpdatedAt:   base.Add(48 * time.Hour),
		},
		{
			ListingID:   "idea-4",
			Kind:        entities.ListingKindIdea,
			Title:       "Personalized Nutrition & Meal Planning App",
			Description: "An app that builds weekly meal plans and shopping lists around individual health goals, allergies, and budgets.",
			Category:    "Food & Beverage",
			Price:       1800,
			CreatorID:   "creator-2",
			IsPublished: false,
			Tags:        []string{"Nutrition", "Mobile", "Health"},
			CreatedAt:   base.Add(72 * time.Hour),
			UpdatedAt:   base.Add(72 * time.Hour),
		},
		{
			ListingID:    "svc-1",
			Kind:         entities.ListingKindService,
			Title:        "Full-Stack Web Application Development",
			Description:  "End-to-end development of production web applications, from architecture to deployment.",
			Category:     "Technology",
			Price:        2500,
			CreatorID:    "creator-1",
			IsPublished:  true,
			DeliveryTime: "3 weeks",
			Tags:         []string{"Web", "Development", "Go"},
			Rating:       4.9,
			ReviewCount:  31,
			CreatedAt:    base.Add(12 * time.Hour),
			UpdatedAt:    base.Add(12 * time.Hour),
		},
		{
			ListingID:    "svc-2",
			Kind:         entities.ListingKindService,
			Title:        "Brand Identity & Logo Design",
			Description:  "Complete brand packages: logo, color system, typography, and usage guidelines.",
			Category:     "Design",
			Price:        600,
			CreatorID:    "creator-2",
			IsPublished:  true,
			DeliveryTime: "5 days",
			Tags:         []string{"Design", "Branding"},
			Rating:       4.6,
			ReviewCount:  18,
			CreatedAt:    base.Add(36 * time.Hour),
			UpdatedAt:    base.Add(36 * time.Hour),
		},
		{
			ListingID:    "svc-3",
			Kind:         entities.ListingKindService,
			Title:        "Go-To-Market Strategy Consulting",
			Description:  "Market positioning, pricing, and launch planning for early-stage products.",
			Category:     "Consulting",
			Price:        1100,
			CreatorID:    "creator-1",
			IsPublished:  true,
			DeliveryTime: "2 weeks",
			Tags:         []string{"Strategy", "Marketing"},
			Rating:       4.4,
			ReviewCount:  9,
			CreatedAt:    base.Add(60 * time.Hour),
			UpdatedAt:    base.Add(60 * time.Hour),
		},
	}
}

func SamplePrincipals() []directoryentities.Principal {
	base := time.Date(2025, time.February, 1, 9, 0, 0, 0, time.UTC)
	return []directoryentities.Principal{
		{
			PrincipalID: "creator-1",
			Username:    "ai_innovator",
			Email:       "ai.innovator@example.com",
			Role:        directoryentities.RoleCreator,
			Tier:        directoryentities.TierGuru,
			IsActive:    true,
			CreatedAt:   base,
			UpdatedAt:   base,
		},
		{
			PrincipalID: "creator-2",
			Username:    "studio_meridian",
			Email:       "hello@studiomeridian.example.com",
			Role:        directoryentities.RoleCreator,
			Tier:        directoryentities.TierInventor,
			IsActive:    true,
			CreatedAt:   base,
			UpdatedAt:   base,
		},
		{
			PrincipalID: "client-1",
			Username:    "first_buyer",
			Email:       "buyer@example.com",
			Role:        directoryentities.RoleClient,
			Tier:        directoryentities.TierBasic,
			IsActive:    true,
			CreatedAt:   base,
			UpdatedAt:   base,
		},
	}
}
