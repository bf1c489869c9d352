// Command seed loads sample content into an empty database so the public
// site has something to show. Collections that already contain documents
// are skipped.
package main

import (
	"context"
	"log"
	"time"

	"github.com/amzproperties/amz-backend/internal/config"
	"github.com/amzproperties/amz-backend/internal/models"
	mongorepo "github.com/amzproperties/amz-backend/internal/repositories/mongodb"
	"github.com/amzproperties/amz-backend/internal/utils"
	"github.com/amzproperties/amz-backend/pkg/mongodb"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	client, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	db := client.Database(cfg.MongoDB.Database)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	seedProperties(ctx, mongorepo.NewPropertyRepository(db))
	seedBlogs(ctx, mongorepo.NewBlogRepository(db))
	seedPartners(ctx, mongorepo.NewPartnerRepository(db))
	seedTestimonials(ctx, mongorepo.NewTestimonialRepository(db))

	log.Println("Seeding complete")
}

func seedProperties(ctx context.Context, repo *mongorepo.PropertyRepository) {
	count, err := repo.Count(ctx)
	if err != nil {
		log.Fatalf("Failed to count properties: %v", err)
	}
	if count > 0 {
		log.Printf("Properties collection not empty (%d), skipping", count)
		return
	}

	properties := []*models.Property{
		{
			Title:       "Marina Vista Penthouse",
			Description: "Full-floor penthouse with panoramic marina views and a private terrace.",
			Price:       12500000,
			Location:    "Dubai Marina",
			Type:        models.PropertyTypeExclusive,
			Bedrooms:    4,
			Bathrooms:   5,
			Area:        6200,
			Features:    []string{"Private Pool", "Maid's Room", "Panoramic Views"},
			Status:      models.PropertyStatusAvailable,
			Developer:   "Emaar",
			YearBuilt:   2021,
			Featured:    true,
		},
		{
			Title:       "Palm Jumeirah Garden Villa",
			Description: "Beachfront villa on the fronds with direct sand access.",
			Price:       28000000,
			Location:    "Palm Jumeirah",
			Type:        models.PropertyTypeVilla,
			Bedrooms:    6,
			Bathrooms:   7,
			Area:        9800,
			Features:    []string{"Private Beach", "Cinema Room", "Smart Home"},
			Status:      models.PropertyStatusAvailable,
			Developer:   "Nakheel",
			YearBuilt:   2019,
			Featured:    true,
		},
		{
			Title:       "Creek Harbour Apartment",
			Description: "Two-bedroom apartment overlooking the creek and the wildlife sanctuary.",
			Price:       2400000,
			Location:    "Dubai Creek Harbour",
			Type:        models.PropertyTypeApartment,
			Bedrooms:    2,
			Bathrooms:   2,
			Area:        1350,
			Features:    []string{"Balcony", "Gym", "Shared Pool"},
			Status:      models.PropertyStatusAvailable,
			Developer:   "Emaar",
			YearBuilt:   2023,
		},
		{
			Title:       "Arabian Ranches Townhouse",
			Description: "Corner townhouse backing onto the community park.",
			Price:       4100000,
			Location:    "Arabian Ranches",
			Type:        models.PropertyTypeTownhouse,
			Bedrooms:    3,
			Bathrooms:   4,
			Area:        2800,
			Features:    []string{"Garden", "Study", "Covered Parking"},
			Status:      models.PropertyStatusReserved,
			Developer:   "Emaar",
			YearBuilt:   2020,
		},
	}
	for _, property := range properties {
		if err := repo.Create(ctx, property); err != nil {
			log.Fatalf("Failed to seed property %q: %v", property.Title, err)
		}
	}
	log.Printf("Seeded %d properties", len(properties))
}

func seedBlogs(ctx context.Context, repo *mongorepo.BlogRepository) {
	count, err := repo.Count(ctx)
	if err != nil {
		log.Fatalf("Failed to count blogs: %v", err)
	}
	if count > 0 {
		log.Printf("Blogs collection not empty (%d), skipping", count)
		return
	}

	now := time.Now()
	blogs := []*models.Blog{
		{
			Title:    "Dubai Off-Plan Market Outlook",
			Excerpt:  "Where the off-plan market is heading and which communities to watch.",
			Content:  "Off-plan launches continue to dominate transaction volumes...",
			Category: "Market Trends",
			Tags:     []string{"off-plan", "dubai"},
			Author:   models.BlogAuthor{Name: "AMZ Properties"},
			Status:   models.BlogStatusPublished,
			Featured: true,
		},
		{
			Title:    "A Buyer's Guide to Golden Visa Eligibility",
			Excerpt:  "How property investment can qualify you for long-term residency.",
			Content:  "The golden visa program ties residency to qualifying investments...",
			Category: "Investment Guide",
			Tags:     []string{"golden-visa", "investment"},
			Author:   models.BlogAuthor{Name: "AMZ Properties"},
			Status:   models.BlogStatusPublished,
		},
	}
	for _, blog := range blogs {
		blog.Slug = utils.Slugify(blog.Title)
		if blog.Status == models.BlogStatusPublished {
			publishedAt := now
			blog.PublishedAt = &publishedAt
		}
		if err := repo.Create(ctx, blog); err != nil {
			log.Fatalf("Failed to seed blog %q: %v", blog.Title, err)
		}
	}
	log.Printf("Seeded %d blogs", len(blogs))
}

func seedPartners(ctx context.Context, repo *mongorepo.PartnerRepository) {
	count, err := repo.Count(ctx)
	if err != nil {
		log.Fatalf("Failed to count partners: %v", err)
	}
	if count > 0 {
		log.Printf("Partners collection not empty (%d), skipping", count)
		return
	}

	partners := []*models.Partner{
		{
			Name:        "Emaar Properties",
			Description: "Master developer behind Downtown Dubai and Dubai Creek Harbour.",
			Contact:     models.PartnerContact{Website: "https://www.emaar.com"},
			Specialties: []string{"Master Communities", "Luxury Apartments"},
			Projects: []models.PartnerProject{
				{Title: "Creek Edge", Location: "Dubai Creek Harbour", Status: "completed", Year: 2023},
				{Title: "The Valley", Location: "Dubailand", Status: "under-construction", Year: 2026},
			},
			Rating:   4.8,
			Status:   models.PartnerStatusActive,
			Featured: true,
		},
		{
			Name:        "Nakheel",
			Description: "Developer of Palm Jumeirah and the Dubai Islands.",
			Contact:     models.PartnerContact{Website: "https://www.nakheel.com"},
			Specialties: []string{"Waterfront", "Villas"},
			Projects: []models.PartnerProject{
				{Title: "Palm Beach Towers", Location: "Palm Jumeirah", Status: "under-construction", Year: 2026},
			},
			Rating: 4.5,
			Status: models.PartnerStatusActive,
		},
	}
	for _, partner := range partners {
		partner.Slug = utils.Slugify(partner.Name)
		if err := repo.Create(ctx, partner); err != nil {
			log.Fatalf("Failed to seed partner %q: %v", partner.Name, err)
		}
	}
	log.Printf("Seeded %d partners", len(partners))
}

func seedTestimonials(ctx context.Context, repo *mongorepo.TestimonialRepository) {
	count, err := repo.Count(ctx)
	if err != nil {
		log.Fatalf("Failed to count testimonials: %v", err)
	}
	if count > 0 {
		log.Printf("Testimonials collection not empty (%d), skipping", count)
		return
	}

	testimonials := []*models.Testimonial{
		{
			Name:     "Sarah Mitchell",
			Position: "Portfolio Manager",
			Company:  "Alpine Capital",
			Content:  "The team handled our entire villa purchase remotely. Seamless from offer to handover.",
			Rating:   5,
			Status:   models.TestimonialStatusActive,
			Featured: true,
			Location: "Palm Jumeirah",
		},
		{
			Name:     "Omar Haddad",
			Position: "Founder",
			Company:  "Haddad Trading",
			Content:  "Honest advice on off-plan options and strong after-sales support.",
			Rating:   4,
			Status:   models.TestimonialStatusActive,
			Location: "Dubai Creek Harbour",
		},
	}
	for _, testimonial := range testimonials {
		if err := repo.Create(ctx, testimonial); err != nil {
			log.Fatalf("Failed to seed testimonial %q: %v", testimonial.Name, err)
		}
	}
	log.Printf("Seeded %d testimonials", len(testimonials))
}
