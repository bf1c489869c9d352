package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amzproperties/amz-backend/api/routes"
	"github.com/amzproperties/amz-backend/internal/config"
	"github.com/amzproperties/amz-backend/internal/handlers"
	"github.com/amzproperties/amz-backend/internal/repositories"
	"github.com/amzproperties/amz-backend/internal/repositories/memory"
	mongorepo "github.com/amzproperties/amz-backend/internal/repositories/mongodb"
	"github.com/amzproperties/amz-backend/internal/services"
	"github.com/amzproperties/amz-backend/pkg/mailgateway"
	"github.com/amzproperties/amz-backend/pkg/mongodb"
	"github.com/joho/godotenv"
)

type stores struct {
	admin       repositories.AdminRepository
	property    repositories.PropertyRepository
	blog        repositories.BlogRepository
	partner     repositories.PartnerRepository
	testimonial repositories.TestimonialRepository
	contact     repositories.ContactRepository
	wishlist    repositories.WishlistRepository
	settings    repositories.SettingsRepository
}

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	var st stores
	var mode string
	if cfg.Demo.Enabled {
		mode = "demo"
		st = memoryStores()
		log.Println("Demo mode enabled, using the in-memory store")
	} else {
		mode = "mongodb"
		client, err := mongodb.NewClient(cfg.MongoDB.URI)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		defer func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Printf("Error disconnecting from MongoDB: %v", err)
			}
		}()
		st = mongoStores(client, cfg)
	}

	mail := mailgateway.NewGateway(cfg)

	authService := services.NewAuthService(st.admin, cfg)
	propertyService := services.NewPropertyService(st.property)
	blogService := services.NewBlogService(st.blog)
	partnerService := services.NewPartnerService(st.partner)
	testimonialService := services.NewTestimonialService(st.testimonial)
	contactService := services.NewContactService(st.contact, mail)
	wishlistService := services.NewWishlistService(st.wishlist)
	settingsService := services.NewSettingsService(st.settings)
	statsService := services.NewStatsService(st.property, st.blog, st.partner, st.testimonial, st.contact, st.wishlist)

	deps := &routes.HandlerDependencies{
		AdminRepo:   st.admin,
		Health:      handlers.NewHealthHandler(mode),
		Auth:        handlers.NewAuthHandler(authService),
		Property:    handlers.NewPropertyHandler(propertyService, cfg),
		Blog:        handlers.NewBlogHandler(blogService, cfg),
		Partner:     handlers.NewPartnerHandler(partnerService, cfg),
		Testimonial: handlers.NewTestimonialHandler(testimonialService),
		Contact:     handlers.NewContactHandler(contactService),
		Wishlist:    handlers.NewWishlistHandler(wishlistService),
		Settings:    handlers.NewSettingsHandler(settingsService),
		Stats:       handlers.NewStatsHandler(statsService),
	}

	router := routes.SetupRouter(cfg, deps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	log.Printf("Server starting on port %s (%s mode)", cfg.Server.Port, mode)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exiting")
}

func memoryStores() stores {
	return stores{
		admin:       memory.NewAdminRepository(),
		property:    memory.NewPropertyRepository(),
		blog:        memory.NewBlogRepository(),
		partner:     memory.NewPartnerRepository(),
		testimonial: memory.NewTestimonialRepository(),
		contact:     memory.NewContactRepository(),
		wishlist:    memory.NewWishlistRepository(),
		settings:    memory.NewSettingsRepository(),
	}
}

func mongoStores(client *mongodb.Client, cfg *config.Config) stores {
	db := client.Database(cfg.MongoDB.Database)

	adminRepo := mongorepo.NewAdminRepository(db)
	blogRepo := mongorepo.NewBlogRepository(db)
	partnerRepo := mongorepo.NewPartnerRepository(db)
	wishlistRepo := mongorepo.NewWishlistRepository(db)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for name, ensure := range map[string]func(context.Context) error{
		"admins":    adminRepo.EnsureIndexes,
		"blogs":     blogRepo.EnsureIndexes,
		"partners":  partnerRepo.EnsureIndexes,
		"wishlists": wishlistRepo.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			log.Fatalf("Failed to create indexes for %s: %v", name, err)
		}
	}

	return stores{
		admin:       adminRepo,
		property:    mongorepo.NewPropertyRepository(db),
		blog:        blogRepo,
		partner:     partnerRepo,
		testimonial: mongorepo.NewTestimonialRepository(db),
		contact:     mongorepo.NewContactRepository(db),
		wishlist:    wishlistRepo,
		settings:    mongorepo.NewSettingsRepository(db),
	}
}
