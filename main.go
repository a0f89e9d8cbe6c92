package main

import (
	"context"
	"log"
	"time"

	"assessment-service/configs"
	"assessment-service/internal/auth"
	"assessment-service/internal/cache"
	"assessment-service/internal/catalog"
	"assessment-service/internal/db"
	"assessment-service/internal/engine"
	"assessment-service/internal/event"
	"assessment-service/internal/handlers"
	remotesync "assessment-service/internal/sync"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	configs.LoadConfig()
	cfg := configs.AppConfig

	gin.SetMode(cfg.GinMode)
	db.InitMongo(cfg.MongoURI)

	// RabbitMQ event publisher
	var publisher *event.EventPublisher
	if cfg.RabbitMQURI != "" && cfg.RabbitMQExchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(cfg.RabbitMQURI, cfg.RabbitMQExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, assessment events will not be published")
	}

	database := db.Client.Database(cfg.MongoDatabase)
	synchronizer := remotesync.NewSynchronizer(database)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if cfg.SeedCatalog {
		if err := synchronizer.Seed(ctx); err != nil {
			log.Fatalf("Failed to seed the catalog: %v", err)
		}
	}

	// The catalog is loaded once per boot through the one canonical path.
	themes, questions, err := synchronizer.LoadCatalog(ctx)
	if err != nil {
		log.Fatalf("Failed to load the catalog: %v", err)
	}
	cat, err := catalog.New(themes, questions)
	if err != nil {
		log.Fatalf("Invalid catalog: %v", err)
	}
	log.Printf("Catalog loaded: %d themes, %d questions", cat.ThemeCount(), cat.QuestionCount())

	// Redis-backed local cache for session and auth snapshots
	store := cache.NewStore(cache.NewClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB))

	var sink engine.EventSink
	if publisher != nil {
		sink = publisher
	}
	eng := engine.New(cat, synchronizer, store, sink)

	catalogHandler := handlers.NewCatalogHandler(cat)
	assessmentHandler := handlers.NewAssessmentHandler(eng)
	resultHandler := handlers.NewResultHandler(eng)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Public routes - catalog
	publicTheme := r.Group("/public/assessment/theme")
	{
		publicTheme.GET("/", func(c *gin.Context) {
			catalogHandler.GetThemes(c)
			if publisher != nil {
				publisher.Publish("theme.list", nil)
			}
		})
		publicTheme.GET("/:id", func(c *gin.Context) {
			catalogHandler.GetTheme(c)
			if publisher != nil {
				publisher.Publish("theme.get", gin.H{"id": c.Param("id")})
			}
		})
		publicTheme.GET("/:id/questions", func(c *gin.Context) {
			catalogHandler.GetThemeQuestions(c)
			if publisher != nil {
				publisher.Publish("theme.questions", gin.H{"id": c.Param("id")})
			}
		})
	}

	publicQuestion := r.Group("/public/assessment/question")
	{
		publicQuestion.GET("/", func(c *gin.Context) {
			catalogHandler.GetQuestions(c)
			if publisher != nil {
				publisher.Publish("question.list", nil)
			}
		})
	}

	// Protected routes - session progression and results
	protectedSession := r.Group("/protected/assessment/session")
	protectedSession.Use(auth.RequireUser(store))
	{
		protectedSession.POST("/start", assessmentHandler.Start)
		protectedSession.POST("/answer", assessmentHandler.SubmitAnswer)
		protectedSession.POST("/advance", assessmentHandler.Advance)
		protectedSession.POST("/reset", assessmentHandler.Reset)
		protectedSession.GET("/", assessmentHandler.GetState)
		protectedSession.PUT("/language", assessmentHandler.SetLanguage)
	}

	protectedResult := r.Group("/protected/assessment/result")
	protectedResult.Use(auth.RequireUser(store))
	{
		protectedResult.GET("/", resultHandler.GetResults)
		protectedResult.GET("/latest", resultHandler.GetLatestResults)
	}

	log.Printf("%s %s listening on :%s", cfg.ServiceName, cfg.ServiceVersion, cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
