package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/AKastantin/BPP-LP/internal/infra/addresses"
	"github.com/AKastantin/BPP-LP/internal/infra/database"
	"github.com/AKastantin/BPP-LP/internal/infra/http/handlers"
	"github.com/AKastantin/BPP-LP/internal/infra/http/middleware"
	"github.com/AKastantin/BPP-LP/internal/infra/integration/telegram"
	"github.com/AKastantin/BPP-LP/internal/infra/mail"
	"github.com/AKastantin/BPP-LP/internal/infra/queue"
	"github.com/AKastantin/BPP-LP/internal/infra/worker"
	"github.com/AKastantin/BPP-LP/internal/usecase"
)

func main() {
	godotenv.Load()

	// Address reference data loads before the listener opens. Loading it in
	// the background left a window where every autocomplete came back empty.
	addressRepo := addresses.NewRepository()
	if csvPath := os.Getenv("ADDRESS_CSV_PATH"); csvPath != "" {
		added, err := addresses.LoadCSV(addressRepo, csvPath)
		if err != nil {
			log.Fatalf("❌ Failed to load address CSV: %v", err)
		}
		log.Printf("📍 Loaded %d addresses from %s", added, csvPath)
	} else {
		addresses.Seed(addressRepo)
		log.Printf("📍 Seeded %d addresses (no ADDRESS_CSV_PATH set)", addressRepo.Count())
	}

	// 1. Repositories. Leads can live in Postgres; everything else is the
	// in-memory demo store.
	var (
		db       *sql.DB
		leadRepo usecase.LeadRepositoryInterface
	)
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		var err error
		db, err = database.NewDBConnection(dsn)
		if err != nil {
			log.Fatalf("❌ Failed to connect to Postgres: %v", err)
		}
		defer db.Close()
		leadRepo = database.NewPostgresLeadRepository(db)
		log.Println("🗄️ Lead store: Postgres (atomic upsert)")
	} else {
		leadRepo = database.NewMemoryLeadRepository()
		log.Println("🗄️ Lead store: in-memory")
	}

	forecastRepo := database.NewMemoryForecastRepository()
	surveyRepo := database.NewMemorySurveyRepository()
	emailRequestRepo := database.NewMemoryEmailRequestRepository()

	// 2. Integrations.
	notifier := telegram.NewClient()

	var (
		rabbitMQ *queue.RabbitMQ
		producer usecase.QueueProducerInterface
	)
	if host := os.Getenv("RABBITMQ_HOST"); host != "" {
		var err error
		rabbitMQ, err = queue.NewRabbitMQ(
			os.Getenv("RABBITMQ_USER"),
			os.Getenv("RABBITMQ_PASS"),
			host,
			envOr("RABBITMQ_PORT", "5672"),
		)
		if err != nil {
			log.Fatalf("❌ Failed to connect to RabbitMQ: %v", err)
		}
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()

		rabbitProducer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
		producer = rabbitProducer

		// 3. Delivery worker: consumes the queue, mails the report, marks
		// the request sent. Only makes sense with SMTP configured.
		if os.Getenv("MAIL_HOST") != "" {
			mailPort, _ := strconv.Atoi(envOr("MAIL_PORT", "587"))
			mailSender := mail.NewEmailSender(
				os.Getenv("MAIL_HOST"), mailPort,
				os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
				envOr("MAIL_FROM", "no-reply@brightpathproperty.co.uk"),
			)

			queueWorker := queue.NewWorker(rabbitMQ.Ch, mailSender, emailRequestRepo)
			go queueWorker.Start(queue.QueueName)
		} else {
			log.Println("⚠️ MAIL_HOST not set, email reports stay queued")
		}

		sweeper := worker.NewPendingEmailWorker(emailRequestRepo, rabbitProducer)
		go sweeper.Start(context.Background())
	} else {
		log.Println("⚠️ RABBITMQ_HOST not set, email reports stay pending")
	}

	// 4. Use cases.
	valuations := usecase.NewValuationGenerator()

	captureLeadUC := usecase.NewCaptureLeadUseCase(leadRepo)
	forecastUC := usecase.NewPropertyForecastUseCase(leadRepo, forecastRepo, valuations, notifier)
	surveyUC := usecase.NewSubmitSurveyUseCase(leadRepo, surveyRepo)
	demoRequestUC := usecase.NewDemoRequestUseCase(leadRepo, notifier)
	newsletterUC := usecase.NewNewsletterUseCase(leadRepo)
	contactUC := usecase.NewContactUseCase(leadRepo, notifier)
	updatesUC := usecase.NewPropertyUpdatesSurveyUseCase(leadRepo, surveyRepo)
	searchUC := usecase.NewPropertySearchUseCase(valuations)
	emailResultsUC := usecase.NewEmailResultsUseCase(emailRequestRepo, producer, notifier)

	// 5. Handlers.
	leadHandler := handlers.NewLeadHandler(captureLeadUC, demoRequestUC, newsletterUC, contactUC)
	forecastHandler := handlers.NewForecastHandler(forecastUC, searchUC)
	surveyHandler := handlers.NewSurveyHandler(surveyUC, updatesUC)
	addressHandler := handlers.NewAddressHandler(addressRepo)
	emailHandler := handlers.NewEmailHandler(emailResultsUC)

	var rabbitConn *amqp.Connection
	if rabbitMQ != nil {
		rabbitConn = rabbitMQ.Conn
	}
	healthHandler := handlers.NewHealthHandler(db, rabbitConn, addressRepo)

	// 6. Router.
	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Route("/api", func(r chi.Router) {
		r.Post("/leads", leadHandler.HandleCreate)
		r.Post("/demo-request", leadHandler.HandleDemoRequest)
		r.Post("/newsletter", leadHandler.HandleNewsletter)
		r.Post("/contact", leadHandler.HandleContact)
		r.Post("/property-forecast", forecastHandler.HandleForecast)
		r.Post("/property-search", forecastHandler.HandleSearch)
		r.Post("/survey", surveyHandler.HandleSubmit)
		r.Post("/property-updates-survey", surveyHandler.HandlePropertyUpdates)
		r.Get("/addresses", addressHandler.HandleSearch)
		r.Post("/email-results", emailHandler.HandleEmailResults)
	})

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := ":" + envOr("PORT", "8080")
	log.Printf("🔥 BrightPath API listening on %s", port)
	http.ListenAndServe(port, r)
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
