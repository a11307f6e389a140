package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mentorhub/config"
	"mentorhub/cron"
	"mentorhub/database"
	bookingRepoPkg "mentorhub/database/repository/booking"
	eventtypeRepoPkg "mentorhub/database/repository/eventtype"
	menteeRepoPkg "mentorhub/database/repository/mentee"
	mentorRepoPkg "mentorhub/database/repository/mentor"
	timeslotRepoPkg "mentorhub/database/repository/timeslot"
	"mentorhub/handlers"
	"mentorhub/middleware"
	"mentorhub/routes"
	"mentorhub/services/availability"
	"mentorhub/services/booking"
	"mentorhub/services/calcom"
	"mentorhub/services/matching"
	"mentorhub/services/mentee"
	"mentorhub/services/mentor"
	"mentorhub/services/notification"
	"mentorhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	if config.AppConfig.FirebaseCredentialsFile != "" {
		utils.FirebaseInit()
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	mentorRepo := mentorRepoPkg.NewMongoMentorRepo()
	menteeRepo := menteeRepoPkg.NewMongoMenteeRepo()
	timeslotRepo := timeslotRepoPkg.NewMongoTimeSlotRepo()
	eventtypeRepo := eventtypeRepoPkg.NewMongoEventTypeRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	// external clients.
	calClient := calcom.NewClient(config.AppConfig.CalAPIBaseURL, config.AppConfig.CalAPIKey)
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer asynqClient.Close()

	// services.
	availabilityService := &availability.Service{
		Timeslots:  timeslotRepo,
		EventTypes: eventtypeRepo,
		Busy:       calClient,
		Cache:      utils.GetCacheClient(),
		Grid: availability.GridConfig{
			WindowStart: config.AppConfig.GridWindowStart,
			WindowEnd:   config.AppConfig.GridWindowEnd,
			Step:        config.AppConfig.GridStep,
		},
		Logger: logger,
	}

	mentorService := &mentor.DefaultService{
		Repo:       mentorRepo,
		Timeslots:  timeslotRepo,
		EventTypes: eventtypeRepo,
		Cal:        calClient,
		Starter:    mentor.DefaultStarterScheduleConfig(),
	}

	menteeService := &mentee.DefaultService{
		Repo: menteeRepo,
	}

	matchService := &matching.DefaultMatchService{
		MentorRepo:   mentorRepo,
		TimeslotRepo: timeslotRepo,
		CacheClient:  utils.GetCacheClient(),
		Logger:       logger,
	}

	notificationService := &notification.DefaultService{
		Mentors: mentorRepo,
		Mentees: menteeRepo,
	}

	bookingService := &booking.DefaultService{
		Bookings:     bookingRepo,
		Mentors:      mentorRepo,
		Timeslots:    timeslotRepo,
		Availability: availabilityService,
		Notify:       notificationService,
		AsynqClient:  asynqClient,
		ReminderLead: config.AppConfig.ReminderLead,
		Logger:       logger,
	}

	// Background reminder worker.
	cron.InitReminderWorker(notificationService)

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Mentor:       &handlers.MentorHandler{Service: mentorService},
		Mentee:       &handlers.MenteeHandler{Service: menteeService, Matcher: matchService},
		Availability: &handlers.AvailabilityHandler{Mentors: mentorService, Availability: availabilityService},
		Booking:      &handlers.BookingHandler{Service: bookingService},
		Admin:        &handlers.AdminHandler{Bookings: bookingRepo},
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
