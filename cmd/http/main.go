package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"radiox-service/internal/app/config"
	"radiox-service/internal/app/delivery/http/middlewares"
	"radiox-service/internal/app/delivery/http/routers"
	"radiox-service/internal/app/drivers/database"
	"radiox-service/internal/app/drivers/logger"
	smtpdriver "radiox-service/internal/app/drivers/mailer"
	"radiox-service/internal/app/drivers/messaging"
	"radiox-service/internal/app/services/core/appointments"
	"radiox-service/internal/app/services/core/bills"
	"radiox-service/internal/app/services/core/bookings"
	"radiox-service/internal/app/services/core/doctors"
	"radiox-service/internal/app/services/shared/locker"
	"radiox-service/internal/app/services/shared/mailer"
	paymentgateway "radiox-service/internal/app/services/shared/payment_gateway"
	"radiox-service/internal/app/services/shared/redis"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that were already received by the server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) {
	// Redis and slot-hold locker
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)

	// Payment gateway
	paymentGatewayService := paymentgateway.NewStripeService(bootstrap.InternalConfig, bootstrap.Logger)

	// Mailer: publisher plus the SMTP delivery worker
	mailerService, err := mailer.NewMailerService(bootstrap.RabbitMQ, bootstrap.InternalConfig.App.MailerQueue, bootstrap.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize mailer service: %v", err)
	}
	smtpClient := smtpdriver.NewSMTPClient(bootstrap.DriverConfig)
	mailerWorker, err := mailer.NewWorker(bootstrap.Logger, smtpClient, bootstrap.RabbitMQ, bootstrap.InternalConfig.App.MailerQueue)
	if err != nil {
		log.Fatalf("Failed to initialize mailer worker: %v", err)
	}
	if err := mailerWorker.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start mailer worker: %v", err)
	}
	bootstrap.MailerWorkerStop = mailerWorker.Stop

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Appointment
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	if err := appointmentMongoRepository.EnsureIndexes(context.Background()); err != nil {
		log.Fatalf("Failed to ensure appointment indexes: %v", err)
	}
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentMongoRepository, bootstrap.InternalConfig, bootstrap.Logger)
	appointmentController := appointments.NewAppointmentController(appointmentUsecase, bootstrap.Logger)

	// Booking
	bookingMongoRepository := bookings.NewBookingMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	bookingUsecase := bookings.NewBookingUsecase(
		bookingMongoRepository,
		appointmentUsecase,
		lockerService,
		paymentGatewayService,
		mailerService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	bookingController := bookings.NewBookingController(bookingUsecase, bootstrap.Logger)

	// Bill
	billMongoRepository := bills.NewBillMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	billUsecase := bills.NewBillUsecase(billMongoRepository, paymentGatewayService, bootstrap.InternalConfig, bootstrap.Logger)
	billController := bills.NewBillController(billUsecase, bootstrap.Logger)

	// Doctor
	doctorMongoRepository := doctors.NewDoctorMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	doctorUsecase := doctors.NewDoctorUsecase(doctorMongoRepository, redisRepository, bootstrap.Logger)
	doctorController := doctors.NewDoctorController(doctorUsecase, bootstrap.Logger)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		appointmentController,
		bookingController,
		billController,
		doctorController,
	)
}
