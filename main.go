package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"turfhub/config"
	"turfhub/cron"
	"turfhub/database"
	bookingRepoPkg "turfhub/database/repository/booking"
	chatRepoPkg "turfhub/database/repository/chat"
	gameRepoPkg "turfhub/database/repository/game"
	invoiceRepoPkg "turfhub/database/repository/invoice"
	rulesRepoPkg "turfhub/database/repository/rules"
	turfRepoPkg "turfhub/database/repository/turf"
	userRepoPkg "turfhub/database/repository/user"
	walletRepoPkg "turfhub/database/repository/wallet"
	"turfhub/handlers"
	"turfhub/middleware"
	"turfhub/routes"
	"turfhub/services/admin"
	"turfhub/services/booking"
	"turfhub/services/chat"
	"turfhub/services/game"
	"turfhub/services/invoice"
	"turfhub/services/notification"
	"turfhub/services/rules"
	"turfhub/services/turf"
	"turfhub/services/user"
	"turfhub/services/wallet"
	"turfhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	turfRepo := turfRepoPkg.NewMongoTurfRepo()
	rulesRepo := rulesRepoPkg.NewMongoRulesRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	gameRepo := gameRepoPkg.NewMongoGameRepo()
	chatRepo := chatRepoPkg.NewMongoChatRepo()
	walletRepo := walletRepoPkg.NewMongoWalletRepo()
	invoiceRepo := invoiceRepoPkg.NewMongoInvoiceRepo()

	// services.
	userService := &user.DefaultUserService{Repo: userRepo}

	turfService := &turf.DefaultTurfService{
		Repo:    turfRepo,
		Storage: cloudinaryStorageService,
	}

	rulesService := &rules.DefaultRulesService{
		Repo:        rulesRepo,
		TurfRepo:    turfRepo,
		BookingRepo: bookingRepo,
	}

	walletService := &wallet.DefaultWalletService{Repo: walletRepo}

	notificationService := &notification.DefaultNotificationService{UserRepo: userRepo}

	bookingService := &booking.DefaultBookingService{
		Repo:            bookingRepo,
		TurfRepo:        turfRepo,
		RulesSvc:        rulesService,
		Wallet:          walletService,
		InvoiceRepo:     invoiceRepo,
		Notification:    notificationService,
		EnqueueReminder: cron.EnqueueBookingReminder,
	}

	gameService := &game.DefaultGameService{
		Repo:     gameRepo,
		TurfRepo: turfRepo,
	}

	chatService := &chat.DefaultChatService{
		Repo:     chatRepo,
		GameRepo: gameRepo,
	}
	chatHub := chat.NewHub(chatService)

	invoiceService := &invoice.DefaultInvoiceService{
		Repo:     invoiceRepo,
		TurfRepo: turfRepo,
	}

	adminService := &admin.DefaultAdminService{
		UserRepo:     userRepo,
		TurfRepo:     turfRepo,
		Notification: notificationService,
	}

	// handlers.
	userHandler := &handlers.UserHandler{UserService: userService}
	turfHandler := &handlers.TurfHandler{TurfService: turfService}
	rulesHandler := &handlers.RulesHandler{RulesService: rulesService}
	bookingHandler := &handlers.BookingHandler{BookingService: bookingService}
	gameHandler := &handlers.GameHandler{GameService: gameService}
	chatHandler := &handlers.ChatHandler{ChatService: chatService, Hub: chatHub}
	walletHandler := &handlers.WalletHandler{WalletService: walletService}
	invoiceHandler := &handlers.InvoiceHandler{InvoiceService: invoiceService}
	adminHandler := &handlers.AdminHandler{AdminService: adminService}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		RegisterUserHandler:       userHandler.RegisterUserHandler,
		AuthenticateUserHandler:   userHandler.AuthenticateUserHandler,
		SignOutHandler:            userHandler.SignOutHandler,
		GetProfileHandler:         userHandler.GetProfileHandler,
		UpdateProfileHandler:      userHandler.UpdateProfileHandler,
		UpdateUserPasswordHandler: userHandler.UpdateUserPasswordHandler,
		DeleteUserHandler:         userHandler.DeleteUserHandler,
		UpdateFCMTokenHandler:     userHandler.UpdateFCMTokenHandler,

		BrowseTurfsHandler:     turfHandler.BrowseTurfsHandler,
		GetTurfHandler:         turfHandler.GetTurfHandler,
		CreateTurfHandler:      turfHandler.CreateTurfHandler,
		UpdateTurfHandler:      turfHandler.UpdateTurfHandler,
		DeleteTurfHandler:      turfHandler.DeleteTurfHandler,
		ListOwnerTurfsHandler:  turfHandler.ListOwnerTurfsHandler,
		UploadTurfImageHandler: turfHandler.UploadTurfImageHandler,

		GetRulesHandler:       rulesHandler.GetRulesHandler,
		SaveRulesHandler:      rulesHandler.SaveRulesHandler,
		WeekViewHandler:       rulesHandler.WeekViewHandler,
		AvailableSlotsHandler: rulesHandler.AvailableSlotsHandler,

		BookSlotHandler:         bookingHandler.BookSlotHandler,
		CancelBookingHandler:    bookingHandler.CancelBookingHandler,
		GetBookingHandler:       bookingHandler.GetBookingHandler,
		ListUserBookingsHandler: bookingHandler.ListUserBookingsHandler,
		ListTurfBookingsHandler: bookingHandler.ListTurfBookingsHandler,

		HostGameHandler:    gameHandler.HostGameHandler,
		JoinGameHandler:    gameHandler.JoinGameHandler,
		LeaveGameHandler:   gameHandler.LeaveGameHandler,
		GetGameHandler:     gameHandler.GetGameHandler,
		ListGamesHandler:   gameHandler.ListGamesHandler,
		ChatSocketHandler:  chatHandler.ChatSocketHandler,
		ChatHistoryHandler: chatHandler.ChatHistoryHandler,

		GetBalanceHandler:        walletHandler.GetBalanceHandler,
		ListWalletEntriesHandler: walletHandler.ListEntriesHandler,
		TopUpHandler:             walletHandler.TopUpHandler,
		ConfirmTopUpHandler:      walletHandler.ConfirmTopUpHandler,
		GetInvoiceHandler:        invoiceHandler.GetInvoiceHandler,
		InvoiceFromDataHandler:   invoiceHandler.InvoiceFromDataHandler,

		AdminHandler: adminHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background reminder worker and health monitor.
	cron.InitReminderWorker(notificationService)
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

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
