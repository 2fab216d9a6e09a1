package routes

import (
	"net/http"
	"time"

	"turfhub/handlers"
	"turfhub/middleware"
	"turfhub/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers signup/signin/signout endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/signup", hb.RegisterUserHandler)
		api.POST("/signin", hb.AuthenticateUserHandler)

		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/signout", hb.SignOutHandler)
	}
}

// RegisterUserRoutes registers the signed-in account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.GetProfileHandler)
		api.PUT("/me", hb.UpdateProfileHandler)
		api.PUT("/me/password", hb.UpdateUserPasswordHandler)
		api.DELETE("/me", hb.DeleteUserHandler)
		api.PUT("/me/fcm-token", hb.UpdateFCMTokenHandler)
	}
}

// RegisterTurfRoutes registers public browsing and slot discovery.
func RegisterTurfRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/turfs")
	{
		api.GET("", hb.BrowseTurfsHandler)
		api.GET("/:id", hb.GetTurfHandler)
		api.GET("/:id/week", hb.WeekViewHandler)
		api.GET("/:id/slots", hb.AvailableSlotsHandler)
	}
}

// RegisterOwnerRoutes registers turf management and the rules editor.
func RegisterOwnerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/owner")
	{
		api.Use(middleware.JWTAuthOwnerMiddleware(hb.UserRepo))
		api.GET("/turfs", hb.ListOwnerTurfsHandler)
		api.POST("/turfs", hb.CreateTurfHandler)
		api.PUT("/turfs/:id", hb.UpdateTurfHandler)
		api.DELETE("/turfs/:id", hb.DeleteTurfHandler)
		api.POST("/turfs/:id/images", hb.UploadTurfImageHandler)
		api.GET("/turfs/:id/rules", hb.GetRulesHandler)
		api.PUT("/turfs/:id/rules", hb.SaveRulesHandler)
		api.GET("/turfs/:id/bookings", hb.ListTurfBookingsHandler)
	}
}

// RegisterBookingRoutes registers slot booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.BookSlotHandler)
		api.GET("", hb.ListUserBookingsHandler)
		api.GET("/:id", hb.GetBookingHandler)
		api.POST("/:id/cancel", hb.CancelBookingHandler)
		api.GET("/:id/invoice", hb.GetInvoiceHandler)
	}
}

// RegisterGameRoutes registers group games and their chat endpoints.
func RegisterGameRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/games")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.HostGameHandler)
		api.GET("", hb.ListGamesHandler)
		api.GET("/:id", hb.GetGameHandler)
		api.POST("/:id/join", hb.JoinGameHandler)
		api.POST("/:id/leave", hb.LeaveGameHandler)
		api.GET("/:id/chat", hb.ChatHistoryHandler)
	}

	ws := r.Group("/ws")
	{
		ws.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		ws.GET("/chat", hb.ChatSocketHandler)
	}
}

// RegisterWalletRoutes registers wallet and legacy invoice-view endpoints.
func RegisterWalletRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/wallet")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", hb.GetBalanceHandler)
		api.GET("/entries", hb.ListWalletEntriesHandler)
		api.POST("/topup", hb.TopUpHandler)
		api.POST("/topup/confirm", hb.ConfirmTopUpHandler)
	}

	invoices := r.Group("/api/invoices")
	{
		invoices.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		invoices.GET("/view", hb.InvoiceFromDataHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.JWTAuthAdminMiddleware(hb.UserRepo))
		api.GET("/users", hb.AdminHandler.ListUsersHandler)
		api.GET("/owners", hb.AdminHandler.ListOwnersHandler)
		api.GET("/turfs", hb.AdminHandler.ListTurfsHandler)
		api.POST("/turfs/:id/approve", hb.AdminHandler.ApproveTurfHandler)
		api.POST("/turfs/:id/reject", hb.AdminHandler.RejectTurfHandler)
		api.POST("/turfs/:id/block", hb.AdminHandler.BlockTurfHandler)
		api.POST("/users/:id/block", hb.AdminHandler.BlockUserHandler)
		api.POST("/users/:id/unblock", hb.AdminHandler.UnblockUserHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterTurfRoutes(r, hb)
	RegisterOwnerRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterGameRoutes(r, hb)
	RegisterWalletRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
