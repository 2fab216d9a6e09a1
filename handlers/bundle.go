package handlers

import (
	userRepoPkg "turfhub/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Auth / account endpoints
	RegisterUserHandler       gin.HandlerFunc
	AuthenticateUserHandler   gin.HandlerFunc
	SignOutHandler            gin.HandlerFunc
	GetProfileHandler         gin.HandlerFunc
	UpdateProfileHandler      gin.HandlerFunc
	UpdateUserPasswordHandler gin.HandlerFunc
	DeleteUserHandler         gin.HandlerFunc
	UpdateFCMTokenHandler     gin.HandlerFunc

	// Turf endpoints
	BrowseTurfsHandler     gin.HandlerFunc
	GetTurfHandler         gin.HandlerFunc
	CreateTurfHandler      gin.HandlerFunc
	UpdateTurfHandler      gin.HandlerFunc
	DeleteTurfHandler      gin.HandlerFunc
	ListOwnerTurfsHandler  gin.HandlerFunc
	UploadTurfImageHandler gin.HandlerFunc

	// Availability rules endpoints
	GetRulesHandler       gin.HandlerFunc
	SaveRulesHandler      gin.HandlerFunc
	WeekViewHandler       gin.HandlerFunc
	AvailableSlotsHandler gin.HandlerFunc

	// Booking endpoints
	BookSlotHandler         gin.HandlerFunc
	CancelBookingHandler    gin.HandlerFunc
	GetBookingHandler       gin.HandlerFunc
	ListUserBookingsHandler gin.HandlerFunc
	ListTurfBookingsHandler gin.HandlerFunc

	// Game and chat endpoints
	HostGameHandler    gin.HandlerFunc
	JoinGameHandler    gin.HandlerFunc
	LeaveGameHandler   gin.HandlerFunc
	GetGameHandler     gin.HandlerFunc
	ListGamesHandler   gin.HandlerFunc
	ChatSocketHandler  gin.HandlerFunc
	ChatHistoryHandler gin.HandlerFunc

	// Wallet and invoice endpoints
	GetBalanceHandler        gin.HandlerFunc
	ListWalletEntriesHandler gin.HandlerFunc
	TopUpHandler             gin.HandlerFunc
	ConfirmTopUpHandler      gin.HandlerFunc
	GetInvoiceHandler        gin.HandlerFunc
	InvoiceFromDataHandler   gin.HandlerFunc

	// Admin endpoints
	AdminHandler *AdminHandler
}
