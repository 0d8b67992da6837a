package routes

import (
	"github.com/fuzziecoder/Brocode-Spot-Update-App/configs"
	"github.com/fuzziecoder/Brocode-Spot-Update-App/controllers"
	"github.com/fuzziecoder/Brocode-Spot-Update-App/entity"
	"github.com/fuzziecoder/Brocode-Spot-Update-App/middlewares"
	"github.com/fuzziecoder/Brocode-Spot-Update-App/repository"
	"github.com/fuzziecoder/Brocode-Spot-Update-App/services"
	"github.com/fuzziecoder/Brocode-Spot-Update-App/ws"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.Hub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	profileRepo := repository.NewProfileRepository(db)
	spotRepo := repository.NewSpotRepository(db)
	invRepo := repository.NewInvitationRepository(db)
	payRepo := repository.NewPaymentRepository(db)
	attRepo := repository.NewAttendanceRepository(db)
	brandRepo := repository.NewDrinkBrandRepository(db)
	selRepo := repository.NewSelectionRepository(db)
	sugRepo := repository.NewSuggestionRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	chatRepo := repository.NewChatRepository(db)
	momentRepo := repository.NewMomentRepository(db)

	// Services (hub = realtime change feed)
	authSvc := services.NewAuthService(profileRepo, cfg.JWTSecret, cfg.JWTTTL)
	spotSvc := services.NewSpotService(db, spotRepo, invRepo, payRepo, profileRepo, notifRepo, hub)
	rsvpSvc := services.NewRSVPService(db, invRepo, payRepo, selRepo, hub)
	paySvc := services.NewPaymentService(db, payRepo, hub)
	attSvc := services.NewAttendanceService(db, attRepo, profileRepo, spotRepo, hub)
	cartSvc := services.NewCartService(db, selRepo, brandRepo, payRepo, hub)
	sugSvc := services.NewSuggestionService(db, sugRepo, hub)
	notifSvc := services.NewNotificationService(notifRepo, hub)
	chatSvc := services.NewChatService(chatRepo, hub)
	momentSvc := services.NewMomentService(momentRepo, hub)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	spotCtrl := controllers.NewSpotController(spotSvc)
	rsvpCtrl := controllers.NewRSVPController(rsvpSvc)
	payCtrl := controllers.NewPaymentController(paySvc)
	attCtrl := controllers.NewAttendanceController(attSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	sugCtrl := controllers.NewSuggestionController(sugSvc)
	notifCtrl := controllers.NewNotificationController(notifSvc)
	chatCtrl := controllers.NewChatController(chatSvc)
	momentCtrl := controllers.NewMomentController(momentSvc)
	profileCtrl := controllers.NewProfileController(profileRepo)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
	}

	// สมาชิกทุก role ที่ล็อกอินแล้ว
	u := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		u.GET("/spots/upcoming", spotCtrl.Upcoming)
		u.GET("/spots/past", spotCtrl.Past)
		u.GET("/spots/:id", spotCtrl.Detail)

		u.GET("/invitations", rsvpCtrl.List)
		u.POST("/invitations", rsvpCtrl.Upsert)
		u.PATCH("/invitations/:id", rsvpCtrl.UpdateStatus)

		u.GET("/payments", payCtrl.List)

		u.GET("/attendance", attCtrl.Mine)
		u.POST("/attendance", attCtrl.Upsert)

		u.GET("/drink-brands", cartCtrl.Brands)
		u.GET("/selections", cartCtrl.Mine)
		u.POST("/selections", cartCtrl.Upsert)
		u.PATCH("/selections/:id", cartCtrl.UpdateQuantity)
		u.DELETE("/selections/:id", cartCtrl.Remove)

		u.GET("/drinks", sugCtrl.ListDrinks)
		u.POST("/drinks", sugCtrl.CreateDrink)
		u.POST("/drinks/:id/vote", sugCtrl.VoteDrink)
		u.DELETE("/drinks/:id", sugCtrl.DeleteDrink)
		u.GET("/foods", sugCtrl.ListFoods)
		u.POST("/foods", sugCtrl.CreateFood)
		u.DELETE("/foods/:id", sugCtrl.DeleteFood)
		u.GET("/cigarettes", sugCtrl.ListCigarettes)
		u.POST("/cigarettes", sugCtrl.CreateCigarette)
		u.DELETE("/cigarettes/:id", sugCtrl.DeleteCigarette)

		u.GET("/notifications", notifCtrl.Mine)
		u.PATCH("/notifications/:id/read", notifCtrl.MarkRead)

		u.GET("/chat/messages", chatCtrl.List)
		u.POST("/chat/messages", chatCtrl.Send)
		u.POST("/chat/messages/:id/reactions", chatCtrl.ToggleReaction)

		u.GET("/moments", momentCtrl.List)
		u.POST("/moments", momentCtrl.Create)
		u.DELETE("/moments/:id", momentCtrl.Delete)

		u.GET("/profiles", profileCtrl.List)
		u.GET("/profiles/:id", profileCtrl.Detail)
	}

	// Admin (admin only)
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin))
	{
		admin.POST("/spots", spotCtrl.Create)
		admin.PATCH("/spots/:id", spotCtrl.Update)
		admin.DELETE("/spots/:id", spotCtrl.Delete)

		admin.POST("/payments", payCtrl.Upsert)
		admin.PATCH("/payments/:id/paid", payCtrl.MarkPaid)
		admin.PATCH("/payments/:id/unpaid", payCtrl.MarkUnpaid)

		admin.GET("/attendance", attCtrl.ListBySpot)
		admin.GET("/selections", cartCtrl.All)

		admin.PATCH("/drinks/:id/price", sugCtrl.SetDrinkPrice)
		admin.PATCH("/foods/:id/price", sugCtrl.SetFoodPrice)

		admin.POST("/notifications", notifCtrl.Create)
		admin.PATCH("/profiles/:id/role", profileCtrl.SetRole)
	}

	// Realtime change feed
	r.GET("/ws/feed", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)
}
