package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tamilmandram_backend/internals/configs"
	chatRoute "tamilmandram_backend/internals/features/chat/route"
	componentRoute "tamilmandram_backend/internals/features/content/components/route"
	teamRoute "tamilmandram_backend/internals/features/content/team/route"
	notificationRoute "tamilmandram_backend/internals/features/home/notifications/route"
	bookRoute "tamilmandram_backend/internals/features/store/books/route"
	cartRoute "tamilmandram_backend/internals/features/store/cart/route"
	orderRoute "tamilmandram_backend/internals/features/store/orders/route"
	paymentRoute "tamilmandram_backend/internals/features/store/payments/route"
	uploadRoute "tamilmandram_backend/internals/features/store/uploads/route"
	authRoute "tamilmandram_backend/internals/features/users/user/route"
	authMiddleware "tamilmandram_backend/internals/middlewares/auth"

	chatService "tamilmandram_backend/internals/features/chat/service"
	paymentService "tamilmandram_backend/internals/features/store/payments/service"
	ossHelper "tamilmandram_backend/internals/helpers/oss"
)

var startTime time.Time

// Deps carries the shared singletons the feature routes need beyond the DB.
type Deps struct {
	Settings *paymentService.Store
	Blob     *ossHelper.Service
	ChatHub  *chatService.Hub
}

func SetupRoutes(app *fiber.App, db *gorm.DB, deps Deps) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	componentRoute.PublicComponentRoutes(public, db)
	teamRoute.PublicTeamRoutes(public, db)
	bookRoute.PublicBookRoutes(public, db)
	notificationRoute.PublicNotificationRoutes(public, db)
	paymentRoute.PublicPaymentSettingRoutes(public, db, deps.Settings)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	user := app.Group("/api/u",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
	)
	authRoute.UserAuthRoutes(user, db)
	cartRoute.UserCartRoutes(user, db, deps.Settings)
	orderRoute.UserOrderRoutes(user, db, deps.Settings)
	uploadRoute.UserUploadRoutes(user, deps.Blob)
	chatRoute.UserChatRoutes(user, db, deps.ChatHub)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		authMiddleware.OnlyAdmin(),
	)
	componentRoute.AdminComponentRoutes(admin, db)
	teamRoute.AdminTeamRoutes(admin, db, deps.Blob)
	bookRoute.AdminBookRoutes(admin, db, deps.Blob)
	notificationRoute.AdminNotificationRoutes(admin, db)
	paymentRoute.AdminPaymentSettingRoutes(admin, db, deps.Settings)
	orderRoute.AdminOrderRoutes(admin, db)
	chatRoute.AdminChatRoutes(admin, db, deps.ChatHub)
}
