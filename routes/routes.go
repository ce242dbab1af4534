package routes

import (
	"github.com/r4mir3zzz/habit-tracker/controllers"
	"github.com/r4mir3zzz/habit-tracker/middlewares"
	"github.com/r4mir3zzz/habit-tracker/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, hub *services.RealtimeHub, push *services.PushService) *gin.Engine {
	r := gin.Default()

	auth := controllers.NewAuthController(services.NewAuthService(db))
	users := services.NewUserService(db)
	invitations := services.NewInvitationService(db)
	user := controllers.NewUserController(users)
	habit := controllers.NewHabitController(services.NewHabitService(db))
	record := controllers.NewRecordController(services.NewRecordService(db))
	progress := controllers.NewProgressController(services.NewProgressService(db), invitations, users)
	invitation := controllers.NewInvitationController(invitations)
	realtime := controllers.NewRealtimeController(hub)
	device := controllers.NewDeviceController(push)
	dev := controllers.NewDevController(push)

	// Public auth routes
	pub := r.Group("/auth")
	{
		pub.POST("/register", auth.Register)
		pub.POST("/resend-code", auth.ResendCode)
		pub.POST("/verify", auth.Verify)
		pub.POST("/login", auth.Login)
	}

	// Everything else requires a token
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/user/profile", user.GetProfile)
		api.PUT("/user/profile", user.UpdateProfile)

		api.GET("/habits", habit.List)
		api.POST("/habits", habit.Add)
		api.DELETE("/habits/:name", habit.Remove)

		api.POST("/records", record.Save)
		api.PUT("/records", record.Update)

		api.GET("/progress/daily", progress.Daily)
		api.GET("/progress/summary", progress.Summary)
		api.GET("/records/recent", progress.Recent)
		api.GET("/progress/shared/:username", progress.SharedDaily)

		api.POST("/invitations", invitation.Send)
		api.GET("/invitations/pending", invitation.ListPending)
		api.GET("/invitations/accepted", invitation.ListAcceptedSenders)
		api.POST("/invitations/:id/accept", invitation.Accept)
		api.DELETE("/invitations/:id", invitation.Reject)
		api.DELETE("/invitations/:id/share", invitation.Revoke)

		api.POST("/devices", device.Register)
		api.POST("/user/notifications/toggle", controllers.ToggleNotifications)
		api.GET("/ws/invitations", realtime.InvitationsWS)
		api.POST("/dev/push-test", dev.PushTest)
	}

	return r
}
