package routes

import (
	"github.com/Trupti-Varma/SAVEBITE/controllers"
	"github.com/Trupti-Varma/SAVEBITE/middlewares"
	"github.com/Trupti-Varma/SAVEBITE/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(rt *services.RealtimeHub, ps *services.PushService) *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Everything below requires a valid token.
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.POST("/auth/logout", controllers.Logout)

		api.GET("/inventory", controllers.ListInventory)
		api.POST("/inventory", controllers.AddInventoryItem)
		api.PUT("/inventory/:id", controllers.EditInventoryItem)
		api.DELETE("/inventory/:id", controllers.DeleteInventoryItem)
		api.PATCH("/inventory/:id/status", controllers.UpdateInventoryStatus)

		api.GET("/recipes", controllers.ListRecipes)
		api.POST("/recipes/generate", controllers.GenerateRecipes)
		api.POST("/recipes/cook", controllers.CookRecipe)

		api.POST("/donations/complete", controllers.CompleteDonation)
		api.GET("/donations/history", controllers.DonationHistory)

		api.GET("/stats", controllers.GetStats)
		api.PUT("/stats", controllers.OverrideStats)

		api.GET("/ngos", controllers.ListNGOs)
		api.GET("/badges", controllers.ListBadges)

		api.GET("/settings/theme", controllers.GetTheme)
		api.PUT("/settings/theme", controllers.SetTheme)

		api.POST("/food/scan", controllers.ScanFood)

		api.GET("/user/profile", controllers.GetProfile)
		api.PUT("/user/profile", controllers.UpdateProfile)
		api.GET("/user/alerts", controllers.ListAlerts)
		api.POST("/user/notifications/toggle", controllers.ToggleNotifications)

		if ps != nil {
			dc := controllers.NewDeviceController(ps)
			api.POST("/user/devices", dc.Register)
		}

		rc := controllers.NewRealtimeController(rt)
		api.GET("/ws", rc.StatsWS)
	}

	return r
}
