package router

import (
	"net/http"

	"github.com/stpnv0/StayBooker/internal/handler"
	"github.com/stpnv0/StayBooker/internal/metrics"
	"github.com/wb-go/wbf/ginext"
)

// InitRouter mounts the API under /api/v1. auth runs on every API route and
// only resolves identity; the services decide whether identity is required.
func InitRouter(mode string, h *handler.Handler, auth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api/v1")
	api.Use(auth)
	{
		// Users
		api.POST("/users", h.SignUp)
		api.POST("/users/token", h.Login)
		api.POST("/users/token/refresh", h.RefreshToken)
		api.POST("/users/logout", h.Logout)
		api.GET("/users/me", h.Me)
		api.PUT("/users/me", h.UpdateMe)
		api.PUT("/users/change-password", h.ChangePassword)
		api.GET("/users/me/bookings", h.MyBookings)

		// Catalog
		api.GET("/categories", h.ListCategories)
		api.POST("/categories", h.CreateCategory)
		api.GET("/categories/:id", h.GetCategory)
		api.PUT("/categories/:id", h.UpdateCategory)
		api.DELETE("/categories/:id", h.DeleteCategory)

		api.GET("/amenities", h.ListAmenities)
		api.POST("/amenities", h.CreateAmenity)
		api.GET("/amenities/:id", h.GetAmenity)
		api.PUT("/amenities/:id", h.UpdateAmenity)
		api.DELETE("/amenities/:id", h.DeleteAmenity)

		api.GET("/perks", h.ListPerks)
		api.POST("/perks", h.CreatePerk)
		api.GET("/perks/:id", h.GetPerk)
		api.PUT("/perks/:id", h.UpdatePerk)
		api.DELETE("/perks/:id", h.DeletePerk)

		// Rooms
		api.GET("/rooms", h.ListRooms)
		api.POST("/rooms", h.CreateRoom)
		api.GET("/rooms/:id", h.GetRoom)
		api.PUT("/rooms/:id", h.UpdateRoom)
		api.DELETE("/rooms/:id", h.DeleteRoom)
		api.GET("/rooms/:id/reviews", h.ListRoomReviews)
		api.POST("/rooms/:id/reviews", h.CreateRoomReview)
		api.GET("/rooms/:id/bookings", h.ListRoomBookings)
		api.POST("/rooms/:id/bookings", h.BookRoom)
		api.GET("/rooms/:id/bookings/check", h.CheckRoomAvailability)
		api.POST("/rooms/:id/photos", h.AddRoomPhoto)

		// Experiences
		api.GET("/experiences", h.ListExperiences)
		api.POST("/experiences", h.CreateExperience)
		api.GET("/experiences/:id", h.GetExperience)
		api.PUT("/experiences/:id", h.UpdateExperience)
		api.DELETE("/experiences/:id", h.DeleteExperience)
		api.GET("/experiences/:id/reviews", h.ListExperienceReviews)
		api.POST("/experiences/:id/reviews", h.CreateExperienceReview)
		api.GET("/experiences/:id/bookings", h.ListExperienceBookings)
		api.POST("/experiences/:id/bookings", h.BookExperience)
		api.POST("/experiences/:id/photos", h.AddExperiencePhoto)

		api.DELETE("/photos/:id", h.DeletePhoto)

		// Wishlists
		api.GET("/wishlists", h.ListWishlists)
		api.POST("/wishlists", h.CreateWishlist)
		api.GET("/wishlists/:id", h.GetWishlist)
		api.PUT("/wishlists/:id", h.RenameWishlist)
		api.DELETE("/wishlists/:id", h.DeleteWishlist)
		api.PUT("/wishlists/:id/rooms/:room_id", h.ToggleWishlistRoom)
		api.PUT("/wishlists/:id/experiences/:experience_id", h.ToggleWishlistExperience)

		// Direct messages
		api.GET("/chats", h.ListChats)
		api.POST("/chats", h.CreateChat)
		api.GET("/chats/:id/messages", h.ListMessages)
		api.POST("/chats/:id/messages", h.SendMessage)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	metricsHandler := metrics.Handler()
	router.GET("/metrics", func(c *ginext.Context) {
		metricsHandler.ServeHTTP(c.Writer, c.Request)
	})

	return router
}
