package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-booking-backend/controllers"
	"hotel-booking-backend/middleware"
	"hotel-booking-backend/models"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(
	ac *controllers.AuthController,
	rc *controllers.RoomController,
	bc *controllers.BookingController,
	jwtSecret []byte,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())
	r.Static("/uploads", "./uploads")

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register-guest", ac.RegisterGuest)
			auth.POST("/login", ac.Login)

			// staff accounts can only be created by a super admin
			staff := auth.Group("", middleware.RequireAuth(jwtSecret), middleware.RequireRoles(models.RoleSuperAdmin))
			{
				staff.POST("/register-employee", ac.RegisterEmployee)
				staff.POST("/register-superadmin", ac.RegisterSuperAdmin)
			}
		}

		rooms := api.Group("/rooms", middleware.RequireAuth(jwtSecret))
		{
			rooms.GET("", rc.GetRooms)
			rooms.GET("/available", rc.GetAvailableRooms)
			rooms.GET("/availability/:roomNumber", rc.CheckAvailability)
			rooms.GET("/number/:roomNumber", rc.GetRoomByNumber)

			staffRooms := rooms.Group("", middleware.RequireRoles(models.RoleEmployee, models.RoleSuperAdmin))
			{
				staffRooms.GET("/booked", rc.GetBookedRooms)
				staffRooms.GET("/overdue", rc.GetOverdueRooms)
				staffRooms.PATCH("/reclaim", rc.ReclaimOverdueRooms)
				staffRooms.PATCH("/:id/reclaim", rc.ReclaimOverdueRoomByID)
				staffRooms.PATCH("/:id/photo", rc.UpdateRoomPhoto)
			}

			// keep after the literal routes so they are not shadowed
			rooms.GET("/:id", rc.GetRoomByID)
		}

		bookings := api.Group("/bookings", middleware.RequireAuth(jwtSecret))
		{
			bookings.POST("", bc.CreateBooking)
			bookings.PUT("/room/:roomId", bc.UpdateBooking)
			bookings.DELETE("/room-number/:roomNumber", bc.CancelBooking)
		}
	}

	return r
}
