package dashboard

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the dashboard's gin engine: CORS restricted to the
// configured origins, the admin token gate on every /dashboard/api route and
// a bare health check.
func NewRouter(handler *Handler, origins []string, adminToken string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	dash := r.Group("/dashboard/api")
	dash.Use(AdminAuthMiddleware(adminToken))
	{
		dash.GET("/reservations", handler.ListReservations)
		dash.PUT("/reservations/:id/approve", handler.ApproveReservation)
		dash.PUT("/reservations/:id/reject", handler.RejectReservation)
		dash.PUT("/reservations/:id/status", handler.UpdateReservationStatus)

		dash.GET("/restaurants", handler.ListRestaurants)
		dash.PUT("/restaurants/:id/status", handler.UpdateRestaurantStatus)

		dash.GET("/users", handler.ListUsers)
		dash.GET("/revenue", handler.Revenue)

		dash.GET("/ai-config", handler.GetAIConfig)
		dash.PUT("/ai-config", handler.UpdateAIConfig)
	}

	return r
}
