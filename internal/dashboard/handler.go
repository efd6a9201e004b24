package dashboard

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Cong-Nghe-Phan-Mem-UTH/bigboy-app/internal/admin"
	"github.com/Cong-Nghe-Phan-Mem-UTH/bigboy-app/internal/api"
	"github.com/Cong-Nghe-Phan-Mem-UTH/bigboy-app/internal/reservation"
)

// Handler exposes the admin dashboard's JSON API. Every method is a thin
// bind-call-respond wrapper; backend rejections pass through with their own
// status and message.
type Handler struct {
	admin        *admin.Service
	reservations *reservation.Service
}

func NewHandler(adminService *admin.Service, reservationService *reservation.Service) *Handler {
	return &Handler{admin: adminService, reservations: reservationService}
}

// respondErr maps an SDK error onto the response: backend errors keep their
// status and message, transport failures become a 502.
func respondErr(c *gin.Context, err error) {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, gin.H{"error": apiErr.Message})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": api.ErrorMessage(err)})
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

//
// --------------------------------------------------
// Reservations
// --------------------------------------------------
//

func (h *Handler) ListReservations(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	result, err := h.reservations.ListForMyRestaurant(c.Request.Context(), reservation.OwnerListParams{
		Status: c.Query("status"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) ApproveReservation(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	updated, err := h.reservations.Approve(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) RejectReservation(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	// Body is optional on reject.
	var req struct {
		Reason string `json:"reason"`
	}
	_ = c.ShouldBindJSON(&req)

	updated, err := h.reservations.Reject(c.Request.Context(), id, req.Reason)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) UpdateReservationStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.BindJSON(&req); err != nil || req.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	updated, err := h.reservations.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

//
// --------------------------------------------------
// Restaurants + users
// --------------------------------------------------
//

func (h *Handler) ListRestaurants(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	restaurants, err := h.admin.Restaurants(c.Request.Context(), admin.ListParams{
		Page: page, Limit: limit, Status: c.Query("status"),
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

func (h *Handler) UpdateRestaurantStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.BindJSON(&req); err != nil || req.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	updated, err := h.admin.UpdateRestaurantStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	users, err := h.admin.Users(c.Request.Context(), admin.ListParams{
		Page: page, Limit: limit, Role: c.Query("role"),
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

//
// --------------------------------------------------
// Revenue + AI config
// --------------------------------------------------
//

func (h *Handler) Revenue(c *gin.Context) {
	revenue, err := h.admin.Revenue(c.Request.Context(), c.Query("date_from"), c.Query("date_to"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, revenue)
}

func (h *Handler) GetAIConfig(c *gin.Context) {
	cfg, err := h.admin.AIConfig(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

func (h *Handler) UpdateAIConfig(c *gin.Context) {
	var cfg admin.AIConfig
	if err := c.BindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid config"})
		return
	}

	stored, err := h.admin.UpdateAIConfig(c.Request.Context(), cfg)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, stored)
}
