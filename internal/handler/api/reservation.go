package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	reqdto "fuelstation/internal/handler/dto/request"
	resdto "fuelstation/internal/handler/dto/response"
	"fuelstation/internal/handler/middleware"
	"fuelstation/internal/pkg/errs"
	"fuelstation/internal/usecase/commands"
	"fuelstation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
	reservationQueries  queries.ReservationQueries
}

func NewReservationHandler(
	reservationCommands commands.ReservationCommands,
	reservationQueries queries.ReservationQueries,
) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: reservationCommands,
		reservationQueries:  reservationQueries,
	}
}

// @Summary Create reservation
// @Description Reserve a fuel column for a fixed 15-minute slot
// @Tags reservations
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Caller user ID"
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	reservationView, err := h.reservationCommands.Reserve(c.Request.Context(), userID, req.ColumnID, req.StartTime)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrColumnNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Column not found",
			})
		case errors.Is(err, errs.ErrInvalidTimeSlot):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid time slot",
			})
		case errors.Is(err, errs.ErrColumnUnavailable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Column is not available",
			})
		case errors.Is(err, errs.ErrSlotConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Time slot already reserved",
			})
		case errors.Is(err, errs.ErrDailyLimitExceeded):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Daily reservation limit reached",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservationView(reservationView))
}

// @Summary Cancel reservation
// @Description Cancel a reservation; cancelling an already inactive one is a no-op
// @Tags reservations
// @Produce json
// @Param X-User-ID header string true "Caller user ID"
// @Param id path int true "Reservation ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	if err := h.reservationCommands.Cancel(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, errs.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get reservation
// @Description Get reservation by ID
// @Tags reservations
// @Produce json
// @Param X-User-ID header string true "Caller user ID"
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	reservationView, err := h.reservationQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(reservationView))
}

// @Summary Get user reservations
// @Description List active reservations for the current user, optionally from a date
// @Tags reservations
// @Produce json
// @Param X-User-ID header string true "Caller user ID"
// @Param from query string false "RFC3339 lower bound for slot start"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Router /reservations [get]
func (h *ReservationHandler) GetUserReservations(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var fromDate time.Time
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid from date format",
			})
			return
		}
		fromDate = parsed
	}

	reservationViews, err := h.reservationQueries.ActiveForUser(c.Request.Context(), userID, fromDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationViews(reservationViews))
}

// @Summary List column reservations
// @Description List active reservations holding a column, ordered by slot start
// @Tags reservations
// @Produce json
// @Param id path int true "Column ID"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Router /columns/{id}/reservations [get]
func (h *ReservationHandler) GetColumnReservations(c *gin.Context) {
	columnID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid column ID format",
		})
		return
	}

	reservationViews, err := h.reservationQueries.ActiveForColumn(c.Request.Context(), columnID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationViews(reservationViews))
}

func parseIDParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid ID")
	}
	return id, nil
}
