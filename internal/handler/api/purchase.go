package api

import (
	"errors"
	"net/http"

	reqdto "fuelstation/internal/handler/dto/request"
	resdto "fuelstation/internal/handler/dto/response"
	"fuelstation/internal/handler/middleware"
	"fuelstation/internal/pkg/errs"
	"fuelstation/internal/usecase/commands"
	"fuelstation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PurchaseHandler struct {
	purchaseCommands   commands.PurchaseCommands
	transactionQueries queries.TransactionQueries
}

func NewPurchaseHandler(
	purchaseCommands commands.PurchaseCommands,
	transactionQueries queries.TransactionQueries,
) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseCommands:   purchaseCommands,
		transactionQueries: transactionQueries,
	}
}

// @Summary Purchase fuel
// @Description Dispense fuel at a column and record the sale atomically
// @Tags purchases
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Caller user ID"
// @Param Idempotency-Key header string true "Idempotency key for duplicate prevention"
// @Param request body reqdto.CreatePurchaseRequest true "Purchase request"
// @Success 201 {object} resdto.PurchaseResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /purchases [post]
func (h *PurchaseHandler) CreatePurchase(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	idempotencyKey, err := h.getIdempotencyKey(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	var req reqdto.CreatePurchaseRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.purchaseCommands.Purchase(c.Request.Context(), req.ToParams(userID), idempotencyKey)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrColumnNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Column not found",
			})
		case errors.Is(err, errs.ErrFuelNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Fuel not found",
			})
		case errors.Is(err, errs.ErrInvalidVolume):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Volume must be positive",
			})
		case errors.Is(err, errs.ErrInvalidPaymentMethod):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unknown payment method",
			})
		case errors.Is(err, errs.ErrFuelNotOfferedAtColumn):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Fuel is not offered at this column",
			})
		case errors.Is(err, errs.ErrInsufficientStock):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Insufficient fuel stock",
			})
		case errors.Is(err, errs.ErrDuplicatePurchase):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Duplicate purchase request with different parameters",
			})
		case errors.Is(err, errs.ErrIdempotencyInProgress):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Purchase request is currently being processed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromPurchaseResult(result))
}

// @Summary Get transaction
// @Description Get a recorded fuel sale by ID
// @Tags purchases
// @Produce json
// @Param X-User-ID header string true "Caller user ID"
// @Param id path int true "Transaction ID"
// @Success 200 {object} resdto.TransactionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /transactions/{id} [get]
func (h *PurchaseHandler) GetTransaction(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid transaction ID format",
		})
		return
	}

	transactionView, err := h.transactionQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrTransactionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Transaction not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromTransactionView(transactionView))
}

// @Summary Get user transactions
// @Description List recorded fuel sales for the current user
// @Tags purchases
// @Produce json
// @Param X-User-ID header string true "Caller user ID"
// @Success 200 {array} resdto.TransactionResponse
// @Router /transactions [get]
func (h *PurchaseHandler) GetUserTransactions(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	transactionViews, err := h.transactionQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromTransactionViews(transactionViews))
}

func (h *PurchaseHandler) getIdempotencyKey(c *gin.Context) (uuid.UUID, error) {
	keyStr := c.GetHeader("Idempotency-Key")
	if keyStr == "" {
		return uuid.Nil, errs.ErrIdempotencyKeyRequired
	}

	key, err := uuid.Parse(keyStr)
	if err != nil {
		return uuid.Nil, errors.New("invalid idempotency key format")
	}

	return key, nil
}
