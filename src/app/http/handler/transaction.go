package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fintrack/src/app/http/dto"
	"fintrack/src/app/http/response"
	"fintrack/src/core/usecase"
)

// TransactionHandler handles transaction endpoints.
type TransactionHandler struct {
	transactionService *usecase.TransactionService
}

func NewTransactionHandler(transactionService *usecase.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// List handles GET /transactions/:user_id.
func (h *TransactionHandler) List(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	transactions, err := h.transactionService.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, transactions)
}

// Create handles POST /transactions.
func (h *TransactionHandler) Create(c *gin.Context) {
	var req dto.TransactionRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		respondError(c, err)
		return
	}
	tx, err := h.transactionService.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tx)
}

// Delete handles DELETE /transactions/:transaction_id.
func (h *TransactionHandler) Delete(c *gin.Context) {
	transactionID, ok := pathID(c, "transaction_id")
	if !ok {
		return
	}
	if err := h.transactionService.Delete(c.Request.Context(), transactionID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message{Message: "transaction deleted"})
}
