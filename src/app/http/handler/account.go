package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fintrack/src/app/http/dto"
	"fintrack/src/app/http/response"
	"fintrack/src/core/usecase"
)

// AccountHandler handles account endpoints.
type AccountHandler struct {
	accountService *usecase.AccountService
}

func NewAccountHandler(accountService *usecase.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// List handles GET /accounts/:user_id.
func (h *AccountHandler) List(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	accounts, err := h.accountService.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, accounts)
}

// Create handles POST /accounts.
func (h *AccountHandler) Create(c *gin.Context) {
	var req dto.AccountRequest
	if !bindJSON(c, &req) {
		return
	}
	account, err := h.accountService.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, account)
}

// Update handles PUT /accounts/:account_id.
func (h *AccountHandler) Update(c *gin.Context) {
	accountID, ok := pathID(c, "account_id")
	if !ok {
		return
	}
	var req dto.AccountRequest
	if !bindJSON(c, &req) {
		return
	}
	account, err := h.accountService.Update(c.Request.Context(), accountID, req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

// Delete handles DELETE /accounts/:account_id.
func (h *AccountHandler) Delete(c *gin.Context) {
	accountID, ok := pathID(c, "account_id")
	if !ok {
		return
	}
	if err := h.accountService.Delete(c.Request.Context(), accountID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message{Message: "account deleted"})
}
