package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fintrack/src/app/http/dto"
	"fintrack/src/app/http/response"
	"fintrack/src/app/middleware"
	"fintrack/src/core/domain"
	"fintrack/src/core/usecase"
)

// BudgetHandler handles budget endpoints.
type BudgetHandler struct {
	budgetService *usecase.BudgetService
}

func NewBudgetHandler(budgetService *usecase.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// List handles GET /budgets/:user_id. The month and year query parameters
// narrow the result only when both are present.
func (h *BudgetHandler) List(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	var period *domain.BudgetPeriod
	month, year := c.Query("month"), c.Query("year")
	if month != "" && year != "" {
		m, errM := strconv.Atoi(month)
		y, errY := strconv.Atoi(year)
		if errM != nil || errY != nil {
			response.BadRequest(c, "month and year must be integers", middleware.GetRequestID(c))
			return
		}
		period = &domain.BudgetPeriod{Month: m, Year: y}
	}

	budgets, err := h.budgetService.List(c.Request.Context(), userID, period)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, budgets)
}

// Create handles POST /budgets.
func (h *BudgetHandler) Create(c *gin.Context) {
	var req dto.BudgetRequest
	if !bindJSON(c, &req) {
		return
	}
	budget, err := h.budgetService.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, budget)
}

// Update handles PUT /budgets/:budget_id.
func (h *BudgetHandler) Update(c *gin.Context) {
	budgetID, ok := pathID(c, "budget_id")
	if !ok {
		return
	}
	var req dto.BudgetRequest
	if !bindJSON(c, &req) {
		return
	}
	budget, err := h.budgetService.Update(c.Request.Context(), budgetID, req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, budget)
}

// Delete handles DELETE /budgets/:budget_id.
func (h *BudgetHandler) Delete(c *gin.Context) {
	budgetID, ok := pathID(c, "budget_id")
	if !ok {
		return
	}
	if err := h.budgetService.Delete(c.Request.Context(), budgetID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message{Message: "budget deleted"})
}
