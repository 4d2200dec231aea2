package handler

import (
	"net/http"

	"github.com/AnTengye/contractstudio/middleware"
	"github.com/AnTengye/contractstudio/model"
	"github.com/AnTengye/contractstudio/service"
	"github.com/gin-gonic/gin"
)

type BudgetHandler struct {
	budgets *service.BudgetService
}

func NewBudgetHandler(budgets *service.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgets: budgets}
}

// Quote prices the requested lines
func (h *BudgetHandler) Quote(c *gin.Context) {
	var req model.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	quote, err := h.budgets.Quote(middleware.GetTenant(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}
