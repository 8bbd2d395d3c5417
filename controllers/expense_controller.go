package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/templetrust/sevaledger/ledger"
	"github.com/templetrust/sevaledger/models"
	"github.com/templetrust/sevaledger/utils"
)

// ExpenseRequest is an administrator-entered expense. Amount in rupees.
type ExpenseRequest struct {
	Purpose     string  `json:"purpose" binding:"required"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount" binding:"required"`
	ImageURL    string  `json:"image_url"`
	Date        string  `json:"date"` // RFC 3339, defaults to now
}

// POST /v1/admin/expenses
func CreateExpense(c *gin.Context) {
	utils.LogInfo("CreateExpense called")

	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request. Purpose and amount are required", err.Error())
		return
	}

	amountPaise, err := ledger.ToMinorUnits(req.Amount)
	if err != nil {
		utils.BadRequest(c, "Invalid amount", nil)
		return
	}

	var date time.Time
	if req.Date != "" {
		date, err = time.Parse(time.RFC3339, req.Date)
		if err != nil {
			utils.BadRequest(c, "Invalid date, expected RFC 3339", err.Error())
			return
		}
	}

	expense := &models.Expense{
		Purpose:     req.Purpose,
		Description: req.Description,
		Amount:      amountPaise,
		ImageURL:    req.ImageURL,
		Date:        date,
	}
	if err := svc.AddExpense(c.Request.Context(), expense); err != nil {
		utils.LogError("Failed to record expense: %v", err)
		utils.InternalServerError(c, "Failed to record expense", nil)
		return
	}

	utils.LogInfo("Expense recorded: %s amount %d paise", expense.Purpose, expense.Amount)
	utils.Created(c, "Expense recorded successfully", expense)
}

// GET /v1/expenses
func ListExpenses(c *gin.Context) {
	pagination := utils.NewPagination(c)
	expenses, total, err := svc.Store.ListExpenses(c.Request.Context(), pagination.Limit, pagination.Offset)
	if err != nil {
		utils.LogError("Failed to list expenses: %v", err)
		utils.InternalServerError(c, "Failed to fetch expenses", nil)
		return
	}
	utils.SuccessWithPagination(c, "Expenses retrieved successfully", expenses, total, pagination.Page, pagination.Limit)
}
