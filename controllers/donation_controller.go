package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/templetrust/sevaledger/ledger"
	"github.com/templetrust/sevaledger/utils"
)

// GET /v1/donations
//
// Public ledger view, newest first.
func ListDonations(c *gin.Context) {
	pagination := utils.NewPagination(c)
	donations, total, err := svc.Store.ListDonations(c.Request.Context(), pagination.Limit, pagination.Offset)
	if err != nil {
		utils.LogError("Failed to list donations: %v", err)
		utils.InternalServerError(c, "Failed to fetch donations", nil)
		return
	}
	utils.SuccessWithPagination(c, "Donations retrieved successfully", donations, total, pagination.Page, pagination.Limit)
}

// GET /v1/donations/recent
func RecentDonations(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 10
	}
	donations, _, err := svc.Store.ListDonations(c.Request.Context(), limit, 0)
	if err != nil {
		utils.LogError("Failed to list recent donations: %v", err)
		utils.InternalServerError(c, "Failed to fetch donations", nil)
		return
	}
	utils.Success(c, "Recent donations retrieved successfully", donations)
}

// CashDonationRequest is an administrator-entered cash pledge. Amount is
// in rupees, like the donate widget.
type CashDonationRequest struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount" binding:"required"`
	Date   string  `json:"date"` // RFC 3339, defaults to now
}

// POST /v1/admin/donations
//
// The manual path for donations collected offline. Works in fallback
// mode too: cash entries are local-only by nature.
func CreateCashDonation(c *gin.Context) {
	utils.LogInfo("CreateCashDonation called")

	var req CashDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request. Amount is required", err.Error())
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

	donation, err := svc.AddCashDonation(c.Request.Context(), req.Name, amountPaise, date)
	if err != nil {
		utils.LogError("Failed to record cash donation: %v", err)
		utils.InternalServerError(c, "Failed to record donation", nil)
		return
	}

	utils.LogInfo("Cash donation recorded: %s amount %d paise", donation.PaymentID, donation.Amount)
	utils.Created(c, "Donation recorded successfully", donation)
}
