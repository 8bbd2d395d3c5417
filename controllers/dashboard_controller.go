package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/templetrust/sevaledger/ledger"
	"github.com/templetrust/sevaledger/models"
	"github.com/templetrust/sevaledger/utils"
)

// GET /v1/dashboard
//
// The public transparency view: totals, balance and month-bucketed
// collections. Served from the live read model; a direct store read is the
// fallback when the model failed to warm at startup.
func GetDashboard(c *gin.Context) {
	var (
		donations []models.Donation
		expenses  []models.Expense
		agg       ledger.Aggregates
	)

	if readModel != nil {
		donations = readModel.Donations()
		expenses = readModel.Expenses()
		agg = readModel.Aggregates()
	} else {
		ctx := c.Request.Context()
		var err error
		donations, _, err = svc.Store.ListDonations(ctx, 0, 0)
		if err != nil {
			utils.LogError("Failed to load donations for dashboard: %v", err)
			utils.InternalServerError(c, "Failed to load dashboard", nil)
			return
		}
		expenses, _, err = svc.Store.ListExpenses(ctx, 0, 0)
		if err != nil {
			utils.LogError("Failed to load expenses for dashboard: %v", err)
			utils.InternalServerError(c, "Failed to load dashboard", nil)
			return
		}
		agg = ledger.ComputeAggregates(donations, expenses)
	}

	recent := donations
	if len(recent) > 5 {
		recent = recent[:5]
	}

	utils.Success(c, "Dashboard retrieved successfully", gin.H{
		"total_collected":  agg.TotalCollected,
		"total_spent":      agg.TotalSpent,
		"balance":          agg.Balance,
		"monthly":          agg.Monthly,
		"donation_count":   len(donations),
		"expense_count":    len(expenses),
		"recent_donations": recent,
		"fallback_mode":    svc.Fallback,
	})
}
