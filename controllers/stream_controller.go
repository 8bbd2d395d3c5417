package controllers

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/templetrust/sevaledger/models"
	"github.com/templetrust/sevaledger/utils"
)

// GET /v1/ledger/stream
//
// Server-sent events: one "snapshot" event with the current collections,
// then a "change" event per ledger mutation until the client disconnects.
// Subscribers never poll; writes made by any instance arrive through the
// broker (bridged over Redis when configured).
func StreamLedger(c *gin.Context) {
	sub := svc.Broker.Subscribe()
	defer sub.Close()

	ctx := c.Request.Context()
	var (
		donations []models.Donation
		expenses  []models.Expense
	)
	if readModel != nil {
		donations = readModel.Donations()
		expenses = readModel.Expenses()
	} else {
		var err error
		donations, _, err = svc.Store.ListDonations(ctx, 0, 0)
		if err != nil {
			utils.LogError("Failed to load stream snapshot: %v", err)
			utils.InternalServerError(c, "Failed to open ledger stream", nil)
			return
		}
		expenses, _, err = svc.Store.ListExpenses(ctx, 0, 0)
		if err != nil {
			utils.LogError("Failed to load stream snapshot: %v", err)
			utils.InternalServerError(c, "Failed to open ledger stream", nil)
			return
		}
	}

	c.SSEvent("snapshot", gin.H{
		"donations": donations,
		"expenses":  expenses,
	})
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case change, ok := <-sub.C:
			if !ok {
				return false
			}
			c.SSEvent("change", change)
			return true
		case <-ctx.Done():
			return false
		}
	})
}
