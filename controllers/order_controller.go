package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	razorpay "github.com/razorpay/razorpay-go"

	"github.com/templetrust/sevaledger/ledger"
	"github.com/templetrust/sevaledger/utils"
)

// CreateOrderRequest is what the donate widget posts. Amount is in
// rupees; the server converts to paise and that integer becomes the
// amount of record for the order.
type CreateOrderRequest struct {
	DonorName  string  `json:"donorName"`
	DonorEmail string  `json:"donorEmail"`
	Amount     float64 `json:"amount"`
}

// POST /create-order
//
// Creates one pending gateway order per call. There is no deduplication
// here: the same donation intent submitted twice yields two orders, and
// only the eventual capture webhook, keyed by payment id, deduplicates.
func CreateOrder(c *gin.Context) {
	utils.LogInfo("CreateOrder called")

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid create-order body: %v", err)
		respondWire(c, utils.InvalidAmountError(err))
		return
	}

	amountPaise, err := ledger.ToMinorUnits(req.Amount)
	if err != nil {
		utils.LogError("Rejected order amount %v: %v", req.Amount, err)
		respondWire(c, utils.InvalidAmountError(err))
		return
	}

	if !cfg.GatewayConfigured() {
		utils.LogError("Order requested but Razorpay keys are not configured")
		respondWire(c, utils.GatewayUnconfiguredError())
		return
	}

	donorName := req.DonorName
	if donorName == "" {
		donorName = "Anonymous"
	}
	notes := map[string]interface{}{"donorName": donorName}
	if req.DonorEmail != "" {
		notes["donorEmail"] = req.DonorEmail
	}

	client := razorpay.NewClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	orderData := map[string]interface{}{
		"amount":          amountPaise,
		"currency":        "INR",
		"receipt":         fmt.Sprintf("receipt_%d", time.Now().UnixMilli()),
		"payment_capture": 1,
		"notes":           notes,
	}
	rzOrder, err := client.Order.Create(orderData, nil)
	if err != nil {
		// cause stays in the logs, the donor gets a generic failure
		utils.LogError("Razorpay order creation failed: %v", err)
		respondWire(c, utils.GatewayError(err))
		return
	}

	utils.LogInfo("Order created: %v amount %d paise", rzOrder["id"], amountPaise)
	c.JSON(http.StatusOK, gin.H{
		"orderId": rzOrder["id"],
		"amount":  amountPaise,
	})
}
