package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/templetrust/sevaledger/ledger"
	"github.com/templetrust/sevaledger/utils"
)

const signatureHeader = "X-Razorpay-Signature"

// POST /razorpay-webhook and POST /webhook
//
// The raw body is captured before any JSON parsing so the signature is
// computed over the exact bytes the gateway signed. Once the signature
// verifies, the gateway gets exactly one 200 acknowledgment, whatever
// happens to persistence: it proved authenticity, and a retry storm
// against a down store would never converge anyway.
func HandleWebhook(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		utils.LogError("Failed to read webhook body: %v", err)
		respondWire(c, utils.NewAppError(http.StatusBadRequest, "Invalid body", err))
		return
	}

	signature := c.GetHeader(signatureHeader)
	if !utils.VerifyWebhookSignature(raw, signature, cfg.WebhookSecret) {
		utils.LogError("Webhook signature verification failed")
		respondWire(c, utils.InvalidSignatureError())
		return
	}

	event, err := ledger.ParseEvent(raw)
	if err != nil {
		// Authentic but unparseable. Acknowledge so the gateway does not
		// retry a body that will never parse; the payload is in the logs.
		utils.LogError("Verified webhook with malformed body: %v", err)
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}

	donation, err := svc.Writer.ConfirmPayment(c.Request.Context(), event)
	switch {
	case errors.Is(err, ledger.ErrMalformedEvent):
		utils.LogError("Capture event missing fields: %v", err)
	case errors.Is(err, ledger.ErrPersistenceUnavailable):
		// Non-fatal: payment stays confirmed at the gateway and can be
		// replayed from its payment history once the store recovers.
		utils.LogError("Failed to persist payment (non-fatal): %v", err)
	case err != nil:
		utils.LogError("Unexpected error confirming payment: %v", err)
	case donation != nil:
		utils.LogInfo("Payment captured: %s amount %d paise", donation.PaymentID, donation.Amount)
		sendReceipt(event, donation.Amount)
	default:
		utils.LogDebug("Ignoring webhook event type: %s", event.Kind)
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// sendReceipt emails the donor when the gateway echoed an address in the
// order notes. Best-effort, off the request path.
func sendReceipt(event ledger.Event, amountPaise int64) {
	capture, err := event.Capture()
	if err != nil || capture.DonorEmail == "" {
		return
	}
	go func() {
		if err := utils.SendDonationReceipt(capture.DonorEmail, capture.DonorName, amountPaise, capture.PaymentID); err != nil {
			utils.LogDebug("Receipt email not sent for %s: %v", capture.PaymentID, err)
		}
	}()
}
