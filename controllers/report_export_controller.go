package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"github.com/tealeg/xlsx"

	"github.com/templetrust/sevaledger/ledger"
	"github.com/templetrust/sevaledger/models"
	"github.com/templetrust/sevaledger/utils"
)

func rupees(paise int64) string {
	return fmt.Sprintf("%.2f", float64(paise)/100)
}

func loadLedger(c *gin.Context) ([]models.Donation, []models.Expense, bool) {
	ctx := c.Request.Context()
	donations, _, err := svc.Store.ListDonations(ctx, 0, 0)
	if err != nil {
		utils.LogError("Failed to fetch donations for report: %v", err)
		utils.InternalServerError(c, "Failed to fetch ledger", nil)
		return nil, nil, false
	}
	expenses, _, err := svc.Store.ListExpenses(ctx, 0, 0)
	if err != nil {
		utils.LogError("Failed to fetch expenses for report: %v", err)
		utils.InternalServerError(c, "Failed to fetch ledger", nil)
		return nil, nil, false
	}
	return donations, expenses, true
}

// Admin: Download the full ledger as Excel
// GET /v1/admin/reports/ledger/excel
func DownloadLedgerExcel(c *gin.Context) {
	utils.LogInfo("DownloadLedgerExcel called")

	donations, expenses, ok := loadLedger(c)
	if !ok {
		return
	}
	agg := ledger.ComputeAggregates(donations, expenses)

	file := xlsx.NewFile()

	sheet, err := file.AddSheet("Donations")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", nil)
		return
	}
	header := sheet.AddRow()
	for _, h := range []string{"Date", "Donor", "Amount (Rs)", "Mode", "Status", "Payment ID"} {
		header.AddCell().SetString(h)
	}
	for _, d := range donations {
		row := sheet.AddRow()
		row.AddCell().SetString(d.Date.Format("2006-01-02 15:04:05"))
		row.AddCell().SetString(d.Name)
		row.AddCell().SetString(rupees(d.Amount))
		row.AddCell().SetString(d.Mode)
		row.AddCell().SetString(d.Status)
		row.AddCell().SetString(d.PaymentID)
	}

	expSheet, err := file.AddSheet("Expenses")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", nil)
		return
	}
	expHeader := expSheet.AddRow()
	for _, h := range []string{"Date", "Purpose", "Description", "Amount (Rs)"} {
		expHeader.AddCell().SetString(h)
	}
	for _, e := range expenses {
		row := expSheet.AddRow()
		row.AddCell().SetString(e.Date.Format("2006-01-02 15:04:05"))
		row.AddCell().SetString(e.Purpose)
		row.AddCell().SetString(e.Description)
		row.AddCell().SetString(rupees(e.Amount))
	}

	summary, err := file.AddSheet("Summary")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", nil)
		return
	}
	addSummaryRow := func(label, value string) {
		row := summary.AddRow()
		row.AddCell().SetString(label)
		row.AddCell().SetString(value)
	}
	addSummaryRow("Total Collected (Rs)", rupees(agg.TotalCollected))
	addSummaryRow("Total Spent (Rs)", rupees(agg.TotalSpent))
	addSummaryRow("Balance (Rs)", rupees(agg.Balance))

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
		utils.InternalServerError(c, "Failed to generate report", nil)
		return
	}

	filename := fmt.Sprintf("ledger-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// Admin: Download the ledger summary as PDF
// GET /v1/admin/reports/ledger/pdf
func DownloadLedgerPDF(c *gin.Context) {
	utils.LogInfo("DownloadLedgerPDF called")

	donations, expenses, ok := loadLedger(c)
	if !ok {
		return
	}
	agg := ledger.ComputeAggregates(donations, expenses)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(100, 10, "Temple Donation Ledger")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(100, 8, "Generated: "+time.Now().Format("2006-01-02 15:04:05"))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(100, 8, "Summary")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(70, 8, "Total Collected: Rs "+rupees(agg.TotalCollected))
	pdf.Ln(6)
	pdf.Cell(70, 8, "Total Spent: Rs "+rupees(agg.TotalSpent))
	pdf.Ln(6)
	pdf.Cell(70, 8, "Balance: Rs "+rupees(agg.Balance))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(35, 8, "Date", "1", 0, "C", false, 0, "")
	pdf.CellFormat(60, 8, "Donor", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 8, "Amount", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 8, "Mode", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 11)
	for _, d := range donations {
		pdf.CellFormat(35, 8, d.Date.Format("2006-01-02"), "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 8, d.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, rupees(d.Amount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 8, d.Mode, "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(8)
	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(100, 8, "Expenses")
	pdf.Ln(8)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(35, 8, "Date", "1", 0, "C", false, 0, "")
	pdf.CellFormat(85, 8, "Purpose", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 8, "Amount", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 11)
	for _, e := range expenses {
		pdf.CellFormat(35, 8, e.Date.Format("2006-01-02"), "1", 0, "L", false, 0, "")
		pdf.CellFormat(85, 8, e.Purpose, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, rupees(e.Amount), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.LogError("Failed to generate PDF: %v", err)
		utils.InternalServerError(c, "Failed to generate report", nil)
		return
	}

	filename := fmt.Sprintf("ledger-%s.pdf", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
