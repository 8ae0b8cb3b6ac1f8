package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ListAllReports returns every report, optionally filtered by status.
func (h *Handler) ListAllReports(c *gin.Context) {
	if status := c.Query("status"); status != "" {
		reports, err := h.Lifecycle.Storage.GetReportsByStatus(status)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, reports)
		return
	}

	reports, err := h.Lifecycle.Storage.GetAllReports()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

// ReopenInvestigation sends a completed case back to pending. The previous
// investigator becomes ineligible; permanently closed cases cannot come back.
func (h *Handler) ReopenInvestigation(c *gin.Context) {
	var req struct {
		ReopenReason string `json:"reopenReason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ReopenReason == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad request", "message": "Reopen reason is required"})
		return
	}

	report, err := h.Lifecycle.Reopen(c.Param("id"), callerFrom(c), req.ReopenReason)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// PermanentlyCloseCase closes the case for good, blocking any future reopen.
func (h *Handler) PermanentlyCloseCase(c *gin.Context) {
	var req struct {
		ClosureSummary string `json:"closureSummary"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ClosureSummary == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad request", "message": "Closure summary is required"})
		return
	}

	report, err := h.Lifecycle.PermanentlyClose(c.Param("id"), callerFrom(c), req.ClosureSummary)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// ProcessReward pays the whistleblower out of the shared reward balance.
// One shot per report.
func (h *Handler) ProcessReward(c *gin.Context) {
	var req struct {
		Note   string          `json:"note"`
		Amount decimal.Decimal `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad request", "message": "Note and amount are required"})
		return
	}

	report, err := h.Lifecycle.ProcessReward(c.Param("id"), callerFrom(c), req.Note, req.Amount)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"report":         report,
		"currentBalance": h.Rewards.Balance(),
	})
}

// GetRewardBalance returns the remaining payout balance.
func (h *Handler) GetRewardBalance(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"balance": h.Rewards.Balance()})
}
