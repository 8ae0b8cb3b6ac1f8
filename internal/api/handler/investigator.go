package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"casechain/backend/internal/config"
)

// ListReportsByStatus returns the reports in the requested status, most
// critical first. Defaults to pending so the work queue is one click away.
func (h *Handler) ListReportsByStatus(c *gin.Context) {
	status := c.DefaultQuery("status", config.StatusPending)

	reports, err := h.Lifecycle.Storage.GetReportsByStatus(status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

// ListUnassignedReports returns the pending cases nobody has picked up yet.
func (h *Handler) ListUnassignedReports(c *gin.Context) {
	reports, err := h.Lifecycle.Storage.GetUnassignedReports()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

// ListMyReports returns the cases assigned to the calling investigator.
func (h *Handler) ListMyReports(c *gin.Context) {
	caller := callerFrom(c)

	reports, err := h.Lifecycle.Storage.GetReportsByAssignee(caller.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

// AssignReport lets the calling investigator take a pending case.
func (h *Handler) AssignReport(c *gin.Context) {
	report, err := h.Lifecycle.AssignReport(c.Param("id"), callerFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// AddManagementSummary stores the investigator's findings on the case.
func (h *Handler) AddManagementSummary(c *gin.Context) {
	var req struct {
		Summary string `json:"summary"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad request", "message": "Summary is required"})
		return
	}

	report, err := h.Lifecycle.AddManagementSummary(c.Param("id"), callerFrom(c), req.Summary)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// CompleteInvestigation marks the investigation complete. Fails if no
// management summary was written.
func (h *Handler) CompleteInvestigation(c *gin.Context) {
	report, err := h.Lifecycle.CompleteInvestigation(c.Param("id"), callerFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// SendInvestigatorMessage appends a chat message from the investigator side.
func (h *Handler) SendInvestigatorMessage(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad request", "message": "Invalid message payload"})
		return
	}

	caller := callerFrom(c)
	message, err := h.Lifecycle.SendChatMessage(c.Param("id"), caller.ID, req.Content, req.Attachment)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"reportId": c.Param("id"), "chatMessage": message})
}

// MarkInvestigatorMessagesRead flips unread whistleblower messages to read
// for the calling investigator.
func (h *Handler) MarkInvestigatorMessagesRead(c *gin.Context) {
	caller := callerFrom(c)
	if _, err := h.Lifecycle.MarkMessagesAsRead(c.Param("id"), caller.ID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "reportId": c.Param("id"), "message": "Chat messages marked as read"})
}

// GetStatistics serves the aggregate case-load view.
func (h *Handler) GetStatistics(c *gin.Context) {
	stats, err := h.Query.Statistics()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
