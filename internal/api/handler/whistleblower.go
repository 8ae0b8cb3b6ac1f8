package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"casechain/backend/internal/lifecycle"
	"casechain/backend/internal/models"
)

// submitRequest is the intake payload. Voice note and attachment bytes are
// uploaded to external storage beforehand; only their URIs arrive here.
type submitRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Submitter    string `json:"submitter"`
	Anonymous    bool   `json:"anonymous"`
	Criticality  int    `json:"criticality"`
	RewardWallet string `json:"rewardWallet"`

	VoiceNote   string              `json:"voiceNote"`
	Attachments []models.Attachment `json:"attachments"`

	Department       string `json:"department"`
	Location         string `json:"location"`
	MonetaryValue    string `json:"monetaryValue"`
	Relationship     string `json:"relationship"`
	Encounter        string `json:"encounter"`
	AuthoritiesAware bool   `json:"authoritiesAware"`
}

// SubmitReport accepts a new whistleblower report, anonymous or identified.
func (h *Handler) SubmitReport(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad request", "message": "Invalid report payload"})
		return
	}

	report, err := h.Lifecycle.SubmitReport(lifecycle.SubmitInput{
		Title:        req.Title,
		Description:  req.Description,
		Submitter:    req.Submitter,
		Anonymous:    req.Anonymous,
		Criticality:  req.Criticality,
		RewardWallet: req.RewardWallet,

		VoiceNote:   req.VoiceNote,
		Attachments: req.Attachments,

		Department:       req.Department,
		Location:         req.Location,
		MonetaryValue:    req.MonetaryValue,
		Relationship:     req.Relationship,
		Encounter:        req.Encounter,
		AuthoritiesAware: req.AuthoritiesAware,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, report)
}

// GetReport returns a report by its full ID. Whistleblowers look their case
// up with the ID they received at submission.
func (h *Handler) GetReport(c *gin.Context) {
	report, err := h.Lifecycle.GetReport(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetChatHistory returns the ordered chat history of a report.
func (h *Handler) GetChatHistory(c *gin.Context) {
	report, err := h.Lifecycle.GetReport(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report.ChatHistory)
}

type chatRequest struct {
	Content    string             `json:"content"`
	Attachment *models.Attachment `json:"attachment"`
}

// SendWhistleblowerMessage appends a chat message sent from the reporter's
// side of the channel.
func (h *Handler) SendWhistleblowerMessage(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad request", "message": "Invalid message payload"})
		return
	}

	message, err := h.Lifecycle.SendChatMessage(c.Param("id"), models.Anonymous.ID, req.Content, req.Attachment)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"reportId": c.Param("id"), "chatMessage": message})
}

// MarkWhistleblowerMessagesRead flips the unread investigator messages to
// read for the reporter.
func (h *Handler) MarkWhistleblowerMessagesRead(c *gin.Context) {
	if _, err := h.Lifecycle.MarkMessagesAsRead(c.Param("id"), models.Anonymous.ID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "reportId": c.Param("id"), "message": "Chat messages marked as read"})
}
