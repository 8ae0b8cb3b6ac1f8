// Package lifecycle owns the report state machine: it validates every
// transition against the current status and the caller's role, mutates the
// stored report through the ledger store's atomic read-modify-write
// primitive, and fans out notifications after each successful commit.
package lifecycle

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"casechain/backend/internal/config"
	"casechain/backend/internal/models"
	"casechain/backend/internal/reward"
	"casechain/backend/internal/storage"
)

// Service is the lifecycle engine. It holds no report state of its own:
// every operation is a fetch-mutate-store cycle against the ledger store.
type Service struct {
	Storage storage.Storage
	Rewards *reward.Ledger
	Events  storage.Publisher
}

// NewService creates the lifecycle engine.
func NewService(s storage.Storage, ledger *reward.Ledger, pub storage.Publisher) *Service {
	return &Service{Storage: s, Rewards: ledger, Events: pub}
}

// authorize is the single capability check every mutating operation goes
// through. Transport middleware may reject earlier; the engine never relies
// on that.
func authorize(caller models.Identity, roles ...string) error {
	if !caller.HasRole(roles...) {
		return ErrForbidden
	}
	return nil
}

// publish sends the event after a successful store commit. Failures are
// logged and swallowed: the store write is the source of truth, notification
// is best-effort.
func (s *Service) publish(channel string, event models.Event) {
	if s.Events == nil {
		return
	}
	if err := s.Events.PublishEvent(channel, event); err != nil {
		log.Printf("ERROR: Failed to publish %s event for report %s: %v", event.Type, event.ReportID, err)
	}
}

// SubmitInput carries everything a whistleblower can put into a new report.
type SubmitInput struct {
	Title        string
	Description  string
	Submitter    string
	Anonymous    bool
	Criticality  int
	RewardWallet string

	VoiceNote   string
	Attachments []models.Attachment

	Department       string
	Location         string
	MonetaryValue    string
	Relationship     string
	Encounter        string
	AuthoritiesAware bool
}

// SubmitReport creates a new report in pending state. Submission is open to
// anyone, anonymous or identified; at least one content channel (text,
// voice note or attachment) is required.
func (s *Service) SubmitReport(in SubmitInput) (*models.Report, error) {
	submitter := in.Submitter
	if in.Anonymous {
		// Anonymity wins over whatever identity was supplied.
		submitter = ""
	}

	id := uuid.New().String()
	report := &models.Report{
		ID:          id,
		MaskedID:    models.MaskID(id),
		Title:       in.Title,
		Description: in.Description,
		Criticality: models.NormalizeCriticality(in.Criticality),
		Submitter:   submitter,
		Anonymous:   in.Anonymous,

		RewardWallet: in.RewardWallet,
		Status:       config.StatusPending,

		ChatHistory: []models.ChatMessage{},

		HasVoiceNote: in.VoiceNote != "",
		VoiceNote:    in.VoiceNote,
		Attachments:  in.Attachments,

		Department:       in.Department,
		Location:         in.Location,
		MonetaryValue:    in.MonetaryValue,
		Relationship:     in.Relationship,
		Encounter:        in.Encounter,
		AuthoritiesAware: in.AuthoritiesAware,

		Date: time.Now().UTC(),
	}

	if !report.HasContent() {
		return nil, ErrValidation
	}

	if err := s.Storage.SaveReport(report); err != nil {
		return nil, err
	}

	s.publish(models.BroadcastChannel, models.Event{
		Type:     config.EventNewReport,
		ReportID: report.ID,
		Payload: map[string]any{
			"maskedId":    report.MaskedID,
			"title":       report.Title,
			"criticality": report.Criticality,
			"date":        report.Date,
		},
	})

	return report, nil
}

// GetReport returns the stored report or ErrReportNotFound.
func (s *Service) GetReport(reportID string) (*models.Report, error) {
	report, err := s.Storage.GetReportByID(reportID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, ErrReportNotFound
	}
	return report, nil
}

// AssignReport moves a pending report under investigation and records the
// caller as assignee. On a reopened case the previous investigator is not
// eligible.
func (s *Service) AssignReport(reportID string, caller models.Identity) (*models.Report, error) {
	if err := authorize(caller, config.RoleInvestigator); err != nil {
		return nil, err
	}

	updated, err := s.Storage.UpdateReport(reportID, func(r *models.Report) error {
		if r.Status != config.StatusPending {
			return &InvalidTransitionError{ReportID: r.ID, From: r.Status, Attempted: "assign"}
		}
		if r.IsReopened && r.PreviousInvestigator != "" && r.PreviousInvestigator == caller.ID {
			return &IneligibleInvestigatorError{ReportID: r.ID, InvestigatorID: caller.ID}
		}

		r.Status = config.StatusUnderInvestigation
		r.AssignedTo = caller.ID
		r.AssignedToName = caller.Name
		return nil
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrReportNotFound
	}

	s.publish(models.ReportChannel(reportID), models.Event{
		Type:     config.EventStatusChanged,
		ReportID: reportID,
		Payload: map[string]any{
			"status":     updated.Status,
			"assignedTo": updated.AssignedTo,
		},
	})

	return updated, nil
}

// AddManagementSummary stores the investigator's findings. Idempotent
// overwrite; only the assigned investigator may write it and only while the
// case is under investigation.
func (s *Service) AddManagementSummary(reportID string, caller models.Identity, summary string) (*models.Report, error) {
	if err := authorize(caller, config.RoleInvestigator); err != nil {
		return nil, err
	}
	if summary == "" {
		return nil, ErrValidation
	}

	updated, err := s.Storage.UpdateReport(reportID, func(r *models.Report) error {
		if r.Status != config.StatusUnderInvestigation {
			return &InvalidTransitionError{ReportID: r.ID, From: r.Status, Attempted: "add summary"}
		}
		if r.AssignedTo != caller.ID {
			return ErrForbidden
		}

		r.ManagementSummary = summary
		return nil
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrReportNotFound
	}
	return updated, nil
}

// CompleteInvestigation moves a case from under_investigation to
// investigation_complete. A non-empty management summary is a hard
// precondition; completing silently is not allowed.
func (s *Service) CompleteInvestigation(reportID string, caller models.Identity) (*models.Report, error) {
	if err := authorize(caller, config.RoleInvestigator); err != nil {
		return nil, err
	}

	updated, err := s.Storage.UpdateReport(reportID, func(r *models.Report) error {
		if r.Status != config.StatusUnderInvestigation {
			return &InvalidTransitionError{ReportID: r.ID, From: r.Status, Attempted: "complete"}
		}
		if r.AssignedTo != caller.ID {
			return ErrForbidden
		}
		if r.ManagementSummary == "" {
			return &ManagementSummaryRequiredError{ReportID: r.ID}
		}

		r.Status = config.StatusInvestigationComplete
		return nil
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrReportNotFound
	}

	s.publish(models.ReportChannel(reportID), models.Event{
		Type:     config.EventStatusChanged,
		ReportID: reportID,
		Payload: map[string]any{
			"status": updated.Status,
		},
	})

	return updated, nil
}

// PermanentlyClose moves an investigation_complete case to completed and
// flags it permanently closed, which blocks any further reopening. The
// closure summary is required.
func (s *Service) PermanentlyClose(reportID string, caller models.Identity, closureSummary string) (*models.Report, error) {
	if err := authorize(caller, config.RoleManagement); err != nil {
		return nil, err
	}
	if closureSummary == "" {
		return nil, ErrPreconditionFailed
	}

	updated, err := s.Storage.UpdateReport(reportID, func(r *models.Report) error {
		if r.Status != config.StatusInvestigationComplete || r.PermanentlyClosed {
			return &InvalidTransitionError{ReportID: r.ID, From: r.Status, Attempted: "permanently close"}
		}

		r.Status = config.StatusCompleted
		r.PermanentlyClosed = true
		r.ClosureSummary = closureSummary
		return nil
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrReportNotFound
	}

	s.publish(models.ReportChannel(reportID), models.Event{
		Type:     config.EventStatusChanged,
		ReportID: reportID,
		Payload: map[string]any{
			"status":            updated.Status,
			"permanentlyClosed": true,
		},
	})

	return updated, nil
}

// ProcessReward settles the payout for a permanently closed case. One shot
// per report: a second request is rejected with ErrAlreadyProcessed instead
// of being treated as idempotent, so double payment is impossible. The
// balance deduction and the report update either both happen or neither
// does.
func (s *Service) ProcessReward(reportID string, caller models.Identity, note string, amount decimal.Decimal) (*models.Report, error) {
	if err := authorize(caller, config.RoleManagement); err != nil {
		return nil, err
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrValidation
	}

	deducted := false
	updated, err := s.Storage.UpdateReport(reportID, func(r *models.Report) error {
		if !r.PermanentlyClosed {
			return &InvalidTransitionError{ReportID: r.ID, From: r.Status, Attempted: "process reward"}
		}
		if r.RewardWallet == "" {
			return ErrPreconditionFailed
		}
		if r.RewardProcessed {
			return ErrAlreadyProcessed
		}

		// Deduct while holding the report lock: the RewardProcessed guard
		// above makes the deduction happen at most once per report.
		if err := s.Rewards.Deduct(amount); err != nil {
			return err
		}
		deducted = true

		r.RewardProcessed = true
		r.RewardAmount = amount
		r.RewardNote = note
		return nil
	})
	if err != nil {
		if deducted {
			// The store rejected the write after the deduction went through;
			// put the money back.
			if creditErr := s.Rewards.Credit(amount); creditErr != nil {
				log.Printf("ERROR: Failed to refund reward deduction for report %s: %v", reportID, creditErr)
			}
		}
		return nil, err
	}
	if updated == nil {
		return nil, ErrReportNotFound
	}

	s.publish(models.ReportChannel(reportID), models.Event{
		Type:     config.EventRewardProcessed,
		ReportID: reportID,
		Payload: map[string]any{
			"amount": amount,
			"note":   note,
		},
	})

	return updated, nil
}

// Reopen returns a completed or investigation_complete case to pending for
// re-investigation, unless it was permanently closed. The current assignee
// is recorded as previous investigator and barred from taking the case
// again.
func (s *Service) Reopen(reportID string, caller models.Identity, reason string) (*models.Report, error) {
	if err := authorize(caller, config.RoleManagement); err != nil {
		return nil, err
	}
	if reason == "" {
		return nil, ErrPreconditionFailed
	}

	updated, err := s.Storage.UpdateReport(reportID, func(r *models.Report) error {
		if r.PermanentlyClosed {
			return &InvalidTransitionError{ReportID: r.ID, From: r.Status, Attempted: "reopen"}
		}
		if r.Status != config.StatusInvestigationComplete && r.Status != config.StatusCompleted {
			return &InvalidTransitionError{ReportID: r.ID, From: r.Status, Attempted: "reopen"}
		}

		r.Status = config.StatusPending
		r.IsReopened = true
		r.ReopenReasons = append(r.ReopenReasons, reason)
		r.PreviousInvestigator = r.AssignedTo
		r.AssignedTo = ""
		r.AssignedToName = ""
		return nil
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrReportNotFound
	}

	s.publish(models.ReportChannel(reportID), models.Event{
		Type:     config.EventStatusChanged,
		ReportID: reportID,
		Payload: map[string]any{
			"status":       updated.Status,
			"reopenReason": reason,
		},
	})

	return updated, nil
}

// SendChatMessage appends a message to the report's chat history and returns
// the stored message with its server-assigned timestamp. Content or an
// attachment must be present.
func (s *Service) SendChatMessage(reportID string, sender string, content string, attachment *models.Attachment) (*models.ChatMessage, error) {
	if sender == "" {
		return nil, ErrValidation
	}
	if content == "" && attachment == nil {
		return nil, ErrValidation
	}

	message := models.ChatMessage{
		ID:        uuid.New().String(),
		ReportID:  reportID,
		Sender:    sender,
		Content:   content,
		Timestamp: time.Now().UTC(),
		Read:      false,
	}
	if attachment != nil {
		message.HasAttachment = true
		message.Attachment = attachment.Path
		message.AttachmentName = attachment.Name
	}

	updated, err := s.Storage.UpdateReport(reportID, func(r *models.Report) error {
		r.ChatHistory = append(r.ChatHistory, message)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrReportNotFound
	}

	s.publish(models.ReportChannel(reportID), models.Event{
		Type:     config.EventNewMessage,
		ReportID: reportID,
		Payload: map[string]any{
			"sender":    message.Sender,
			"content":   message.Content,
			"timestamp": message.Timestamp,
			"read":      false,
		},
	})

	return &message, nil
}

// MarkMessagesAsRead flips the read flag on every unread message not sent by
// the reader. Messages the reader sent themselves are left alone. Calling
// with nothing unread is a successful no-op.
func (s *Service) MarkMessagesAsRead(reportID string, reader string) (*models.Report, error) {
	if reader == "" {
		return nil, ErrValidation
	}

	updated, err := s.Storage.UpdateReport(reportID, func(r *models.Report) error {
		for i := range r.ChatHistory {
			if r.ChatHistory[i].Sender != reader && !r.ChatHistory[i].Read {
				r.ChatHistory[i].Read = true
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrReportNotFound
	}
	return updated, nil
}
