package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq" // required for pq.StringArray
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"casechain/backend/internal/config"
)

// Report is the central case record submitted by a whistleblower. The whole
// aggregate (including chat history and attachment metadata) is persisted as
// one row so that every mutation is a single read-modify-write against the
// report key.
type Report struct {
	// ID is the full report UUID, generated at submission, immutable.
	ID string `gorm:"primaryKey" json:"id"`
	// MaskedID is the display-safe derivative of ID shown to whistleblowers.
	MaskedID string `gorm:"uniqueIndex" json:"maskedId"`

	Title       string `gorm:"type:text" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	// Criticality is 1 (low) .. 5 (critical), informational only.
	Criticality int    `gorm:"not null" json:"criticality"`
	Submitter   string `json:"submitter"`
	Anonymous   bool   `json:"anonymous"`

	RewardWallet string `json:"rewardWallet"`

	Status string `gorm:"index;not null" json:"status"`

	AssignedTo     string `gorm:"index" json:"assignedTo"`
	AssignedToName string `json:"assignedToName"`

	// ManagementSummary is authored by the assigned investigator and is a hard
	// precondition for completing the investigation.
	ManagementSummary string `gorm:"type:text" json:"managementSummary"`
	// ClosureSummary is authored by management when permanently closing.
	ClosureSummary string `gorm:"type:text" json:"closureSummary"`

	IsReopened    bool           `json:"isReopened"`
	ReopenReasons pq.StringArray `gorm:"type:text[]" json:"reopenReasons"`
	// PreviousInvestigator is the last assignee before the most recent reopen.
	// They are barred from picking the case up again.
	PreviousInvestigator string `json:"previousInvestigator"`

	PermanentlyClosed bool `json:"permanentlyClosed"`

	RewardProcessed bool            `json:"rewardProcessed"`
	RewardAmount    decimal.Decimal `gorm:"type:numeric" json:"rewardAmount"`
	RewardNote      string          `json:"rewardNote"`

	ChatHistory []ChatMessage `gorm:"serializer:json" json:"chatHistory"`
	Attachments []Attachment  `gorm:"serializer:json" json:"attachments"`

	HasVoiceNote bool   `json:"hasVoiceNote"`
	VoiceNote    string `json:"voiceNote"`

	// Intake context fields, stored verbatim, no behavior attached.
	Department       string `json:"department"`
	Location         string `json:"location"`
	MonetaryValue    string `json:"monetaryValue"`
	Relationship     string `json:"relationship"`
	Encounter        string `json:"encounter"`
	AuthoritiesAware bool   `json:"authoritiesAware"`

	Date time.Time `json:"date"`
}

// BeforeCreate is a GORM hook that fills in the generated identifiers if the
// caller did not set them.
func (r *Report) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.MaskedID == "" {
		r.MaskedID = MaskID(r.ID)
	}
	return
}

// MaskID derives the truncated display identifier from a full report UUID.
func MaskID(id string) string {
	if len(id) > config.MaskedIDLength {
		id = id[:config.MaskedIDLength]
	}
	return config.MaskedIDPrefix + id
}

// NormalizeCriticality clamps out-of-range ratings to the default instead of
// rejecting the submission. Intake is permissive by default.
func NormalizeCriticality(c int) int {
	if c < config.MinCriticality || c > config.MaxCriticality {
		return config.DefaultCriticality
	}
	return c
}

// HasContent reports whether the submission carries at least one content
// channel: text, voice note or attachment.
func (r *Report) HasContent() bool {
	return r.Title != "" || r.Description != "" || r.HasVoiceNote || len(r.Attachments) > 0
}
