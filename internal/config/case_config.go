package config

import "time"

const (
	// Criticality
	MinCriticality     = 1
	MaxCriticality     = 5
	DefaultCriticality = 3

	// High/medium/low buckets used by the statistics projection.
	HighCriticalityFloor  = 4
	LowCriticalityCeiling = 2

	// Masked ID shown to whistleblowers instead of the full report UUID.
	MaskedIDPrefix = "M-"
	MaskedIDLength = 8

	// Auth
	TokenTTL    = 8 * time.Hour
	TokenIssuer = "casechain-service"

	// Reward
	DefaultRewardBalance = "1000"
)

// Report statuses. Transitions between them are owned by the lifecycle
// engine; nothing else writes Status.
const (
	StatusPending               = "pending"
	StatusUnderInvestigation    = "under_investigation"
	StatusInvestigationComplete = "investigation_complete"
	StatusCompleted             = "completed"
)

// Caller roles carried in JWT claims.
const (
	RoleWhistleblower = "whistleblower"
	RoleInvestigator  = "investigator"
	RoleManagement    = "management"
	RoleAdmin         = "admin"
)

// Event types published to report channels.
const (
	EventNewReport       = "new_report"
	EventStatusChanged   = "report_status_changed"
	EventNewMessage      = "new_message"
	EventRewardProcessed = "reward_processed"
)
