package models

// Event is a notification fanned out to subscribers of a report channel.
// Publication is best-effort: a failed publish never rolls back the state
// mutation it announces.
type Event struct {
	Type     string         `json:"type"`
	ReportID string         `json:"reportId"`
	Payload  map[string]any `json:"payload,omitempty"`
}

// BroadcastChannel carries events of interest to every connected portal,
// currently only new_report announcements.
const BroadcastChannel = "reports:broadcast"

// ReportChannel returns the pub/sub channel scoped to a single report.
func ReportChannel(reportID string) string {
	return "report:" + reportID
}

// ClientCommand is what a websocket client sends to join or leave a report
// room.
type ClientCommand struct {
	Action   string `json:"action"` // "join_report" or "leave_report"
	ReportID string `json:"reportId"`
}
