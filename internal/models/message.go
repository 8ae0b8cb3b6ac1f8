package models

import "time"

// ChatMessage is one entry in a report's chat history. The history is
// append-only: messages are never edited or deleted, only the Read flag
// flips, and only from false to true.
type ChatMessage struct {
	ID       string `json:"id"`
	ReportID string `json:"reportId"`
	// Sender is the caller identity string; the whistleblower side always
	// sends as "whistleblower".
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`

	HasAttachment  bool   `json:"hasAttachment"`
	Attachment     string `json:"attachment,omitempty"`
	AttachmentName string `json:"attachmentName,omitempty"`
}

// Attachment is the metadata for a file stored outside the ledger. The bytes
// live behind Path; the report only carries this record.
type Attachment struct {
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Path       string    `json:"path"`
	Size       int64     `json:"size"`
	UploadedBy string    `json:"uploadedBy"`
	UploadedAt time.Time `json:"uploadedAt"`
}
