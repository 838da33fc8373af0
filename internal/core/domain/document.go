package domain

import "time"

// IncomingDocument is one resume file plus whatever email context the
// collector could attach to it. Collectors produce it once; the pipeline
// never mutates it.
type IncomingDocument struct {
	ID                string    `json:"id"`
	FilePath          string    `json:"file_path"`
	FileName          string    `json:"file_name"`
	EmailSubject      string    `json:"email_subject,omitempty"`
	EmailBody         string    `json:"email_body,omitempty"`
	SenderDisplayName string    `json:"sender_display_name,omitempty"`
	ReceivedAt        time.Time `json:"received_at,omitzero"`
}

// HasReceivedTime reports whether the collector knew when the document arrived.
func (d IncomingDocument) HasReceivedTime() bool {
	return !d.ReceivedAt.IsZero()
}

// ParsedResume is the output of the dedicated parser engine capability.
// Zero values mean the engine produced nothing for that field.
type ParsedResume struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"mobile_number"`
	Skills          []string `json:"skills"`
	ExperienceYears float64  `json:"total_experience"`
}

// BatchSummary describes one completed processing pass.
type BatchSummary struct {
	StartedAt   time.Time `json:"started_at"`
	Collected   int       `json:"collected"`
	Processed   int       `json:"processed"`
	Failed      int       `json:"failed"`
	Discarded   int       `json:"discarded"`
	New         int       `json:"new"`
	Duplicate   int       `json:"duplicate"`
	DatasetSize int       `json:"dataset_size"`
}
