package domain

// NameSource identifies which signal produced a name candidate. Sources are
// ranked by the confidence scorer, not by this type.
type NameSource string

const (
	SourceParserEngine        NameSource = "parser_engine"
	SourceResumeText          NameSource = "resume_text"
	SourceSenderDisplayName   NameSource = "email_sender_display_name"
	SourceEmailBodyContext    NameSource = "email_body_context"
	SourceEmailSubjectContext NameSource = "email_subject_context"
	SourceFileName            NameSource = "filename"
	SourceEmailLocalPart      NameSource = "email_local_part"
)

// NameCandidate is one scored name suggestion for a single document.
type NameCandidate struct {
	Text       string
	Source     NameSource
	Confidence float64
}
