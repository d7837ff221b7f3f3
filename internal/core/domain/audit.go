package domain

// AuditSeverity grades audit events.
type AuditSeverity string

const (
	SeverityInfo     AuditSeverity = "info"
	SeverityWarning  AuditSeverity = "warning"
	SeverityCritical AuditSeverity = "critical"
)

// AuditEvent is the structured event handed to the audit sink.
type AuditEvent struct {
	Actor       string         `json:"actor"`
	Org         string         `json:"org"`
	Shop        string         `json:"shop"`
	Action      string         `json:"action"`
	Description string         `json:"description"`
	Metadata    map[string]any `json:"metadata"`
	Severity    AuditSeverity  `json:"severity"`
}
