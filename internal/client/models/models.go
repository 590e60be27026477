// Package models defines the transient entities the inspector client holds in
// memory for a session. Field tags mirror the backend's JSON wire format.
package models

// User is the logged-in inspector. Exactly one live instance at a time;
// a nil User means logged out.
type User struct {
	EmployeeID int    `json:"employee_id"`
	Username   string `json:"username"`
	FullName   string `json:"full_name"`
	Role       string `json:"role"`
}

// ScheduledInspection is a pending work item assigned to an inspector,
// carrying denormalized asset summary fields. Read-only on the client.
type ScheduledInspection struct {
	ScheduleID         int    `json:"schedule_id"`
	AssetID            int    `json:"asset_id"`
	AssetName          string `json:"asset_name"`
	AssetType          string `json:"asset_type"`
	Location           string `json:"location"`
	ScheduledDate      string `json:"scheduled_date"`
	LastInspectionDate string `json:"last_inspection_date,omitempty"`
}

// Asset is the inspected entity, refreshed from the backend and never
// mutated locally.
type Asset struct {
	AssetID            int    `json:"asset_id"`
	AssetName          string `json:"asset_name"`
	AssetType          string `json:"asset_type"`
	Location           string `json:"location"`
	Status             string `json:"status"`
	InstallationDate   string `json:"installation_date,omitempty"`
	LastInspectionDate string `json:"last_inspection_date"`
}

// AuditHistoryEntry is a past audit record for an asset.
type AuditHistoryEntry struct {
	AuditID        int    `json:"audit_id"`
	InspectionDate string `json:"inspection_date"`
	AuditStatus    string `json:"audit_status"`
	UrgencyLevel   string `json:"urgency_level"`
	Summary        string `json:"summary"`
}

// AuditStatus is the inspector's condition rating for an asset.
type AuditStatus string

const (
	StatusGood     AuditStatus = "Good"
	StatusFair     AuditStatus = "Fair"
	StatusPoor     AuditStatus = "Poor"
	StatusCritical AuditStatus = "Critical"
)

// AuditStatuses lists the valid ratings in display order.
var AuditStatuses = []AuditStatus{StatusGood, StatusFair, StatusPoor, StatusCritical}

// Valid reports whether s is one of the fixed ratings.
func (s AuditStatus) Valid() bool {
	switch s {
	case StatusGood, StatusFair, StatusPoor, StatusCritical:
		return true
	}
	return false
}

// AuditSubmission is the payload sent to POST /api/audits/submit.
type AuditSubmission struct {
	AssetID      int      `json:"asset_id"`
	InspectorID  int      `json:"inspector_id"`
	AuditStatus  string   `json:"audit_status"`
	RawComments  string   `json:"raw_comments"`
	VoiceFileURL string   `json:"voice_file_url,omitempty"`
	PhotoURLs    []string `json:"photo_urls"`
}

// AIAnalysis is the backend-computed annotation attached to a submitted
// audit. Opaque to the client beyond display.
type AIAnalysis struct {
	UrgencyLevel     string         `json:"urgency_level"`
	Summary          string         `json:"summary"`
	StructuredOutput map[string]any `json:"structured_output,omitempty"`
}

// AuditResult is the backend's response to an audit submission.
type AuditResult struct {
	AuditID    int        `json:"audit_id"`
	Status     string     `json:"status"`
	AIAnalysis AIAnalysis `json:"ai_analysis"`
}

// PhotoUploadResult is the backend's response to a photo upload.
type PhotoUploadResult struct {
	URL     string `json:"url"`
	AINotes string `json:"ai_notes,omitempty"`
}

// VoiceUploadResult is the backend's response to a voice-note upload.
type VoiceUploadResult struct {
	URL           string `json:"url"`
	Transcription string `json:"transcription,omitempty"`
}

// ReportFilter selects the audits included in a generated report. An empty
// optional field is omitted from the request body.
type ReportFilter struct {
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	UrgencyLevel   string `json:"urgency_level,omitempty"`
	WorkflowStatus string `json:"workflow_status,omitempty"`
}

// ReportResult is the backend's response to a report-generation request.
type ReportResult struct {
	ReportURL   string `json:"report_url"`
	TotalAudits int    `json:"total_audits"`
}
