package devserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/skye-prog/ai-workorder-management/internal/client/models"
)

const maxUploadSize = 50 * 1024 * 1024 // 50 MB

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, ok := s.store.authenticate(req.Username, req.Password)
	if !ok {
		writeDetail(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := generateToken(user.EmployeeID, s.secret, tokenTTL)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "token generation failed")
		return
	}

	s.log.Info(r.Context(), "login", "username", user.Username)
	writeJSON(w, http.StatusOK, struct {
		Token string `json:"token"`
		models.User
	}{Token: token, User: user})
}

func (s *Server) handleScheduled(w http.ResponseWriter, r *http.Request) {
	employeeID, _ := strconv.Atoi(mux.Vars(r)["employeeId"])
	writeJSON(w, http.StatusOK, s.store.scheduledFor(employeeID))
}

func (s *Server) handleAssetDetail(w http.ResponseWriter, r *http.Request) {
	assetID, _ := strconv.Atoi(mux.Vars(r)["assetId"])
	asset, ok := s.store.asset(assetID)
	if !ok {
		writeDetail(w, http.StatusNotFound, "Asset not found")
		return
	}
	writeJSON(w, http.StatusOK, asset)
}

func (s *Server) handleAssetHistory(w http.ResponseWriter, r *http.Request) {
	assetID, _ := strconv.Atoi(mux.Vars(r)["assetId"])
	writeJSON(w, http.StatusOK, s.store.historyFor(assetID))
}

// readUpload pulls the "file" part from a multipart form and returns its
// original filename.
func readUpload(r *http.Request) (string, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return "", fmt.Errorf("parse form: %w", err)
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		return "", fmt.Errorf("file part required: %w", err)
	}
	defer file.Close()
	return header.Filename, nil
}

func (s *Server) handleUploadPhoto(w http.ResponseWriter, r *http.Request) {
	filename, err := readUpload(r)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	url := "/files/photos/" + uuid.NewString() + filepath.Ext(filename)
	s.log.Info(r.Context(), "photo uploaded", "filename", filename, "url", url)
	writeJSON(w, http.StatusOK, models.PhotoUploadResult{
		URL:     url,
		AINotes: "No visible defects detected.",
	})
}

func (s *Server) handleUploadVoice(w http.ResponseWriter, r *http.Request) {
	filename, err := readUpload(r)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	url := "/files/voice/" + uuid.NewString() + filepath.Ext(filename)
	s.log.Info(r.Context(), "voice note uploaded", "filename", filename, "url", url)
	writeJSON(w, http.StatusOK, models.VoiceUploadResult{
		URL:           url,
		Transcription: "Voice note transcribed.",
	})
}

func (s *Server) handleSubmitAudit(w http.ResponseWriter, r *http.Request) {
	var sub models.AuditSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	urgency := urgencyFor(sub.AuditStatus)
	summary := summarize(sub)
	auditID := s.store.insertAudit(sub, urgency, summary)

	s.log.Info(r.Context(), "audit submitted",
		"audit_id", auditID, "asset_id", sub.AssetID, "urgency", urgency)
	writeJSON(w, http.StatusOK, models.AuditResult{
		AuditID: auditID,
		Status:  "success",
		AIAnalysis: models.AIAnalysis{
			UrgencyLevel: urgency,
			Summary:      summary,
			StructuredOutput: map[string]any{
				"recommended_actions": map[string]any{
					"create_workorder": urgency == "High" || urgency == "Critical",
					"priority":         urgency,
				},
			},
		},
	})
}

func (s *Server) handleGenerateReport(w http.ResponseWriter, r *http.Request) {
	var filter models.ReportFilter
	if err := json.NewDecoder(r.Body).Decode(&filter); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if filter.StartDate == "" || filter.EndDate == "" {
		writeDetail(w, http.StatusBadRequest, "start_date and end_date are required")
		return
	}

	total := s.store.countAudits(filter)
	url := "/files/reports/" + uuid.NewString() + ".pdf"
	s.log.Info(r.Context(), "report generated", "total_audits", total, "url", url)
	writeJSON(w, http.StatusOK, models.ReportResult{ReportURL: url, TotalAudits: total})
}

// urgencyFor maps the inspector's rating to an urgency level the way the
// production AI service grades: Critical assets are critical work, Poor is
// high, Fair is medium, everything else is low.
func urgencyFor(status string) string {
	switch status {
	case "Critical":
		return "Critical"
	case "Poor":
		return "High"
	case "Fair":
		return "Medium"
	default:
		return "Low"
	}
}

// summarize builds the short audit summary: the rating plus the first 100
// characters of the inspector's comments. Truncation counts runes so a
// multi-byte character is never split.
func summarize(sub models.AuditSubmission) string {
	comments := []rune(sub.RawComments)
	if len(comments) > 100 {
		comments = comments[:100]
	}
	return fmt.Sprintf("Inspection: %s. %s", sub.AuditStatus, string(comments))
}
