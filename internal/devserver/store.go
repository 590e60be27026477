package devserver

import (
	"sort"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/skye-prog/ai-workorder-management/internal/client/models"
)

const dateLayout = "2006-01-02"

type employee struct {
	models.User
	passwordHash []byte
}

type scheduledRow struct {
	ScheduleID    int
	AssetID       int
	AssignedTo    int
	ScheduledDate string
	Status        string
}

type auditRow struct {
	AuditID        int
	AssetID        int
	InspectorID    int
	InspectionDate string
	AuditStatus    string
	UrgencyLevel   string
	Summary        string
	WorkflowStatus string
	PhotoURLs      []string
	VoiceFileURL   string
}

// store is the in-memory dataset. All access goes through the mutex; the
// handlers never hand out internal slices.
type store struct {
	mu          sync.Mutex
	employees   []employee
	assets      map[int]models.Asset
	scheduled   []scheduledRow
	audits      []auditRow
	nextAuditID int
}

// newStore seeds the reference dataset: one inspector (john.doe/password123)
// with pending inspections including asset 7, and closed audit history.
func newStore() *store {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}

	return &store{
		employees: []employee{
			{
				User: models.User{
					EmployeeID: 1,
					Username:   "john.doe",
					FullName:   "John Doe",
					Role:       "Field Inspector",
				},
				passwordHash: hash,
			},
		},
		assets: map[int]models.Asset{
			3: {
				AssetID: 3, AssetName: "Pump Station A-3", AssetType: "Pump",
				Location: "North Yard", Status: "Operational",
				InstallationDate: "2018-03-12", LastInspectionDate: "2025-07-19",
			},
			7: {
				AssetID: 7, AssetName: "Padmount Transformer T-892", AssetType: "Transformer",
				Location: "Substation 12", Status: "Operational",
				InstallationDate: "2015-09-30", LastInspectionDate: "2025-06-02",
			},
			12: {
				AssetID: 12, AssetName: "Air Compressor C-12", AssetType: "Compressor",
				Location: "Plant 2", Status: "Degraded",
				InstallationDate: "2011-01-25", LastInspectionDate: "2025-08-14",
			},
		},
		scheduled: []scheduledRow{
			{ScheduleID: 101, AssetID: 7, AssignedTo: 1, ScheduledDate: "2025-10-06", Status: "Pending"},
			{ScheduleID: 102, AssetID: 3, AssignedTo: 1, ScheduledDate: "2025-10-09", Status: "Pending"},
			{ScheduleID: 103, AssetID: 12, AssignedTo: 1, ScheduledDate: "2025-10-15", Status: "Pending"},
		},
		audits: []auditRow{
			{
				AuditID: 41, AssetID: 7, InspectorID: 1, InspectionDate: "2025-06-02",
				AuditStatus: "Good", UrgencyLevel: "Low",
				Summary: "No issues identified, all components functioning properly.", WorkflowStatus: "Closed",
			},
			{
				AuditID: 37, AssetID: 7, InspectorID: 1, InspectionDate: "2024-12-11",
				AuditStatus: "Fair", UrgencyLevel: "Medium",
				Summary: "Minor surface corrosion on the enclosure, monitoring recommended.", WorkflowStatus: "Closed",
			},
			{
				AuditID: 44, AssetID: 12, InspectorID: 1, InspectionDate: "2025-08-14",
				AuditStatus: "Poor", UrgencyLevel: "High",
				Summary: "Abnormal vibration under load, service ordered.", WorkflowStatus: "Closed",
			},
		},
		nextAuditID: 45,
	}
}

// authenticate returns the employee for valid credentials, or false.
func (s *store) authenticate(username, password string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.employees {
		if e.Username == username &&
			bcrypt.CompareHashAndPassword(e.passwordHash, []byte(password)) == nil {
			return e.User, true
		}
	}
	return models.User{}, false
}

// scheduledFor lists the pending inspections assigned to the employee,
// joined with the asset summary fields, ordered by scheduled date.
func (s *store) scheduledFor(employeeID int) []models.ScheduledInspection {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.ScheduledInspection, 0)
	for _, row := range s.scheduled {
		if row.AssignedTo != employeeID || row.Status != "Pending" {
			continue
		}
		asset, ok := s.assets[row.AssetID]
		if !ok {
			continue
		}
		out = append(out, models.ScheduledInspection{
			ScheduleID:         row.ScheduleID,
			AssetID:            row.AssetID,
			AssetName:          asset.AssetName,
			AssetType:          asset.AssetType,
			Location:           asset.Location,
			ScheduledDate:      row.ScheduledDate,
			LastInspectionDate: asset.LastInspectionDate,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledDate < out[j].ScheduledDate })
	return out
}

func (s *store) asset(assetID int) (models.Asset, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.assets[assetID]
	return a, ok
}

// historyFor lists the closed audits of an asset, newest first.
func (s *store) historyFor(assetID int) []models.AuditHistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.AuditHistoryEntry, 0)
	for _, a := range s.audits {
		if a.AssetID != assetID || a.WorkflowStatus != "Closed" {
			continue
		}
		out = append(out, models.AuditHistoryEntry{
			AuditID:        a.AuditID,
			InspectionDate: a.InspectionDate,
			AuditStatus:    a.AuditStatus,
			UrgencyLevel:   a.UrgencyLevel,
			Summary:        a.Summary,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].InspectionDate > out[j].InspectionDate })
	return out
}

// insertAudit stores a closed audit, bumps the asset's last inspection date,
// and returns the new audit id.
func (s *store) insertAudit(sub models.AuditSubmission, urgency, summary string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := time.Now().Format(dateLayout)
	id := s.nextAuditID
	s.nextAuditID++

	s.audits = append(s.audits, auditRow{
		AuditID:        id,
		AssetID:        sub.AssetID,
		InspectorID:    sub.InspectorID,
		InspectionDate: today,
		AuditStatus:    sub.AuditStatus,
		UrgencyLevel:   urgency,
		Summary:        summary,
		WorkflowStatus: "Closed",
		PhotoURLs:      append([]string(nil), sub.PhotoURLs...),
		VoiceFileURL:   sub.VoiceFileURL,
	})

	if asset, ok := s.assets[sub.AssetID]; ok {
		asset.LastInspectionDate = today
		s.assets[sub.AssetID] = asset
	}
	return id
}

// countAudits counts the audits matching the report filter. Empty optional
// filters match everything.
func (s *store) countAudits(f models.ReportFilter) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, a := range s.audits {
		if a.InspectionDate < f.StartDate || a.InspectionDate > f.EndDate {
			continue
		}
		if f.UrgencyLevel != "" && f.UrgencyLevel != "all" && a.UrgencyLevel != f.UrgencyLevel {
			continue
		}
		if f.WorkflowStatus != "" && f.WorkflowStatus != "all" && a.WorkflowStatus != f.WorkflowStatus {
			continue
		}
		n++
	}
	return n
}
