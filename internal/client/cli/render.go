package cli

import (
	"fmt"
	"io"

	"github.com/skye-prog/ai-workorder-management/internal/client/inspection"
	"github.com/skye-prog/ai-workorder-management/internal/client/models"
)

// The render functions are the presentational layer: pure functions from a
// state slice to terminal output. They perform no I/O beyond writing to w
// and hold no state of their own.

func renderBanner(w io.Writer, loading bool, errMsg string) {
	if loading {
		fmt.Fprintln(w, "Loading...")
	}
	if errMsg != "" {
		fmt.Fprintln(w, "! "+errMsg)
	}
}

func renderLogin(w io.Writer, loading bool, errMsg string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== Asset Inspection - Sign In ===")
	renderBanner(w, loading, errMsg)
}

func renderDashboard(w io.Writer, user *models.User, inspections []models.ScheduledInspection, loading bool, errMsg string) {
	fmt.Fprintln(w)
	if user != nil {
		fmt.Fprintf(w, "=== Dashboard - %s (%s) ===\n", user.FullName, user.Role)
	} else {
		fmt.Fprintln(w, "=== Dashboard ===")
	}
	renderBanner(w, loading, errMsg)

	if len(inspections) == 0 {
		fmt.Fprintln(w, "No scheduled inspections.")
		return
	}
	fmt.Fprintf(w, "Scheduled inspections (%d):\n", len(inspections))
	for i, item := range inspections {
		fmt.Fprintf(w, "  %d. %s (%s) - %s, due %s\n",
			i+1, item.AssetName, item.AssetType, item.Location, item.ScheduledDate)
	}
}

func renderAssetDetail(w io.Writer, asset *models.Asset, history []models.AuditHistoryEntry, loading bool, errMsg string) {
	fmt.Fprintln(w)
	if asset == nil {
		fmt.Fprintln(w, "=== Asset ===")
		renderBanner(w, loading, errMsg)
		return
	}

	fmt.Fprintf(w, "=== Asset %d - %s ===\n", asset.AssetID, asset.AssetName)
	renderBanner(w, loading, errMsg)
	fmt.Fprintf(w, "Type:            %s\n", asset.AssetType)
	fmt.Fprintf(w, "Location:        %s\n", asset.Location)
	fmt.Fprintf(w, "Status:          %s\n", asset.Status)
	fmt.Fprintf(w, "Last inspection: %s\n", asset.LastInspectionDate)

	if len(history) == 0 {
		fmt.Fprintln(w, "No audit history.")
		return
	}
	fmt.Fprintln(w, "Audit history:")
	for _, h := range history {
		fmt.Fprintf(w, "  %s  %s (urgency %s): %s\n",
			h.InspectionDate, h.AuditStatus, h.UrgencyLevel, h.Summary)
	}
}

func renderInspection(w io.Writer, asset *models.Asset, s inspection.Snapshot) {
	fmt.Fprintln(w)
	if asset != nil {
		fmt.Fprintf(w, "=== Inspecting %s ===\n", asset.AssetName)
	} else {
		fmt.Fprintln(w, "=== Inspection ===")
	}
	renderBanner(w, s.Uploading || s.Submitting, s.Err)

	fmt.Fprintf(w, "Status:   %s\n", s.Status)
	if s.Comments == "" {
		fmt.Fprintln(w, "Comments: (empty - required before submit)")
	} else {
		fmt.Fprintf(w, "Comments: %s\n", s.Comments)
	}
	fmt.Fprintf(w, "Photos:   %d\n", len(s.Photos))
	for _, p := range s.Photos {
		if p.Upload != nil && p.Upload.AINotes != "" {
			fmt.Fprintf(w, "  - %s: %s\n", p.File, p.Upload.AINotes)
		} else {
			fmt.Fprintf(w, "  - %s\n", p.File)
		}
	}
	if s.VoiceFileURL != "" {
		fmt.Fprintf(w, "Voice note: %s\n", s.VoiceFileURL)
	}
	if s.Recording {
		fmt.Fprintln(w, "● Recording voice note...")
	}
	if s.Uploading {
		fmt.Fprintln(w, "(status and photo commands are disabled while an upload is in flight)")
	}
}

func renderReports(w io.Writer, loading bool, errMsg string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== Audit Reports ===")
	renderBanner(w, loading, errMsg)
}

func renderSubmissionResult(w io.Writer, status models.AuditStatus, r *models.AuditResult) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Audit submitted successfully!")
	fmt.Fprintf(w, "  Status:   %s\n", status)
	fmt.Fprintf(w, "  Urgency:  %s\n", r.AIAnalysis.UrgencyLevel)
	fmt.Fprintf(w, "  Summary:  %s\n", r.AIAnalysis.Summary)
	fmt.Fprintln(w, "  Workflow: Closed")
}

func renderReportResult(w io.Writer, r *models.ReportResult) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Report generated successfully!")
	fmt.Fprintf(w, "  Total audits: %d\n", r.TotalAudits)
	fmt.Fprintf(w, "  Report URL:   %s\n", r.ReportURL)
}

func renderGoodbye(w io.Writer) {
	fmt.Fprintln(w, "Bye!")
}
