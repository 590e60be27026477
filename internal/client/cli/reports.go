package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/skye-prog/ai-workorder-management/internal/client/models"
)

// reportsScreen handles one command on the reports screen: generate a PDF
// report over a filtered date range, go back to the dashboard, log out, or
// exit. Generation stays on this screen.
func (a *App) reportsScreen(ctx context.Context) bool {
	line, err := getSimpleText(a.reader, "Command (generate, back, logout, exit)", a.out)
	if err != nil {
		return true
	}

	switch strings.TrimSpace(line) {
	case "":
	case "generate":
		a.generateReport(ctx)
	case "back":
		a.setView(ctx, ViewDashboard)
	case "logout":
		a.Logout()
	case "exit", "quit":
		return true
	default:
		fmt.Fprintln(a.out, "Unknown command:", line)
	}
	return false
}

// generateReport prompts for the report filters and requests generation.
// Filters left at "all" are omitted from the request body.
func (a *App) generateReport(ctx context.Context) {
	start, err := getTextOrDefault(a.reader, "Start date (YYYY-MM-DD)", "2025-10-01", a.out)
	if err != nil {
		return
	}
	end, err := getTextOrDefault(a.reader, "End date (YYYY-MM-DD)", "2025-10-31", a.out)
	if err != nil {
		return
	}
	urgency, err := getTextOrDefault(a.reader, "Urgency level (Low, Medium, High, Critical, all)", "all", a.out)
	if err != nil {
		return
	}
	workflow, err := getTextOrDefault(a.reader, "Workflow status (Open, Closed, all)", "all", a.out)
	if err != nil {
		return
	}

	filter := models.ReportFilter{StartDate: start, EndDate: end}
	if urgency != "all" {
		filter.UrgencyLevel = urgency
	}
	if workflow != "all" {
		filter.WorkflowStatus = workflow
	}

	a.loading[ViewReports] = true
	a.screenErr[ViewReports] = ""
	result, err := a.backend.GenerateReport(ctx, filter)
	a.loading[ViewReports] = false
	if err != nil {
		a.screenErr[ViewReports] = "Failed to generate report: " + err.Error()
		return
	}

	renderReportResult(a.out, result)
}
