package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skye-prog/ai-workorder-management/internal/client/api"
	"github.com/skye-prog/ai-workorder-management/internal/client/inspection"
	"github.com/skye-prog/ai-workorder-management/internal/client/models"
	"github.com/skye-prog/ai-workorder-management/internal/logging"
)

type fakeBackend struct {
	inspections    []models.ScheduledInspection
	inspectionsErr error
	asset          *models.Asset
	assetErr       error
	history        []models.AuditHistoryEntry
	historyErr     error
	reportResult   *models.ReportResult
	reportErr      error

	assetFetches  int
	gotEmployeeID int
	gotFilter     models.ReportFilter
}

func (f *fakeBackend) ScheduledInspections(_ context.Context, employeeID int) ([]models.ScheduledInspection, error) {
	f.gotEmployeeID = employeeID
	return f.inspections, f.inspectionsErr
}

func (f *fakeBackend) AssetDetail(_ context.Context, assetID int) (*models.Asset, error) {
	f.assetFetches++
	if f.assetErr != nil {
		return nil, f.assetErr
	}
	return f.asset, nil
}

func (f *fakeBackend) AssetHistory(_ context.Context, assetID int) ([]models.AuditHistoryEntry, error) {
	return f.history, f.historyErr
}

func (f *fakeBackend) UploadPhoto(_ context.Context, filename string, _ io.Reader) (*models.PhotoUploadResult, error) {
	return &models.PhotoUploadResult{URL: "/files/photos/" + filename}, nil
}

func (f *fakeBackend) UploadVoice(_ context.Context, filename string, _ io.Reader) (*models.VoiceUploadResult, error) {
	return &models.VoiceUploadResult{URL: "/files/voice/" + filename}, nil
}

func (f *fakeBackend) SubmitAudit(_ context.Context, audit models.AuditSubmission) (*models.AuditResult, error) {
	return &models.AuditResult{Status: "success"}, nil
}

func (f *fakeBackend) GenerateReport(_ context.Context, filter models.ReportFilter) (*models.ReportResult, error) {
	f.gotFilter = filter
	return f.reportResult, f.reportErr
}

func stubInputs(t *testing.T, username, password string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return username, nil }
	getPassword = func(_ io.Writer) ([]byte, error) { return []byte(password), nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func newTestApp(backend *fakeBackend) (*App, *bytes.Buffer) {
	a := newApp(logging.New("error"))
	out := &bytes.Buffer{}
	a.out = out
	a.login = func(_ context.Context, username, password string) (*models.User, Backend, error) {
		if username == "john.doe" && password == "password123" {
			return &models.User{EmployeeID: 1, Username: "john.doe", FullName: "John Doe", Role: "Field Inspector"},
				backend, nil
		}
		return nil, nil, fmt.Errorf("login: %w", api.ErrUnauthorized)
	}
	return a, out
}

// loggedIn puts the app into a post-login state without going through the
// login screen.
func loggedIn(a *App, backend Backend) {
	a.user = &models.User{EmployeeID: 1, Username: "john.doe", FullName: "John Doe"}
	a.backend = backend
	a.form = inspection.NewForm(backend)
	a.view = ViewDashboard
}

func TestLoginSuccessTransitionsToDashboard(t *testing.T) {
	backend := &fakeBackend{
		inspections: []models.ScheduledInspection{{ScheduleID: 101, AssetID: 7, AssetName: "T-892"}},
	}
	a, _ := newTestApp(backend)
	stubInputs(t, "john.doe", "password123")

	quit := a.loginScreen(context.Background())

	assert.False(t, quit)
	assert.Equal(t, ViewDashboard, a.view)
	require.NotNil(t, a.user)
	assert.Equal(t, "John Doe", a.user.FullName)
	assert.True(t, a.isLoggedIn())
	// entering the dashboard fetched the user's inspections
	assert.Equal(t, 1, backend.gotEmployeeID)
	assert.Len(t, a.inspections, 1)
	assert.Empty(t, a.screenErr[ViewLogin])
}

func TestLoginFailureStaysOnLogin(t *testing.T) {
	a, _ := newTestApp(&fakeBackend{})
	stubInputs(t, "john.doe", "wrong")

	quit := a.loginScreen(context.Background())

	assert.False(t, quit)
	assert.Equal(t, ViewLogin, a.view)
	assert.Nil(t, a.user)
	assert.Equal(t, "Invalid credentials.", a.screenErr[ViewLogin])
}

func TestLoginBlankUsernameQuits(t *testing.T) {
	a, _ := newTestApp(&fakeBackend{})
	stubInputs(t, "", "")

	assert.True(t, a.loginScreen(context.Background()))
}

func TestOpenInspectionFetchesAssetBeforeDetailView(t *testing.T) {
	backend := &fakeBackend{
		inspections: []models.ScheduledInspection{{ScheduleID: 101, AssetID: 7, AssetName: "T-892"}},
		asset:       &models.Asset{AssetID: 7, AssetName: "T-892", Location: "Substation 12"},
		history:     []models.AuditHistoryEntry{{AuditID: 41, AuditStatus: "Good"}},
	}
	a, _ := newTestApp(backend)
	loggedIn(a, backend)
	a.inspections = backend.inspections

	a.openInspection(context.Background(), "1")

	assert.Equal(t, 1, backend.assetFetches)
	assert.Equal(t, ViewAssetDetail, a.view)
	require.NotNil(t, a.asset)
	assert.Equal(t, 7, a.asset.AssetID)
	// entering asset-detail fetched the history
	assert.Len(t, a.history, 1)
}

func TestOpenInspectionFetchFailureStaysOnDashboard(t *testing.T) {
	backend := &fakeBackend{
		inspections: []models.ScheduledInspection{{ScheduleID: 101, AssetID: 7}},
		assetErr:    errors.New("boom"),
	}
	a, _ := newTestApp(backend)
	loggedIn(a, backend)
	a.inspections = backend.inspections

	a.openInspection(context.Background(), "1")

	assert.Equal(t, ViewDashboard, a.view)
	assert.Equal(t, "Failed to load asset details", a.screenErr[ViewDashboard])
	assert.Nil(t, a.asset)
}

func TestOpenInspectionRejectsBadNumber(t *testing.T) {
	backend := &fakeBackend{}
	a, out := newTestApp(backend)
	loggedIn(a, backend)

	a.openInspection(context.Background(), "5")

	assert.Zero(t, backend.assetFetches)
	assert.Contains(t, out.String(), "No such inspection")
}

func TestDashboardFetchFailureShowsBanner(t *testing.T) {
	backend := &fakeBackend{inspectionsErr: errors.New("timeout")}
	a, _ := newTestApp(backend)
	loggedIn(a, backend)

	a.setView(context.Background(), ViewDashboard)

	assert.Contains(t, a.screenErr[ViewDashboard], "Failed to load inspections")
	assert.Equal(t, ViewDashboard, a.view)
}

func TestLogoutClearsSession(t *testing.T) {
	backend := &fakeBackend{}
	a, _ := newTestApp(backend)
	loggedIn(a, backend)
	a.asset = &models.Asset{AssetID: 7}
	a.inspections = []models.ScheduledInspection{{ScheduleID: 101}}
	a.history = []models.AuditHistoryEntry{{AuditID: 41}}
	a.view = ViewReports

	a.Logout()

	assert.Equal(t, ViewLogin, a.view)
	assert.Nil(t, a.user)
	assert.Nil(t, a.backend)
	assert.Nil(t, a.asset)
	assert.Empty(t, a.inspections)
	assert.Empty(t, a.history)
	assert.False(t, a.isLoggedIn())
}

func TestGenerateReportSendsOnlySetFilters(t *testing.T) {
	backend := &fakeBackend{
		reportResult: &models.ReportResult{ReportURL: "/files/reports/r.pdf", TotalAudits: 4},
	}
	a, out := newTestApp(backend)
	loggedIn(a, backend)

	answers := []string{"2025-10-01", "2025-10-31", "Critical", "all"}
	orig := getTextOrDefault
	getTextOrDefault = func(_ *bufio.Reader, _, _ string, _ io.Writer) (string, error) {
		answer := answers[0]
		answers = answers[1:]
		return answer, nil
	}
	t.Cleanup(func() { getTextOrDefault = orig })

	a.generateReport(context.Background())

	assert.Equal(t, models.ReportFilter{
		StartDate:    "2025-10-01",
		EndDate:      "2025-10-31",
		UrgencyLevel: "Critical",
	}, backend.gotFilter)
	assert.Contains(t, out.String(), "/files/reports/r.pdf")
	assert.Contains(t, out.String(), "Total audits: 4")
}

func TestGenerateReportFailureShowsBanner(t *testing.T) {
	backend := &fakeBackend{reportErr: errors.New("pdf service down")}
	a, _ := newTestApp(backend)
	loggedIn(a, backend)

	orig := getTextOrDefault
	getTextOrDefault = func(_ *bufio.Reader, _, def string, _ io.Writer) (string, error) { return def, nil }
	t.Cleanup(func() { getTextOrDefault = orig })

	a.generateReport(context.Background())

	assert.Contains(t, a.screenErr[ViewReports], "Failed to generate report")
}
