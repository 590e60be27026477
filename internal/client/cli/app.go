package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/skye-prog/ai-workorder-management/internal/client/api"
	"github.com/skye-prog/ai-workorder-management/internal/client/config"
	"github.com/skye-prog/ai-workorder-management/internal/client/inspection"
	"github.com/skye-prog/ai-workorder-management/internal/client/models"
	"github.com/skye-prog/ai-workorder-management/internal/logging"
)

// View names a screen of the client. The set is fixed; the initial view is
// ViewLogin and logout from any view returns there.
type View string

const (
	ViewLogin       View = "login"
	ViewDashboard   View = "dashboard"
	ViewAssetDetail View = "asset-detail"
	ViewInspection  View = "inspection"
	ViewReports     View = "reports"
)

// getSimpleText, getTextOrDefault and getPassword are indirections used to
// facilitate testing. They point to the interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText    = GetSimpleText
	getTextOrDefault = GetTextOrDefault
	getPassword      = GetPassword
)

// Backend is the authenticated API surface the app shell and the inspection
// form use. *api.Client satisfies it.
type Backend interface {
	ScheduledInspections(ctx context.Context, employeeID int) ([]models.ScheduledInspection, error)
	AssetDetail(ctx context.Context, assetID int) (*models.Asset, error)
	AssetHistory(ctx context.Context, assetID int) ([]models.AuditHistoryEntry, error)
	UploadPhoto(ctx context.Context, filename string, r io.Reader) (*models.PhotoUploadResult, error)
	UploadVoice(ctx context.Context, filename string, r io.Reader) (*models.VoiceUploadResult, error)
	SubmitAudit(ctx context.Context, audit models.AuditSubmission) (*models.AuditResult, error)
	GenerateReport(ctx context.Context, filter models.ReportFilter) (*models.ReportResult, error)
}

// loginFunc exchanges credentials for the session user and an authenticated
// Backend. Kept as a field so tests can stub the whole exchange.
type loginFunc func(ctx context.Context, username, password string) (*models.User, Backend, error)

// App owns all cross-view state: the current view, the session user, the
// selected asset, the fetched lists, and the per-screen loading and error
// flags. Views render from immutable snapshots of this state and never
// perform I/O themselves.
type App struct {
	log    logging.Logger
	login  loginFunc
	health func(ctx context.Context) error

	reader *bufio.Reader
	out    io.Writer

	view        View
	backend     Backend
	form        *inspection.Form
	user        *models.User
	asset       *models.Asset
	inspections []models.ScheduledInspection
	history     []models.AuditHistoryEntry

	loading   map[View]bool
	screenErr map[View]string
}

// NewApp wires an App against the backend named by cfg.BaseURL.
func NewApp(cfg *config.Config, log logging.Logger) *App {
	root := api.New(cfg.BaseURL, log)
	a := newApp(log)
	a.login = func(ctx context.Context, username, password string) (*models.User, Backend, error) {
		user, authed, err := root.Login(ctx, username, password)
		if err != nil {
			return nil, nil, err
		}
		return user, authed, nil
	}
	a.health = root.Health
	return a
}

func newApp(log logging.Logger) *App {
	return &App{
		log:       log,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
		view:      ViewLogin,
		loading:   map[View]bool{},
		screenErr: map[View]string{},
	}
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

// Run drives the screen loop: render the current view, handle one user
// action, repeat. Blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	if a.health != nil {
		if err := a.health(ctx); err != nil {
			a.log.Warn(ctx, "backend health check failed", "error", err)
		}
	}

	for {
		a.render()

		var quit bool
		switch a.view {
		case ViewLogin:
			quit = a.loginScreen(ctx)
		case ViewDashboard:
			quit = a.dashboardScreen(ctx)
		case ViewAssetDetail:
			quit = a.assetDetailScreen(ctx)
		case ViewInspection:
			quit = a.inspectionScreen(ctx)
		case ViewReports:
			quit = a.reportsScreen(ctx)
		}
		if quit {
			renderGoodbye(a.out)
			return
		}
	}
}

func (a *App) render() {
	switch a.view {
	case ViewLogin:
		renderLogin(a.out, a.loading[ViewLogin], a.screenErr[ViewLogin])
	case ViewDashboard:
		renderDashboard(a.out, a.user, a.inspections, a.loading[ViewDashboard], a.screenErr[ViewDashboard])
	case ViewAssetDetail:
		renderAssetDetail(a.out, a.asset, a.history, a.loading[ViewAssetDetail], a.screenErr[ViewAssetDetail])
	case ViewInspection:
		renderInspection(a.out, a.asset, a.form.Snapshot())
	case ViewReports:
		renderReports(a.out, a.loading[ViewReports], a.screenErr[ViewReports])
	}
}

// setView transitions to v and runs the screen's entry reaction. Each entry
// fetch manages the loading and error flags scoped to its own screen; a
// failed fetch surfaces a banner but never blocks navigation.
func (a *App) setView(ctx context.Context, v View) {
	a.view = v
	switch v {
	case ViewDashboard:
		a.loadInspections(ctx)
	case ViewAssetDetail:
		a.loadHistory(ctx)
	}
}

func (a *App) loadInspections(ctx context.Context) {
	if a.user == nil {
		return
	}
	a.loading[ViewDashboard] = true
	a.screenErr[ViewDashboard] = ""
	list, err := a.backend.ScheduledInspections(ctx, a.user.EmployeeID)
	a.loading[ViewDashboard] = false
	if err != nil {
		a.screenErr[ViewDashboard] = "Failed to load inspections: " + err.Error()
		return
	}
	a.inspections = list
}

func (a *App) loadHistory(ctx context.Context) {
	if a.asset == nil {
		return
	}
	a.loading[ViewAssetDetail] = true
	a.screenErr[ViewAssetDetail] = ""
	history, err := a.backend.AssetHistory(ctx, a.asset.AssetID)
	a.loading[ViewAssetDetail] = false
	if err != nil {
		a.screenErr[ViewAssetDetail] = "Error loading asset history: " + err.Error()
		return
	}
	a.history = history
}

// Logout clears the session user, the selected asset and the fetched lists,
// and returns to the login screen.
func (a *App) Logout() {
	a.user = nil
	a.backend = nil
	a.form = nil
	a.asset = nil
	a.inspections = nil
	a.history = nil
	a.view = ViewLogin
}
