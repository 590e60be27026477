package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// dashboardScreen handles one command on the dashboard: open a scheduled
// inspection by its list number, go to reports, refresh the list, log out,
// or exit.
func (a *App) dashboardScreen(ctx context.Context) bool {
	line, err := getSimpleText(a.reader, "Command (open <n>, reports, refresh, logout, exit)", a.out)
	if err != nil {
		return true
	}

	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false
	}

	switch parts[0] {
	case "open":
		if len(parts) < 2 {
			fmt.Fprintln(a.out, "Usage: open <number>")
			return false
		}
		a.openInspection(ctx, parts[1])
	case "reports":
		a.setView(ctx, ViewReports)
	case "refresh":
		a.loadInspections(ctx)
	case "logout":
		a.Logout()
	case "exit", "quit":
		return true
	default:
		fmt.Fprintln(a.out, "Unknown command:", parts[0])
	}
	return false
}

// openInspection selects a scheduled item by its list number and fetches the
// full asset record before the asset-detail screen is shown, so the screen
// never renders placeholder data.
func (a *App) openInspection(ctx context.Context, arg string) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(a.inspections) {
		fmt.Fprintln(a.out, "No such inspection:", arg)
		return
	}
	item := a.inspections[n-1]

	a.loading[ViewDashboard] = true
	a.screenErr[ViewDashboard] = ""
	asset, err := a.backend.AssetDetail(ctx, item.AssetID)
	a.loading[ViewDashboard] = false
	if err != nil {
		a.screenErr[ViewDashboard] = "Failed to load asset details"
		return
	}

	a.asset = asset
	a.setView(ctx, ViewAssetDetail)
}
