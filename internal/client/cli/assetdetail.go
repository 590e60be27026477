package cli

import (
	"context"
	"fmt"
	"strings"
)

// assetDetailScreen handles one command on the asset-detail screen: start an
// inspection of the selected asset, go back to the dashboard, log out, or
// exit. Starting an inspection resets the draft form so every inspection
// begins from a clean slate.
func (a *App) assetDetailScreen(ctx context.Context) bool {
	line, err := getSimpleText(a.reader, "Command (inspect, back, logout, exit)", a.out)
	if err != nil {
		return true
	}

	switch strings.TrimSpace(line) {
	case "":
	case "inspect":
		a.form.Reset()
		a.setView(ctx, ViewInspection)
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
