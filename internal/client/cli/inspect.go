package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/skye-prog/ai-workorder-management/internal/client/inspection"
	"github.com/skye-prog/ai-workorder-management/internal/client/models"
)

// inspectionScreen handles one command on the inspection screen. The form
// owns the draft state; this handler only translates user intent into form
// operations and screen transitions.
func (a *App) inspectionScreen(ctx context.Context) bool {
	line, err := getSimpleText(a.reader,
		"Command (status <rating>, comment <text>, photo <files>, record, voice <file>, submit, cancel, exit)", a.out)
	if err != nil {
		return true
	}

	cmd, rest := splitCommand(line)
	switch cmd {
	case "":
	case "status":
		if err := a.form.SetStatus(models.AuditStatus(rest)); err != nil {
			fmt.Fprintln(a.out, err.Error())
		}
	case "comment":
		a.form.SetComments(rest)
	case "photo":
		files := strings.Fields(rest)
		if len(files) == 0 {
			fmt.Fprintln(a.out, "Usage: photo <file> [file ...]")
			return false
		}
		if err := a.form.UploadPhotos(ctx, files); err != nil {
			// The form recorded the error; the next render shows the banner.
			a.log.Error(ctx, "photo batch failed", "error", err)
		}
	case "record":
		if a.form.ToggleVoiceRecording() {
			fmt.Fprintln(a.out, "Recording started.")
		} else {
			fmt.Fprintln(a.out, "Recording stopped, transcribing...")
		}
	case "voice":
		if rest == "" {
			fmt.Fprintln(a.out, "Usage: voice <file>")
			return false
		}
		if err := a.form.AttachVoiceNote(ctx, rest); err != nil {
			a.log.Error(ctx, "voice note failed", "error", err)
		}
	case "submit":
		a.submitInspection(ctx)
	case "cancel":
		a.form.Reset()
		a.setView(ctx, ViewAssetDetail)
	case "exit", "quit":
		return true
	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
	}
	return false
}

// submitInspection sends the draft. On success it shows the result summary,
// discards the draft, and returns to the dashboard, which re-fetches the
// inspection list on entry. On failure the draft is preserved for a retry.
func (a *App) submitInspection(ctx context.Context) {
	if a.asset == nil || a.user == nil {
		return
	}

	snap := a.form.Snapshot()
	if snap.Uploading {
		fmt.Fprintln(a.out, "Photo upload in progress, try again shortly.")
		return
	}

	result, err := a.form.Submit(ctx, a.asset.AssetID, a.user.EmployeeID)
	if err != nil {
		if errors.Is(err, inspection.ErrEmptyComments) || errors.Is(err, inspection.ErrSubmitting) {
			fmt.Fprintln(a.out, err.Error())
		}
		// Backend failures were recorded by the form; the banner shows them.
		return
	}

	renderSubmissionResult(a.out, snap.Status, result)
	a.form.Reset()
	a.setView(ctx, ViewDashboard)
}

// splitCommand splits a line into its first word and the remainder.
func splitCommand(line string) (string, string) {
	line = strings.TrimSpace(line)
	cmd, rest, _ := strings.Cut(line, " ")
	return cmd, strings.TrimSpace(rest)
}
