package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skye-prog/ai-workorder-management/internal/client/config"
	"github.com/skye-prog/ai-workorder-management/internal/devserver"
	"github.com/skye-prog/ai-workorder-management/internal/logging"
)

// TestEndToEndInspectionFlow drives the full client against the development
// backend: sign in, open the earliest scheduled inspection, fill in a Poor
// audit with a photo and a voice note, submit, and exit.
func TestEndToEndInspectionFlow(t *testing.T) {
	log := logging.New("error")
	srv := httptest.NewServer(devserver.New(log).Handler())
	defer srv.Close()

	dir := t.TempDir()
	photoPath := filepath.Join(dir, "leak.jpg")
	require.NoError(t, os.WriteFile(photoPath, []byte("jpeg bytes"), 0o600))
	voicePath := filepath.Join(dir, "note.m4a")
	require.NoError(t, os.WriteFile(voicePath, []byte("audio bytes"), 0o600))

	origPassword := getPassword
	getPassword = func(io.Writer) ([]byte, error) { return []byte("password123"), nil }
	t.Cleanup(func() { getPassword = origPassword })

	script := strings.Join([]string{
		"john.doe",
		"open 1",
		"inspect",
		"status Poor",
		"comment Leak observed at the base",
		fmt.Sprintf("photo %s", photoPath),
		fmt.Sprintf("voice %s", voicePath),
		"submit",
		"exit",
	}, "\n") + "\n"

	var out bytes.Buffer
	app := NewApp(&config.Config{BaseURL: srv.URL, LogLevel: "error"}, log)
	app.reader = bufio.NewReader(strings.NewReader(script))
	app.out = &out

	app.Run(context.Background())

	s := out.String()

	// Dashboard after login, earliest scheduled item first.
	assert.Contains(t, s, "Dashboard - John Doe (Field Inspector)")
	assert.Contains(t, s, "Scheduled inspections (3)")
	assert.Contains(t, s, "1. Padmount Transformer T-892 (Transformer)")

	// Asset detail with prior audit history.
	assert.Contains(t, s, "Asset 7 - Padmount Transformer T-892")
	assert.Contains(t, s, "Substation 12")
	assert.Contains(t, s, "Audit history:")
	assert.Contains(t, s, "2025-06-02  Good (urgency Low)")

	// The inspection draft reflects the commands.
	assert.Contains(t, s, "Status:   Poor")
	assert.Contains(t, s, "Leak observed at the base")
	assert.Contains(t, s, "leak.jpg")
	assert.Contains(t, s, "Voice note transcribed.")

	// A Poor audit maps to High urgency and closes immediately.
	assert.Contains(t, s, "Audit submitted successfully!")
	assert.Contains(t, s, "Urgency:  High")
	assert.Contains(t, s, "Summary:  Inspection: Poor. Leak observed at the base")
	assert.Contains(t, s, "Workflow: Closed")

	assert.Contains(t, s, "Bye!")
}
