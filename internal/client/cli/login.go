package cli

import (
	"context"
	"errors"

	"github.com/skye-prog/ai-workorder-management/internal/client/api"
	"github.com/skye-prog/ai-workorder-management/internal/client/inspection"
)

// loginScreen prompts for credentials and attempts a login. On success it
// stores the session user, keeps the authenticated backend for all later
// calls, and moves to the dashboard. On bad credentials the view stays on
// login with an error banner. Returns true when the user wants to quit.
func (a *App) loginScreen(ctx context.Context) bool {
	username, err := getSimpleText(a.reader, "Username (blank to exit)", a.out)
	if err != nil || username == "" {
		return true
	}

	password, err := getPassword(a.out)
	if err != nil {
		a.screenErr[ViewLogin] = err.Error()
		return false
	}

	a.loading[ViewLogin] = true
	a.screenErr[ViewLogin] = ""
	user, backend, err := a.login(ctx, username, string(password))
	a.loading[ViewLogin] = false
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			a.screenErr[ViewLogin] = "Invalid credentials."
		} else {
			a.screenErr[ViewLogin] = "Login failed: " + err.Error()
		}
		return false
	}

	a.user = user
	a.backend = backend
	a.form = inspection.NewForm(backend)
	a.log.Info(ctx, "logged in", "username", user.Username, "employee_id", user.EmployeeID)
	a.setView(ctx, ViewDashboard)
	return false
}
