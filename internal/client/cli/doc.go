// Package cli provides the interactive terminal client for field inspectors.
//
// The client is a small state machine over five screens: login, dashboard,
// asset-detail, inspection, and reports. Each iteration of the main loop
// renders the current screen from app state and handles one user action;
// actions issue backend calls and transition the screen. Entering the
// dashboard fetches the inspector's scheduled inspections; entering
// asset-detail fetches the selected asset's audit history. Logout from any
// screen clears the session and returns to login.
//
// The loop is started via App.Run(ctx), which blocks until the user exits.
package cli
