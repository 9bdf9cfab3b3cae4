package tui

import "github.com/tessro/dialogcoach/internal/roster"

// rosterReloadedMsg carries a freshly loaded dataset from the file watcher.
type rosterReloadedMsg struct {
	Dataset *roster.Dataset
}

// rosterErrorMsg reports a failed reload.
type rosterErrorMsg struct {
	Err error
}

// clearErrorMsg is sent to clear the error display after a timeout.
type clearErrorMsg struct{}
