package ui

import (
	"lyrix/internal/session"
)

// sessionMsg carries the result of async work back into the update loop
type sessionMsg struct {
	event session.Event
}

// revertMsg is the copy-status timer firing
type revertMsg struct {
	generation uint64
}

// pagerMsg contains the result of a pager command
type pagerMsg struct {
	err error
}
