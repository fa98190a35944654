package components

import (
	"github.com/automoto/playmates/shared/session"
	"github.com/yohamta/donburi"
)

// SessionData is the singleton game session.
type SessionData struct {
	*session.Session
	// Saving is true while a release submission is in flight.
	Saving bool
}

var Session = donburi.NewComponentType[SessionData]()
