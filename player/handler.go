package player

import "github.com/oomph-ac/wedisplay/event"

// Handler handles things that happen to a Player.
type Handler interface {
	// HandleFrame handles a frame of the selection protocol sent by the server. It returns false if
	// the frame should not be applied.
	HandleFrame(p *Player, f event.Frame) bool
	// HandleQuit is called when the player is closed.
	HandleQuit(p *Player)
}

// NopHandler implements Handler and does nothing.
type NopHandler struct{}

func (NopHandler) HandleFrame(*Player, event.Frame) bool { return true }
func (NopHandler) HandleQuit(*Player)                    {}
