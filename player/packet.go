package player

import (
	"strings"

	"github.com/oomph-ac/wedisplay/event"
	"github.com/sandertv/gophertunnel/minecraft/protocol/packet"
)

// HandleClientPacket handles a packet sent by the client. It returns true if the packet should not be
// forwarded to the server.
func (p *Player) HandleClientPacket(pk packet.Packet) bool {
	switch pk := pk.(type) {
	case *packet.ScriptMessage:
		if pk.Identifier == event.Channel && strings.TrimSpace(string(pk.Data)) == event.Handshake {
			p.enableNativeCUI()
		}
	case *packet.Text:
		cmd := strings.Fields(pk.Message)
		if len(cmd) > 0 && cmd[0] == "!"+commandName {
			p.ExecuteCommand(cmd[1:])
			return true
		}
	case *packet.CommandRequest:
		cmd := strings.Fields(strings.TrimPrefix(pk.CommandLine, "/"))
		if len(cmd) > 0 && strings.EqualFold(cmd[0], commandName) {
			p.ExecuteCommand(cmd[1:])
			return true
		}
	}
	return false
}

// HandleServerPacket handles a packet sent by the server. It returns true if the packet should not be
// forwarded to the client.
func (p *Player) HandleServerPacket(pk packet.Packet) bool {
	switch pk := pk.(type) {
	case *packet.ScriptMessage:
		if pk.Identifier != event.Channel || p.cuiEnabled.Load() {
			return false
		}
		p.handleFrames(string(pk.Data))
		return true
	case *packet.AvailableCommands:
		p.registerCommand(pk)
	}
	return false
}

// handleFrames applies every frame in the payload passed. Rejected frames are logged and skipped.
func (p *Player) handleFrames(payload string) {
	h := p.handler()
	frames := make([]event.Frame, 0, 1)
	for _, f := range event.Frames(payload) {
		if h.HandleFrame(p, f) {
			frames = append(frames, f)
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	for _, f := range frames {
		if err := p.dispatcher.Dispatch(f); err != nil {
			p.log.Debugf("rejected frame %q: %v", f.String(), err)
		}
	}
}

// enableNativeCUI marks the client as rendering selections itself and removes everything rendered so
// far.
func (p *Player) enableNativeCUI() {
	if !p.cuiEnabled.CompareAndSwap(false, true) {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.Clear()
	p.message("cui.native")
	p.log.Debug("client renders selections natively")
}

// Handshake announces to the server that the player can display selections, so that the server starts
// sending them. Nothing is sent if the client announced this itself.
func (p *Player) Handshake() {
	if p.cuiEnabled.Load() || p.closed.Load() || p.serverConn == nil {
		return
	}
	err := p.serverConn.WritePacket(&packet.ScriptMessage{
		Identifier: event.Channel,
		Data:       []byte(event.Handshake),
	})
	if err != nil {
		p.log.Debugf("unable to send handshake: %v", err)
	}
}
