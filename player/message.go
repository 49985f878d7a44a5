package player

import (
	"github.com/sandertv/gophertunnel/minecraft/protocol/packet"
	"github.com/sandertv/gophertunnel/minecraft/text"
)

// Message sends a chat message to the player. The message may contain colour tags.
func (p *Player) Message(msg string) {
	_ = p.conn.WritePacket(&packet.Text{
		TextType: packet.TextTypeRaw,
		Message:  text.Colourf("%s", msg),
	})
}

// translate returns the message with the key passed in the language of the player. It must be called
// with mu held.
func (p *Player) translate(key string, args ...any) string {
	if p.conf.Lang == nil {
		return key
	}
	return p.conf.Lang.Translate(p.language, key, args...)
}

// message sends the message with the key passed to the player in their language. It must be called
// with mu held.
func (p *Player) message(key string, args ...any) {
	p.Message(p.translate(key, args...))
}
