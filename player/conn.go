package player

import (
	"io"

	"github.com/sandertv/gophertunnel/minecraft/protocol/login"
	"github.com/sandertv/gophertunnel/minecraft/protocol/packet"
)

// Conn is the connection of the client a Player belongs to. *minecraft.Conn implements it.
type Conn interface {
	io.Closer
	WritePacket(pk packet.Packet) error
	IdentityData() login.IdentityData
	ClientData() login.ClientData
}

// ServerConn is the connection to the server the client is forwarded to.
type ServerConn interface {
	io.Closer
	WritePacket(pk packet.Packet) error
}
