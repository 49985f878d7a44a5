package player

import (
	"bytes"
	"encoding/json"

	"github.com/chewxy/math32"
	"github.com/oomph-ac/wedisplay/internal"
	"github.com/oomph-ac/wedisplay/palette"
	"github.com/oomph-ac/wedisplay/render"
	"github.com/sandertv/gophertunnel/minecraft/protocol/packet"
	"github.com/zeebo/xxh3"
)

// RenderChannel is the identifier of the script messages render payloads are sent on.
const RenderChannel = "wedisplay:render"

const (
	actionShow = "show"
	actionHide = "hide"
)

// renderPayload is the JSON body of a render script message.
type renderPayload struct {
	Action string       `json:"action"`
	Slot   string       `json:"slot"`
	Lines  []renderLine `json:"lines,omitempty"`
}

// renderLine is a line ready to be drawn as a stretched block display: a centre, a length along its
// own axis and a rotation.
type renderLine struct {
	Mid       [3]float32 `json:"mid"`
	Len       float32    `json:"len"`
	Yaw       float32    `json:"yaw"`
	Pitch     float32    `json:"pitch"`
	Thickness float32    `json:"thickness"`
	Block     uint32     `json:"block"`
	Material  string     `json:"material"`
}

// packetSink implements render.Sink by sending script messages to the client of a Player.
type packetSink struct {
	p    *Player
	sums map[render.SlotID]uint64
}

func newPacketSink(p *Player) *packetSink {
	return &packetSink{p: p, sums: make(map[render.SlotID]uint64)}
}

// Show ...
func (s *packetSink) Show(slot render.SlotID, shape render.Shape) {
	all := shape.AllLines()
	lines := make([]renderLine, 0, len(all))
	for _, l := range all {
		lines = append(lines, transformLine(l))
	}
	data, err := encodePayload(renderPayload{Action: actionShow, Slot: slot.String(), Lines: lines})
	if err != nil {
		s.p.log.Errorf("unable to encode render payload: %v", err)
		return
	}
	sum := xxh3.Hash(data)
	if prev, ok := s.sums[slot]; ok && prev == sum {
		return
	}
	s.sums[slot] = sum
	s.write(data)
}

// Hide ...
func (s *packetSink) Hide(slot render.SlotID) {
	delete(s.sums, slot)
	data, err := encodePayload(renderPayload{Action: actionHide, Slot: slot.String()})
	if err != nil {
		s.p.log.Errorf("unable to encode render payload: %v", err)
		return
	}
	s.write(data)
}

func (s *packetSink) write(data []byte) {
	if err := s.p.conn.WritePacket(&packet.ScriptMessage{Identifier: RenderChannel, Data: data}); err != nil {
		s.p.log.Debugf("unable to send render payload: %v", err)
	}
}

// encodePayload encodes the payload into a new slice.
func encodePayload(pl renderPayload) ([]byte, error) {
	buf := internal.Buffer()
	defer internal.PutBuffer(buf)
	if err := json.NewEncoder(buf).Encode(pl); err != nil {
		return nil, err
	}
	return bytes.Clone(bytes.TrimSuffix(buf.Bytes(), []byte{'\n'})), nil
}

// transformLine converts a line to its midpoint, length and rotation in degrees. The length includes
// the thickness so that lines meeting at a corner overlap.
func transformLine(l render.Line) renderLine {
	d := l.End.Sub(l.Start)
	dx, dy, dz := float32(d[0]), float32(d[1]), float32(d[2])
	length := math32.Sqrt(dx*dx + dy*dy + dz*dz)
	mid := l.Mid()

	rl := renderLine{
		Mid:       [3]float32{float32(mid[0]), float32(mid[1]), float32(mid[2])},
		Len:       length + float32(l.Thickness),
		Thickness: float32(l.Thickness),
		Material:  l.Material.String(),
	}
	if length > 0 {
		rl.Yaw = math32.Atan2(-dx, dz) * 180 / math32.Pi
		rl.Pitch = -math32.Asin(math32.Max(-1, math32.Min(1, dy/length))) * 180 / math32.Pi
	}
	if rid, ok := palette.RuntimeID(l.Material); ok {
		rl.Block = rid
	}
	return rl
}
