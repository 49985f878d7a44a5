// Package event decodes the frames sent by the selection tool and applies them to the selections of a
// viewer.
package event

import (
	"fmt"
	"strings"
)

const (
	// Channel is the script message identifier frames are sent on.
	Channel = "worldedit:cui"
	// Handshake is the payload a client with native support sends on Channel.
	Handshake = "v|4"

	separator  = "|"
	multiMark  = "+"
	clearShape = "clear"
)

// Frame is a single decoded command sent by the selection tool.
type Frame struct {
	// Key is the command key, without the multi marker.
	Key string
	// Multi is true if the command applies to a named selection.
	Multi bool
	// Params holds the parameters of the command in order. Empty parameters are kept.
	Params []string
}

// ParseFrame splits a raw frame into its key and parameters.
func ParseFrame(raw string) Frame {
	fields := strings.Split(raw, separator)
	f := Frame{Key: fields[0]}
	if strings.HasPrefix(f.Key, multiMark) {
		f.Key, f.Multi = f.Key[len(multiMark):], true
	}
	f.Params = fields[1:]
	return f
}

// String ...
func (f Frame) String() string {
	key := f.Key
	if f.Multi {
		key = multiMark + key
	}
	return strings.Join(append([]string{key}, f.Params...), separator)
}

// Frames splits a script message payload into the frames it holds. Payloads normally hold a single
// frame, but frames separated by newlines are accepted too.
func Frames(payload string) []Frame {
	lines := strings.Split(strings.ReplaceAll(payload, "\r\n", "\n"), "\n")
	frames := make([]Frame, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		frames = append(frames, ParseFrame(line))
	}
	return frames
}

// ArityError is returned when a frame has a parameter count outside the range its type accepts.
type ArityError struct {
	Type *Type
	Got  int
}

// Error ...
func (e ArityError) Error() string {
	if e.Type.Min == e.Type.Max {
		return fmt.Sprintf("invalid number of parameters: %s event requires %d parameters but received %d", e.Type.Name, e.Type.Min, e.Got)
	}
	return fmt.Sprintf("invalid number of parameters: %s event requires between %d and %d parameters but received %d", e.Type.Name, e.Type.Min, e.Type.Max, e.Got)
}

// ParseError is returned when a parameter of a frame could not be parsed.
type ParseError struct {
	Type  *Type
	Index int
	Value string
	Err   error
}

// Error ...
func (e ParseError) Error() string {
	return fmt.Sprintf("%s event: parameter %d (%q) is invalid: %v", e.Type.Name, e.Index, e.Value, e.Err)
}

// Unwrap ...
func (e ParseError) Unwrap() error {
	return e.Err
}

// MultiOnlyError is returned when an event only valid for named selections is sent in single mode.
type MultiOnlyError struct {
	Type *Type
}

// Error ...
func (e MultiOnlyError) Error() string {
	return fmt.Sprintf("%s event is not valid for non-multi selections", e.Type.Name)
}

// Is reports ErrMultiOnly as matching.
func (e MultiOnlyError) Is(target error) bool {
	return target == ErrMultiOnly
}
