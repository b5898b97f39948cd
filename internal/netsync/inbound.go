package netsync

import (
	"bufio"
	"fmt"
	"io"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

// Message is one inbound field update from a remote peer.
//
// The wire format is one JSON object per line:
//
//	{"entity":"1b4e28ba-2fa1-11d2-883f-0016d3cca427","field":"title","value":"Hurt"}
//
// Value is decoded generically: strings for text fields, numbers for
// years and for durations in seconds. The applier coerces it to the
// target field's type.
type Message struct {
	Entity uuid.UUID `json:"entity"`
	Field  string    `json:"field"`
	Value  any       `json:"value"`
}

// Applier routes an inbound message to the addressed entity field,
// applying it with network origin so nothing echoes back outbound.
type Applier interface {
	Apply(Message) error
}

// Feed reads newline-delimited JSON messages from r and applies each to
// target. Malformed lines and messages addressing unknown entities or
// fields are reported through warn (if non-nil) and skipped; the feed
// keeps going. Blank lines are ignored.
//
// Returns only a read error from the underlying reader.
func Feed(r io.Reader, target Applier, warn func(Line)) error {
	warnf := func(format string, args ...any) {
		if warn != nil {
			warn(Line{Message: fmt.Sprintf(format, args...), Level: LevelWarning})
		}
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}

		var msg Message
		if err := jsoniter.ConfigFastest.Unmarshal(raw, &msg); err != nil {
			warnf("feed line %d: bad message: %v", lineNo, err)
			continue
		}

		if err := target.Apply(msg); err != nil {
			warnf("feed line %d: %v", lineNo, err)
		}
	}

	return scanner.Err()
}

// EncodeMessage renders a message in the wire format, without the
// trailing newline. Used by tests and by tools that produce feed files.
func EncodeMessage(msg Message) ([]byte, error) {
	return jsoniter.ConfigFastest.Marshal(msg)
}
