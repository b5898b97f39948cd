package model

import (
	"time"

	"github.com/google/uuid"

	"tunesync/internal/netsync"
	"tunesync/internal/observe"
)

// Track represents a single track within an album.
//
// Both editable fields are independently observable: a write to Title
// never notifies Duration subscribers and vice versa. All mutations go
// through observe.Update (directly for network updates, via bindings for
// UI edits).
//
// Example:
//
//	track := model.NewTrack("Hurt", 6*time.Minute+13*time.Second, out)
//	observe.Update(track, &track.Title, "Hurt (Quiet)", observe.OriginNetwork)
type Track struct {
	id uuid.UUID

	// Title is the track title.
	Title observe.Field[string]

	// Duration is the track length.
	Duration observe.Field[time.Duration]

	// album points back to the owning album. Non-owning: it is set by the
	// owner at construction or insertion time and is never consulted for
	// lifetime decisions. Go's tracing GC collects the cycle, so this
	// reference cannot keep a dropped album alive.
	album *Album

	outbound netsync.Sender
}

// NewTrack creates a standalone Track. The track gains an owning album
// only when passed to NewAlbum or Album.AddTrack.
//
// Initial values are applied with initialization origin, so constructing
// a track never produces outbound traffic.
func NewTrack(title string, duration time.Duration, outbound netsync.Sender) *Track {
	id := uuid.New()
	t := &Track{
		id:       id,
		Title:    observe.NewField(observe.NewRef("track", id, "title"), ""),
		Duration: observe.NewField[time.Duration](observe.NewRef("track", id, "duration"), 0),
		outbound: outbound,
	}

	observe.Update(t, &t.Title, title, observe.OriginInitialization)
	observe.Update(t, &t.Duration, duration, observe.OriginInitialization)

	return t
}

// ID returns the track's identity.
func (t *Track) ID() uuid.UUID {
	return t.id
}

// Album returns the owning album, or nil for a standalone track.
func (t *Track) Album() *Album {
	return t.album
}

// NotifyOutbound implements observe.Updatable by forwarding the change to
// the track's outbound sink. A nil sink drops the event, which keeps
// detached tracks usable in tests.
func (t *Track) NotifyOutbound(ref observe.Ref, value any) {
	if t.outbound != nil {
		t.outbound.Send(netsync.Event{Ref: ref, Value: value})
	}
}
