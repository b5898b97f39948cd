package model

import (
	"github.com/google/uuid"

	"tunesync/internal/netsync"
	"tunesync/internal/observe"
)

// Album represents an album with its editable metadata and owned tracks.
//
// The album is the strong owner of its track list; each owned track's
// back-reference is set before NewAlbum returns, so callers never observe
// an intermediate state with an unowned or mis-owned child.
type Album struct {
	id uuid.UUID

	// Title is the album title.
	Title observe.Field[string]

	// ReleaseYear is the year the album was released.
	ReleaseYear observe.Field[int]

	// Tracks are the owned tracks, in order.
	Tracks []*Track

	// artist points back to the owning artist. Non-owning, see Track.album.
	artist *Artist

	outbound netsync.Sender
}

// NewAlbum creates an Album owning the supplied tracks.
//
// Ownership transfers: every track's album back-reference is set to the
// new album before the constructor returns. Initial field values are
// applied with initialization origin and produce no outbound traffic.
func NewAlbum(title string, releaseYear int, tracks []*Track, outbound netsync.Sender) *Album {
	id := uuid.New()
	a := &Album{
		id:          id,
		Title:       observe.NewField(observe.NewRef("album", id, "title"), ""),
		ReleaseYear: observe.NewField(observe.NewRef("album", id, "releaseYear"), 0),
		outbound:    outbound,
	}

	observe.Update(a, &a.Title, title, observe.OriginInitialization)
	observe.Update(a, &a.ReleaseYear, releaseYear, observe.OriginInitialization)

	for _, track := range tracks {
		a.AddTrack(track)
	}

	return a
}

// AddTrack appends a track to the album and claims ownership by setting
// the track's back-reference.
func (a *Album) AddTrack(track *Track) {
	track.album = a
	a.Tracks = append(a.Tracks, track)
}

// ID returns the album's identity.
func (a *Album) ID() uuid.UUID {
	return a.id
}

// Artist returns the owning artist, or nil for a standalone album.
func (a *Album) Artist() *Artist {
	return a.artist
}

// NotifyOutbound implements observe.Updatable.
func (a *Album) NotifyOutbound(ref observe.Ref, value any) {
	if a.outbound != nil {
		a.outbound.Send(netsync.Event{Ref: ref, Value: value})
	}
}
