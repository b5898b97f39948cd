package model

import (
	"github.com/google/uuid"

	"tunesync/internal/netsync"
	"tunesync/internal/observe"
)

// Artist represents an artist owning an ordered list of albums.
//
// Ownership is strictly tree-shaped: Artist → Albums → Tracks. The child
// back-references exist for lookup only.
type Artist struct {
	id uuid.UUID

	// Name is the artist name.
	Name observe.Field[string]

	// YearFounded is the year the artist or band was founded.
	YearFounded observe.Field[int]

	// Albums are the owned albums, in order.
	Albums []*Album

	outbound netsync.Sender
}

// NewArtist creates an Artist owning the supplied albums.
//
// Every album's artist back-reference is set before the constructor
// returns. Initial field values are applied with initialization origin
// and produce no outbound traffic.
func NewArtist(name string, yearFounded int, albums []*Album, outbound netsync.Sender) *Artist {
	id := uuid.New()
	ar := &Artist{
		id:          id,
		Name:        observe.NewField(observe.NewRef("artist", id, "name"), ""),
		YearFounded: observe.NewField(observe.NewRef("artist", id, "yearFounded"), 0),
		outbound:    outbound,
	}

	observe.Update(ar, &ar.Name, name, observe.OriginInitialization)
	observe.Update(ar, &ar.YearFounded, yearFounded, observe.OriginInitialization)

	for _, album := range albums {
		ar.AddAlbum(album)
	}

	return ar
}

// AddAlbum appends an album to the artist and claims ownership by setting
// the album's back-reference.
func (ar *Artist) AddAlbum(album *Album) {
	album.artist = ar
	ar.Albums = append(ar.Albums, album)
}

// ID returns the artist's identity.
func (ar *Artist) ID() uuid.UUID {
	return ar.id
}

// NotifyOutbound implements observe.Updatable.
func (ar *Artist) NotifyOutbound(ref observe.Ref, value any) {
	if ar.outbound != nil {
		ar.outbound.Send(netsync.Event{Ref: ref, Value: value})
	}
}
