// Package model defines the observable entity hierarchy:
// Artist → Albums → Tracks.
//
// Every editable field is an independently observable observe.Field, so a
// partial update to one field never re-notifies unrelated fields. Each
// entity implements observe.Updatable with an outbound hook that forwards
// UI-origin changes to its netsync sink.
//
// # Ownership
//
// Parents hold owning slices of their children; children hold plain
// non-owning back-references set by the owner at construction or
// insertion time. The back-references are never followed for lifetime
// management; Go's GC collects the parent/child cycle once the owner is
// dropped.
//
// # Construction
//
//	hurt := model.NewTrack("Hurt", 6*time.Minute+13*time.Second, out)
//	spiral := model.NewAlbum("The Downward Spiral", 1994, []*model.Track{hurt}, out)
//	nin := model.NewArtist("Nine Inch Nails", 1988, []*model.Album{spiral}, out)
//	// hurt.Album() == spiral, spiral.Artist() == nin
//
// All initial values land with initialization origin: constructing a
// whole library emits nothing outbound.
package model
