package model

import (
	"testing"
	"time"

	"tunesync/internal/netsync"
	"tunesync/internal/observe"
)

func TestNewAlbum_SetsTrackBackReferences(t *testing.T) {
	tracks := []*Track{
		NewTrack("Mr. Self Destruct", 278*time.Second, nil),
		NewTrack("Piggy", 264*time.Second, nil),
		NewTrack("Heresy", 234*time.Second, nil),
	}

	album := NewAlbum("The Downward Spiral", 1994, tracks, nil)

	for i, track := range album.Tracks {
		if track.Album() != album {
			t.Errorf("track %d back-reference = %v, want the owning album", i, track.Album())
		}
	}
	if len(album.Tracks) != 3 {
		t.Errorf("album owns %d tracks, want 3", len(album.Tracks))
	}
}

func TestNewArtist_SetsAlbumBackReferences(t *testing.T) {
	albums := []*Album{
		NewAlbum("Pretty Hate Machine", 1989, nil, nil),
		NewAlbum("The Downward Spiral", 1994, nil, nil),
	}

	artist := NewArtist("Nine Inch Nails", 1988, albums, nil)

	for i, album := range artist.Albums {
		if album.Artist() != artist {
			t.Errorf("album %d back-reference = %v, want the owning artist", i, album.Artist())
		}
	}
}

func TestStandaloneChildrenHaveNoOwner(t *testing.T) {
	track := NewTrack("Hurt", 373*time.Second, nil)
	if track.Album() != nil {
		t.Error("standalone track should have nil album back-reference")
	}

	album := NewAlbum("Broken", 1992, nil, nil)
	if album.Artist() != nil {
		t.Error("standalone album should have nil artist back-reference")
	}
}

func TestAddTrack_ClaimsOwnership(t *testing.T) {
	album := NewAlbum("The Fragile", 1999, nil, nil)
	track := NewTrack("Somewhat Damaged", 271*time.Second, nil)

	album.AddTrack(track)

	if track.Album() != album {
		t.Error("AddTrack must set the track's back-reference")
	}
	if len(album.Tracks) != 1 || album.Tracks[0] != track {
		t.Error("AddTrack must append the track to the owned list")
	}
}

func TestConstruction_EmitsNothingOutbound(t *testing.T) {
	rec := &netsync.Recorder{}
	sink := netsync.Sender(rec)

	track := NewTrack("Hurt", 373*time.Second, sink)
	album := NewAlbum("The Downward Spiral", 1994, []*Track{track}, sink)
	NewArtist("Nine Inch Nails", 1988, []*Album{album}, sink)

	if len(rec.Events) != 0 {
		t.Errorf("construction emitted %d outbound events, want 0", len(rec.Events))
	}
}

func TestArtist_ProvenanceScenario(t *testing.T) {
	rec := &netsync.Recorder{}
	artist := NewArtist("Nine Inch Nails", 2003, nil, rec)

	// UI edit: field changes and exactly one outbound event fires.
	observe.Update(artist, &artist.YearFounded, 1990, observe.OriginUI)

	if got := artist.YearFounded.Get(); got != 1990 {
		t.Errorf("yearFounded = %d, want 1990", got)
	}
	if len(rec.Events) != 1 {
		t.Fatalf("outbound events after UI edit = %d, want 1", len(rec.Events))
	}
	if rec.Events[0].Ref != artist.YearFounded.Ref() {
		t.Errorf("outbound ref = %v, want %v", rec.Events[0].Ref, artist.YearFounded.Ref())
	}
	if rec.Events[0].Value != 1990 {
		t.Errorf("outbound value = %v, want 1990", rec.Events[0].Value)
	}

	// Network update: field changes, observers refresh, nothing echoes.
	var observed int
	artist.YearFounded.Subscribe(func(v int) { observed = v })

	observe.Update(artist, &artist.YearFounded, 2010, observe.OriginNetwork)

	if got := artist.YearFounded.Get(); got != 2010 {
		t.Errorf("yearFounded = %d, want 2010", got)
	}
	if observed != 2010 {
		t.Errorf("observer saw %d, want 2010", observed)
	}
	if len(rec.Events) != 1 {
		t.Errorf("outbound events after network edit = %d, want still 1", len(rec.Events))
	}
}

func TestTrackBinding_DrivesOutbound(t *testing.T) {
	rec := &netsync.Recorder{}
	track := NewTrack("Closer", 253*time.Second, rec)

	b := observe.Bind(track, &track.Title)

	// Same value first (suppressed), then a real edit.
	b.Set("Closer")
	b.Set("Closer (Precursor)")

	if len(rec.Events) != 1 {
		t.Fatalf("outbound events = %d, want 1", len(rec.Events))
	}
	if got := track.Title.Get(); got != "Closer (Precursor)" {
		t.Errorf("title = %q, want %q", got, "Closer (Precursor)")
	}
}

func TestOwnershipIsTreeShaped(t *testing.T) {
	track := NewTrack("Hurt", 373*time.Second, nil)
	album := NewAlbum("The Downward Spiral", 1994, []*Track{track}, nil)
	artist := NewArtist("Nine Inch Nails", 1988, []*Album{album}, nil)

	// Dropping the owner from the tree leaves the child intact and
	// usable; the back-reference is informational only and is never
	// consulted for lifetime decisions.
	artist.Albums = nil

	if got := track.Title.Get(); got != "Hurt" {
		t.Errorf("track title = %q after owner release, want %q", got, "Hurt")
	}
	if track.Album() != album {
		t.Error("back-reference should still point at the album the track was inserted into")
	}
}
