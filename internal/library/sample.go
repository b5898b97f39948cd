package library

import (
	"time"

	"tunesync/internal/model"
	"tunesync/internal/netsync"
)

// Sample builds a small in-memory library, used by the demo commands and
// the TUI when no music directory is configured.
func Sample(outbound netsync.Sender) *Library {
	nightTransit := model.NewAlbum("Night Transit", 2011, []*model.Track{
		model.NewTrack("Sodium Lights", 3*time.Minute+59*time.Second, outbound),
		model.NewTrack("Mercury Rail", 4*time.Minute+12*time.Second, outbound),
		model.NewTrack("Last Carriage", 5*time.Minute+2*time.Second, outbound),
	}, outbound)

	fathoms := model.NewAlbum("Fathoms", 2015, []*model.Track{
		model.NewTrack("Undertow", 4*time.Minute+41*time.Second, outbound),
		model.NewTrack("Salt and Signal", 3*time.Minute+28*time.Second, outbound),
	}, outbound)

	lib := New()
	lib.AddArtist(model.NewArtist("Halcyon Drive", 2003, []*model.Album{nightTransit, fathoms}, outbound))
	return lib
}
