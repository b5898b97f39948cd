package library

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bogem/id3v2"
	"golang.org/x/sync/errgroup"

	"tunesync/internal/convert"
	"tunesync/internal/model"
	"tunesync/internal/netsync"
)

// Loader seeds a library from a directory of tagged .mp3 files.
//
// Tag reads are fanned out across a bounded number of goroutines; the
// model itself is built afterwards on the calling goroutine, keeping the
// update protocol single-actor.
type Loader struct {
	maxConcurrent int
	outbound      netsync.Sender
}

// NewLoader creates a Loader. maxConcurrent bounds concurrent tag reads;
// values below 1 are treated as 1. The outbound sink is handed to every
// constructed entity.
func NewLoader(maxConcurrent int, outbound netsync.Sender) *Loader {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &Loader{maxConcurrent: maxConcurrent, outbound: outbound}
}

// trackInfo is the metadata read from one file's ID3 tag.
type trackInfo struct {
	path     string
	artist   string
	album    string
	title    string
	year     int
	duration time.Duration
}

// Load scans dir recursively for .mp3 files, reads their ID3 tags and
// builds a library grouped artist → album → track. Files are grouped in
// path order, so track order follows filename order within an album.
//
// Files without a readable tag are skipped. All constructed field values
// land with initialization origin: seeding emits nothing outbound.
func (ld *Loader) Load(ctx context.Context, dir string) (*Library, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".mp3") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}
	sort.Strings(paths)

	// Each goroutine writes its own slot, so no lock is needed.
	infos := make([]*trackInfo, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(ld.maxConcurrent)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			info, err := readTag(path)
			if err != nil {
				// Unreadable tags are skipped, not fatal.
				return nil
			}
			infos[i] = info
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return ld.build(infos), nil
}

// readTag reads the frames we care about from one file.
func readTag(path string) (*trackInfo, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, err
	}
	defer tag.Close()

	title := strings.TrimSpace(tag.Title())
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	info := &trackInfo{
		path:   path,
		artist: strings.TrimSpace(tag.Artist()),
		album:  strings.TrimSpace(tag.Album()),
		title:  title,
		year:   convert.ParseInt(tag.GetTextFrame("TYER").Text),
	}

	// TLEN carries the length in milliseconds.
	if ms := convert.ParseInt(tag.GetTextFrame("TLEN").Text); ms > 0 {
		info.duration = time.Duration(ms) * time.Millisecond
	}

	if info.artist == "" {
		info.artist = "Unknown Artist"
	}
	if info.album == "" {
		info.album = "Unknown Album"
	}

	return info, nil
}

// build groups track infos into the model tree, preserving first-seen
// order of artists and albums.
func (ld *Loader) build(infos []*trackInfo) *Library {
	lib := New()

	type albumKey struct{ artist, album string }

	var artistOrder []string
	albumsByArtist := make(map[string][]*model.Album)
	albums := make(map[albumKey]*model.Album)

	for _, info := range infos {
		if info == nil {
			continue
		}

		key := albumKey{info.artist, info.album}
		album, ok := albums[key]
		if !ok {
			album = model.NewAlbum(info.album, info.year, nil, ld.outbound)
			albums[key] = album
			if _, seen := albumsByArtist[info.artist]; !seen {
				artistOrder = append(artistOrder, info.artist)
			}
			albumsByArtist[info.artist] = append(albumsByArtist[info.artist], album)
		}

		album.AddTrack(model.NewTrack(info.title, info.duration, ld.outbound))
	}

	for _, name := range artistOrder {
		// Founding year is not present in ID3 tags; it stays zero until
		// a UI or network update supplies it.
		lib.AddArtist(model.NewArtist(name, 0, albumsByArtist[name], ld.outbound))
	}

	return lib
}
