package library

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"tunesync/internal/model"
	"tunesync/internal/netsync"
	"tunesync/internal/observe"
)

// Library is the session root: the owned artist trees plus a routing
// table that lets inbound network messages address any editable field by
// entity id and field name.
type Library struct {
	// Artists are the root entities, in insertion order.
	Artists []*model.Artist

	appliers map[uuid.UUID]map[string]func(any) error
}

// New creates an empty library.
func New() *Library {
	return &Library{
		appliers: make(map[uuid.UUID]map[string]func(any) error),
	}
}

// AddArtist takes ownership of an artist tree and registers every entity
// in it for inbound routing.
func (l *Library) AddArtist(artist *model.Artist) {
	l.Artists = append(l.Artists, artist)

	l.appliers[artist.ID()] = map[string]func(any) error{
		"name": func(v any) error {
			s, err := asString(v)
			if err != nil {
				return err
			}
			observe.Update(artist, &artist.Name, s, observe.OriginNetwork)
			return nil
		},
		"yearFounded": func(v any) error {
			n, err := asInt(v)
			if err != nil {
				return err
			}
			observe.Update(artist, &artist.YearFounded, n, observe.OriginNetwork)
			return nil
		},
	}

	for _, album := range artist.Albums {
		l.registerAlbum(album)
	}
}

func (l *Library) registerAlbum(album *model.Album) {
	l.appliers[album.ID()] = map[string]func(any) error{
		"title": func(v any) error {
			s, err := asString(v)
			if err != nil {
				return err
			}
			observe.Update(album, &album.Title, s, observe.OriginNetwork)
			return nil
		},
		"releaseYear": func(v any) error {
			n, err := asInt(v)
			if err != nil {
				return err
			}
			observe.Update(album, &album.ReleaseYear, n, observe.OriginNetwork)
			return nil
		},
	}

	for _, track := range album.Tracks {
		l.registerTrack(track)
	}
}

func (l *Library) registerTrack(track *model.Track) {
	l.appliers[track.ID()] = map[string]func(any) error{
		"title": func(v any) error {
			s, err := asString(v)
			if err != nil {
				return err
			}
			observe.Update(track, &track.Title, s, observe.OriginNetwork)
			return nil
		},
		"duration": func(v any) error {
			d, err := asDuration(v)
			if err != nil {
				return err
			}
			observe.Update(track, &track.Duration, d, observe.OriginNetwork)
			return nil
		},
	}
}

// Apply implements netsync.Applier: it routes an inbound message to the
// addressed field and applies the value with network origin, so applied
// updates never echo back outbound.
//
// Unknown entities or fields return an error; the feed reports and skips
// them.
func (l *Library) Apply(msg netsync.Message) error {
	fields, ok := l.appliers[msg.Entity]
	if !ok {
		return fmt.Errorf("unknown entity %s", msg.Entity)
	}
	apply, ok := fields[msg.Field]
	if !ok {
		return fmt.Errorf("entity %s has no field %q", msg.Entity, msg.Field)
	}
	return apply(msg.Value)
}

// asString coerces a decoded JSON value to a string.
func asString(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("expected string value, got %T", v)
	}
	return s, nil
}

// asInt coerces a decoded JSON value to an int. JSON numbers decode as
// float64; whole ints are also accepted for messages built in-process.
func asInt(v any) (int, error) {
	switch n := v.(type) {
	case float64:
		return int(n), nil
	case int:
		return n, nil
	default:
		return 0, fmt.Errorf("expected numeric value, got %T", v)
	}
}

// asDuration coerces a decoded JSON value, in seconds, to a duration.
func asDuration(v any) (time.Duration, error) {
	n, err := asInt(v)
	if err != nil {
		return 0, err
	}
	return time.Duration(n) * time.Second, nil
}
