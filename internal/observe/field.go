package observe

import (
	"fmt"

	"github.com/google/uuid"
)

// Ref identifies a specific field on a specific entity instance.
//
// Ref is a plain comparable value: two refs are equal exactly when they
// name the same field of the same entity. The update protocol passes refs
// to the outbound notification hook so the receiver knows which field
// changed without inspecting the value.
//
// Example:
//
//	ref := observe.NewRef("artist", artistID, "name")
//	fmt.Println(ref) // artist(1b4e28ba).name
type Ref struct {
	// Entity is the entity kind, e.g. "artist", "album", "track".
	Entity string

	// ID is the identity of the entity instance the field belongs to.
	ID uuid.UUID

	// Field is the field name within the entity, e.g. "title".
	Field string
}

// NewRef creates a Ref for the given entity kind, instance id and field name.
func NewRef(entity string, id uuid.UUID, field string) Ref {
	return Ref{Entity: entity, ID: id, Field: field}
}

// String renders the ref as "kind(shortid).field" for logs and debug output.
func (r Ref) String() string {
	id := r.ID.String()
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("%s(%s).%s", r.Entity, id, r.Field)
}

// Field is an independently observable field of an entity.
//
// A Field holds the current value and a list of subscribers that are
// invoked synchronously on every write, regardless of which origin
// triggered it. Partial updates stay partial: writing one field never
// notifies subscribers of any other field.
//
// All writes go through Update; Field deliberately exposes no public
// setter, so the origin-tagged protocol is the single mutation path.
//
// Example:
//
//	title := observe.NewField(observe.NewRef("track", id, "title"), "")
//	title.Subscribe(func(v string) { fmt.Println("now:", v) })
type Field[T any] struct {
	ref   Ref
	value T
	subs  []func(T)
}

// NewField creates a Field with the given ref and initial value.
//
// The initial value is stored directly without notifying subscribers;
// there are none yet at construction time. Seeding an already-observed
// field should go through Update with OriginInitialization instead.
func NewField[T any](ref Ref, initial T) Field[T] {
	return Field[T]{ref: ref, value: initial}
}

// Get returns the field's current value.
func (f *Field[T]) Get() T {
	return f.value
}

// Ref returns the handle identifying this field.
func (f *Field[T]) Ref() Ref {
	return f.ref
}

// Subscribe registers fn to be called synchronously after every write,
// with the new value. Subscribers see the value already stored, so reading
// the field inside fn observes the same value fn was called with.
func (f *Field[T]) Subscribe(fn func(T)) {
	f.subs = append(f.subs, fn)
}

// write stores the value and fans out to subscribers, in registration order.
func (f *Field[T]) write(value T) {
	f.value = value
	for _, fn := range f.subs {
		fn(value)
	}
}
