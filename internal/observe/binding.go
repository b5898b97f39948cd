package observe

// Binding is a get/set accessor pair bridging a model field to a UI
// control. E is the external representation the control works with; for
// plain bindings it is the field's own type, for converted bindings it is
// whatever the conversion functions produce (typically a string).
type Binding[E any] struct {
	// Get returns the field's current value in external representation.
	Get func() E

	// Set applies a new external value. Values equal to the current one
	// are dropped without a write or an outbound notification.
	Set func(E)
}

// Bind produces a Binding directly over a field's own type.
//
// The origin defaults to OriginUI, which is what a UI control wants: edits
// committed through the binding are forwarded outbound. Pass an explicit
// origin to reuse the equality-suppression behavior for other callers.
//
// Set compares the incoming value against the field's current value and
// does nothing when they are equal, so redundant edits produce neither an
// observable change nor an outbound notification. T must be comparable;
// that is the precondition of this overload.
//
// Example:
//
//	b := observe.Bind(artist, &artist.Name)
//	b.Set("Nine Inch Nails") // update + outbound
//	b.Set("Nine Inch Nails") // suppressed
func Bind[T comparable](owner Updatable, f *Field[T], origin ...Origin) Binding[T] {
	o := OriginUI
	if len(origin) > 0 {
		o = origin[0]
	}
	return Binding[T]{
		Get: func() T { return f.Get() },
		Set: func(v T) {
			if v == f.Get() {
				return
			}
			Update(owner, f, v, o)
		},
	}
}

// BindWith produces a Binding that converts between the field's type T and
// an external representation E, e.g. adapting an int or time.Duration
// field to the text a UI input works with.
//
// to and from must be pure. from must be total: malformed external input
// maps to a defined default (by converter policy, the zero value) rather
// than failing, so Set either proceeds with the default or is suppressed
// by the equality check when the field already holds it.
//
// Example:
//
//	b := observe.BindWith(album, &album.ReleaseYear, convert.FormatInt, convert.ParseInt)
//	b.Get()      // "1999"
//	b.Set("2003") // update + outbound
func BindWith[T comparable, E any](owner Updatable, f *Field[T], to func(T) E, from func(E) T, origin ...Origin) Binding[E] {
	o := OriginUI
	if len(origin) > 0 {
		o = origin[0]
	}
	return Binding[E]{
		Get: func() E { return to(f.Get()) },
		Set: func(ext E) {
			v := from(ext)
			if v == f.Get() {
				return
			}
			Update(owner, f, v, o)
		},
	}
}
