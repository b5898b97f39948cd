package observe

// Updatable is implemented by every entity whose fields participate in the
// origin-tagged update protocol.
//
// The single required method is the outbound notification hook. The shared
// update and binding logic lives in the free functions Update, Bind and
// BindWith, so entity types only decide what "forward this change
// outbound" means for them (in this system: hand it to a netsync sink).
type Updatable interface {
	// NotifyOutbound is invoked by Update, after the field write, when and
	// only when the triggering origin is OriginUI. It must be
	// fire-and-forget: no return value, no error.
	NotifyOutbound(ref Ref, value any)
}

// Update writes value into the field and, iff origin is OriginUI, forwards
// the change to the owner's outbound notification hook.
//
// The write is unconditional; equality suppression belongs to bindings
// (see Bind), not to the protocol. Field subscribers are notified during
// the write, before the outbound hook runs, so both subscribers and the
// hook observe the new value. The hook fires at most once per call.
//
// Update never fails: the field pointer is statically tied to its entity,
// and T is the field's declared type.
func Update[T any](owner Updatable, f *Field[T], value T, origin Origin) {
	f.write(value)
	if origin == OriginUI {
		owner.NotifyOutbound(f.ref, value)
	}
}
