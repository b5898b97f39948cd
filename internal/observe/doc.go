// Package observe implements the origin-tagged update protocol at the core
// of tunesync: observable fields whose mutations are routed by provenance.
//
// # The echo problem
//
// In a bidirectionally synced model, a local edit must be forwarded to the
// remote peer, but an update that arrived FROM the peer must not be
// forwarded back, or the two sides bounce the same change forever. Every
// mutation therefore carries an Origin, and the single choke point for
// writes enforces the rule: only OriginUI forwards outbound.
//
// # Fields and refs
//
// Field[T] is an independently observable field: subscribers are notified
// synchronously on every write, whatever the origin, so a UI observing the
// field refreshes on network updates too. Each field carries a Ref, a
// comparable handle naming "this field of this entity", which is what the
// outbound hook receives.
//
// # Updating
//
//	observe.Update(artist, &artist.YearFounded, 1990, observe.OriginUI)
//	// writes 1990, notifies subscribers, then calls
//	// artist.NotifyOutbound(ref, 1990)
//
//	observe.Update(artist, &artist.YearFounded, 2010, observe.OriginNetwork)
//	// writes 2010, notifies subscribers, no outbound call
//
// # Bindings
//
// Bind and BindWith wrap a field in a get/set pair for UI controls, with
// OriginUI baked in as the default and redundant writes suppressed by
// value equality. BindWith additionally converts to and from an external
// representation such as the text in an input box.
//
// The package is single-actor by design: writes, subscriber fan-out and
// the outbound hook all complete synchronously before Update returns, and
// a sequence of updates yields writes and notifications in issue order.
package observe
