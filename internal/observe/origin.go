package observe

// Origin identifies which actor triggered a field update.
//
// The update protocol uses the origin to decide whether a mutation should
// be forwarded to the outbound channel: only OriginUI forwards, so updates
// that arrived from the network (or from initial seeding) never echo back
// out again.
type Origin int

const (
	// OriginInitialization marks updates issued while seeding the model,
	// e.g. when loading a library at startup. Never forwarded outbound.
	OriginInitialization Origin = iota

	// OriginUI marks updates triggered by a local user edit. These are the
	// only updates forwarded to the outbound channel.
	OriginUI

	// OriginNetwork marks updates that arrived from a remote peer. Applying
	// them must not re-forward outbound, or two peers would ping-pong the
	// same change forever.
	OriginNetwork
)

// String returns a short human-readable name for the origin.
func (o Origin) String() string {
	switch o {
	case OriginInitialization:
		return "init"
	case OriginUI:
		return "ui"
	case OriginNetwork:
		return "network"
	default:
		return "unknown"
	}
}
