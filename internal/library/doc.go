// Package library holds the session root: the owned artist trees, the
// routing table for inbound network messages, and the seed loader that
// builds a library from the ID3 tags of a music directory.
//
// # Routing
//
// Library implements netsync.Applier. Adding an artist registers every
// entity in its tree by id, so an inbound message addressing
// (entity, field) lands on the right observe.Update call with network
// origin.
//
// # Seeding
//
//	loader := library.NewLoader(8, out)
//	lib, err := loader.Load(ctx, "~/Music")
//
// The loader reads TPE1/TALB/TIT2/TYER/TLEN frames, groups tracks into
// albums into artists, and constructs everything with initialization
// origin, so a freshly seeded library has emitted nothing outbound.
package library
