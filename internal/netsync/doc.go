// Package netsync is the "network" edge of tunesync.
//
// The outbound side is deliberately a stub: Sender is the extension point
// a real transport would implement, and LogSender just emits a debug line
// per event. The update protocol calls Send synchronously and assumes
// nothing beyond fire-and-forget.
//
// The inbound side reads newline-delimited JSON messages and applies them
// to the model with network origin, so applied updates refresh observers
// without echoing back outbound.
package netsync
