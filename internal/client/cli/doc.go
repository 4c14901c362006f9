// Package cli provides the interactive profile client.
//
// It wires configuration, the local token store, the DummyJSON API client
// and the two screen flows behind a line-oriented REPL. The login screen
// exchanges credentials for a token; the profile screen shows the current
// user and offers refresh and logout. A stored token survives restarts, so
// the client opens on the profile screen when one is present.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
