// Package session owns the persistent session token: the single string slot
// written on login, read on every protected fetch and deleted on logout.
//
// Store keeps the slot in the local SQLite metadata table so it survives
// restarts of the client; MemoryStore is a process-local variant for tests
// and ephemeral runs. Both satisfy flows.TokenStore.
package session
