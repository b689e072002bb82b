// Package cli provides the interactive user directory command-line client.
//
// It wires configuration, the local token store and the HTTP API client
// into a read–eval–print loop. Typical session:
//
//	udir> token set
//	udir> me
//	udir> list
//	udir> update 12
//
// The REPL is started via App.Run(ctx), which blocks until the user exits
// or input ends. See runREPL for the command table.
package cli
