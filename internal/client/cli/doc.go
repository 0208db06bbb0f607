// Package cli is the interactive front end of the fleet client. It wires the
// session store, the per-kind collection stores and the activity monitor
// together and exposes them as a small REPL. Every command counts as user
// activity and feeds the monitor.
package cli
