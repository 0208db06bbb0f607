package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Touch()
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Status(ctx context.Context) error
	ListBookings(ctx context.Context) error
	AddBooking(ctx context.Context) error
	EditBooking(ctx context.Context) error
	DeleteBooking(ctx context.Context) error
	ListBoats(ctx context.Context) error
	ListUsers(ctx context.Context) error
	AddUser(ctx context.Context) error
	EditUser(ctx context.Context) error
	DeleteUser(ctx context.Context) error
	ListTeams(ctx context.Context) error
	AddTeam(ctx context.Context) error
	EditTeam(ctx context.Context) error
	DeleteTeam(ctx context.Context) error
	ListTargets(ctx context.Context) error
	ShowConfig(ctx context.Context) error
	PairWhatsApp(ctx context.Context) error
	UnpairWhatsApp(ctx context.Context) error
	RefreshAll(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the fleet client.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Every dispatched command counts as user activity: the monitor is touched
// before the handler runs, so an idle client wakes and refreshes before the
// command sees the collections.
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("fleet %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		a.Touch()

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Bookings: (l)ist, add, edit, delete")
				printlnFn("Fleet:    boats, users, adduser, edituser, deluser, targets, config")
				printlnFn("Teams:    teams, addteam, editteam, delteam")
				printlnFn("WhatsApp: pair, unpair")
				printlnFn("Other:    refresh, status, logout, exit")
			} else {
				printlnFn("Available commands: login, status, config, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "status":
			_ = a.Status(ctx)

		case "l", "list":
			_ = a.ListBookings(ctx)

		case "add":
			_ = a.AddBooking(ctx)

		case "edit":
			_ = a.EditBooking(ctx)

		case "delete":
			_ = a.DeleteBooking(ctx)

		case "boats":
			_ = a.ListBoats(ctx)

		case "users":
			_ = a.ListUsers(ctx)

		case "adduser":
			_ = a.AddUser(ctx)

		case "edituser":
			_ = a.EditUser(ctx)

		case "deluser":
			_ = a.DeleteUser(ctx)

		case "teams":
			_ = a.ListTeams(ctx)

		case "addteam":
			_ = a.AddTeam(ctx)

		case "editteam":
			_ = a.EditTeam(ctx)

		case "delteam":
			_ = a.DeleteTeam(ctx)

		case "targets":
			_ = a.ListTargets(ctx)

		case "config":
			_ = a.ShowConfig(ctx)

		case "pair":
			_ = a.PairWhatsApp(ctx)

		case "unpair":
			_ = a.UnpairWhatsApp(ctx)

		case "refresh":
			_ = a.RefreshAll(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
