package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	touches int
	calls   []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Touch()           { f.touches++ }

func (f *fakeExec) record(name string) error { f.calls = append(f.calls, name); return nil }

func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) Status(ctx context.Context) error        { return f.record("status") }
func (f *fakeExec) ListBookings(ctx context.Context) error  { return f.record("list") }
func (f *fakeExec) AddBooking(ctx context.Context) error    { return f.record("add") }
func (f *fakeExec) EditBooking(ctx context.Context) error   { return f.record("edit") }
func (f *fakeExec) DeleteBooking(ctx context.Context) error { return f.record("delete") }
func (f *fakeExec) ListBoats(ctx context.Context) error     { return f.record("boats") }
func (f *fakeExec) ListUsers(ctx context.Context) error     { return f.record("users") }
func (f *fakeExec) AddUser(ctx context.Context) error       { return f.record("adduser") }
func (f *fakeExec) EditUser(ctx context.Context) error      { return f.record("edituser") }
func (f *fakeExec) DeleteUser(ctx context.Context) error    { return f.record("deluser") }
func (f *fakeExec) ListTeams(ctx context.Context) error     { return f.record("teams") }
func (f *fakeExec) AddTeam(ctx context.Context) error       { return f.record("addteam") }
func (f *fakeExec) EditTeam(ctx context.Context) error      { return f.record("editteam") }
func (f *fakeExec) DeleteTeam(ctx context.Context) error    { return f.record("delteam") }
func (f *fakeExec) ListTargets(ctx context.Context) error   { return f.record("targets") }
func (f *fakeExec) ShowConfig(ctx context.Context) error    { return f.record("config") }
func (f *fakeExec) PairWhatsApp(ctx context.Context) error  { return f.record("pair") }
func (f *fakeExec) UnpairWhatsApp(ctx context.Context) error {
	return f.record("unpair")
}
func (f *fakeExec) RefreshAll(ctx context.Context) error { return f.record("refresh") }

func silencePrintln(t *testing.T) {
	t.Helper()
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"list",
		"add",
		"teams",
		"refresh",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "list", "add", "teams", "refresh"}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
}

func TestRunREPL_EveryCommandTouchesTheMonitor(t *testing.T) {
	silencePrintln(t)

	// help, an unknown command and a dispatched one all count as activity.
	input := strings.NewReader("help\nfoobar\nstatus\nexit\n")
	exec := &fakeExec{loggedIn: true}

	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(input))

	if exec.touches != 4 {
		t.Fatalf("want 4 touches, got %d", exec.touches)
	}
}

func TestRunREPL_UnknownAndQuit(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("frobnicate\nquit\n")
	exec := &fakeExec{loggedIn: true}

	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewScanner(input))

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
