package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = func(args ...any) { fmt.Println(args...) }

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests provide a stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	CheckIn(ctx context.Context) error
	CheckOut(ctx context.Context) error
	BreakIn(ctx context.Context) error
	BreakOut(ctx context.Context) error
	History(ctx context.Context) error
	WhoAmI(ctx context.Context) error
}

// runREPL reads a line, parses the first token as the command and
// dispatches to methods on 'a'. Unknown commands are reported back. The
// loop exits on scanner EOF or when the user types "exit" or "quit".
//
// Errors returned by handlers are ignored here; handlers print their own
// outcome. This keeps the loop focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	printlnFn("punchclock (type 'help' for commands)")

	for {
		fmt.Printf("punchclock %s> ", statusFn())
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: checkin, checkout, breakin, breakout, (h)istory, whoami, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "checkin":
			_ = a.CheckIn(ctx)

		case "checkout":
			_ = a.CheckOut(ctx)

		case "breakin":
			_ = a.BreakIn(ctx)

		case "breakout":
			_ = a.BreakOut(ctx)

		case "h", "history", "list":
			_ = a.History(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
