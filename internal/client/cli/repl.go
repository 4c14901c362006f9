package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/gophprofile/internal/client/flows"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Route() flows.Route
	Enter(ctx context.Context, route flows.Route)
	Login(ctx context.Context) error
	Refresh(ctx context.Context) error
	Show(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a read–eval–print loop over the two screens.
//
// Before each prompt it checks the current route and, when it changed,
// enters the new screen. Commands are dispatched by screen:
//
//	/login:
//	  - login            prompt for credentials and sign in
//	  - help             show available commands
//	  - exit | quit      leave the program
//
//	/profile:
//	  - refresh | r      fetch the user again
//	  - show             print the current screen state
//	  - logout           forget the token and return to /login
//	  - help             show available commands
//	  - exit | quit      leave the program
//
// Handlers report their own outcomes; their errors are not printed here.
// The loop exits on EOF, on exit/quit, or when ctx is done.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	var entered flows.Route
	for {
		if ctx.Err() != nil {
			return
		}

		route := a.Route()
		if route != entered {
			entered = route
			a.Enter(ctx, route)
		}

		fmt.Fprintf(w, "gophprofile %s> ", statusFn())
		line, err := readLine(reader)
		if err != nil {
			fmt.Fprintln(w)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		if cmd == "exit" || cmd == "quit" {
			fmt.Fprintln(w, "Bye!")
			return
		}

		switch route {
		case flows.RouteProfile:
			switch cmd {
			case "help":
				profileHelp(w)
			case "r", "refresh":
				_ = a.Refresh(ctx)
			case "show":
				_ = a.Show(ctx)
			case "logout":
				_ = a.Logout(ctx)
			default:
				fmt.Fprintln(w, "Unknown command:", cmd)
			}

		default:
			switch cmd {
			case "help":
				loginHelp(w)
			case "login":
				_ = a.Login(ctx)
			default:
				fmt.Fprintln(w, "Unknown command:", cmd)
			}
		}
	}
}
