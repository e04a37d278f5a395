// Command cellophane lists the wrapper kinds linked into this binary and
// checks that their release functions resolve on the host.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/cellophane"
	"github.com/wippyai/cellophane/guest"
	"github.com/wippyai/cellophane/handle"

	_ "github.com/wippyai/cellophane/libc"
	_ "github.com/wippyai/cellophane/win32"
)

func main() {
	var (
		list        = flag.Bool("list", false, "List wrapper kinds and their release functions")
		probe       = flag.Bool("probe", false, "Resolve every release function on this host")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Log releases to stderr")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		handle.SetLogger(logger.Named("handle"))
		guest.SetLogger(logger.Named("guest"))
	}

	styled := term.IsTerminal(int(os.Stdout.Fd()))
	bindings := cellophane.Bindings()

	switch {
	case *interactive:
		if err := runInteractive(bindings); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case *probe:
		if failed := probeBindings(os.Stdout, bindings, styled); failed > 0 {
			fmt.Fprintf(os.Stderr, "%d of %d release functions did not resolve\n", failed, len(bindings))
			os.Exit(1)
		}
	case *list:
		printBindings(os.Stdout, bindings, styled)
	default:
		fmt.Fprintln(os.Stderr, "Usage: cellophane -list")
		fmt.Fprintln(os.Stderr, "       cellophane -probe")
		fmt.Fprintln(os.Stderr, "       cellophane -i  (interactive mode)")
		os.Exit(1)
	}
}

var headers = []string{"KIND", "FUNCTION", "LIBRARY", "CONTEXT"}

func row(b cellophane.Binding) []string {
	return []string{b.Kind, b.Function, b.Library, b.Context}
}

// printBindings writes the binding table. Styling is only applied when
// writing to a terminal.
func printBindings(w io.Writer, bindings []cellophane.Binding, styled bool) {
	if len(bindings) == 0 {
		fmt.Fprintln(w, "No wrapper kinds registered.")
		return
	}

	if styled {
		rows := make([][]string, len(bindings))
		for i, b := range bindings {
			rows[i] = row(b)
		}
		t := table.New().
			Border(lipgloss.NormalBorder()).
			BorderStyle(helpStyle).
			Headers(headers...).
			Rows(rows...).
			StyleFunc(func(r, c int) lipgloss.Style {
				switch {
				case r == table.HeaderRow:
					return titleStyle
				case c == 1:
					return funcStyle
				case c == 2:
					return typeStyle
				}
				return lipgloss.NewStyle()
			})
		fmt.Fprintln(w, t)
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, b := range bindings {
		fmt.Fprintln(tw, strings.Join(row(b), "\t"))
	}
	tw.Flush()
}

// probeBindings resolves every binding and reports each result. It returns
// the number of failures.
func probeBindings(w io.Writer, bindings []cellophane.Binding, styled bool) int {
	ok, fail := "ok", "FAIL"
	if styled {
		ok, fail = resultStyle.Render(ok), errorStyle.Render(fail)
	}

	failed := 0
	for _, b := range bindings {
		if err := b.Resolve(); err != nil {
			failed++
			fmt.Fprintf(w, "%-4s %s: %s!%s: %v\n", fail, b.Kind, b.Library, b.Function, err)
			continue
		}
		fmt.Fprintf(w, "%-4s %s: %s!%s\n", ok, b.Kind, b.Library, b.Function)
	}
	return failed
}
