package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	"mtranspile/pkg/translator"
)

const (
	historyFile = ".mrepl_history"
	promptMain  = "m> "
	promptCont  = ".. "
)

var (
	banner   = "mtranspile REPL: MATLAB-subset in, C++ out\nCtrl+C cancels input, Ctrl+D exits. Type :help for commands."
	helpText = `
REPL commands:
  :quit      Exit the REPL
  :reset     Forget declared identifiers and translated lines
  :symbols   Show the declared identifiers
  :program   Print the whole C++ program translated so far
`
)

func red(s string) string    { return "\x1b[31m" + s + "\x1b[0m" }
func yellow(s string) string { return "\x1b[33m" + s + "\x1b[0m" }
func green(s string) string  { return "\x1b[32m" + s + "\x1b[0m" }

func main() {
	os.Exit(repl())
}

func repl() int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer saveHistory(ln, histPath)

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		shutdown(ln, histPath, os.Exit)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	session := translator.NewSession()

	for {
		code, ok := readByParseProbe(ln, promptMain, promptCont)
		if !ok {
			fmt.Println()
			break
		}

		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			if quit := handleCommand(session, trimmed); quit {
				return 0
			}
			continue
		}

		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))

		res, err := session.Translate(code)
		if err != nil {
			var syntaxErr *translator.SyntaxError
			if errors.As(err, &syntaxErr) {
				warn(syntaxErr.Diagnostics)
			}
			fmt.Fprintln(os.Stderr, red(err.Error()))
			continue
		}
		warn(res.Diagnostics)
		for _, frag := range res.Body {
			fmt.Println(green(frag))
		}
	}

	return 0
}

func warn(diags []*translator.LexicalError) {
	for _, d := range diags {
		fmt.Fprintln(os.Stderr, yellow("warning: "+d.Error()))
	}
}

// lineState is the part of *liner.State needed to shut down cleanly.
type lineState interface {
	WriteHistory(w io.Writer) (int, error)
	Close() error
}

func saveHistory(ln lineState, histPath string) {
	if f, err := os.Create(histPath); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}
}

// shutdown handles a termination signal. Deferred calls do not run on
// os.Exit, so history is saved and the terminal restored here.
func shutdown(ln lineState, histPath string, exit func(int)) {
	saveHistory(ln, histPath)
	_ = ln.Close()
	exit(130)
}

func handleCommand(session *translator.Session, cmd string) (quit bool) {
	switch strings.ToLower(cmd) {
	case ":quit", ":q":
		return true
	case ":reset":
		session.Reset()
		fmt.Println("session reset")
	case ":symbols":
		fmt.Print(session.Symbols())
	case ":program":
		fmt.Print(session.Program())
	case ":help":
		fmt.Print(helpText)
	default:
		fmt.Println("unknown command. Type :help for commands.")
	}
	return false
}

// readByParseProbe keeps reading lines while the accumulated input only
// fails because a construct is still open.
func readByParseProbe(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			b.Reset()
			continue
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") {
			return src, true
		}
		tokens, _ := translator.Lex(src)
		if _, perr := translator.Parse(tokens, src); translator.IsIncomplete(perr) {
			continue
		}
		return src, true
	}
}
