package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/arnavsurve/tinyc/internal/compiler"
	"github.com/arnavsurve/tinyc/internal/compiler/emitter"
	"github.com/arnavsurve/tinyc/internal/compiler/parser"
)

const (
	promptMain  = "tinyc> "
	promptCont  = "  ...> "
	historyFile = ".tinyc_history"
)

// repl: evaluate statements against one persistent session
var ReplCmd = &cobra.Command{
	Use:   "repl",
	Short: "Evaluate statements interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepl(cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

type replState struct {
	sess *parser.Session
	opts compiler.Options
}

func newReplState(opts compiler.Options) *replState {
	return &replState{sess: parser.NewSession(), opts: opts}
}

// eval parses src against a copy of the session and commits the copy only
// when the parse succeeds. incomplete is true when the input ran out in the
// middle of a statement.
func (r *replState) eval(src string) (res *compiler.Result, incomplete bool) {
	probe := r.sess.Clone()
	res = compiler.ParseSource(src, probe, r.opts)
	if res.OK {
		r.sess = probe
		return res, false
	}

	var d *parser.Diagnostic
	if errors.As(res.Err(), &d) && d.AtEOF && !res.Halted {
		return res, true
	}
	return res, false
}

// command runs a ':' command. quit reports a request to leave.
func (r *replState) command(line string, w io.Writer) (quit bool, err error) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case ":quit", ":q":
		return true, nil
	case ":reset":
		r.sess.Reset()
		fmt.Fprintln(w, hintText("session cleared"))
	case ":tables":
		f, err := emitter.ParseFormat(cfg.Output.Format)
		if err != nil {
			return false, err
		}
		em := emitter.NewEmitter(f)
		out := em.Emit(r.sess.Snapshot())
		if errs := em.Errors(); len(errs) > 0 {
			return false, fmt.Errorf("emitter errors: %v", errs)
		}
		fmt.Fprint(w, out)
	default:
		fmt.Fprintln(w, hintText("unknown command. Try :tables, :reset or :quit"))
	}
	return false, nil
}

func runRepl(out, errOut io.Writer) error {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	r := newReplState(compiler.Options{Logger: logger})
	for {
		src, res, ok := readByParseProbe(ln, r)
		if !ok {
			fmt.Fprintln(out)
			return nil
		}

		if res == nil {
			if strings.TrimSpace(src) == "" {
				continue
			}
			quit, err := r.command(src, out)
			if err != nil {
				fmt.Fprintln(errOut, errorText(err.Error()))
			}
			if quit {
				return nil
			}
			continue
		}

		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
		if err := res.Err(); err != nil {
			fmt.Fprintln(errOut, errorText(err.Error()))
		}
	}
}

// readByParseProbe keeps prompting while the accumulated input parses as
// incomplete. A blank continuation line submits the input as it stands.
// Commands come back with a nil result; ok is false at end of input.
func readByParseProbe(ln *liner.State, r *replState) (src string, res *compiler.Result, ok bool) {
	var b strings.Builder

	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", nil, false
		}
		if err != nil {
			return "", nil, true
		}

		if b.Len() == 0 && strings.HasPrefix(strings.TrimSpace(line), ":") {
			return line, nil, true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src = b.String()
		if strings.TrimSpace(src) == "" {
			return "", nil, true
		}

		var incomplete bool
		res, incomplete = r.eval(src)
		if incomplete && strings.TrimSpace(line) != "" {
			continue
		}
		return src, res, true
	}
}
