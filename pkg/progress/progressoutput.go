// Package progress writes mobyprogress updates as plain text lines.
package progress

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/pcj/mobyprogress"
)

// NewProgressOutput returns an Output writing to out.  On a terminal,
// successive counter updates rewrite the current line.
func NewProgressOutput(out io.Writer) mobyprogress.Output {
	return &progressOutput{out: out, terminal: isTerminal(out)}
}

type progressOutput struct {
	mu       sync.Mutex
	out      io.Writer
	terminal bool
}

// WriteProgress implements mobyprogress.Output.
func (o *progressOutput) WriteProgress(prog mobyprogress.Progress) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if prog.Message != "" {
		_, err := fmt.Fprintf(o.out, "%s: %s\n", prog.ID, prog.Message)
		return err
	}

	line := prog.Action
	if prog.Total > 0 {
		line = fmt.Sprintf("%s %d/%d", line, prog.Current, prog.Total)
		if prog.Units != "" {
			line += " " + prog.Units
		}
	}
	endl := "\n"
	if o.terminal && !prog.LastUpdate {
		endl = "\r"
	}
	_, err := io.WriteString(o.out, line+endl)
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
