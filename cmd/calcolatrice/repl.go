package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/sirupsen/logrus"

	"github.com/zephyrtronium/calcolatrice"
)

// evaluator evaluates expressions and prints their results or errors.
type evaluator struct {
	out  io.Writer
	verb string
	echo bool
	log  *logrus.Logger
	// failed counts the expressions that were errors.
	failed int
}

func newEvaluator(out io.Writer, cfg config, log *logrus.Logger) *evaluator {
	return &evaluator{
		out:  out,
		verb: cfg.Format + "\n",
		echo: cfg.Echo,
		log:  log,
	}
}

func (ev *evaluator) eval(src string) {
	e, err := calcolatrice.Parse(src)
	if err == nil {
		if ev.echo {
			fmt.Fprintf(ev.out, "%v : ", e)
		}
		var r float64
		r, err = e.Eval()
		if err == nil {
			fmt.Fprintf(ev.out, ev.verb, r)
			return
		}
	}
	ev.failed++
	fmt.Fprintln(ev.out, err)
	entry := ev.log.WithField("expr", src)
	var ce *calcolatrice.Error
	if errors.As(err, &ce) {
		entry = entry.WithFields(logrus.Fields{"kind": ce.Kind.String(), "col": ce.Col})
	}
	entry.Debug("Evaluation failed")
}

// lines evaluates each non-blank line of in.
func (ev *evaluator) lines(in io.Reader) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		ev.eval(line)
	}
	return sc.Err()
}

// interactive runs a line-editing prompt until EOF, or until an interrupt on
// an empty line.
func (ev *evaluator) interactive(prompt, history string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      prompt,
		HistoryFile: history,
	})
	if err != nil {
		return err
	}
	defer rl.Close()
	ev.out = rl.Stdout()
	for {
		line, err := rl.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			if line == "" {
				return nil
			}
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ev.eval(line)
	}
}
