package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEvaluator(cfg config) (*evaluator, *bytes.Buffer, *test.Hook) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	var out bytes.Buffer
	return newEvaluator(&out, cfg, log), &out, hook
}

func TestEvaluatorLines(t *testing.T) {
	ev, out, hook := newTestEvaluator(defaultConfig())
	in := strings.NewReader("1 + 1\n\n  \n5!\nroot 2 4\n10 / 0\nsin 0\n")
	require.NoError(t, ev.lines(in))
	assert.Equal(t, "2\n120\n2\n4: division by zero\n0\n", out.String())
	assert.Equal(t, 1, ev.failed)

	require.Len(t, hook.Entries, 1)
	e := hook.LastEntry()
	assert.Equal(t, logrus.DebugLevel, e.Level)
	assert.Equal(t, "10 / 0", e.Data["expr"])
	assert.Equal(t, "DivisionByZero", e.Data["kind"])
	assert.Equal(t, 4, e.Data["col"])
}

func TestEvaluatorEcho(t *testing.T) {
	cfg := defaultConfig()
	cfg.Echo = true
	cfg.Format = "%.2f"
	ev, out, _ := newTestEvaluator(cfg)
	ev.eval("2 ^ 0.5")
	ev.eval("INV 4")
	ev.eval("bar 5")
	assert.Equal(t, "(2 ^ 0.5) : 1.41\ninv(4) : 0.25\n1: unknown function \"bar\"\n", out.String())
	assert.Equal(t, 1, ev.failed)
}

func TestEvaluatorQuiet(t *testing.T) {
	ev, out, hook := newTestEvaluator(defaultConfig())
	ev.log.SetLevel(logrus.InfoLevel)
	ev.eval("")
	assert.Equal(t, "empty expression\n", out.String())
	assert.Equal(t, 1, ev.failed)
	assert.Empty(t, hook.Entries)
}
