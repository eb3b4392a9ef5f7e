package main

import (
	"flag"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	var (
		inname, verb, confname string
		prompt, history        string
		echo, interactive, v   bool
	)
	flag.StringVar(&inname, "in", "", "input file with one expression per line (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.StringVar(&confname, "config", os.Getenv("CALCOLATRICE_CONFIG"), "TOML config file (default $CALCOLATRICE_CONFIG)")
	flag.StringVar(&prompt, "prompt", "> ", "interactive prompt")
	flag.StringVar(&history, "history", "", "interactive history file")
	flag.BoolVar(&echo, "echo", false, "print parsed expressions")
	flag.BoolVar(&interactive, "i", false, "read expressions interactively")
	flag.BoolVar(&v, "v", false, "log failed evaluations")
	flag.Parse()
	if v {
		logrus.SetLevel(logrus.DebugLevel)
	}

	cfg, err := loadConfig(confname)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load config")
	}
	// Flags given explicitly override the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "fmt":
			cfg.Format = verb
		case "prompt":
			cfg.Prompt = prompt
		case "history":
			cfg.History = history
		case "echo":
			cfg.Echo = echo
		}
	})

	ev := newEvaluator(os.Stdout, cfg, logrus.StandardLogger())
	if interactive {
		if err := ev.interactive(cfg.Prompt, cfg.History); err != nil {
			logrus.WithError(err).Fatal("Failed to read input")
		}
		return
	}

	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to open input")
	}
	if f != nil {
		err := ev.lines(f)
		f.Close()
		if err != nil {
			logrus.WithError(err).Fatal("Failed to read input")
		}
	}
	for _, arg := range flag.Args() {
		ev.eval(arg)
	}
	if ev.failed > 0 {
		os.Exit(1)
	}
}

func infile(inname string, std bool) (io.ReadCloser, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return io.NopCloser(os.Stdin), nil
	}
	return nil, nil
}
