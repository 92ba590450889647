package main

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// setupLogger настраивает logrus: экран идёт в stdout, логи в stderr.
func setupLogger(level string, out io.Writer) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetOutput(out)
	parsed, err := log.ParseLevel(level)
	if err != nil {
		parsed = log.InfoLevel
	}
	// по умолчанию CLI молчит, пока не попросили -v
	if parsed == log.InfoLevel {
		parsed = log.WarnLevel
	}
	log.SetLevel(parsed)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
