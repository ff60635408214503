// Command gridwalk solves grid puzzles from an input file and prints the
// answers as "label: value" lines.
//
// Usage:
//
//	gridwalk [flags] <antennas|bytes|maze|patrol|race|regions|robots|trails> <input-file>
//
// Flags:
//
//	-workers N   worker pool size for parallel trials (0 = one per CPU)
//	-v           debug logging to stderr
//	-size N      side length of the memory grid for "bytes" (default 71)
//	-fallen N    number of bytes fallen before the step count (default 1024)
//	-save N      minimum steps a "race" cheat must save (default 100)
//	-width N     torus width for "robots" (default 101)
//	-height N    torus height for "robots" (default 103)
//	-seconds N   seconds the "robots" move before counting (default 100)
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

func main() {
	var cfg config
	flag.IntVar(&cfg.workers, "workers", 0, "worker pool size; 0 means one per CPU")
	flag.IntVar(&cfg.size, "size", 71, "memory grid side length for bytes")
	flag.IntVar(&cfg.fallen, "fallen", 1024, "bytes fallen before counting steps")
	flag.IntVar(&cfg.save, "save", 100, "minimum steps saved by a counted race cheat")
	flag.IntVar(&cfg.width, "width", 101, "torus width for robots")
	flag.IntVar(&cfg.height, "height", 103, "torus height for robots")
	flag.IntVar(&cfg.seconds, "seconds", 100, "seconds robots move before counting")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: gridwalk [flags] <%s> <input-file>\n", commandList())
		flag.PrintDefaults()
	}
	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	cfg.log = log

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	name, path := flag.Arg(0), flag.Arg(1)
	entry := log.WithFields(logrus.Fields{"command": name, "file": path})

	start := time.Now()
	answers, err := solveFile(context.Background(), name, path, cfg)
	if err != nil {
		entry.WithError(err).Fatal("solve failed")
	}
	entry.WithField("elapsed", time.Since(start).String()).Debug("solved")

	for _, a := range answers {
		fmt.Printf("%s: %s\n", a.label, a.value)
	}
}

// openInput is swapped out by tests.
var openInput = func(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// solveFile runs the named solver over the file at path and closes it before
// returning: main exits through logrus Fatal, which skips deferred calls.
func solveFile(ctx context.Context, name, path string, cfg config) ([]answer, error) {
	f, err := openInput(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open input: %w", err)
	}
	defer f.Close()
	return run(ctx, name, f, cfg)
}
