// Command pathfind solves grid puzzles with the best-first search engine.
//
//	$ pathfind maze  -in maze.txt
//	$ pathfind bytes -in bytes.txt -size 70 -fallen 1024
//	$ pathfind race  -in track.txt -radius 20 -min 100 -metrics
package main

import (
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func root() *commander.Command {
	return &commander.Command{
		UsageLine: "pathfind <command> [options]",
		Short:     "solve grid puzzles with best-first search",
		Subcommands: []*commander.Command{
			mazeCmd(),
			bytesCmd(),
			raceCmd(),
		},
		Flag: *flag.NewFlagSet("pathfind", flag.ExitOnError),
	}
}

func main() {
	if err := root().Dispatch(os.Args[1:]); err != nil {
		log.WithError(err).Error("pathfind failed")
		os.Exit(1)
	}
}
