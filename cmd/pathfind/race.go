package main

import (
	"sort"
	"time"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/katalvlaran/bestfirst/racetrack"
	"github.com/katalvlaran/bestfirst/search"
)

func raceCmd() *commander.Command {
	var (
		c       common
		radius  int
		minSave int
	)
	cmd := &commander.Command{
		UsageLine: "race [options]",
		Short:     "count race track cheats saving at least -min picoseconds",
		Long: `
race reads a single-lane track of '#', '.', 'S' and 'E' and prints the
length of the honest lap and the number of cheats of at most -radius moves
that save at least -min picoseconds.

	$ pathfind race -in track.txt [-radius 2] [-min 100]

`,
		Flag: *flag.NewFlagSet("pathfind-race", flag.ExitOnError),
	}
	c.register(&cmd.Flag)
	cmd.Flag.IntVar(&radius, "radius", 2, "longest cheat in moves")
	cmd.Flag.IntVar(&minSave, "min", 100, "minimum saving to count")

	cmd.Run = func(_ *commander.Command, _ []string) error {
		s, err := c.open()
		if err != nil {
			return err
		}
		start := time.Now()
		r, err := racetrack.Savings(s.lines, radius)
		if err != nil {
			s.observe("race", search.Stats{}, time.Since(start), err)
			return err
		}
		s.observe("race", r.Stats, time.Since(start), nil)
		s.cost("race", r.Length)

		if c.verbose {
			saved := make([]int, 0, len(r.Saved))
			for k := range r.Saved {
				saved = append(saved, k)
			}
			sort.Ints(saved)
			for _, k := range saved {
				log.WithField("saved", k).Debugf("%d cheats", r.Saved[k])
			}
		}
		s.printf("lap: %d\n", r.Length)
		s.printf("cheats: %d\n", r.AtLeast(minSave))
		return s.close()
	}
	return cmd
}
