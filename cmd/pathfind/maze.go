package main

import (
	"time"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/katalvlaran/bestfirst/maze"
	"github.com/katalvlaran/bestfirst/search"
)

func mazeCmd() *commander.Command {
	var (
		c    common
		opts = maze.DefaultOptions()
		draw bool
	)
	cmd := &commander.Command{
		UsageLine: "maze [options]",
		Short:     "lowest reindeer score and seats on every best route",
		Long: `
maze reads a grid of '#', '.', 'S' and 'E' and prints the lowest score from
S to E and the number of tiles on at least one lowest-scoring route.

	$ pathfind maze -in maze.txt [-turn 1000] [-step 1] [-draw]

`,
		Flag: *flag.NewFlagSet("pathfind-maze", flag.ExitOnError),
	}
	c.register(&cmd.Flag)
	cmd.Flag.IntVar(&opts.TurnCost, "turn", opts.TurnCost, "cost of a 90° turn")
	cmd.Flag.IntVar(&opts.StepCost, "step", opts.StepCost, "cost of one step forward")
	cmd.Flag.BoolVar(&draw, "draw", false, "print the maze with best-route tiles marked 'O'")

	cmd.Run = func(_ *commander.Command, _ []string) error {
		s, err := c.open()
		if err != nil {
			return err
		}
		start := time.Now()
		sol, err := maze.Solve(s.lines, opts)
		if err != nil {
			s.observe("maze", search.Stats{}, time.Since(start), err)
			return err
		}
		s.observe("maze", sol.Stats, time.Since(start), nil)
		s.cost("maze", sol.Cost)
		s.printf("score: %d\n", sol.Cost)
		s.printf("tiles: %d\n", sol.Tiles)
		if draw {
			s.printf("%s", sol.Rendered)
		}
		return s.close()
	}
	return cmd
}
