package main

import (
	"time"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/bestfirst/bytefall"
	"github.com/katalvlaran/bestfirst/search"
)

func bytesCmd() *commander.Command {
	var (
		c    common
		opts = bytefall.DefaultOptions()
	)
	cmd := &commander.Command{
		UsageLine: "bytes [options]",
		Short:     "shortest walk through falling bytes and the first blocking byte",
		Long: `
bytes reads one "x,y" coordinate per line and prints the minimum number of
steps from 0,0 to size,size after the first -fallen bytes, then the first
byte that cuts the exit off.

	$ pathfind bytes -in bytes.txt [-size 70] [-fallen 1024]

`,
		Flag: *flag.NewFlagSet("pathfind-bytes", flag.ExitOnError),
	}
	c.register(&cmd.Flag)
	cmd.Flag.IntVar(&opts.Size, "size", opts.Size, "largest coordinate of the memory space")
	cmd.Flag.IntVar(&opts.Fallen, "fallen", opts.Fallen, "bytes already fallen")

	cmd.Run = func(_ *commander.Command, _ []string) error {
		s, err := c.open()
		if err != nil {
			return err
		}
		points, err := bytefall.ParsePoints(s.lines)
		if err != nil {
			return err
		}
		if opts.Fallen > len(points) {
			log.WithField("fallen", opts.Fallen).Warnf("only %d bytes in input", len(points))
			opts.Fallen = len(points)
		}

		start := time.Now()
		route, err := bytefall.MinSteps(points, opts.Fallen, opts)
		if err != nil {
			s.observe("bytes", search.Stats{}, time.Since(start), err)
			return err
		}
		s.observe("bytes", route.Stats, time.Since(start), nil)
		s.cost("bytes", route.Steps)
		s.printf("steps: %d\n", route.Steps)

		start = time.Now()
		b, err := bytefall.FirstBlocking(points, opts)
		if err != nil {
			s.observe("bytes-blocking", search.Stats{}, time.Since(start), err)
			return err
		}
		// b.Index is a byte position, not a cost: no last_cost sample
		s.observe("bytes-blocking", b.Stats, time.Since(start), nil)
		log.WithFields(logrus.Fields{
			"index":    b.Index,
			"searches": b.Searches,
		}).Debug("exit cut off")
		s.printf("blocker: %v\n", b.Point)
		return s.close()
	}
	return cmd
}
