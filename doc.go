// Package bestfirst is a generic best-first search engine for implicit
// graphs, plus the grid puzzles it was built to solve.
//
// 🚀 What is bestfirst?
//
//	A small, generic library that brings together:
//		• Dijkstra and A* over any comparable state type
//		• Tie-tracking mode that keeps every optimal predecessor
//		• Path reconstruction and "every state on some optimal path" queries
//		• Grid helpers: points, directions, rectangular grids
//		• Puzzle drivers and a CLI with Prometheus counters
//
// Under the hood, everything is organized under these subpackages:
//
//	search/         the engine: Problem, Search, Result, predecessor Index
//	grid/           Point, Dir, Grid[T] parsing and rendering
//	maze/           reindeer maze: turn/step costs, seats on every best route
//	bytefall/       falling-byte memory grid: shortest walk, first blocker
//	racetrack/      single-lane track: cheats through walls by radius
//	metrics/        Prometheus recorder for search counters
//	cmd/pathfind/   command-line front end for the puzzles
//
// Quick ASCII example:
//
//	    A──1──B
//	    │     │
//	    1     1
//	    │     │
//	    C──1──D
//
//	res, _ := search.Search(problem, search.WithAllPaths())
//	res.Cost            // 2
//	res.OptimalStates() // {A, B, C, D}
//
// Getting started:
//
//	go get github.com/katalvlaran/bestfirst
package bestfirst
