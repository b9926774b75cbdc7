// Command perft runs a perft node count against a position, for validating
// and benchmarking move generation. It is excluded from the corechess
// package proper; it exists only to drive internal/perft from the shell.
package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"
	"time"

	corechess "github.com/arborchess/corechess"
	"github.com/arborchess/corechess/cli"
	"github.com/arborchess/corechess/internal/perft"
)

func main() {
	corechess.InitAttackTables()
	corechess.InitZobristKeys()

	depth := flag.Int("depth", 2, "perft depth")
	fen := flag.String("fen", "", "FEN to start from (defaults to the standard starting position)")
	verbose := flag.Bool("verbose", false, "print per-category move statistics")
	divide := flag.Bool("divide", false, "print per-root-move subtree node counts")
	cpuprofile := flag.String("cpuprofile", "", "file to write a CPU profile to")
	memprofile := flag.String("memprofile", "", "file to write a heap profile to")
	flag.Parse()

	var b *corechess.Board
	var err error
	if *fen == "" {
		b = corechess.NewBoard()
	} else {
		b, err = corechess.ParseFEN(*fen)
		if err != nil {
			log.Fatalf("parsing FEN: %v", err)
		}
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err)
		}
		defer pprof.StopCPUProfile()
	}

	log.Printf("Root position:\n%s", cli.FormatBoard(b))

	start := time.Now()

	switch {
	case *divide:
		for uci, nodes := range perft.Divide(b, *depth) {
			log.Printf("%s %d", uci, nodes)
		}
	case *verbose:
		var stats perft.Stats
		stats.Nodes = perft.CountVerbose(b, *depth, &stats)
		log.Printf("depth=%d nodes=%d captures=%d ep=%d castles=%d promotions=%d "+
			"checks=%d double_checks=%d checkmates=%d",
			*depth, stats.Nodes, stats.Captures, stats.EPCaptures, stats.Castles,
			stats.Promotions, stats.Checks, stats.DoubleChecks, stats.Checkmates)
	default:
		nodes := perft.Count(b, *depth)
		log.Printf("Nodes reached: %d", nodes)
	}

	log.Printf("Elapsed time: %s", time.Since(start))

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatal(err)
		}
	}
}
