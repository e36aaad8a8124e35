package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"

	"github.com/hailam/chesseval/internal/board"
	"github.com/hailam/chesseval/internal/config"
	"github.com/hailam/chesseval/internal/engine"
	"github.com/hailam/chesseval/internal/eval"
)

var (
	fenFlag    = flag.String("fen", "", "position to analyze (reads FENs from stdin when empty)")
	configPath = flag.String("config", "", "JSON config file")
	hashMB     = flag.Int("hash", -1, "pawn hash size in MB (0 disables, -1 keeps config)")
	strict     = flag.Bool("strict", false, "fail when the side to move has no king")
	verbosity  = flag.Int("v", -1, "log verbosity (-1 keeps config)")
	showBoard  = flag.Bool("board", false, "print the board before the analysis")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}

	stdr.SetVerbosity(cfg.Verbosity)
	logger := stdr.New(log.New(os.Stderr, "", log.LstdFlags)).WithName("chesseval")

	// Start CPU profiling if requested (via flag or environment variable)
	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		logger.Info("CPU profiling enabled", "path", profilePath)
	}

	eng, err := engine.New(cfg, logger)
	if err != nil {
		log.Fatal(err)
	}
	defer eng.Close()

	if *fenFlag != "" {
		if err := analyze(os.Stdout, eng, *fenFlag); err != nil {
			logger.Error(err, "analysis failed", "fen", *fenFlag)
			os.Exit(1)
		}
	} else if err := analyzeStream(os.Stdin, os.Stdout, eng, logger); err != nil {
		logger.Error(err, "reading positions")
		os.Exit(1)
	}

	if stats, ok := eng.PawnStats(); ok {
		fmt.Println(stats)
	}
}

// loadConfig layers the config file, the environment and the flags.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if *hashMB >= 0 {
		cfg.PawnHashMB = *hashMB
	}
	if *strict {
		cfg.StrictKings = true
	}
	if *verbosity >= 0 {
		cfg.Verbosity = *verbosity
	}
	return cfg, cfg.Validate()
}

// analyzeStream handles one FEN per line; blank lines and lines starting
// with # are skipped. A bad position is logged and the stream continues.
func analyzeStream(r io.Reader, w io.Writer, eng *engine.Engine, logger logr.Logger) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := analyze(w, eng, line); err != nil {
			logger.Error(err, "skipping position", "fen", line)
		}
		fmt.Fprintln(w)
	}
	return sc.Err()
}

func analyze(w io.Writer, eng *engine.Engine, fen string) error {
	b, side, err := board.ParseFEN(fen)
	if err != nil {
		return err
	}

	a, err := eng.Analyze(b, side)
	if err != nil {
		return err
	}

	if *showBoard {
		fmt.Fprint(w, b)
	}
	fmt.Fprintf(w, "%s to move: %s\n", side, a.Result.State)
	if a.Result.InCheck {
		attackers := make([]string, len(a.Result.Attackers))
		for i, sq := range a.Result.Attackers {
			attackers[i] = fmt.Sprintf("%s%s", b.At(sq), sq)
		}
		fmt.Fprintf(w, "Checked by: %s\n", strings.Join(attackers, " "))
	}
	fmt.Fprint(w, a.Scores)
	fmt.Fprintf(w, "Assessment: %s\n", eval.Assess(a.Total()))
	return nil
}
