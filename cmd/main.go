package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"github.com/spf13/pflag"

	"github.com/luca-patrignani/showdown/domain/poker"
	"github.com/luca-patrignani/showdown/ledger"
)

var demoBlack = []string{"2H", "3D", "5S", "9C", "KD"}
var demoWhite = []string{"2C", "3H", "4S", "8C", "AH"}

type config struct {
	black          string
	white          string
	file           string
	strict         bool
	fullHousePairs bool
	verify         bool
	useLedger      bool
	debug          bool
	workers        int
}

func parseFlags(args []string, output io.Writer) (config, error) {
	var cfg config
	fs := pflag.NewFlagSet("showdown", pflag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVarP(&cfg.black, "black", "b", "", "black hand, five space or comma separated cards (e.g. \"2H 3D 5S 9C KD\")")
	fs.StringVarP(&cfg.white, "white", "w", "", "white hand, five space or comma separated cards")
	fs.StringVarP(&cfg.file, "file", "f", "", "match file with one \"Black: ... White: ...\" line per match, - for stdin")
	fs.BoolVar(&cfg.strict, "strict", false, "reject cards with an unrecognized rank")
	fs.BoolVar(&cfg.fullHousePairs, "full-house-pairs", false, "break full house ties on the pair")
	fs.BoolVar(&cfg.verify, "verify", false, "cross-check every match against standard poker rules")
	fs.BoolVar(&cfg.useLedger, "ledger", false, "record matches in a signed ledger and print it")
	fs.IntVar(&cfg.workers, "workers", 0, "matches adjudicated concurrently (default: number of CPUs)")
	fs.BoolVar(&cfg.debug, "debug", false, "log every tie-break step")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() > 0 {
		return config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if (cfg.black == "") != (cfg.white == "") {
		return config{}, fmt.Errorf("--black and --white must be given together")
	}
	if cfg.black != "" && cfg.file != "" {
		return config{}, fmt.Errorf("--file cannot be combined with --black and --white")
	}
	return cfg, nil
}

func (cfg config) refereeOptions(logger *slog.Logger) []poker.RefereeOption {
	opts := []poker.RefereeOption{poker.WithLogger(logger), poker.WithWorkers(cfg.workers)}
	if cfg.strict {
		opts = append(opts, poker.WithStrictRanks())
	}
	if cfg.fullHousePairs {
		opts = append(opts, poker.WithFullHousePairTieBreak())
	}
	if cfg.verify {
		opts = append(opts, poker.WithStandardCheck())
	}
	return opts
}

// collectMatches gathers the matches to play from the flags, the match file or
// the demonstration match.
func collectMatches(cfg config, stdin io.Reader) ([]entry, error) {
	switch {
	case cfg.black != "":
		return []entry{{match: poker.NewMatch(splitTokens(cfg.black), splitTokens(cfg.white)), source: "flags"}}, nil
	case cfg.file == "-":
		return readMatches(stdin, "stdin")
	case cfg.file != "":
		f, err := os.Open(cfg.file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return readMatches(f, cfg.file)
	}
	return []entry{{match: poker.NewMatch(demoBlack, demoWhite), source: "demo"}}, nil
}

// recordMatches appends every adjudicated match to a new ledger and verifies
// the resulting chain.
func recordMatches(entries []entry, results []poker.Result) (*ledger.Ledger, error) {
	l := ledger.NewLedger(ledger.NewSigner())
	for i, res := range results {
		if res.Err != nil {
			continue
		}
		record := ledger.NewRecord(res.Match.ID, res.Match.Black, res.Match.White, res.Outcome)
		if _, err := l.Append(record, map[string]string{"source": entries[i].source}); err != nil {
			return nil, err
		}
	}
	if err := l.Verify(); err != nil {
		return nil, fmt.Errorf("ledger verification failed: %w", err)
	}
	return l, nil
}

func run(ctx context.Context, args []string, stdin io.Reader) int {
	cfg, err := parseFlags(args, os.Stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		pterm.Error.Println(err)
		return 2
	}

	level := pterm.LogLevelWarn
	if cfg.debug {
		level = pterm.LogLevelDebug
	}
	// Create a new slog logger with the PTerm handler
	logger := slog.New(pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(level)))

	entries, err := collectMatches(cfg, stdin)
	if err != nil {
		logger.Error("failed to read matches", "error", err)
		return 1
	}
	if len(entries) == 0 {
		pterm.Warning.Println("no matches to play")
		return 0
	}
	if entries[0].source == "demo" {
		pterm.Info.Println("No hands given, playing the demonstration match")
	}

	referee := poker.NewReferee(cfg.refereeOptions(logger)...)
	matches := make([]poker.Match, len(entries))
	for i, e := range entries {
		matches[i] = e.match
	}
	results := referee.PlayAll(ctx, matches)
	printResults(entries, results)

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}
	if len(results) > 1 {
		pterm.DefaultTable.WithHasHeader().WithData(summaryData(results)).Render()
	}

	if cfg.useLedger {
		l, err := recordMatches(entries, results)
		if err != nil {
			logger.Error("failed to record matches", "error", err)
			return 1
		}
		pterm.DefaultTable.WithHasHeader().WithData(ledgerData(l.Blocks())).Render()
		pterm.Success.Printfln("Ledger of %d blocks verified", l.Len())
	}

	if failed > 0 {
		pterm.Error.Printfln("%d of %d matches failed", failed, len(results))
		return 1
	}
	return 0
}

func main() {
	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Show", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("down", pterm.FgDarkGray.ToStyle()),
	).Render()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin)
	stop()
	os.Exit(code)
}
