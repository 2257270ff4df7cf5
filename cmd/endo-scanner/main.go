package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cloudx-io/endoscan/config"
	"github.com/cloudx-io/endoscan/core"
	"github.com/cloudx-io/endoscan/marketapi"
	"github.com/cloudx-io/endoscan/report"
	"github.com/cloudx-io/endoscan/selection"
)

// Exit codes.
const (
	exitOK               = 0
	exitInvalidSelection = 1
	exitRuntimeError     = 2
)

// AuctionFetcher retrieves one snapshot of market auctions.
type AuctionFetcher interface {
	FetchAuctions(ctx context.Context) ([]core.Auction, error)
}

type scanner struct {
	fetcher AuctionFetcher
	logger  zerolog.Logger
	stdout  io.Writer
	format  string
	xlsx    string
	now     func() time.Time
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("endo-scanner", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		priceMode  = fs.String("price", "", "Price mode: 1|starting, 2|buyout, 3|both (skips the menu)")
		maxMastery = fs.String("max-mastery", "", "Maximum mastery rank (empty for no limit)")
		seller     = fs.String("seller", "", "Seller status: 1|ingame, 2|online, 3|both (empty for no filter)")
		once       = fs.Bool("once", false, "Run the menu once instead of looping")
		format     = fs.String("format", "text", "Output format: text or json")
		xlsxPath   = fs.String("xlsx", "", "Also write results to this .xlsx file")
		envFile    = fs.String("env", ".env", "Environment file to load")
		verbose    = fs.Bool("verbose", false, "Enable debug logging")
		help       = fs.Bool("help", false, "Show usage information")
	)

	if err := fs.Parse(args); err != nil {
		return exitInvalidSelection
	}
	if *help {
		showUsage(stdout)
		return exitOK
	}
	if *format != "text" && *format != "json" {
		fmt.Fprintf(stderr, "Error: unknown output format %q (use text or json)\n", *format)
		return exitInvalidSelection
	}

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Logger()

	if err := config.LoadDotEnv(*envFile); err != nil {
		logger.Warn().Err(err).Str("file", *envFile).Msg("ignoring env file")
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return exitRuntimeError
	}

	s := &scanner{
		fetcher: marketapi.NewClient(cfg.AuctionsURL,
			marketapi.WithLanguage(cfg.Language),
			marketapi.WithPlatform(cfg.Platform),
			marketapi.WithTimeout(cfg.Timeout),
			marketapi.WithLogger(logger),
		),
		logger: logger,
		stdout: stdout,
		format: *format,
		xlsx:   *xlsxPath,
		now:    time.Now,
	}

	ctx := context.Background()

	if *priceMode != "" {
		filters, err := selection.FromFlags(*priceMode, *maxMastery, *seller, cfg.DetailFilters)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitInvalidSelection
		}
		if err := s.runOnce(ctx, filters); err != nil {
			return exitRuntimeError
		}
		return exitOK
	}

	return s.interactive(ctx, selection.NewPrompter(stdin, stdout, cfg.DetailFilters), *once, stderr)
}

// interactive prompts for filters and runs the pipeline until input ends or an
// answer is invalid. A failed fetch ends only that run unless once is set.
func (s *scanner) interactive(ctx context.Context, prompter *selection.Prompter, once bool, stderr io.Writer) int {
	for {
		filters, err := prompter.Collect()
		switch {
		case errors.Is(err, io.EOF):
			return exitOK
		case errors.Is(err, selection.ErrInvalidSelection):
			fmt.Fprintf(stderr, "Invalid option! %v\n", err)
			return exitInvalidSelection
		case err != nil:
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitRuntimeError
		}

		runErr := s.runOnce(ctx, filters)
		if once {
			if runErr != nil {
				return exitRuntimeError
			}
			return exitOK
		}
	}
}

// runOnce fetches one snapshot, ranks it under filters and writes the results.
func (s *scanner) runOnce(ctx context.Context, filters core.FilterConfig) error {
	runID := uuid.NewString()
	log := s.logger.With().Str("run_id", runID).Logger()

	auctions, err := s.fetcher.FetchAuctions(ctx)
	if err != nil {
		var fetchErr *marketapi.FetchError
		if errors.As(err, &fetchErr) && fetchErr.StatusCode != 0 {
			log.Error().Int("status", fetchErr.StatusCode).Str("body", fetchErr.Body).Msg("fetch failed")
		} else {
			log.Error().Err(err).Msg("fetch failed")
		}
		return err
	}

	result, err := core.RunPipeline(auctions, filters)
	if err != nil {
		log.Error().Err(err).Msg("pipeline failed")
		return err
	}

	rep := report.New(runID, s.now().UTC(), filters, len(auctions), result)
	log.Info().
		Int("auctions", rep.AuctionsFetched).
		Int("scored", rep.RecordsScored).
		Int("excluded", len(rep.Excluded)).
		Int("shown", len(rep.Results)).
		Str("results_hash", rep.ResultsHash).
		Msg("run complete")

	if s.format == "json" {
		err = report.RenderJSON(s.stdout, rep)
	} else {
		err = report.RenderText(s.stdout, rep.Results)
	}
	if err != nil {
		log.Error().Err(err).Msg("writing results failed")
		return err
	}

	if s.xlsx != "" {
		if err := report.WriteXLSX(s.xlsx, rep.Results); err != nil {
			log.Error().Err(err).Msg("xlsx export failed")
			return err
		}
		log.Info().Str("path", s.xlsx).Msg("results exported")
	}
	return nil
}

func showUsage(w io.Writer) {
	fmt.Fprintln(w, "Endo per Platinum Auction Scanner")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Ranks warframe.market riven auctions by estimated Endo per platinum.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  endo-scanner [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Without --price the scanner shows a menu and repeats it after each run.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  --price <1|2|3>                   Starting, Buyout or Both (skips the menu)")
	fmt.Fprintln(w, "  --max-mastery <n>                 Highest accepted mastery rank")
	fmt.Fprintln(w, "  --seller <1|2|3>                  In game, Online or Both")
	fmt.Fprintln(w, "  --once                            Show the menu a single time")
	fmt.Fprintln(w, "  --format <text|json>              Output format (default: text)")
	fmt.Fprintln(w, "  --xlsx <path>                     Also export results to a spreadsheet")
	fmt.Fprintln(w, "  --env <path>                      Environment file (default: .env)")
	fmt.Fprintln(w, "  --verbose                         Debug logging")
	fmt.Fprintln(w, "  --help                            Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  WFM_AUCTIONS_URL                  Auctions endpoint")
	fmt.Fprintln(w, "  WFM_LANGUAGE, WFM_PLATFORM        Request tags (default: en, pc)")
	fmt.Fprintln(w, "  WFM_TIMEOUT_SECONDS               Request timeout (default: 30)")
	fmt.Fprintln(w, "  WFM_DETAIL_FILTERS                Offer mastery/seller filters (default: true)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit Codes:")
	fmt.Fprintln(w, "  0 - Success")
	fmt.Fprintln(w, "  1 - Invalid selection")
	fmt.Fprintln(w, "  2 - Fetch or runtime error")
}
