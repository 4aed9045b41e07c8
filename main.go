// curatorator asks artsy.net for the contemporaries of one artist, ranks them
// by how many of that artist's genes they share, and prints an HTML show of
// the results to stdout.
//
// The API token comes from config.json ({"token": "..."}) or
// $CURATORATOR_TOKEN. See the config package for the other settings.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/amonks/curatorator/artsy"
	"github.com/amonks/curatorator/config"
	"github.com/amonks/curatorator/curate"
	"github.com/amonks/curatorator/hal"
	"github.com/amonks/curatorator/logging"
	"github.com/amonks/curatorator/report"
	"github.com/amonks/curatorator/sigctx"
	"github.com/rs/zerolog"
)

// AndyWarhol is the artist every show is curated around.
const AndyWarhol = "4d8b92b34eb68a1b2c0003f4"

func main() {
	cfg, err := config.Load(config.Path())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	if err := run(sigctx.New(), cfg, log, os.Stdout); err != nil && errors.Is(err, context.Canceled) {
		log.Warn().Msg("canceled")
		os.Exit(1)
	} else if err != nil {
		log.Error().Err(err).Msg("failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger, out io.Writer) error {
	api := hal.New(cfg.APIRoot,
		hal.WithToken(cfg.Token),
		hal.WithAccept(cfg.Accept),
		hal.WithLogger(log))

	curator := curate.New(artsy.New(api),
		curate.WithGenePageSize(cfg.GenePageSize),
		curate.WithSimilarCount(cfg.SimilarCount),
		curate.WithSimilarityType(cfg.SimilarityType),
		curate.WithLogger(log))

	target, err := curator.EnrichArtist(ctx, AndyWarhol)
	if err != nil {
		return err
	}

	matches, err := curator.DiscoverSimilar(ctx, target)
	if err != nil {
		return fmt.Errorf("error discovering artists similar to '%s': %w", target.Name, err)
	}

	if err := report.Render(out, report.Page{
		Target:        target,
		Matches:       matches,
		MinSimilarity: cfg.MinSimilarity,
		MinThemeCount: cfg.MinThemeCount,
	}); err != nil {
		return err
	}

	log.Info().
		Str("artist", target.Name).
		Int("similar", len(matches)).
		Msg("done")

	return nil
}
