// Copyright (c) 2025 Neomantra Corp

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/marketlogio/eventlog"
	"github.com/marketlogio/eventlog/internal/feedsim"
)

var (
	demoBaseDir string
	demoSymbol  string
	demoVenue   string
	demoSource  string
	demoCount   int
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Writes a sample partition file using the synthetic feed generator",
	Long:  "Writes a sample partition file using the synthetic feed generator",
	Run: func(cmd *cobra.Command, args []string) {
		requireNoError(runDemo())
	},
}

func init() {
	demoCmd.Flags().StringVar(&demoBaseDir, "dest", ".", "Destination base directory")
	demoCmd.Flags().StringVar(&demoSymbol, "symbol", "DEMO", "Symbol to simulate")
	demoCmd.Flags().StringVar(&demoVenue, "venue", "SIM", "Venue to record")
	demoCmd.Flags().StringVar(&demoSource, "source", "feedsim", "Source to record")
	demoCmd.Flags().IntVar(&demoCount, "count", 100_000, "Number of synthetic events to write")
}

func runDemo() error {
	p := eventlog.NewPartitioner(demoBaseDir)
	startNs := time.Now().UnixNano()
	if err := p.EnsureDir(demoSymbol, startNs); err != nil {
		return err
	}
	path := p.PathFor(demoSymbol, startNs)

	w, err := eventlog.CreateWriter(path, demoSymbol, eventlog.WriterOptions{
		Venue:  demoVenue,
		Source: demoSource,
	})
	if err != nil {
		return err
	}

	gen := feedsim.New(feedsim.Config{
		Venue:   demoVenue,
		Symbol:  demoSymbol,
		Source:  demoSource,
		StartNs: startNs,
	})

	for i := 0; i < demoCount; i++ {
		if err := w.Append(gen.Next()); err != nil {
			w.Close()
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}

	stats := w.Stats()
	fmt.Fprintf(os.Stderr, "wrote %s events (%s validation errors) to %s\n",
		humanize.Comma(stats.EventsReceived), humanize.Comma(stats.ValidationErrors), path)
	return nil
}
