// Copyright (c) 2025 Neomantra Corp

package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/marketlogio/eventlog"
)

var verifyCmd = &cobra.Command{
	Use:   "verify file...",
	Short: "Checks write_complete and replays each file checking stream invariants",
	Long:  "Checks write_complete and replays each file checking stream invariants",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		failed := false
		for _, path := range args {
			if err := verifyFile(path); err != nil {
				fmt.Fprintf(os.Stderr, "FAIL %s: %s\n", path, err.Error())
				failed = true
			} else {
				fmt.Printf("OK   %s\n", path)
			}
		}
		if failed {
			os.Exit(1)
		}
	},
}

func verifyFile(path string) error {
	r, err := eventlog.OpenReader(path)
	if err != nil {
		return err
	}
	defer r.Close()

	meta := r.Metadata()
	if !meta.WriteComplete {
		return fmt.Errorf("write_complete is false; file may be from a crashed writer")
	}

	validator := eventlog.NewValidator()
	var count int64
	for {
		e, ok, err := r.Next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		if err := validator.Validate(&e); err != nil {
			return fmt.Errorf("row %s: %w", humanize.Comma(count), err)
		}
		validator.Accept(&e)
		count++
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "  %s events, %d row groups touched\n", humanize.Comma(count), r.RowGroupsTouched())
	}
	return nil
}
