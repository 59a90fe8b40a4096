// Copyright (c) 2025 Neomantra Corp

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marketlogio/eventlog"
)

var metadataCmd = &cobra.Command{
	Use:   "metadata file...",
	Short: "Prints each file's footer metadata as JSON",
	Long:  "Prints each file's footer metadata as JSON",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		for _, path := range args {
			if err := printMetadata(path); err != nil {
				fmt.Fprintf(os.Stderr, "error: reading %s: %s\n", path, err.Error())
			}
		}
	},
}

func printMetadata(path string) error {
	r, err := eventlog.OpenReader(path)
	if err != nil {
		return err
	}
	defer r.Close()

	jstr, err := json.Marshal(r.Metadata())
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}
	fmt.Printf("%s\n", jstr)
	return nil
}
