// Copyright (c) 2025 Neomantra Corp

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marketlogio/eventlog"
)

var catCmd = &cobra.Command{
	Use:   "cat file...",
	Short: "Prints each file's events as newline-delimited JSON",
	Long:  "Prints each file's events as newline-delimited JSON",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		for _, path := range args {
			if err := catFile(path, os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "error: reading %s: %s\n", path, err.Error())
			}
		}
	},
}

func catFile(path string, out *os.File) error {
	r, err := eventlog.OpenReader(path)
	if err != nil {
		return err
	}
	defer r.Close()

	enc := json.NewEncoder(out)
	for {
		e, ok, err := r.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := enc.Encode(e); err != nil {
			return err
		}
	}
}
