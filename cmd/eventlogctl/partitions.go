// Copyright (c) 2025 Neomantra Corp

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marketlogio/eventlog"
)

var partitionsCmd = &cobra.Command{
	Use:   "partitions base-dir [symbol]",
	Short: "Lists symbols, or a symbol's partition files, under base-dir",
	Long:  "Lists symbols, or a symbol's partition files, under base-dir",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		p := eventlog.NewPartitioner(args[0])
		if len(args) == 1 {
			symbols, err := p.ListSymbols()
			requireNoError(err)
			for _, s := range symbols {
				fmt.Println(s)
			}
			return
		}
		files, err := p.ListFiles(args[1])
		requireNoError(err)
		for _, f := range files {
			fmt.Println(f)
		}
		if len(files) == 0 {
			fmt.Fprintf(os.Stderr, "no partitions found for %s under %s\n", args[1], args[0])
		}
	},
}
