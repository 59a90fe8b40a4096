// Copyright (c) 2025 Neomantra Corp

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

///////////////////////////////////////////////////////////////////////////////

var verbose bool

func requireNoError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err.Error())
		os.Exit(1)
	}
}

func requireNoErrorWithoutPrint(err error) {
	if err != nil {
		os.Exit(1)
	}
}

///////////////////////////////////////////////////////////////////////////////

func main() {
	cobra.OnInitialize()

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(metadataCmd)
	rootCmd.AddCommand(catCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(partitionsCmd)
	rootCmd.AddCommand(demoCmd)

	err := rootCmd.Execute()
	requireNoErrorWithoutPrint(err)
}

///////////////////////////////////////////////////////////////////////////////

var rootCmd = &cobra.Command{
	Use:   "eventlogctl",
	Short: "eventlogctl inspects and produces EventLog partition files",
	Long:  "eventlogctl inspects and produces EventLog partition files",
}
