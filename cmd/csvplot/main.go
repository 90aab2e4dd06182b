// Package main provides the CLI entry point for csvplot.
package main

import (
	"os"

	"github.com/ukaji3/csvplot-go/cmd/csvplot/commands"
	"github.com/ukaji3/csvplot-go/pkg/csvplot"
	"github.com/ukaji3/csvplot-go/pkg/csvplot/window"
)

func main() {
	rootCmd := commands.NewRootCmd(func(opts csvplot.Options) csvplot.Display {
		return window.New(opts.Title, opts.Width, opts.Height)
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
