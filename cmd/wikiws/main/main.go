package main

import (
	"os"

	"github.com/arthur-debert/wikiws/cmd/wikiws"
)

func main() {
	rootCmd := wikiws.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		wikiws.RenderError(rootCmd, os.Stderr, err)
		os.Exit(1)
	}
}
