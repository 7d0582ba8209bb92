// Command jsgen turns JSON, YAML and TOML documents into JavaScript.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/t14raptor/go-jscode/ast"
	"github.com/t14raptor/go-jscode/cmd/jsgen/internal/config"
)

func main() {
	cfg, err := config.Load(nil)
	if err != nil {
		logError(err)
		os.Exit(1)
	}

	logger := cfg.Logger(os.Stderr)
	ast.SetLogger(logger)

	if err := newRootCmd(cfg, logger).Execute(); err != nil {
		logError(err)
		os.Exit(1)
	}
}

func logError(err error) {
	boldRed := color.New(color.FgRed, color.Bold)
	boldRed.Fprint(os.Stderr, "error: ")
	fmt.Fprintln(os.Stderr, color.RedString(err.Error()))
}
