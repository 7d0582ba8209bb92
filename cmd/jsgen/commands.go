package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/t14raptor/go-jscode/ast"
	"github.com/t14raptor/go-jscode/cmd/jsgen/internal/config"
	"github.com/t14raptor/go-jscode/generator"
	"github.com/t14raptor/go-jscode/jsstring"
	"github.com/t14raptor/go-jscode/marshal"
	"github.com/t14raptor/go-jscode/token"
)

var errInvalidName = errors.New("invalid variable name")

func newRootCmd(cfg config.Config, logger *slog.Logger) *cobra.Command {
	settings := cfg.Settings()

	root := &cobra.Command{
		Use:           "jsgen",
		Short:         "Generate JavaScript from data documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&settings.MinimumCodeSize, "minimum-code-size", "m", settings.MinimumCodeSize, "Drop comments and optional whitespace")
	root.PersistentFlags().BoolVar(&settings.IndentAndAlign, "indent-and-align", settings.IndentAndAlign, "Put every statement on its own line")
	root.PersistentFlags().StringVar(&settings.Indent, "indent", settings.Indent, "Indentation unit")

	root.AddCommand(
		newLiteralCmd(logger),
		newVarCmd(&settings, logger),
		newEscapeCmd(),
		newUnescapeCmd(),
	)
	return root
}

func newLiteralCmd(logger *slog.Logger) *cobra.Command {
	var format string
	var surroundingVar bool

	cmd := &cobra.Command{
		Use:   "literal [file]",
		Short: "Print a document as a JavaScript literal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := load(cmd, args, format, logger)
			if err != nil {
				return err
			}
			s, err := marshal.ToJSLiteral(v, marshal.WithSurroundingVar(surroundingVar))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "Input format: json, yaml or toml (default from the file extension, else json)")
	cmd.Flags().BoolVar(&surroundingVar, "surrounding-var", false, `Wrap arrays and objects as "var x=...;x"`)
	return cmd
}

func newVarCmd(settings *generator.Settings, logger *slog.Logger) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "var NAME [file]",
		Short: "Print a variable declaration holding a document",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if !jsstring.IsIdentifier(name) || token.IsKeyword(name) {
				return fmt.Errorf("%w: %q", errInvalidName, name)
			}
			v, err := load(cmd, args[1:], format, logger)
			if err != nil {
				return err
			}
			e, err := marshal.ToExpr(v)
			if err != nil {
				return err
			}
			pkg := ast.NewPackage()
			pkg.Var(name, e)
			fmt.Fprintln(cmd.OutOrStdout(), generator.Generate(pkg, *settings))
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "Input format: json, yaml or toml (default from the file extension, else json)")
	return cmd
}

func newEscapeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "escape STRING",
		Short: "Escape a string for use inside a JavaScript string literal",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), jsstring.Escape(args[0]))
		},
	}
}

func newUnescapeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unescape STRING",
		Short: "Decode the escape sequences of a JavaScript string literal body",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), jsstring.Unescape(args[0]))
		},
	}
}

// load reads the named file, or standard input when no file is given, and
// decodes it.
func load(cmd *cobra.Command, args []string, format string, logger *slog.Logger) (any, error) {
	var (
		r    io.Reader = cmd.InOrStdin()
		name           = "-"
	)
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r, name = f, args[0]
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	f, err := detectFormat(format, name)
	if err != nil {
		return nil, err
	}
	logger.Debug("decoding document", "file", name, "format", f, "bytes", len(data))
	return decode(f, data)
}
