package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	strict     bool
	checkInput bool
)

var rootCmd = &cobra.Command{
	Use:   "textstream",
	Short: "textstream - Package text into lines that survive lossy text storage",
	Long: `textstream encodes text into short, self-delimiting lines which a text stream
may store without changing them (no trailing whitespace, bounded line length), and
decodes such lines back into the original text.`,
	SilenceUsage: true,
}

var encodeCmd = &cobra.Command{
	Use:   "encode [L]",
	Short: "Encode stdin into frame lines on stdout",
	Long: fmt.Sprintf(`Encode stdin into frame lines on stdout.

L is the maximum number of data bytes per line, 1 to 250 (default 250).
A value out of range is ignored unless --strict is given.

Environment:
  %s  default line size
  %s  log level (debug, info, warn, error, off)`, envLineSize, envLogLevel),
	Args:          cobra.MaximumNArgs(1),
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup()
		if err != nil {
			return err
		}
		lineSize, err := resolveLineSize(cfg, args, os.Stderr)
		if err != nil {
			return err
		}
		warnTerminal()
		return encodeStream(os.Stdin, os.Stdout, lineSize, checkInput)
	},
}

var decodeCmd = &cobra.Command{
	Use:           "decode",
	Short:         "Decode frame lines on stdin into the original text on stdout",
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := setup(); err != nil {
			return err
		}
		warnTerminal()
		return decodeStream(os.Stdin, os.Stdout)
	},
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that stdin only contains bytes the encoder can carry",
	Long: `Check that stdin only contains printing characters, tabs and newlines.

Prints a summary to stdout and fails if any other byte is found.`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := setup(); err != nil {
			return err
		}
		warnTerminal()
		return checkStream(os.Stdin, os.Stdout)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML config file (line_size, strict, log_level)")

	encodeCmd.Flags().BoolVar(&strict, "strict", false, "Fail on an invalid line size instead of using the default")
	encodeCmd.Flags().BoolVar(&checkInput, "check", false, "Warn about input bytes outside the text stream alphabet")

	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(checkCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
