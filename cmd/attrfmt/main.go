package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/bjaus/attrfmt"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

var (
	errorsFile string
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:   "attrfmt",
	Short: "Render attribute-aware format templates",
	Long: `attrfmt renders printf-style templates with embedded text-attribute
directives (%F, %B, %C) to the terminal as ANSI-colored output.`,
}

var renderCmd = &cobra.Command{
	Use:   "render <template> [args...]",
	Short: "Format a template and print the result",
	Long: `Format a template against the given arguments and print the result.
Arguments that parse as integers are passed as integers, anything else
as a string. Attribute directives render as ANSI colors unless
--no-color is set.`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmtr, err := newFormatter()
		if err != nil {
			return err
		}
		operands := make([]any, 0, len(args)-1)
		for _, a := range args[1:] {
			if n, err := strconv.ParseInt(a, 0, 64); err == nil {
				operands = append(operands, n)
			} else {
				operands = append(operands, a)
			}
		}
		if noColor {
			fmtr.Format(attrfmt.WriterSink(os.Stdout), args[0], operands...)
			fmt.Println()
			return nil
		}
		w := attrfmt.NewANSIWriter(os.Stdout)
		fmtr.Format(w, args[0], operands...)
		if err := w.Close(); err != nil {
			return err
		}
		fmt.Println()
		return nil
	},
}

var errorsCmd = &cobra.Command{
	Use:   "errors",
	Short: "List the active error table",
	Long:  `List the codes and messages the %e conversion resolves against.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmtr, err := newFormatter()
		if err != nil {
			return err
		}
		table := fmtr.Errors
		if table == nil {
			table = attrfmt.DefaultErrors
		}
		for _, e := range table.Entries() {
			fmt.Printf("%3d  %s\n", e.Code, e.Message)
		}
		return nil
	},
}

var directiveRows = [][2]string{
	{"%c", "character (low byte of an integer argument)"},
	{"%s", "string; nil renders as (null)"},
	{"%d", "signed decimal"},
	{"%u", "unsigned decimal"},
	{"%o", "unsigned octal"},
	{"%x", "unsigned hexadecimal"},
	{"%p", "pointer (0x-prefixed hexadecimal)"},
	{"%e", "error code via the error table"},
	{"%%", "literal percent sign"},
	{"%F<t>", "foreground toggle: B/G/R/I set, b/g/r/i clear"},
	{"%B<t>", "background toggle: B/G/R/I set, b/g/r/i clear"},
	{"%C", "clear all attributes"},
	{"-", "left-justify (numerals pad with '-')"},
	{"0", "pad with zeros"},
	{"<n>, *", "field width, then precision"},
	{".", "pin width so the next number is precision"},
	{"#", "replace non-printable string bytes with '?'"},
	{"l", "widen the numeric argument to 64 bits"},
}

var directivesCmd = &cobra.Command{
	Use:   "directives",
	Short: "Show the directive reference",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		width := 0
		for _, row := range directiveRows {
			if w := runewidth.StringWidth(row[0]); w > width {
				width = w
			}
		}
		for _, row := range directiveRows {
			fmt.Printf("%s  %s\n", runewidth.FillRight(row[0], width), row[1])
		}
	},
}

func newFormatter() (*attrfmt.Formatter, error) {
	if errorsFile == "" {
		return &attrfmt.Formatter{}, nil
	}
	f, err := os.Open(errorsFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	table, err := attrfmt.LoadErrorTable(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", errorsFile, err)
	}
	return &attrfmt.Formatter{Errors: table}, nil
}

func main() {
	rootCmd.PersistentFlags().StringVar(&errorsFile, "errors", "", "YAML file mapping error codes to messages")
	renderCmd.Flags().BoolVar(&noColor, "no-color", false, "disable ANSI attribute rendering")
	rootCmd.AddCommand(renderCmd, errorsCmd, directivesCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
