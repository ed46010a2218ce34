package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"extproc/adapters/report"
	"extproc/adapters/source"
	"extproc/app"
	"extproc/domain/extension"
	"extproc/internal"
	"extproc/internal/config"
	apperrors "extproc/internal/errors"
)

func main() {
	// .env is optional; a bare environment falls back to MS Forms defaults
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type runFlags struct {
	inputPath     string
	fromClipboard bool
	fromStdin     bool
	delimiter     string
	outputDir     string
	noAdjust      bool

	emailColumn      string
	nameColumn       string
	assignmentColumn string
	dateColumn       string
}

func newRootCmd() *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:   "extproc",
		Short: "Process due-date extension requests from an MS Forms export",
		Long: `extproc ingests a tab- or comma-delimited export of due-date change
requests, validates and deduplicates the rows, snaps requested dates to the
next Sunday, and writes one extension CSV per assignment plus a summary
report.

Input comes from a file (--input, .txt/.tsv/.csv/.xlsx), the clipboard
(--clipboard), or a paste on stdin (--stdin).

Example: extproc --input requests.txt --output-dir ./extensions_output`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.inputPath, "input", "i", "", "read the export from a file")
	cmd.Flags().BoolVar(&flags.fromClipboard, "clipboard", false, "read the export from the clipboard")
	cmd.Flags().BoolVar(&flags.fromStdin, "stdin", false, "read the export from stdin until EOF")
	cmd.Flags().StringVar(&flags.delimiter, "delimiter", "", "force the cell delimiter: tab or comma (default autodetect)")
	cmd.Flags().StringVarP(&flags.outputDir, "output-dir", "o", "", "directory for generated files (default ./extensions_output)")
	cmd.Flags().BoolVar(&flags.noAdjust, "no-adjust", false, "keep requested dates as-is instead of snapping to Sunday")
	cmd.Flags().StringVar(&flags.emailColumn, "email-column", "", "override the email column header")
	cmd.Flags().StringVar(&flags.nameColumn, "name-column", "", "override the name column header")
	cmd.Flags().StringVar(&flags.assignmentColumn, "assignment-column", "", "override the assignment column header")
	cmd.Flags().StringVar(&flags.dateColumn, "date-column", "", "override the date column header")

	return cmd
}

func run(cmd *cobra.Command, flags runFlags) error {
	log := internal.NewDefaultLogger("Main")

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyFlagOverrides(cfg, flags)

	delim, err := parseDelimiter(flags.delimiter)
	if err != nil {
		return err
	}

	raw, err := readInput(cmd, flags, log)
	if err != nil {
		return err
	}

	svc := app.NewProcessService(log.WithComponent("Pipeline"))
	result, err := svc.Process(app.ProcessRequest{
		Raw:            raw,
		Delimiter:      delim,
		Columns:        cfg.Columns,
		AdjustToSunday: cfg.Adjust.ToSunday,
	})
	if err != nil {
		return apperrors.Wrap(err, "processing failed")
	}

	writer := report.NewWriter(cfg.Output.Dir, log.WithComponent("Report"))
	files, err := writer.WriteAssignments(result.Summary.Groups)
	if err != nil {
		return err
	}
	if err := writer.WriteFailures(result.Failures); err != nil {
		return err
	}

	text, err := writer.WriteSummary(result.Summary, files, result.Failures)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)

	return nil
}

// applyFlagOverrides layers CLI flags over the environment configuration.
func applyFlagOverrides(cfg *config.Config, flags runFlags) {
	if flags.outputDir != "" {
		cfg.Output.Dir = flags.outputDir
	}
	if flags.noAdjust {
		cfg.Adjust.ToSunday = false
	}
	if flags.emailColumn != "" {
		cfg.Columns.Email = flags.emailColumn
	}
	if flags.nameColumn != "" {
		cfg.Columns.Name = flags.nameColumn
	}
	if flags.assignmentColumn != "" {
		cfg.Columns.Assignment = flags.assignmentColumn
	}
	if flags.dateColumn != "" {
		cfg.Columns.Date = flags.dateColumn
	}
}

func parseDelimiter(s string) (extension.Delimiter, error) {
	switch s {
	case "":
		return extension.DelimiterAuto, nil
	case "tab":
		return extension.DelimiterTab, nil
	case "comma":
		return extension.DelimiterComma, nil
	default:
		return extension.DelimiterAuto, apperrors.InvalidInput(fmt.Sprintf("unknown delimiter %q (expected tab or comma)", s))
	}
}

func readInput(cmd *cobra.Command, flags runFlags, log *internal.Logger) (string, error) {
	reader := source.NewReader(log.WithComponent("Source"))

	switch {
	case flags.inputPath != "":
		return reader.ReadFile(flags.inputPath)
	case flags.fromClipboard:
		return reader.ReadClipboard()
	case flags.fromStdin:
		fmt.Fprintln(cmd.ErrOrStderr(), "Paste the form export (tab-separated, with headers), then press Ctrl+D:")
		return reader.ReadStream(cmd.InOrStdin())
	default:
		return "", apperrors.InvalidInput("no input source: use --input, --clipboard or --stdin")
	}
}
