// Package main implements the feedreview CLI tool. It validates a
// product feed file (JSON or XML) and prints a diagnostic report.
package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/mattn/go-runewidth"

	fv "github.com/deepakgargct/productfeedreview"
	"github.com/deepakgargct/productfeedreview/engine"
	"github.com/deepakgargct/productfeedreview/loader"
	"github.com/deepakgargct/productfeedreview/pkg/logger"
)

const topIssueLimit = 15

type cliOptions struct {
	Format    string `short:"f" long:"format" choice:"json" choice:"xml" description:"Feed format (default: inferred from the file extension)"`
	Output    string `short:"o" long:"output" choice:"text" choice:"json" choice:"csv" default:"text" description:"Report format"`
	Workers   int    `long:"workers" description:"Number of validation workers (default: number of CPUs)"`
	MaxErrors int    `long:"max-errors" description:"Stop validating after this many record errors (0 = no limit)"`
	Quiet     bool   `short:"q" long:"quiet" description:"Print only the feed summary"`
	Verbose   bool   `short:"v" long:"verbose" description:"Enable debug logging"`
	Version   bool   `long:"version" description:"Print version and exit"`

	Args struct {
		File string `positional-arg-name:"FILE" description:"Feed file to validate, or - for stdin"`
	} `positional-args:"yes"`
}

func main() {
	os.Exit(run())
}

func run() int {
	var opts cliOptions
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[OPTIONS] FILE"

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return 0
		}
		return 2
	}

	if opts.Version {
		fmt.Printf("feedreview %s\n", fv.Version)
		return 0
	}

	if opts.Args.File == "" {
		fmt.Fprintln(os.Stderr, "error: no feed file given (use - for stdin)")
		return 2
	}

	switch {
	case opts.Verbose:
		logger.SetLevel(logger.LevelDebug)
	case opts.Quiet:
		logger.SetLevel(logger.LevelError)
	}

	data, err := readInput(opts.Args.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	format, err := resolveFormat(opts.Args.File, opts.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	validator, err := engine.New(
		fv.WithWorkerCount(opts.Workers),
		fv.WithMaxErrors(opts.MaxErrors),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	start := time.Now()
	result, err := validator.ValidateFeed(context.Background(), data, format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	logger.Debug("validated %d records in %s", result.EvaluatedRecords, time.Since(start).Round(time.Millisecond))

	switch opts.Output {
	case "json":
		err = writeJSON(os.Stdout, result)
	case "csv":
		err = writeCSV(os.Stdout, result)
	default:
		err = writeText(os.Stdout, result, opts.Quiet)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	if result.HasErrors() {
		return 1
	}
	return 0
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// resolveFormat prefers an explicit --format flag over the file
// extension. Stdin input requires the flag.
func resolveFormat(path, flag string) (loader.Format, error) {
	if flag != "" {
		return loader.Format(flag), nil
	}
	if path == "-" {
		return "", fmt.Errorf("--format is required when reading from stdin")
	}
	if format, ok := loader.FormatFromPath(path); ok {
		return format, nil
	}
	return "", fmt.Errorf("cannot infer feed format from %q; pass --format", path)
}

func writeJSON(w io.Writer, result *fv.FeedResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func writeCSV(w io.Writer, result *fv.FeedResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(fv.ExportHeader); err != nil {
		return err
	}
	if err := cw.WriteAll(result.ExportRows()); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func writeText(w io.Writer, result *fv.FeedResult, quiet bool) error {
	fmt.Fprintf(w, "Feed validation report %s\n\n", result.ReportID)
	writeSummary(w, result)

	if table := result.IssueFrequency(); len(table) > 0 {
		fmt.Fprintf(w, "\nMost common issues:\n")
		writeIssueTable(w, table)
	}

	if !quiet {
		writeRecords(w, result)
	}
	return nil
}

func writeSummary(w io.Writer, result *fv.FeedResult) {
	rows := [][2]string{
		{"Records", fmt.Sprintf("%d", result.TotalRecords)},
		{"Evaluated", fmt.Sprintf("%d", result.EvaluatedRecords)},
		{"Errors", fmt.Sprintf("%d", result.TotalErrors)},
		{"Warnings", fmt.Sprintf("%d", result.TotalWarnings)},
	}
	for _, row := range rows {
		fmt.Fprintf(w, "  %s %s\n", pad(row[0]+":", 11), row[1])
	}
}

func writeIssueTable(w io.Writer, table []fv.IssueCount) {
	if len(table) > topIssueLimit {
		table = table[:topIssueLimit]
	}
	width := 0
	for _, entry := range table {
		if n := runewidth.StringWidth(entry.Message); n > width {
			width = n
		}
	}
	for _, entry := range table {
		fmt.Fprintf(w, "  %s  %d\n", pad(entry.Message, width), entry.Count)
	}
}

func writeRecords(w io.Writer, result *fv.FeedResult) {
	for _, r := range result.Records {
		if len(r.Issues) == 0 {
			continue
		}
		label := r.RecordID
		if label == "" {
			label = "(no id)"
		}
		fmt.Fprintf(w, "\nRecord %d  %s\n", r.Index+1, label)
		for _, issue := range r.Issues {
			fmt.Fprintf(w, "  %s %s\n", pad(strings.ToUpper(string(issue.Severity)), 11), issue.Message)
		}
	}
}

func pad(s string, width int) string {
	if n := width - runewidth.StringWidth(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
