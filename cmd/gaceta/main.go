package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/coolbeans/gaceta/pkg/export"
	"github.com/coolbeans/gaceta/pkg/extract"
	"github.com/coolbeans/gaceta/pkg/pdftext"
	"github.com/coolbeans/gaceta/pkg/store"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "gaceta",
		Short: "Gazette legal-act extractor",
		Long: `Gaceta reconstructs structured records from official gazette PDF scans.

For every issue it reflows the two-column page text into reading order,
detects each legal act (decrees, resolutions, executive resolutions, joint
external circulars, agreements), parses type, number, year, title and
publication date, and attributes an issuing institution by matching the
issue's table of contents.`,
		Version: version,
	}

	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(inspectCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func analyzeCmd() *cobra.Command {
	var (
		inputDir  string
		outputDir string
		format    string
		dbPath    string
		workers   int
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Process every gazette PDF in a directory",
		Long: `Analyze processes all *.pdf files under --input, tags each extracted
record with its source file name, and writes a timestamped result file under
--output. Issues are independent, so extraction is fanned out across
--workers. With --db, records are also appended to a SQLite database.

Example:
  gaceta analyze --input data --output resultados --format csv
  gaceta analyze --input data --output resultados --format json --db gaceta.db`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "csv" && format != "json" {
				return fmt.Errorf("unsupported format %q (want csv or json)", format)
			}
			if workers < 1 {
				workers = 1
			}

			files, err := filepath.Glob(filepath.Join(inputDir, "*.pdf"))
			if err != nil {
				return fmt.Errorf("listing %s: %w", inputDir, err)
			}
			sort.Strings(files)
			if len(files) == 0 {
				fmt.Printf("No PDF files found in %s\n", inputDir)
				return nil
			}

			results := analyzeFiles(files, workers)

			var all []extract.Record
			failed := 0
			for i, res := range results {
				name := filepath.Base(files[i])
				if res.err != nil {
					failed++
					fmt.Fprintf(os.Stderr, "  %s: %v\n", name, res.err)
					continue
				}
				fmt.Printf("  %s: %d documents\n", name, len(res.records))
				all = append(all, res.records...)
			}

			if err := os.MkdirAll(outputDir, 0755); err != nil {
				return fmt.Errorf("creating output directory: %w", err)
			}
			outPath := filepath.Join(outputDir, export.OutputName(format, time.Now()))
			if err := writeResults(outPath, format, all); err != nil {
				return err
			}

			if dbPath != "" {
				st, err := store.Open(dbPath)
				if err != nil {
					return fmt.Errorf("opening database: %w", err)
				}
				defer st.Close()
				if err := st.SaveRecords(all); err != nil {
					return fmt.Errorf("saving to database: %w", err)
				}
			}

			fmt.Printf("\nProcessed %d files (%d failed), %d records\n", len(files), failed, len(all))
			fmt.Printf("Results written to %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&inputDir, "input", "data", "Directory containing gazette PDF files")
	cmd.Flags().StringVar(&outputDir, "output", "resultados", "Directory for result files")
	cmd.Flags().StringVar(&format, "format", "csv", "Output format: csv or json")
	cmd.Flags().StringVar(&dbPath, "db", "", "Optional SQLite database to append records to")
	cmd.Flags().IntVar(&workers, "workers", 4, "Number of files processed concurrently")

	return cmd
}

// fileResult is the outcome of extracting one issue.
type fileResult struct {
	records []extract.Record
	err     error
}

// analyzeFiles fans file extraction out across a fixed worker pool. Results
// keep the input ordering; issues share no state, so workers never
// coordinate beyond the job channel.
func analyzeFiles(files []string, workers int) []fileResult {
	results := make([]fileResult, len(files))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				records, err := processFile(files[i])
				results[i] = fileResult{records: records, err: err}
			}
		}()
	}
	for i := range files {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

// processFile runs the full pipeline over one issue and tags each record
// with the source file name.
func processFile(path string) ([]extract.Record, error) {
	pages, err := pdftext.Pages(path)
	if err != nil {
		return nil, err
	}
	records := extract.Assemble(pages)
	name := filepath.Base(path)
	for i := range records {
		records[i].Archivo = name
	}
	return records, nil
}

func writeResults(path, format string, records []extract.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	switch format {
	case "csv":
		err = export.WriteCSV(f, records)
	case "json":
		err = export.WriteJSON(f, records)
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func inspectCmd() *cobra.Command {
	var showTOC bool

	cmd := &cobra.Command{
		Use:   "inspect <file.pdf>",
		Short: "Print one issue's extracted records as JSON",
		Long: `Inspect runs the extraction pipeline over a single gazette PDF and
prints the resulting records as indented JSON. With --toc it prints the raw
table-of-contents entries instead, which helps when an institution resolves
to the unknown sentinel.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pages, err := pdftext.Pages(args[0])
			if err != nil {
				return err
			}

			var out any
			if showTOC {
				out = extract.ExtractTOC(extract.ReflowPages(pages))
			} else {
				records := extract.Assemble(pages)
				name := filepath.Base(args[0])
				for i := range records {
					records[i].Archivo = name
				}
				out = records
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetEscapeHTML(false)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}

	cmd.Flags().BoolVar(&showTOC, "toc", false, "Print table-of-contents entries instead of records")

	return cmd
}
