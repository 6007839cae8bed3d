// Command processor runs the school data pipeline against a local data
// directory and writes the standardized CSV outputs.
//
// The input directory follows the fetch.FileSource layout: enrollment
// workbooks under enrollment/, assessment workbooks under assessment/,
// and directory listings as directory.xlsx or a directory/ folder of
// CSV files.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	"ncschooldata/internal/config"
	"ncschooldata/internal/exporter"
	"ncschooldata/internal/fetch"
	"ncschooldata/internal/infrastructure"
	"ncschooldata/internal/validation"
	"ncschooldata/pkg/contracts"
)

func main() {
	// Define command-line flags
	inDir := flag.String("in", "", "Input directory with raw workbooks and CSV files (default: configured data dir)")
	outDir := flag.String("out", "", "Output directory for standardized CSV files (default: configured output dir)")
	dataset := flag.String("dataset", "all", "Dataset to process: enrollment, assessment, directory, or all")
	yearFlag := flag.String("year", "", "School year to process, given as the end year (2024 means 2023-24)")
	fromFlag := flag.String("from", "", "First year of an enrollment year range")
	toFlag := flag.String("to", "", "Last year of an enrollment year range")
	groupA := flag.String("group-a", "", "First subgroup code for the proficiency gap report (requires -group-b)")
	groupB := flag.String("group-b", "", "Second subgroup code for the proficiency gap report (requires -group-a)")
	enableOTel := flag.Bool("otel", false, "Enable OpenTelemetry tracing and metrics")
	showVersion := flag.Bool("version", false, "Print version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(contracts.GetFullVersionString())
		return
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}
	if *outDir != "" {
		cfg.Paths.OutputDir = *outDir
	}

	// Initialize logger
	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	paths, err := config.NewPaths(cfg)
	if err != nil {
		logger.Error("Failed to resolve paths", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := paths.EnsureDirectories(); err != nil {
		logger.Error("Failed to create directories", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := validation.NewFileValidator(logger).EnsureOutputDir(paths.OutputDir); err != nil {
		logger.Error("Output directory is not writable", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dataDir := *inDir
	if dataDir == "" {
		dataDir = paths.DataDir
	}

	logger.Info("Starting processor",
		slog.String("version", contracts.Version),
		slog.String("dataset", *dataset),
		slog.String("data_dir", dataDir),
		slog.String("output_dir", paths.OutputDir))

	source := fetch.NewFileSource(dataDir, logger)
	svc, err := fetch.NewServiceWithLogger(source, fetch.NewMemoryStore(), cfg, logger)
	if err != nil {
		logger.Error("Failed to build fetch service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var providers *infrastructure.OTelProviders
	if *enableOTel {
		providers, err = infrastructure.InitializeOTel(infrastructure.DefaultOTelConfig(), logger)
		if err != nil {
			logger.Warn("Failed to initialize OpenTelemetry, continuing without it", slog.String("error", err.Error()))
			providers = nil
		} else if tracer, terr := fetch.NewTracer(providers); terr != nil {
			logger.Warn("Failed to create tracer", slog.String("error", terr.Error()))
		} else {
			svc = svc.WithTracer(tracer)
		}
	}

	ctx := infrastructure.ContextWithTraceID(context.Background())
	runLogger := infrastructure.LoggerWithContext(ctx)

	years, err := resolveYears(*yearFlag, *fromFlag, *toFlag)
	if err != nil {
		logger.Error("Invalid year selection", slog.String("error", err.Error()))
		os.Exit(1)
	}

	written := 0
	var runErr error

	switch strings.ToLower(*dataset) {
	case fetch.DatasetEnrollment:
		written, runErr = runEnrollment(ctx, svc, exporter.NewEnrollmentExporter(paths), runLogger, years)
	case fetch.DatasetAssessment:
		written, runErr = runAssessment(ctx, svc, exporter.NewAssessmentExporter(paths), runLogger, years, *groupA, *groupB)
	case fetch.DatasetDirectory:
		written, runErr = runDirectory(ctx, svc, exporter.NewDirectoryExporter(paths), runLogger)
	case "all":
		written, runErr = runAll(ctx, svc, paths, runLogger, years, *groupA, *groupB)
	default:
		runErr = fmt.Errorf("unknown dataset %q: must be one of enrollment, assessment, directory, all", *dataset)
	}

	if providers != nil {
		if err := providers.Shutdown(context.Background()); err != nil {
			logger.Warn("OpenTelemetry shutdown failed", slog.String("error", err.Error()))
		}
	}

	if runErr != nil {
		logger.Error("Processing failed", slog.String("error", runErr.Error()))
		os.Exit(1)
	}

	manifest := runManifest{
		Version:      contracts.Version,
		Dataset:      strings.ToLower(*dataset),
		Year:         years.Year,
		From:         years.From,
		To:           years.To,
		FilesWritten: written,
		CompletedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	if err := exporter.WriteJSON(paths.OutputPath("manifest.json"), manifest); err != nil {
		logger.Warn("Failed to write run manifest", slog.String("error", err.Error()))
	}

	logger.Info("Processing complete", slog.Int("files_written", written))
	fmt.Printf("Processing complete: %d files written\n", written)
}

// runManifest records what a run produced, for downstream automation.
type runManifest struct {
	Version      string `json:"version"`
	Dataset      string `json:"dataset"`
	Year         int    `json:"year,omitempty"`
	From         int    `json:"from,omitempty"`
	To           int    `json:"to,omitempty"`
	FilesWritten int    `json:"files_written"`
	CompletedAt  string `json:"completed_at"`
}

// yearSelection is the parsed form of the -year / -from / -to flags.
type yearSelection struct {
	Year   int
	From   int
	To     int
	Ranged bool
}

func resolveYears(yearFlag, fromFlag, toFlag string) (yearSelection, error) {
	var sel yearSelection

	if (fromFlag == "") != (toFlag == "") {
		return sel, fmt.Errorf("-from and -to must be given together")
	}

	if fromFlag != "" {
		if yearFlag != "" {
			return sel, fmt.Errorf("-year cannot be combined with -from/-to")
		}
		from, err := validation.ParseYear(fromFlag)
		if err != nil {
			return sel, fmt.Errorf("invalid -from: %w", err)
		}
		to, err := validation.ParseYear(toFlag)
		if err != nil {
			return sel, fmt.Errorf("invalid -to: %w", err)
		}
		sel.From, sel.To, sel.Ranged = from, to, true
		return sel, nil
	}

	if yearFlag != "" {
		year, err := validation.ParseYear(yearFlag)
		if err != nil {
			return sel, fmt.Errorf("invalid -year: %w", err)
		}
		sel.Year = year
	}
	return sel, nil
}

func runEnrollment(ctx context.Context, svc *fetch.Service, exp *exporter.EnrollmentExporter, logger *slog.Logger, years yearSelection) (int, error) {
	if years.Ranged {
		results, err := svc.EnrollmentRange(ctx, years.From, years.To)
		if err != nil {
			return 0, err
		}

		ordered := make([]int, 0, len(results))
		for year := range results {
			ordered = append(ordered, year)
		}
		sort.Ints(ordered)

		written := 0
		for i, year := range ordered {
			fmt.Printf("Exporting enrollment %d of %d: %d\n", i+1, len(ordered), year)
			n, err := exportEnrollment(exp, logger, results[year])
			written += n
			if err != nil {
				return written, err
			}
		}
		return written, nil
	}

	if years.Year == 0 {
		return 0, fmt.Errorf("enrollment requires -year or -from/-to")
	}

	res, err := svc.Enrollment(ctx, years.Year)
	if err != nil {
		return 0, err
	}
	return exportEnrollment(exp, logger, res)
}

func exportEnrollment(exp *exporter.EnrollmentExporter, logger *slog.Logger, res *fetch.EnrollmentResult) (int, error) {
	written := 0

	name := fmt.Sprintf("enr_%d.csv", res.Year)
	if err := exp.ExportWide(res.Wide, name); err != nil {
		return written, fmt.Errorf("export %s: %w", name, err)
	}
	written++

	name = fmt.Sprintf("enr_%d_tidy.csv", res.Year)
	if err := exp.ExportTidy(res.Tidy, name); err != nil {
		return written, fmt.Errorf("export %s: %w", name, err)
	}
	written++

	name = fmt.Sprintf("enr_%d_bands.csv", res.Year)
	if err := exp.ExportTidy(res.Bands, name); err != nil {
		return written, fmt.Errorf("export %s: %w", name, err)
	}
	written++

	logger.Info("Enrollment exported",
		slog.Int("year", res.Year),
		slog.Int("wide_rows", len(res.Wide)),
		slog.Int("tidy_rows", len(res.Tidy)),
		slog.Int("band_rows", len(res.Bands)))
	return written, nil
}

func runAssessment(ctx context.Context, svc *fetch.Service, exp *exporter.AssessmentExporter, logger *slog.Logger, years yearSelection, groupA, groupB string) (int, error) {
	if years.Ranged {
		return 0, fmt.Errorf("year ranges apply to the enrollment dataset only")
	}
	if years.Year == 0 {
		return 0, fmt.Errorf("assessment requires -year")
	}
	if (groupA == "") != (groupB == "") {
		return 0, fmt.Errorf("-group-a and -group-b must be given together")
	}

	res, err := svc.Assessment(ctx, years.Year)
	if err != nil {
		return 0, err
	}

	written := 0
	name := fmt.Sprintf("assessment_%d.csv", res.Year)
	if err := exp.ExportResults(res.Results, name); err != nil {
		return written, fmt.Errorf("export %s: %w", name, err)
	}
	written++
	logger.Info("Assessment exported",
		slog.Int("year", res.Year),
		slog.Int("rows", len(res.Results)))

	if groupA != "" {
		gaps, err := svc.AssessmentGaps(ctx, years.Year, groupA, groupB)
		if err != nil {
			return written, err
		}
		name = fmt.Sprintf("assessment_%d_gaps.csv", res.Year)
		if err := exp.ExportGaps(gaps, name); err != nil {
			return written, fmt.Errorf("export %s: %w", name, err)
		}
		written++
		logger.Info("Proficiency gaps exported",
			slog.Int("year", res.Year),
			slog.String("group_a", groupA),
			slog.String("group_b", groupB),
			slog.Int("rows", len(gaps)))
	}
	return written, nil
}

func runDirectory(ctx context.Context, svc *fetch.Service, exp *exporter.DirectoryExporter, logger *slog.Logger) (int, error) {
	rows, err := svc.Directory(ctx)
	if err != nil {
		return 0, err
	}
	if err := exp.ExportListings(rows, "directory.csv"); err != nil {
		return 0, fmt.Errorf("export directory.csv: %w", err)
	}
	logger.Info("Directory exported", slog.Int("rows", len(rows)))
	return 1, nil
}

// runAll processes every dataset for a single year. Directory listings
// carry no year and are always included.
func runAll(ctx context.Context, svc *fetch.Service, paths *config.Paths, logger *slog.Logger, years yearSelection, groupA, groupB string) (int, error) {
	if years.Ranged {
		return 0, fmt.Errorf("year ranges apply to the enrollment dataset only; run -dataset enrollment")
	}
	if years.Year == 0 {
		return 0, fmt.Errorf("-dataset all requires -year")
	}

	written, err := runEnrollment(ctx, svc, exporter.NewEnrollmentExporter(paths), logger, years)
	if err != nil {
		return written, err
	}

	n, err := runAssessment(ctx, svc, exporter.NewAssessmentExporter(paths), logger, years, groupA, groupB)
	written += n
	if err != nil {
		return written, err
	}

	n, err = runDirectory(ctx, svc, exporter.NewDirectoryExporter(paths), logger)
	written += n
	return written, err
}
