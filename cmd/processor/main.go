package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"afilcli/internal/config"
	"afilcli/internal/dataprocessing"
	"afilcli/internal/exporter"
	"afilcli/internal/files"
	"afilcli/internal/infrastructure"
)

func main() {
	inDir := flag.String("in", "", "input directory for source workbooks (defaults to <base>/src_data)")
	outDir := flag.String("out", "", "output directory for CSV tables (defaults to <base>/out_data)")
	configFile := flag.String("config", "config.yaml", "path to optional YAML config file")
	fromCombined := flag.Bool("from-combined", false,
		"re-run aggregation from the persisted combined dataset without re-reading source workbooks")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	if *inDir == "" {
		*inDir = cfg.GetDataDir()
	}
	if *outDir == "" {
		*outDir = cfg.GetOutputDir()
	}

	// Stamp every log record of this run with one trace id.
	ctx := infrastructure.WithTraceID(context.Background(), uuid.New().String())

	logger.InfoContext(ctx, "starting municipal affiliation processing",
		slog.String("input_dir", *inDir),
		slog.String("output_dir", *outDir),
		slog.Bool("from_combined", *fromCombined))

	if err := run(ctx, logger, *inDir, *outDir, *fromCombined); err != nil {
		logger.ErrorContext(ctx, "processing failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.InfoContext(ctx, "processing complete")
}

func run(ctx context.Context, logger *slog.Logger, inDir, outDir string, fromCombined bool) error {
	writer := exporter.NewCSVWriter(outDir)

	var records []dataprocessing.Record
	if fromCombined {
		var err error
		records, err = exporter.LoadCombined(filepath.Join(outDir, exporter.CombinedFileName))
		if err != nil {
			return err
		}
		logger.InfoContext(ctx, "loaded combined dataset", slog.Int("rows", len(records)))
	} else {
		discovery := files.NewDiscovery("")
		sources, err := discovery.FindExcelFiles(inDir)
		if err != nil {
			return err
		}
		logger.InfoContext(ctx, "workbooks discovered", slog.Int("count", len(sources)))

		combiner := dataprocessing.NewCombiner(logger)
		records, err = combiner.CombineFiles(ctx, sources)
		if err != nil {
			return err
		}

		// Durable checkpoint, persisted in full before any aggregation.
		if err := writer.WriteCombined(records); err != nil {
			return err
		}
		logger.InfoContext(ctx, "saved combined dataset",
			slog.Int("rows", len(records)),
			slog.String("path", filepath.Join(outDir, exporter.CombinedFileName)))
	}

	deriver := dataprocessing.NewDeriver(logger, dataprocessing.DefaultMetricConfig())
	metrics := deriver.Derive(records)

	aggregator := dataprocessing.NewAggregator(logger)

	muni, err := aggregator.MunicipalityAverages(metrics)
	if err != nil {
		return err
	}
	if err := writer.WriteMunicipalityAverages(muni); err != nil {
		return err
	}
	logger.InfoContext(ctx, "municipality averages written", slog.Int("rows", len(muni)))

	national := aggregator.NationalAverages(metrics)
	if err := writer.WriteNationalAverages(national); err != nil {
		return err
	}
	logger.InfoContext(ctx, "national averages written", slog.Int("rows", len(national)))

	provincial := aggregator.ProvincialAverages(metrics)
	if err := writer.WriteProvincialAverages(provincial); err != nil {
		return err
	}
	logger.InfoContext(ctx, "provincial averages written", slog.Int("rows", len(provincial)))

	return nil
}
