package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/seaops/mariner/internal/logging"
	"github.com/seaops/mariner/pkg/mariner"
	"github.com/seaops/mariner/pkg/mariner/analytics"
	"github.com/seaops/mariner/pkg/mariner/config"
	"github.com/seaops/mariner/pkg/mariner/metrics"
)

func main() {
	var (
		input        = flag.String("input", "", "Path to JSONL documents (required)")
		output       = flag.String("output", "", "Write result JSONL here (default stdout)")
		catalogPath  = flag.String("catalog", "", "Catalog override YAML (optional)")
		settingsPath = flag.String("settings", "", "Engine settings YAML (optional)")
		reportPath   = flag.String("report", "", "Write the fleet report JSON here (default stderr)")
		metricsPath  = flag.String("metrics-out", "", "Write Prometheus text-format metrics here (optional)")
		logLevel     = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
		prettyLogs   = flag.Bool("pretty-logs", false, "Console-format logs")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("--input required")
	}

	loader := config.Loader{CatalogPath: *catalogPath, SettingsPath: *settingsPath}
	components, err := loader.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := logging.New(logging.Config{Level: *logLevel, Pretty: *prettyLogs})

	registry := prometheus.NewRegistry()
	instruments := metrics.New(registry)

	proc, err := mariner.New(mariner.Options{
		Catalog:          components.Catalog,
		MaxSummaryLength: components.Settings.MaxSummaryLength,
		CacheSize:        components.Settings.CacheSize,
		Logger:           &logger,
		Metrics:          instruments,
	})
	if err != nil {
		log.Fatalf("create processor: %v", err)
	}

	docs, err := LoadDocuments(*input)
	if err != nil {
		log.Fatalf("load documents: %v", err)
	}

	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			log.Fatalf("create output: %v", err)
		}
		defer f.Close()
		out = f
	}

	collector := analytics.NewCollector()
	enc := json.NewEncoder(out)
	for _, doc := range docs {
		res := proc.Process(mariner.Request{
			Text:         doc.Text,
			DocumentType: doc.DocumentType,
			VesselID:     doc.VesselID,
		})
		collector.Add(res)

		if err := enc.Encode(res); err != nil {
			log.Fatalf("write result: %v", err)
		}
	}

	if err := writeReport(collector.Snapshot(), *reportPath); err != nil {
		log.Fatalf("write report: %v", err)
	}

	if *metricsPath != "" {
		if err := writeMetrics(registry, *metricsPath); err != nil {
			log.Fatalf("write metrics: %v", err)
		}
	}
}

// writeReport marshals the fleet report, to stderr unless a path is given
// so result JSONL on stdout stays clean.
func writeReport(report analytics.Report, path string) error {
	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	if path == "" {
		fmt.Fprintln(os.Stderr, string(out))
		return nil
	}
	return os.WriteFile(path, append(out, '\n'), 0o644)
}

// writeMetrics dumps the registry in Prometheus text exposition format.
func writeMetrics(g prometheus.Gatherer, path string) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := expfmt.NewEncoder(f, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, fam := range families {
		if err := enc.Encode(fam); err != nil {
			return err
		}
	}
	return nil
}
