package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/seaops/mariner/internal/logging"
	"github.com/seaops/mariner/pkg/mariner"
	"github.com/seaops/mariner/pkg/mariner/config"
)

func main() {
	var (
		text         = flag.String("text", "", "Document text (one-shot mode)")
		file         = flag.String("file", "", "Read the document from a file (one-shot mode)")
		docType      = flag.String("type", "", "Document type hint, e.g. \"Sensor Alert\"")
		vesselID     = flag.String("vessel", "", "Vessel identifier")
		catalogPath  = flag.String("catalog", "", "Catalog override YAML (optional)")
		settingsPath = flag.String("settings", "", "Engine settings YAML (optional)")
		explain      = flag.Bool("explain", false, "Print the per-category score breakdown")
		logLevel     = flag.String("log-level", "warn", "Log level (debug, info, warn, error)")
	)
	flag.Parse()

	loader := config.Loader{CatalogPath: *catalogPath, SettingsPath: *settingsPath}
	components, err := loader.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := logging.New(logging.Config{Level: *logLevel, Pretty: true})

	proc, err := mariner.New(mariner.Options{
		Catalog:          components.Catalog,
		MaxSummaryLength: components.Settings.MaxSummaryLength,
		CacheSize:        components.Settings.CacheSize,
		Logger:           &logger,
	})
	if err != nil {
		log.Fatalf("create processor: %v", err)
	}

	body := *text
	if *file != "" {
		data, err := os.ReadFile(*file)
		if err != nil {
			log.Fatalf("read document: %v", err)
		}
		body = string(data)
	}

	// One-shot mode
	if body != "" {
		triage(proc, body, *docType, *vesselID, *explain)
		return
	}

	// Interactive mode
	fmt.Println("===========================================")
	fmt.Println("  Mariner Document Triage")
	fmt.Println("  Classify maritime operational documents")
	fmt.Println("===========================================")
	fmt.Println()
	fmt.Println("Paste a document (Ctrl+D to exit):")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		triage(proc, line, *docType, *vesselID, *explain)
	}

	fmt.Println("\nGoodbye!")
}

func triage(proc *mariner.Processor, text, docType, vesselID string, explain bool) {
	res := proc.Process(mariner.Request{
		Text:         text,
		DocumentType: docType,
		VesselID:     vesselID,
	})

	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		log.Fatalf("marshal result: %v", err)
	}
	fmt.Println(string(out))

	if !explain {
		return
	}

	fmt.Println("\nScore Breakdown:")
	for _, sc := range proc.Scores(text) {
		fmt.Printf("  %-35s total=%.2f  keywords=%d equipment=%d indicators=%d\n",
			sc.Category, sc.Total, sc.KeywordMatches, sc.EquipmentMatches, sc.PriorityMatches)
		if len(sc.Matched) > 0 {
			fmt.Printf("  %-35s matched: %s\n", "", strings.Join(sc.Matched, ", "))
		}
	}
	fmt.Println()
}
