package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/seaops/mariner/pkg/mariner/catalog"
	"github.com/seaops/mariner/pkg/mariner/config"
)

func main() {
	var (
		catalogPath = flag.String("catalog", "", "Catalog YAML to validate (default: built-in)")
		showTerms   = flag.Bool("terms", false, "Print the full term lists per category")
	)
	flag.Parse()

	cat := catalog.Default()
	source := "built-in"
	if *catalogPath != "" {
		file, err := config.LoadCatalogFile(*catalogPath)
		if err != nil {
			log.Fatalf("load catalog: %v", err)
		}
		cat, err = config.BuildCatalog(file)
		if err != nil {
			log.Fatalf("invalid catalog: %v", err)
		}
		source = *catalogPath
	}

	fmt.Printf("Catalog %s: %d categories (listed in tie-break order)\n\n", source, cat.Len())
	fmt.Printf("%-35s %6s %9s %10s %11s\n", "CATEGORY", "WEIGHT", "KEYWORDS", "EQUIPMENT", "INDICATORS")
	for _, entry := range cat.Entries() {
		fmt.Printf("%-35s %6.2f %9d %10d %11d\n",
			entry.Category, entry.Rule.Weight,
			len(entry.Rule.Keywords), len(entry.Rule.EquipmentTerms), len(entry.Rule.PriorityIndicators))
	}

	if *showTerms {
		for _, entry := range cat.Entries() {
			fmt.Printf("\n%s\n", entry.Category)
			fmt.Printf("  keywords:   %s\n", strings.Join(entry.Rule.Keywords, ", "))
			fmt.Printf("  equipment:  %s\n", strings.Join(entry.Rule.EquipmentTerms, ", "))
			fmt.Printf("  indicators: %s\n", strings.Join(entry.Rule.PriorityIndicators, ", "))
		}
	}

	fmt.Println("\nCatalog OK.")
}
