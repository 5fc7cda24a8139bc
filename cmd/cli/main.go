package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"evfleet/internal/analysis"
	"evfleet/internal/builder"
	"evfleet/internal/config"
	"evfleet/internal/data"
	"evfleet/internal/fleet"
	"evfleet/internal/scenario"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "run":
		cmdRun(os.Args[2:])
	case "compare":
		cmdCompare(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli run --resources resources.json --scenario scenario.json --criterion performant --out results/ledger.csv")
	fmt.Println("  cli run --config run.yaml")
	fmt.Println("  cli compare --resources resources.json --scenario scenario.json")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - criterion must be one of: performant, medium, poor")
	fmt.Println("  - compare runs the same resources+scenario under all three criteria and ranks them by final grade")
}

func cmdRun(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	resourcesPath := fs.String("resources", "", "Path to resources JSON file")
	scenarioPath := fs.String("scenario", "", "Path to scenario JSON file")
	criterionName := fs.String("criterion", "performant", "Dispatch criterion: performant | medium | poor")
	outPath := fs.String("out", "", "Optional output CSV path")
	cfgPath := fs.String("config", "", "Optional YAML run config; its resources, scenario and criterion override the flags above, its output_csv applies only when --out is not set")
	_ = fs.Parse(args)

	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		*resourcesPath = cfg.ResourcesFile
		*scenarioPath = cfg.ScenarioFile
		*criterionName = cfg.Criterion
		if *outPath == "" {
			*outPath = cfg.OutputCSV
		}
	}

	if *resourcesPath == "" || *scenarioPath == "" {
		fmt.Println("--resources and --scenario are required (or pass --config)")
		os.Exit(2)
	}

	criterion, ok := fleet.ByName(*criterionName)
	if !ok {
		fmt.Printf("unknown criterion %q, must be one of %v\n", *criterionName, fleet.Names())
		os.Exit(2)
	}

	resources, err := data.NewJSONResourceLoader(*resourcesPath).Load()
	if err != nil {
		panic(err)
	}
	steps, err := data.NewJSONScenarioLoader(*scenarioPath).Load()
	if err != nil {
		panic(err)
	}

	b := builder.New()
	f, err := b.Build(resources)
	if err != nil {
		panic(err)
	}

	driver := scenario.New(f, criterion)
	result, err := driver.Run(context.Background(), steps)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%-6s %-10s %-6s %-10s %-10s %-8s %-10s\n", "step", "timelapse", "load", "dispatched", "successes", "grade", "cum.grade")
	for _, row := range result.Ledger {
		fmt.Printf("%-6d %-10.1f %-6.2f %-10d %-10d %-8.3f %-10.3f\n",
			row.Index, row.Timelapse, row.Load, row.Dispatched, row.Successes, row.Grade, row.CumulativeGrade)
	}
	fmt.Printf("Final time=%.1fs grade=%.3f\n", result.Time[len(result.Time)-1], result.Grades[len(result.Grades)-1])

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			panic(err)
		}
		if err := scenario.WriteLedgerCSV(*outPath, result.Ledger); err != nil {
			panic(err)
		}
		fmt.Printf("Wrote %d rows to %s\n", len(result.Ledger), *outPath)
	}
}

func cmdCompare(args []string) {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	resourcesPath := fs.String("resources", "", "Path to resources JSON file")
	scenarioPath := fs.String("scenario", "", "Path to scenario JSON file")
	_ = fs.Parse(args)

	if *resourcesPath == "" || *scenarioPath == "" {
		fmt.Println("--resources and --scenario are required")
		os.Exit(2)
	}

	resources, err := data.NewJSONResourceLoader(*resourcesPath).Load()
	if err != nil {
		panic(err)
	}
	steps, err := data.NewJSONScenarioLoader(*scenarioPath).Load()
	if err != nil {
		panic(err)
	}

	rankings, err := analysis.RankByGrade(context.Background(), resources, steps)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%-4s %-12s %-10s %-10s\n", "rank", "criterion", "grade", "time")
	for i, r := range rankings {
		fmt.Printf("%-4d %-12s %-10.3f %-10.1f\n", i+1, r.Criterion, r.FinalGrade, r.FinalTime)
	}
}
