// Package main plays many headless games with a random bot and prints a
// Markdown report.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"
)

func main() {
	cfg, err := ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[STACKFALL-STRESS] ")

	log.Printf("Running %d sessions for %s...", cfg.Sessions, cfg.Duration)
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Duration)
	defer cancel()

	report := &Report{
		Duration:       cfg.Duration,
		Sessions:       cfg.Sessions,
		Seed:           cfg.Seed,
		GCPauseMetrics: cfg.GCPauseMetrics,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	startTime := time.Now()
	results, err := RunBots(ctx, cfg.Sessions, cfg.Seed)
	if err != nil {
		log.Fatalf("run bots: %v", err)
	}
	report.TotalTime = time.Since(startTime)
	runtime.ReadMemStats(&report.MemStatsEnd)
	report.Add(results...)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
