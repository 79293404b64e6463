package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"package-sorter/internal/logger"
	"package-sorter/internal/parcel"
	"package-sorter/internal/sorter"
)

type sample struct {
	description string
	width       float64
	height      float64
	length      float64
	mass        float64
}

var samples = []sample{
	{"Standard package", 50, 50, 50, 10},
	{"Bulky by volume", 100, 100, 100, 10},
	{"Bulky by dimension", 160, 50, 50, 10},
	{"Heavy package", 50, 50, 50, 25},
	{"Bulky and heavy", 160, 50, 50, 25},
}

func main() {
	// Optional JSONL logging, off unless a log directory is given
	var l *logger.Logger
	if dir := os.Getenv("SORTER_LOG_DIR"); dir != "" {
		cfg := logger.DefaultConfig()
		cfg.LogDir = dir
		if os.Getenv("SORTER_LOG_STDOUT") == "true" {
			cfg.Stdout = true
		}

		var err error
		l, err = logger.New(cfg)
		if err != nil {
			log.Fatalf("Failed to create logger: %v", err)
		}
		defer func() { _ = l.Close() }()
	}

	debug := os.Getenv("DEBUG") == "true"

	fmt.Println("Package Sorting System")
	fmt.Println()

	srt := sorter.New()
	for _, sc := range samples {
		result := srt.Process(parcel.New(sc.width, sc.height, sc.length, sc.mass))

		fmt.Printf("%s: %gx%gx%g cm, %g kg -> %s\n",
			sc.description, sc.width, sc.height, sc.length, sc.mass, result.Category)

		if debug {
			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				log.Printf("Error encoding result: %v", err)
			} else {
				fmt.Println(string(out))
			}
		}

		if l != nil {
			if err := l.LogResult(result); err != nil {
				log.Printf("Error logging result: %v", err)
			}
		}
	}
}
