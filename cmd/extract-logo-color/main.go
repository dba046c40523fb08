// Command extract-logo-color reports representative colors sampled from the
// source logo: the whole-image average plus three fixed-offset point
// samples.
package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/fintrack/brandgen/images"
)

const sourcePath = "logo.png"

func main() {
	src, err := images.Load(sourcePath)
	if err != nil {
		log.Fatalf("failed to load logo: %v", err)
	}

	avg := images.AverageColor(src.Image())
	samples := images.SamplePoints(src.Image())

	fmt.Printf("Average color: %s\n", avg)
	for _, s := range samples {
		fmt.Printf("%s (%d, %d): %s\n", s.Label, s.X, s.Y, s.Color)
	}
	fmt.Println()

	fmt.Printf("Average: %s\n", avg.Hex())
	for _, s := range samples {
		note := ""
		if s.Label == "top-left" {
			note = " (recommended primary)"
		}
		fmt.Printf("%s%s: %s\n", s.Label, note, s.Color.Hex())
	}
}
