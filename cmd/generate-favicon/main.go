// Command generate-favicon emits the static SVG favicon and, when the
// raster drawing capability is available, the raster favicon and its
// multi-size icon bundle. Raster failures degrade to SVG-only output.
package main

import (
	log "github.com/sirupsen/logrus"

	"github.com/fintrack/brandgen/favicon"
)

const outputDir = "public"

func main() {
	r, ok := favicon.NewRasterizer()
	if !ok {
		log.Warn("raster drawing capability unavailable, emitting SVG favicon only")
		r = nil
	}

	result, err := favicon.Generate(outputDir, r)
	if err != nil {
		log.Fatalf("failed to generate favicon: %v", err)
	}

	for _, path := range result.Produced() {
		log.Infof("Generated: %s", path)
	}
	if result.RasterErr != nil {
		log.Warnf("raster favicon skipped: %v", result.RasterErr)
	}
}
