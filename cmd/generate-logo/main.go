// Command generate-logo produces the fixed set of resized logo PNGs and
// the multi-resolution favicon-new.ico bundle from the source logo.
package main

import (
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/fintrack/brandgen/assets"
	"github.com/fintrack/brandgen/images"
)

const (
	sourcePath = "logo.png"
	outputDir  = "public/logo"
	icoPath    = "public/favicon-new.ico"
)

// icoDest returns the platform-local icon bundle path. The same value is
// written and logged so console output matches the artifact.
func icoDest() string {
	return filepath.FromSlash(icoPath)
}

func main() {
	src, err := images.Load(sourcePath)
	if err != nil {
		log.Fatalf("failed to load logo: %v", err)
	}

	gen := assets.NewGenerator(outputDir)

	written, err := gen.GenerateLogos(src)
	for _, path := range written {
		log.Infof("Generated: %s", path)
	}
	if err != nil {
		log.Fatalf("failed to generate logos: %v", err)
	}

	icoOut := icoDest()
	if err := gen.GenerateIco(src, icoOut); err != nil {
		log.Fatalf("failed to generate icon bundle: %v", err)
	}
	log.Infof("Generated: %s", icoOut)

	log.Info("All logos generated successfully!")
}
