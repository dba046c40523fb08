// Command hex-to-hsl prints the HSL form of the sampled logo palette and
// the recommended CSS custom properties derived from the primary color.
package main

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/fintrack/brandgen/colors"
)

// Logo colors from sampling analysis.
var logoColors = []struct {
	name string
	hex  string
}{
	{name: "primary (top-left)", hex: "#3b5894"},
	{name: "lighter variant", hex: "#4a6bb0"},
	{name: "much lighter", hex: "#6d82ad"},
}

const primaryHex = "#3b5894"

// updatedPrimaryHex is the hand-adjusted primary color awaiting rollout to
// the stylesheet.
const updatedPrimaryHex = "#3b5a95"

// updateColorReport formats the single-color conversion block for a new
// primary color: the hex value, its HSL form, and the ready-to-paste CSS
// declaration.
func updateColorReport(hex string) (string, error) {
	hsl, err := colors.HexToHSL(hex)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Primary color: %s\n", hex)
	fmt.Fprintf(&b, "HSL: %s\n", hsl)
	b.WriteString("\n")
	fmt.Fprintf(&b, "CSS variable: --primary: %s;\n", hsl)
	return b.String(), nil
}

func main() {
	fmt.Println("CSS HSL values for logo colors:")
	fmt.Println(strings.Repeat("=", 50))
	for _, c := range logoColors {
		hsl, err := colors.HexToHSL(c.hex)
		if err != nil {
			log.Fatalf("failed to convert %s: %v", c.hex, err)
		}
		fmt.Printf("%-25s: %s -> %s\n", c.name, c.hex, hsl)
	}
	fmt.Println()

	primary, err := colors.ParseHex(primaryHex)
	if err != nil {
		log.Fatalf("failed to parse primary color: %v", err)
	}

	fmt.Println("Recommended CSS variables:")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Print(colors.CSSVariables(
		primary,
		colors.Lighten(primary, 0.15),
		colors.Darken(primary, 0.08),
	))
	fmt.Println()

	report, err := updateColorReport(updatedPrimaryHex)
	if err != nil {
		log.Fatalf("failed to convert %s: %v", updatedPrimaryHex, err)
	}
	fmt.Print(report)
}
