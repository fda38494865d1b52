package main

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/bikeshed-sanctuary/currency-validator/internal/config"
	"github.com/bikeshed-sanctuary/currency-validator/internal/report"
)

// renderer prints one distribution per provider, coloring lengths at or below
// the configured target green and longer ones red.
type renderer struct {
	target int
	title  *color.Color
	within *color.Color
	over   *color.Color
}

func newRenderer(cfg config.OutputConfig) *renderer {
	if !cfg.Color {
		color.NoColor = true
	}
	return &renderer{
		target: cfg.TargetLength,
		title:  color.New(color.Bold),
		within: color.New(color.FgGreen),
		over:   color.New(color.FgRed),
	}
}

func (r *renderer) render(d report.Distribution) {
	r.title.Printf("%s: %d codes, max length %d\n", d.Provider, d.Total, d.MaxLength)
	for _, l := range d.Lengths() {
		line := fmt.Sprintf("  length %d: %4d codes", l, d.ByLength[l])
		if l <= r.target {
			r.within.Println(line)
		} else {
			r.over.Println(line)
		}
	}
	fmt.Printf("  codes with length <= %d: %.1f%%\n\n", r.target, d.CoverageAt(r.target)*100)
}
