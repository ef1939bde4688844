//
// Copyright (c) 2020, NVIDIA CORPORATION. All rights reserved.
//
// See LICENSE.txt for license information
//

package report

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gvallee/performance_module/tools/internal/pkg/scale"
	"github.com/gvallee/performance_module/tools/internal/pkg/unit"
	"github.com/gvallee/performance_module/tools/pkg/benchmark"
)

const (
	// FormatText is the single line format
	FormatText = "text"

	// FormatMarkdown is the markdown summary format
	FormatMarkdown = "markdown"

	// FormatHTML is the markdown summary rendered to HTML
	FormatHTML = "html"
)

// IsValidFormat checks whether a format identifier is supported
func IsValidFormat(format string) bool {
	switch format {
	case FormatText, FormatMarkdown, FormatHTML:
		return true
	}
	return false
}

// Line returns the execution time line for a measurement
func Line(elapsed float64) string {
	return fmt.Sprintf("Execution time: %f seconds", elapsed)
}

// GainLine returns the line reporting the result of a comparison
func GainLine(c *benchmark.Comparison) string {
	return fmt.Sprintf("Performance improvement: %.2f%%", c.Gain)
}

// Text returns the lines of the text format; c may be nil
func Text(r benchmark.Result, c *benchmark.Comparison) string {
	txt := Line(r.Elapsed) + "\n"
	if c != nil {
		txt += GainLine(c) + "\n"
	}
	return txt
}

// Markdown returns a summary of a measurement; c may be nil
func Markdown(r benchmark.Result, c *benchmark.Comparison) string {
	var sb strings.Builder
	u, val := scale.Float64(unit.ToString(unit.Seconds), r.Elapsed)

	sb.WriteString("# Benchmark report\n\n")
	fmt.Fprintf(&sb, "* Execution time: %f seconds (%.3f %s)\n", r.Elapsed, val, u)
	fmt.Fprintf(&sb, "* Operations: %d\n", r.Operations)
	if c != nil {
		fmt.Fprintf(&sb, "* Baseline: %f seconds\n", c.Baseline)
		fmt.Fprintf(&sb, "* %s\n", GainLine(c))
	}
	return sb.String()
}

// HTML returns the markdown summary rendered to HTML
func HTML(r benchmark.Result, c *benchmark.Comparison) string {
	return string(markdown.ToHTML([]byte(Markdown(r, c)), nil, nil))
}

// Generate returns the report of a measurement in the requested format
func Generate(format string, r benchmark.Result, c *benchmark.Comparison) (string, error) {
	switch format {
	case FormatText:
		return Text(r, c), nil
	case FormatMarkdown:
		return Markdown(r, c), nil
	case FormatHTML:
		return HTML(r, c), nil
	}
	return "", fmt.Errorf("unsupported format: %s", format)
}
