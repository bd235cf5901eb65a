package cli

import (
	"slices"
	"testing"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to svg", "", []string{"svg"}},
		{"single format", "svg", []string{"svg"}},
		{"multiple formats", "svg,pdf,png", []string{"svg", "pdf", "png"}},
		{"spaces trimmed", " svg , dot ", []string{"svg", "dot"}},
		{"empty entries dropped", "svg,,json,", []string{"svg", "json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if !slices.Equal(got, tt.want) {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		name          string
		output, input string
		want          string
	}{
		{"from input", "", "plans/q3.json", "plans/q3"},
		{"output without extension", "out/chart", "plan.json", "out/chart"},
		{"output with format extension", "out/chart.svg", "plan.json", "out/chart"},
		{"output with graph extension", "out/deps.graph.svg", "plan.json", "out/deps"},
		{"unknown extension kept", "out/chart.v2", "plan.json", "out/chart.v2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.input); got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		format string
		count  int
		want   string
	}{
		{"default svg", "", "svg", 1, "plan.svg"},
		{"default graph svg", "", "graph-svg", 2, "plan.graph.svg"},
		{"explicit single", "chart.pdf", "pdf", 1, "chart.pdf"},
		{"explicit single keeps name", "chart", "png", 1, "chart"},
		{"explicit base for many", "out/chart.svg", "dot", 2, "out/chart.dot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outputPath(tt.output, "plan.json", tt.format, tt.count); got != tt.want {
				t.Errorf("outputPath(%q, %q, %d) = %q, want %q", tt.output, tt.format, tt.count, got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	got, err := parseDate("from", "2025-01-06")
	if err != nil {
		t.Fatalf("parseDate: %v", err)
	}
	if got.Year() != 2025 || got.Month() != 1 || got.Day() != 6 {
		t.Errorf("parseDate = %v", got)
	}

	if got, err := parseDate("from", ""); err != nil || !got.IsZero() {
		t.Errorf("parseDate(empty) = %v, %v, want zero time", got, err)
	}
	if _, err := parseDate("from", "06/01/2025"); err == nil {
		t.Error("parseDate should reject non-ISO dates")
	}
}
