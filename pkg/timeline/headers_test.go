package timeline

import (
	"slices"
	"testing"
	"time"
)

func labels(hs []Header) []string {
	out := make([]string, len(hs))
	for i, h := range hs {
		out[i] = h.Label
	}
	return out
}

func widths(hs []Header) []float64 {
	out := make([]float64, len(hs))
	for i, h := range hs {
		out[i] = h.Width
	}
	return out
}

func TestMajorHeaders(t *testing.T) {
	tests := []struct {
		name       string
		mode       ViewMode
		start, end time.Time
		wantLabels []string
		wantCols   []float64
	}{
		{"hour", Hour, date(2024, 1, 1), date(2024, 1, 3),
			[]string{"Mon, Jan 1", "Tue, Jan 2"}, []float64{24, 24}},
		{"day leap february", Day, date(2024, 1, 1), date(2024, 3, 1),
			[]string{"January 2024", "February 2024"}, []float64{31, 29}},
		{"day february", Day, date(2023, 2, 1), date(2023, 3, 1),
			[]string{"February 2023"}, []float64{28}},
		{"week", Week, date(2024, 1, 1), date(2024, 7, 1),
			[]string{"Q1 2024", "Q2 2024"}, []float64{13, 13}},
		{"month", Month, date(2024, 1, 1), date(2026, 1, 1),
			[]string{"2024", "2025"}, []float64{12, 12}},
		{"month partial", Month, date(2024, 11, 1), date(2025, 3, 1),
			[]string{"2024", "2025"}, []float64{2, 2}},
		{"year", Year, date(2020, 1, 1), date(2040, 1, 1),
			[]string{"2020s", "2030s"}, []float64{10, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hs := MajorHeaders(tt.start, tt.end, tt.mode, 1)
			if got := labels(hs); !slices.Equal(got, tt.wantLabels) {
				t.Errorf("labels = %v, want %v", got, tt.wantLabels)
			}
			if got := widths(hs); !slices.Equal(got, tt.wantCols) {
				t.Errorf("widths = %v, want %v", got, tt.wantCols)
			}
		})
	}
}

func TestMajorHeaders_Positions(t *testing.T) {
	hs := MajorHeaders(date(2024, 1, 1), date(2024, 3, 1), Day, 20)
	if len(hs) != 2 || hs[0].X != 0 || hs[1].X != 31*20 || hs[1].Width != 29*20 {
		t.Errorf("headers = %+v", hs)
	}
}

func TestMinorHeaders(t *testing.T) {
	tests := []struct {
		name       string
		mode       ViewMode
		start, end time.Time
		want       []string
	}{
		{"hour", Hour, time.Date(2024, 1, 1, 22, 0, 0, 0, time.UTC), date(2024, 1, 2).Add(time.Hour),
			[]string{"22:00", "23:00", "00:00"}},
		{"day", Day, date(2024, 2, 27), date(2024, 3, 2), []string{"27", "28", "29", "1"}},
		{"week", Week, date(2024, 1, 1), date(2024, 1, 22), []string{"W01", "W02", "W03"}},
		{"week iso year boundary", Week, date(2024, 12, 30), date(2025, 1, 6), []string{"W01"}},
		{"month", Month, date(2024, 11, 1), date(2025, 2, 1), []string{"Nov", "Dec", "Jan"}},
		{"quarter fixed ninety days", Quarter, date(2024, 4, 1), date(2024, 12, 31), []string{"Q2", "Q2", "Q3", "Q4"}},
		{"year", Year, date(2023, 1, 1), date(2026, 1, 1), []string{"2023", "2024", "2025"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hs := MinorHeaders(tt.start, tt.end, tt.mode, 50)
			if got := labels(hs); !slices.Equal(got, tt.want) {
				t.Errorf("labels = %v, want %v", got, tt.want)
			}
			for i, h := range hs {
				if h.X != float64(i)*50 || h.Width != 50 {
					t.Errorf("header %d at %v width %v", i, h.X, h.Width)
				}
			}
		})
	}
}

func TestHeadersMatchGrid(t *testing.T) {
	start, end := date(2024, 1, 1), date(2024, 4, 1)
	for _, m := range []ViewMode{Day, Week, Month} {
		minor := MinorHeaders(start, end, m, 10)
		grid := GridLines(start, end, m, 10)
		if len(grid) != len(minor)+1 && len(grid) != len(minor) {
			t.Errorf("%s: %d grid lines for %d columns", m, len(grid), len(minor))
		}
		var total float64
		for _, h := range MajorHeaders(start, end, m, 10) {
			total += h.Width
		}
		if total != float64(len(minor))*10 {
			t.Errorf("%s: major width %v, want %v", m, total, float64(len(minor))*10)
		}
	}
}
