package cli

import (
	"time"

	"github.com/spf13/cobra"

	gerrors "github.com/matzehuels/ganttline/pkg/errors"
	"github.com/matzehuels/ganttline/pkg/pipeline"
)

// dateLayout is the format of date flags.
const dateLayout = "2006-01-02"

// parseDate reads a date flag. An empty value yields the zero time.
func parseDate(flag, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, gerrors.Wrap(gerrors.ErrCodeInvalidInput, err, "--%s wants YYYY-MM-DD", flag)
	}
	return t, nil
}

// timelineFlags are the layout flags shared by layout and render.
type timelineFlags struct {
	view        string
	from, to    string
	today       string
	columnWidth float64
	noCache     bool
}

func (f *timelineFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.view, "view", "", "view mode: hour, day, week, month, quarter, year")
	cmd.Flags().StringVar(&f.from, "from", "", "range start (YYYY-MM-DD, default: schedule span)")
	cmd.Flags().StringVar(&f.to, "to", "", "range end (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.today, "today", "", "date of the today marker (YYYY-MM-DD, default: now)")
	cmd.Flags().Float64Var(&f.columnWidth, "column-width", 0, "column width in pixels")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
}

// apply copies the flags into opts and fills the rest from the config file.
func (f *timelineFlags) apply(c *CLI, opts *pipeline.Options) error {
	var err error
	if opts.Start, err = parseDate("from", f.from); err != nil {
		return err
	}
	if opts.End, err = parseDate("to", f.to); err != nil {
		return err
	}
	if opts.Today, err = parseDate("today", f.today); err != nil {
		return err
	}
	opts.View = f.view
	opts.ColumnWidth = f.columnWidth
	c.layoutDefaults(opts)
	return nil
}
