package cache

// Keyer builds cache keys for each cached stage.
type Keyer interface {
	// GraphKey identifies results that depend only on the schedule, such
	// as the audit and the topological order.
	GraphKey(scheduleHash string) string
	// LayoutKey identifies a computed timeline layout.
	LayoutKey(scheduleHash string, opts LayoutKeyOpts) string
	// ArtifactKey identifies one rendered output.
	ArtifactKey(scheduleHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts holds the layout options that change the result.
type LayoutKeyOpts struct {
	View        string  `json:"view"`
	Start       string  `json:"start,omitempty"`
	End         string  `json:"end,omitempty"`
	ColumnWidth float64 `json:"column_width"`
	RowHeight   float64 `json:"row_height"`
	BarHeight   float64 `json:"bar_height"`
	Today       string  `json:"today,omitempty"`
}

// ArtifactKeyOpts holds the render options that change the result.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
	View   string `json:"view"`
	Layout string `json:"layout,omitempty"` // layout key the artifact was drawn from
}

// DefaultKeyer hashes options into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// GraphKey returns "graph:<scheduleHash>".
func (DefaultKeyer) GraphKey(scheduleHash string) string {
	return "graph:" + scheduleHash
}

// LayoutKey returns "layout:<hash of schedule hash and options>".
func (DefaultKeyer) LayoutKey(scheduleHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", scheduleHash, opts)
}

// ArtifactKey returns "artifact:<hash of schedule hash and options>".
func (DefaultKeyer) ArtifactKey(scheduleHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", scheduleHash, opts)
}
