package domain

// MetricSpec locates and aggregates one per-segment metric, using the same
// ordered-fragment column resolution as KPI definitions.
type MetricSpec struct {
	Name            string
	ColumnFragments []string
	Aggregation     Aggregation
}

// DimensionSpec names a categorical dimension a domain is usually broken down
// by (marketing channel, store region, production line).
type DimensionSpec struct {
	Name             string
	ColumnFragments  []string
	PrimaryMetric    MetricSpec
	SecondaryMetrics []MetricSpec
}

// SegmentMetrics is the metric bundle for one category value.
type SegmentMetrics struct {
	Name     string             `json:"name"`
	Rows     int                `json:"rows"`
	Primary  float64            `json:"primary"`
	Metrics  map[string]float64 `json:"metrics"`
	RowShare float64            `json:"row_share"`
}

// Insight pairs an observation about a segment with a recommended action.
type Insight struct {
	Message string `json:"message"`
	Action  string `json:"action"`
}

// SegmentBreakdown is the analysis of one dimension: segments ranked by the
// primary metric, plus derived insights. Ranking is deterministic regardless
// of input row order.
type SegmentBreakdown struct {
	Dimension      string           `json:"dimension"`
	ResolvedColumn string           `json:"resolved_column"`
	PrimaryMetric  string           `json:"primary_metric"`
	Segments       []SegmentMetrics `json:"segments"`
	BestSegment    string           `json:"best_segment"`
	WorstSegment   string           `json:"worst_segment"`
	Insights       []Insight        `json:"insights"`
}
