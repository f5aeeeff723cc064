package domain

// Aggregation is the computation applied to a resolved column.
type Aggregation string

const (
	AggregationMean   Aggregation = "mean"
	AggregationMedian Aggregation = "median"
	AggregationSum    Aggregation = "sum"
	AggregationRate   Aggregation = "rate"
)

// Direction states which side of the benchmark is the good one. It is part of
// each KPI definition and never inferred from the KPI name: for
// lower-is-better KPIs (defect rate, churn) a value numerically above the
// benchmark is a bad outcome.
type Direction string

const (
	HigherIsBetter Direction = "higher_is_better"
	LowerIsBetter  Direction = "lower_is_better"
)

// KPIStatus tracks business desirability, not raw numeric comparison.
type KPIStatus string

const (
	StatusAboveTarget KPIStatus = "above_target"
	StatusBelowTarget KPIStatus = "below_target"
	StatusAtTarget    KPIStatus = "at_target"
	StatusUnknown     KPIStatus = "unknown"
)

// KPIDefinition describes how one KPI is located and computed. Definitions
// live in the static catalog and are immutable after process start.
type KPIDefinition struct {
	Name string
	// ColumnFragments are ordered candidate substrings matched
	// case-insensitively against column names; the first column containing
	// any fragment wins.
	ColumnFragments []string
	Aggregation     Aggregation
	Benchmark       float64
	Direction       Direction
	Unit            string
}

// KPIResult is one computed KPI. Value is always a direct aggregate of the
// resolved column; once the calculator emits a result it is frozen and no
// later stage may rewrite it.
type KPIResult struct {
	Name           string    `json:"name"`
	Value          float64   `json:"value"`
	Benchmark      float64   `json:"benchmark"`
	Status         KPIStatus `json:"status"`
	ResolvedColumn string    `json:"resolved_column"`
	Unit           string    `json:"unit"`
	Direction      Direction `json:"direction"`
}

// DomainProfile is a business vertical with its keyword profile and KPI set.
type DomainProfile struct {
	ID                string
	Name              string
	Keywords          []string
	ColumnFragments   []string
	ExpertRole        string
	KPIs              []KPIDefinition
	Dimensions        []DimensionSpec
	ReasoningTemplate string
}

// DetectionResult is produced once per run by the domain detector and
// consumed downstream unmodified.
type DetectionResult struct {
	DomainID        string   `json:"domain_id"`
	DomainName      string   `json:"domain_name"`
	Confidence      float64  `json:"confidence"`
	MatchedKeywords []string `json:"matched_keywords"`
	ExpertRole      string   `json:"expert_role"`
	Reasoning       string   `json:"reasoning"`
}
