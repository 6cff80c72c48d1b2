package model

// DesignMetrics are the class metrics taken from the JaSoMe export.
// Ratios are rounded to two decimals; NaN marks a value that could not be
// computed.
type DesignMetrics struct {
	MIF              float64
	PublicAttributes float64
	MHF              float64
}

// ClassMetrics is one CK row merged with its JaSoMe counterpart.
// Design is nil when JaSoMe did not report the class.
type ClassMetrics struct {
	Location string
	FanIn    int
	FanOut   int
	// TCC is NaN when the class has too few methods for cohesion.
	TCC    float64
	Design *DesignMetrics
}

// MethodMetrics is one method of the JaSoMe export.
type MethodMetrics struct {
	ClassLocation string
	MethodName    string
	LineStart     int
	TLOC          int
	NOP           int
	NBD           int
	FIN           int
	FOUT          int
	CC            int
}

// DesignMetricsResult is the output of the metrics merge.
type DesignMetricsResult struct {
	Classes []ClassMetrics
	Methods []MethodMetrics
}
