package model

// CoveragePercentage is the total coverage cell of the coverage report,
// kept verbatim (e.g. "73 %").
type CoveragePercentage string
