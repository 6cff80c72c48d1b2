package parser

import (
	"github.com/IgorBayerl/ReportGenerator/quality_report_generator/internal/parser/filtering"
)

// ParserConfig defines the lean configuration required by the parsers.
// This consumer-defined interface decouples parsers from the main report configuration.
type ParserConfig interface {
	DesignSmellFilters() filtering.IFilter
	ImplementationSmellFilters() filtering.IFilter
}
