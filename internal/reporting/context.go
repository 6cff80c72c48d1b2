package reporting

import (
	"github.com/IgorBayerl/ReportGenerator/quality_report_generator/internal/parser"
	"github.com/IgorBayerl/ReportGenerator/quality_report_generator/internal/reportconfig"
)

// IReportContext defines the context for report generation.
type IReportContext interface {
	ReportConfiguration() reportconfig.IReportConfiguration
	FileReader() parser.FileReader
}

// ReportContext is a concrete implementation of IReportContext.
type ReportContext struct {
	Cfg    reportconfig.IReportConfiguration
	Reader parser.FileReader
}

func (rc *ReportContext) ReportConfiguration() reportconfig.IReportConfiguration { return rc.Cfg }
func (rc *ReportContext) FileReader() parser.FileReader                          { return rc.Reader }

// NewReportContext creates a new ReportContext.
func NewReportContext(config reportconfig.IReportConfiguration, reader parser.FileReader) *ReportContext {
	return &ReportContext{
		Cfg:    config,
		Reader: reader,
	}
}
