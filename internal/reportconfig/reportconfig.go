package reportconfig

import (
	"fmt"
	"strings"

	"github.com/IgorBayerl/ReportGenerator/quality_report_generator/internal/logging"
	"github.com/IgorBayerl/ReportGenerator/quality_report_generator/internal/parser/filtering"
)

// InputFiles lists the tool exports a report is built from.
type InputFiles struct {
	CheckstyleXML              string
	JacocoHTML                 string
	MetricsXML                 string
	CKClassCSV                 string
	DesigniteDesignCSV         string
	DesigniteImplementationCSV string
}

// IReportConfiguration defines the configuration for report generation.
type IReportConfiguration interface {
	Inputs() InputFiles
	OutputFile() string
	Title() string
	DocumentationURL() string
	VerbosityLevel() logging.VerbosityLevel
	DesignSmellFilters() filtering.IFilter
	ImplementationSmellFilters() filtering.IFilter
}

// ReportConfiguration is a concrete implementation of IReportConfiguration.
type ReportConfiguration struct {
	Files        InputFiles
	OutFile      string
	CfgTitle     string
	CfgDocsURL   string
	VLevel       logging.VerbosityLevel
	designFilter filtering.IFilter
	implFilter   filtering.IFilter
}

func (rc *ReportConfiguration) Inputs() InputFiles                     { return rc.Files }
func (rc *ReportConfiguration) OutputFile() string                     { return rc.OutFile }
func (rc *ReportConfiguration) Title() string                          { return rc.CfgTitle }
func (rc *ReportConfiguration) DocumentationURL() string               { return rc.CfgDocsURL }
func (rc *ReportConfiguration) VerbosityLevel() logging.VerbosityLevel { return rc.VLevel }
func (rc *ReportConfiguration) DesignSmellFilters() filtering.IFilter  { return rc.designFilter }
func (rc *ReportConfiguration) ImplementationSmellFilters() filtering.IFilter {
	return rc.implFilter
}

// NewReportConfiguration builds a configuration. The patterns of
// filtering.DefaultImplementationSmellFilters always precede the given
// implementation filters, so those categories stay excluded.
func NewReportConfiguration(
	files InputFiles,
	outputFile string,
	title string,
	documentationURL string,
	verbosity logging.VerbosityLevel,
	designSmellFilters []string,
	implementationSmellFilters []string,
) (*ReportConfiguration, error) {
	implementationSmellFilters = append(
		append([]string{}, filtering.DefaultImplementationSmellFilters...),
		implementationSmellFilters...,
	)
	designFilter, err := filtering.NewDefaultFilter(designSmellFilters)
	if err != nil {
		return nil, fmt.Errorf("design smell filters: %w", err)
	}
	implFilter, err := filtering.NewDefaultFilter(implementationSmellFilters)
	if err != nil {
		return nil, fmt.Errorf("implementation smell filters: %w", err)
	}
	return &ReportConfiguration{
		Files:        files,
		OutFile:      outputFile,
		CfgTitle:     title,
		CfgDocsURL:   documentationURL,
		VLevel:       verbosity,
		designFilter: designFilter,
		implFilter:   implFilter,
	}, nil
}

// Validate reports every input path left empty.
func (rc *ReportConfiguration) Validate() error {
	var missing []string
	for _, in := range []struct {
		name string
		path string
	}{
		{"checkstyle-result-xml", rc.Files.CheckstyleXML},
		{"jacoco-html-report", rc.Files.JacocoHTML},
		{"metrics-xml", rc.Files.MetricsXML},
		{"ck-main-class-csv", rc.Files.CKClassCSV},
		{"designite-design-result-csv", rc.Files.DesigniteDesignCSV},
		{"designite-implementation-result-csv", rc.Files.DesigniteImplementationCSV},
	} {
		if strings.TrimSpace(in.path) == "" {
			missing = append(missing, in.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required inputs: %s", strings.Join(missing, ", "))
	}
	return nil
}
