package markdown

import (
	"fmt"
	"strings"
)

// Default document header, as posted on pull requests.
const (
	DefaultTitle            = "Report"
	DefaultIntro            = "You can find below the quality assessment of the project with regards to test coverage, design metrics, code style and code smells."
	DefaultDocumentationURL = "https://github.com/tupac-rocher/student-friendly-pipeline-example#feedback-report"
)

// Header is the text placed above the report sections.
type Header struct {
	Title            string
	Intro            string
	DocumentationURL string
}

// DefaultHeader returns the header used when nothing is configured.
func DefaultHeader() Header {
	return Header{Title: DefaultTitle, Intro: DefaultIntro, DocumentationURL: DefaultDocumentationURL}
}

// Sections holds the rendered report sections.
type Sections struct {
	TestCoverage  string
	DesignMetrics string
	CodeStyle     string
	CodeSmells    string
}

// ReportBuilder assembles rendered sections into the final document.
type ReportBuilder struct {
	header Header
}

// NewReportBuilder creates a builder. Empty header fields fall back to the defaults.
func NewReportBuilder(header Header) *ReportBuilder {
	defaults := DefaultHeader()
	if header.Title == "" {
		header.Title = defaults.Title
	}
	if header.Intro == "" {
		header.Intro = defaults.Intro
	}
	if header.DocumentationURL == "" {
		header.DocumentationURL = defaults.DocumentationURL
	}
	return &ReportBuilder{header: header}
}

// Build concatenates the sections in their fixed order: Test Coverage,
// Design Metrics, Code Style, Code Smells.
func (b *ReportBuilder) Build(sections Sections) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n", b.header.Title)
	sb.WriteString(b.header.Intro)
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "For more information check the [documentation](%s)\n", b.header.DocumentationURL)
	sb.WriteString(sections.TestCoverage)
	sb.WriteString(sections.DesignMetrics)
	sb.WriteString(sections.CodeStyle)
	sb.WriteString(sections.CodeSmells)
	return sb.String()
}
