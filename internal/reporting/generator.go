package reporting

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/IgorBayerl/ReportGenerator/quality_report_generator/internal/parser/checkstyle"
	"github.com/IgorBayerl/ReportGenerator/quality_report_generator/internal/parser/designite"
	"github.com/IgorBayerl/ReportGenerator/quality_report_generator/internal/parser/jacoco"
	"github.com/IgorBayerl/ReportGenerator/quality_report_generator/internal/parser/metrics"
	"github.com/IgorBayerl/ReportGenerator/quality_report_generator/internal/reporter/markdown"
)

// Section names, in report order.
const (
	SectionTestCoverage  = "Test Coverage"
	SectionDesignMetrics = "Design Metrics"
	SectionCodeStyle     = "Code Style"
	SectionCodeSmells    = "Code Smells"
)

// AggregationError reports the section pipeline that made the report fail.
type AggregationError struct {
	Section string
	Err     error
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Section, e.Err)
}

func (e *AggregationError) Unwrap() error { return e.Err }

// Generate runs the four section pipelines concurrently and assembles the
// Markdown report. The first pipeline failure is returned and no report is
// produced.
func Generate(ctx context.Context, rc IReportContext) (string, error) {
	start := time.Now()
	cfg := rc.ReportConfiguration()
	inputs := cfg.Inputs()
	reader := rc.FileReader()

	var sections markdown.Sections
	g, gctx := errgroup.WithContext(ctx)

	// Each pipeline writes only its own field of sections.
	run := func(section string, out *string, pipeline func() (string, error)) {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return &AggregationError{Section: section, Err: err}
			}
			sectionStart := time.Now()
			rendered, err := pipeline()
			if err != nil {
				return &AggregationError{Section: section, Err: err}
			}
			*out = rendered
			slog.Debug("Section rendered.", "section", section, "duration", time.Since(sectionStart))
			return nil
		})
	}

	run(SectionTestCoverage, &sections.TestCoverage, func() (string, error) {
		percentage, err := jacoco.NewJacocoParser(reader).ParseFile(inputs.JacocoHTML)
		if err != nil {
			return "", err
		}
		return markdown.CoverageSection(percentage), nil
	})

	run(SectionDesignMetrics, &sections.DesignMetrics, func() (string, error) {
		result, err := metrics.NewMetricsParser(reader).ParseFiles(inputs.MetricsXML, inputs.CKClassCSV)
		if err != nil {
			return "", err
		}
		return markdown.DesignMetricsSection(result), nil
	})

	run(SectionCodeStyle, &sections.CodeStyle, func() (string, error) {
		groups, err := checkstyle.NewCheckstyleParser(reader).ParseFile(inputs.CheckstyleXML)
		if err != nil {
			return "", err
		}
		return markdown.CodeStyleSection(groups), nil
	})

	run(SectionCodeSmells, &sections.CodeSmells, func() (string, error) {
		smells, err := designite.NewDesigniteParser(reader, cfg).ParseFiles(inputs.DesigniteDesignCSV, inputs.DesigniteImplementationCSV)
		if err != nil {
			return "", err
		}
		return markdown.CodeSmellsSection(smells), nil
	})

	if err := g.Wait(); err != nil {
		return "", err
	}

	builder := markdown.NewReportBuilder(markdown.Header{
		Title:            cfg.Title(),
		DocumentationURL: cfg.DocumentationURL(),
	})
	report := builder.Build(sections)
	slog.Info("Report generated.", "duration", time.Since(start), "bytes", len(report))
	return report, nil
}
