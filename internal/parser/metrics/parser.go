package metrics

import (
	"log/slog"

	"github.com/IgorBayerl/ReportGenerator/quality_report_generator/internal/model"
	"github.com/IgorBayerl/ReportGenerator/quality_report_generator/internal/parser"
)

// MetricsParser merges the JaSoMe XML export with the CK class export.
type MetricsParser struct {
	fileReader parser.FileReader
}

// NewMetricsParser creates a new MetricsParser.
func NewMetricsParser(fileReader parser.FileReader) *MetricsParser {
	return &MetricsParser{fileReader: fileReader}
}

// Name returns the name of the parser.
func (mp *MetricsParser) Name() string {
	return "JaSoMe/CK"
}

// ParseFiles reads both exports and merges them.
func (mp *MetricsParser) ParseFiles(jasomeXMLFile, ckClassCSVFile string) (*model.DesignMetricsResult, error) {
	xmlContent, err := mp.fileReader.ReadFile(jasomeXMLFile)
	if err != nil {
		return nil, err
	}
	csvContent, err := mp.fileReader.ReadFile(ckClassCSVFile)
	if err != nil {
		return nil, err
	}
	return Parse(jasomeXMLFile, xmlContent, ckClassCSVFile, csvContent)
}

// Parse parses both exports and left-joins the CK classes with the JaSoMe
// classes on their canonical name. Every CK row yields one class record;
// JaSoMe-only classes are dropped. Methods come from JaSoMe alone.
func Parse(jasomeXMLFile string, xmlContent []byte, ckClassCSVFile string, csvContent []byte) (*model.DesignMetricsResult, error) {
	jasome, err := parseJasome(jasomeXMLFile, xmlContent)
	if err != nil {
		return nil, err
	}
	ckClasses, err := parseCK(ckClassCSVFile, csvContent)
	if err != nil {
		return nil, err
	}

	return &model.DesignMetricsResult{
		Classes: mergeClasses(ckClasses, jasome.classes),
		Methods: jasome.methods,
	}, nil
}

func mergeClasses(ckClasses []model.ClassMetrics, jasomeClasses []jasomeClass) []model.ClassMetrics {
	byLocation := make(map[string]model.DesignMetrics, len(jasomeClasses))
	for _, c := range jasomeClasses {
		if _, dup := byLocation[c.location]; !dup {
			byLocation[c.location] = c.metrics
		}
	}

	merged := make([]model.ClassMetrics, 0, len(ckClasses))
	unmatched := 0
	for _, class := range ckClasses {
		if design, ok := byLocation[class.Location]; ok {
			class.Design = &design
		} else {
			unmatched++
		}
		merged = append(merged, class)
	}
	if unmatched > 0 {
		slog.Warn("Some CK classes have no JaSoMe metrics, their design columns stay empty.", "unmatched", unmatched, "classes", len(ckClasses))
	}
	return merged
}
