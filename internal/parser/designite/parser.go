package designite

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/IgorBayerl/ReportGenerator/quality_report_generator/internal/model"
	"github.com/IgorBayerl/ReportGenerator/quality_report_generator/internal/parser"
	"github.com/IgorBayerl/ReportGenerator/quality_report_generator/internal/parser/filtering"
	"github.com/IgorBayerl/ReportGenerator/quality_report_generator/internal/utils"
)

const (
	columnPackage = "Package Name"
	columnType    = "Type Name"
	columnSmell   = "Code Smell"
	columnMethod  = "Method Name"
)

// DesigniteParser groups the rows of the Designite design and implementation
// smell exports by smell name.
type DesigniteParser struct {
	fileReader parser.FileReader
	config     parser.ParserConfig
}

// NewDesigniteParser creates a new DesigniteParser.
func NewDesigniteParser(fileReader parser.FileReader, config parser.ParserConfig) *DesigniteParser {
	return &DesigniteParser{fileReader: fileReader, config: config}
}

// Name returns the name of the parser.
func (dp *DesigniteParser) Name() string {
	return "Designite"
}

// ParseFiles reads both exports and returns the grouped smells.
func (dp *DesigniteParser) ParseFiles(designFile, implementationFile string) (*model.CodeSmells, error) {
	design, err := dp.parseFile(designFile, model.DesignSmell, dp.config.DesignSmellFilters())
	if err != nil {
		return nil, err
	}
	implementation, err := dp.parseFile(implementationFile, model.ImplementationSmell, dp.config.ImplementationSmellFilters())
	if err != nil {
		return nil, err
	}
	return &model.CodeSmells{Design: design, Implementation: implementation}, nil
}

func (dp *DesigniteParser) parseFile(filePath string, granularity model.SmellGranularity, filter filtering.IFilter) ([]model.CodeSmell, error) {
	content, err := dp.fileReader.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	return Parse(filePath, content, granularity, filter)
}

// Parse groups the rows of one Designite CSV export by smell name, in order of
// first appearance. Smell names rejected by filter are dropped. A nil filter
// keeps everything.
func Parse(filePath string, content []byte, granularity model.SmellGranularity, filter filtering.IFilter) ([]model.CodeSmell, error) {
	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		// An empty export has no smells.
		return nil, nil
	}
	if err != nil {
		return nil, parser.Malformed(filePath, "could not read CSV header", err)
	}

	required := []string{columnPackage, columnType, columnSmell}
	if granularity == model.ImplementationSmell {
		required = append(required, columnMethod)
	}
	columns, err := utils.IndexColumns(header, required...)
	if err != nil {
		return nil, parser.Malformed(filePath, granularity.String()+" smell export", err)
	}

	var smells []model.CodeSmell
	smellIndex := make(map[string]int)
	excluded := make(map[string]struct{})

	for rowNum := 2; ; rowNum++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, parser.Malformed(filePath, "could not read CSV row", err)
		}
		if isBlank(record) {
			continue
		}

		name, err := field(record, columns, columnSmell, rowNum)
		if err != nil {
			return nil, parser.Malformed(filePath, "invalid row", err)
		}
		if _, skip := excluded[name]; skip {
			continue
		}
		idx, seen := smellIndex[name]
		if !seen {
			if filter != nil && !filter.IsElementIncludedInReport(name) {
				excluded[name] = struct{}{}
				continue
			}
			idx = len(smells)
			smellIndex[name] = idx
			smells = append(smells, model.CodeSmell{Name: name})
		}

		occurrence, err := occurrenceOf(record, columns, granularity, rowNum)
		if err != nil {
			return nil, parser.Malformed(filePath, "invalid row", err)
		}
		smells[idx].Occurrences = append(smells[idx].Occurrences, occurrence)
	}

	if len(excluded) > 0 {
		slog.Debug("Filtered smell categories.", "file", filePath, "granularity", granularity.String(), "excluded", len(excluded))
	}
	return smells, nil
}

// occurrenceOf builds "package.Type" or "package.Type.method".
func occurrenceOf(record []string, columns map[string]int, granularity model.SmellGranularity, rowNum int) (string, error) {
	parts := []string{columnPackage, columnType}
	if granularity == model.ImplementationSmell {
		parts = append(parts, columnMethod)
	}
	values := make([]string, 0, len(parts))
	for _, column := range parts {
		v, err := field(record, columns, column, rowNum)
		if err != nil {
			return "", err
		}
		values = append(values, v)
	}
	return strings.Join(values, "."), nil
}

func field(record []string, columns map[string]int, column string, rowNum int) (string, error) {
	i := columns[column]
	if i >= len(record) {
		return "", fmt.Errorf("row %d has no %q value", rowNum, column)
	}
	return record[i], nil
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
