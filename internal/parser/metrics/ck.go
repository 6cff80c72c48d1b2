package metrics

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/IgorBayerl/ReportGenerator/quality_report_generator/internal/model"
	"github.com/IgorBayerl/ReportGenerator/quality_report_generator/internal/parser"
	"github.com/IgorBayerl/ReportGenerator/quality_report_generator/internal/utils"
)

// CK class.csv columns used by the report.
const (
	columnClass  = "class"
	columnFanIn  = "fanin"
	columnFanOut = "fanout"
	columnTCC    = "tcc"
)

// parseCK reads the CK class-level export into class records without the
// JaSoMe side filled in.
func parseCK(filePath string, content []byte) ([]model.ClassMetrics, error) {
	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []model.ClassMetrics{}, nil
	}
	if err != nil {
		return nil, parser.Malformed(filePath, "could not read CSV header", err)
	}
	columns, err := utils.IndexColumns(header, columnClass, columnFanIn, columnFanOut, columnTCC)
	if err != nil {
		return nil, parser.Malformed(filePath, "CK class export", err)
	}

	var classes []model.ClassMetrics
	for rowNum := 2; ; rowNum++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, parser.Malformed(filePath, "could not read CSV row", err)
		}
		class, err := toClassMetrics(record, columns)
		if err != nil {
			return nil, parser.Malformed(filePath, fmt.Sprintf("row %d", rowNum), err)
		}
		classes = append(classes, class)
	}
	return classes, nil
}

func toClassMetrics(record []string, columns map[string]int) (model.ClassMetrics, error) {
	get := func(column string) (string, error) {
		i := columns[column]
		if i >= len(record) {
			return "", fmt.Errorf("no %q value", column)
		}
		return strings.TrimSpace(record[i]), nil
	}

	class, err := get(columnClass)
	if err != nil {
		return model.ClassMetrics{}, err
	}
	rawFanIn, err := get(columnFanIn)
	if err != nil {
		return model.ClassMetrics{}, err
	}
	rawFanOut, err := get(columnFanOut)
	if err != nil {
		return model.ClassMetrics{}, err
	}
	rawTCC, err := get(columnTCC)
	if err != nil {
		return model.ClassMetrics{}, err
	}

	fanIn, err := utils.ParseMetricInt(rawFanIn)
	if err != nil {
		return model.ClassMetrics{}, fmt.Errorf("invalid fanin %q: %w", rawFanIn, err)
	}
	fanOut, err := utils.ParseMetricInt(rawFanOut)
	if err != nil {
		return model.ClassMetrics{}, fmt.Errorf("invalid fanout %q: %w", rawFanOut, err)
	}
	tcc := math.NaN()
	if rawTCC != "" {
		if tcc, err = utils.ParseMetricFloat(rawTCC); err != nil {
			return model.ClassMetrics{}, fmt.Errorf("invalid tcc %q: %w", rawTCC, err)
		}
	}

	return model.ClassMetrics{
		Location: utils.CanonicalClassName(class),
		FanIn:    fanIn,
		FanOut:   fanOut,
		TCC:      utils.RoundTo2(tcc),
	}, nil
}
