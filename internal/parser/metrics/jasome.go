package metrics

import (
	"fmt"
	"math"

	"github.com/IgorBayerl/ReportGenerator/quality_report_generator/internal/inputxml"
	"github.com/IgorBayerl/ReportGenerator/quality_report_generator/internal/model"
	"github.com/IgorBayerl/ReportGenerator/quality_report_generator/internal/parser"
	"github.com/IgorBayerl/ReportGenerator/quality_report_generator/internal/utils"
)

// JaSoMe metric names.
const (
	metricMIF  = "MIF"  // method inheritance factor
	metricAv   = "Av"   // public attributes
	metricPMd  = "PMd"  // private methods
	metricMd   = "Md"   // methods
	metricVG   = "VG"   // cyclomatic complexity
	metricNOP  = "NOP"  // parameters
	metricNBD  = "NBD"  // nested block depth
	metricFin  = "Fin"  // fan-in
	metricFout = "Fout" // fan-out
	metricTLOC = "TLOC" // total lines of code
)

var (
	classMetricNames  = []string{metricMIF, metricAv, metricPMd, metricMd}
	methodMetricNames = []string{metricVG, metricNOP, metricNBD, metricFin, metricFout, metricTLOC}
)

// jasomeClass is a class of the JaSoMe export keyed by its canonical name.
type jasomeClass struct {
	location string
	metrics  model.DesignMetrics
}

// jasomeResult holds the flattened JaSoMe export.
type jasomeResult struct {
	classes []jasomeClass
	methods []model.MethodMetrics
}

// parseJasome flattens Project/Packages/Package/Classes/Class into class and
// method records.
func parseJasome(filePath string, content []byte) (*jasomeResult, error) {
	var project inputxml.JasomeProject
	if err := inputxml.Decode(content, &project); err != nil {
		return nil, parser.Malformed(filePath, "not a JaSoMe metrics export", err)
	}
	if project.Packages == nil || len(project.Packages.Package) == 0 {
		return nil, parser.Malformed(filePath, "missing Project/Packages/Package elements", nil)
	}

	result := &jasomeResult{}
	for _, pkgXML := range project.Packages.Package {
		if pkgXML.Classes == nil || len(pkgXML.Classes.Class) == 0 {
			return nil, parser.Malformed(filePath, fmt.Sprintf("package %q has no Classes/Class elements", pkgXML.Name), nil)
		}
		for _, classXML := range pkgXML.Classes.Class {
			location := utils.CanonicalClassName(classXML.SourceFile)

			designMetrics, err := toDesignMetrics(classXML.Metrics)
			if err != nil {
				return nil, parser.Malformed(filePath, fmt.Sprintf("class %q", location), err)
			}
			result.classes = append(result.classes, jasomeClass{location: location, metrics: designMetrics})

			if classXML.Methods == nil {
				continue
			}
			for _, methodXML := range classXML.Methods.Method {
				method, err := toMethodMetrics(location, methodXML)
				if err != nil {
					return nil, parser.Malformed(filePath, fmt.Sprintf("method %q of class %q", methodXML.Name, location), err)
				}
				result.methods = append(result.methods, method)
			}
		}
	}
	return result, nil
}

func toDesignMetrics(metricsXML *inputxml.MetricsXML) (model.DesignMetrics, error) {
	values, err := selectMetrics(metricsXML, classMetricNames, utils.ParseMetricFloat, math.NaN())
	if err != nil {
		return model.DesignMetrics{}, err
	}
	return model.DesignMetrics{
		MIF:              utils.RoundTo2(values[metricMIF]),
		PublicAttributes: values[metricAv],
		MHF:              methodHidingFactor(values[metricPMd], values[metricMd]),
	}, nil
}

// methodHidingFactor is 1 - privateMethods/methods, NaN when the class
// declares no methods.
func methodHidingFactor(privateMethods, methods float64) float64 {
	if methods == 0 || math.IsNaN(methods) || math.IsNaN(privateMethods) {
		return math.NaN()
	}
	return utils.RoundTo2(1 - privateMethods/methods)
}

func toMethodMetrics(location string, methodXML inputxml.JasomeMethodXML) (model.MethodMetrics, error) {
	values, err := selectMetrics(methodXML.Metrics, methodMetricNames, utils.ParseMetricInt, 0)
	if err != nil {
		return model.MethodMetrics{}, err
	}
	lineStart, err := utils.ParseIntOrDefault(methodXML.LineStart, 0)
	if err != nil {
		return model.MethodMetrics{}, fmt.Errorf("invalid lineStart %q: %w", methodXML.LineStart, err)
	}
	return model.MethodMetrics{
		ClassLocation: location,
		MethodName:    methodXML.Name,
		LineStart:     lineStart,
		TLOC:          values[metricTLOC],
		NOP:           values[metricNOP],
		NBD:           values[metricNBD],
		FIN:           values[metricFin],
		FOUT:          values[metricFout],
		CC:            values[metricVG],
	}, nil
}

// selectMetrics builds a name to value map for the wanted metrics in one pass.
// Wanted metrics missing from the list keep the fallback value.
func selectMetrics[T any](metricsXML *inputxml.MetricsXML, wanted []string, parse func(string) (T, error), fallback T) (map[string]T, error) {
	values := make(map[string]T, len(wanted))
	for _, name := range wanted {
		values[name] = fallback
	}
	if metricsXML == nil {
		return values, nil
	}
	for _, m := range metricsXML.Metric {
		if _, ok := values[m.Name]; !ok {
			continue
		}
		v, err := parse(m.Value)
		if err != nil {
			return nil, fmt.Errorf("metric %s has invalid value %q: %w", m.Name, m.Value, err)
		}
		values[m.Name] = v
	}
	return values, nil
}
