package markdown

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/IgorBayerl/ReportGenerator/quality_report_generator/internal/model"
	"github.com/IgorBayerl/ReportGenerator/quality_report_generator/internal/utils"
)

// NotEnoughMethods replaces a TCC value that could not be computed.
const NotEnoughMethods = "Not enough methods"

var (
	classColumns = []string{"Class", "FAN-IN", "FAN-OUT", "TCC", "MIF", "Public Attributes", "MHF"}

	methodColumns = []string{"Class", "Method", "Line", "FAN-IN", "FAN-OUT", "Total Lines of Code", "NOP", "NBD", "McCabe Cyclomatic Complexity"}
)

// CoverageSection renders the one-row test coverage table.
func CoverageSection(percentage model.CoveragePercentage) string {
	var b strings.Builder
	b.WriteString("## Test Coverage\n")
	b.WriteString(tableRow("Total coverage", string(percentage)))
	b.WriteString("|:-|:-:|\n")
	return b.String()
}

// DesignMetricsSection renders the class and method metric tables.
func DesignMetricsSection(result *model.DesignMetricsResult) string {
	var b strings.Builder
	b.WriteString("## Design Metrics\n")
	b.WriteString(ClassMetricsTable(result.Classes))
	b.WriteString("\n")
	b.WriteString(MethodMetricsTable(result.Methods))
	return b.String()
}

// ClassMetricsTable renders one row per merged class record. Classes without
// JaSoMe metrics get empty MIF, Public Attributes and MHF cells.
func ClassMetricsTable(classes []model.ClassMetrics) string {
	var b strings.Builder
	b.WriteString("### Classes\n")
	b.WriteString(tableRow(classColumns...))
	b.WriteString(separatorRow(len(classColumns)))
	for _, c := range classes {
		mif, pa, mhf := "", "", ""
		if c.Design != nil {
			mif = utils.FormatNumber(c.Design.MIF)
			pa = utils.FormatNumber(c.Design.PublicAttributes)
			mhf = utils.FormatNumber(c.Design.MHF)
		}
		b.WriteString(tableRow(
			c.Location,
			strconv.Itoa(c.FanIn),
			strconv.Itoa(c.FanOut),
			formatTCC(c.TCC),
			mif,
			pa,
			mhf,
		))
	}
	return b.String()
}

// MethodMetricsTable renders one row per method.
func MethodMetricsTable(methods []model.MethodMetrics) string {
	var b strings.Builder
	b.WriteString("### Methods\n")
	b.WriteString(tableRow(methodColumns...))
	b.WriteString(separatorRow(len(methodColumns)))
	for _, m := range methods {
		b.WriteString(tableRow(
			m.ClassLocation,
			m.MethodName,
			strconv.Itoa(m.LineStart),
			strconv.Itoa(m.FIN),
			strconv.Itoa(m.FOUT),
			strconv.Itoa(m.TLOC),
			strconv.Itoa(m.NOP),
			strconv.Itoa(m.NBD),
			strconv.Itoa(m.CC),
		))
	}
	return b.String()
}

// CodeStyleSection renders one heading per issue type followed by a bullet
// per finding and its message.
func CodeStyleSection(groups []model.IssueGroup) string {
	var b strings.Builder
	b.WriteString("## Code Style\n")
	for _, g := range groups {
		fmt.Fprintf(&b, "\n\n### %s\n", g.IssueType)
		for _, issue := range g.Issues {
			fmt.Fprintf(&b, "- %s (%d:%d)\n", issue.FileName, issue.Line, issue.Column)
			b.WriteString(singleLine(issue.Message))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// CodeSmellsSection renders the Design and Implementation subsections. An
// empty list renders no subsection.
func CodeSmellsSection(smells *model.CodeSmells) string {
	var b strings.Builder
	b.WriteString("## Code Smells\n\n")
	b.WriteString(smellSubsection(model.DesignSmell, smells.Design))
	b.WriteString(smellSubsection(model.ImplementationSmell, smells.Implementation))
	return b.String()
}

func smellSubsection(granularity model.SmellGranularity, smells []model.CodeSmell) string {
	if len(smells) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "### %s\n", granularity)
	for _, smell := range smells {
		fmt.Fprintf(&b, "#### %s\n", smell.Name)
		for _, occurrence := range smell.Occurrences {
			fmt.Fprintf(&b, "- %s\n", occurrence)
		}
	}
	b.WriteString("\n")
	return b.String()
}

func formatTCC(tcc float64) string {
	if math.IsNaN(tcc) {
		return NotEnoughMethods
	}
	return utils.FormatNumber(tcc)
}

func tableRow(cells ...string) string {
	escaped := make([]string, len(cells))
	for i, c := range cells {
		escaped[i] = escapeCell(c)
	}
	return "| " + strings.Join(escaped, " | ") + " |\n"
}

func separatorRow(columns int) string {
	return "|" + strings.Repeat(" - |", columns) + "\n"
}

func escapeCell(s string) string {
	return singleLine(strings.ReplaceAll(s, "|", `\|`))
}

// singleLine keeps free text on one Markdown line.
func singleLine(s string) string {
	return newlineReplacer.Replace(s)
}

var newlineReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")
