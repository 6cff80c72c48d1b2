package markdown

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/IgorBayerl/ReportGenerator/quality_report_generator/internal/model"
)

func TestCoverageSection(t *testing.T) {
	got := CoverageSection("82 %")
	assert.Equal(t, "## Test Coverage\n| Total coverage | 82 % |\n|:-|:-:|\n", got)
}

func TestClassMetricsTable(t *testing.T) {
	classes := []model.ClassMetrics{
		{Location: "com.x.Shape", FanIn: 2, FanOut: 1, TCC: 0.67, Design: &model.DesignMetrics{MIF: 0.5, PublicAttributes: 2, MHF: 0.67}},
		{Location: "com.x.Marker", FanIn: 0, FanOut: 3, TCC: math.NaN(), Design: &model.DesignMetrics{MIF: 0, PublicAttributes: 0, MHF: math.NaN()}},
		{Location: "com.x.Helper", FanIn: 4, FanOut: 0, TCC: 1},
	}

	want := "### Classes\n" +
		"| Class | FAN-IN | FAN-OUT | TCC | MIF | Public Attributes | MHF |\n" +
		"| - | - | - | - | - | - | - |\n" +
		"| com.x.Shape | 2 | 1 | 0.67 | 0.5 | 2 | 0.67 |\n" +
		"| com.x.Marker | 0 | 3 | Not enough methods | 0 | 0 | NaN |\n" +
		"| com.x.Helper | 4 | 0 | 1 |  |  |  |\n"
	got := ClassMetricsTable(classes)
	assert.Equal(t, want, got)
	assert.NotContains(t, got, "undefined")
}

func TestMethodMetricsTable(t *testing.T) {
	methods := []model.MethodMetrics{
		{ClassLocation: "com.x.Shape", MethodName: "public double area()", LineStart: 8, TLOC: 5, NOP: 0, NBD: 1, FIN: 3, FOUT: 1, CC: 2},
		{ClassLocation: "com.x.Shape", MethodName: "boolean or(int a | b)", LineStart: 14, TLOC: 3, NOP: 1, NBD: 0, FIN: 0, FOUT: 0, CC: 1},
	}

	want := "### Methods\n" +
		"| Class | Method | Line | FAN-IN | FAN-OUT | Total Lines of Code | NOP | NBD | McCabe Cyclomatic Complexity |\n" +
		"| - | - | - | - | - | - | - | - | - |\n" +
		"| com.x.Shape | public double area() | 8 | 3 | 1 | 5 | 0 | 1 | 2 |\n" +
		"| com.x.Shape | boolean or(int a \\| b) | 14 | 0 | 0 | 3 | 1 | 0 | 1 |\n"
	assert.Equal(t, want, MethodMetricsTable(methods))
}

func TestDesignMetricsSection_EmptyTables(t *testing.T) {
	got := DesignMetricsSection(&model.DesignMetricsResult{})
	assert.True(t, strings.HasPrefix(got, "## Design Metrics\n### Classes\n"))
	assert.Contains(t, got, "\n\n### Methods\n")
}

func TestCodeStyleSection(t *testing.T) {
	groups := []model.IssueGroup{
		{IssueType: "Abstract Class Name", Issues: []model.StyleIssue{
			{IssueType: "Abstract Class Name", FileName: "com.x.Shape", Line: 10, Column: 2, Message: "M1"},
		}},
		{IssueType: "Magic Number", Issues: []model.StyleIssue{
			{IssueType: "Magic Number", FileName: "com.x.Shape", Line: 12, Column: 0, Message: "'3' is a magic number."},
			{IssueType: "Magic Number", FileName: "com.x.Circle", Line: 4, Column: 9, Message: "'2' is a magic number."},
		}},
	}

	want := "## Code Style\n" +
		"\n\n### Abstract Class Name\n" +
		"- com.x.Shape (10:2)\nM1\n" +
		"\n\n### Magic Number\n" +
		"- com.x.Shape (12:0)\n'3' is a magic number.\n" +
		"- com.x.Circle (4:9)\n'2' is a magic number.\n"
	got := CodeStyleSection(groups)
	assert.Equal(t, want, got)

	bullets := 0
	for _, line := range strings.Split(got, "\n") {
		if strings.HasPrefix(line, "- ") {
			bullets++
		}
	}
	assert.Equal(t, 3, bullets)
}

func TestCodeStyleSection_MultiLineMessage(t *testing.T) {
	groups := []model.IssueGroup{
		{IssueType: "Javadoc Style", Issues: []model.StyleIssue{
			{IssueType: "Javadoc Style", FileName: "com.x.Shape", Line: 3, Column: 1, Message: "First sentence\n- should end\r\nwith a period."},
		}},
	}

	got := CodeStyleSection(groups)
	assert.Equal(t, "## Code Style\n\n\n### Javadoc Style\n- com.x.Shape (3:1)\nFirst sentence - should end with a period.\n", got)
	assert.Equal(t, 1, strings.Count(got, "\n- "))
}

func TestCodeSmellsSection(t *testing.T) {
	smells := &model.CodeSmells{
		Design: []model.CodeSmell{
			{Name: "God Class", Occurrences: []string{"com.x.Shape", "com.y.Registry"}},
		},
		Implementation: []model.CodeSmell{
			{Name: "Magic Number", Occurrences: []string{"com.x.Shape.area"}},
		},
	}

	want := "## Code Smells\n\n" +
		"### Design\n#### God Class\n- com.x.Shape\n- com.y.Registry\n\n" +
		"### Implementation\n#### Magic Number\n- com.x.Shape.area\n\n"
	assert.Equal(t, want, CodeSmellsSection(smells))
}

func TestCodeSmellsSection_EmptyListsRenderNoSubsection(t *testing.T) {
	got := CodeSmellsSection(&model.CodeSmells{
		Implementation: []model.CodeSmell{{Name: "Long Method", Occurrences: []string{"a.B.c"}}},
	})
	assert.NotContains(t, got, "### Design")
	assert.Contains(t, got, "### Implementation\n#### Long Method\n- a.B.c\n")

	assert.Equal(t, "## Code Smells\n\n", CodeSmellsSection(&model.CodeSmells{}))
}
