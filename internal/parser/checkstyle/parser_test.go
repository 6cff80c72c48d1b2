package checkstyle

import (
	"errors"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IgorBayerl/ReportGenerator/quality_report_generator/internal/model"
	"github.com/IgorBayerl/ReportGenerator/quality_report_generator/internal/parser"
)

// MockFileReader for testing without hitting the disk.
type MockFileReader struct {
	Files map[string]string
}

func (m *MockFileReader) ReadFile(path string) ([]byte, error) {
	content, ok := m.Files[path]
	if !ok {
		return nil, &parser.MissingInputError{Path: path, Err: os.ErrNotExist}
	}
	return []byte(content), nil
}

const sampleReport = `<?xml version="1.0" encoding="UTF-8"?>
<checkstyle version="10.12.0">
<file name="/home/runner/work/app/src/main/java/com/x/Shape.java">
<error line="10" column="2" severity="warning" message="M1" source="com.puppycrawl.tools.checkstyle.checks.naming.AbstractClassNameCheck"/>
<error line="12" severity="warning" message="M2" source="com.puppycrawl.tools.checkstyle.checks.coding.MagicNumberCheck"/>
</file>
<file name="/home/runner/work/app/src/main/java/com/x/Circle.java">
<error severity="warning" message="M3" source="com.puppycrawl.tools.checkstyle.checks.naming.AbstractClassNameCheck"/>
</file>
<file name="/home/runner/work/app/src/main/java/com/x/Clean.java">
</file>
</checkstyle>`

func TestParse_GroupsByIssueTypeInFirstAppearanceOrder(t *testing.T) {
	groups, err := Parse("checkstyle-result.xml", []byte(sampleReport))
	require.NoError(t, err)

	want := []model.IssueGroup{
		{
			IssueType: "Abstract Class Name",
			Issues: []model.StyleIssue{
				{IssueType: "Abstract Class Name", FileName: "com.x.Shape", Line: 10, Column: 2, Message: "M1"},
				{IssueType: "Abstract Class Name", FileName: "com.x.Circle", Line: 0, Column: 0, Message: "M3"},
			},
		},
		{
			IssueType: "Magic Number",
			Issues: []model.StyleIssue{
				{IssueType: "Magic Number", FileName: "com.x.Shape", Line: 12, Column: 0, Message: "M2"},
			},
		},
	}
	if diff := cmp.Diff(want, groups); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_IssueCountMatchesErrorElements(t *testing.T) {
	groups, err := Parse("checkstyle-result.xml", []byte(sampleReport))
	require.NoError(t, err)

	total := 0
	for _, g := range groups {
		total += len(g.Issues)
	}
	assert.Equal(t, 3, total)
}

func TestParse_SingleFileElement(t *testing.T) {
	doc := `<checkstyle><file name="src/main/java/A.java"><error line="1" column="1" message="x" source="com.puppycrawl.tools.checkstyle.checks.whitespace.WhitespaceAroundCheck"/></file></checkstyle>`

	groups, err := Parse("c.xml", []byte(doc))
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "Whitespace Around", groups[0].IssueType)
	assert.Equal(t, "A", groups[0].Issues[0].FileName)
}

func TestParse_MalformedInputs(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
	}{
		{name: "not xml", doc: "this is not xml"},
		{name: "wrong root element", doc: `<report><file name="a"/></report>`},
		{name: "no file elements", doc: `<checkstyle version="10"></checkstyle>`},
		{name: "short rule source", doc: `<checkstyle><file name="a"><error line="1" source="com.puppycrawl.tools.checkstyle.checks.FinalParametersCheck"/></file></checkstyle>`},
		{name: "non numeric line", doc: `<checkstyle><file name="a"><error line="ten" source="com.puppycrawl.tools.checkstyle.checks.naming.AbstractClassNameCheck"/></file></checkstyle>`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse("checkstyle-result.xml", []byte(tc.doc))
			require.Error(t, err)
			var malformed *parser.MalformedInputError
			assert.True(t, errors.As(err, &malformed), "expected MalformedInputError, got %T: %v", err, err)
		})
	}
}

func TestIssueType(t *testing.T) {
	got, err := IssueType("com.puppycrawl.tools.checkstyle.checks.naming.AbstractClassNameCheck")
	require.NoError(t, err)
	assert.Equal(t, "Abstract Class Name", got)

	got, err = IssueType("com.puppycrawl.tools.checkstyle.checks.sizes.LineLengthCheck.extra")
	require.NoError(t, err)
	assert.Equal(t, "Line Length", got)

	_, err = IssueType("")
	assert.Error(t, err)
}

func TestCheckstyleParser_ParseFile(t *testing.T) {
	reader := &MockFileReader{Files: map[string]string{"checkstyle-result.xml": sampleReport}}
	p := NewCheckstyleParser(reader)

	assert.Equal(t, "Checkstyle", p.Name())

	groups, err := p.ParseFile("checkstyle-result.xml")
	require.NoError(t, err)
	assert.Len(t, groups, 2)

	_, err = p.ParseFile("missing.xml")
	var missing *parser.MissingInputError
	assert.True(t, errors.As(err, &missing))
}
