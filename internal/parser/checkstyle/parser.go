package checkstyle

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/IgorBayerl/ReportGenerator/quality_report_generator/internal/inputxml"
	"github.com/IgorBayerl/ReportGenerator/quality_report_generator/internal/model"
	"github.com/IgorBayerl/ReportGenerator/quality_report_generator/internal/parser"
	"github.com/IgorBayerl/ReportGenerator/quality_report_generator/internal/utils"
)

// ruleNameSegment is the position of the check's simple class name in a
// fully-qualified rule such as
// com.puppycrawl.tools.checkstyle.checks.naming.AbstractClassNameCheck.
const ruleNameSegment = 6

// CheckstyleParser turns a checkstyle XML report into issue groups.
type CheckstyleParser struct {
	fileReader parser.FileReader
}

// NewCheckstyleParser creates a new CheckstyleParser.
func NewCheckstyleParser(fileReader parser.FileReader) *CheckstyleParser {
	return &CheckstyleParser{fileReader: fileReader}
}

// Name returns the name of the parser.
func (cp *CheckstyleParser) Name() string {
	return "Checkstyle"
}

// ParseFile reads and parses the report at filePath.
func (cp *CheckstyleParser) ParseFile(filePath string) ([]model.IssueGroup, error) {
	content, err := cp.fileReader.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	return Parse(filePath, content)
}

// Parse converts checkstyle XML into issue groups. Groups appear in the order
// their issue type is first seen; issues keep their order in the report.
func Parse(filePath string, content []byte) ([]model.IssueGroup, error) {
	var root inputxml.CheckstyleRoot
	if err := inputxml.Decode(content, &root); err != nil {
		return nil, parser.Malformed(filePath, "not a checkstyle report", err)
	}
	if len(root.Files) == 0 {
		return nil, parser.Malformed(filePath, "checkstyle report has no <file> elements", nil)
	}

	var groups []model.IssueGroup
	groupIndex := make(map[string]int)

	for _, fileXML := range root.Files {
		fileName := utils.CanonicalClassName(fileXML.Name)
		for _, errXML := range fileXML.Errors {
			issue, err := toStyleIssue(fileName, errXML)
			if err != nil {
				return nil, parser.Malformed(filePath, fmt.Sprintf("file %q", fileXML.Name), err)
			}

			idx, seen := groupIndex[issue.IssueType]
			if !seen {
				idx = len(groups)
				groupIndex[issue.IssueType] = idx
				groups = append(groups, model.IssueGroup{IssueType: issue.IssueType})
			}
			groups[idx].Issues = append(groups[idx].Issues, issue)
		}
	}

	slog.Debug("Parsed checkstyle report.", "file", filePath, "files", len(root.Files), "issueTypes", len(groups))
	return groups, nil
}

func toStyleIssue(fileName string, errXML inputxml.CheckstyleErrorXML) (model.StyleIssue, error) {
	issueType, err := IssueType(errXML.Source)
	if err != nil {
		return model.StyleIssue{}, err
	}
	line, err := parsePosition("line", errXML.Line)
	if err != nil {
		return model.StyleIssue{}, err
	}
	column, err := parsePosition("column", errXML.Column)
	if err != nil {
		return model.StyleIssue{}, err
	}
	return model.StyleIssue{
		IssueType: issueType,
		FileName:  fileName,
		Line:      line,
		Column:    column,
		Message:   errXML.Message,
	}, nil
}

// IssueType derives the display name of an issue from its rule source,
// e.g. "...checks.naming.AbstractClassNameCheck" becomes "Abstract Class Name".
func IssueType(source string) (string, error) {
	segments := strings.Split(source, ".")
	if len(segments) <= ruleNameSegment {
		return "", fmt.Errorf("rule source %q has %d segments, need at least %d", source, len(segments), ruleNameSegment+1)
	}
	return utils.HumanizeRuleName(segments[ruleNameSegment]), nil
}

func parsePosition(attr, raw string) (int, error) {
	v, err := utils.ParseIntOrDefault(raw, 0)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", attr, raw, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("negative %s %d", attr, v)
	}
	return v, nil
}
