package jacoco

import (
	"bytes"
	"log/slog"
	"strings"

	"golang.org/x/net/html"

	"github.com/IgorBayerl/ReportGenerator/quality_report_generator/internal/model"
	"github.com/IgorBayerl/ReportGenerator/quality_report_generator/internal/parser"
)

// totalCoverageCellID is the id JaCoCo gives the instruction coverage cell of
// the "Total" row in index.html.
const totalCoverageCellID = "c0"

// JacocoParser extracts the total coverage from a JaCoCo HTML summary.
type JacocoParser struct {
	fileReader parser.FileReader
}

// NewJacocoParser creates a new JacocoParser.
func NewJacocoParser(fileReader parser.FileReader) *JacocoParser {
	return &JacocoParser{fileReader: fileReader}
}

// Name returns the name of the parser.
func (jp *JacocoParser) Name() string {
	return "JaCoCo"
}

// ParseFile reads the HTML report at filePath and returns its total coverage.
func (jp *JacocoParser) ParseFile(filePath string) (model.CoveragePercentage, error) {
	content, err := jp.fileReader.ReadFile(filePath)
	if err != nil {
		return "", err
	}
	return Parse(filePath, content)
}

// Parse returns the literal text of the total coverage cell, e.g. "73 %".
func Parse(filePath string, content []byte) (model.CoveragePercentage, error) {
	doc, err := html.Parse(bytes.NewReader(content))
	if err != nil {
		return "", parser.Malformed(filePath, "could not parse coverage HTML", err)
	}

	cell := findElementByID(doc, totalCoverageCellID)
	if cell == nil {
		return "", parser.Malformed(filePath, "no element with id \""+totalCoverageCellID+"\" in coverage report", nil)
	}

	percentage := textContent(cell)
	slog.Debug("Parsed coverage report.", "file", filePath, "total", percentage)
	return model.CoveragePercentage(percentage), nil
}

func findElementByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		for _, a := range n.Attr {
			if a.Key == "id" && a.Val == id {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElementByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var f func(*html.Node)
	f = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			f(c)
		}
	}
	f(n)
	return b.String()
}
