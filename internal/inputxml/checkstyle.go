package inputxml

import "encoding/xml"

// CheckstyleRoot is the <checkstyle> document produced by the checkstyle
// XML formatter.
type CheckstyleRoot struct {
	XMLName xml.Name            `xml:"checkstyle"`
	Version string              `xml:"version,attr"`
	Files   []CheckstyleFileXML `xml:"file"`
}

// CheckstyleFileXML is one checked source file.
type CheckstyleFileXML struct {
	Name   string               `xml:"name,attr"`
	Errors []CheckstyleErrorXML `xml:"error"`
}

// CheckstyleErrorXML is one finding. Line and column are optional in the
// format, so they are kept as strings.
type CheckstyleErrorXML struct {
	Line     string `xml:"line,attr"`
	Column   string `xml:"column,attr"`
	Severity string `xml:"severity,attr"`
	Message  string `xml:"message,attr"`
	Source   string `xml:"source,attr"`
}
