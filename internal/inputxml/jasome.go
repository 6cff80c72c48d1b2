package inputxml

import "encoding/xml"

// JasomeProject is the root of a JaSoMe metrics export:
// Project/Packages/Package/Classes/Class/Methods/Method, each level carrying
// its own Metrics list.
type JasomeProject struct {
	XMLName  xml.Name           `xml:"Project"`
	Metrics  *MetricsXML        `xml:"Metrics"`
	Packages *JasomePackagesXML `xml:"Packages"`
}

type JasomePackagesXML struct {
	Package []JasomePackageXML `xml:"Package"`
}

type JasomePackageXML struct {
	Name    string            `xml:"name,attr"`
	Metrics *MetricsXML       `xml:"Metrics"`
	Classes *JasomeClassesXML `xml:"Classes"`
}

type JasomeClassesXML struct {
	Class []JasomeClassXML `xml:"Class"`
}

type JasomeClassXML struct {
	Name       string            `xml:"name,attr"`
	SourceFile string            `xml:"sourceFile,attr"`
	LineStart  string            `xml:"lineStart,attr"`
	LineEnd    string            `xml:"lineEnd,attr"`
	Metrics    *MetricsXML       `xml:"Metrics"`
	Methods    *JasomeMethodsXML `xml:"Methods"`
}

type JasomeMethodsXML struct {
	Method []JasomeMethodXML `xml:"Method"`
}

type JasomeMethodXML struct {
	Name        string      `xml:"name,attr"`
	Constructor string      `xml:"constructor,attr"`
	LineStart   string      `xml:"lineStart,attr"`
	LineEnd     string      `xml:"lineEnd,attr"`
	Metrics     *MetricsXML `xml:"Metrics"`
}

// MetricsXML is a list of named metric values.
type MetricsXML struct {
	Metric []MetricXML `xml:"Metric"`
}

type MetricXML struct {
	Name        string `xml:"name,attr"`
	Description string `xml:"description,attr"`
	Value       string `xml:"value,attr"`
}
