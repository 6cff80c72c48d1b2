package inputxml

import (
	"bytes"
	"encoding/xml"

	"golang.org/x/net/html/charset"
)

// Decode unmarshals an XML document into v. Documents declaring a non UTF-8
// encoding (checkstyle on Windows agents writes windows-1252) are transcoded.
func Decode(data []byte, v any) error {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	decoder.CharsetReader = charset.NewReaderLabel
	return decoder.Decode(v)
}
