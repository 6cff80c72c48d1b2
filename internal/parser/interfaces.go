package parser

// FileReader abstracts access to the tool exports so the parsing logic can be
// unit-tested without hitting the file system. The production implementation
// lives in the filereader package; tests use an in-memory map.
type FileReader interface {
	// ReadFile returns the decoded content of the file at path. A file that
	// cannot be opened must be reported as a *MissingInputError.
	ReadFile(path string) ([]byte, error)
}
