package filereader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/IgorBayerl/ReportGenerator/quality_report_generator/internal/filesystem"
	"github.com/IgorBayerl/ReportGenerator/quality_report_generator/internal/parser"
)

// Reader reads tool exports from a Filesystem and decodes them to UTF-8.
// It implements parser.FileReader.
type Reader struct {
	fs filesystem.Filesystem
}

// New returns a Reader over fs. A nil fs means the host file system.
func New(fs filesystem.Filesystem) *Reader {
	if fs == nil {
		fs = filesystem.DefaultFS{}
	}
	return &Reader{fs: fs}
}

// ReadFile returns the content of path with any byte order mark removed.
// UTF-16 exports (PowerShell redirections on Windows agents) are converted to UTF-8.
func (r *Reader) ReadFile(path string) ([]byte, error) {
	if path == "" {
		return nil, &parser.MissingInputError{Path: path, Err: errors.New("no path configured")}
	}
	stat, err := r.fs.Stat(path)
	if err != nil {
		return nil, &parser.MissingInputError{Path: path, Err: err}
	}
	if stat.IsDir() {
		return nil, &parser.MissingInputError{Path: path, Err: errors.New("path is a directory")}
	}

	raw, err := r.fs.ReadFile(path)
	if err != nil {
		return nil, &parser.MissingInputError{Path: path, Err: err}
	}

	decoded, err := decode(raw)
	if err != nil {
		return nil, parser.Malformed(path, "could not decode text", err)
	}
	if abs, err := r.fs.Abs(path); err == nil {
		path = abs
	}
	slog.Debug("Read input file.", "path", path, "bytes", len(decoded))
	return decoded, nil
}

// decode strips a UTF-8 BOM or transcodes UTF-16 with a BOM. Input without a
// BOM is returned as is.
func decode(raw []byte) ([]byte, error) {
	if !hasBOM(raw) {
		return raw, nil
	}
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, err := io.ReadAll(transform.NewReader(bytes.NewReader(raw), decoder))
	if err != nil {
		return nil, fmt.Errorf("transcoding input: %w", err)
	}
	return out, nil
}

func hasBOM(raw []byte) bool {
	return bytes.HasPrefix(raw, []byte{0xEF, 0xBB, 0xBF}) ||
		bytes.HasPrefix(raw, []byte{0xFE, 0xFF}) ||
		bytes.HasPrefix(raw, []byte{0xFF, 0xFE})
}
