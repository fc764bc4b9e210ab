package reader

import (
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/vtkio/errors"
	"github.com/wippyai/vtkio/scalar"
	"github.com/wippyai/vtkio/vtk"
)

// Options configures decoding.
type Options struct {
	// ByteOrder of multi-byte values in BINARY files. ASCII files ignore it.
	ByteOrder scalar.ByteOrder
}

// DefaultOptions returns options for big-endian binary payloads.
func DefaultOptions() Options {
	return Options{ByteOrder: scalar.BigEndian}
}

// Read reads all of r and decodes it.
func Read(r io.Reader, opts Options) (*vtk.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.IO(errors.PhaseDecode, nil, err)
	}
	return Decode(data, opts)
}

// Decode parses a complete legacy VTK file held in data.
func Decode(data []byte, opts Options) (*vtk.Document, error) {
	p := &parser{
		src:   data,
		in:    data,
		order: opts.ByteOrder,
		log:   Logger(),
	}
	doc, err := p.document()
	if err != nil {
		p.log.Debug("decode failed", zap.Int("offset", p.offset()), zap.Error(err))
		return nil, err
	}
	p.log.Debug("decode done",
		zap.Stringer("dataset", doc.DataSet.Kind()),
		zap.Stringer("encoding", doc.Encoding),
		zap.Int("bytes", len(data)))
	return doc, nil
}

const versionPrefix = "# vtk DataFile Version"

func (p *parser) document() (*vtk.Document, error) {
	doc := &vtk.Document{}

	line, err := p.line([]string{"header", "version"})
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(strings.ToLower(line), strings.ToLower(versionPrefix)) {
		return nil, errors.Malformed(errors.PhaseDecode, []string{"header", "version"}, "missing '"+versionPrefix+"' line")
	}
	doc.Version, err = parseVersion(strings.TrimSpace(line[len(versionPrefix):]))
	if err != nil {
		return nil, err
	}

	doc.Title, err = p.line([]string{"header", "title"})
	if err != nil {
		return nil, err
	}

	ft, err := p.line([]string{"header", "file_type"})
	if err != nil {
		return nil, err
	}
	enc, ok := scalar.ParseEncoding(strings.TrimSpace(ft))
	if !ok {
		return nil, errors.Malformed(errors.PhaseDecode, []string{"header", "file_type"}, "expected ASCII or BINARY, found "+quote(ft))
	}
	doc.Encoding = enc
	p.enc = enc

	kw, err := p.keyword([]string{"dataset"})
	if err != nil {
		if err == errEnd {
			return nil, missing([]string{"dataset"}, "DATASET")
		}
		return nil, err
	}
	switch kw {
	case "FIELD":
		doc.DataSet, err = p.fieldDataSet()
	case "DATASET":
		doc.DataSet, err = p.dataset()
	default:
		err = errors.Malformed(errors.PhaseDecode, []string{"dataset"}, "expected DATASET or FIELD, found "+quote(kw))
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func parseVersion(s string) (vtk.Version, error) {
	path := []string{"header", "version"}
	major, minor, ok := strings.Cut(s, ".")
	if !ok {
		minor = "0"
	}
	ma, err := scalar.ParseToken[uint8](major)
	if err != nil || !isDigits(major) {
		return vtk.Version{}, errors.Malformed(errors.PhaseDecode, path, "bad version "+quote(s))
	}
	mi, err := scalar.ParseToken[uint8](minor)
	if err != nil || !isDigits(minor) {
		return vtk.Version{}, errors.Malformed(errors.PhaseDecode, path, "bad version "+quote(s))
	}
	return vtk.Version{Major: ma, Minor: mi}, nil
}

func isDigits(s string) bool {
	n, err := scalar.ScanUnsigned([]byte(s))
	return err == nil && n == len(s)
}
