package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/wippyai/vtkio"
	"github.com/wippyai/vtkio/reader"
	"github.com/wippyai/vtkio/scalar"
	"github.com/wippyai/vtkio/testbed"
	"github.com/wippyai/vtkio/vtk"
	"github.com/wippyai/vtkio/writer"
)

type config struct {
	in          string
	out         string
	sample      string
	encoding    string
	order       string
	readOrder   string
	info        bool
	interactive bool
	verbose     bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.in, "in", "", "Path to legacy VTK file")
	flag.StringVar(&cfg.out, "out", "", "Write the (converted) file here, - for stdout")
	flag.StringVar(&cfg.sample, "sample", "", "Use a built-in sample dataset instead of -in ("+sampleNames()+")")
	flag.StringVar(&cfg.encoding, "encoding", "", "Output encoding: ascii or binary (default: keep)")
	flag.StringVar(&cfg.order, "order", "be", "Output byte order for binary data: be, le or native")
	flag.StringVar(&cfg.readOrder, "read-order", "be", "Byte order of binary input: be, le or native")
	flag.BoolVar(&cfg.info, "info", false, "Print a section summary")
	flag.BoolVar(&cfg.interactive, "i", false, "Interactive mode with TUI")
	flag.BoolVar(&cfg.verbose, "v", false, "Verbose logging")
	flag.Parse()

	if cfg.in == "" && cfg.sample == "" {
		fmt.Fprintln(os.Stderr, "Usage: vtkconv -in <file.vtk> [-info] [-out file.vtk] [-encoding ascii|binary] [-order be|le]")
		fmt.Fprintln(os.Stderr, "       vtkconv -sample <kind> -out file.vtk")
		fmt.Fprintln(os.Stderr, "       vtkconv -in <file.vtk> -i  (interactive mode)")
		os.Exit(1)
	}

	logger, err := newLogger(cfg.verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	reader.SetLogger(logger)
	writer.SetLogger(logger)

	if err := run(cfg, os.Stdout, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger returns a development logger when verbose, otherwise a
// production logger that only reports warnings and errors.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	return cfg.Build()
}

func sampleNames() string {
	kinds := testbed.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return strings.Join(names, ", ")
}

func parseOrder(flagName, s string) (scalar.ByteOrder, error) {
	o, ok := scalar.ParseByteOrder(s)
	if !ok {
		return 0, fmt.Errorf("-%s: unknown byte order %q", flagName, s)
	}
	return o, nil
}

func run(cfg config, stdout io.Writer, log *zap.Logger) error {
	readOrder, err := parseOrder("read-order", cfg.readOrder)
	if err != nil {
		return err
	}
	order, err := parseOrder("order", cfg.order)
	if err != nil {
		return err
	}

	doc, err := load(cfg, readOrder)
	if err != nil {
		return err
	}
	log.Info("loaded document",
		zap.Stringer("dataset", doc.DataSet.Kind()),
		zap.Stringer("encoding", doc.Encoding))

	if cfg.encoding != "" {
		enc, ok := scalar.ParseEncoding(cfg.encoding)
		if !ok {
			return fmt.Errorf("-encoding: unknown encoding %q", cfg.encoding)
		}
		if err := convert(doc, enc); err != nil {
			return err
		}
	}

	if cfg.interactive {
		if !isTerminal(stdout) {
			return fmt.Errorf("interactive mode needs a terminal")
		}
		return runInteractive(doc, source(cfg))
	}

	if cfg.info || cfg.out == "" {
		if err := writeSummary(stdout, doc, isTerminal(stdout)); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}
	if cfg.out != "" {
		return save(cfg.out, doc, order, stdout)
	}
	return nil
}

func source(cfg config) string {
	if cfg.sample != "" {
		return "sample:" + cfg.sample
	}
	return cfg.in
}

func load(cfg config, order scalar.ByteOrder) (*vtk.Document, error) {
	if cfg.sample != "" {
		kind, ok := testbed.ParseKind(cfg.sample)
		if !ok {
			return nil, fmt.Errorf("-sample: unknown dataset %q (want one of %s)", cfg.sample, sampleNames())
		}
		enc := scalar.ASCII
		if strings.EqualFold(cfg.encoding, "binary") {
			enc = scalar.Binary
		}
		return testbed.Sample(kind, enc), nil
	}

	f, err := os.Open(cfg.in)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	doc, err := vtkio.ReadOrder(f, order)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", cfg.in, err)
	}
	return doc, nil
}

// convert switches doc to enc. Color data changes storage type between
// encodings, so it is rescaled along the way.
func convert(doc *vtk.Document, enc scalar.Encoding) error {
	if doc.Encoding == enc {
		return nil
	}
	doc.Encoding = enc
	if attrs := vtk.AttributesOf(doc.DataSet); attrs != nil {
		for _, list := range [][]vtk.NamedAttribute{attrs.Point, attrs.Cell} {
			for _, na := range list {
				if err := convertColors(na, enc); err != nil {
					return fmt.Errorf("convert %s: %w", na.Name, err)
				}
			}
		}
	}
	return nil
}

func save(path string, doc *vtk.Document, order scalar.ByteOrder, stdout io.Writer) error {
	if path == "-" {
		if _, err := vtkio.Write(stdout, doc, order); err != nil {
			return fmt.Errorf("write: %w", err)
		}
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}
	if _, err := vtkio.Write(f, doc, order); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
