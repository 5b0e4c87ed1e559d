package lpreader

import "github.com/pkg/errors"

// Parser runs the four-stage pipeline of spec.md §2 over a single
// LineSource: lexer -> classifier -> section splitter -> section
// processors -> Model. One Parser owns one LineSource and produces one
// Model, per spec.md §5; there is no shared mutable state across
// instances.
type Parser struct {
	src LineSource
}

// NewParser returns a Parser reading from src. The caller retains
// ownership of src only until Parse is called; Parse always closes src
// exactly once, success or failure, mirroring the teardown discipline
// of the teacher's SolveProb.
func NewParser(src LineSource) *Parser {
	return &Parser{src: src}
}

// Parse runs the full pipeline and returns the finished Model, or a
// wrapped *ParseError on any malformed input. The LineSource is always
// released before Parse returns.
func (p *Parser) Parse() (*Model, error) {
	defer func() {
		_ = p.src.Close()
	}()

	logf(LvlInfo, "starting parse")

	lx := newLexer(p.src)
	toks, err := classify(lx)
	if err != nil {
		return nil, errors.Wrap(err, "Parse failed during lexing/classification")
	}
	logf(LvlDeb, "classified %d tokens", len(toks))

	b := newBuilder()

	buckets, err := splitSections(b.model, toks)
	if err != nil {
		return nil, errors.Wrap(err, "Parse failed while splitting sections")
	}

	if err := processSections(b, buckets); err != nil {
		return nil, errors.Wrap(err, "Parse failed while processing sections")
	}

	logf(LvlInfo, "parse complete: %d variables, %d constraints, %d SOS groups",
		len(b.model.Variables), len(b.model.Constraints), len(b.model.SOSGroups))

	return b.model, nil
}

// Read is the convenience entry point spec.md §6 describes as
// read(source) -> Model.
func Read(src LineSource) (*Model, error) {
	return NewParser(src).Parse()
}

// ReadFile reads and parses the LP document at path.
func ReadFile(path string) (*Model, error) {
	src, err := NewFileSource(path)
	if err != nil {
		return nil, err
	}
	return Read(src)
}

// ReadGzipFile reads and parses a gzip-compressed LP document at path.
func ReadGzipFile(path string) (*Model, error) {
	src, err := NewGzipSource(path)
	if err != nil {
		return nil, err
	}
	return Read(src)
}

// ReadString parses an in-memory LP document.
func ReadString(lp string) (*Model, error) {
	return Read(NewStringSource(lp))
}
