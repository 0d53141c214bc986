package models

import (
	"io"
	"strings"
)

// Banner is printed before any section.
const Banner = "◊ Starting TextParser now. ◊"

// Section is the formatted output of one analysis.
type Section struct {
	Kind   Kind
	Header string
	Lines  []string
}

// Report is the human readable result of a run.
type Report struct {
	Sections []Section
}

// Section returns the section produced for kind, if any.
func (r *Report) Section(kind Kind) (Section, bool) {
	for _, s := range r.Sections {
		if s.Kind == kind {
			return s, true
		}
	}
	return Section{}, false
}

// String renders the banner, then each section preceded by a blank line.
func (r *Report) String() string {
	var b strings.Builder
	b.WriteString(Banner)
	b.WriteByte('\n')
	for _, s := range r.Sections {
		b.WriteByte('\n')
		b.WriteString(s.Header)
		b.WriteByte('\n')
		for _, line := range s.Lines {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// WriteTo implements io.WriterTo.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.String())
	return int64(n), err
}
