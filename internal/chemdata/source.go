package chemdata

import (
	"fmt"
	"io/fs"
	"log/slog"
	"sync"
)

// Source is one lazily loaded property table. The backing file is
// parsed on the first lookup and never reread; a parse failure is just
// as final and makes every lookup against the source report absence.
type Source struct {
	name string
	fsys fs.FS
	path string

	once sync.Once
	tbl  *Table
	err  error
}

// NewSource describes the table at path within fsys under the given
// name. Nothing is read until the first lookup or an explicit Table
// call.
func NewSource(name string, fsys fs.FS, path string) *Source {
	return &Source{name: name, fsys: fsys, path: path}
}

// Name returns the registry name of the source.
func (s *Source) Name() string { return s.name }

// Table returns the parsed table, loading it on first call.
func (s *Source) Table() (*Table, error) {
	s.once.Do(s.load)
	return s.tbl, s.err
}

func (s *Source) load() {
	f, err := s.fsys.Open(s.path)
	if err != nil {
		s.err = fmt.Errorf("chemdata: open %s: %w", s.path, err)
		slog.Warn("property table unavailable", "table", s.name, "error", s.err)
		return
	}
	defer f.Close()

	tbl, err := ParseTable(s.name, f)
	if err != nil {
		s.err = err
		slog.Warn("property table unavailable", "table", s.name, "error", err)
		return
	}
	s.tbl = tbl
	slog.Debug("loaded property table", "table", s.name, "compounds", tbl.Len())
}

// Value looks up (cas, column), loading the table if needed. Absent
// rows, blank cells and a failed load all report false.
func (s *Source) Value(cas, column string) (float64, bool) {
	tbl, err := s.Table()
	if err != nil {
		return 0, false
	}
	return tbl.Value(cas, column)
}

// Has reports whether the source has a row for cas.
func (s *Source) Has(cas string) bool {
	tbl, err := s.Table()
	if err != nil {
		return false
	}
	return tbl.Has(cas)
}
