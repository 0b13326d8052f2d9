package refrigerant

import (
	"embed"
	"fmt"
	"io"
	"math"
	"path"
	"strings"
	"sync"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cast"

	"github.com/e30n3/freon/internal/spline"
)

//go:embed tables/*.csv
var tableFiles embed.FS

// tableRecord is one CSV line of a property table. Cells are read as text so
// that an empty vapor density can be told apart from zero.
type tableRecord struct {
	Temperature    string `csv:"temperature"`
	VaporViscosity string `csv:"vapor_viscosity"`
	VaporDensity   string `csv:"vapor_density"`
	LiquidDensity  string `csv:"liquid_density"`
}

type catalogEntry struct {
	once  sync.Once
	table Table
	err   error
}

var catalog = func() map[Kind]*catalogEntry {
	m := make(map[Kind]*catalogEntry)
	for _, k := range Kinds() {
		m[k] = &catalogEntry{}
	}
	return m
}()

// Table returns the embedded property table of the refrigerant. The file is
// parsed on first use.
func (k Kind) Table() (Table, error) {
	e, ok := catalog[k]
	if !ok {
		return Table{}, fmt.Errorf("unknown refrigerant %q", string(k))
	}
	e.once.Do(func() {
		f, err := tableFiles.Open(path.Join("tables", k.fileName()))
		if err != nil {
			e.err = err
			return
		}
		defer f.Close()
		e.table, e.err = LoadTable(f)
		if e.err != nil {
			e.err = fmt.Errorf("%s: %w", k, e.err)
		}
	})
	return e.table, e.err
}

/*
LoadTable reads a property table in CSV form.

	Args:
	    r: CSV with the header temperature,vapor_viscosity,vapor_density,liquid_density

	Returns:
	    the validated table; an empty vapor_density cell is a gap
*/
func LoadTable(r io.Reader) (Table, error) {
	var records []*tableRecord
	if err := gocsv.Unmarshal(r, &records); err != nil {
		return Table{}, &spline.TableError{Reason: err.Error()}
	}

	rows := make([]TableRow, len(records))
	for i, rec := range records {
		var err error
		if rows[i].Temperature, err = parseCell(rec.Temperature, false); err != nil {
			return Table{}, rowError(i, "temperature", err)
		}
		if rows[i].VaporViscosity, err = parseCell(rec.VaporViscosity, false); err != nil {
			return Table{}, rowError(i, "vapor_viscosity", err)
		}
		if rows[i].VaporDensity, err = parseCell(rec.VaporDensity, true); err != nil {
			return Table{}, rowError(i, "vapor_density", err)
		}
		if rows[i].LiquidDensity, err = parseCell(rec.LiquidDensity, false); err != nil {
			return Table{}, rowError(i, "liquid_density", err)
		}
	}
	return NewTable(rows)
}

func parseCell(s string, optional bool) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		if optional {
			return math.NaN(), nil
		}
		return 0, fmt.Errorf("empty cell")
	}
	return cast.ToFloat64E(s)
}

func rowError(i int, column string, err error) error {
	return &spline.TableError{Reason: fmt.Sprintf("row %d, %s: %v", i, column, err)}
}
