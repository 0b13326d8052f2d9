package sweep

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// Record is one evaluated droplet.
type Record struct {
	Substance     string  `csv:"substance"`
	Temperature   float64 `csv:"temperature_c"`
	DiameterMM    float64 `csv:"diameter_mm"`
	Archimedes    float64 `csv:"archimedes"`
	Reynolds      float64 `csv:"reynolds"`
	DriftVelocity float64 `csv:"drift_velocity_m_s"`
}

// Series is the drift velocity against diameter for one curve.
type Series struct {
	Label         string
	DiameterMM    []float64
	DriftVelocity []float64
}

// Recorder collects the records of a sweep in evaluation order.
type Recorder struct {
	records []Record
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record appends r.
func (rec *Recorder) Record(r Record) {
	rec.records = append(rec.records, r)
}

// Records returns the collected records.
func (rec *Recorder) Records() []Record {
	return append([]Record(nil), rec.records...)
}

// Len returns the number of records.
func (rec *Recorder) Len() int {
	return len(rec.records)
}

// WriteCSV writes all records with a header line.
func (rec *Recorder) WriteCSV(w io.Writer) error {
	records := make([]*Record, len(rec.records))
	for i := range rec.records {
		records[i] = &rec.records[i]
	}
	return gocsv.Marshal(records, w)
}

// BySubstance labels a record with its refrigerant.
func BySubstance(r Record) string {
	return r.Substance
}

// ByTemperature labels a record with its temperature.
func ByTemperature(r Record) string {
	return fmt.Sprintf("%s t=%g", r.Substance, r.Temperature)
}

// Series groups the records into curves keyed by label, in order of first
// appearance.
func (rec *Recorder) Series(label func(Record) string) []Series {
	var ret []Series
	index := make(map[string]int)
	for _, r := range rec.records {
		l := label(r)
		i, ok := index[l]
		if !ok {
			i = len(ret)
			index[l] = i
			ret = append(ret, Series{Label: l})
		}
		ret[i].DiameterMM = append(ret[i].DiameterMM, r.DiameterMM)
		ret[i].DriftVelocity = append(ret[i].DriftVelocity, r.DriftVelocity)
	}
	return ret
}
