// Package telemetry writes periodic simulation samples as CSV.
package telemetry

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// Sample is one row of the trace.
type Sample struct {
	Tick      uint64  `csv:"tick"`
	Stage     string  `csv:"stage"`
	PlayerX   float64 `csv:"player_x"`
	PlayerY   float64 `csv:"player_y"`
	SpeedX    float64 `csv:"speed_x"`
	SpeedY    float64 `csv:"speed_y"`
	OnFloor   bool    `csv:"on_floor"`
	Health    int     `csv:"health"`
	Lives     int     `csv:"lives"`
	Coins     int     `csv:"coins"`
	Enemies   int     `csv:"enemies"`
	Items     int     `csv:"items"`
	Effects   int     `csv:"effects"`
	CameraX   float64 `csv:"camera_x"`
	CameraY   float64 `csv:"camera_y"`
	DroppedMS int64   `csv:"dropped_ms"`
}

// Recorder writes every Nth sample it is given. A nil Recorder discards
// everything.
type Recorder struct {
	w             io.Writer
	every         uint64
	headerWritten bool
	rows          int
}

// NewRecorder returns a recorder writing to w. every <= 1 keeps all samples.
func NewRecorder(w io.Writer, every uint64) *Recorder {
	if every < 1 {
		every = 1
	}
	return &Recorder{w: w, every: every}
}

// Record writes s if its tick falls on the sampling interval.
func (r *Recorder) Record(s Sample) error {
	if r == nil || s.Tick%r.every != 0 {
		return nil
	}

	records := []Sample{s}
	if !r.headerWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, r.w); err != nil {
			return fmt.Errorf("writing telemetry: %w", err)
		}
		r.headerWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, r.w); err != nil {
			return fmt.Errorf("writing telemetry: %w", err)
		}
	}
	r.rows++
	return nil
}

// Rows is the number of samples written so far.
func (r *Recorder) Rows() int {
	if r == nil {
		return 0
	}
	return r.rows
}
