package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/lorenzviz/internal/lorenz"
)

type ExportData struct {
	Sigma  float64      `json:"sigma"`
	Rho    float64      `json:"rho"`
	Beta   float64      `json:"beta"`
	Dt     float64      `json:"dt"`
	Points int          `json:"points"`
	Times  []float64    `json:"times"`
	States [][3]float64 `json:"states"`
}

// ExportJSON writes a run as a single indented JSON document.
func ExportJSON(w io.Writer, meta *RunMetadata, states []lorenz.State, times []float64) error {
	data := ExportData{
		Sigma:  meta.Sigma,
		Rho:    meta.Rho,
		Beta:   meta.Beta,
		Dt:     meta.Dt,
		Points: len(states),
		Times:  times,
		States: make([][3]float64, len(states)),
	}
	for i, s := range states {
		data.States[i] = [3]float64{s.X, s.Y, s.Z}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
