// Package storage persists finished simulation runs to disk: a
// metadata.json per run plus the sampled trajectory as CSV.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/lorenzviz/internal/lorenz"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Sigma     float64   `json:"sigma"`
	Rho       float64   `json:"rho"`
	Beta      float64   `json:"beta"`
	Dt        float64   `json:"dt"`
	SeedX     float64   `json:"seed_x"`
	SeedY     float64   `json:"seed_y"`
	SeedZ     float64   `json:"seed_z"`
	Points    int       `json:"points"`
	Duration  float64   `json:"duration"`
}

// Save writes one finished run and returns its generated ID. The
// trajectory CSV carries one row per retained point: time,x,y,z.
func (s *Store) Save(p lorenz.Params, dt float64, seed lorenz.State, states []lorenz.State, times []float64) (string, error) {
	runID := fmt.Sprintf("lorenz_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now(),
		Sigma:     p.Sigma,
		Rho:       p.Rho,
		Beta:      p.Beta,
		Dt:        dt,
		SeedX:     seed.X,
		SeedY:     seed.Y,
		SeedZ:     seed.Z,
		Points:    len(states),
	}
	if len(times) > 0 {
		meta.Duration = times[len(times)-1]
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "trajectory.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"time", "x", "y", "z"}); err != nil {
		return "", err
	}
	for i, st := range states {
		t := 0.0
		if i < len(times) {
			t = times[i]
		}
		row := []string{
			strconv.FormatFloat(t, 'f', 6, 64),
			strconv.FormatFloat(st.X, 'f', 6, 64),
			strconv.FormatFloat(st.Y, 'f', 6, 64),
			strconv.FormatFloat(st.Z, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadTrajectory reads back the sampled points and their times.
func (s *Store) LoadTrajectory(runID string) ([]lorenz.State, []float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "trajectory.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 2 {
		return []lorenz.State{}, []float64{}, nil
	}

	states := make([]lorenz.State, 0, len(records)-1)
	times := make([]float64, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 4 {
			continue
		}
		vals := make([]float64, 4)
		ok := true
		for i := 0; i < 4; i++ {
			v, err := strconv.ParseFloat(record[i], 64)
			if err != nil {
				ok = false
				break
			}
			vals[i] = v
		}
		if !ok {
			continue
		}
		times = append(times, vals[0])
		states = append(states, lorenz.State{X: vals[1], Y: vals[2], Z: vals[3]})
	}

	return states, times, nil
}
