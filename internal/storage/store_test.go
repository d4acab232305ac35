package storage

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/lorenzviz/internal/lorenz"
)

func sampleRun() (lorenz.Params, lorenz.State, []lorenz.State, []float64) {
	p := lorenz.DefaultParams()
	seed := lorenz.State{X: 0, Y: 1, Z: 0}
	states := []lorenz.State{seed}
	times := []float64{0}
	s := seed
	for i := 1; i <= 20; i++ {
		s = lorenz.Step(s, p, 0.01)
		states = append(states, s)
		times = append(times, float64(i)*0.01)
	}
	return p, seed, states, times
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	p, seed, states, times := sampleRun()
	runID, err := st.Save(p, 0.01, seed, states, times)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Fatal("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Sigma != 10.0 || meta.Rho != 28.0 {
		t.Errorf("unexpected parameters: %+v", meta)
	}
	if meta.SeedY != 1.0 {
		t.Errorf("expected seed y 1, got %v", meta.SeedY)
	}
	if meta.Points != len(states) {
		t.Errorf("expected %d points, got %d", len(states), meta.Points)
	}

	loaded, loadedTimes, err := st.LoadTrajectory(runID)
	if err != nil {
		t.Fatalf("load trajectory failed: %v", err)
	}
	if len(loaded) != len(states) {
		t.Fatalf("expected %d states, got %d", len(states), len(loaded))
	}
	// CSV carries 6 decimals
	for i := range loaded {
		if math.Abs(loaded[i].X-states[i].X) > 1e-5 {
			t.Errorf("state %d: x %v != %v", i, loaded[i].X, states[i].X)
		}
	}
	if math.Abs(loadedTimes[len(loadedTimes)-1]-times[len(times)-1]) > 1e-5 {
		t.Error("final time not preserved")
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	p, seed, states, times := sampleRun()
	if _, err := st.Save(p, 0.01, seed, states, times); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestStoreFileStructure(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	p, seed, states, times := sampleRun()
	runID, err := st.Save(p, 0.01, seed, states, times)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, runID, "metadata.json")); os.IsNotExist(err) {
		t.Error("metadata.json not created")
	}
	if _, err := os.Stat(filepath.Join(dir, runID, "trajectory.csv")); os.IsNotExist(err) {
		t.Error("trajectory.csv not created")
	}
}

func TestExportJSON(t *testing.T) {
	p, _, states, times := sampleRun()
	meta := &RunMetadata{Sigma: p.Sigma, Rho: p.Rho, Beta: p.Beta, Dt: 0.01}

	var buf bytes.Buffer
	if err := ExportJSON(&buf, meta, states, times); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var out ExportData
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid json: %v", err)
	}
	if out.Points != len(states) {
		t.Errorf("expected %d points, got %d", len(states), out.Points)
	}
	if out.Rho != 28.0 {
		t.Errorf("expected rho 28, got %v", out.Rho)
	}
	if len(out.States) != len(states) {
		t.Fatalf("expected %d states, got %d", len(states), len(out.States))
	}
	if out.States[0][1] != states[0].Y {
		t.Error("state values not preserved")
	}
}
