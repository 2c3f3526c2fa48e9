// Package testutil provides shared test infrastructure for the pulse simulator.
// It consolidates the golden network dataset and golden-trace assertions used
// across sim/ test packages.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/sebdah/goldie/v2"
	"gopkg.in/yaml.v3"
)

// GoldenDataset represents the structure of sim/testdata/networks.yaml.
type GoldenDataset struct {
	Networks []GoldenNetwork `yaml:"networks"`
}

// GoldenNetwork is a reference network with its expected answers.
// Zero-valued expectations are not checked.
type GoldenNetwork struct {
	Name    string `yaml:"name"`
	Wiring  string `yaml:"wiring"`
	Presses int    `yaml:"presses"`
	Low     uint64 `yaml:"low"`
	High    uint64 `yaml:"high"`
	Product uint64 `yaml:"product"`

	Target    string            `yaml:"target"`
	Periods   map[string]uint64 `yaml:"periods"`
	FirstHigh uint64            `yaml:"first_high"`
}

// testdataDir resolves sim/testdata relative to this source file so that the
// fixtures are found regardless of the test's working directory.
func testdataDir(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to sim/testdata/
	return filepath.Join(filepath.Dir(thisFile), "..", "..", "testdata")
}

// LoadGoldenDataset loads the golden network dataset. Unknown keys are rejected.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	path := filepath.Join(testdataDir(t), "networks.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}
	return &dataset
}

// GoldenNetworkByName returns the named network from the dataset or fails the test.
func GoldenNetworkByName(t *testing.T, name string) GoldenNetwork {
	t.Helper()
	for _, n := range LoadGoldenDataset(t).Networks {
		if n.Name == name {
			return n
		}
	}
	t.Fatalf("golden network %q not found", name)
	return GoldenNetwork{}
}

// AssertGoldenTrace compares a rendered pulse trace against
// sim/testdata/golden/<name>.golden. Run with -update to rewrite the fixture.
func AssertGoldenTrace(t *testing.T, name string, got []byte) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir(filepath.Join(testdataDir(t), "golden")),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, got)
}
