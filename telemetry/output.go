package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/danielpeter/earth.tomo.viewer/config"
)

// OutputManager handles structured run output with CSV logging.
type OutputManager struct {
	dir       string
	passFile  *os.File
	headerOut bool
}

// NewOutputManager creates a new output manager and initializes the output
// directory. Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "passes.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating passes.csv: %w", err)
	}

	return &OutputManager{dir: dir, passFile: f}, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WritePass appends a pass stats record to passes.csv.
func (om *OutputManager) WritePass(stats PassStats) error {
	if om == nil {
		return nil
	}

	records := []PassStats{stats}
	if !om.headerOut {
		if err := gocsv.Marshal(records, om.passFile); err != nil {
			return fmt.Errorf("writing pass stats: %w", err)
		}
		om.headerOut = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.passFile); err != nil {
			return fmt.Errorf("writing pass stats: %w", err)
		}
	}
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes the output files.
func (om *OutputManager) Close() error {
	if om == nil || om.passFile == nil {
		return nil
	}
	return om.passFile.Close()
}
