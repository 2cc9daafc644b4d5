// Package risk implements the device risk scoring engine: a static base
// risk table keyed by device type and firmware version, and a scorer that
// adds firmware-age and residual adjustments on top of it.
package risk

import (
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v2"
)

// Table maps device type -> firmware version -> base risk. It is built once
// at startup and never mutated afterwards; share it freely.
type Table struct {
	levels map[string]map[string]int
}

// DefaultTable returns the built-in base risk configuration
func DefaultTable() *Table {
	return &Table{levels: map[string]map[string]int{
		"smart_light":     {"1.0": 5, "1.1": 3, "1.2": 2},
		"thermostat":      {"1.0": 4, "1.1": 3, "1.2": 1},
		"security_camera": {"1.0": 6, "1.1": 4, "1.2": 3},
		"door_lock":       {"1.0": 7, "1.1": 5, "1.2": 3},
	}}
}

// tableConfig is the YAML structure for an external risk table file
type tableConfig struct {
	DeviceTypes map[string]map[string]int `yaml:"device_types"`
}

// LoadTable reads and parses a risk table YAML file
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read risk table: %w", err)
	}

	var config tableConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse risk table YAML: %w", err)
	}
	if len(config.DeviceTypes) == 0 {
		return nil, fmt.Errorf("risk table has no device_types")
	}

	levels := make(map[string]map[string]int, len(config.DeviceTypes))
	for deviceType, versions := range config.DeviceTypes {
		if deviceType == "" {
			return nil, fmt.Errorf("risk table has an empty device type key")
		}
		entry := make(map[string]int, len(versions))
		for version, base := range versions {
			if base < 0 {
				return nil, fmt.Errorf("negative base risk %d for %s/%s", base, deviceType, version)
			}
			entry[version] = base
		}
		levels[deviceType] = entry
	}

	return &Table{levels: levels}, nil
}

// BaseRisk returns the configured base risk for a (device type, firmware
// version) pair. Unknown pairs are not an error; they score 0.
func (t *Table) BaseRisk(deviceType, firmwareVersion string) int {
	return t.levels[deviceType][firmwareVersion]
}

// NewestVersion returns the highest semver-parseable firmware version the
// table knows for a device type, or nil when the type is unknown or none of
// its versions parse.
func (t *Table) NewestVersion(deviceType string) *semver.Version {
	var newest *semver.Version
	for raw := range t.levels[deviceType] {
		v, err := semver.NewVersion(raw)
		if err != nil {
			continue
		}
		if newest == nil || v.GreaterThan(newest) {
			newest = v
		}
	}
	return newest
}
