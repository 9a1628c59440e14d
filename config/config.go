// Package config loads pricing scenarios from YAML or JSON files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/joseluissebastia/barropt/contract"
)

// Scenario is the file form of one pricing run.
type Scenario struct {
	Contract   ContractConfig   `json:"contract" yaml:"contract"`
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`
	Output     OutputConfig     `json:"output,omitempty" yaml:"output,omitempty"`
}

// ContractConfig carries the option terms.
type ContractConfig struct {
	Option       string  `json:"option" yaml:"option"`
	Barrier      string  `json:"barrier" yaml:"barrier"`
	Spot         float64 `json:"spot" yaml:"spot"`
	Strike       float64 `json:"strike" yaml:"strike"`
	BarrierLevel float64 `json:"barrier_level" yaml:"barrier_level"`
	Maturity     float64 `json:"maturity" yaml:"maturity"`
	Volatility   float64 `json:"volatility" yaml:"volatility"`
	Rate         float64 `json:"rate" yaml:"rate"`
}

// SimulationConfig carries the discretization and run settings.
type SimulationConfig struct {
	Steps   int    `json:"steps" yaml:"steps"`
	Paths   int    `json:"paths" yaml:"paths"`
	Seed    uint64 `json:"seed,omitempty" yaml:"seed,omitempty"`
	Workers int    `json:"workers,omitempty" yaml:"workers,omitempty"`
}

// OutputConfig carries optional result destinations.
type OutputConfig struct {
	JSONFile    string `json:"json_file,omitempty" yaml:"json_file,omitempty"`
	PathsFile   string `json:"paths_file,omitempty" yaml:"paths_file,omitempty"`
	SamplePaths int    `json:"sample_paths,omitempty" yaml:"sample_paths,omitempty"`
}

// LoadFromFile loads a scenario from a YAML or JSON file and validates it.
func LoadFromFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}

	s := &Scenario{}

	// Try YAML first, fall back to JSON.
	if err := yaml.Unmarshal(data, s); err != nil {
		if jerr := json.Unmarshal(data, s); jerr != nil {
			return nil, fmt.Errorf("parse scenario (tried YAML and JSON): %w", err)
		}
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return s, nil
}

// SaveToFile writes the scenario to path, as YAML for .yaml/.yml extensions
// and as indented JSON otherwise.
func (s *Scenario) SaveToFile(path string) error {
	var (
		data []byte
		err  error
	)
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(s)
	} else {
		data, err = json.MarshalIndent(s, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal scenario: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scenario file: %w", err)
	}
	return nil
}

// Params converts the scenario into validated contract parameters.
func (s *Scenario) Params() (contract.Parameters, error) {
	option, err := contract.ParseOptionKind(s.Contract.Option)
	if err != nil {
		return contract.Parameters{}, err
	}
	barrier, err := contract.ParseBarrierKind(s.Contract.Barrier)
	if err != nil {
		return contract.Parameters{}, err
	}
	p := contract.Parameters{
		Option:       option,
		Barrier:      barrier,
		Spot:         s.Contract.Spot,
		Strike:       s.Contract.Strike,
		BarrierLevel: s.Contract.BarrierLevel,
		Maturity:     s.Contract.Maturity,
		Vol:          s.Contract.Volatility,
		Rate:         s.Contract.Rate,
		Steps:        s.Simulation.Steps,
		Paths:        s.Simulation.Paths,
	}
	if err := p.Validate(); err != nil {
		return contract.Parameters{}, err
	}
	return p, nil
}

// Validate checks the scenario, including the embedded contract parameters.
func (s *Scenario) Validate() error {
	if _, err := s.Params(); err != nil {
		return err
	}
	if s.Simulation.Workers < 0 {
		return fmt.Errorf("%w: simulation.workers must not be negative, got %d", contract.ErrInvalidParameter, s.Simulation.Workers)
	}
	if s.Output.SamplePaths < 0 {
		return fmt.Errorf("%w: output.sample_paths must not be negative, got %d", contract.ErrInvalidParameter, s.Output.SamplePaths)
	}
	return nil
}

// Default returns a ready-to-run scenario: the one-year at-the-money
// up-and-out call used in the command help examples.
func Default() *Scenario {
	return &Scenario{
		Contract: ContractConfig{
			Option:       "call",
			Barrier:      "up_and_out",
			Spot:         100,
			Strike:       100,
			BarrierLevel: 150,
			Maturity:     1,
			Volatility:   0.25,
			Rate:         0.04,
		},
		Simulation: SimulationConfig{
			Steps: 10000,
			Paths: 10000,
		},
	}
}
