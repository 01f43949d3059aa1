// SPDX-License-Identifier: MIT

// Package scenario - the YAML configuration surface.

package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"sableye/isotope"
)

// ReprocessSpec describes one instantaneous material move. Retain holds
// per-isotope survival factors (the diagonal of the remap matrix);
// omitted it defaults to all ones. Add is material fed in, defaulting
// to zeros.
type ReprocessSpec struct {
	Add         []float64 `yaml:"add"`
	Retain      []float64 `yaml:"retain"`
	Renormalize bool      `yaml:"renormalize"`
}

// StepSpec is one scenario step: exactly one of Evolve (seconds of
// continuous time) or Reprocess must be set.
type StepSpec struct {
	Evolve    *float64       `yaml:"evolve,omitempty"`
	Reprocess *ReprocessSpec `yaml:"reprocess,omitempty"`
}

// CrossSectionSpec is one one-group cross section entry.
type CrossSectionSpec struct {
	Target string  `yaml:"target"`
	MT     int     `yaml:"mt"`
	Sigma  float64 `yaml:"sigma"`
}

// OutputSpec names the optional result sinks. Empty fields are skipped.
type OutputSpec struct {
	Database string `yaml:"database"` // SQLite file receiving the run
	History  string `yaml:"history"`  // binary history dump file
	Matrix   string `yaml:"matrix"`   // binary generator dump file
}

// Config is a full scenario document.
type Config struct {
	Run            string                        `yaml:"run"`
	Isotopes       []string                      `yaml:"isotopes"`
	Initial        []float64                     `yaml:"initial"`
	DecayTable     string                        `yaml:"decay_table"` // path to a decay JSON document
	Flux           float64                       `yaml:"flux"`        // n/cm²/s, scales all cross sections
	Fissionable    []string                      `yaml:"fissionable"`
	Yields         map[string]map[string]float64 `yaml:"yields"`
	CrossSections  []CrossSectionSpec            `yaml:"cross_sections"`
	StrictProducts bool                          `yaml:"strict_products"`
	Steps          []StepSpec                    `yaml:"steps"`
	Output         OutputSpec                    `yaml:"output"`
}

// Load reads and validates a scenario file.
// Errors: ErrBadConfig wrapping the cause.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadConfig, err)
	}

	var cfg Config
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadConfig, err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks structural consistency: parseable codes, matching
// vector lengths and well-formed steps. It does not touch the
// filesystem; the decay-table path is resolved at Run time.
func (c *Config) Validate() error {
	if c.Run == "" {
		return fmt.Errorf("%w: run id is required", ErrBadConfig)
	}
	if len(c.Isotopes) == 0 {
		return fmt.Errorf("%w: isotope list is empty", ErrBadConfig)
	}
	for _, code := range c.Isotopes {
		if _, err := isotope.Parse(code); err != nil {
			return fmt.Errorf("%w: isotope %q: %v", ErrBadConfig, code, err)
		}
	}
	if len(c.Initial) != len(c.Isotopes) {
		return fmt.Errorf("%w: initial vector length %d, isotopes %d",
			ErrBadConfig, len(c.Initial), len(c.Isotopes))
	}
	if c.Flux < 0 {
		return fmt.Errorf("%w: negative flux %g", ErrBadConfig, c.Flux)
	}
	for _, code := range c.Fissionable {
		if _, err := isotope.Parse(code); err != nil {
			return fmt.Errorf("%w: fissionable %q: %v", ErrBadConfig, code, err)
		}
	}
	for parent, row := range c.Yields {
		if _, err := isotope.Parse(parent); err != nil {
			return fmt.Errorf("%w: yield parent %q: %v", ErrBadConfig, parent, err)
		}
		for product := range row {
			if _, err := isotope.Parse(product); err != nil {
				return fmt.Errorf("%w: yield product %q: %v", ErrBadConfig, product, err)
			}
		}
	}
	for i, xs := range c.CrossSections {
		if _, err := isotope.Parse(xs.Target); err != nil {
			return fmt.Errorf("%w: cross_sections[%d] target %q: %v", ErrBadConfig, i, xs.Target, err)
		}
		if xs.Sigma < 0 {
			return fmt.Errorf("%w: cross_sections[%d] negative sigma %g", ErrBadConfig, i, xs.Sigma)
		}
	}

	n := len(c.Isotopes)
	for i, step := range c.Steps {
		switch {
		case step.Evolve != nil && step.Reprocess != nil:
			return fmt.Errorf("%w: steps[%d] sets both evolve and reprocess", ErrBadConfig, i)
		case step.Evolve != nil:
			if *step.Evolve < 0 {
				return fmt.Errorf("%w: steps[%d] negative evolve time %g", ErrBadConfig, i, *step.Evolve)
			}
		case step.Reprocess != nil:
			r := step.Reprocess
			if r.Add != nil && len(r.Add) != n {
				return fmt.Errorf("%w: steps[%d] add length %d, want %d", ErrBadConfig, i, len(r.Add), n)
			}
			if r.Retain != nil && len(r.Retain) != n {
				return fmt.Errorf("%w: steps[%d] retain length %d, want %d", ErrBadConfig, i, len(r.Retain), n)
			}
		default:
			return fmt.Errorf("%w: steps[%d] is neither evolve nor reprocess", ErrBadConfig, i)
		}
	}

	return nil
}
