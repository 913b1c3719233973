// SPDX-License-Identifier: MIT

// Package config loads the YAML run description of the qbasis CLI.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/qbasis/lattice"
	"github.com/katalvlaran/qbasis/matrix"
)

// Model names understood by the CLI.
const (
	ModelHeisenberg = "heisenberg"
	ModelHubbard    = "hubbard"
)

// ErrInvalid marks every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the full run description.
type Config struct {
	Env     string        `yaml:"env"` // local, dev, prod
	Logging LoggingConfig `yaml:"logging"`
	Lattice LatticeConfig `yaml:"lattice"`
	Model   ModelConfig   `yaml:"model"`
	Solver  SolverConfig  `yaml:"solver"`
	Bounds  BoundsConfig  `yaml:"bounds"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: by env)
}

// LatticeConfig describes the lattice.
type LatticeConfig struct {
	Kind       string   `yaml:"kind"`       // chain, square, triangular, cubic, honeycomb
	Extents    []int    `yaml:"extents"`    // one per dimension
	Boundaries []string `yaml:"boundaries"` // pbc | obc per dimension (default pbc)
}

// ModelConfig selects the Hamiltonian and its filling.
type ModelConfig struct {
	Name    string    `yaml:"name"`    // heisenberg | hubbard
	J       float64   `yaml:"j"`       // Heisenberg exchange
	T       float64   `yaml:"t"`       // Hubbard hopping
	U       float64   `yaml:"u"`       // Hubbard on-site repulsion
	Targets []float64 `yaml:"targets"` // Sz, or (N↑, N↓)
}

// SolverConfig configures Lanczos.
type SolverConfig struct {
	NEV         int     `yaml:"nev"`
	MaxIter     int     `yaml:"max_iter"`
	Tol         float64 `yaml:"tol"`
	ReorthEvery *int    `yaml:"reorth_every"` // nil = default (1); 0 disables
	Seed        uint64  `yaml:"seed"`
	Tridiag     string  `yaml:"tridiag"` // lapack | jacobi
	MatrixFree  bool    `yaml:"matrix_free"`
}

// BoundsConfig configures the spectral bounds estimate.
type BoundsConfig struct {
	Extend float64 `yaml:"extend"`
	Iters  int     `yaml:"iters"`
}

// MetricsConfig configures the Prometheus text-file export.
type MetricsConfig struct {
	File string `yaml:"file"` // empty = no export
}

// Load reads, expands, defaults and validates the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	return Parse(data)
}

// Parse is Load without the file access.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(expandEnvVars(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.Env == "" {
		c.Env = "local"
	}
	if len(c.Lattice.Boundaries) == 0 {
		c.Lattice.Boundaries = make([]string, len(c.Lattice.Extents))
		for i := range c.Lattice.Boundaries {
			c.Lattice.Boundaries[i] = lattice.Periodic.String()
		}
	}
	c.Model.Name = strings.ToLower(c.Model.Name)
	if c.Solver.NEV <= 0 {
		c.Solver.NEV = 1
	}
	if c.Solver.MaxIter <= 0 {
		c.Solver.MaxIter = 300
	}
	if c.Solver.Tol <= 0 {
		c.Solver.Tol = 1e-12
	}
	if c.Solver.Seed == 0 {
		c.Solver.Seed = 1
	}
	if c.Solver.Tridiag == "" {
		c.Solver.Tridiag = matrix.SolverLAPACK.String()
	}
	if c.Bounds.Extend <= 0 {
		c.Bounds.Extend = 0.1
	}
	if c.Bounds.Iters <= 0 {
		c.Bounds.Iters = 30
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if _, err := lattice.ParseKind(c.Lattice.Kind); err != nil {
		return fmt.Errorf("lattice.kind: %w", errors.Join(ErrInvalid, err))
	}
	if len(c.Lattice.Extents) == 0 {
		return fmt.Errorf("lattice.extents is required: %w", ErrInvalid)
	}
	if len(c.Lattice.Boundaries) != len(c.Lattice.Extents) {
		return fmt.Errorf("lattice.boundaries must have %d entries, got %d: %w",
			len(c.Lattice.Extents), len(c.Lattice.Boundaries), ErrInvalid)
	}
	for i, b := range c.Lattice.Boundaries {
		if _, err := lattice.ParseBoundary(b); err != nil {
			return fmt.Errorf("lattice.boundaries[%d]: %w", i, errors.Join(ErrInvalid, err))
		}
	}
	switch c.Model.Name {
	case ModelHeisenberg:
		if len(c.Model.Targets) != 1 {
			return fmt.Errorf("model.targets for heisenberg is [Sz], got %v: %w", c.Model.Targets, ErrInvalid)
		}
	case ModelHubbard:
		if len(c.Model.Targets) != 2 {
			return fmt.Errorf("model.targets for hubbard is [Nup, Ndn], got %v: %w", c.Model.Targets, ErrInvalid)
		}
	default:
		return fmt.Errorf("model.name must be %q or %q, got %q: %w",
			ModelHeisenberg, ModelHubbard, c.Model.Name, ErrInvalid)
	}
	if math.IsNaN(c.Solver.Tol) || math.IsInf(c.Solver.Tol, 0) {
		return fmt.Errorf("solver.tol must be finite, got %v: %w", c.Solver.Tol, ErrInvalid)
	}
	if c.Solver.ReorthEvery != nil && *c.Solver.ReorthEvery < 0 {
		return fmt.Errorf("solver.reorth_every must be >= 0: %w", ErrInvalid)
	}
	if _, err := c.TridiagSolver(); err != nil {
		return err
	}
	if math.IsInf(c.Bounds.Extend, 0) || math.IsNaN(c.Bounds.Extend) || c.Bounds.Iters < 2 {
		return fmt.Errorf("bounds: extend must be finite and iters >= 2: %w", ErrInvalid)
	}

	return nil
}

// TridiagSolver maps solver.tridiag to the matrix solver.
func (c *Config) TridiagSolver() (matrix.TridiagSolver, error) {
	switch strings.ToLower(c.Solver.Tridiag) {
	case matrix.SolverLAPACK.String():
		return matrix.SolverLAPACK, nil
	case matrix.SolverJacobi.String():
		return matrix.SolverJacobi, nil
	}

	return 0, fmt.Errorf("solver.tridiag must be lapack or jacobi, got %q: %w", c.Solver.Tridiag, ErrInvalid)
}

// BuildLattice constructs the configured lattice.
func (c *Config) BuildLattice() (*lattice.Lattice, error) {
	kind, err := lattice.ParseKind(c.Lattice.Kind)
	if err != nil {
		return nil, err
	}
	bcs := make([]lattice.Boundary, len(c.Lattice.Boundaries))
	for i, b := range c.Lattice.Boundaries {
		if bcs[i], err = lattice.ParseBoundary(b); err != nil {
			return nil, err
		}
	}

	return lattice.New(kind, c.Lattice.Extents, bcs)
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1])
		name, def, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(name)
		if val == "" && hasDefault {
			val = def
		}
		return []byte(val)
	})
}
