// SPDX-License-Identifier: MIT

// Package metrics defines the Prometheus collectors of a qbasis run.
// Collectors are created per run and registered explicitly; the CLI exports
// them in the text exposition format after the run.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/qbasis/krylov"
	"github.com/katalvlaran/qbasis/model"
	"github.com/katalvlaran/qbasis/presets"
)

const namespace = "qbasis"

// Collectors groups the run metrics.
type Collectors struct {
	LanczosSteps    *prometheus.CounterVec
	SectorsTotal    *prometheus.CounterVec
	SectorDimension *prometheus.GaugeVec
	Nonzeros        *prometheus.GaugeVec
	GroundEnergy    *prometheus.GaugeVec
	SpectralBound   *prometheus.GaugeVec
	StageDuration   *prometheus.HistogramVec
}

// New creates unregistered collectors.
func New() *Collectors {
	return &Collectors{
		LanczosSteps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "lanczos_steps_total",
				Help:      "Total number of Lanczos steps",
			},
			[]string{"model"},
		),
		SectorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "sectors_total",
				Help:      "Momentum sectors solved, by final solver status",
			},
			[]string{"model", "status"},
		),
		SectorDimension: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "sector_dimension",
				Help:      "Number of representatives in a momentum sector",
			},
			[]string{"model", "momentum"},
		),
		Nonzeros: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "hamiltonian_nonzeros",
				Help:      "Stored entries of the sector Hamiltonian",
			},
			[]string{"model", "momentum"},
		),
		GroundEnergy: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "ground_energy",
				Help:      "Lowest eigenvalue found in a momentum sector",
			},
			[]string{"model", "momentum"},
		),
		SpectralBound: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "spectral_bound",
				Help:      "Extended spectral bounds of a momentum sector",
			},
			[]string{"model", "momentum", "side"},
		),
		StageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "stage_duration_seconds",
				Help:      "Wall time of pipeline stages",
				Buckets:   prometheus.ExponentialBuckets(1e-4, 4, 10),
			},
			[]string{"stage"},
		),
	}
}

// Register registers every collector with reg.
func (c *Collectors) Register(reg prometheus.Registerer) error {
	for _, col := range []prometheus.Collector{
		c.LanczosSteps, c.SectorsTotal, c.SectorDimension, c.Nonzeros,
		c.GroundEnergy, c.SpectralBound, c.StageDuration,
	} {
		if err := reg.Register(col); err != nil {
			return fmt.Errorf("register metrics: %w", err)
		}
	}

	return nil
}

// OnStep returns a Lanczos hook counting steps for modelName.
func (c *Collectors) OnStep(modelName string) func(krylov.Step) {
	steps := c.LanczosSteps.WithLabelValues(modelName)

	return func(krylov.Step) { steps.Inc() }
}

// ObserveSector records the outcome of one solved sector.
func (c *Collectors) ObserveSector(modelName string, r presets.SectorResult) {
	k := Momentum(r.Momentum)
	c.SectorsTotal.WithLabelValues(modelName, r.Status.String()).Inc()
	c.SectorDimension.WithLabelValues(modelName, k).Set(float64(r.Dim))
	c.Nonzeros.WithLabelValues(modelName, k).Set(float64(r.NNZ))
	if len(r.Energies) > 0 {
		c.GroundEnergy.WithLabelValues(modelName, k).Set(r.Energies[0])
	}
	c.ObserveTimings(r.Timings)
}

// ObserveBounds records the spectral bounds of one sector.
func (c *Collectors) ObserveBounds(modelName string, b presets.Bounds) {
	k := Momentum(b.Momentum)
	c.SectorDimension.WithLabelValues(modelName, k).Set(float64(b.Dim))
	c.SpectralBound.WithLabelValues(modelName, k, "lo").Set(b.Lo)
	c.SpectralBound.WithLabelValues(modelName, k, "hi").Set(b.Hi)
	c.ObserveTimings(b.Timings)
}

// ObserveTimings records one sample per stage that ran (non-zero duration).
func (c *Collectors) ObserveTimings(t model.Timings) {
	for _, st := range []struct {
		name string
		d    time.Duration
	}{
		{"enumerate", t.Enumerate},
		{"reduce", t.Reduce},
		{"assemble", t.Assemble},
		{"solve", t.Solve},
	} {
		if st.d > 0 {
			c.StageDuration.WithLabelValues(st.name).Observe(st.d.Seconds())
		}
	}
}

// WriteTextfile writes everything gathered by g to path in the text format.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("write metrics %s: %w", path, err)
	}

	return nil
}

// Momentum renders a momentum label, e.g. "0,1".
func Momentum(k []int) string {
	out := ""
	for i, v := range k {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprint(v)
	}

	return out
}
