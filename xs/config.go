package xs

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Temperature treatment selection, spec.md §6(c) temperature_method.
const (
	TemperatureMethodNearest      = "nearest"
	TemperatureMethodInterpolated = "interpolated"
)

// Config groups the runtime knobs spec.md §6(c) lists as consumed
// configuration. Constructed with NewConfig / DefaultConfig or loaded from
// YAML with LoadConfig, the way sim/bundle.go's PolicyBundle is loaded.
type Config struct {
	TemperatureMethod    string  `yaml:"temperature_method"`
	TemperatureTolerance float64 `yaml:"temperature_tolerance"` // K
	UrrPTablesOn         bool    `yaml:"urr_ptables_on"`
	NeedDepletionRx      bool    `yaml:"need_depletion_rx"`
	EnergyMinNeutron     float64 `yaml:"energy_min_neutron"`
	LogSpacing           float64 `yaml:"log_spacing"`
	KBoltzmann           float64 `yaml:"k_boltzmann"`
	SqrtPi               float64 `yaml:"sqrt_pi"`
}

// NewConfig constructs a Config from explicit field values.
func NewConfig(
	temperatureMethod string,
	temperatureTolerance float64,
	urrPTablesOn bool,
	needDepletionRx bool,
	energyMinNeutron float64,
	logSpacing float64,
) Config {
	return Config{
		TemperatureMethod:    temperatureMethod,
		TemperatureTolerance: temperatureTolerance,
		UrrPTablesOn:         urrPTablesOn,
		NeedDepletionRx:      needDepletionRx,
		EnergyMinNeutron:     energyMinNeutron,
		LogSpacing:           logSpacing,
		KBoltzmann:           8.617333262e-5, // eV/K
		SqrtPi:               math.Sqrt(math.Pi),
	}
}

// DefaultConfig returns conventional defaults: stochastic temperature
// interpolation, a 1 K tolerance for S(alpha,beta) table matching, URR
// probability tables enabled, and depletion-reaction tallying enabled.
func DefaultConfig() Config {
	return NewConfig(TemperatureMethodInterpolated, 1.0, true, true, 1e-5, 1e-2)
}

// Validate rejects configurations the evaluation core cannot act on.
func (c Config) Validate() error {
	if c.TemperatureMethod != TemperatureMethodNearest && c.TemperatureMethod != TemperatureMethodInterpolated {
		return fmt.Errorf("unknown temperature_method %q; valid options: %s, %s",
			c.TemperatureMethod, TemperatureMethodNearest, TemperatureMethodInterpolated)
	}
	if c.TemperatureTolerance < 0 {
		return fmt.Errorf("temperature_tolerance must be non-negative, got %f", c.TemperatureTolerance)
	}
	if c.EnergyMinNeutron <= 0 {
		return fmt.Errorf("energy_min_neutron must be positive, got %f", c.EnergyMinNeutron)
	}
	if c.LogSpacing <= 0 {
		return fmt.Errorf("log_spacing must be positive, got %f", c.LogSpacing)
	}
	if c.KBoltzmann <= 0 {
		return fmt.Errorf("k_boltzmann must be positive, got %f", c.KBoltzmann)
	}
	return nil
}

// LoadConfig reads and parses a YAML configuration file, rejecting unknown
// keys the same way sim/bundle.go's LoadPolicyBundle does.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading xs config: %w", err)
	}
	cfg := DefaultConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing xs config: %w", err)
	}
	if cfg.SqrtPi == 0 {
		cfg.SqrtPi = math.Sqrt(math.Pi)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating xs config: %w", err)
	}
	return &cfg, nil
}

// temperatureToleranceInEV converts the temperature tolerance from K to a kT
// difference in eV using the configured Boltzmann constant, for the
// S(alpha,beta) tolerance comparison
// in SabEval (spec.md §4.3: "tolerance |deltakT| < k_B . temperature_tolerance").
func (c Config) temperatureToleranceInEV() float64 {
	return c.KBoltzmann * c.TemperatureTolerance
}
