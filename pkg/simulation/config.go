package simulation

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/lao-tseu-is-alive/go-aquarium-boids/pkg/flock"
	"github.com/lao-tseu-is-alive/go-aquarium-boids/pkg/instancing"
)

// Config is the runtime configuration surface: every simulation knob, loaded
// from JSON. The renderer capacity is not configurable; it comes from the
// instancing package and the population is checked against it.
type Config struct {
	// Population
	NumBoids int `json:"numBoids"`

	// World: cube [-aquariumRadius, +aquariumRadius]^3
	AquariumRadius float64 `json:"aquariumRadius"`
	EdgeMargin     float64 `json:"edgeMargin"`

	// Perception
	PerceptionRadius float64 `json:"perceptionRadius"`

	// Rule weights
	SeparationWeight float64 `json:"separationWeight"`
	AlignmentWeight  float64 `json:"alignmentWeight"`
	CohesionWeight   float64 `json:"cohesionWeight"`

	// Kinematic limits
	MaxSpeed   float64 `json:"maxSpeed"`
	MinSpeed   float64 `json:"minSpeed"`
	MaxForce   float64 `json:"maxForce"`
	TurnFactor float64 `json:"turnFactor"`

	// Frame timestep in seconds
	Timestep float64 `json:"timestep"`

	Seed uint64 `json:"seed"`
}

func DefaultConfig() *Config {
	return &Config{
		NumBoids:         50,
		AquariumRadius:   20.0,
		EdgeMargin:       3.0,
		PerceptionRadius: 6.0,
		SeparationWeight: 1.5,
		AlignmentWeight:  1.0,
		CohesionWeight:   0.8,
		MaxSpeed:         8.0,
		MinSpeed:         2.0,
		MaxForce:         20.0,
		TurnFactor:       0.5,
		Timestep:         1.0 / 60.0,
		Seed:             1,
	}
}

// Params maps the config onto the simulation parameter set, binding the
// population cap to the renderer's instance capacity.
func (c *Config) Params() flock.Params {
	return flock.Params{
		NumBoids:         c.NumBoids,
		MaxPopulation:    instancing.MaxInstances,
		AquariumRadius:   c.AquariumRadius,
		EdgeMargin:       c.EdgeMargin,
		PerceptionRadius: c.PerceptionRadius,
		SeparationWeight: c.SeparationWeight,
		AlignmentWeight:  c.AlignmentWeight,
		CohesionWeight:   c.CohesionWeight,
		MaxSpeed:         c.MaxSpeed,
		MinSpeed:         c.MinSpeed,
		MaxForce:         c.MaxForce,
		TurnFactor:       c.TurnFactor,
		Seed:             c.Seed,
	}
}

// Validate fast-fails on anything the simulation cannot run with. The
// timestep is checked here because it is a frame-loop concern, not a flock
// parameter; everything else is delegated to the flock's own validation.
func (c *Config) Validate() error {
	if c.Timestep <= 0 {
		return fmt.Errorf("timestep must be positive, got %f", c.Timestep)
	}
	p := c.Params()
	return p.Validate()
}

// LoadConfig loads configuration from a JSON file and validates it against
// the schema before unmarshalling, then applies the semantic checks.
func LoadConfig(configFile string, schemaFile string) (*Config, error) {
	// 1. Compile Schema
	sch, err := jsonschema.Compile(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	// 2. Read Config File
	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// 3. Validate against the schema
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// 4. Unmarshal into the struct
	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Semantic checks the schema cannot express (capacity coupling)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config rejected: %w", err)
	}

	return &cfg, nil
}
