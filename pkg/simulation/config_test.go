package simulation

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const testSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["numBoids", "aquariumRadius", "timestep"],
  "properties": {
    "numBoids": {"type": "integer", "minimum": 1, "maximum": 50},
    "aquariumRadius": {"type": "number", "exclusiveMinimum": 0},
    "timestep": {"type": "number", "exclusiveMinimum": 0}
  }
}`

// writeTestConfig drops a schema and a config file in a temp dir and returns
// both paths.
func writeTestConfig(t *testing.T, configJSON string) (configFile, schemaFile string) {
	t.Helper()
	dir := t.TempDir()
	configFile = filepath.Join(dir, "config.json")
	schemaFile = filepath.Join(dir, "config.schema.json")
	if err := os.WriteFile(configFile, []byte(configJSON), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if err := os.WriteFile(schemaFile, []byte(testSchema), 0o644); err != nil {
		t.Fatalf("writing schema: %v", err)
	}
	return configFile, schemaFile
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero timestep", func(c *Config) { c.Timestep = 0 }},
		{"negative timestep", func(c *Config) { c.Timestep = -0.01 }},
		{"population over renderer capacity", func(c *Config) { c.NumBoids = 51 }},
		{"zero population", func(c *Config) { c.NumBoids = 0 }},
		{"min speed above max speed", func(c *Config) { c.MinSpeed = c.MaxSpeed + 1 }},
		{"zero aquarium radius", func(c *Config) { c.AquariumRadius = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("Validate() = nil, want error")
			}
		})
	}
}

func TestConfigParamsBindsRendererCapacity(t *testing.T) {
	cfg := DefaultConfig()
	p := cfg.Params()
	if p.MaxPopulation != 50 {
		t.Errorf("Params().MaxPopulation = %d, want 50", p.MaxPopulation)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		configFile, schemaFile := writeTestConfig(t, `{
			"numBoids": 25,
			"aquariumRadius": 15.0,
			"edgeMargin": 2.0,
			"perceptionRadius": 5.0,
			"separationWeight": 1.5,
			"alignmentWeight": 1.0,
			"cohesionWeight": 0.8,
			"maxSpeed": 8.0,
			"minSpeed": 2.0,
			"maxForce": 20.0,
			"turnFactor": 0.5,
			"timestep": 0.0166,
			"seed": 7
		}`)
		cfg, err := LoadConfig(configFile, schemaFile)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.NumBoids != 25 {
			t.Errorf("NumBoids = %d, want 25", cfg.NumBoids)
		}
		if cfg.Seed != 7 {
			t.Errorf("Seed = %d, want 7", cfg.Seed)
		}
	})

	t.Run("schema rejects over-capacity population", func(t *testing.T) {
		configFile, schemaFile := writeTestConfig(t,
			`{"numBoids": 51, "aquariumRadius": 20.0, "timestep": 0.0166}`)
		if _, err := LoadConfig(configFile, schemaFile); err == nil {
			t.Errorf("LoadConfig() = nil error, want schema violation")
		}
	})

	t.Run("semantic check catches what the schema cannot", func(t *testing.T) {
		// Schema-valid, but minSpeed defaults to 0 and maxSpeed to 0 too,
		// which the simulation rejects.
		configFile, schemaFile := writeTestConfig(t,
			`{"numBoids": 10, "aquariumRadius": 20.0, "timestep": 0.0166}`)
		if _, err := LoadConfig(configFile, schemaFile); err == nil {
			t.Errorf("LoadConfig() = nil error, want semantic rejection")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, schemaFile := writeTestConfig(t, `{}`)
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"), schemaFile)
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("LoadConfig() error = %v, want os.ErrNotExist in chain", err)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		configFile, schemaFile := writeTestConfig(t, `{not json`)
		if _, err := LoadConfig(configFile, schemaFile); err == nil {
			t.Errorf("LoadConfig() = nil error, want decode failure")
		}
	})
}
