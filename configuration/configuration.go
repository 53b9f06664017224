package configuration

import "encoding/json"
import "os"
import "path/filepath"

import "github.com/pwiecz/redelca/lib"

type Configuration struct {
	MaxPoints    int       `json:"max_points,omitempty"`
	DefaultPower int       `json:"default_power,omitempty"`
	PowerTable   []float64 `json:"power_table,omitempty"`
	RadioRangeSq float64   `json:"radio_range_sq,omitempty"`
	NumWorkers   int       `json:"num_workers,omitempty"`
}

func ConfigDir() (string, error) {
	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(userConfigDir, "redelca"), nil
}
func ConfigPath() (string, error) {
	configDir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// LoadConfiguration reads configuration from the user config directory.
// Missing or malformed file results in an empty configuration.
func LoadConfiguration() *Configuration {
	configPath, err := ConfigPath()
	if err != nil {
		return &Configuration{}
	}
	conf, err := LoadConfigurationFile(configPath)
	if err != nil {
		return &Configuration{}
	}
	return conf
}

func LoadConfigurationFile(configPath string) (*Configuration, error) {
	bytes, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}
	conf := &Configuration{}
	if err := json.Unmarshal(bytes, conf); err != nil {
		return nil, err
	}
	return conf, nil
}

// SaveConfiguration writes configuration to the user config directory.
func SaveConfiguration(config *Configuration) error {
	configPath, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveConfigurationFile(configPath, config)
}

func SaveConfigurationFile(configPath string, config *Configuration) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}
	bytes, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(configPath, bytes, 0644)
}

// Table returns the configured power table, or the default one if the
// configured table is missing or invalid.
func (c *Configuration) Table() lib.PowerTable {
	var table lib.PowerTable
	if len(c.PowerTable) != len(table) {
		return lib.DefaultPowerTable
	}
	copy(table[:], c.PowerTable)
	if table.Validate() != nil {
		return lib.DefaultPowerTable
	}
	return table
}

// NodeOptions converts the configuration to options of a network node.
func (c *Configuration) NodeOptions() []lib.NodeOption {
	options := []lib.NodeOption{lib.NodePowerTable(c.Table())}
	if c.MaxPoints > 0 {
		options = append(options, lib.NodeMaxPoints(c.MaxPoints))
	}
	if c.DefaultPower > 0 {
		options = append(options, lib.NodeDefaultPower(c.DefaultPower))
	}
	return options
}
