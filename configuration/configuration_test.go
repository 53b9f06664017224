package configuration

import "os"
import "path/filepath"
import "reflect"
import "testing"

import "github.com/pwiecz/redelca/lib"

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigurationFile(t *testing.T) {
	path := writeConfig(t, `{"max_points": 12, "default_power": 27, "radio_range_sq": 100.5, "num_workers": 2,
		"power_table": [1, 2, 3, 4, 5, 6, 7, 8]}`)
	conf, err := LoadConfigurationFile(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	expected := &Configuration{
		MaxPoints:    12,
		DefaultPower: 27,
		PowerTable:   []float64{1, 2, 3, 4, 5, 6, 7, 8},
		RadioRangeSq: 100.5,
		NumWorkers:   2,
	}
	if !reflect.DeepEqual(conf, expected) {
		t.Errorf("Expected %+v, got %+v", expected, conf)
	}
	if table := conf.Table(); table != (lib.PowerTable{1, 2, 3, 4, 5, 6, 7, 8}) {
		t.Errorf("Unexpected power table %v", table)
	}
	if options := conf.NodeOptions(); len(options) != 3 {
		t.Errorf("Expected 3 node options, got %d", len(options))
	}
}

func TestInvalidPowerTable(t *testing.T) {
	tests := [][]float64{
		nil,
		{1, 2, 3},
		{8, 7, 6, 5, 4, 3, 2, 1},
	}
	for _, powerTable := range tests {
		conf := &Configuration{PowerTable: powerTable}
		if table := conf.Table(); table != lib.DefaultPowerTable {
			t.Errorf("Expected default table for %v, got %v", powerTable, table)
		}
	}
}

func TestLoadMalformedConfiguration(t *testing.T) {
	if _, err := LoadConfigurationFile(writeConfig(t, "{")); err == nil {
		t.Errorf("Expected error for malformed configuration")
	}
	if _, err := LoadConfigurationFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Errorf("Expected error for missing configuration")
	}
}

func TestSaveConfigurationFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "redelca", "config.json")
	conf := &Configuration{MaxPoints: 20, DefaultPower: 23, RadioRangeSq: 64, PowerTable: []float64{1, 2, 3, 4, 5, 6, 7, 8}}
	if err := SaveConfigurationFile(path, conf); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	loaded, err := LoadConfigurationFile(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !reflect.DeepEqual(loaded, conf) {
		t.Errorf("Expected %+v, got %+v", conf, loaded)
	}
}
