package lib

import "bytes"
import "encoding/csv"
import "encoding/json"
import "errors"
import "fmt"
import "io"
import "os"
import "path"
import "strconv"

import "github.com/golang/geo/r2"
import "gopkg.in/yaml.v3"

// SampleInfo - sample with coordinates in the transmitted fixed-point
// format.
type SampleInfo struct {
	ID   int     `json:"id" yaml:"id"`
	X    string  `json:"x" yaml:"x"`
	Y    string  `json:"y" yaml:"y"`
	RSSI float64 `json:"rssi" yaml:"rssi"`
}

// ParseScenarioFile parses samples heard by a single node. The first
// sample is the node itself.
//
// It tries to guess the file format based on extensions of the file.
func ParseScenarioFile(filename string) ([]Sample, error) {
	infos, err := ParseFileAsSampleInfo(filename)
	if err != nil {
		return nil, err
	}
	if len(infos) == 0 {
		return nil, fmt.Errorf("no samples in %s", filename)
	}
	samples, err := sampleInfoToSample(infos)
	if err != nil {
		return nil, err
	}
	// Negative ids are reserved for the bounding triangle.
	for _, s := range samples {
		if s.ID < 0 {
			return nil, fmt.Errorf("negative sample id %d in %s", s.ID, filename)
		}
	}
	return samples, nil
}

// ParseNetworkFile parses positions of all nodes of a network. RSSI
// of the records is ignored.
func ParseNetworkFile(filename string) ([]Sample, error) {
	infos, err := ParseFileAsSampleInfo(filename)
	if err != nil {
		return nil, err
	}
	nodes, err := sampleInfoToSample(infos)
	if err != nil {
		return nil, err
	}
	ids := make(map[int]bool, len(nodes))
	for i := range nodes {
		if ids[nodes[i].ID] {
			return nil, fmt.Errorf("duplicate node id %d in %s", nodes[i].ID, filename)
		}
		if nodes[i].ID < 0 {
			return nil, fmt.Errorf("negative node id %d in %s", nodes[i].ID, filename)
		}
		ids[nodes[i].ID] = true
		nodes[i].RSSI = 0
	}
	return nodes, nil
}

// ParseFileAsSampleInfo parses file to list of SampleInfo structs.
//
// It tries to guess the file format based on extensions of the file.
func ParseFileAsSampleInfo(filename string) ([]SampleInfo, error) {
	var parse func([]byte) ([]SampleInfo, error)
	switch path.Ext(filename) {
	case ".csv":
		parse = parseCSVAsSampleInfo
	case ".json":
		parse = parseJSONAsSampleInfo
	case ".yaml", ".yml":
		parse = parseYAMLAsSampleInfo
	default:
		return nil, fmt.Errorf("Unknown extension of file %s", filename)
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	infos, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("cannot parse %s: %w", filename, err)
	}
	return infos, nil
}

// parseCSVAsSampleInfo parses "id,x,y,rssi" records. An optional
// header starting with "id" is skipped.
func parseCSVAsSampleInfo(data []byte) ([]SampleInfo, error) {
	var infos []SampleInfo
	r := csv.NewReader(bytes.NewReader(data))
	r.TrimLeadingSpace = true
	r.Comment = '#'
	r.FieldsPerRecord = -1
	lineNo := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		lineNo++
		if err != nil {
			return infos, fmt.Errorf("Error: %w, in line %d", err, lineNo)
		}
		if lineNo == 1 && len(record) > 0 && record[0] == "id" {
			continue
		}
		if len(record) != 4 && len(record) != 3 {
			return infos, fmt.Errorf("Unexpected number of fields: %d in line %d", len(record), lineNo)
		}
		id, err := strconv.Atoi(record[0])
		if err != nil {
			return infos, errors.New("Cannot parse id: \"" + record[0] + "\"")
		}
		info := SampleInfo{ID: id, X: record[1], Y: record[2]}
		if len(record) == 4 {
			info.RSSI, err = strconv.ParseFloat(record[3], 64)
			if err != nil {
				return infos, errors.New("Cannot parse rssi: \"" + record[3] + "\"")
			}
		}
		infos = append(infos, info)
	}
	return infos, nil
}

func parseJSONAsSampleInfo(data []byte) ([]SampleInfo, error) {
	var infos []SampleInfo
	if err := json.Unmarshal(data, &infos); err != nil {
		return nil, err
	}
	return infos, nil
}

func parseYAMLAsSampleInfo(data []byte) ([]SampleInfo, error) {
	var infos []SampleInfo
	if err := yaml.Unmarshal(data, &infos); err != nil {
		return nil, err
	}
	return infos, nil
}

func sampleInfoToSample(infos []SampleInfo) ([]Sample, error) {
	samples := make([]Sample, 0, len(infos))
	for _, info := range infos {
		x, err := ParseFixed(info.X)
		if err != nil {
			return samples, fmt.Errorf("node %d: %w", info.ID, err)
		}
		y, err := ParseFixed(info.Y)
		if err != nil {
			return samples, fmt.Errorf("node %d: %w", info.ID, err)
		}
		samples = append(samples, Sample{ID: info.ID, Pos: r2.Point{X: x, Y: y}, RSSI: info.RSSI})
	}
	return samples, nil
}
