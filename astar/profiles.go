package astar

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v2"
)

// profileFile mirrors the on-disk YAML layout:
//
//	profiles:
//	  saintgall:
//	    vertical_drift: 0.5
//	    step: 1
//	    wall: 50
//	    proximity: 150
//	    proximity_sq: 50
type profileFile struct {
	Profiles map[string]WeightProfile `yaml:"profiles"`
}

// LoadProfiles reads named weight profiles from YAML. The result is meant
// to be handed to WithProfiles, where entries shadow built-ins of the same
// name. Returns ErrNoProfiles when the document defines none.
func LoadProfiles(r io.Reader) (map[string]WeightProfile, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("astar: reading profile source: %w", err)
	}

	var file profileFile
	if err = yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("astar: parsing profile source: %w", err)
	}
	if len(file.Profiles) == 0 {
		return nil, ErrNoProfiles
	}

	return file.Profiles, nil
}
