package main

import (
	"fmt"
	"io/ioutil"

	"gopkg.in/yaml.v2"
)

// Config specifies the file format of config files.
type Config struct {
	ServerAddr  string `yaml:"addr"`
	MetricsAddr string `yaml:"metrics-addr"`

	DatabaseFile string `yaml:"database-file"` // Empty means in-memory only.
	SnapshotName string `yaml:"snapshot-name"` // Key the current tree is saved/loaded under.

	Dims int `yaml:"dims"` // Number of axes the configured point type carries.
}

func ReadConfig(filename string) (*Config, error) {
	raw, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var parsed Config
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, err
	}

	if parsed.ServerAddr == "" {
		return nil, fmt.Errorf("field not provided: addr")
	} else if parsed.Dims <= 0 {
		return nil, fmt.Errorf("field not provided or invalid: dims")
	}
	if parsed.SnapshotName == "" {
		parsed.SnapshotName = "current"
	}

	return &parsed, nil
}
