package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Scenario is one timed loop: every worker performs iters
// alloc/write/release cycles of size-byte buffers against one pool.
type Scenario struct {
	Name    string `toml:"name"`
	Size    int    `toml:"size"`
	Iters   int    `toml:"iters"`
	Workers int    `toml:"workers"`
	Store   string `toml:"store"` // "scan" or "partitioned"
}

// Profile is a TOML bench profile:
//
//	[[scenario]]
//	name = "req-4k"
//	size = 4096
//	iters = 100000
//	workers = 4
//	store = "scan"
type Profile struct {
	Scenarios []Scenario `toml:"scenario"`
}

func loadProfile(path string) ([]Scenario, error) {
	var p Profile
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return nil, fmt.Errorf("load profile %s: %w", path, err)
	}
	if len(p.Scenarios) == 0 {
		return nil, fmt.Errorf("profile %s defines no scenarios", path)
	}
	for i := range p.Scenarios {
		if err := p.Scenarios[i].validate(i); err != nil {
			return nil, err
		}
	}
	return p.Scenarios, nil
}

func (s *Scenario) validate(idx int) error {
	if s.Name == "" {
		s.Name = fmt.Sprintf("scenario-%d", idx)
	}
	if s.Size <= 0 {
		return fmt.Errorf("%s: size must be positive", s.Name)
	}
	if s.Iters <= 0 {
		return fmt.Errorf("%s: iters must be positive", s.Name)
	}
	if s.Workers <= 0 {
		s.Workers = 1
	}
	switch s.Store {
	case "", "scan", "partitioned":
	default:
		return fmt.Errorf("%s: unknown store %q", s.Name, s.Store)
	}
	return nil
}
