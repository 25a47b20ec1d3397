package scenario

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type yamlScenario struct {
	Floors   int      `yaml:"floors"`
	Ticks    int      `yaml:"ticks"`
	Requests []record `yaml:"requests"`
}

// ParseYAML reads a scenario of the form
//
//	floors: 5
//	ticks: 40
//	requests:
//	  - {time: 0, src: 1, dest: 3}
func ParseYAML(r io.Reader) (*Scenario, error) {
	var doc yamlScenario
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	for i := range doc.Requests {
		doc.Requests[i].line = i + 1
	}
	return build(doc.Floors, doc.Ticks, doc.Requests)
}
