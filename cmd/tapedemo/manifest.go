package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Manifest lists the jobs the demo enqueues
type Manifest struct {
	Jobs []JobSpec `yaml:"jobs"`
}

// JobSpec describes one job and how it should misbehave
type JobSpec struct {
	Name     string   `yaml:"name"`
	TTL      Duration `yaml:"ttl"`
	Retries  int      `yaml:"retries"`
	Failures int      `yaml:"failures"`
}

// Duration decodes Go duration strings such as "90s" from YAML
type Duration time.Duration

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("line %d: duration must be a string: %w", node.Line, err)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*d = Duration(parsed)
	return nil
}

var defaultManifest = Manifest{
	Jobs: []JobSpec{
		{Name: "welcome-email"},
		{Name: "flaky-webhook", Retries: 3, Failures: 2},
		{Name: "doomed-export", Retries: 2, Failures: 5},
		{Name: "stale-report", TTL: Duration(time.Nanosecond)},
		{Name: "invoice-pdf"},
	},
}

// loadManifest reads a manifest from path, or returns the built-in one
// when path is empty.
func loadManifest(path string) (Manifest, error) {
	if path == "" {
		return defaultManifest, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("failed to read manifest %q: %w", path, err)
	}
	return parseManifest(data)
}

func parseManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("failed to parse manifest: %w", err)
	}

	for i, job := range m.Jobs {
		if job.Name == "" {
			return Manifest{}, fmt.Errorf("job #%d: %w", i, ErrJobNameRequired)
		}
		if job.Failures < 0 {
			return Manifest{}, fmt.Errorf("job %q: %w", job.Name, ErrNegativeFailures)
		}
	}
	return m, nil
}
