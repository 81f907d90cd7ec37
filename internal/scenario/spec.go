package scenario

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Scenario defines a group of shim invocations loaded from one YAML file.
type Scenario struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Timeout     Duration `yaml:"timeout"`
	Cases       []Case   `yaml:"cases"`
}

// Case describes a single invocation of the built shim binary.
type Case struct {
	Name string `yaml:"name"`
	// Args are handed to the shim after argv[0].
	Args []string `yaml:"args"`
	// Env adds variables on top of the parent environment.
	Env map[string]string `yaml:"env"`
	// Loader selects what NACL_INTERP_LOADER names for this case.
	Loader Loader      `yaml:"loader"`
	Expect Expectation `yaml:"expect"`
}

// Loader selects the delegate loader for a case: the recording stub
// ("stub"), an existing but non-executable file ("noexec"), no variable at
// all ("none"), or a literal path.
type Loader string

const (
	LoaderStub   Loader = "stub"
	LoaderNoExec Loader = "noexec"
	LoaderNone   Loader = "none"
)

// Expectation defines expected results for a case.
type Expectation struct {
	ExitCode       int      `yaml:"exit_code"`
	StdoutContains []string `yaml:"stdout_contains"`
	StderrContains []string `yaml:"stderr_contains"`
	// StdoutSequence entries must appear in stdout in order.
	StdoutSequence []string `yaml:"stdout_sequence"`
}

// Duration wraps time.Duration for YAML unmarshaling.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler for Duration.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Duration returns the time.Duration value.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// Load reads one scenario file and applies defaults.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parsing scenario file: %w", err)
	}

	if sc.Name == "" {
		return nil, fmt.Errorf("%s: scenario has no name", path)
	}
	if len(sc.Cases) == 0 {
		return nil, fmt.Errorf("%s: scenario has no cases", path)
	}
	if sc.Timeout == 0 {
		sc.Timeout = Duration(30 * time.Second)
	}
	for i := range sc.Cases {
		if sc.Cases[i].Loader == "" {
			sc.Cases[i].Loader = LoaderNone
		}
	}

	return &sc, nil
}

// LoadDir reads every *.yaml scenario file under dir.
func LoadDir(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	scenarios := make([]*Scenario, 0, len(paths))
	for _, path := range paths {
		sc, err := Load(path)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, sc)
	}
	return scenarios, nil
}
