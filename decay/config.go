package decay

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadOptions decodes label parameters from YAML:
//
//	starting_value: 50
//	decay_step: 5
//	minimum_value: 20
//
// Missing keys keep their defaults; unknown keys are an error. The result is
// validated. An empty document yields DefaultOptions.
func LoadOptions(r io.Reader) (Options, error) {
	o := DefaultOptions()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&o); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, fmt.Errorf("%w: %v", ErrOptionViolation, err)
	}
	if err := o.Validate(); err != nil {
		return Options{}, err
	}
	return o, nil
}

// LoadOptionsFile reads label parameters from a YAML file. See LoadOptions.
func LoadOptionsFile(path string) (Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return Options{}, fmt.Errorf("decay: open config: %w", err)
	}
	defer f.Close()

	o, err := LoadOptions(f)
	if err != nil {
		return Options{}, fmt.Errorf("%s: %w", path, err)
	}
	return o, nil
}
