package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jobsight/jobsight/pkg/jobsight/internalerr"
)

// DictFile represents the dictionary override file. Every section maps
// a canonical value to its surface forms; sections left empty keep the
// built-in dictionary.
type DictFile struct {
	Cities    map[string][]string `yaml:"cities"`
	Metro     map[string][]string `yaml:"metro"`
	Remote    map[string][]string `yaml:"remote"`
	Grades    map[string][]string `yaml:"grades"`
	Titles    map[string][]string `yaml:"titles"`
	Companies map[string][]string `yaml:"companies"`
}

// LoadDictFile loads dictionary overrides from a YAML file.
func LoadDictFile(path string) (*DictFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var df DictFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return nil, err
	}

	if err := df.validate(); err != nil {
		return nil, err
	}
	return &df, nil
}

func (df *DictFile) validate() error {
	sections := map[string]map[string][]string{
		"cities":    df.Cities,
		"metro":     df.Metro,
		"remote":    df.Remote,
		"grades":    df.Grades,
		"titles":    df.Titles,
		"companies": df.Companies,
	}
	for name, section := range sections {
		for canonical, surfaces := range section {
			if canonical == "" {
				return fmt.Errorf("%w: %s has an entry with an empty canonical value", internalerr.ErrInvalidConfig, name)
			}
			if len(surfaces) == 0 {
				return fmt.Errorf("%w: %s entry %q has no surface forms", internalerr.ErrInvalidConfig, name, canonical)
			}
			for _, s := range surfaces {
				if s == "" {
					return fmt.Errorf("%w: %s entry %q has an empty surface form", internalerr.ErrInvalidConfig, name, canonical)
				}
			}
		}
	}
	return nil
}
