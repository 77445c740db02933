package config

import (
	"fmt"
	"sort"

	"github.com/jobsight/jobsight/pkg/jobsight/dict"
	"github.com/jobsight/jobsight/pkg/jobsight/extract"
)

// Loader loads configuration files and constructs the extractor
// dictionaries.
type Loader struct {
	DictPath string
}

// Load returns the extractor dictionaries: the built-in set with any
// configured sections replaced. A Loader with no paths yields the
// built-ins unchanged.
func (l *Loader) Load() (*extract.Dictionaries, error) {
	dicts := extract.Default()

	if l.DictPath == "" {
		return dicts, nil
	}

	df, err := LoadDictFile(l.DictPath)
	if err != nil {
		return nil, fmt.Errorf("load dictionaries: %w", err)
	}

	// the amount grammar owns the closed sets (currencies, scales,
	// taxes); only the open-world dictionaries are overridable
	if len(df.Cities) > 0 {
		dicts.Cities = dict.New("cities", true, toEntries(df.Cities))
	}
	if len(df.Metro) > 0 {
		dicts.Metro = dict.New("metro", true, toEntries(df.Metro))
	}
	if len(df.Remote) > 0 {
		dicts.Remote = dict.New("remote", true, toEntries(df.Remote))
	}
	if len(df.Grades) > 0 {
		dicts.Grades = dict.New("grades", true, toEntries(df.Grades))
	}
	if len(df.Titles) > 0 {
		dicts.Titles = dict.New("titles", true, toEntries(df.Titles))
	}
	if len(df.Companies) > 0 {
		dicts.Companies = dict.New("companies", true, toEntries(df.Companies))
	}
	return dicts, nil
}

// toEntries converts a YAML section into dictionary entries in a
// deterministic order.
func toEntries(section map[string][]string) []dict.Entry {
	canonicals := make([]string, 0, len(section))
	for c := range section {
		canonicals = append(canonicals, c)
	}
	sort.Strings(canonicals)

	entries := make([]dict.Entry, 0, len(canonicals))
	for _, c := range canonicals {
		entries = append(entries, dict.Entry{Canonical: c, Surfaces: section[c]})
	}
	return entries
}
