package study

import (
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/linqs/srinivasan-mlj20/internal/apperr"
)

type DatasetProperties struct {
	EvaluationPredicate string `yaml:"evaluation_predicate"`
}

type Properties struct {
	Datasets map[string]DatasetProperties `yaml:"datasets"`
}

// DefaultProperties are the datasets of the weight learning experiments.
func DefaultProperties() *Properties {
	return &Properties{
		Datasets: map[string]DatasetProperties{
			"jester":   {EvaluationPredicate: "rating"},
			"epinions": {EvaluationPredicate: "trusts"},
			"cora":     {EvaluationPredicate: "hasCat"},
			"citeseer": {EvaluationPredicate: "hasCat"},
			"lastfm":   {EvaluationPredicate: "rating"},
		},
	}
}

// LoadProperties reads a YAML properties file and layers it over the defaults.
func LoadProperties(path string) (*Properties, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.NewConfigWrap("read dataset properties", err)
	}
	return ParseProperties(data)
}

func ParseProperties(data []byte) (*Properties, error) {
	var p Properties
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, apperr.NewConfigWrap("parse dataset properties", err)
	}
	if len(p.Datasets) == 0 {
		return nil, apperr.NewConfig("dataset properties define no datasets")
	}
	for name, ds := range p.Datasets {
		if ds.EvaluationPredicate == "" {
			return nil, apperr.NewConfig("dataset %q has no evaluation_predicate", name)
		}
	}

	merged := DefaultProperties()
	for name, ds := range p.Datasets {
		merged.Datasets[name] = ds
	}
	return merged, nil
}

// Predicate returns the evaluation predicate of dataset. A dataset without
// properties is a configuration error.
func (p *Properties) Predicate(dataset string) (string, error) {
	ds, ok := p.Datasets[dataset]
	if !ok {
		return "", apperr.NewConfig("no properties for dataset %q, known datasets: %v", dataset, p.Names())
	}
	return ds.EvaluationPredicate, nil
}

func (p *Properties) Names() []string {
	names := make([]string, 0, len(p.Datasets))
	for name := range p.Datasets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
