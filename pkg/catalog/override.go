package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// overrideFile is the on-disk format for benchmark overrides. Customers tune
// reference values per market without rebuilding the binary; only benchmarks
// can be overridden, never formulas or directions.
type overrideFile struct {
	Domains map[string]map[string]float64 `yaml:"domains"`
}

// ApplyOverrides loads a YAML benchmark override file and rewrites matching
// benchmark values in place. Unknown domains or KPI names are rejected so a
// typo in the file fails loudly at startup instead of silently keeping the
// default.
func (c *Catalog) ApplyOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read benchmark overrides: %w", err)
	}

	var file overrideFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse benchmark overrides: %w", err)
	}

	for domainID, kpis := range file.Domains {
		profile, ok := c.profiles[domainID]
		if !ok {
			return fmt.Errorf("benchmark overrides: unknown domain %q", domainID)
		}
		for name, benchmark := range kpis {
			found := false
			for i := range profile.KPIs {
				if profile.KPIs[i].Name == name {
					profile.KPIs[i].Benchmark = benchmark
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("benchmark overrides: unknown KPI %q in domain %q", name, domainID)
			}
		}
	}
	return nil
}
