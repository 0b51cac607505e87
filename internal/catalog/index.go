package catalog

import "strings"

// distinct lowercases, trims and deduplicates values, dropping empties.
func distinct(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		set[v] = struct{}{}
	}
	return set
}

// DistinctNames returns the distinct normalized studio names in the table.
func (t *Table) DistinctNames() map[string]struct{} {
	names := make([]string, 0, len(t.entries))
	for _, e := range t.entries {
		names = append(names, e.Name)
	}
	return distinct(names)
}

// DistinctTowns returns the distinct lowercased town names in the table.
func (t *Table) DistinctTowns() map[string]struct{} {
	towns := make([]string, 0, len(t.entries))
	for _, e := range t.entries {
		towns = append(towns, e.City)
	}
	return distinct(towns)
}
