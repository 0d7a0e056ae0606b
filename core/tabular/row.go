package tabular

import (
	"slices"
)

// Row is a canonical record: field name to display string.
type Row map[string]string

// Lookup returns the value for key and whether it is present.
func (r Row) Lookup(key string) (string, bool) {
	v, ok := r[key]
	return v, ok
}

// Has reports whether key is present and non-empty.
func (r Row) Has(key string) bool {
	return r[key] != ""
}

// Clone returns a shallow copy of the row.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Header returns the sorted union of all row keys minus exclude.
func Header(rows []Row, exclude []string) []string {
	skip := make(map[string]struct{}, len(exclude))
	for _, k := range exclude {
		skip[k] = struct{}{}
	}

	union := make(map[string]struct{})
	for _, row := range rows {
		for k := range row {
			if _, ok := skip[k]; ok {
				continue
			}
			union[k] = struct{}{}
		}
	}

	header := make([]string, 0, len(union))
	for k := range union {
		header = append(header, k)
	}
	slices.Sort(header)
	return header
}
