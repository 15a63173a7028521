package filter

import (
	"sort"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"piptrade/internal/core/record"
)

// Option is one selectable value for a key
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Options collects the distinct non-empty values per key
// End years sort ascending; every other key keeps first-occurrence order.
// Topic labels are title-cased, other labels repeat the value.
func Options(records []record.Record) map[Key][]Option {
	title := cases.Title(language.English, cases.NoLower)
	out := make(map[Key][]Option, len(keys))
	for _, k := range keys {
		seen := map[string]struct{}{}
		opts := []Option{}
		for _, r := range records {
			v, ok := Value(r, k)
			if !ok || v == "" {
				continue
			}
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			opts = append(opts, Option{Value: v, Label: v})
		}
		if k == KeyTopic {
			for i := range opts {
				opts[i].Label = title.String(opts[i].Value)
			}
		}
		if k == KeyEndYear {
			sort.SliceStable(opts, func(i, j int) bool {
				a, _ := strconv.Atoi(opts[i].Value)
				b, _ := strconv.Atoi(opts[j].Value)
				return a < b
			})
		}
		out[k] = opts
	}
	return out
}
