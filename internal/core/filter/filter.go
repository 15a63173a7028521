// Package filter narrows a record set by independent per-field selectors
package filter

import (
	"net/url"
	"slices"
	"strconv"
	"strings"

	"piptrade/internal/core/record"
)

// Key names one selector
type Key string

// Selector keys, as the dashboard and query strings name them
const (
	KeyEndYear Key = "endYear"
	KeyTopic   Key = "topic"
	KeySector  Key = "sector"
	KeyRegion  Key = "region"
	KeyPest    Key = "pest"
	KeySource  Key = "source"
	KeySWOT    Key = "swot"
	KeyCountry Key = "country"
	KeyCity    Key = "city"
)

var keys = []Key{KeyEndYear, KeyTopic, KeySector, KeyRegion, KeyPest, KeySource, KeySWOT, KeyCountry, KeyCity}

// Keys lists the selector keys in canonical order
func Keys() []Key { return slices.Clone(keys) }

// ParseKey resolves a key name
func ParseKey(s string) (Key, bool) {
	k := Key(s)
	return k, slices.Contains(keys, k)
}

// Field returns the record field a key constrains
func (k Key) Field() string {
	switch k {
	case KeyEndYear:
		return record.FieldEndYear
	case KeyPest:
		return record.FieldPestle
	case KeySWOT:
		return record.FieldImpact
	default:
		return string(k)
	}
}

// Criteria holds one optional value per key, empty means unconstrained
type Criteria struct {
	EndYear string `json:"endYear,omitempty"`
	Topic   string `json:"topic,omitempty"`
	Sector  string `json:"sector,omitempty"`
	Region  string `json:"region,omitempty"`
	Pest    string `json:"pest,omitempty"`
	Source  string `json:"source,omitempty"`
	SWOT    string `json:"swot,omitempty"`
	Country string `json:"country,omitempty"`
	City    string `json:"city,omitempty"`
}

// Get returns the value held for k
func (c Criteria) Get(k Key) string {
	if p := c.slot(k); p != nil {
		return *p
	}
	return ""
}

// With returns a copy with k set to v; unknown keys leave c unchanged
func (c Criteria) With(k Key, v string) Criteria {
	if p := c.slot(k); p != nil {
		*p = v
	}
	return c
}

func (c *Criteria) slot(k Key) *string {
	switch k {
	case KeyEndYear:
		return &c.EndYear
	case KeyTopic:
		return &c.Topic
	case KeySector:
		return &c.Sector
	case KeyRegion:
		return &c.Region
	case KeyPest:
		return &c.Pest
	case KeySource:
		return &c.Source
	case KeySWOT:
		return &c.SWOT
	case KeyCountry:
		return &c.Country
	case KeyCity:
		return &c.City
	}
	return nil
}

// Active lists the constrained keys in canonical order
func (c Criteria) Active() []Key {
	var out []Key
	for _, k := range keys {
		if c.Get(k) != "" {
			out = append(out, k)
		}
	}
	return out
}

// IsZero reports whether no key is constrained
func (c Criteria) IsZero() bool { return c == Criteria{} }

// ParseQuery builds criteria from query parameters named after the keys
func ParseQuery(q url.Values) Criteria {
	var c Criteria
	for _, k := range keys {
		c = c.With(k, q.Get(string(k)))
	}
	return c
}

// Query renders the criteria as query parameters, active keys only
func (c Criteria) Query() url.Values {
	q := url.Values{}
	for _, k := range c.Active() {
		q.Set(string(k), c.Get(k))
	}
	return q
}

// Value reads the field k constrains, ok is false for null or unset fields
func Value(r record.Record, k Key) (string, bool) {
	switch k {
	case KeyEndYear:
		if !r.EndYear.IsSet() {
			return "", false
		}
		return strconv.Itoa(int(r.EndYear)), true
	case KeyTopic:
		return r.Topic, true
	case KeySector:
		return r.Sector, true
	case KeyRegion:
		return r.Region, true
	case KeyPest:
		return r.Pestle, true
	case KeySource:
		return r.Source, true
	case KeySWOT:
		return deref(r.Impact)
	case KeyCountry:
		return deref(r.Country)
	case KeyCity:
		return deref(r.City)
	}
	return "", false
}

func deref(p *string) (string, bool) {
	if p == nil {
		return "", false
	}
	return *p, true
}

type predicate func(record.Record) bool

func compile(c Criteria) []predicate {
	var out []predicate
	for _, k := range c.Active() {
		out = append(out, match(k, c.Get(k)))
	}
	return out
}

func match(k Key, want string) predicate {
	if k == KeyEndYear {
		n, err := strconv.Atoi(strings.TrimSpace(want))
		if err != nil {
			return func(record.Record) bool { return false }
		}
		return func(r record.Record) bool {
			return r.EndYear.IsSet() && int(r.EndYear) == n
		}
	}
	return func(r record.Record) bool {
		v, ok := Value(r, k)
		return ok && v == want
	}
}

// Apply returns the records satisfying every active constraint, order kept
func Apply(records []record.Record, c Criteria) []record.Record {
	preds := compile(c)
	out := make([]record.Record, 0, len(records))
next:
	for _, r := range records {
		for _, p := range preds {
			if !p(r) {
				continue next
			}
		}
		out = append(out, r)
	}
	return out
}
