// Package record defines the dashboard data point and its tolerant JSON form
//
// Stored documents are loosely typed: end_year shows up as a number, a numeric
// string or "", intensity as a number or "", and any number of extra
// attributes ride along untouched. Decoding coerces the fields the dashboard
// reads and keeps everything else verbatim in Extra so a document round trips.
package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Field names as they appear on the wire
const (
	FieldID        = "_id"
	FieldTopic     = "topic"
	FieldSector    = "sector"
	FieldRegion    = "region"
	FieldPestle    = "pestle"
	FieldSource    = "source"
	FieldImpact    = "impact"
	FieldCountry   = "country"
	FieldCity      = "city"
	FieldEndYear   = "end_year"
	FieldIntensity = "intensity"
)

// Year is an end year, 0 means no end year
type Year int

// IsSet reports whether the year carries a value
func (y Year) IsSet() bool { return y != 0 }

// Record is one stored data point
type Record struct {
	ID        string  `json:"_id,omitempty"`
	Topic     string  `json:"topic"`
	Sector    string  `json:"sector"`
	Region    string  `json:"region"`
	Pestle    string  `json:"pestle"`
	Source    string  `json:"source"`
	Impact    *string `json:"impact"`
	Country   *string `json:"country"`
	City      *string `json:"city"`
	EndYear   Year    `json:"end_year"`
	Intensity float64 `json:"intensity" validate:"gte=0"`

	// Extra holds passenger attributes (likelihood, relevance, title, ...)
	Extra map[string]json.RawMessage `json:"-"`
}

// Str returns a pointer to s, handy for the nullable fields
func Str(s string) *string { return &s }

// UnmarshalJSON decodes a loosely typed document
func (r *Record) UnmarshalJSON(b []byte) error {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(b, &doc); err != nil {
		return err
	}
	if doc == nil {
		return fmt.Errorf("record: expected a JSON object, got null")
	}

	var (
		out Record
		err error
	)
	for k, v := range doc {
		switch k {
		case FieldID:
			out.ID, err = text(v)
		case FieldTopic:
			out.Topic, err = text(v)
		case FieldSector:
			out.Sector, err = text(v)
		case FieldRegion:
			out.Region, err = text(v)
		case FieldPestle:
			out.Pestle, err = text(v)
		case FieldSource:
			out.Source, err = text(v)
		case FieldImpact:
			out.Impact, err = nullableText(v)
		case FieldCountry:
			out.Country, err = nullableText(v)
		case FieldCity:
			out.City, err = nullableText(v)
		case FieldEndYear:
			out.EndYear, err = year(v)
		case FieldIntensity:
			out.Intensity, err = number(v)
		default:
			if out.Extra == nil {
				out.Extra = make(map[string]json.RawMessage)
			}
			out.Extra[k] = append(json.RawMessage(nil), v...)
		}
		if err != nil {
			return fmt.Errorf("record: %s: %w", k, err)
		}
	}
	*r = out
	return nil
}

// MarshalJSON encodes the record with its passengers, keys sorted
func (r Record) MarshalJSON() ([]byte, error) {
	doc := make(map[string]any, len(r.Extra)+11)
	for k, v := range r.Extra {
		doc[k] = v
	}
	if r.ID != "" {
		doc[FieldID] = r.ID
	}
	doc[FieldTopic] = r.Topic
	doc[FieldSector] = r.Sector
	doc[FieldRegion] = r.Region
	doc[FieldPestle] = r.Pestle
	doc[FieldSource] = r.Source
	doc[FieldImpact] = r.Impact
	doc[FieldCountry] = r.Country
	doc[FieldCity] = r.City
	if r.EndYear.IsSet() {
		doc[FieldEndYear] = int(r.EndYear)
	} else {
		doc[FieldEndYear] = ""
	}
	doc[FieldIntensity] = r.Intensity
	return json.Marshal(doc)
}

// Passenger decodes an extra attribute into dst, ok is false when absent
func (r Record) Passenger(key string, dst any) (bool, error) {
	raw, ok := r.Extra[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dst)
}

// WithID returns a copy carrying id
func (r Record) WithID(id string) Record {
	r.ID = id
	return r
}

var null = []byte("null")

// text accepts strings and scalars, the latter cast to their literal form
func text(v json.RawMessage) (string, error) {
	v = bytes.TrimSpace(v)
	if len(v) == 0 || bytes.Equal(v, null) {
		return "", nil
	}
	switch v[0] {
	case '"':
		var s string
		err := json.Unmarshal(v, &s)
		return s, err
	case '{', '[':
		return "", fmt.Errorf("expected string, got %s", kind(v))
	default:
		return string(v), nil
	}
}

func nullableText(v json.RawMessage) (*string, error) {
	v = bytes.TrimSpace(v)
	if len(v) == 0 || bytes.Equal(v, null) {
		return nil, nil
	}
	s, err := text(v)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// year accepts integers, numeric strings, "" and null
func year(v json.RawMessage) (Year, error) {
	v = bytes.TrimSpace(v)
	if len(v) == 0 || bytes.Equal(v, null) {
		return 0, nil
	}
	switch v[0] {
	case '"':
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return 0, err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return 0, nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("expected integer year, got %q", s)
		}
		return Year(n), nil
	case '{', '[', 't', 'f':
		return 0, fmt.Errorf("expected integer year, got %s", kind(v))
	default:
		f, err := strconv.ParseFloat(string(v), 64)
		if err != nil {
			return 0, err
		}
		if f != math.Trunc(f) {
			return 0, fmt.Errorf("expected integer year, got %s", v)
		}
		return Year(int(f)), nil
	}
}

// number accepts numbers, numeric strings, "" and null
func number(v json.RawMessage) (float64, error) {
	v = bytes.TrimSpace(v)
	if len(v) == 0 || bytes.Equal(v, null) {
		return 0, nil
	}
	switch v[0] {
	case '"':
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return 0, err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return 0, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, fmt.Errorf("expected number, got %q", s)
		}
		return f, nil
	case '{', '[', 't', 'f':
		return 0, fmt.Errorf("expected number, got %s", kind(v))
	default:
		return strconv.ParseFloat(string(v), 64)
	}
}

func kind(v json.RawMessage) string {
	switch v[0] {
	case '{':
		return "object"
	case '[':
		return "array"
	case 't', 'f':
		return "bool"
	default:
		return "value"
	}
}
