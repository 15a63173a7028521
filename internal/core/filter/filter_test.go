package filter

import (
	"encoding/json"
	"net/url"
	"reflect"
	"testing"

	"piptrade/internal/core/record"
)

func sample() []record.Record {
	return []record.Record{
		{Topic: "gas", Sector: "Energy", Region: "World", Pestle: "Industries", Source: "EIA", EndYear: 2020, Intensity: 5, Country: record.Str("India")},
		{Topic: "oil", Sector: "Energy", Region: "Asia", Pestle: "Economic", Source: "Reuters", EndYear: 2021, Intensity: 3, Impact: record.Str("")},
		{Topic: "gas", Sector: "Retail", Region: "World", Pestle: "Industries", Source: "EIA", Intensity: 8, City: record.Str("Delhi")},
	}
}

func topics(rs []record.Record) []string {
	var out []string
	for _, r := range rs {
		out = append(out, r.Topic)
	}
	return out
}

func TestApplyIdentityOnEmptyCriteria(t *testing.T) {
	in := sample()
	got := Apply(in, Criteria{})
	if !reflect.DeepEqual(got, in) {
		t.Fatalf("empty criteria changed the set: %v", topics(got))
	}
	got[0].Topic = "changed"
	if in[0].Topic != "gas" {
		t.Fatalf("Apply must return a new slice")
	}
}

func TestApplyGasScenario(t *testing.T) {
	in := []record.Record{
		{Topic: "gas", Intensity: 5},
		{Topic: "oil", Intensity: 3},
		{Topic: "gas", Intensity: 8},
	}
	got := Apply(in, Criteria{Topic: "gas"})
	if len(got) != 2 || got[0].Intensity != 5 || got[1].Intensity != 8 {
		t.Fatalf("got %+v", got)
	}
}

func TestApplyEndYearCoercion(t *testing.T) {
	decode := func(s string) record.Record {
		var r record.Record
		if err := json.Unmarshal([]byte(s), &r); err != nil {
			t.Fatal(err)
		}
		return r
	}
	in := []record.Record{
		decode(`{"topic":"a","end_year":2020}`),
		decode(`{"topic":"b","end_year":"2020"}`),
		decode(`{"topic":"c","end_year":2021}`),
		decode(`{"topic":"d","end_year":""}`),
	}
	got := topics(Apply(in, Criteria{EndYear: "2020"}))
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("endYear=2020 -> %v", got)
	}
	if got := Apply(in, Criteria{EndYear: " 2021 "}); len(got) != 1 || got[0].Topic != "c" {
		t.Fatalf("trimmed criterion -> %v", topics(got))
	}
	if got := Apply(in, Criteria{EndYear: "next"}); len(got) != 0 {
		t.Fatalf("unparsable criterion should match nothing, got %v", topics(got))
	}
	if got := Apply(in, Criteria{EndYear: "0"}); len(got) != 0 {
		t.Fatalf("records without an end year must not match, got %v", topics(got))
	}
}

func TestApplyKeyAliasesAndNulls(t *testing.T) {
	in := sample()
	if got := topics(Apply(in, Criteria{Pest: "Economic"})); !reflect.DeepEqual(got, []string{"oil"}) {
		t.Fatalf("pest -> %v", got)
	}
	// impact "" is a value, but an empty criterion never constrains
	if got := Apply(in, Criteria{SWOT: ""}); len(got) != 3 {
		t.Fatalf("empty swot constrained the set")
	}
	if got := Apply(in, Criteria{Country: "India"}); len(got) != 1 {
		t.Fatalf("country -> %v", topics(got))
	}
	if got := Apply(in, Criteria{City: "Delhi", Topic: "gas"}); len(got) != 1 || got[0].Intensity != 8 {
		t.Fatalf("city+topic -> %v", got)
	}
}

func TestApplySoundAndIdempotent(t *testing.T) {
	in := sample()
	for _, c := range []Criteria{
		{Topic: "gas"},
		{Sector: "Energy", Region: "World"},
		{Source: "EIA", EndYear: "2020"},
		{Region: "Mars"},
	} {
		once := Apply(in, c)
		for _, r := range once {
			for _, k := range c.Active() {
				v, ok := Value(r, k)
				if k == KeyEndYear {
					if !ok || v != c.EndYear {
						t.Fatalf("%+v admitted end_year %q", c, v)
					}
					continue
				}
				if !ok || v != c.Get(k) {
					t.Fatalf("%+v admitted %s=%q", c, k, v)
				}
			}
		}
		twice := Apply(once, c)
		if !reflect.DeepEqual(once, twice) {
			t.Fatalf("%+v not idempotent", c)
		}
	}
}

func TestCriteriaAccessors(t *testing.T) {
	var c Criteria
	for _, k := range Keys() {
		c = c.With(k, "v-"+string(k))
	}
	for _, k := range Keys() {
		if got := c.Get(k); got != "v-"+string(k) {
			t.Fatalf("Get(%s) = %q", k, got)
		}
	}
	if len(c.Active()) != len(Keys()) {
		t.Fatalf("Active = %v", c.Active())
	}

	base := Criteria{Topic: "gas"}
	derived := base.With(KeyRegion, "World")
	if base.Region != "" || derived.Region != "World" || derived.Topic != "gas" {
		t.Fatalf("With must copy: base=%+v derived=%+v", base, derived)
	}
	if got := base.With("bogus", "x"); got != base {
		t.Fatalf("unknown key changed criteria")
	}
	if !(Criteria{}).IsZero() || base.IsZero() {
		t.Fatalf("IsZero wrong")
	}
}

func TestParseQueryRoundTrip(t *testing.T) {
	q := url.Values{"topic": {"gas"}, "endYear": {"2020"}, "swot": {"high"}, "ignored": {"x"}}
	c := ParseQuery(q)
	want := Criteria{Topic: "gas", EndYear: "2020", SWOT: "high"}
	if c != want {
		t.Fatalf("ParseQuery = %+v", c)
	}
	if back := ParseQuery(c.Query()); back != want {
		t.Fatalf("Query round trip = %+v", back)
	}
}

func TestKeyFieldAndParse(t *testing.T) {
	if KeyPest.Field() != "pestle" || KeySWOT.Field() != "impact" || KeyEndYear.Field() != "end_year" || KeyCity.Field() != "city" {
		t.Fatalf("field mapping off")
	}
	if _, ok := ParseKey("sector"); !ok {
		t.Fatalf("sector should parse")
	}
	if _, ok := ParseKey("pestle"); ok {
		t.Fatalf("field names are not keys")
	}
	ks := Keys()
	ks[0] = "mutated"
	if Keys()[0] != KeyEndYear {
		t.Fatalf("Keys must return a copy")
	}
}
