package filter

import "piptrade/internal/core/record"

// View memoizes the visible set for a record set and criteria pair
// It is not safe for concurrent use; callers serialize access
type View struct {
	records  []record.Record
	criteria Criteria
	visible  []record.Record
	fresh    bool
	runs     int
}

// NewView returns a view over records with no constraints
func NewView(records []record.Record) *View {
	return &View{records: records}
}

// SetRecords replaces the record set
func (v *View) SetRecords(records []record.Record) {
	v.records = records
	v.fresh = false
}

// SetCriteria replaces the criteria, a no-op when unchanged
func (v *View) SetCriteria(c Criteria) {
	if v.fresh && c == v.criteria {
		return
	}
	v.criteria = c
	v.fresh = false
}

// Criteria returns the current criteria
func (v *View) Criteria() Criteria { return v.criteria }

// Records returns the full record set
func (v *View) Records() []record.Record { return v.records }

// Visible returns the filtered set, recomputed only after an input changed
func (v *View) Visible() []record.Record {
	if !v.fresh {
		v.visible = Apply(v.records, v.criteria)
		v.fresh = true
		v.runs++
	}
	return v.visible
}

// Recomputations counts how many times the visible set was rebuilt
func (v *View) Recomputations() int { return v.runs }
