package query

// Filter is the base filter of a job query. A nil field means the caller did
// not supply it and contributes no constraint.
type Filter struct {
	Location  *string
	JobType   *string
	MinSalary *float64
	MaxSalary *float64
}

// Predicates returns one predicate per supplied field.
func (f Filter) Predicates() []Predicate {
	var preds []Predicate
	if f.Location != nil {
		preds = append(preds, LocationIs(*f.Location))
	}
	if f.JobType != nil {
		preds = append(preds, JobTypeIs(*f.JobType))
	}
	if f.MinSalary != nil {
		preds = append(preds, SalaryAtLeast(*f.MinSalary))
	}
	if f.MaxSalary != nil {
		preds = append(preds, SalaryAtMost(*f.MaxSalary))
	}
	return preds
}

// WithKeywords returns the base predicates followed by the keyword group, if any.
func (f Filter) WithKeywords(kw Keywords) []Predicate {
	preds := f.Predicates()
	if !kw.Empty() {
		preds = append(preds, kw)
	}
	return preds
}
