package service

import (
	"errors"

	"github.com/iliyamo/kucinema/internal/validate"
)

// Report is the machine readable outcome of an integrity pass, emitted by
// `kucinema validate --format yaml`.
type Report struct {
	OK         bool              `yaml:"ok"`
	Summary    *Summary          `yaml:"summary,omitempty"`
	Check      string            `yaml:"check,omitempty"`
	Error      string            `yaml:"error,omitempty"`
	Violations []ReportViolation `yaml:"violations,omitempty"`
}

// ReportViolation is one offending line of a failed check.
type ReportViolation struct {
	Line    int    `yaml:"line,omitempty"`
	Content string `yaml:"content"`
	Reason  string `yaml:"reason"`
}

// NewReport builds a Report from the result of CheckAll.
func NewReport(sum Summary, err error) Report {
	if err == nil {
		return Report{OK: true, Summary: &sum}
	}
	var verr *validate.Error
	if !errors.As(err, &verr) {
		return Report{Error: err.Error()}
	}
	r := Report{Check: verr.Check}
	for _, v := range verr.Violations {
		r.Violations = append(r.Violations, ReportViolation{Line: v.Line, Content: v.Content, Reason: v.Err.Error()})
	}
	return r
}
