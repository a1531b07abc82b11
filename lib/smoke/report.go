package smoke

import (
	"fmt"
	"io"
	"time"
)

type Check struct {
	Name     string        `json:"name"`
	Passed   bool          `json:"passed"`
	Message  string        `json:"message"`
	Duration time.Duration `json:"duration"`
}

type Report struct {
	Checks []Check `json:"checks"`
	Total  int     `json:"total"`
	Passed int     `json:"passed"`
	Failed int     `json:"failed"`
}

func (r *Report) add(check Check) {
	r.Checks = append(r.Checks, check)
	r.Total++
	if check.Passed {
		r.Passed++
	} else {
		r.Failed++
	}
}

// SuccessRate is the share of passed checks in percent.
func (r Report) SuccessRate() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Passed) / float64(r.Total) * 100
}

func (r Report) OK() bool {
	return r.Failed == 0
}

func (r Report) FailedChecks() []Check {
	failed := make([]Check, 0, r.Failed)
	for _, check := range r.Checks {
		if !check.Passed {
			failed = append(failed, check)
		}
	}
	return failed
}

// Print writes a plain-text summary for terminals and CI logs.
func (r Report) Print(w io.Writer) {
	for _, check := range r.Checks {
		mark := "PASS"
		if !check.Passed {
			mark = "FAIL"
		}
		fmt.Fprintf(w, "[%s] %s: %s (%v)\n", mark, check.Name, check.Message, check.Duration.Round(time.Millisecond))
	}
	fmt.Fprintf(w, "\nTotal: %d, passed: %d, failed: %d, success rate: %.1f%%\n", r.Total, r.Passed, r.Failed, r.SuccessRate())
	if failed := r.FailedChecks(); len(failed) != 0 {
		fmt.Fprintln(w, "\nFailed checks:")
		for _, check := range failed {
			fmt.Fprintf(w, "  - %s: %s\n", check.Name, check.Message)
		}
	}
}
