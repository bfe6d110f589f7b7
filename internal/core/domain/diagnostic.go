package domain

import "fmt"

// Severity is the externally configured visibility of a lint rule.
type Severity string

const (
	// SeverityOff disables a rule entirely.
	SeverityOff Severity = "off"

	// SeverityWarning reports a finding without affecting exit status.
	SeverityWarning Severity = "warning"

	// SeverityError reports a finding and escalates the run's exit status.
	// It never aborts generation: severity changes visibility, not control
	// flow.
	SeverityError Severity = "error"
)

// ParseSeverity converts a configuration string to a Severity.
func ParseSeverity(s string) (Severity, error) {
	switch Severity(s) {
	case SeverityOff, SeverityWarning, SeverityError:
		return Severity(s), nil
	default:
		return "", fmt.Errorf("unknown severity %q", s)
	}
}

// Diagnostic is one structured lint finding.
type Diagnostic struct {
	// Rule is the stable rule tag, e.g. "schema-no-description".
	Rule string

	// Schema is the name of the schema the finding applies to.
	Schema string

	// Message describes the finding.
	Message string

	// Severity is the configured severity at report time.
	Severity Severity
}

// String renders the diagnostic for plain output.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s [%s]", d.Severity, d.Schema, d.Message, d.Rule)
}

// DiagnosticSink accumulates diagnostics during a run. It is threaded
// explicitly through the pipeline and drained by the caller at run end, so
// nothing leaks across runs or tests.
type DiagnosticSink struct {
	diags []Diagnostic
}

// NewDiagnosticSink creates an empty sink.
func NewDiagnosticSink() *DiagnosticSink {
	return &DiagnosticSink{}
}

// Add records a finding. Findings with SeverityOff are dropped.
func (s *DiagnosticSink) Add(d Diagnostic) {
	if d.Severity == SeverityOff {
		return
	}
	s.diags = append(s.diags, d)
}

// All returns the recorded findings in report order.
func (s *DiagnosticSink) All() []Diagnostic {
	return s.diags
}

// HasErrors reports whether any finding carries SeverityError.
func (s *DiagnosticSink) HasErrors() bool {
	for _, d := range s.diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}
