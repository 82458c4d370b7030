package scene

import (
	"fmt"

	"github.com/chazu/strata/pkg/strerr"
)

// ValidationSeverity indicates whether a finding blocks bake or is
// merely informational.
type ValidationSeverity int

const (
	SeverityError ValidationSeverity = iota
	SeverityWarning
)

func (sev ValidationSeverity) String() string {
	if sev == SeverityWarning {
		return "warning"
	}
	return "error"
}

// ValidationFinding describes a single Tier 1/Tier 2 finding against an
// instance, or the scene as a whole when InstanceID is empty.
type ValidationFinding struct {
	InstanceID string
	Message    string
	Severity   ValidationSeverity
}

func (f ValidationFinding) String() string {
	if f.InstanceID == "" {
		return fmt.Sprintf("[%s] %s", f.Severity, f.Message)
	}
	return fmt.Sprintf("[%s] instance %s: %s", f.Severity, f.InstanceID, f.Message)
}

// ValidateBeforeBake runs Tier 1 structural checks (dangling part
// references, non-positive voxelsPerUnit, non-multiple resolution
// overrides) and Tier 2 geometric checks (empty part solids, which
// bake silently regardless but are worth flagging) against s, returning
// every finding. Any Tier 1 finding means Bake would fail; callers
// should surface the first such finding as a strerr.InvalidArgument
// before attempting the bake.
func ValidateBeforeBake(s *Scene) []ValidationFinding {
	var findings []ValidationFinding
	findings = append(findings, validateStructural(s)...)
	findings = append(findings, validateGeometric(s)...)
	return findings
}

func validateStructural(s *Scene) []ValidationFinding {
	var out []ValidationFinding
	if s.VoxelsPerUnit <= 0 {
		out = append(out, ValidationFinding{
			Message:  fmt.Sprintf("scene voxelsPerUnit must be positive, got %d", s.VoxelsPerUnit),
			Severity: SeverityError,
		})
	}
	for _, inst := range s.Instances {
		if _, ok := s.Parts[inst.PartName]; !ok {
			out = append(out, ValidationFinding{
				InstanceID: inst.ID,
				Message:    fmt.Sprintf("references undefined part %q", inst.PartName),
				Severity:   SeverityError,
			})
			continue
		}
		if inst.VPUOverride != 0 {
			if inst.VPUOverride <= 0 {
				out = append(out, ValidationFinding{
					InstanceID: inst.ID,
					Message:    fmt.Sprintf("vpu override must be positive, got %d", inst.VPUOverride),
					Severity:   SeverityError,
				})
			} else if s.VoxelsPerUnit > 0 && inst.VPUOverride%s.VoxelsPerUnit != 0 {
				out = append(out, ValidationFinding{
					InstanceID: inst.ID,
					Message:    fmt.Sprintf("vpu override %d is not a multiple of scene vpu %d", inst.VPUOverride, s.VoxelsPerUnit),
					Severity:   SeverityError,
				})
			}
		}
	}
	return out
}

func validateGeometric(s *Scene) []ValidationFinding {
	var out []ValidationFinding
	for _, inst := range s.Instances {
		part, ok := s.Parts[inst.PartName]
		if !ok || part.Solid == nil {
			continue
		}
		if part.Solid.Len() == 0 {
			out = append(out, ValidationFinding{
				InstanceID: inst.ID,
				Message:    fmt.Sprintf("part %q is empty", inst.PartName),
				Severity:   SeverityWarning,
			})
		}
	}
	return out
}

// firstBlockingError returns a strerr.InvalidArgument wrapping the
// first error-severity finding, or nil if none.
func firstBlockingError(findings []ValidationFinding) error {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return strerr.New(strerr.InvalidArgument, "%s", f.String())
		}
	}
	return nil
}
