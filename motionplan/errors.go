package motionplan

import "github.com/pkg/errors"

// ErrPlanExhausted is returned when the planner runs out of iterations without reaching the
// goal. It is a normal reportable outcome, not a crash; callers can detect it with errors.Is
// to distinguish "no path found" from a malformed request.
var ErrPlanExhausted = errors.New("motion planner failed to find path")

var (
	// The sampled configuration coincided exactly with its nearest neighbor, leaving no
	// direction to extend in. The iteration is abandoned and the tree is left untouched.
	errDegenerateSample = errors.New("sample coincides with its nearest neighbor")

	// The candidate configuration was rejected by the state constraint. No node is created.
	errConstraintRejected = errors.New("candidate rejected by state constraint")

	errNoLimits = errors.New("at least one joint limit is required")
)
