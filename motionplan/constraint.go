package motionplan

import "go.viam.com/jointplan/referenceframe"

// StateConstraint is the capability the planner consults before admitting a new configuration
// into the tree, typically backed by a collision checker. Anything implementing IsSatisfied is
// accepted. A nil StateConstraint is treated as always satisfied.
type StateConstraint interface {
	// IsSatisfied returns true if the given configuration is admissible, e.g. collision-free.
	IsSatisfied(q []referenceframe.Input) bool
}

// StateConstraintFunc adapts a plain function into a StateConstraint.
type StateConstraintFunc func(q []referenceframe.Input) bool

// IsSatisfied calls f.
func (f StateConstraintFunc) IsSatisfied(q []referenceframe.Input) bool {
	return f(q)
}

// NewJointLimitConstraint returns a StateConstraint satisfied only by configurations within
// the given limits.
func NewJointLimitConstraint(limits []referenceframe.Limit) StateConstraint {
	return StateConstraintFunc(func(q []referenceframe.Input) bool {
		return referenceframe.InputsWithinLimits(q, limits)
	})
}

// CombineConstraints returns a StateConstraint satisfied only when every given constraint is.
// Nil entries are skipped.
func CombineConstraints(constraints ...StateConstraint) StateConstraint {
	return StateConstraintFunc(func(q []referenceframe.Input) bool {
		for _, constraint := range constraints {
			if constraint != nil && !constraint.IsSatisfied(q) {
				return false
			}
		}
		return true
	})
}
