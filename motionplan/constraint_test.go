package motionplan

import (
	"testing"

	"go.viam.com/test"

	"go.viam.com/jointplan/referenceframe"
)

func TestStateConstraintFunc(t *testing.T) {
	positiveFirstJoint := StateConstraintFunc(func(q []referenceframe.Input) bool {
		return q[0].Value > 0
	})
	test.That(t, positiveFirstJoint.IsSatisfied(q(1, -5)), test.ShouldBeTrue)
	test.That(t, positiveFirstJoint.IsSatisfied(q(-1, 5)), test.ShouldBeFalse)
}

func TestJointLimitConstraint(t *testing.T) {
	limits := []referenceframe.Limit{{Min: -1, Max: 1}, {Min: -1, Max: 1}}
	constraint := NewJointLimitConstraint(limits)
	test.That(t, constraint.IsSatisfied(q(0, 0)), test.ShouldBeTrue)
	test.That(t, constraint.IsSatisfied(q(0, 1.5)), test.ShouldBeFalse)
	test.That(t, constraint.IsSatisfied(q(0)), test.ShouldBeFalse)
}

func TestCombineConstraints(t *testing.T) {
	inUnitBox := NewJointLimitConstraint([]referenceframe.Limit{{Min: -1, Max: 1}})
	nonNegative := StateConstraintFunc(func(q []referenceframe.Input) bool {
		return q[0].Value >= 0
	})

	combined := CombineConstraints(inUnitBox, nil, nonNegative)
	test.That(t, combined.IsSatisfied(q(0.5)), test.ShouldBeTrue)
	test.That(t, combined.IsSatisfied(q(-0.5)), test.ShouldBeFalse)
	test.That(t, combined.IsSatisfied(q(1.5)), test.ShouldBeFalse)

	// no constraints means everything is admissible
	test.That(t, CombineConstraints().IsSatisfied(q(99)), test.ShouldBeTrue)
}
