package motionplan

import (
	"testing"

	"go.viam.com/test"
)

func TestBasicPlannerOptions(t *testing.T) {
	opt := NewBasicPlannerOptions()
	test.That(t, opt.PlanIter, test.ShouldEqual, 10000)
	test.That(t, opt.StepSize, test.ShouldEqual, 0.25)
	test.That(t, opt.GoalThreshold, test.ShouldEqual, 1.0)
	test.That(t, opt.GoalBias, test.ShouldEqual, 0.2)
	test.That(t, opt.GoalJitter, test.ShouldEqual, 0.05)
	test.That(t, opt.ClampToLimits, test.ShouldBeFalse)
	test.That(t, opt.validate(), test.ShouldBeNil)
}

func TestPlannerOptionsFromExtra(t *testing.T) {
	opt, err := NewPlannerOptionsFromExtra(map[string]interface{}{
		"plan_iter":       500,
		"step_size":       0.1,
		"clamp_to_limits": true,
	})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, opt.PlanIter, test.ShouldEqual, 500)
	test.That(t, opt.StepSize, test.ShouldEqual, 0.1)
	test.That(t, opt.ClampToLimits, test.ShouldBeTrue)
	// untouched fields keep their defaults
	test.That(t, opt.GoalBias, test.ShouldEqual, 0.2)

	_, err = NewPlannerOptionsFromExtra(map[string]interface{}{"step_size": "fast"})
	test.That(t, err, test.ShouldNotBeNil)
}

func TestPlannerOptionsValidate(t *testing.T) {
	for _, testCase := range []struct {
		name   string
		mutate func(*PlannerOptions)
	}{
		{"zero iterations", func(o *PlannerOptions) { o.PlanIter = 0 }},
		{"negative step", func(o *PlannerOptions) { o.StepSize = -0.25 }},
		{"zero goal threshold", func(o *PlannerOptions) { o.GoalThreshold = 0 }},
		{"bias above one", func(o *PlannerOptions) { o.GoalBias = 1.5 }},
		{"negative bias", func(o *PlannerOptions) { o.GoalBias = -0.1 }},
		{"negative jitter", func(o *PlannerOptions) { o.GoalJitter = -0.05 }},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			opt := NewBasicPlannerOptions()
			testCase.mutate(opt)
			test.That(t, opt.validate(), test.ShouldNotBeNil)
		})
	}

	// a malformed option set fails planner construction, not the planning loop
	opt := NewBasicPlannerOptions()
	opt.StepSize = 0
	_, err := NewRRTMotionPlanner(DefaultArmLimits, nil, nil, opt)
	test.That(t, err, test.ShouldNotBeNil)
}
