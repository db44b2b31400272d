package motionplan

import (
	"encoding/json"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// default values for planning options.
const (
	// Number of planner iterations before giving up.
	defaultPlanIter = 10000

	// Maximum L2 distance in configuration space advanced per extension.
	defaultStepSize = 0.25

	// How close a node must land to the goal, in configuration space, to finish.
	defaultGoalThreshold = 1.0

	// Fraction of samples drawn near the goal instead of uniformly within the limits.
	defaultGoalBias = 0.2

	// Half-width of the per-joint band goal-biased samples are drawn from.
	defaultGoalJitter = 0.05

	// random seed.
	defaultRandomSeed = 0
)

// NewBasicPlannerOptions specifies a set of basic options for the planner.
func NewBasicPlannerOptions() *PlannerOptions {
	opt := &PlannerOptions{}
	opt.PlanIter = defaultPlanIter
	opt.StepSize = defaultStepSize
	opt.GoalThreshold = defaultGoalThreshold
	opt.GoalBias = defaultGoalBias
	opt.GoalJitter = defaultGoalJitter
	opt.RandomSeed = defaultRandomSeed
	return opt
}

// PlannerOptions are a set of options to be passed to a planner which will specify how to
// solve a motion planning problem.
type PlannerOptions struct {
	// Max number of planner iterations before reporting failure.
	PlanIter int `json:"plan_iter"`

	// Maximum configuration-space distance advanced per extension.
	StepSize float64 `json:"step_size"`

	// How close to get to the goal.
	GoalThreshold float64 `json:"goal_threshold"`

	// Probability in [0,1] of drawing a sample near the goal rather than uniformly.
	GoalBias float64 `json:"goal_bias"`

	// Half-width of the uniform band around each goal joint used for goal-biased samples.
	// Goal-biased samples are not clamped to the joint limits.
	GoalJitter float64 `json:"goal_jitter"`

	// ClampToLimits caps extension candidates to the joint limits. Off by default, the
	// planner lets candidates step past the declared limits the way the unbiased step
	// arithmetic produces them; combine with NewJointLimitConstraint to reject instead.
	ClampToLimits bool `json:"clamp_to_limits"`

	// The random seed used during planning. This parameter guarantees deterministic outputs
	// for a given set of identical inputs.
	RandomSeed int `json:"rseed"`
}

// NewPlannerOptionsFromExtra returns basic default settings updated by overridden parameters
// found in an untyped "extra" configuration map.
func NewPlannerOptionsFromExtra(extra map[string]interface{}) (*PlannerOptions, error) {
	opt := NewBasicPlannerOptions()

	jsonString, err := json.Marshal(extra)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(jsonString, opt); err != nil {
		return nil, err
	}

	if err := opt.validate(); err != nil {
		return nil, err
	}
	return opt, nil
}

func (opt *PlannerOptions) validate() error {
	var errAll error
	if opt.PlanIter <= 0 {
		errAll = multierr.Append(errAll, errors.Errorf("plan_iter must be positive, got %d", opt.PlanIter))
	}
	if opt.StepSize <= 0 {
		errAll = multierr.Append(errAll, errors.Errorf("step_size must be positive, got %f", opt.StepSize))
	}
	if opt.GoalThreshold <= 0 {
		errAll = multierr.Append(errAll, errors.Errorf("goal_threshold must be positive, got %f", opt.GoalThreshold))
	}
	if opt.GoalBias < 0 || opt.GoalBias > 1 {
		errAll = multierr.Append(errAll, errors.Errorf("goal_bias must be in [0,1], got %f", opt.GoalBias))
	}
	if opt.GoalJitter < 0 {
		errAll = multierr.Append(errAll, errors.Errorf("goal_jitter cannot be negative, got %f", opt.GoalJitter))
	}
	return errAll
}
