// Package motionplan is a joint-space motion planning library. It grows a rapidly-exploring
// random tree through an arm's configuration space and returns an ordered sequence of
// waypoints from a start configuration to within a threshold of a goal configuration.
package motionplan

import (
	"context"
	"math/rand"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/jointplan/referenceframe"
)

// MotionPlanner provides an interface to path planning methods, providing ways to request a
// path to be planned between two joint configurations.
type MotionPlanner interface {
	// Plan will take a context, a goal configuration, and an input start state and return a
	// series of state waypoints which should be visited in order to arrive at the goal while
	// satisfying the planner's state constraint.
	Plan(ctx context.Context, goal, seed []referenceframe.Input) ([][]referenceframe.Input, error)
	// Limits returns the per-joint limits used for planning.
	Limits() []referenceframe.Limit
}

type planReturn struct {
	steps [][]referenceframe.Input
	err   error
}

// DefaultArmLimits are the joint limits of a 6-DOF assistive arm, used when a request does
// not carry its own.
var DefaultArmLimits = []referenceframe.Limit{
	{Min: -3.14, Max: 3.14},
	{Min: 1.57, Max: 5.00},
	{Min: 0.33, Max: 5.00},
	{Min: -3.14, Max: 3.14},
	{Min: 0, Max: 3.14},
	{Min: 0, Max: 3.14},
}

// PlanRequest is a fully serializable description of one planning problem.
type PlanRequest struct {
	Start            []float64       `json:"start"`
	Goal             []float64       `json:"goal"`
	JointLowerLimits []float64       `json:"joint_lower_limits,omitempty"`
	JointUpperLimits []float64       `json:"joint_upper_limits,omitempty"`
	PlannerOptions   *PlannerOptions `json:"planner_options,omitempty"`
}

// limits resolves the request's joint limits, falling back to DefaultArmLimits when the
// request carries none.
func (req *PlanRequest) limits() ([]referenceframe.Limit, error) {
	if len(req.JointLowerLimits) == 0 && len(req.JointUpperLimits) == 0 {
		return DefaultArmLimits, nil
	}
	return referenceframe.LimitsFromBounds(req.JointLowerLimits, req.JointUpperLimits)
}

func (req *PlanRequest) validate(limits []referenceframe.Limit) error {
	var errAll error
	if len(req.Start) == 0 {
		errAll = multierr.Append(errAll, errors.New("request has no start configuration"))
	}
	if len(req.Goal) == 0 {
		errAll = multierr.Append(errAll, errors.New("request has no goal configuration"))
	}
	if len(req.Start) != len(limits) {
		errAll = multierr.Append(errAll, errors.Errorf("start has %d joints but limits have %d", len(req.Start), len(limits)))
	}
	if len(req.Goal) != len(limits) {
		errAll = multierr.Append(errAll, errors.Errorf("goal has %d joints but limits have %d", len(req.Goal), len(limits)))
	}
	return errAll
}

// PlanJointMotion plans a motion from the request's start to its goal configuration,
// respecting the given state constraint. A nil constraint accepts every configuration.
func PlanJointMotion(
	ctx context.Context,
	logger golog.Logger,
	req *PlanRequest,
	constraint StateConstraint,
) ([][]referenceframe.Input, error) {
	limits, err := req.limits()
	if err != nil {
		return nil, err
	}
	if err := req.validate(limits); err != nil {
		return nil, err
	}

	opt := req.PlannerOptions
	if opt == nil {
		opt = NewBasicPlannerOptions()
	}

	//nolint:gosec
	mp, err := NewRRTMotionPlannerWithSeed(limits, constraint, rand.New(rand.NewSource(int64(opt.RandomSeed))), logger, opt)
	if err != nil {
		return nil, err
	}
	return mp.Plan(ctx, referenceframe.FloatsToInputs(req.Goal), referenceframe.FloatsToInputs(req.Start))
}
