package motionplan

import (
	"context"
	"math/rand"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.viam.com/utils"

	"go.viam.com/jointplan/referenceframe"
)

// Log a progress line every this many loop iterations.
const progressLogInterval = 1000

// rrtJointPlanner grows a single rapidly-exploring random tree through joint space. Each
// iteration draws a sample (goal-biased with probability GoalBias), finds the tree node
// nearest to it, and steps StepSize toward the sample, admitting the new configuration only
// if the state constraint accepts it.
type rrtJointPlanner struct {
	limits     []referenceframe.Limit
	constraint StateConstraint
	logger     golog.Logger
	randseed   *rand.Rand
	opt        *PlannerOptions
}

// NewRRTMotionPlanner creates a rrtJointPlanner seeded from the options' RandomSeed.
func NewRRTMotionPlanner(
	limits []referenceframe.Limit,
	constraint StateConstraint,
	logger golog.Logger,
	opt *PlannerOptions,
) (MotionPlanner, error) {
	if opt == nil {
		opt = NewBasicPlannerOptions()
	}
	//nolint:gosec
	return NewRRTMotionPlannerWithSeed(limits, constraint, rand.New(rand.NewSource(int64(opt.RandomSeed))), logger, opt)
}

// NewRRTMotionPlannerWithSeed creates a rrtJointPlanner with a user specified random source.
func NewRRTMotionPlannerWithSeed(
	limits []referenceframe.Limit,
	constraint StateConstraint,
	seed *rand.Rand,
	logger golog.Logger,
	opt *PlannerOptions,
) (MotionPlanner, error) {
	if opt == nil {
		opt = NewBasicPlannerOptions()
	}
	if err := opt.validate(); err != nil {
		return nil, err
	}
	if len(limits) == 0 {
		return nil, errNoLimits
	}
	if seed == nil {
		//nolint:gosec
		seed = rand.New(rand.NewSource(defaultRandomSeed))
	}
	return &rrtJointPlanner{
		limits:     limits,
		constraint: constraint,
		logger:     logger,
		randseed:   seed,
		opt:        opt,
	}, nil
}

func (mp *rrtJointPlanner) Limits() []referenceframe.Limit {
	return mp.limits
}

func (mp *rrtJointPlanner) Plan(
	ctx context.Context,
	goal, seed []referenceframe.Input,
) ([][]referenceframe.Input, error) {
	if err := mp.validateInputs(goal, seed); err != nil {
		return nil, err
	}
	solutionChan := make(chan *planReturn, 1)
	utils.PanicCapturingGo(func() {
		mp.planRunner(ctx, goal, seed, solutionChan)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case plan := <-solutionChan:
		return plan.steps, plan.err
	}
}

// planRunner will execute the plan. When Plan() is called, it will call planRunner in a
// separate thread and wait for the results, so that a hung iteration cannot outlive its
// context.
func (mp *rrtJointPlanner) planRunner(
	ctx context.Context,
	goal, seed []referenceframe.Input,
	solutionChan chan *planReturn,
) {
	defer close(solutionChan)

	tree := newRRTTree(seed)

	// The start may already satisfy the goal threshold, in which case the root alone is a
	// complete path.
	if mp.checkCompletion(seed, goal) {
		solutionChan <- &planReturn{steps: tree.pathFromRoot(0)}
		return
	}

	for i := 0; i < mp.opt.PlanIter; i++ {
		select {
		case <-ctx.Done():
			solutionChan <- &planReturn{err: ctx.Err()}
			return
		default:
		}

		sample := mp.sample(goal)
		nearest := tree.nearestNeighbor(sample)
		newIdx, err := mp.extend(tree, sample, nearest)
		if err != nil {
			// degenerate or constraint-rejected sample; the tree is untouched
			continue
		}

		if mp.checkCompletion(tree.nodes[newIdx].q, goal) {
			mp.logger.Debugf("reached goal after %d iterations, tree has %d nodes, path cost %f",
				i+1, tree.size(), tree.sumCosts(newIdx))
			solutionChan <- &planReturn{steps: tree.pathFromRoot(newIdx)}
			return
		}

		if (i+1)%progressLogInterval == 0 {
			mp.logger.Debugf("iteration %d, tree has %d nodes", i+1, tree.size())
		}
	}

	solutionChan <- &planReturn{err: errors.Wrapf(ErrPlanExhausted, "after %d iterations", mp.opt.PlanIter)}
}

// sample returns the next candidate configuration. With probability GoalBias it is drawn
// per-joint from a uniform band of GoalJitter around the goal; such samples are deliberately
// left unclamped. Otherwise it is drawn uniformly within the joint limits.
func (mp *rrtJointPlanner) sample(goal []referenceframe.Input) []referenceframe.Input {
	if mp.randseed.Float64() <= mp.opt.GoalBias {
		sample := make([]referenceframe.Input, len(goal))
		for i, g := range goal {
			sample[i] = referenceframe.Input{Value: g.Value + (mp.randseed.Float64()*2-1)*mp.opt.GoalJitter}
		}
		return sample
	}
	return referenceframe.RandomInputs(mp.limits, mp.randseed)
}

// extend attempts to grow the tree by exactly one step from the nearest node toward the
// sample. On success it returns the index of the newly attached node. A degenerate sample or
// a constraint rejection fails the extension without touching the tree.
func (mp *rrtJointPlanner) extend(
	tree *rrtTree,
	sample []referenceframe.Input,
	nearest int,
) (int, error) {
	near := tree.nodes[nearest].q
	dist := referenceframe.InputsL2Distance(near, sample)
	if dist == 0 {
		return noParent, errDegenerateSample
	}

	candidate := make([]referenceframe.Input, len(near))
	for i, n := range near {
		candidate[i] = referenceframe.Input{Value: n.Value + (sample[i].Value-n.Value)/dist*mp.opt.StepSize}
	}
	if mp.opt.ClampToLimits {
		candidate = referenceframe.ClampToLimits(candidate, mp.limits)
	}

	if mp.constraint != nil && !mp.constraint.IsSatisfied(candidate) {
		return noParent, errConstraintRejected
	}
	return tree.addChild(nearest, candidate), nil
}

// checkCompletion returns true if q is strictly within the goal threshold of the goal.
func (mp *rrtJointPlanner) checkCompletion(q, goal []referenceframe.Input) bool {
	return referenceframe.InputsL2Distance(q, goal) < mp.opt.GoalThreshold
}

func (mp *rrtJointPlanner) validateInputs(goal, seed []referenceframe.Input) error {
	var errAll error
	if len(seed) != len(mp.limits) {
		errAll = multierr.Append(errAll, errors.Errorf("start has %d joints but planner has %d limits", len(seed), len(mp.limits)))
	}
	if len(goal) != len(mp.limits) {
		errAll = multierr.Append(errAll, errors.Errorf("goal has %d joints but planner has %d limits", len(goal), len(mp.limits)))
	}
	return errAll
}
