// package main for planning from a JSON request file
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/edaniels/golog"

	"go.viam.com/jointplan/motionplan"
	"go.viam.com/jointplan/referenceframe"
)

func main() {
	err := realMain()
	if err != nil {
		panic(err)
	}
}

func realMain() error {
	ctx := context.Background()

	seed := flag.Int("seed", -1, "override the request's random seed")
	verbose := flag.Bool("v", false, "verbose")
	clamp := flag.Bool("clamp", false, "clamp extension candidates to the joint limits")

	flag.Parse()
	if len(flag.Args()) == 0 {
		return fmt.Errorf("need a json file")
	}

	logger := golog.NewLogger("cmd-plan")
	if *verbose {
		logger = golog.NewDevelopmentLogger("cmd-plan")
	}

	logger.Infof("reading plan request from %s", flag.Arg(0))

	content, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		return err
	}

	req := motionplan.PlanRequest{}

	err = json.Unmarshal(content, &req)
	if err != nil {
		return err
	}

	if req.PlannerOptions == nil {
		req.PlannerOptions = motionplan.NewBasicPlannerOptions()
	}
	if *seed >= 0 {
		req.PlannerOptions.RandomSeed = *seed
	}
	if *clamp {
		req.PlannerOptions.ClampToLimits = true
	}

	path, err := motionplan.PlanJointMotion(ctx, logger, &req, nil)
	if err != nil {
		return err
	}

	logger.Infof("found a path with %d waypoints", len(path))
	for i, waypoint := range path {
		fmt.Printf("%3d: %v\n", i, referenceframe.InputsToFloats(waypoint))
	}
	return nil
}
