package referenceframe

import (
	"math"
	"math/rand"
	"testing"

	"go.viam.com/test"
)

func TestLimitsFromBounds(t *testing.T) {
	limits, err := LimitsFromBounds([]float64{-1, 0}, []float64{1, 2})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, limits, test.ShouldResemble, []Limit{{-1, 1}, {0, 2}})

	_, err = LimitsFromBounds([]float64{0}, []float64{1, 2})
	test.That(t, err, test.ShouldNotBeNil)

	// every inverted pair should be reported, not just the first
	_, err = LimitsFromBounds([]float64{2, 5}, []float64{1, 3})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "joint 0")
	test.That(t, err.Error(), test.ShouldContainSubstring, "joint 1")
}

func TestLimitsAlmostEqual(t *testing.T) {
	a := []Limit{{-1, 1}, {0, math.Pi}}
	test.That(t, LimitsAlmostEqual(a, []Limit{{-1, 1}, {0, math.Pi}}), test.ShouldBeTrue)
	test.That(t, LimitsAlmostEqual(a, []Limit{{-1, 1}}), test.ShouldBeFalse)
	test.That(t, LimitsAlmostEqual(a, []Limit{{-1, 1}, {0, 3}}), test.ShouldBeFalse)
}

func TestRandomInputs(t *testing.T) {
	limits := []Limit{{-3.14, 3.14}, {1.57, 5}, {0.33, 5}}
	//nolint:gosec
	rSeed := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		inputs := RandomInputs(limits, rSeed)
		test.That(t, inputs, test.ShouldHaveLength, len(limits))
		test.That(t, InputsWithinLimits(inputs, limits), test.ShouldBeTrue)
	}

	// infinite limits fall back to a finite sampling range
	inf := []Limit{{math.Inf(-1), math.Inf(1)}}
	for i := 0; i < 100; i++ {
		inputs := RandomInputs(inf, rSeed)
		test.That(t, inputs[0].Value, test.ShouldBeGreaterThanOrEqualTo, -999)
		test.That(t, inputs[0].Value, test.ShouldBeLessThanOrEqualTo, 999)
	}

	// a nil source still samples rather than panicking
	inputs := RandomInputs(limits, nil)
	test.That(t, InputsWithinLimits(inputs, limits), test.ShouldBeTrue)
}

func TestClampToLimits(t *testing.T) {
	limits := []Limit{{-1, 1}, {-1, 1}, {-1, 1}}
	clamped := ClampToLimits(FloatsToInputs([]float64{-2, 0.5, 7}), limits)
	test.That(t, InputsToFloats(clamped), test.ShouldResemble, []float64{-1, 0.5, 1})
	test.That(t, InputsWithinLimits(clamped, limits), test.ShouldBeTrue)
}
