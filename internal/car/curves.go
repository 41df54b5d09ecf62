package car

import "rocketsim/internal/mathutil"

// Curve tables are fixed numeric control points reproduced from the
// well-known public RocketSim constant tables (see constants.go); the
// shape — piecewise-linear, clamped extrapolation — is the contract, not
// any particular number of points.

// driveForceCurve maps current ground speed to the longitudinal engine
// force scale at full throttle, without boost. It decays to zero at
// CarMaxSpeedNoBoost so unboosted top speed saturates there.
var driveForceCurve = mathutil.NewLinearPieceCurve(
	mathutil.CurvePoint{Input: 0, Output: 1.0},
	mathutil.CurvePoint{Input: 1400, Output: 0.45},
	mathutil.CurvePoint{Input: CarMaxSpeedNoBoost, Output: 0.0},
)

// reverseForceCurve is the equivalent table for negative throttle.
var reverseForceCurve = mathutil.NewLinearPieceCurve(
	mathutil.CurvePoint{Input: 0, Output: 1.0},
	mathutil.CurvePoint{Input: 1400, Output: 0.3},
)

// steerTorqueCurve maps ground speed to angular acceleration magnitude:
// maximal at rest, decaying to a small value near top speed.
var steerTorqueCurve = mathutil.NewLinearPieceCurve(
	mathutil.CurvePoint{Input: 0, Output: 1.0},
	mathutil.CurvePoint{Input: 500, Output: 0.6},
	mathutil.CurvePoint{Input: 1750, Output: 0.1},
	mathutil.CurvePoint{Input: CarMaxSpeed, Output: 0.05},
)

// boostAccelCurve scales the boost acceleration applied while boosting as
// ground speed approaches CarMaxSpeed, so boost cannot push a car past the
// boosted top speed cap.
var boostAccelCurve = mathutil.NewLinearPieceCurve(
	mathutil.CurvePoint{Input: 0, Output: 1.0},
	mathutil.CurvePoint{Input: 2000, Output: 1.0},
	mathutil.CurvePoint{Input: CarMaxSpeed, Output: 0.0},
)
