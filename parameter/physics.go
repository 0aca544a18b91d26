package parameter

import "math"

// Target Kinematics (surface units per frame)
const (
	// TargetGravity is added to vertical velocity every frame
	TargetGravity = 0.25

	// TargetRadiusMin is the inclusive lower bound of the spawn radius
	TargetRadiusMin = 35.0
	// TargetRadiusSpan is added to TargetRadiusMin scaled by [0, 1), upper bound exclusive
	TargetRadiusSpan = 30.0

	// TargetLaunchSpeedMin is the minimum upward speed at spawn (applied as negative vy)
	TargetLaunchSpeedMin = 15.0
	// TargetLaunchSpeedSpan widens the upward speed to [15, 20)
	TargetLaunchSpeedSpan = 5.0

	// TargetSideSpeedMin is the inward horizontal speed of edge launches
	TargetSideSpeedMin = 2.0
	// TargetSideSpeedSpan widens the inward speed to [2, 3)
	TargetSideSpeedSpan = 1.0

	// TargetCenterJitter scales the horizontal speed of center launches, (r-0.5)*1.2
	TargetCenterJitter = 1.2
	// TargetCenterSpread scales the horizontal offset of center launches, (r-0.9)*200
	TargetCenterSpread = 200.0
	// TargetCenterBias shifts the center offset distribution to the left
	TargetCenterBias = 0.9

	// TargetLaunchInset is the distance above the bottom edge where targets appear
	TargetLaunchInset = 50.0

	// TargetSpinMax scales rotation speed, (r-0.5)*0.15 radians per frame
	TargetSpinMax = 0.15

	// TargetFullTurn is the initial rotation range
	TargetFullTurn = 2 * math.Pi
)

// Launch Weights
const (
	// CenterLaunchChance is the probability of a near-vertical launch from the bottom center
	CenterLaunchChance = 0.2
)
