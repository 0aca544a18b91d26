package parameter

import "time"

// Spawn Cadence
const (
	// SpawnBurstInterval is the session time between bursts
	SpawnBurstInterval = 800 * time.Millisecond

	// SpawnBurstMin is the smallest burst, bursts hold SpawnBurstMin + [0, SpawnBurstExtra] targets
	SpawnBurstMin = 2
	// SpawnBurstExtra is the random extra count added to SpawnBurstMin
	SpawnBurstExtra = 1

	// SpawnStagger delays each burst member after the first
	SpawnStagger = 150 * time.Millisecond

	// RewardChance is the probability a spawned target carries an album
	RewardChance = 0.1
)

// VinylPalette is the color set of plain targets
var VinylPalette = []string{"#1a1a1a", "#8b0000", "#00008b", "#006400", "#4b0082", "#8b4513"}

// Session Rules
const (
	// SliceScore is awarded per slice regardless of target size or type
	SliceScore = 10

	// StartingLives is the lives count at session start, also the ceiling
	StartingLives = 3

	// ScoreTargetGoal ends a score-target session
	ScoreTargetGoal = 1000

	// TimeLimit ends a time-limit session
	TimeLimit = 60 * time.Second
)

// TrailMaxPoints bounds the pointer trail
const TrailMaxPoints = 10
