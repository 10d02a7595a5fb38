package recovery

import (
	"sort"

	"github.com/utrackapp/utrack/internal/fitness/exercises"
	"github.com/utrackapp/utrack/internal/fitness/workouts"
)

// Fatigue model constants. Per-set fatigue is
//
//	base × RIR multiplier × exercise type multiplier × (1 + rest modifier)
//
// with secondary muscles taking a reduced share of the set's fatigue.
const (
	baseSetFatigue = 1.0

	rirFailureMultiplier  = 1.5 // RIR 0, trained to failure
	rirHardMultiplier     = 1.0 // RIR 1-2
	rirModerateMultiplier = 0.7 // RIR 3-4
	rirEasyMultiplier     = 0.4 // RIR 5+

	compoundMultiplier  = 1.2
	isolationMultiplier = 0.8

	shortRestSeconds     = 60
	longRestSeconds      = 180
	shortRestModifier    = 0.2 // metabolic stress
	longRestModifier     = 0.1 // CNS fatigue from heavy, long-rest work
	secondaryMuscleShare = 0.4
)

// Recovery-hours model constants, starting from a 24h baseline per muscle.
const (
	baselineRecoveryHours    = 24
	largeMuscleExtraHours    = 12
	smallMuscleReducedHours  = 6
	highVolumePenaltyHours   = 24
	mediumVolumePenaltyHours = 12
	highVolumeSetThreshold   = 15
	mediumVolumeSetThreshold = 8
	metabolicBonusHours      = 4
)

// MuscleFatigue is the calculator output for one muscle group.
type MuscleFatigue struct {
	MuscleGroup   exercises.MuscleGroup
	FatigueScore  float64
	TotalSets     int
	RecoveryHours int
}

// Calculator turns a completed workout into per-muscle fatigue scores and
// recovery windows. It is pure: no I/O, deterministic for equal inputs.
type Calculator struct{}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// Calculate computes fatigue and recovery hours for every muscle group the
// workout touched. Warmup sets are ignored. Results come back sorted by
// muscle group for deterministic processing downstream.
func (c *Calculator) Calculate(w *workouts.Workout) []MuscleFatigue {
	type muscleAccum struct {
		fatigue       float64
		sets          int
		metabolicWork bool // compound set with short rest touched this muscle
	}
	accum := make(map[exercises.MuscleGroup]*muscleAccum)

	touch := func(m exercises.MuscleGroup) *muscleAccum {
		if a, ok := accum[m]; ok {
			return a
		}
		a := &muscleAccum{}
		accum[m] = a
		return a
	}

	for _, we := range w.Exercises {
		isCompound := we.Exercise.Category == exercises.CategoryCompound
		for _, s := range we.WorkingSets() {
			setFatigue := setFatigueScore(s, isCompound)
			shortRest := s.RestSecondsBeforeSet < shortRestSeconds

			if primary := we.Exercise.PrimaryMuscle; primary != "" {
				a := touch(primary)
				a.fatigue += setFatigue
				a.sets++
				if isCompound && shortRest {
					a.metabolicWork = true
				}
			}
			for _, m := range we.Exercise.SecondaryMuscles {
				if m == "" {
					continue
				}
				a := touch(m)
				a.fatigue += setFatigue * secondaryMuscleShare
				a.sets++
				if isCompound && shortRest {
					a.metabolicWork = true
				}
			}
		}
	}

	results := make([]MuscleFatigue, 0, len(accum))
	for muscle, a := range accum {
		results = append(results, MuscleFatigue{
			MuscleGroup:   muscle,
			FatigueScore:  a.fatigue,
			TotalSets:     a.sets,
			RecoveryHours: recoveryHours(muscle, a.sets, a.metabolicWork),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].MuscleGroup < results[j].MuscleGroup
	})
	return results
}

func setFatigueScore(s workouts.Set, isCompound bool) float64 {
	rirMult := rirEasyMultiplier
	switch {
	case s.RepsInReserve == 0:
		rirMult = rirFailureMultiplier
	case s.RepsInReserve <= 2:
		rirMult = rirHardMultiplier
	case s.RepsInReserve <= 4:
		rirMult = rirModerateMultiplier
	}

	typeMult := isolationMultiplier
	if isCompound {
		typeMult = compoundMultiplier
	}

	restMod := 0.0
	switch {
	case s.RestSecondsBeforeSet < shortRestSeconds:
		restMod = shortRestModifier
	case s.RestSecondsBeforeSet > longRestSeconds:
		restMod = longRestModifier
	}

	return baseSetFatigue * rirMult * typeMult * (1 + restMod)
}

func recoveryHours(muscle exercises.MuscleGroup, totalSets int, metabolicWork bool) int {
	hours := baselineRecoveryHours

	if muscle.IsLarge() {
		hours += largeMuscleExtraHours
	} else if muscle.IsSmall() {
		hours -= smallMuscleReducedHours
	}

	// higher threshold wins, the penalties never stack
	if totalSets > highVolumeSetThreshold {
		hours += highVolumePenaltyHours
	} else if totalSets > mediumVolumeSetThreshold {
		hours += mediumVolumePenaltyHours
	}

	if metabolicWork {
		hours += metabolicBonusHours
	}

	if hours < 0 {
		hours = 0
	}
	return hours
}
