package exercises

// MuscleGroup is one of the fixed muscle groups an exercise can target.
type MuscleGroup string

const (
	MuscleGroupChest      MuscleGroup = "chest"
	MuscleGroupLats       MuscleGroup = "lats"
	MuscleGroupTraps      MuscleGroup = "traps"
	MuscleGroupShoulders  MuscleGroup = "shoulders"
	MuscleGroupBiceps     MuscleGroup = "biceps"
	MuscleGroupTriceps    MuscleGroup = "triceps"
	MuscleGroupForearms   MuscleGroup = "forearms"
	MuscleGroupAbs        MuscleGroup = "abs"
	MuscleGroupObliques   MuscleGroup = "obliques"
	MuscleGroupQuads      MuscleGroup = "quads"
	MuscleGroupHamstrings MuscleGroup = "hamstrings"
	MuscleGroupGlutes     MuscleGroup = "glutes"
	MuscleGroupCalves     MuscleGroup = "calves"
)

// AllMuscleGroups returns every known muscle group, in a stable order.
// Status APIs report all of them, including the ones never trained.
func AllMuscleGroups() []MuscleGroup {
	return []MuscleGroup{
		MuscleGroupChest,
		MuscleGroupLats,
		MuscleGroupTraps,
		MuscleGroupShoulders,
		MuscleGroupBiceps,
		MuscleGroupTriceps,
		MuscleGroupForearms,
		MuscleGroupAbs,
		MuscleGroupObliques,
		MuscleGroupQuads,
		MuscleGroupHamstrings,
		MuscleGroupGlutes,
		MuscleGroupCalves,
	}
}

func (m MuscleGroup) String() string {
	return string(m)
}

func (m MuscleGroup) IsValid() bool {
	switch m {
	case MuscleGroupChest, MuscleGroupLats, MuscleGroupTraps,
		MuscleGroupShoulders, MuscleGroupBiceps, MuscleGroupTriceps,
		MuscleGroupForearms, MuscleGroupAbs, MuscleGroupObliques,
		MuscleGroupQuads, MuscleGroupHamstrings, MuscleGroupGlutes,
		MuscleGroupCalves:
		return true
	default:
		return false
	}
}

// IsLarge reports whether the muscle group is one of the large movers
// which need longer recovery windows.
func (m MuscleGroup) IsLarge() bool {
	switch m {
	case MuscleGroupQuads, MuscleGroupLats, MuscleGroupChest,
		MuscleGroupHamstrings, MuscleGroupGlutes:
		return true
	default:
		return false
	}
}

// IsSmall reports whether the muscle group is one of the small groups
// which recover quicker than the baseline.
func (m MuscleGroup) IsSmall() bool {
	switch m {
	case MuscleGroupBiceps, MuscleGroupCalves, MuscleGroupTraps,
		MuscleGroupForearms, MuscleGroupAbs, MuscleGroupObliques:
		return true
	default:
		return false
	}
}

// Category splits exercises into multi-joint and single-joint movements.
type Category string

const (
	CategoryCompound  Category = "compound"
	CategoryIsolation Category = "isolation"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	return c == CategoryCompound || c == CategoryIsolation
}

// Exercise is the static reference data for an exercise type. It never
// changes while a workout is being processed.
type Exercise struct {
	ID               int           `json:"id"`
	Name             string        `json:"name"`
	PrimaryMuscle    MuscleGroup   `json:"primaryMuscle"`
	SecondaryMuscles []MuscleGroup `json:"secondaryMuscles"`
	Category         Category      `json:"category"`
}

// Muscles returns the primary muscle followed by all secondary muscles,
// skipping empty entries.
func (e Exercise) Muscles() []MuscleGroup {
	muscles := make([]MuscleGroup, 0, 1+len(e.SecondaryMuscles))
	if e.PrimaryMuscle != "" {
		muscles = append(muscles, e.PrimaryMuscle)
	}
	for _, m := range e.SecondaryMuscles {
		if m != "" {
			muscles = append(muscles, m)
		}
	}
	return muscles
}
