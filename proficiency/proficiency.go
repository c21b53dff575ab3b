package proficiency

// Level represents a character's proficiency tier in a skill, tool, saving
// throw, or weapon. Tiers are totally ordered from Untrained to GrandMastery,
// and comparing two levels with < or > agrees with their rank. The zero value
// is Untrained, so a freshly initialized skill starts with no proficiency.
// Level is comparable and can be used directly as a map key.
type Level int

const (
	// Untrained grants no proficiency bonus.
	Untrained Level = iota
	// Trained grants half the proficiency bonus, rounded down. Training can
	// only be obtained in skills, tools, saving throws, and weapons.
	Trained
	// Proficient grants the full proficiency bonus. Proficiency can only be
	// obtained in skills, tools, saving throws, and weapons.
	Proficient
	// Expertise grants twice the proficiency bonus. Expertise can only be
	// obtained in skills, tools, and saving throws.
	Expertise
	// Mastery grants twice the proficiency bonus and advantage on every
	// roll. Mastery can only be obtained in skills, tools, and saving throws.
	Mastery
	// HighMastery grants twice the proficiency bonus and advantage on every
	// roll, and when rolling with advantage one of the dice may be rerolled
	// once, keeping the new roll. High mastery can only be obtained in
	// skills, tools, and saving throws.
	HighMastery
	// GrandMastery grants twice the proficiency bonus and advantage on every
	// roll, and when rolling with advantage each of the dice may be rerolled
	// once, keeping the new rolls. Grand mastery can only be obtained in
	// skills, tools, and saving throws.
	GrandMastery
)

// Levels returns every tier in rank order, lowest first.
func Levels() []Level {
	return []Level{
		Untrained,
		Trained,
		Proficient,
		Expertise,
		Mastery,
		HighMastery,
		GrandMastery,
	}
}

// Rank returns the 0-based position of the level in the tier order.
func (l Level) Rank() int {
	return int(l)
}

// IsValid reports whether l is one of the named tiers.
func (l Level) IsValid() bool {
	return l >= Untrained && l <= GrandMastery
}

// String returns the tier name.
func (l Level) String() string {
	switch l {
	case Untrained:
		return "Untrained"
	case Trained:
		return "Trained"
	case Proficient:
		return "Proficient"
	case Expertise:
		return "Expertise"
	case Mastery:
		return "Mastery"
	case HighMastery:
		return "High Mastery"
	case GrandMastery:
		return "Grand Mastery"
	default:
		return "Unknown"
	}
}

// Increase returns the next tier up. The boolean is false when no higher
// tier exists, which happens only at GrandMastery.
func (l Level) Increase() (Level, bool) {
	if !l.IsValid() || l == GrandMastery {
		return 0, false
	}
	return l + 1, true
}

// IncreaseWrapping returns the next tier up, wrapping from GrandMastery back
// around to Untrained. The result is always a defined tier.
func (l Level) IncreaseWrapping() Level {
	if next, ok := l.Increase(); ok {
		return next
	}
	return Untrained
}

// Decrease returns the next tier down. The boolean is false when no lower
// tier exists, which happens only at Untrained.
func (l Level) Decrease() (Level, bool) {
	if !l.IsValid() || l == Untrained {
		return 0, false
	}
	return l - 1, true
}

// DecreaseWrapping returns the next tier down, wrapping from Untrained back
// around to GrandMastery. The result is always a defined tier.
func (l Level) DecreaseWrapping() Level {
	if previous, ok := l.Decrease(); ok {
		return previous
	}
	return GrandMastery
}
