// Package proficiency defines the ordered proficiency tiers a Star Wars 5e
// character can hold in a skill, tool, saving throw, or weapon.
//
// The package provides:
//   - Level: a closed, totally ordered set of seven named tiers, from
//     Untrained up to GrandMastery.
//   - Step operations: Increase and Decrease walk the tier chain and signal
//     absence at its two ends, while IncreaseWrapping and DecreaseWrapping
//     treat the tiers as a cycle and are total.
//
// Levels are immutable values: every operation returns a new Level, and all
// of them are safe for concurrent use without synchronization. The numeric
// bonuses, advantage, and reroll rules attached to a tier are applied by the
// rules engine consuming this package, not here.
package proficiency
