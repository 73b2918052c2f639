// internal/gamification/points.go
package gamification

import (
	"fmt"
	"math"
)

// Bonus streak bertingkat. Hanya SATU tier (yang tertinggi yang memenuhi)
// yang berlaku, tidak kumulatif.
const (
	StreakTier1Days  = 7
	StreakTier1Bonus = 0.10
	StreakTier2Days  = 30
	StreakTier2Bonus = 0.25
	StreakTier3Days  = 100
	StreakTier3Bonus = 0.50

	// EarlyCompletionBonus adalah bonus flat untuk penyelesaian sebelum jam 9
	// pagi, independen dari tier streak.
	EarlyCompletionBonus = 5
)

// PointsResult adalah hasil kalkulasi reward untuk satu penyelesaian task.
type PointsResult struct {
	Total     int      `json:"total"`
	Bonus     int      `json:"bonus"`
	Breakdown []string `json:"breakdown"`
}

// CalculateTaskPoints menghitung poin yang didapat untuk satu completion:
// basePoints + bonus streak (tier tertinggi saja, di-floor ke integer) +
// bonus early (flat 5).
func CalculateTaskPoints(basePoints, currentStreak int, isEarly bool) PointsResult {
	bonus := 0
	breakdown := []string{fmt.Sprintf("Basis: %d Punkte", basePoints)}

	switch {
	case currentStreak >= StreakTier3Days:
		b := int(float64(basePoints) * StreakTier3Bonus)
		bonus += b
		breakdown = append(breakdown, fmt.Sprintf("100+ Tage Streak: +%d (+50%%)", b))
	case currentStreak >= StreakTier2Days:
		b := int(float64(basePoints) * StreakTier2Bonus)
		bonus += b
		breakdown = append(breakdown, fmt.Sprintf("30+ Tage Streak: +%d (+25%%)", b))
	case currentStreak >= StreakTier1Days:
		b := int(float64(basePoints) * StreakTier1Bonus)
		bonus += b
		breakdown = append(breakdown, fmt.Sprintf("7+ Tage Streak: +%d (+10%%)", b))
	}

	if isEarly {
		bonus += EarlyCompletionBonus
		breakdown = append(breakdown, fmt.Sprintf("Früh erledigt: +%d", EarlyCompletionBonus))
	}

	return PointsResult{
		Total:     basePoints + bonus,
		Bonus:     bonus,
		Breakdown: breakdown,
	}
}

// CalculateLevel menurunkan level dari total poin: floor(sqrt(points/100)) + 1.
// Level minimal selalu 1, juga untuk poin negatif (kasus undo berlebihan).
func CalculateLevel(totalPoints int) int {
	if totalPoints <= 0 {
		return 1
	}
	return int(math.Sqrt(float64(totalPoints)/100)) + 1
}

// PointsForLevel adalah inverse dari CalculateLevel: total poin minimum untuk
// berada di level tersebut. (level-1)^2 * 100.
func PointsForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	return (level - 1) * (level - 1) * 100
}

// PointsToNextLevel mengembalikan berapa poin lagi sampai naik level.
func PointsToNextLevel(totalPoints int) int {
	next := PointsForLevel(CalculateLevel(totalPoints) + 1)
	return next - totalPoints
}

// LevelProgress mengembalikan progress di dalam level saat ini sebagai persen
// integer, di-clamp ke [0,100].
func LevelProgress(totalPoints int) int {
	level := CalculateLevel(totalPoints)
	current := PointsForLevel(level)
	next := PointsForLevel(level + 1)
	span := next - current
	if span <= 0 {
		return 0
	}
	progress := (totalPoints - current) * 100 / span
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}
