package service

import (
	"time"

	"github.com/skippyskiddy/MindfulJot-App-sub000/internal"
)

// AnalyticsSummary backs the analytics screen: streak, logging frequency over
// the last 30 days, and how the four categories break down.
type AnalyticsSummary struct {
	StreakDays        int                       `json:"streakDays"`
	EntryCount        int                       `json:"entryCount"`
	EmotionCount      int                       `json:"emotionCount"`
	EntriesPerDay     float64                   `json:"entriesPerDay"`
	CategoryBreakdown map[internal.Category]int `json:"categoryBreakdown"`
}

const frequencyWindowDays = 30

// Summarize computes the analytics summary for a user's entries as of now.
func Summarize(entries []internal.EmotionEntry, now time.Time) AnalyticsSummary {
	windowed := entriesSince(entries, now.AddDate(0, 0, -frequencyWindowDays))
	emotionCount := 0
	for _, e := range windowed {
		emotionCount += len(e.Emotions)
	}
	return AnalyticsSummary{
		StreakDays:        CalculateStreak(entries, now),
		EntryCount:        len(windowed),
		EmotionCount:      emotionCount,
		EntriesPerDay:     float64(len(windowed)) / frequencyWindowDays,
		CategoryBreakdown: CategoryBreakdown(windowed),
	}
}

// CalculateStreak counts consecutive days with at least one entry, ending
// today or, when today has no entry yet, yesterday. No entry on either day
// means the streak is 0.
func CalculateStreak(entries []internal.EmotionEntry, now time.Time) int {
	days := map[string]bool{}
	for _, e := range entries {
		days[e.Timestamp.Format("2006-01-02")] = true
	}

	day := now
	if !days[day.Format("2006-01-02")] {
		day = day.AddDate(0, 0, -1)
		if !days[day.Format("2006-01-02")] {
			return 0
		}
	}

	streak := 0
	for days[day.Format("2006-01-02")] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// CategoryBreakdown counts emotion mentions per category across the entries.
func CategoryBreakdown(entries []internal.EmotionEntry) map[internal.Category]int {
	breakdown := map[internal.Category]int{}
	for _, c := range internal.Categories() {
		breakdown[c] = 0
	}
	for _, entry := range entries {
		for _, emotion := range entry.Emotions {
			breakdown[emotion.Category]++
		}
	}
	return breakdown
}

func entriesSince(entries []internal.EmotionEntry, cutoff time.Time) []internal.EmotionEntry {
	var out []internal.EmotionEntry
	for _, e := range entries {
		if e.Timestamp.After(cutoff) {
			out = append(out, e)
		}
	}
	return out
}
