package internal

import "time"

// Category places an emotion on the energy/valence grid used by the catalog.
type Category string

const (
	CategoryHighEnergyPleasant   Category = "HIGH_ENERGY_PLEASANT"
	CategoryHighEnergyUnpleasant Category = "HIGH_ENERGY_UNPLEASANT"
	CategoryLowEnergyPleasant    Category = "LOW_ENERGY_PLEASANT"
	CategoryLowEnergyUnpleasant  Category = "LOW_ENERGY_UNPLEASANT"
)

// Categories lists the four fixed catalog categories.
func Categories() []Category {
	return []Category{
		CategoryHighEnergyPleasant,
		CategoryHighEnergyUnpleasant,
		CategoryLowEnergyPleasant,
		CategoryLowEnergyUnpleasant,
	}
}

// Emotion is one named entry of the fixed reference catalog. Names are unique
// across the catalog and rows are never mutated after seeding.
type Emotion struct {
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Definition  string   `json:"definition"`
	EnergyLevel int      `json:"energyLevel"` // 1-10, orders emotions within a category
}

// Per-entry list caps. Enforced at the request boundary; the stores trust
// their callers.
const (
	MaxEmotionsPerEntry  = 2
	MaxImageURLsPerEntry = 3
	MaxTagsPerEntry      = 6
	MaxJournalTextLen    = 500
)

// EmotionEntry is one journaling record. EntryID is assigned by the remote
// store's key generator on first save and never changes. IsSynced reports
// whether the authoritative remote copy has been written.
type EmotionEntry struct {
	EntryID     string    `json:"entryId"`
	UserID      string    `json:"userId"`
	Timestamp   time.Time `json:"timestamp"`
	JournalText string    `json:"journalText"`
	Emotions    []Emotion `json:"emotions"`
	ImageURLs   []string  `json:"imageUrls"`
	Tags        []string  `json:"tags"`
	IsSynced    bool      `json:"isSynced"`
}

// Frequency is the user's reminder cadence.
type Frequency string

const (
	FrequencyNone   Frequency = "none"
	FrequencyOnce   Frequency = "once"
	FrequencyTwice  Frequency = "twice"
	FrequencyThrice Frequency = "thrice"
)

// Valid reports whether f is one of the four supported cadences.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyNone, FrequencyOnce, FrequencyTwice, FrequencyThrice:
		return true
	}
	return false
}

// ReminderPreference is what drives the reminder scheduler. It is stored
// remotely under the user's record so reminders survive a device restart.
type ReminderPreference struct {
	Frequency Frequency `json:"notificationPreference"`
	UserName  string    `json:"name"`
}

type User struct {
	ID    string `json:"id"`
	Token string `json:"token,omitempty"`
	Name  string `json:"name"`
}
