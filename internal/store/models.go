package store

import "time"

// DailyScore is fully derived from a DailyRecord's child lists. It is
// recomputed after every mutation and never set directly.
type DailyScore struct {
	CompletedTasks int    `json:"completedTasks"`
	TotalTasks     int    `json:"totalTasks"`
	Mistakes       int    `json:"mistakes"`
	FocusTime      int    `json:"focusTime"` // minutes
	MoodEntries    int    `json:"moodEntries"`
	FinalScore     int    `json:"finalScore"` // 0-100
	DailyMood      string `json:"dailyMood"`  // excellent, good, neutral, bad, terrible
}

// DailyRecord holds everything tracked for one calendar day, keyed by
// its YYYY-MM-DD date string.
type DailyRecord struct {
	Date          string         `json:"date"`
	Tasks         []Task         `json:"tasks"`
	Mistakes      []Mistake      `json:"mistakes"`
	FocusSessions []FocusSession `json:"focusSessions"`
	MoodEntries   []MoodEntry    `json:"moodEntries"`
	DailyScore    DailyScore     `json:"dailyScore"`
}

type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category"` // work, school, personal, health
	Priority    string     `json:"priority"` // high, medium, low
	Duration    string     `json:"duration"` // daily, weekly, monthly, yearly
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type Mistake struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"` // forgetfulness, distraction, impulsivity, other
	Description string    `json:"description"`
	Severity    int       `json:"severity"` // 1-5
	Timestamp   time.Time `json:"timestamp"`
}

// FocusSession is only ever appended as a completed start/end pair; an
// in-flight session lives outside the record and is not persisted.
type FocusSession struct {
	ID        string     `json:"id"`
	Duration  int        `json:"duration"` // minutes
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
}

type MoodEntry struct {
	ID        string    `json:"id"`
	Score     int       `json:"score"` // 1-10
	Note      string    `json:"note,omitempty"`
	Triggers  []string  `json:"triggers,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// DailyRoutine resets its completed flag on the first access of a new
// day; lastUpdate carries the rollover timestamp.
type DailyRoutine struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	TimeCategory string `json:"timeCategory"` // morning, afternoon, evening
	HasReminder  bool   `json:"hasReminder"`
	Completed    bool   `json:"completed"`
	Notes        string `json:"notes,omitempty"`
	Order        int    `json:"order"`
	LastUpdate   string `json:"lastUpdate,omitempty"`
}

type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	Color     string `json:"color"`
	IsDefault bool   `json:"isDefault"`
	Order     int    `json:"order"`
}

type User struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Preferences UserPreferences `json:"preferences"`
}

type UserPreferences struct {
	NotificationEnabled bool   `json:"notificationEnabled"`
	SoundEnabled        bool   `json:"soundEnabled"`
	Theme               string `json:"theme"` // light, dark
}

// Note is either a text note or an audio note; Type selects which of
// the variant fields are meaningful.
type Note struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"` // text, audio
	Title         string    `json:"title"`
	Content       string    `json:"content,omitempty"`
	AudioURI      string    `json:"audioUri,omitempty"`
	AudioDuration int       `json:"audioDuration,omitempty"` // seconds
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type Book struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Author      string     `json:"author"`
	TotalPages  int        `json:"totalPages"`
	CurrentPage int        `json:"currentPage"`
	IsCompleted bool       `json:"isCompleted"`
	StartedAt   time.Time  `json:"startedAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type Meal struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Time        string     `json:"time"`
	IsCompleted bool       `json:"isCompleted"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

type NutritionData struct {
	Date          string `json:"date"`
	WaterIntake   int    `json:"waterIntake"`
	WaterTarget   int    `json:"waterTarget"`
	DailyCalories int    `json:"dailyCalories"`
	Meals         []Meal `json:"meals"`
	LastUpdate    string `json:"lastUpdate,omitempty"`
}

type NutritionSettings struct {
	WaterTarget int       `json:"waterTarget"`
	MealTimes   MealTimes `json:"mealTimes"`
}

type MealTimes struct {
	Breakfast      string `json:"breakfast"`
	MorningSnack   string `json:"morningSnack"`
	Lunch          string `json:"lunch"`
	AfternoonSnack string `json:"afternoonSnack"`
	Dinner         string `json:"dinner"`
}

// Medication is a catalog entry: the standing list of what the user
// takes, as opposed to a day's completion record of it.
type Medication struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Dosage    string    `json:"dosage"`
	Time      string    `json:"time"` // morning, noon, evening
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type Supplement struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Dosage    string    `json:"dosage"`
	Time      string    `json:"time"` // morning, noon, evening
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type DoctorAppointment struct {
	ID         string    `json:"id"`
	DoctorName string    `json:"doctorName"`
	Specialty  string    `json:"specialty"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Routine struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type Prayer struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"` // sabah, öğlen, ikindi, akşam, yatsı
	IsCompleted bool       `json:"isCompleted"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

// ReadingFlag is a single daily completion flag (Quran reading, ilmihal
// reading, tasbih prayer). Nil means not yet touched today.
type ReadingFlag struct {
	ID          string     `json:"id"`
	IsCompleted bool       `json:"isCompleted"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

type PrayerData struct {
	Date                  string       `json:"date"`
	Prayers               []Prayer     `json:"prayers"`
	QuranReading          *ReadingFlag `json:"quranReading"`
	IlmihalReading        *ReadingFlag `json:"ilmihalReading"`
	TasbihPrayer          *ReadingFlag `json:"tasbihPrayer"`
	TotalPrayersCompleted int          `json:"totalPrayersCompleted"`
	TotalPrayersCount     int          `json:"totalPrayersCount"`
	LastUpdate            string       `json:"lastUpdate,omitempty"`
}

type ShoppingItem struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	IsCompleted bool       `json:"isCompleted"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

type ShoppingList struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Items     []ShoppingItem `json:"items"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

type SpecialDay struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Date      time.Time `json:"date"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DailyMedication is one checklist entry of a day's health record. The
// checklist is a snapshot of the catalog at first access for that day.
type DailyMedication struct {
	ID           string     `json:"id"`
	MedicationID string     `json:"medicationId"`
	Name         string     `json:"name"`
	IsCompleted  bool       `json:"isCompleted"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
	Date         string     `json:"date"`
}

type DailySupplement struct {
	ID           string     `json:"id"`
	SupplementID string     `json:"supplementId"`
	Name         string     `json:"name"`
	IsCompleted  bool       `json:"isCompleted"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
	Date         string     `json:"date"`
}

type DailyHealthData struct {
	Date        string            `json:"date"`
	Medications []DailyMedication `json:"medications"`
	Supplements []DailySupplement `json:"supplements"`
	LastUpdate  string            `json:"lastUpdate,omitempty"`
}

// Module is a dashboard feature flag. Toggling one never deletes the
// underlying module data.
type Module struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	IsDefault   bool   `json:"isDefault"`
	IsEnabled   bool   `json:"isEnabled"`
	Order       int    `json:"order"`
	Description string `json:"description,omitempty"`
}

type PomodoroSession struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`     // work, shortBreak, longBreak
	Duration    int        `json:"duration"` // minutes
	IsCompleted bool       `json:"isCompleted"`
	StartTime   *time.Time `json:"startTime,omitempty"`
	EndTime     *time.Time `json:"endTime,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	IsCycle     bool       `json:"isCycle,omitempty"`
}

type PomodoroSettings struct {
	WorkDuration       int    `json:"workDuration"`       // minutes
	ShortBreakDuration int    `json:"shortBreakDuration"` // minutes
	LongBreakDuration  int    `json:"longBreakDuration"`  // minutes
	LongBreakInterval  int    `json:"longBreakInterval"`
	AutoStartBreaks    bool   `json:"autoStartBreaks"`
	AutoStartPomodoros bool   `json:"autoStartPomodoros"`
	SoundEnabled       bool   `json:"soundEnabled"`
	LastUpdate         string `json:"lastUpdate,omitempty"`
}

type PomodoroData struct {
	Date               string            `json:"date"`
	Sessions           []PomodoroSession `json:"sessions"`
	CompletedPomodoros int               `json:"completedPomodoros"`
	TotalWorkTime      int               `json:"totalWorkTime"`  // minutes
	TotalBreakTime     int               `json:"totalBreakTime"` // minutes
	LastUpdate         string            `json:"lastUpdate,omitempty"`
}
