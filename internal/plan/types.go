package plan

// Day is one of the seven fixed day-of-week labels, Monday-first.
type Day string

const (
	Monday    Day = "Monday"
	Tuesday   Day = "Tuesday"
	Wednesday Day = "Wednesday"
	Thursday  Day = "Thursday"
	Friday    Day = "Friday"
	Saturday  Day = "Saturday"
	Sunday    Day = "Sunday"
)

// Days lists the week in plan order. Index in this slice is the day's
// position in the Monday-start week cycle.
var Days = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Index returns the day's Monday-start position (0..6), or -1 for an
// unknown label.
func (d Day) Index() int {
	for i, day := range Days {
		if day == d {
			return i
		}
	}
	return -1
}

// Next returns the following day, wrapping Sunday back to Monday.
func (d Day) Next() Day {
	return Days[(d.Index()+1)%len(Days)]
}

// Previous returns the preceding day, wrapping Monday back to Sunday.
func (d Day) Previous() Day {
	return Days[(d.Index()+len(Days)-1)%len(Days)]
}

// ParseDay matches a day label exactly. Returns false for anything outside
// the seven fixed labels.
func ParseDay(s string) (Day, bool) {
	d := Day(s)
	if d.Index() < 0 {
		return "", false
	}
	return d, true
}

// Intensity is the ordinal training-load level of a session.
type Intensity string

const (
	Light    Intensity = "Light"
	Moderate Intensity = "Moderate"
	Intense  Intensity = "Intense"
)

// Score maps an intensity to its load score (Light=1, Moderate=2,
// Intense=3). Unknown labels score 0.
func (i Intensity) Score() int {
	switch i {
	case Light:
		return 1
	case Moderate:
		return 2
	case Intense:
		return 3
	}
	return 0
}

// ParseIntensity matches an intensity label exactly.
func ParseIntensity(s string) (Intensity, bool) {
	switch Intensity(s) {
	case Light, Moderate, Intense:
		return Intensity(s), true
	}
	return "", false
}

// Exercise is one prescribed movement within a session. Owned by exactly
// one session; it has no lifecycle of its own.
type Exercise struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Focus string `json:"focus"`
	Sets  int    `json:"sets"`
	Reps  string `json:"reps"`
	Notes string `json:"notes"`
}

// Session is one scheduled training block. Sessions are immutable once
// committed to the store; edits replace the whole value.
type Session struct {
	ID        string     `json:"id"`
	Day       Day        `json:"day"`
	Start     string     `json:"start"`
	End       string     `json:"end"`
	Focus     string     `json:"focus"`
	Intensity Intensity  `json:"intensity"`
	Location  string     `json:"location"`
	Target    string     `json:"target"`
	Notes     string     `json:"notes"`
	Exercises []Exercise `json:"exercises"`
}

// SessionDraft holds the form fields of a session under construction.
// It carries no identifier; one is assigned at commit.
type SessionDraft struct {
	Day       Day       `json:"day"`
	Start     string    `json:"start"`
	End       string    `json:"end"`
	Focus     string    `json:"focus"`
	Intensity Intensity `json:"intensity"`
	Location  string    `json:"location"`
	Target    string    `json:"target"`
	Notes     string    `json:"notes"`
}

// ExerciseDraft is one row of the exercise list under construction.
// Rows with an empty name are discarded at commit.
type ExerciseDraft struct {
	Name  string `json:"name"`
	Focus string `json:"focus"`
	Sets  int    `json:"sets"`
	Reps  string `json:"reps"`
	Notes string `json:"notes"`
}

// Direction selects the adjacent day for session duplication.
type Direction string

const (
	Next     Direction = "next"
	Previous Direction = "previous"
)

// ParseDirection matches a duplication direction exactly.
func ParseDirection(s string) (Direction, bool) {
	switch Direction(s) {
	case Next, Previous:
		return Direction(s), true
	}
	return "", false
}
