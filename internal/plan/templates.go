package plan

// Template is a static session prototype. Applying one seeds a new session;
// the template itself is never scheduled and never changes.
type Template struct {
	Label     string             `json:"label"`
	Focus     string             `json:"focus"`
	Intensity Intensity          `json:"intensity"`
	Location  string             `json:"location"`
	Target    string             `json:"target"`
	Notes     string             `json:"notes"`
	Exercises []TemplateExercise `json:"exercises"`
}

// TemplateExercise is an exercise prototype inside a template. It has no
// identifier; copies get fresh ids when the template is applied.
type TemplateExercise struct {
	Name  string `json:"name"`
	Focus string `json:"focus"`
	Sets  int    `json:"sets"`
	Reps  string `json:"reps"`
	Notes string `json:"notes"`
}

// Sessions created from a template default to the evening slot.
const (
	templateStart = "18:00"
	templateEnd   = "19:00"
)

var templateCatalog = []Template{
	{
		Label:     "Push Day Power",
		Focus:     "Upper Strength",
		Intensity: Intense,
		Location:  "Gym",
		Target:    "Add 2.5kg to top bench set",
		Notes:     "Warm up shoulders thoroughly before pressing.",
		Exercises: []TemplateExercise{
			{Name: "Barbell Bench Press", Focus: "Chest", Sets: 5, Reps: "5 @ RPE 8", Notes: "Pause first rep of each set."},
			{Name: "Overhead Press", Focus: "Shoulders", Sets: 4, Reps: "6-8", Notes: ""},
			{Name: "Weighted Dips", Focus: "Triceps", Sets: 3, Reps: "8-10", Notes: "Full depth."},
		},
	},
	{
		Label:     "Engine Builder",
		Focus:     "Conditioning",
		Intensity: Moderate,
		Location:  "Track",
		Target:    "Hold even splits across all intervals",
		Notes:     "Easy 10 minute jog before and after.",
		Exercises: []TemplateExercise{
			{Name: "400m Repeats", Focus: "Aerobic", Sets: 6, Reps: "400m / 90s rest", Notes: "Target 5k pace."},
			{Name: "Sled Push", Focus: "Power Endurance", Sets: 4, Reps: "20m", Notes: ""},
		},
	},
	{
		Label:     "Reset & Rebuild",
		Focus:     "Mobility",
		Intensity: Light,
		Location:  "Home",
		Target:    "Full session without skipping holds",
		Notes:     "Breathe slowly, no forcing end range.",
		Exercises: []TemplateExercise{
			{Name: "Couch Stretch", Focus: "Hips", Sets: 2, Reps: "90s each side", Notes: ""},
			{Name: "Thoracic Rotations", Focus: "Spine", Sets: 3, Reps: "10 each side", Notes: ""},
			{Name: "Dead Hang", Focus: "Shoulders", Sets: 3, Reps: "45s", Notes: "Relax fully into the hang."},
		},
	},
}

// Templates returns the fixed template catalog.
func Templates() []Template {
	return templateCatalog
}
