package chord

import "fmt"

// Template is one canonical chord shape: the distinct pitch intervals from
// the root, folded into one octave and sorted ascending. The table is fixed
// at startup; init verifies it is internally consistent.
type Template struct {
	Name      string  // quality suffix, e.g. "maj7"
	FullName  string  // spelled-out quality, e.g. "Major 7th"
	Intervals []uint8 // semitones from the root, 0-11, always starting at 0
}

// NoteCount reports how many distinct pitch classes the template needs.
func (t Template) NoteCount() int {
	return len(t.Intervals)
}

var templates = []Template{
	// triads
	{"maj", "Major", []uint8{0, 4, 7}},
	{"min", "Minor", []uint8{0, 3, 7}},
	{"dim", "Diminished", []uint8{0, 3, 6}},
	{"aug", "Augmented", []uint8{0, 4, 8}},
	{"sus2", "Suspended 2nd", []uint8{0, 2, 7}},
	{"sus4", "Suspended 4th", []uint8{0, 5, 7}},

	// sevenths
	{"7", "Dominant 7th", []uint8{0, 4, 7, 10}},
	{"maj7", "Major 7th", []uint8{0, 4, 7, 11}},
	{"min7", "Minor 7th", []uint8{0, 3, 7, 10}},
	{"dim7", "Diminished 7th", []uint8{0, 3, 6, 9}},
	{"m7b5", "Half-Diminished 7th", []uint8{0, 3, 6, 10}},
	{"mMaj7", "Minor-Major 7th", []uint8{0, 3, 7, 11}},

	// extended chords, ninths and up folded into one octave
	{"9", "9th", []uint8{0, 2, 4, 7, 10}},
	{"maj9", "Major 9th", []uint8{0, 2, 4, 7, 11}},
	{"min9", "Minor 9th", []uint8{0, 2, 3, 7, 10}},
	{"11", "11th", []uint8{0, 2, 4, 5, 7, 10}},
	{"13", "13th", []uint8{0, 2, 4, 5, 7, 9, 10}},
	{"add9", "Add 9", []uint8{0, 2, 4, 7}},
	{"add11", "Add 11", []uint8{0, 4, 5, 7}},
}

// Templates returns the chord table. Callers must not mutate it.
func Templates() []Template {
	return templates
}

func init() {
	seenNames := make(map[string]bool)
	seenSets := make(map[string]string)
	for _, t := range templates {
		if len(t.Intervals) == 0 || t.Intervals[0] != 0 {
			panic("chord: template " + t.Name + " does not start at the root")
		}
		for i, iv := range t.Intervals {
			if iv > 11 {
				panic("chord: template " + t.Name + " has an interval outside one octave")
			}
			if i > 0 && iv <= t.Intervals[i-1] {
				panic("chord: template " + t.Name + " intervals are not strictly ascending")
			}
		}
		if seenNames[t.Name] {
			panic("chord: duplicate template name " + t.Name)
		}
		seenNames[t.Name] = true
		set := fmt.Sprintf("%v", t.Intervals)
		if other, ok := seenSets[set]; ok {
			panic("chord: templates " + t.Name + " and " + other + " share one interval set")
		}
		seenSets[set] = t.Name
	}
}
