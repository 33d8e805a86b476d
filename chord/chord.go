package chord

import (
	"sort"
	"strings"

	"github.com/Dev4057/NoteFlow/model"
	"github.com/Dev4057/NoteFlow/note"
	"github.com/Dev4057/NoteFlow/util"
)

type match struct {
	root      uint8
	tmpl      Template
	inversion int
}

// Classify maps a finalized group of note-on events to the most musically
// meaningful label: a single note, a two-note interval, a chord (possibly an
// inversion), or an unmatched note group. It is a pure function; identical
// input always yields identical output, and every non-empty input resolves
// to some event rather than an error. An empty group is a caller bug.
func Classify(notes []model.NoteEvent) model.ClassifiedEvent {
	if len(notes) == 0 {
		panic("chord: Classify called with an empty group")
	}

	ev := model.ClassifiedEvent{
		Root:        model.NoRoot,
		SourceNotes: notes,
		Timestamp:   notes[0].Timestamp,
	}

	classes := distinctPitchClasses(notes)
	lowest := lowestNote(notes)

	switch len(classes) {
	case 1:
		// octave duplicates of one pitch read as that single note,
		// named from the lowest key played
		ev.Type = model.TypeNote
		ev.Label = note.Name(lowest)
		ev.FullName = ev.Label
		ev.Root = int(note.PitchClass(lowest))
	case 2:
		lo, hi := intervalNotes(notes)
		ev.Type = model.TypeInterval
		ev.Label = note.Name(lo) + " + " + note.Name(hi)
		ev.FullName = note.Name(lo) + " and " + note.Name(hi)
	default:
		m, ok := bestMatch(classes, note.PitchClass(lowest))
		if !ok {
			ev.Type = model.TypeUnclassified
			ev.Label = joinAscending(notes, " + ")
			ev.FullName = joinAscending(notes, " and ")
			break
		}
		ev.Type = model.TypeChord
		ev.Root = int(m.root)
		ev.Inversion = m.inversion
		ev.Label = displayLabel(m.root, m.tmpl)
		ev.FullName = note.ClassName(int(m.root)) + " " + m.tmpl.FullName
	}
	return ev
}

// bestMatch tries every played pitch class as a candidate root against every
// template of matching size. When several (root, template) pairs fit, the
// winner is the root-position reading first, then the smaller template, then
// the lexicographically first name, so the result is deterministic.
func bestMatch(classes []uint8, bassClass uint8) (match, bool) {
	var matches []match
	for _, root := range classes {
		normalized := normalize(classes, root)
		for _, t := range templates {
			if t.NoteCount() != len(normalized) {
				continue
			}
			if !intervalsEqual(normalized, t.Intervals) {
				continue
			}
			matches = append(matches, match{
				root:      root,
				tmpl:      t,
				inversion: inversionOf(t, root, bassClass),
			})
		}
	}
	if len(matches) == 0 {
		return match{}, false
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if (matches[i].inversion == 0) != (matches[j].inversion == 0) {
			return matches[i].inversion == 0
		}
		if matches[i].tmpl.NoteCount() != matches[j].tmpl.NoteCount() {
			return matches[i].tmpl.NoteCount() < matches[j].tmpl.NoteCount()
		}
		return matches[i].tmpl.Name < matches[j].tmpl.Name
	})
	return matches[0], true
}

// inversionOf numbers the voicing by which chord member carries the bass:
// 0 for the root, 1 for the third, 2 for the fifth, and so on up the
// template's interval ordering.
func inversionOf(t Template, root, bass uint8) int {
	interval := uint8((int(bass) - int(root) + 12) % 12)
	for i, iv := range t.Intervals {
		if iv == interval {
			return i
		}
	}
	return 0
}

// normalize rebases the pitch-class set onto a candidate root and sorts it,
// so it can be compared against templates by plain set equality.
func normalize(classes []uint8, root uint8) []uint8 {
	res := make([]uint8, 0, len(classes))
	for _, pc := range classes {
		res = append(res, (pc+12-root)%12)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i] < res[j]
	})
	return res
}

func intervalsEqual(a, b []uint8) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func distinctPitchClasses(notes []model.NoteEvent) []uint8 {
	set := make(map[uint8]bool)
	for _, n := range notes {
		set[note.PitchClass(n.Number)] = true
	}
	return util.SortedKeys(set)
}

func lowestNote(notes []model.NoteEvent) uint8 {
	lowest := notes[0].Number
	for _, n := range notes[1:] {
		lowest = util.Min(lowest, n.Number)
	}
	return lowest
}

// intervalNotes picks the two notes to name for a two-pitch-class group:
// the lowest key carrying each pitch class, in ascending order.
func intervalNotes(notes []model.NoteEvent) (uint8, uint8) {
	byClass := make(map[uint8]uint8)
	for _, n := range notes {
		pc := note.PitchClass(n.Number)
		if cur, ok := byClass[pc]; !ok || n.Number < cur {
			byClass[pc] = n.Number
		}
	}
	nums := make([]uint8, 0, len(byClass))
	for _, num := range byClass {
		nums = append(nums, num)
	}
	sort.Slice(nums, func(i, j int) bool {
		return nums[i] < nums[j]
	})
	return nums[0], nums[1]
}

func joinAscending(notes []model.NoteEvent, sep string) string {
	set := make(map[uint8]bool)
	for _, n := range notes {
		set[n.Number] = true
	}
	var names []string
	for _, num := range util.SortedKeys(set) {
		names = append(names, note.Name(num))
	}
	return strings.Join(names, sep)
}

// displayLabel renders "C maj" or "D min7", but glues digit-led qualities
// straight onto the root, as in "G7" or "C9".
func displayLabel(root uint8, t Template) string {
	name := note.ClassName(int(root))
	if t.Name[0] >= '0' && t.Name[0] <= '9' {
		return name + t.Name
	}
	return name + " " + t.Name
}
