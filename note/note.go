package note

import (
	"fmt"
	"strconv"
	"strings"
)

var names = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var flatToSharp = map[string]string{
	"Db": "C#", "Eb": "D#", "Gb": "F#", "Ab": "G#", "Bb": "A#",
}

// Name returns the scientific name of a MIDI note number, e.g. 60 -> "C4".
func Name(num uint8) string {
	octave := int(num)/12 - 1
	return fmt.Sprintf("%v%v", names[num%12], octave)
}

// ClassName returns the bare pitch-class name, e.g. 0 -> "C".
func ClassName(pc int) string {
	return names[((pc%12)+12)%12]
}

func PitchClass(num uint8) uint8 {
	return num % 12
}

// Parse converts a scientific note name like "C4", "Bb3" or "A#-1" back to
// its MIDI number. Flats are folded onto their sharp equivalents.
func Parse(s string) (uint8, error) {
	i := strings.IndexAny(s, "-0123456789")
	if i <= 0 {
		return 0, fmt.Errorf("invalid note name %q", s)
	}

	letter := s[:i]
	if sharp, ok := flatToSharp[letter]; ok {
		letter = sharp
	}
	pc := -1
	for j, n := range names {
		if n == letter {
			pc = j
			break
		}
	}
	if pc < 0 {
		return 0, fmt.Errorf("invalid note name %q", s)
	}

	octave, err := strconv.Atoi(s[i:])
	if err != nil {
		return 0, fmt.Errorf("invalid octave in note name %q", s)
	}
	num := (octave+1)*12 + pc
	if num < 0 || num > 127 {
		return 0, fmt.Errorf("note %q is outside the MIDI range", s)
	}
	return uint8(num), nil
}
