package model

// Recording is the persisted form of one practice session.
type Recording struct {
	Id            string            `json:"id,omitempty"`
	RecordingDate string            `json:"recording_date,omitempty"`
	WindowMs      float64           `json:"window_ms"`
	NoteCount     int               `json:"note_count"`
	Duration      float64           `json:"duration"`
	Events        []ClassifiedEvent `json:"events"`
}

// PracticeSession is the metadata row kept in the practice log, one per
// saved recording.
type PracticeSession struct {
	Id        string
	Device    string
	NoteCount int
	Duration  float64
	Date      string
}
