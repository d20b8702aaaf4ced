package model

type NoteInfo struct {
	Step    Step    `json:"step"`
	Name    string  `json:"name"`
	EqualHz float64 `json:"equal_hz"`
	JustHz  float64 `json:"just_hz"`
}

type NotesResponse struct {
	Division int        `json:"division"`
	Notes    []NoteInfo `json:"notes"`
}

type ChordInfo struct {
	Name    string `json:"name"`
	Offsets []int  `json:"offsets"`
}

type ChordsResponse struct {
	Division int         `json:"division"`
	Chords   []ChordInfo `json:"chords"`
}

type ResolveRequestBody struct {
	Root     Step   `json:"root"`
	Chord    string `json:"chord"`
	Division int    `json:"division"`
	Tuning   string `json:"tuning"`
}

// SessionPatchBody carries a partial selection update. Nil fields are left
// untouched.
type SessionPatchBody struct {
	Division *int    `json:"division"`
	Root     *Step   `json:"root"`
	Chord    *string `json:"chord"`
	Tuning   *string `json:"tuning"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
