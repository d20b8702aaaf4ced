package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"edotone/chord"
	"edotone/constants"
	"edotone/formula"
	"edotone/model"
	"edotone/naming"
	"edotone/session"
	"edotone/tuning"
)

var (
	sessionMu sync.Mutex
	sessions  = make(map[string]*session.Session)
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the engine over HTTP",
	Long:  `Serves note tables, chord formulas and the resolver as a JSON API`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

// NewRouter wires every handler. Exported for the e2e tests.
func NewRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/divisions", HandleDivisions).Methods("GET")
	router.HandleFunc("/divisions/{n:[0-9]+}/notes", HandleNotes).Methods("GET")
	router.HandleFunc("/divisions/{n:[0-9]+}/chords", HandleChords).Methods("GET")
	router.HandleFunc("/resolve", HandleResolve).Methods("POST")
	router.HandleFunc("/sessions", HandleCreateSession).Methods("POST")
	router.HandleFunc("/sessions/{id}", HandleGetSession).Methods("GET")
	router.HandleFunc("/sessions/{id}", HandlePatchSession).Methods("PATCH")
	router.HandleFunc("/sessions/{id}/resolve", HandleSessionResolve).Methods("POST")
	return router
}

func serve() {
	handler := cors.Default().Handler(NewRouter())
	addr := ":" + constants.GetPort()
	fmt.Printf("Listening on %v\n", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
}

func pathDivision(r *http.Request) (int, error) {
	var n int
	if _, err := fmt.Sscanf(mux.Vars(r)["n"], "%d", &n); err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("%v steps: %w", n, tuning.ErrInvalidDivision)
	}
	return n, nil
}

func HandleDivisions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, constants.Divisions)
}

func HandleNotes(w http.ResponseWriter, r *http.Request) {
	n, err := pathDivision(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	names, err := naming.Names(n)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	et, err := tuning.EqualTemperamentTable(n)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	ji, err := tuning.JustApproxTable(n)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	res := model.NotesResponse{Division: n}
	for s := 0; s < n; s++ {
		res.Notes = append(res.Notes, model.NoteInfo{
			Step:    s,
			Name:    names[s],
			EqualHz: et[s],
			JustHz:  ji[s],
		})
	}
	writeJSON(w, res)
}

func HandleChords(w http.ResponseWriter, r *http.Request) {
	n, err := pathDivision(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	res := model.ChordsResponse{Division: n}
	for _, name := range formula.NamesFor(n) {
		offsets, _ := formula.Lookup(name, n)
		res.Chords = append(res.Chords, model.ChordInfo{Name: name, Offsets: offsets})
	}
	writeJSON(w, res)
}

func HandleResolve(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var input model.ResolveRequestBody
	if err := json.Unmarshal(body, &input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	mode, err := model.ParseTuningMode(input.Tuning)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	// An unknown chord name still answers 200 with zero voices. The UI
	// contract is "nothing to highlight, nothing to play", not an error.
	rc, err := chord.Resolve(input.Root, input.Chord, input.Division, mode)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, rc)
}

func HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	s := session.New()
	sessionMu.Lock()
	sessions[s.ID.String()] = s
	snap := *s
	sessionMu.Unlock()
	writeJSON(w, snap)
}

func getSession(r *http.Request) (*session.Session, bool) {
	sessionMu.Lock()
	defer sessionMu.Unlock()
	s, ok := sessions[mux.Vars(r)["id"]]
	return s, ok
}

// snapshotSession copies the session's fields while holding the lock, so the
// JSON encoder never reads a selection that a concurrent PATCH is writing.
func snapshotSession(r *http.Request) (session.Session, bool) {
	sessionMu.Lock()
	defer sessionMu.Unlock()
	s, ok := sessions[mux.Vars(r)["id"]]
	if !ok {
		return session.Session{}, false
	}
	return *s, true
}

func HandleGetSession(w http.ResponseWriter, r *http.Request) {
	snap, ok := snapshotSession(r)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("no such session"))
		return
	}
	writeJSON(w, snap)
}

func HandlePatchSession(w http.ResponseWriter, r *http.Request) {
	s, ok := getSession(r)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("no such session"))
		return
	}

	var input model.SessionPatchBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	// validate the whole patch up front: selection updates are all-or-nothing,
	// so a bad field must not leave earlier fields applied
	var mode model.TuningMode
	if input.Tuning != nil {
		parsed, err := model.ParseTuningMode(*input.Tuning)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		mode = parsed
	}
	if input.Division != nil && *input.Division < 1 {
		writeError(w, http.StatusBadRequest,
			fmt.Errorf("patch division %v: %w", *input.Division, tuning.ErrInvalidDivision))
		return
	}

	sessionMu.Lock()
	if input.Division != nil {
		if err := s.SetDivision(*input.Division); err != nil {
			sessionMu.Unlock()
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}
	if input.Root != nil {
		s.SetRoot(*input.Root)
	}
	if input.Chord != nil {
		s.SetChord(*input.Chord)
	}
	if input.Tuning != nil {
		s.SetTuning(mode)
	}
	snap := *s
	sessionMu.Unlock()
	writeJSON(w, snap)
}

func HandleSessionResolve(w http.ResponseWriter, r *http.Request) {
	s, ok := getSession(r)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("no such session"))
		return
	}
	sessionMu.Lock()
	rc, err := s.Resolve()
	sessionMu.Unlock()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, rc)
}
