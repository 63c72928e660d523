package web

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/halc8312/shinwa-sub002/internal/geography"
	"github.com/halc8312/shinwa-sub002/internal/model"
	"github.com/halc8312/shinwa-sub002/internal/transport"
	"github.com/halc8312/shinwa-sub002/internal/travel"
)

// snapshot loads the stored geography and builds an index for one
// request. Each operation reads the snapshot once; nothing is shared
// across requests.
func (s *Server) snapshot(w http.ResponseWriter) (*geography.Index, bool) {
	doc, err := s.Store.ReadGeography()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil, false
	}
	ix, err := geography.NewIndex(doc)
	if err != nil {
		var integrity *geography.IntegrityError
		if errors.As(err, &integrity) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return nil, false
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil, false
	}
	return ix, true
}

type resolveResponse struct {
	Found       bool                         `json:"found"`
	Location    *geography.ResolvedLocation  `json:"location,omitempty"`
	Suggestions []string                     `json:"suggestions,omitempty"`
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		http.Error(w, "missing 'name' parameter", http.StatusBadRequest)
		return
	}

	ix, ok := s.snapshot(w)
	if !ok {
		return
	}

	if loc, found := ix.Resolve(name); found {
		writeJSON(w, resolveResponse{Found: true, Location: &loc})
		return
	}
	// Absence is data, not an HTTP error.
	writeJSON(w, resolveResponse{Found: false, Suggestions: ix.Suggest(name, 5)})
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := q.Get("from"), q.Get("to")
	if from == "" || to == "" {
		http.Error(w, "missing 'from' or 'to' parameter", http.StatusBadRequest)
		return
	}
	chapter := 0
	if c := q.Get("chapter"); c != "" {
		n, err := strconv.Atoi(c)
		if err != nil {
			http.Error(w, "invalid 'chapter' parameter", http.StatusBadRequest)
			return
		}
		chapter = n
	}

	ix, ok := s.snapshot(w)
	if !ok {
		return
	}

	writeJSON(w, travel.ValidateTravel(ix, from, to, q.Get("character"), chapter, s.Thresholds))
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	fromName, toName := q.Get("from"), q.Get("to")
	if fromName == "" || toName == "" {
		http.Error(w, "missing 'from' or 'to' parameter", http.StatusBadRequest)
		return
	}

	ix, ok := s.snapshot(w)
	if !ok {
		return
	}

	from, fromOK := ix.Resolve(fromName)
	to, toOK := ix.Resolve(toName)
	if !fromOK || !toOK {
		http.Error(w, "location not found", http.StatusNotFound)
		return
	}

	settings, err := s.Store.ReadWorldSettings()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	custom, err := s.Store.ReadCustomTransports()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	offered := travel.MethodsFor(ix, settings, custom, from, to)
	method := offered[0]
	if want := q.Get("method"); want != "" {
		found := false
		for _, m := range offered {
			if string(m.Type) == want {
				method = m
				found = true
				break
			}
		}
		if !found {
			http.Error(w, "method not offered for this route", http.StatusBadRequest)
			return
		}
	}

	character := model.Character{ID: q.Get("character")}
	writeJSON(w, travel.Simulate(ix, character, from, to, method))
}

func (s *Server) handleTransports(w http.ResponseWriter, r *http.Request) {
	settings, err := s.Store.ReadWorldSettings()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	custom, err := s.Store.ReadCustomTransports()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, transport.Available(settings, custom))
}

func (s *Server) handleSaveTransports(w http.ResponseWriter, r *http.Request) {
	var methods []model.TransportMethod
	if err := json.NewDecoder(r.Body).Decode(&methods); err != nil {
		http.Error(w, "invalid transport list: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := s.Store.WriteCustomTransports(methods); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, methods)
}

func (s *Server) handleExtractTransports(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	types := transport.ExtractFromChapter(string(body))
	if types == nil {
		types = []model.TransportType{}
	}
	writeJSON(w, types)
}

func (s *Server) handleCharacterTransports(w http.ResponseWriter, r *http.Request) {
	methods, err := s.Store.ReadCharacterTransports(r.PathValue("id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if methods == nil {
		methods = transport.DefaultCharacterTransports()
	}
	writeJSON(w, methods)
}

func (s *Server) handleUpdateCharacterTransports(w http.ResponseWriter, r *http.Request) {
	var methods []model.TransportType
	if err := json.NewDecoder(r.Body).Decode(&methods); err != nil {
		http.Error(w, "invalid transport list: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := s.Store.WriteCharacterTransports(r.PathValue("id"), methods); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, methods)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	// Wildcard CORS: the API backs a local editor, not a public site.
	w.Header().Set("Access-Control-Allow-Origin", "*")
	if v == nil {
		_, _ = w.Write([]byte("[]"))
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}
