package server

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/sw33tLie/catalogo/internal/utils"
	"github.com/sw33tLie/catalogo/pkg/browse"
	"github.com/sw33tLie/catalogo/pkg/catalog"
	"github.com/tidwall/sjson"
)

// stateFromQuery replays the user action encoded in the query string.
// "category" wins over "q"; "all" highlights the All control.
func stateFromQuery(q url.Values) browse.State {
	st := browse.Initial()
	switch {
	case q.Get("category") != "":
		return st.SelectCategory(q.Get("category"))
	case q.Has("q"):
		return st.EditQuery(q.Get("q")).SubmitSearch()
	case q.Has("all"):
		return st.SelectAll()
	}
	return st
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	st := stateFromQuery(r.URL.Query())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := renderPage(w, s.Session.Controls(), st, s.Session.Render(st)); err != nil {
		utils.Log.Errorf("rendering page: %v", err)
	}
}

func (s *Server) handleItems(w http.ResponseWriter, r *http.Request) {
	if s.loadFailed(w) {
		return
	}
	data, err := catalog.EncodeItems(s.Session.Items(stateFromQuery(r.URL.Query())))
	if err != nil {
		utils.Log.Errorf("encoding items: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, data)
}

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	if s.loadFailed(w) {
		return
	}
	st := stateFromQuery(r.URL.Query())
	view := s.Session.Render(st)
	groups, err := catalog.EncodePlan(view.Groups)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	data, err := planDocument(st, view, groups)
	if err != nil {
		utils.Log.Errorf("encoding plan: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, data)
}

// planDocument builds {selector, empty, message?, groups}.
func planDocument(st browse.State, view browse.View, groups []byte) ([]byte, error) {
	out, err := sjson.SetBytes([]byte(`{}`), "selector", st.Selector.String())
	if err != nil {
		return nil, err
	}
	if out, err = sjson.SetBytes(out, "empty", view.Empty); err != nil {
		return nil, err
	}
	if view.Empty {
		if out, err = sjson.SetBytes(out, "message", view.Message); err != nil {
			return nil, err
		}
	}
	return sjson.SetRawBytes(out, "groups", groups)
}

func (s *Server) handleControls(w http.ResponseWriter, r *http.Request) {
	if s.loadFailed(w) {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.Session.Controls()); err != nil {
		utils.Log.Errorf("encoding controls: %v", err)
	}
}

func (s *Server) loadFailed(w http.ResponseWriter) bool {
	if s.Session.LoadErr() == nil {
		return false
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusServiceUnavailable)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": browse.LoadFailureMessage}); err != nil {
		utils.Log.Errorf("encoding load failure: %v", err)
	}
	return true
}

func writeJSON(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(data); err != nil {
		utils.Log.Errorf("writing response: %v", err)
	}
}
