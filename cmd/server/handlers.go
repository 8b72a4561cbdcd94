package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/thaytai/grammar"
)

// ---- JSON request/response types ----------------------------------------

type passiveRequest struct {
	Polarity                string `json:"polarity"`
	Question                bool   `json:"question"`
	ByAgent                 bool   `json:"by_agent"`
	AgentText               string `json:"agent_text"`
	Marker                  string `json:"marker"`
	Variant                 string `json:"variant"`
	AllowPerfectProgressive bool   `json:"allow_perfect_progressive"`
}

// heroRequest selects the unit by id, or by a bare tag list when UnitID is
// zero. A non-null passive object switches the build to passive voice.
type heroRequest struct {
	UnitID      int             `json:"unit_id"`
	Tags        []string        `json:"tags"`
	Subject     string          `json:"subject"`
	Verb        string          `json:"verb"`
	Adjective   string          `json:"adjective"`
	Adverb      string          `json:"adverb"`
	Noun        string          `json:"noun"`
	Preposition string          `json:"preposition"`
	Tense       string          `json:"tense"`
	Aspect      string          `json:"aspect"`
	Polarity    string          `json:"polarity"`
	Passive     *passiveRequest `json:"passive"`
}

type heroResponse struct {
	English    string `json:"english"`
	Plain      string `json:"plain"`
	Vietnamese string `json:"vietnamese"`
	Warn       string `json:"warn,omitempty"`
	Kind       string `json:"kind"`
	Class      string `json:"class"`
}

type unitJSON struct {
	ID            int      `json:"id"`
	NameEn        string   `json:"name_en"`
	NameVi        string   `json:"name_vi"`
	Tags          []string `json:"tags"`
	GroupID       int      `json:"groupId"`
	Class         string   `json:"class"`
	CoreKnowledge string   `json:"core_knowledge,omitempty"`
}

type unitsResponse struct {
	Units []unitJSON `json:"units"`
}

type groupsResponse struct {
	Groups []grammar.Group `json:"groups"`
}

type searchResponse struct {
	Query string        `json:"query"`
	Hits  []grammar.Hit `json:"hits"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func toUnitJSON(u grammar.Unit, withKnowledge bool) unitJSON {
	out := unitJSON{
		ID:      u.ID,
		NameEn:  u.NameEn,
		NameVi:  u.NameVi,
		Tags:    u.Tags,
		GroupID: u.GroupID,
		Class:   u.WordClass().String(),
	}
	if withKnowledge {
		out.CoreKnowledge = u.CoreKnowledge
	}
	return out
}

func toUnitsJSON(units []grammar.Unit) []unitJSON {
	out := make([]unitJSON, 0, len(units))
	for _, u := range units {
		out = append(out, toUnitJSON(u, false))
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// buildContext turns a request into an engine context. Empty tense and
// aspect mean present simple.
func buildContext(req heroRequest, content *grammar.Content) (grammar.BuildContext, int, error) {
	var ctx grammar.BuildContext
	if req.UnitID != 0 {
		u, ok := content.Unit(req.UnitID)
		if !ok {
			return ctx, http.StatusNotFound, fmt.Errorf("unit %d not found", req.UnitID)
		}
		ctx.Unit = u
	} else {
		ctx.Unit = grammar.Unit{Tags: req.Tags}
	}

	subj, ok := grammar.ParseSubject(req.Subject)
	if !ok {
		return ctx, http.StatusBadRequest, fmt.Errorf("unknown subject %q", req.Subject)
	}
	ctx.Subject = subj

	var err error
	if req.Tense == "" {
		req.Tense = string(grammar.TensePresent)
	}
	if ctx.Tense, err = grammar.ParseTense(req.Tense); err != nil {
		return ctx, http.StatusBadRequest, err
	}
	if req.Aspect == "" {
		req.Aspect = string(grammar.AspectSimple)
	}
	if ctx.Aspect, err = grammar.ParseAspect(req.Aspect); err != nil {
		return ctx, http.StatusBadRequest, err
	}
	if ctx.Polarity, err = grammar.ParsePolarity(req.Polarity); err != nil {
		return ctx, http.StatusBadRequest, err
	}

	if p := req.Passive; p != nil {
		opts := grammar.PassiveOptions{
			Enabled:                 true,
			Question:                p.Question,
			ByAgent:                 p.ByAgent,
			AgentText:               p.AgentText,
			AllowPerfectProgressive: p.AllowPerfectProgressive,
		}
		// an empty passive polarity inherits the request polarity
		if p.Polarity != "" {
			if opts.Polarity, err = grammar.ParsePolarity(p.Polarity); err != nil {
				return ctx, http.StatusBadRequest, err
			}
			if opts.Polarity == grammar.PolarityQuestion {
				return ctx, http.StatusBadRequest, fmt.Errorf("passive polarity must be affirmative or negative; set \"question\" for questions")
			}
		}
		if opts.Marker, err = grammar.ParsePassiveMarker(p.Marker); err != nil {
			return ctx, http.StatusBadRequest, err
		}
		if opts.Variant, err = grammar.ParsePassiveVariant(p.Variant); err != nil {
			return ctx, http.StatusBadRequest, err
		}
		ctx.Passive = opts
	}

	ctx.Verb = req.Verb
	ctx.Adjective = req.Adjective
	ctx.Adverb = req.Adverb
	ctx.Noun = req.Noun
	ctx.Preposition = req.Preposition
	return ctx, http.StatusOK, nil
}

// ---- handlers -----------------------------------------------------------

func handleHero(content *grammar.Content) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var req heroRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "body must be a JSON build request")
			return
		}
		ctx, status, err := buildContext(req, content)
		if err != nil {
			writeError(w, status, err.Error())
			return
		}

		res := grammar.Build(ctx)
		if res.Kind == grammar.ResultFault {
			log.Error().Err(res.Err).Msg("hero build fault")
		}
		writeJSON(w, http.StatusOK, heroResponse{
			English:    res.English,
			Plain:      res.Plain,
			Vietnamese: res.Vietnamese,
			Warn:       res.Warn,
			Kind:       res.Kind.String(),
			Class:      ctx.Unit.WordClass().String(),
		})
	}
}

func handleForms() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		verb := r.URL.Query().Get("verb")
		if verb == "" {
			writeError(w, http.StatusBadRequest, "missing 'verb' query parameter")
			return
		}
		writeJSON(w, http.StatusOK, grammar.Forms(verb))
	}
}

func handleUnits(content *grammar.Content) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		group := r.URL.Query().Get("group")
		if group == "" {
			writeJSON(w, http.StatusOK, unitsResponse{Units: toUnitsJSON(content.Units())})
			return
		}
		id, err := strconv.Atoi(group)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid group %q", group))
			return
		}
		writeJSON(w, http.StatusOK, unitsResponse{Units: toUnitsJSON(content.UnitsInGroup(id))})
	}
}

func handleUnit(content *grammar.Content) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		raw := r.URL.Query().Get("id")
		id, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "missing or invalid 'id' query parameter")
			return
		}
		u, ok := content.Unit(id)
		if !ok {
			writeError(w, http.StatusNotFound, fmt.Sprintf("unit %d not found", id))
			return
		}
		writeJSON(w, http.StatusOK, toUnitJSON(u, true))
	}
}

func handleGroups(content *grammar.Content) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		writeJSON(w, http.StatusOK, groupsResponse{Groups: content.Groups()})
	}
}

func handleSearch(content *grammar.Content) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		q := r.URL.Query().Get("q")
		if q == "" {
			writeError(w, http.StatusBadRequest, "missing 'q' query parameter")
			return
		}
		pack := r.URL.Query().Get("pack")
		if pack != "" && !grammar.IsPackName(pack) {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown pack %q", pack))
			return
		}
		hits := content.Search(q, pack)
		if hits == nil {
			hits = []grammar.Hit{}
		}
		writeJSON(w, http.StatusOK, searchResponse{Query: q, Hits: hits})
	}
}

func handleExport(content *grammar.Content) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		w.Header().Set("Content-Disposition", `attachment; filename="thaytai-pack.json"`)
		writeJSON(w, http.StatusOK, content.Export())
	}
}
