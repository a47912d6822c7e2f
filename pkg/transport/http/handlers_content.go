package http

import (
	"net/http"

	"github.com/profkom/profkom-backend/pkg/api"
	"github.com/profkom/profkom-backend/pkg/transport"
)

// contentRoutes registers the five entity groups. Reads are anonymous,
// writes require the admin role. Update returns 204; create echoes the
// stored entity with its assigned ID.
func (h *Handlers) contentRoutes(mux *http.ServeMux, anon, admin func(http.Handler) http.Handler) {
	type group struct {
		path   string
		list   http.HandlerFunc
		get    http.HandlerFunc
		create http.HandlerFunc
		update http.HandlerFunc
		del    http.HandlerFunc
	}

	groups := []group{
		{"/api/news", h.newsList, h.newsGet, h.newsCreate, h.newsUpdate, h.newsDelete},
		{"/api/events", h.eventList, h.eventGet, h.eventCreate, h.eventUpdate, h.eventDelete},
		{"/api/team", h.teamList, h.teamGet, h.teamCreate, h.teamUpdate, h.teamDelete},
		{"/api/units", h.unitList, h.unitGet, h.unitCreate, h.unitUpdate, h.unitDelete},
		{"/api/profs", h.profList, h.profGet, h.profCreate, h.profUpdate, h.profDelete},
	}

	for _, g := range groups {
		mux.Handle("GET "+g.path, anon(g.list))
		mux.Handle("GET "+g.path+"/{id}", anon(g.get))
		mux.Handle("POST "+g.path, admin(g.create))
		mux.Handle("PUT "+g.path+"/{id}", admin(g.update))
		mux.Handle("DELETE "+g.path+"/{id}", admin(g.del))
	}
}

// --- News ---

func (h *Handlers) newsList(w http.ResponseWriter, r *http.Request) {
	list, err := h.content.ListNews(r.Context())
	if err != nil {
		transport.WriteError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, list)
}

func (h *Handlers) newsGet(w http.ResponseWriter, r *http.Request) {
	id, apiErr := pathID(r)
	if apiErr != nil {
		transport.WriteAPIError(w, apiErr)
		return
	}
	n, err := h.content.GetNews(r.Context(), id)
	if err != nil {
		transport.WriteError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, n)
}

func (h *Handlers) newsCreate(w http.ResponseWriter, r *http.Request) {
	var n api.News
	if apiErr := decodeJSON(r, &n); apiErr != nil {
		transport.WriteAPIError(w, apiErr)
		return
	}
	if err := h.content.CreateNews(r.Context(), &n); err != nil {
		transport.WriteError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, n)
}

func (h *Handlers) newsUpdate(w http.ResponseWriter, r *http.Request) {
	id, apiErr := pathID(r)
	if apiErr != nil {
		transport.WriteAPIError(w, apiErr)
		return
	}
	var n api.News
	if apiErr := decodeJSON(r, &n); apiErr != nil {
		transport.WriteAPIError(w, apiErr)
		return
	}
	n.ID = id
	if err := h.content.UpdateNews(r.Context(), &n); err != nil {
		transport.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) newsDelete(w http.ResponseWriter, r *http.Request) {
	id, apiErr := pathID(r)
	if apiErr != nil {
		transport.WriteAPIError(w, apiErr)
		return
	}
	if err := h.content.DeleteNews(r.Context(), id); err != nil {
		transport.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Events ---

func (h *Handlers) eventList(w http.ResponseWriter, r *http.Request) {
	list, err := h.content.ListEvents(r.Context())
	if err != nil {
		transport.WriteError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, list)
}

func (h *Handlers) eventGet(w http.ResponseWriter, r *http.Request) {
	id, apiErr := pathID(r)
	if apiErr != nil {
		transport.WriteAPIError(w, apiErr)
		return
	}
	e, err := h.content.GetEvent(r.Context(), id)
	if err != nil {
		transport.WriteError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, e)
}

func (h *Handlers) eventCreate(w http.ResponseWriter, r *http.Request) {
	var e api.Event
	if apiErr := decodeJSON(r, &e); apiErr != nil {
		transport.WriteAPIError(w, apiErr)
		return
	}
	if err := h.content.CreateEvent(r.Context(), &e); err != nil {
		transport.WriteError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, e)
}

func (h *Handlers) eventUpdate(w http.ResponseWriter, r *http.Request) {
	id, apiErr := pathID(r)
	if apiErr != nil {
		transport.WriteAPIError(w, apiErr)
		return
	}
	var e api.Event
	if apiErr := decodeJSON(r, &e); apiErr != nil {
		transport.WriteAPIError(w, apiErr)
		return
	}
	e.ID = id
	if err := h.content.UpdateEvent(r.Context(), &e); err != nil {
		transport.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) eventDelete(w http.ResponseWriter, r *http.Request) {
	id, apiErr := pathID(r)
	if apiErr != nil {
		transport.WriteAPIError(w, apiErr)
		return
	}
	if err := h.content.DeleteEvent(r.Context(), id); err != nil {
		transport.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Team ---

func (h *Handlers) teamList(w http.ResponseWriter, r *http.Request) {
	list, err := h.content.ListTeam(r.Context())
	if err != nil {
		transport.WriteError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, list)
}

func (h *Handlers) teamGet(w http.ResponseWriter, r *http.Request) {
	id, apiErr := pathID(r)
	if apiErr != nil {
		transport.WriteAPIError(w, apiErr)
		return
	}
	m, err := h.content.GetTeamMember(r.Context(), id)
	if err != nil {
		transport.WriteError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, m)
}

func (h *Handlers) teamCreate(w http.ResponseWriter, r *http.Request) {
	var m api.TeamMember
	if apiErr := decodeJSON(r, &m); apiErr != nil {
		transport.WriteAPIError(w, apiErr)
		return
	}
	if err := h.content.CreateTeamMember(r.Context(), &m); err != nil {
		transport.WriteError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, m)
}

func (h *Handlers) teamUpdate(w http.ResponseWriter, r *http.Request) {
	id, apiErr := pathID(r)
	if apiErr != nil {
		transport.WriteAPIError(w, apiErr)
		return
	}
	var m api.TeamMember
	if apiErr := decodeJSON(r, &m); apiErr != nil {
		transport.WriteAPIError(w, apiErr)
		return
	}
	m.ID = id
	if err := h.content.UpdateTeamMember(r.Context(), &m); err != nil {
		transport.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) teamDelete(w http.ResponseWriter, r *http.Request) {
	id, apiErr := pathID(r)
	if apiErr != nil {
		transport.WriteAPIError(w, apiErr)
		return
	}
	if err := h.content.DeleteTeamMember(r.Context(), id); err != nil {
		transport.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Units ---

func (h *Handlers) unitList(w http.ResponseWriter, r *http.Request) {
	list, err := h.content.ListUnits(r.Context())
	if err != nil {
		transport.WriteError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, list)
}

func (h *Handlers) unitGet(w http.ResponseWriter, r *http.Request) {
	id, apiErr := pathID(r)
	if apiErr != nil {
		transport.WriteAPIError(w, apiErr)
		return
	}
	u, err := h.content.GetUnit(r.Context(), id)
	if err != nil {
		transport.WriteError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, u)
}

func (h *Handlers) unitCreate(w http.ResponseWriter, r *http.Request) {
	var u api.Unit
	if apiErr := decodeJSON(r, &u); apiErr != nil {
		transport.WriteAPIError(w, apiErr)
		return
	}
	if err := h.content.CreateUnit(r.Context(), &u); err != nil {
		transport.WriteError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, u)
}

func (h *Handlers) unitUpdate(w http.ResponseWriter, r *http.Request) {
	id, apiErr := pathID(r)
	if apiErr != nil {
		transport.WriteAPIError(w, apiErr)
		return
	}
	var u api.Unit
	if apiErr := decodeJSON(r, &u); apiErr != nil {
		transport.WriteAPIError(w, apiErr)
		return
	}
	u.ID = id
	if err := h.content.UpdateUnit(r.Context(), &u); err != nil {
		transport.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) unitDelete(w http.ResponseWriter, r *http.Request) {
	id, apiErr := pathID(r)
	if apiErr != nil {
		transport.WriteAPIError(w, apiErr)
		return
	}
	if err := h.content.DeleteUnit(r.Context(), id); err != nil {
		transport.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Prof ---

func (h *Handlers) profList(w http.ResponseWriter, r *http.Request) {
	list, err := h.content.ListProfs(r.Context())
	if err != nil {
		transport.WriteError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, list)
}

func (h *Handlers) profGet(w http.ResponseWriter, r *http.Request) {
	id, apiErr := pathID(r)
	if apiErr != nil {
		transport.WriteAPIError(w, apiErr)
		return
	}
	p, err := h.content.GetProf(r.Context(), id)
	if err != nil {
		transport.WriteError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, p)
}

func (h *Handlers) profCreate(w http.ResponseWriter, r *http.Request) {
	var p api.Prof
	if apiErr := decodeJSON(r, &p); apiErr != nil {
		transport.WriteAPIError(w, apiErr)
		return
	}
	if err := h.content.CreateProf(r.Context(), &p); err != nil {
		transport.WriteError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, p)
}

func (h *Handlers) profUpdate(w http.ResponseWriter, r *http.Request) {
	id, apiErr := pathID(r)
	if apiErr != nil {
		transport.WriteAPIError(w, apiErr)
		return
	}
	var p api.Prof
	if apiErr := decodeJSON(r, &p); apiErr != nil {
		transport.WriteAPIError(w, apiErr)
		return
	}
	p.ID = id
	if err := h.content.UpdateProf(r.Context(), &p); err != nil {
		transport.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) profDelete(w http.ResponseWriter, r *http.Request) {
	id, apiErr := pathID(r)
	if apiErr != nil {
		transport.WriteAPIError(w, apiErr)
		return
	}
	if err := h.content.DeleteProf(r.Context(), id); err != nil {
		transport.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
