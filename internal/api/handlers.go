package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/llehouerou/showcase/internal/content"
	"github.com/llehouerou/showcase/internal/sections"
	"github.com/llehouerou/showcase/internal/templates"
)

const maxBodyBytes = 1 << 20

// Handler serves the public and admin content routes.
type Handler struct {
	svc *content.Service
	log *zap.Logger
}

// NewHandler creates a handler over svc.
func NewHandler(svc *content.Service, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{svc: svc, log: log}
}

// sectionView is a section annotated with its carousel layout.
type sectionView struct {
	sections.Section
	Behavior string `json:"behavior"`
	PerPage  *struct {
		Wide   int `json:"wide"`
		Narrow int `json:"narrow"`
	} `json:"perPage,omitempty"`
}

// recordView is a record with its decoded sections.
type recordView struct {
	content.Record
	Sections []sectionView `json:"sections,omitempty"`
}

func (h *Handler) view(r content.Record) recordView {
	v := recordView{Record: r}
	secs, err := sections.Parse(r.Content)
	if err != nil {
		h.log.Warn("unreadable sections",
			zap.String("kind", string(r.Kind)),
			zap.String("slug", r.Slug),
			zap.Error(err),
		)
		return v
	}
	for _, s := range secs {
		l := s.Layout()
		sv := sectionView{Section: s, Behavior: l.Behavior.String()}
		if l.Behavior == sections.Slide || l.Behavior == sections.Paged {
			sv.PerPage = &struct {
				Wide   int `json:"wide"`
				Narrow int `json:"narrow"`
			}{l.PerPage.Wide, l.PerPage.Narrow}
		}
		v.Sections = append(v.Sections, sv)
	}
	return v
}

func (h *Handler) kind(w http.ResponseWriter, r *http.Request) (content.Kind, bool) {
	k, found := content.ParseKind(r.PathValue("kind"))
	if !found {
		fail(w, http.StatusNotFound, fmt.Sprintf("unknown collection %q", r.PathValue("kind")))
		return "", false
	}
	return k, true
}

func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", content.ErrInvalid)
		}
		return fmt.Errorf("%w: %v", content.ErrInvalid, err)
	}
	return nil
}

// GET /api/{kind}
func (h *Handler) listPublished(w http.ResponseWriter, r *http.Request) {
	kind, found := h.kind(w, r)
	if !found {
		return
	}
	recs, err := h.svc.List(r.Context(), kind, content.PublishedOnly())
	if err != nil {
		h.failErr(w, r, err)
		return
	}
	if recs == nil {
		recs = []content.Record{}
	}
	ok(w, http.StatusOK, recs)
}

// GET /api/{kind}/{slug}
func (h *Handler) getPublished(w http.ResponseWriter, r *http.Request) {
	kind, found := h.kind(w, r)
	if !found {
		return
	}
	rec, err := h.svc.Published(r.Context(), kind, r.PathValue("slug"))
	if err != nil {
		h.failErr(w, r, err)
		return
	}
	ok(w, http.StatusOK, h.view(rec))
}

// GET /api/admin/{kind}
func (h *Handler) listAll(w http.ResponseWriter, r *http.Request) {
	kind, found := h.kind(w, r)
	if !found {
		return
	}
	recs, err := h.svc.List(r.Context(), kind, content.Filter{})
	if err != nil {
		h.failErr(w, r, err)
		return
	}
	if recs == nil {
		recs = []content.Record{}
	}
	ok(w, http.StatusOK, recs)
}

// GET /api/admin/{kind}/{id}
func (h *Handler) getByID(w http.ResponseWriter, r *http.Request) {
	kind, found := h.kind(w, r)
	if !found {
		return
	}
	rec, err := h.svc.Get(r.Context(), kind, r.PathValue("id"))
	if err != nil {
		h.failErr(w, r, err)
		return
	}
	ok(w, http.StatusOK, h.view(rec))
}

type createRequest struct {
	Title     string         `json:"title"`
	Slug      string         `json:"slug"`
	Order     int            `json:"order"`
	Published bool           `json:"isPublished"`
	Content   map[string]any `json:"content"`
}

// POST /api/admin/{kind}
func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	kind, found := h.kind(w, r)
	if !found {
		return
	}
	var req createRequest
	if err := decodeBody(r, &req); err != nil {
		h.failErr(w, r, err)
		return
	}
	if _, err := sections.Parse(req.Content); err != nil {
		h.failErr(w, r, err)
		return
	}
	rec, err := h.svc.Create(r.Context(), content.Record{
		Kind:      kind,
		Title:     req.Title,
		Slug:      strings.TrimSpace(req.Slug),
		Order:     req.Order,
		Published: req.Published,
		Content:   req.Content,
	})
	if err != nil {
		h.failErr(w, r, err)
		return
	}
	ok(w, http.StatusCreated, rec)
}

// PUT /api/admin/{kind}/{id}
func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	kind, found := h.kind(w, r)
	if !found {
		return
	}
	var p content.Patch
	if err := decodeBody(r, &p); err != nil {
		h.failErr(w, r, err)
		return
	}
	if p.Content != nil {
		if _, err := sections.Parse(*p.Content); err != nil {
			h.failErr(w, r, err)
			return
		}
	}
	rec, err := h.svc.Update(r.Context(), kind, r.PathValue("id"), p)
	if err != nil {
		h.failErr(w, r, err)
		return
	}
	ok(w, http.StatusOK, rec)
}

// DELETE /api/admin/{kind}/{id}
func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	kind, found := h.kind(w, r)
	if !found {
		return
	}
	if err := h.svc.Delete(r.Context(), kind, r.PathValue("id")); err != nil {
		h.failErr(w, r, err)
		return
	}
	ok(w, http.StatusOK, map[string]string{"id": r.PathValue("id")})
}

// POST /api/admin/{kind}/reorder
func (h *Handler) reorder(w http.ResponseWriter, r *http.Request) {
	kind, found := h.kind(w, r)
	if !found {
		return
	}
	var updates []content.OrderUpdate
	if err := decodeBody(r, &updates); err != nil {
		h.failErr(w, r, err)
		return
	}
	if err := h.svc.Reorder(r.Context(), kind, updates); err != nil {
		h.failErr(w, r, err)
		return
	}
	ok(w, http.StatusOK, map[string]int{"updated": len(updates)})
}

// GET /api/admin/templates
func (h *Handler) listTemplates(w http.ResponseWriter, _ *http.Request) {
	ok(w, http.StatusOK, templates.Known())
}

// GET /api/admin/templates/{slug}?name=...
func (h *Handler) previewTemplate(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	name := r.URL.Query().Get("name")
	if name == "" {
		name = slug
	}
	c, err := templates.Populate(name, slug)
	if err != nil {
		h.failErr(w, r, fmt.Errorf("%w: %v", content.ErrInvalid, err))
		return
	}
	ok(w, http.StatusOK, c)
}

// GET /healthz
func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	ok(w, http.StatusOK, map[string]string{"status": "ok"})
}
