package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/vovakirdan/tui-tictactoe/internal/games/tictactoe"
	"github.com/vovakirdan/tui-tictactoe/internal/match"
)

const maxBodyBytes = 1 << 16

var heartbeatInterval = 15 * time.Second

var errBadRequest = errors.New("bad request")

type handlers struct {
	svc    *Service
	logger *log.Logger
}

type createRequest struct {
	Size int    `json:"size"`
	Mode string `json:"mode"`
}

type moveRequest struct {
	Row *int `json:"row"`
	Col *int `json:"col"`
}

type rewindRequest struct {
	Index *int `json:"index"`
}

type resetRequest struct {
	Size int `json:"size"`
}

type sizeBody struct {
	Size int `json:"size"`
}

func (h *handlers) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := decodeOptional(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	mode := h.svc.opts.Mode
	if req.Mode != "" {
		var err error
		if mode, err = match.ParseMode(req.Mode); err != nil {
			h.writeError(w, err)
			return
		}
	}
	view, err := h.svc.Create(r.Context(), req.Size, mode)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

func (h *handlers) get(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.Get(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *handlers) move(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	if req.Row == nil || req.Col == nil {
		h.writeError(w, fmt.Errorf("%w: row and col are required", errBadRequest))
		return
	}
	mv, err := h.svc.Move(chi.URLParam(r, "id"), *req.Row, *req.Col)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mv)
}

func (h *handlers) rewind(w http.ResponseWriter, r *http.Request) {
	var req rewindRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	if req.Index == nil {
		h.writeError(w, fmt.Errorf("%w: index is required", errBadRequest))
		return
	}
	view, err := h.svc.Rewind(chi.URLParam(r, "id"), *req.Index)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *handlers) resume(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.Resume(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *handlers) reset(w http.ResponseWriter, r *http.Request) {
	var req resetRequest
	if err := decodeOptional(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	view, err := h.svc.Reset(r.Context(), chi.URLParam(r, "id"), req.Size)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *handlers) remove(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(chi.URLParam(r, "id")); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handlers) getSize(w http.ResponseWriter, r *http.Request) {
	size, err := h.svc.BoardSize(r.Context())
	if err != nil {
		h.logger.Warn("could not load board size", "error", err)
	}
	writeJSON(w, http.StatusOK, sizeBody{Size: size})
}

func (h *handlers) putSize(w http.ResponseWriter, r *http.Request) {
	var req sizeBody
	if err := decode(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	if err := h.svc.SetBoardSize(r.Context(), req.Size); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *handlers) events(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	initial, err := h.svc.Get(id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		h.writeError(w, errors.New("streaming unsupported"))
		return
	}

	ctx := r.Context()
	ch, err := h.svc.Subscribe(ctx, id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	writeEvent(w, initial)
	flusher.Flush()

	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, _ = io.WriteString(w, ": ping\n\n")
			flusher.Flush()
		case view, ok := <-ch:
			if !ok {
				return
			}
			writeEvent(w, view)
			flusher.Flush()
		}
	}
}

func writeEvent(w io.Writer, view GameView) {
	b, err := json.Marshal(view)
	if err != nil {
		return
	}
	_, _ = fmt.Fprintf(w, "event: game\ndata: %s\n\n", b)
}

// decode reads a required JSON body.
func decode(r *http.Request, v any) error {
	return decodeBody(r, v, false)
}

// decodeOptional is decode but accepts an empty body.
func decodeOptional(r *http.Request, v any) error {
	return decodeBody(r, v, true)
}

func decodeBody(r *http.Request, v any, optional bool) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	err := dec.Decode(v)
	switch {
	case err == nil:
		return nil
	case optional && errors.Is(err, io.EOF):
		return nil
	default:
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, match.ErrNotYourTurn):
		return http.StatusConflict
	case errors.Is(err, errBadRequest),
		errors.Is(err, match.ErrUnknownMode),
		errors.Is(err, tictactoe.ErrOutOfRange),
		errors.Is(err, tictactoe.ErrInvalidHistoryIndex),
		errors.Is(err, tictactoe.ErrUnsupportedBoardSize):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *handlers) writeError(w http.ResponseWriter, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
