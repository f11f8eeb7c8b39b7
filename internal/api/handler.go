// Package api exposes a list session over HTTP. The list itself is
// single-threaded; the handler serializes access with a mutex so that
// every operation still runs to completion one at a time.
package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/lowlevel-labs/internal/list"
	"github.com/povarna/lowlevel-labs/internal/middleware"
	"github.com/rs/zerolog"
)

type Handler struct {
	mu     sync.Mutex
	store  *list.List
	logger *zerolog.Logger
}

func NewHandler(store *list.List, logger *zerolog.Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

// Snapshot handles GET /api/v1/list
func (h *Handler) Snapshot(req *restful.Request, resp *restful.Response) {
	h.mu.Lock()
	out := ListResponse{Values: h.store.Values(), Length: h.store.Len()}
	h.mu.Unlock()

	resp.WriteHeaderAndEntity(http.StatusOK, out)
}

// Add handles POST /api/v1/list/values
func (h *Handler) Add(req *restful.Request, resp *restful.Response) {
	var addRequest AddRequest
	if err := req.ReadEntity(&addRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	if err := addRequest.Validate(); err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	h.store.Insert(addRequest.Index, addRequest.Value)
	out := ListResponse{Values: h.store.Values(), Length: h.store.Len()}
	h.mu.Unlock()

	h.logger.Info().
		Int("index", addRequest.Index).
		Int("value", addRequest.Value).
		Int("length", out.Length).
		Msg("value added")

	resp.WriteHeaderAndEntity(http.StatusOK, out)
}

// Delete handles DELETE /api/v1/list/values/{index}
func (h *Handler) Delete(req *restful.Request, resp *restful.Response) {
	index, err := strconv.Atoi(req.PathParameter("index"))
	if err != nil {
		middleware.HandleError(resp, fmt.Errorf("index must be an integer"), http.StatusBadRequest)
		return
	}
	if index < 0 {
		middleware.HandleError(resp, ErrNegativeIndex, http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	value, err := h.store.Remove(index)
	length := h.store.Len()
	h.mu.Unlock()

	if err != nil {
		if errors.Is(err, list.ErrIndexOutOfRange) {
			h.logger.Warn().Int("index", index).Int("length", length).Msg("delete with invalid index")
			middleware.HandleError(resp, err, http.StatusNotFound)
			return
		}
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}

	h.logger.Info().
		Int("index", index).
		Int("value", value).
		Int("length", length).
		Msg("value deleted")

	resp.WriteHeaderAndEntity(http.StatusOK, RemoveResponse{Value: value, Length: length})
}

// Reset handles POST /api/v1/list/reset
func (h *Handler) Reset(req *restful.Request, resp *restful.Response) {
	h.mu.Lock()
	h.store.Reset()
	h.mu.Unlock()

	h.logger.Info().Msg("list reset")
	resp.WriteHeaderAndEntity(http.StatusOK, ListResponse{Values: []int{}, Length: 0})
}

// Health handles GET /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	})
}
