package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"noteshop/pkg/claims"
	"noteshop/pkg/song"
)

const (
	lenID         int    = 24
	typeError     string = "error"
	typeMessage   string = "message"
	muxVarSongID  string = "song_id"
	muxVarBuyID   string = "purchase_id"
	queryPage     string = "page"
	queryCategory string = "category"
)

type SongHandler struct {
	Service song.ServiceSong
	Logger  *slog.Logger
}

func NewSongHandler(service song.ServiceSong, logger *slog.Logger) *SongHandler {
	return &SongHandler{
		Service: service,
		Logger:  logger,
	}
}

func (h *SongHandler) GetSongs(w http.ResponseWriter, r *http.Request) {
	page := 1
	if raw := r.URL.Query().Get(queryPage); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, typeMessage, "invalid page")
			return
		}
		page = parsed
	}

	result, err := h.Service.GetPage(page, r.URL.Query().Get(queryCategory))
	if err != nil {
		h.Logger.Error("GetSongs", "error", err)
		writeError(w, http.StatusInternalServerError, typeError, "failed to fetch songs")
		return
	}

	writeJSON(w, h.Logger, result)
}

func (h *SongHandler) GetSongByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	songID, ok := vars[muxVarSongID]
	if !ok || len(songID) != lenID {
		writeError(w, http.StatusBadRequest, typeMessage, "invalid song id")
		return
	}

	track, err := h.Service.GetByID(songID)
	if err != nil {
		writeError(w, http.StatusNotFound, typeMessage, err.Error())
		return
	}

	writeJSON(w, h.Logger, track)
}

func (h *SongHandler) ReportView(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	songID, ok := vars[muxVarSongID]
	if !ok || len(songID) != lenID {
		writeError(w, http.StatusBadRequest, typeMessage, "invalid song id")
		return
	}

	views, err := h.Service.AddView(songID)
	if err != nil {
		writeError(w, http.StatusNotFound, typeMessage, err.Error())
		return
	}

	writeJSON(w, h.Logger, map[string]int{"views": views})
}

func (h *SongHandler) CreateSong(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var newSong song.Song
	if err := json.NewDecoder(r.Body).Decode(&newSong); err != nil {
		h.Logger.Error("invalid json", "error", err)
		writeError(w, http.StatusBadRequest, typeError, "invalid JSON payload")
		return
	}

	var c claims.Claims
	if ok := getClaimsFromContext(w, r, &c); !ok {
		return
	}

	if err := h.Service.Create(&newSong); err != nil {
		writeError(w, http.StatusBadRequest, typeError, err.Error())
		return
	}

	if ok := writeJSON(w, h.Logger, newSong); ok {
		h.Logger.Info("new song created", "user", c.User.ID, "song", newSong.ID)
	}
}

func (h *SongHandler) UpdateSong(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	vars := mux.Vars(r)

	songID, ok := vars[muxVarSongID]
	if !ok || len(songID) != lenID {
		writeError(w, http.StatusBadRequest, typeMessage, "invalid song id")
		return
	}

	var updated song.Song
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		h.Logger.Error("invalid json", "error", err)
		writeError(w, http.StatusBadRequest, typeError, "invalid JSON payload")
		return
	}
	updated.ID = songID

	if err := h.Service.Update(&updated); err != nil {
		writeError(w, http.StatusNotFound, typeError, err.Error())
		return
	}

	if ok := writeJSON(w, h.Logger, updated); ok {
		h.Logger.Info("song updated", muxVarSongID, songID)
	}
}

func (h *SongHandler) DeleteSong(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	songID, ok := vars[muxVarSongID]
	if !ok {
		writeError(w, http.StatusBadRequest, typeMessage, "invalid song id")
		return
	}

	if err := h.Service.Delete(songID); err != nil {
		writeError(w, http.StatusNotFound, typeError, err.Error())
		return
	}

	if ok := writeJSON(w, h.Logger, map[string]string{"message": "success"}); ok {
		h.Logger.Info("song delete", muxVarSongID, songID)
	}
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, data any) bool {
	resp, err := json.Marshal(data)
	if err != nil {
		logger.Error("Failed to serialize JSON response", "error", err)
		writeError(w, http.StatusInternalServerError, typeError, "failed json marshal")
		return false
	}

	w.Header().Set("Content-Type", "application/json")

	if _, err := w.Write(resp); err != nil {
		logger.Error("Failed to write response to client", "error", err)
		return false
	}
	return true
}

func getClaimsFromContext(w http.ResponseWriter, r *http.Request, c *claims.Claims) bool {
	val, ok := r.Context().Value(claims.TokenContextKey).(*claims.Claims)
	if !ok || val == nil || val.User.ID == "" {
		writeError(w, http.StatusUnauthorized, typeMessage, "unauthorized")
		return false
	}
	*c = *val
	return true
}

func writeError(w http.ResponseWriter, status int, field, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{field: msg}); err != nil {
		return
	}
}
