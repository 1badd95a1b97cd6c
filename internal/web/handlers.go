package web

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/fr4nk3nst1ner/jobboard/internal/board"
	"github.com/fr4nk3nst1ner/jobboard/internal/models"
	"github.com/fr4nk3nst1ner/jobboard/internal/render"
)

// multipart form overhead allowed on top of the file cap
const formOverhead = 1 << 20

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderBoard(w, s.sessions.boardFor(w, r))
}

func (s *Server) renderBoard(w http.ResponseWriter, b *board.Board) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.html.Render(w, render.Project(b.Snapshot())); err != nil {
		s.logger.Error().Err(err).Msg("Failed to render board")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func seeBoard(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// uploadSource adapts a multipart file part to a board.FileSource
type uploadSource struct {
	header *multipart.FileHeader
}

func (u uploadSource) Name() string { return u.header.Filename }

func (u uploadSource) Open() (io.ReadCloser, error) { return u.header.Open() }

func (u uploadSource) Size() int64 { return u.header.Size }

// failedUpload is a source whose request body could not be parsed
type failedUpload struct {
	err error
}

func (f failedUpload) Name() string { return "upload" }

func (f failedUpload) Open() (io.ReadCloser, error) { return nil, f.err }

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	b := s.sessions.boardFor(w, r)

	if max := s.cfg.Board.MaxFileBytes; max > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, max+formOverhead)
	}

	var src board.FileSource
	if err := r.ParseMultipartForm(formOverhead); err != nil {
		src = failedUpload{err: err}
	} else if _, header, err := r.FormFile("file"); err == nil {
		src = uploadSource{header: header}
	} else if !errors.Is(err, http.ErrMissingFile) {
		src = failedUpload{err: err}
	}

	// Load failures are shown inline on the board
	_ = b.Ingest(r.Context(), src)
	if r.MultipartForm != nil {
		r.MultipartForm.RemoveAll()
	}
	seeBoard(w, r)
}

func (s *Server) handleFilters(w http.ResponseWriter, r *http.Request) {
	b := s.sessions.boardFor(w, r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	for _, axis := range board.Axes {
		if err := b.SetFilter(axis, r.PostFormValue(string(axis))); err != nil {
			s.logger.Warn().Err(err).Str("axis", string(axis)).Msg("Ignoring stale filter value")
		}
	}
	b.SetSort(board.ParseSortMode(r.PostFormValue("sort")))
	seeBoard(w, r)
}

func (s *Server) handleJob(w http.ResponseWriter, r *http.Request) {
	b := s.sessions.boardFor(w, r)

	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := b.SelectJob(index); err != nil {
		http.NotFound(w, r)
		return
	}
	s.renderBoard(w, b)
}

func (s *Server) handleBack(w http.ResponseWriter, r *http.Request) {
	s.sessions.boardFor(w, r).Back()
	seeBoard(w, r)
}

func (s *Server) handleDismiss(w http.ResponseWriter, r *http.Request) {
	s.sessions.boardFor(w, r).DismissError()
	seeBoard(w, r)
}

// apiResponse is the JSON form of a session's board
type apiResponse struct {
	Source    string             `json:"source"`
	View      string             `json:"view"`
	Total     int                `json:"total"`
	Jobs      []models.JobRecord `json:"jobs"`
	Options   board.Options      `json:"options"`
	Selection board.Selection    `json:"selection"`
	Error     string             `json:"error,omitempty"`
}

func (s *Server) handleAPIJobs(w http.ResponseWriter, r *http.Request) {
	snap := s.sessions.boardFor(w, r).Snapshot()

	response := apiResponse{
		Source:    snap.Source,
		View:      snap.View.String(),
		Total:     snap.Total,
		Jobs:      snap.Visible,
		Options:   snap.Options,
		Selection: snap.Selection,
	}
	if snap.Err != nil {
		response.Error = snap.Err.Message()
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to write API response")
	}
}
