package server

import (
	"fmt"
	"mime"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/ytget/ytfetch/internal/catalog"
	"github.com/ytget/ytfetch/internal/model"
	"github.com/ytget/ytfetch/internal/platform"
)

const (
	noFormatsMessage    = "no formats available"
	taskNotFoundMessage = "task not found"
)

// TaskView is the JSON form of a download task
type TaskView struct {
	ID         string     `json:"id"`
	ClientID   string     `json:"client_id"`
	URL        string     `json:"url"`
	Selection  string     `json:"selection"`
	Format     string     `json:"format"`
	Status     string     `json:"status"`
	Percent    int        `json:"percent"`
	Speed      string     `json:"speed,omitempty"`
	TotalSize  string     `json:"total_size,omitempty"`
	ETA        string     `json:"eta"`
	Title      string     `json:"title"`
	FileName   string     `json:"file_name,omitempty"`
	Error      string     `json:"error,omitempty"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}

func newTaskView(t *model.DownloadTask) TaskView {
	view := TaskView{
		ID:        t.ID,
		ClientID:  t.SessionID,
		URL:       t.URL,
		Selection: t.Choice.String(),
		Format:    t.Expression.String(),
		Status:    t.Status.String(),
		Percent:   t.Percent,
		Speed:     t.Speed,
		TotalSize: t.TotalSize,
		ETA:       t.GetETAString(),
		Title:     t.GetDisplayTitle(),
		Error:     t.LastError,
		StartedAt: t.StartedAt,
	}
	if t.OutputPath != "" {
		view.FileName = filepath.Base(t.OutputPath)
	}
	if !t.FinishedAt.IsZero() {
		finished := t.FinishedAt
		view.FinishedAt = &finished
	}
	return view
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"ffmpeg":   s.probe.Check(c.Request.Context()),
		"sessions": s.sessions.Len(),
	})
}

func (s *Server) handleInfo(c *gin.Context) {
	var req InfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, fmt.Sprintf("invalid request: %v", err))
		return
	}

	formats, err := s.downloads.GetFormats(c.Request.Context(), req.URL, req.ClientID)
	if err != nil {
		respondError(c, err)
		return
	}
	if formats.Empty() {
		c.AbortWithStatusJSON(http.StatusNotFound, ErrorResponse{Error: noFormatsMessage, Code: CodeNoFormats})
		return
	}

	info := formats.Catalog
	listing := catalog.NewListing(formats.Qualities, catalog.OrderAscending)
	c.JSON(http.StatusOK, InfoResponse{
		Title:            info.Title,
		Thumbnail:        info.Thumbnail,
		Duration:         info.Duration,
		DurationString:   info.DurationString,
		AvailableFormats: listing,
		FormatDetails:    catalog.Details(listing),
		OriginalFilename: info.OriginalFilename,
	})
}

func (s *Server) handleDownload(c *gin.Context) {
	var req DownloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if coded, ok := model.AsCoded(err); ok {
			respondError(c, coded)
			return
		}
		respondBadRequest(c, fmt.Sprintf("invalid request: %v", err))
		return
	}

	choice, err := req.Choice()
	if err != nil {
		respondError(c, err)
		return
	}

	// reject early so no directory is created for a client without a socket
	if _, ok := s.sessions.Lookup(req.ClientID); !ok {
		respondError(c, &model.NoActiveSessionError{SessionID: req.ClientID})
		return
	}

	dest, temporary, err := s.destination(req.UseCustomFolder)
	if err != nil {
		respondError(c, err)
		return
	}
	if temporary {
		defer s.workspace.ScheduleRemoval(dest, s.cfg.CleanupDelay)
	}

	task, err := s.downloads.StartDownload(c.Request.Context(), req.URL, choice, dest, req.ClientID)
	if err != nil {
		respondError(c, err)
		return
	}

	if !temporary {
		c.JSON(http.StatusOK, SavedResponse{
			Message: fmt.Sprintf("saved to the %q folder in your Downloads", filepath.Base(dest)),
			Path:    task.OutputPath,
		})
		return
	}

	s.sendFile(c, task.OutputPath)
}

// destination returns a fresh transfer directory, or the custom folder
func (s *Server) destination(custom bool) (dir string, temporary bool, err error) {
	if !custom {
		dir, err = s.workspace.NewTransferDir()
		return dir, true, err
	}

	dir, err = s.customDir(s.cfg.CustomFolderName)
	if err != nil {
		return "", false, err
	}
	if err := s.workspace.EnsureDir(dir); err != nil {
		return "", false, err
	}
	return dir, false, nil
}

// sendFile streams path from the workspace as an attachment
func (s *Server) sendFile(c *gin.Context, path string) {
	f, err := s.workspace.Fs().Open(path)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
			Error: platform.ErrNoDownloadedFile.Error(),
			Code:  CodeFileMissing,
		})
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		respondError(c, err)
		return
	}

	name := filepath.Base(path)
	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": name})
	c.DataFromReader(http.StatusOK, info.Size(), "application/octet-stream", f, map[string]string{
		"Content-Disposition": disposition,
	})
}

func (s *Server) handleListTasks(c *gin.Context) {
	tasks := s.downloads.GetAllTasks()
	c.JSON(http.StatusOK, gin.H{
		"tasks": lo.Map(tasks, func(t *model.DownloadTask, _ int) TaskView {
			return newTaskView(t)
		}),
	})
}

func (s *Server) handleGetTask(c *gin.Context) {
	task, ok := s.downloads.GetTask(c.Param("id"))
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, ErrorResponse{Error: taskNotFoundMessage, Code: CodeTaskNotFound})
		return
	}
	c.JSON(http.StatusOK, newTaskView(task))
}
