package download

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/samber/lo"

	"github.com/ytget/ytfetch/internal/catalog"
	"github.com/ytget/ytfetch/internal/model"
	"github.com/ytget/ytfetch/internal/progress"
	"github.com/ytget/ytfetch/internal/selection"
	"github.com/ytget/ytfetch/internal/session"
)

// Formats is the result of a successful format lookup
type Formats struct {
	Catalog   *model.Catalog
	Qualities model.QualityMap
}

// Empty reports whether no quality is offered in any category
func (f *Formats) Empty() bool {
	return f.Qualities.Empty()
}

// Service handles format lookups and download operations
type Service struct {
	engine   Engine
	sessions *session.Registry
	locator  Locator
	logger   hclog.Logger

	tasks      map[string]*model.DownloadTask
	tasksMutex sync.RWMutex
	onUpdate   func(*model.DownloadTask) // callback for UI updates

	slotsMutex sync.Mutex
	slots      chan struct{} // nil means no limit
	template   string
}

var _ Downloader = (*Service)(nil)

// NewService creates a new download service
func NewService(engine Engine, sessions *session.Registry, locator Locator, logger hclog.Logger) *Service {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Service{
		engine:   engine,
		sessions: sessions,
		locator:  locator,
		logger:   logger.Named("download"),
		tasks:    make(map[string]*model.DownloadTask),
	}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.DownloadTask)) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	s.onUpdate = callback
}

// SetMaxParallelDownloads sets how many transfers may run at once
func (s *Service) SetMaxParallelDownloads(max int) {
	s.slotsMutex.Lock()
	defer s.slotsMutex.Unlock()
	if max <= 0 {
		s.slots = nil
		return
	}
	s.slots = make(chan struct{}, max)
}

// SetOutputTemplate sets the file name template used inside the destination
func (s *Service) SetOutputTemplate(template string) {
	s.slotsMutex.Lock()
	defer s.slotsMutex.Unlock()
	s.template = template
}

func (s *Service) outputTemplate() string {
	s.slotsMutex.Lock()
	defer s.slotsMutex.Unlock()
	return s.template
}

// GetFormats fetches the catalog for url and normalizes it. When sessionID
// names a live session the quality map is kept on it for later validation.
func (s *Service) GetFormats(ctx context.Context, url, sessionID string) (*Formats, error) {
	type fetchResult struct {
		catalog *model.Catalog
		err     error
	}

	done := make(chan fetchResult, 1)
	go func() {
		c, err := s.engine.FetchCatalog(ctx, url)
		done <- fetchResult{catalog: c, err: err}
	}()

	var res fetchResult
	select {
	case res = <-done:
	case <-ctx.Done():
		res.err = ctx.Err()
	}
	if res.err != nil {
		s.logger.Warn("format lookup failed", "url", url, "error", res.err)
		return nil, &model.InfoFetchError{URL: url, Err: res.err}
	}
	if res.catalog == nil {
		return nil, &model.InfoFetchError{URL: url, Err: errors.New("engine returned no metadata")}
	}

	formats := &Formats{
		Catalog:   res.catalog,
		Qualities: catalog.Normalize(res.catalog.Descriptors),
	}

	if sessionID != "" {
		if ch, ok := s.sessions.Lookup(sessionID); ok {
			ch.SetQualityMap(formats.Qualities)
		}
	}

	s.logger.Info("formats resolved", "url", url, "title", res.catalog.Title,
		"streams", len(res.catalog.Descriptors), "empty", formats.Empty())
	return formats, nil
}

// StartDownload runs one transfer to completion, streaming progress to the
// session's channel. It returns once the terminal event has been handed over.
func (s *Service) StartDownload(ctx context.Context, url string, choice model.SelectionChoice, dest, sessionID string) (*model.DownloadTask, error) {
	expr, err := selection.Build(choice)
	if err != nil {
		return nil, err
	}

	ch, ok := s.sessions.Lookup(sessionID)
	if !ok {
		return nil, &model.NoActiveSessionError{SessionID: sessionID}
	}

	if qm := ch.QualityMap(); qm != nil {
		if err := selection.Validate(choice, qm); err != nil {
			return nil, err
		}
	}

	task := &model.DownloadTask{
		ID:          generateTaskID(),
		SessionID:   sessionID,
		URL:         url,
		Choice:      choice,
		Expression:  expr,
		Destination: dest,
		Status:      model.TaskStatusPending,
		ETASec:      -1,
		StartedAt:   time.Now(),
	}

	s.tasksMutex.Lock()
	s.tasks[task.ID] = task
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)

	logger := s.logger.With("task_id", task.ID, "session_id", sessionID)

	release, err := s.acquireSlot(ctx)
	if err != nil {
		return s.fail(ctx, task, nil, ch, err, logger)
	}
	defer release()

	s.setStatus(task, model.TaskStatusStarting)

	relay := progress.NewRelay(progress.SinkFunc(func(ev model.ProgressEvent) error {
		s.applyProgress(task, ev)
		return ch.Deliver(ev)
	}), logger)

	type transferResult struct {
		result *model.TransferResult
		err    error
	}

	req := model.TransferRequest{
		URL:            url,
		Expression:     expr,
		Destination:    dest,
		OutputTemplate: s.outputTemplate(),
	}

	done := make(chan transferResult, 1)
	go func() {
		res, err := s.engine.Transfer(ctx, req, relay.Hook)
		done <- transferResult{result: res, err: err}
	}()

	logger.Info("transfer started", "url", url, "choice", choice.String(), "format", expr)
	res := <-done
	if res.err != nil {
		return s.fail(ctx, task, relay, ch, res.err, logger)
	}

	hint := ""
	if res.result != nil {
		hint = res.result.Filename
		if res.result.Title != "" {
			s.tasksMutex.Lock()
			task.Title = res.result.Title
			s.tasksMutex.Unlock()
		}
	}

	path, err := s.locator.Locate(dest, hint)
	if err != nil {
		return s.fail(ctx, task, relay, ch, err, logger)
	}

	deliverErr := relay.Close(model.Finished(filepath.Base(path)))
	if deliverErr != nil {
		logger.Warn("finished event not delivered, keeping session", "error", deliverErr)
	}

	s.tasksMutex.Lock()
	task.Status = model.TaskStatusCompleted
	task.Progress = 1.0
	task.Percent = 100
	task.ETASec = -1
	task.OutputPath = path
	task.FinishedAt = time.Now()
	snapshot := task.Snapshot()
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)

	if deliverErr == nil {
		s.sessions.Unregister(sessionID)
	}

	logger.Info("transfer completed", "path", path, "events", relay.Delivered(),
		"took", snapshot.FinishedAt.Sub(snapshot.StartedAt))
	return snapshot, nil
}

// fail records err on the task, emits the error event and wraps err
func (s *Service) fail(ctx context.Context, task *model.DownloadTask, relay *progress.Relay, ch *session.Channel, err error, logger hclog.Logger) (*model.DownloadTask, error) {
	terr := &model.TransferError{URL: task.URL, Err: err}
	if selection.NeedsMuxer(task.Choice.Category) {
		terr.Hint = model.MuxerHint
	}

	event := model.Failed(terr.Error())
	var deliverErr error
	if relay != nil {
		deliverErr = relay.Close(event)
	} else {
		deliverErr = ch.Deliver(event)
	}
	if deliverErr != nil {
		logger.Warn("error event not delivered", "error", deliverErr)
	}

	status := model.TaskStatusError
	if ctx.Err() != nil {
		status = model.TaskStatusStopped
	}

	s.tasksMutex.Lock()
	task.Status = status
	task.LastError = terr.Error()
	task.FinishedAt = time.Now()
	snapshot := task.Snapshot()
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)

	args := []any{"url", task.URL, "status", status, "error", err}
	if relay != nil {
		args = append(args, "engine_status", relay.EngineStatus())
	}
	logger.Error("transfer failed", args...)
	return snapshot, terr
}

// acquireSlot waits for a free transfer slot
func (s *Service) acquireSlot(ctx context.Context) (func(), error) {
	s.slotsMutex.Lock()
	slots := s.slots
	s.slotsMutex.Unlock()

	if slots == nil {
		return func() {}, nil
	}
	select {
	case slots <- struct{}{}:
		return func() { <-slots }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// applyProgress mirrors a delivered event onto the task
func (s *Service) applyProgress(task *model.DownloadTask, ev model.ProgressEvent) {
	if ev.Kind != model.EventDownloading {
		return
	}
	s.tasksMutex.Lock()
	if task.Status.IsFinished() {
		s.tasksMutex.Unlock()
		return
	}
	task.ApplyProgress(ev)
	task.Speed = progress.FormatSpeed(ev.Speed)
	task.TotalSize = progress.FormatTotalSize(ev.BytesTotal)
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)
}

func (s *Service) setStatus(task *model.DownloadTask, status model.TaskStatus) {
	s.tasksMutex.Lock()
	task.Status = status
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)
}

// GetTask returns a copy of the task with id
func (s *Service) GetTask(id string) (*model.DownloadTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[id]
	if !exists {
		return nil, false
	}
	return task.Snapshot(), true
}

// GetAllTasks returns copies of all tasks, oldest first
func (s *Service) GetAllTasks() []*model.DownloadTask {
	s.tasksMutex.RLock()
	tasks := lo.MapToSlice(s.tasks, func(_ string, task *model.DownloadTask) *model.DownloadTask {
		return task.Snapshot()
	})
	s.tasksMutex.RUnlock()

	slices.SortFunc(tasks, func(a, b *model.DownloadTask) int {
		return a.StartedAt.Compare(b.StartedAt)
	})
	return tasks
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *model.DownloadTask) {
	s.tasksMutex.RLock()
	callback := s.onUpdate
	snapshot := task.Snapshot()
	s.tasksMutex.RUnlock()

	if callback != nil {
		callback(snapshot)
	}
}

// generateTaskID generates a unique task ID
func generateTaskID() string {
	return "task-" + uuid.NewString()
}
