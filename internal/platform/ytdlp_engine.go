package platform

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/lrstanley/go-ytdlp"

	"github.com/ytget/ytfetch/internal/model"
)

// Timeout and polling constants
const (
	DefaultParseTimeout     = 60 * time.Second
	DefaultProgressInterval = 500 * time.Millisecond
)

// Default values
const (
	DefaultDuration = "Unknown"
	DefaultTitle    = "video"
)

// Time formatting constants
const (
	SecondsPerHour   = 3600
	SecondsPerMinute = 60
	TimeFormat       = "%02d"
)

// engineErrorPrefix starts the lines yt-dlp writes for fatal errors
const engineErrorPrefix = "ERROR:"

// filenameReplacer keeps a title usable as a single path element
var filenameReplacer = strings.NewReplacer("/", "_", "\\", "_", "\x00", "")

// YtdlpEngine runs yt-dlp through go-ytdlp for catalog fetches and transfers
type YtdlpEngine struct {
	mu               sync.RWMutex
	executable       string
	timeout          time.Duration
	progressInterval time.Duration
	logger           hclog.Logger
}

// NewYtdlpEngine creates an engine using yt-dlp from PATH unless executable is set
func NewYtdlpEngine(executable string, logger hclog.Logger) *YtdlpEngine {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &YtdlpEngine{
		executable:       executable,
		timeout:          DefaultParseTimeout,
		progressInterval: DefaultProgressInterval,
		logger:           logger.Named("ytdlp"),
	}
}

// SetTimeout sets the timeout for catalog fetches
func (y *YtdlpEngine) SetTimeout(timeout time.Duration) {
	y.timeout = timeout
}

// SetExecutable switches the yt-dlp binary used by later commands,
// empty means yt-dlp from PATH
func (y *YtdlpEngine) SetExecutable(executable string) {
	y.mu.Lock()
	defer y.mu.Unlock()
	y.executable = executable
}

// Executable returns the configured yt-dlp binary
func (y *YtdlpEngine) Executable() string {
	y.mu.RLock()
	defer y.mu.RUnlock()
	return y.executable
}

func (y *YtdlpEngine) command() *ytdlp.Command {
	cmd := ytdlp.New()
	if executable := y.Executable(); executable != "" {
		cmd.SetExecutable(executable)
	}
	return cmd
}

// FetchCatalog asks yt-dlp for the media metadata and its format list
func (y *YtdlpEngine) FetchCatalog(ctx context.Context, url string) (*model.Catalog, error) {
	if y.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, y.timeout)
		defer cancel()
	}

	started := time.Now()
	result, err := y.command().
		DumpSingleJSON().
		SkipDownload().
		NoPlaylist().
		Run(ctx, url)
	if err != nil {
		return nil, engineError(result, err)
	}

	catalog, err := ParseCatalogJSON([]byte(result.Stdout))
	if err != nil {
		return nil, err
	}

	y.logger.Debug("catalog fetched", "url", url, "formats", len(catalog.Descriptors), "took", time.Since(started))
	return catalog, nil
}

// Transfer downloads req.URL into req.Destination, reporting progress to onProgress
func (y *YtdlpEngine) Transfer(ctx context.Context, req model.TransferRequest, onProgress func(model.RawProgress)) (*model.TransferResult, error) {
	var (
		mu       sync.Mutex
		filename string
		title    string
	)

	cmd := y.command().
		NoPlaylist().
		Format(req.Expression.String()).
		Output(filepath.Join(req.Destination, req.Template()))

	cmd.ProgressFunc(y.progressInterval, func(update ytdlp.ProgressUpdate) {
		raw := toRawProgress(&update)

		mu.Lock()
		if raw.Filename != "" {
			filename = raw.Filename
		}
		if raw.Title != "" {
			title = raw.Title
		}
		mu.Unlock()

		if onProgress != nil {
			onProgress(raw)
		}
	})

	y.logger.Debug("transfer starting", "url", req.URL, "format", req.Expression, "dest", req.Destination)
	result, err := cmd.Run(ctx, req.URL)
	if err != nil {
		return nil, engineError(result, err)
	}

	mu.Lock()
	defer mu.Unlock()
	return &model.TransferResult{Filename: filename, Title: title}, nil
}

// toRawProgress maps a go-ytdlp update to the engine-neutral payload
func toRawProgress(update *ytdlp.ProgressUpdate) model.RawProgress {
	raw := model.RawProgress{
		Status:          string(update.Status),
		DownloadedBytes: int64(update.DownloadedBytes),
		TotalBytes:      int64(update.TotalBytes),
		Filename:        update.Filename,
	}

	if !update.Started.IsZero() {
		if elapsed := time.Since(update.Started).Seconds(); elapsed > 0 && raw.DownloadedBytes > 0 {
			speed := float64(raw.DownloadedBytes) / elapsed
			raw.Speed = &speed
		}
	}

	if eta := update.ETA(); eta > 0 {
		secs := int(eta.Seconds())
		raw.ETA = &secs
	}

	if update.Info != nil && update.Info.Title != nil {
		raw.Title = *update.Info.Title
	}

	return raw
}

// engineError folds yt-dlp's own error line into err
func engineError(result *ytdlp.Result, err error) error {
	if result == nil {
		return err
	}
	if line := lastErrorLine(result.Stderr); line != "" {
		return fmt.Errorf("%s: %w", line, err)
	}
	return err
}

func lastErrorLine(stderr string) string {
	var last string
	scanner := bufio.NewScanner(strings.NewReader(stderr))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, engineErrorPrefix) {
			last = strings.TrimSpace(strings.TrimPrefix(line, engineErrorPrefix))
		}
	}
	return last
}

// ytdlpFormat is one entry of "formats" in yt-dlp's JSON
type ytdlpFormat struct {
	FormatID       string   `json:"format_id"`
	Ext            string   `json:"ext"`
	VCodec         *string  `json:"vcodec"`
	ACodec         *string  `json:"acodec"`
	Height         *float64 `json:"height"`
	Resolution     string   `json:"resolution"`
	FormatNote     string   `json:"format_note"`
	ABR            *float64 `json:"abr"`
	FileSize       *float64 `json:"filesize"`
	FileSizeApprox *float64 `json:"filesize_approx"`
}

// ytdlpInfo is the subset of --dump-single-json output we read
type ytdlpInfo struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	Thumbnail      string        `json:"thumbnail"`
	Duration       *float64      `json:"duration"`
	DurationString string        `json:"duration_string"`
	Ext            string        `json:"ext"`
	Type           string        `json:"_type"`
	Formats        []ytdlpFormat `json:"formats"`
}

// ParseCatalogJSON decodes yt-dlp's single-JSON dump into a Catalog
func ParseCatalogJSON(data []byte) (*model.Catalog, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errors.New("yt-dlp returned no metadata")
	}

	var info ytdlpInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("failed to decode yt-dlp output: %w", err)
	}
	if info.Type == "playlist" {
		return nil, errors.New("playlists are not supported, paste a single video link")
	}

	catalog := &model.Catalog{
		ID:             info.ID,
		Title:          info.Title,
		Thumbnail:      info.Thumbnail,
		DurationString: info.DurationString,
		Extension:      info.Ext,
		Descriptors:    make([]model.StreamDescriptor, 0, len(info.Formats)),
	}

	if info.Duration != nil {
		catalog.Duration = *info.Duration
		if catalog.DurationString == "" {
			catalog.DurationString = formatDuration(int(*info.Duration))
		}
	}
	if catalog.DurationString == "" {
		catalog.DurationString = DefaultDuration
	}
	catalog.OriginalFilename = originalFilename(info.Title, info.Ext)

	for _, f := range info.Formats {
		catalog.Descriptors = append(catalog.Descriptors, toDescriptor(f))
	}

	return catalog, nil
}

func toDescriptor(f ytdlpFormat) model.StreamDescriptor {
	d := model.StreamDescriptor{
		FormatID:       f.FormatID,
		Extension:      f.Ext,
		Resolution:     f.Resolution,
		FormatNote:     f.FormatNote,
		AverageBitrate: f.ABR,
	}
	if f.VCodec != nil {
		d.VideoCodec = *f.VCodec
	}
	if f.ACodec != nil {
		d.AudioCodec = *f.ACodec
	}
	if f.Height != nil {
		h := int(*f.Height)
		d.Height = &h
	}
	switch {
	case f.FileSize != nil:
		d.FileSize = int64(*f.FileSize)
	case f.FileSizeApprox != nil:
		d.FileSize = int64(*f.FileSizeApprox)
	}
	return d
}

// originalFilename mirrors the default output template for display
func originalFilename(title, ext string) string {
	name := strings.TrimSpace(filenameReplacer.Replace(title))
	if name == "" {
		name = DefaultTitle
	}
	if ext == "" {
		return name
	}
	return name + "." + ext
}

// formatDuration formats seconds into HH:MM:SS format
func formatDuration(seconds int) string {
	hours := seconds / SecondsPerHour
	minutes := (seconds % SecondsPerHour) / SecondsPerMinute
	secs := seconds % SecondsPerMinute
	if hours > 0 {
		return fmt.Sprintf(TimeFormat+":"+TimeFormat+":"+TimeFormat, hours, minutes, secs)
	}
	return fmt.Sprintf(TimeFormat+":"+TimeFormat, minutes, secs)
}
