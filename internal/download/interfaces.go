package download

import (
	"context"

	"github.com/ytget/ytfetch/internal/model"
)

// Engine is the media extraction tool the service drives.
type Engine interface {
	// FetchCatalog resolves url and lists its downloadable streams.
	FetchCatalog(ctx context.Context, url string) (*model.Catalog, error)

	// Transfer downloads with the request's selector, calling onProgress from
	// the engine's own goroutine.
	Transfer(ctx context.Context, req model.TransferRequest, onProgress func(model.RawProgress)) (*model.TransferResult, error)
}

// Locator finds the file a finished transfer produced.
type Locator interface {
	Locate(dir, hint string) (string, error)
}

// Downloader defines the interface front-ends use.
type Downloader interface {
	SetUpdateCallback(func(*model.DownloadTask))
	GetFormats(ctx context.Context, url, sessionID string) (*Formats, error)
	StartDownload(ctx context.Context, url string, choice model.SelectionChoice, dest, sessionID string) (*model.DownloadTask, error)
	GetTask(id string) (*model.DownloadTask, bool)
	GetAllTasks() []*model.DownloadTask

	// SetMaxParallelDownloads sets how many transfers may run at once, 0 means no limit
	SetMaxParallelDownloads(max int)

	// SetOutputTemplate sets the yt-dlp output template, empty means the default
	SetOutputTemplate(template string)
}
