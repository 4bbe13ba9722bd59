// Package muxer probes for the ffmpeg executable yt-dlp needs to merge
// separately downloaded video and audio tracks.
package muxer
