package models

import "io"

// VideoStatus mirrors the processing state reported by the video backend.
type VideoStatus string

const (
	VideoStatusProcessing VideoStatus = "PROCESSING"
	VideoStatusPublished  VideoStatus = "PUBLISHED"
	VideoStatusPrivate    VideoStatus = "PRIVATE"
	VideoStatusDeleted    VideoStatus = "DELETED"
)

// Video is a catalogue entry served by the legacy video backend.
type Video struct {
	ID              int64       `json:"id"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	FilePath        string      `json:"filePath"`
	ThumbnailURL    string      `json:"thumbnailUrl"`
	DurationSeconds int         `json:"durationSeconds"`
	FileSize        int64       `json:"fileSize"`
	ViewCount       int64       `json:"viewCount"`
	LikeCount       int64       `json:"likeCount"`
	DislikeCount    int64       `json:"dislikeCount"`
	Status          VideoStatus `json:"status"`
	CreatedAt       string      `json:"createdAt,omitempty"`
	UpdatedAt       string      `json:"updatedAt,omitempty"`
}

// VideoUpload describes a multipart upload. Content is streamed, not buffered.
type VideoUpload struct {
	Title       string
	Description string
	FileName    string
	Content     io.Reader
}
