package client

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/benhsieh-dev/Youtube/internal/client/models"
	"github.com/benhsieh-dev/Youtube/internal/logging"
)

// VideoClient talks to the legacy origin that still owns video management.
type VideoClient interface {
	UploadVideo(ctx context.Context, upload models.VideoUpload, token string) (*models.Video, error)
	ListVideos(ctx context.Context) ([]models.Video, error)
	GetVideo(ctx context.Context, id int64) (*models.Video, error)
}

type VideoHTTPClient struct {
	origin *origin
	// upload has no overall timeout: a streamed file may take far longer
	// than a JSON call. Uploads are bounded by the caller's ctx only.
	upload *http.Client
}

var _ VideoClient = (*VideoHTTPClient)(nil)

func NewVideoHTTPClient(baseURL string, httpClient *http.Client, logger logging.Logger) (*VideoHTTPClient, error) {
	o, err := newOrigin("legacy", baseURL, httpClient, logger)
	if err != nil {
		return nil, err
	}
	upload := *httpClient
	upload.Timeout = 0
	return &VideoHTTPClient{origin: o, upload: &upload}, nil
}

// UploadVideo streams upload as a multipart form with the fields title,
// description and file.
func (c *VideoHTTPClient) UploadVideo(ctx context.Context, upload models.VideoUpload, token string) (*models.Video, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		pw.CloseWithError(writeUploadForm(mw, upload))
	}()

	var out models.Video
	err := c.origin.do(ctx, request{
		op:          "upload video",
		method:      http.MethodPost,
		path:        "/videos/upload",
		body:        pr,
		contentType: mw.FormDataContentType(),
		token:       token,
		client:      c.upload,
	}, &out)
	// Unblocks the writer goroutine if the request ended before the body was drained.
	_ = pr.Close()
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func writeUploadForm(mw *multipart.Writer, upload models.VideoUpload) error {
	if err := mw.WriteField("title", upload.Title); err != nil {
		return fmt.Errorf("write title field: %w", err)
	}
	if err := mw.WriteField("description", upload.Description); err != nil {
		return fmt.Errorf("write description field: %w", err)
	}

	part, err := mw.CreateFormFile("file", upload.FileName)
	if err != nil {
		return fmt.Errorf("create file part: %w", err)
	}
	if _, err := io.Copy(part, upload.Content); err != nil {
		return fmt.Errorf("copy file content: %w", err)
	}
	return mw.Close()
}

func (c *VideoHTTPClient) ListVideos(ctx context.Context) ([]models.Video, error) {
	var out []models.Video
	err := c.origin.do(ctx, request{
		op:     "list videos",
		method: http.MethodGet,
		path:   "/videos",
	}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *VideoHTTPClient) GetVideo(ctx context.Context, id int64) (*models.Video, error) {
	var out models.Video
	err := c.origin.do(ctx, request{
		op:     "get video",
		method: http.MethodGet,
		path:   "/videos/" + url.PathEscape(strconv.FormatInt(id, 10)),
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
