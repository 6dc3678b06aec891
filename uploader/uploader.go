package uploader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"dppify/logger"
	"dppify/types"

	"go.uber.org/zap"
)

const DefaultEndpoint = "https://tmpfiles.org/api/v1/upload"

// uploadResponse is the shape tmpfiles.org answers with.
type uploadResponse struct {
	Data struct {
		URL string `json:"url"`
	} `json:"data"`
}

// Uploader posts a local PDF to the public file host and returns a
// direct-download URL. The local file is removed after the upload
// attempt, whether it succeeded or not.
type Uploader struct {
	endpoint string
	client   *http.Client
}

func New() *Uploader {
	return NewWithEndpoint(DefaultEndpoint)
}

func NewWithEndpoint(endpoint string) *Uploader {
	return &Uploader{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (u *Uploader) Upload(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		removeLocal(filePath)
		return "", types.NewUploadError("failed to read the generated file", err)
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filepath.Base(filePath))
	if err != nil {
		removeLocal(filePath)
		return "", types.NewUploadError("failed to build the upload request", err)
	}
	if _, err := part.Write(data); err != nil {
		removeLocal(filePath)
		return "", types.NewUploadError("failed to build the upload request", err)
	}
	if err := writer.Close(); err != nil {
		removeLocal(filePath)
		return "", types.NewUploadError("failed to build the upload request", err)
	}

	resp, err := u.client.Post(u.endpoint, writer.FormDataContentType(), &body)
	if err != nil {
		removeLocal(filePath)
		return "", types.NewUploadError("upload request to the file host failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		removeLocal(filePath)
		return "", types.NewUploadError(
			fmt.Sprintf("file host returned status %d", resp.StatusCode), nil)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		removeLocal(filePath)
		return "", types.NewUploadError("failed to read the file host response", err)
	}

	var parsed uploadResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil || parsed.Data.URL == "" {
		removeLocal(filePath)
		return "", types.NewUploadError("unexpected response shape from the file host", err)
	}

	if err := os.Remove(filePath); err != nil {
		return "", types.NewUploadError("failed to remove the local file after upload", err)
	}

	// tmpfiles serves the raw file on the /dl/ path variant.
	return strings.Replace(parsed.Data.URL, "tmpfiles.org", "tmpfiles.org/dl", 1), nil
}

func removeLocal(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logger.Get().Warn("failed to remove local file", zap.String("path", path), zap.Error(err))
	}
}
