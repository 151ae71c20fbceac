package uploads

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

const cloudinaryBaseURL = "https://api.cloudinary.com/v1_1"

// CloudinaryUploader performs unsigned uploads against the Cloudinary image
// API using a fixed upload preset. Only the boolean success of the response
// is checked; a non-2xx status surfaces as an opaque upload failure.
type CloudinaryUploader struct {
	baseURL      string
	cloudName    string
	uploadPreset string
	client       *http.Client
}

// NewCloudinaryUploader creates an uploader for the given cloud and preset.
// baseURL overrides the Cloudinary endpoint; empty means production.
func NewCloudinaryUploader(baseURL, cloudName, uploadPreset string) *CloudinaryUploader {
	if baseURL == "" {
		baseURL = cloudinaryBaseURL
	}
	return &CloudinaryUploader{
		baseURL:      baseURL,
		cloudName:    cloudName,
		uploadPreset: uploadPreset,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type cloudinaryUploadResult struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
}

// Upload posts the file as multipart form data and returns the secure URL.
func (u *CloudinaryUploader) Upload(ctx context.Context, file File) (string, error) {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)

	part, err := form.CreateFormFile("file", file.Name)
	if err != nil {
		return "", fmt.Errorf("build upload form: %w", err)
	}
	if _, err := part.Write(file.Data); err != nil {
		return "", fmt.Errorf("build upload form: %w", err)
	}
	if err := form.WriteField("upload_preset", u.uploadPreset); err != nil {
		return "", fmt.Errorf("build upload form: %w", err)
	}
	if err := form.Close(); err != nil {
		return "", fmt.Errorf("build upload form: %w", err)
	}

	reqURL := fmt.Sprintf("%s/%s/image/upload", u.baseURL, u.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, &body)
	if err != nil {
		return "", fmt.Errorf("create upload request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := u.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("upload failed with status %d", resp.StatusCode)
	}

	var result cloudinaryUploadResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("upload response missing secure_url")
	}
	return result.SecureURL, nil
}
