package services

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	intconfig "booststudio/internal/config"
	"booststudio/internal/domain"
)

// Uploader pushes raw bytes to the external media host and returns the
// public URL. No retry: a failed call fails the whole request.
type Uploader interface {
	Upload(ctx context.Context, data []byte, kind domain.MediaType) (string, error)
}

// CloudUploader talks to a Cloudinary-style signed upload endpoint:
// POST {base}/{cloud}/{image|video}/upload with a SHA-1 signature over the
// signed params + api secret.
type CloudUploader struct {
	BaseURL   string
	CloudName string
	APIKey    string
	APISecret string

	Client *http.Client
}

func NewCloudUploader(env intconfig.Env) *CloudUploader {
	return &CloudUploader{
		BaseURL:   env.CloudUploadURL,
		CloudName: env.CloudName,
		APIKey:    env.CloudAPIKey,
		APISecret: env.CloudAPISecret,
		Client:    &http.Client{Timeout: 60 * time.Second},
	}
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (u *CloudUploader) Upload(ctx context.Context, data []byte, kind domain.MediaType) (string, error) {
	folder := "images"
	if kind == domain.MediaVideo {
		folder = "videos"
	}

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	signature := u.sign("folder=" + folder + "&timestamp=" + timestamp)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("file", "upload")
	if err != nil {
		return "", domain.UploadError{Msg: "Upload failed", Err: err}
	}
	if _, err := part.Write(data); err != nil {
		return "", domain.UploadError{Msg: "Upload failed", Err: err}
	}
	_ = mw.WriteField("api_key", u.APIKey)
	_ = mw.WriteField("timestamp", timestamp)
	_ = mw.WriteField("folder", folder)
	_ = mw.WriteField("signature", signature)
	if err := mw.Close(); err != nil {
		return "", domain.UploadError{Msg: "Upload failed", Err: err}
	}

	endpoint := fmt.Sprintf("%s/%s/%s/upload", u.BaseURL, u.CloudName, string(kind))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return "", domain.UploadError{Msg: "Upload failed", Err: err}
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := u.client().Do(req)
	if err != nil {
		return "", domain.UploadError{Msg: "Upload failed", Err: err}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", domain.UploadError{Msg: "Upload failed", Err: err}
	}

	var parsed uploadResponse
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return "", domain.UploadError{Msg: "Upload failed", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := parsed.Error.Message
		if msg == "" {
			msg = "Upload failed"
		}
		return "", domain.UploadError{Msg: msg}
	}

	url := parsed.SecureURL
	if url == "" {
		url = parsed.URL
	}
	if url == "" {
		return "", domain.UploadError{Msg: "Upload failed"}
	}
	return url, nil
}

func (u *CloudUploader) sign(params string) string {
	sum := sha1.Sum([]byte(params + u.APISecret))
	return hex.EncodeToString(sum[:])
}

func (u *CloudUploader) client() *http.Client {
	if u.Client != nil {
		return u.Client
	}
	return http.DefaultClient
}
