// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Solovyev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/solovyev/go-vault-cipher/models"
)

// HTTPClientConfig configures the resty-backed [ApiClient].
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpApiClient struct {
	client *resty.Client
	blob   *cloudBlobUploader

	mu    sync.RWMutex
	token string
}

// NewHTTPApiClient constructs the production [ApiClient] against the
// vault server at cfg.BaseURL.
func NewHTTPApiClient(cfg HTTPClientConfig) ApiClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpApiClient{
		client: cli,
		blob:   newCloudBlobUploader(cfg.Timeout),
	}
}

// SetToken installs the bearer token used on every subsequent request.
func (h *httpApiClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token returns the current bearer token.
func (h *httpApiClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// AccountID extracts the account id from the bearer token's subject claim
// without verifying the signature; verification is the server's job.
func (h *httpApiClient) AccountID() (string, error) {
	token, _, err := jwt.NewParser().ParseUnverified(h.Token(), jwt.MapClaims{})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}
	return claims.GetSubject()
}

func (h *httpApiClient) PostCipherAttachment(ctx context.Context, cipherID string, req models.AttachmentRequest) (*models.AttachmentUploadDataResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/ciphers/" + cipherID + "/attachment/v2")
	if err != nil {
		return nil, fmt.Errorf("register attachment request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var upload models.AttachmentUploadDataResponse
	if err = json.Unmarshal(resp.Body(), &upload); err != nil {
		return nil, fmt.Errorf("decode attachment upload response: %w", err)
	}
	return &upload, nil
}

func (h *httpApiClient) PostAttachmentFile(ctx context.Context, cipherID, attachmentID string, encKey, encFileName string, encData []byte) error {
	resp, err := h.authedRequest(ctx).
		SetMultipartFormData(map[string]string{"key": encKey}).
		SetMultipartField("data", encFileName, "application/octet-stream", bytes.NewReader(encData)).
		Post("/ciphers/" + cipherID + "/attachment/" + attachmentID)
	if err != nil {
		return fmt.Errorf("attachment file request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpApiClient) RenewAttachmentUploadURL(ctx context.Context, cipherID, attachmentID string) (string, error) {
	resp, err := h.authedRequest(ctx).
		Get("/ciphers/" + cipherID + "/attachment/" + attachmentID + "/renew")
	if err != nil {
		return "", fmt.Errorf("renew upload url request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var renewed models.AttachmentUploadURLResponse
	if err = json.Unmarshal(resp.Body(), &renewed); err != nil {
		return "", fmt.Errorf("decode renewed upload url: %w", err)
	}
	return renewed.URL, nil
}

func (h *httpApiClient) UploadBlob(ctx context.Context, url string, encData []byte, renew func(ctx context.Context) (string, error)) error {
	return h.blob.Upload(ctx, url, encData, renew)
}

func (h *httpApiClient) DeleteCipherAttachment(ctx context.Context, cipherID, attachmentID string) error {
	resp, err := h.authedRequest(ctx).
		Delete("/ciphers/" + cipherID + "/attachment/" + attachmentID)
	if err != nil {
		return fmt.Errorf("delete attachment request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpApiClient) DeleteCipherAttachmentAdmin(ctx context.Context, cipherID, attachmentID string) error {
	resp, err := h.authedRequest(ctx).
		Delete("/ciphers/" + cipherID + "/attachment/" + attachmentID + "/admin")
	if err != nil {
		return fmt.Errorf("delete attachment admin request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpApiClient) GetAttachmentData(ctx context.Context, cipherID, attachmentID string) (*models.AttachmentResponse, error) {
	resp, err := h.authedRequest(ctx).
		Get("/ciphers/" + cipherID + "/attachment/" + attachmentID)
	if err != nil {
		return nil, fmt.Errorf("attachment data request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var attachment models.AttachmentResponse
	if err = json.Unmarshal(resp.Body(), &attachment); err != nil {
		return nil, fmt.Errorf("decode attachment data: %w", err)
	}
	return &attachment, nil
}

func (h *httpApiClient) PutShareCipher(ctx context.Context, cipherID string, req models.CipherShareRequest) (*models.Cipher, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put("/ciphers/" + cipherID + "/share")
	if err != nil {
		return nil, fmt.Errorf("share cipher request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var cipher models.Cipher
	if err = json.Unmarshal(resp.Body(), &cipher); err != nil {
		return nil, fmt.Errorf("decode shared cipher: %w", err)
	}
	return &cipher, nil
}

func (h *httpApiClient) PutShareCiphers(ctx context.Context, req models.CipherBulkShareRequest) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put("/ciphers/share")
	if err != nil {
		return fmt.Errorf("bulk share request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpApiClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// mapHTTPError converts a non-2xx response into an error carrying the
// single human-readable message from the server's error payload.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	message := ""
	var payload models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &payload); err == nil {
		message = payload.GetSingleMessage()
	}
	if message == "" {
		message = strings.TrimSpace(string(resp.Body()))
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), message)
}
