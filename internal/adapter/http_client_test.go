package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solovyev/go-vault-cipher/models"
)

func newTestClient(t *testing.T, router http.Handler) *httpApiClient {
	t.Helper()
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	cli := NewHTTPApiClient(HTTPClientConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}).(*httpApiClient)
	cli.SetToken("test-token")
	return cli
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── Attachment endpoints ──────────────────────────────────────────────────────

// TestPostCipherAttachment verifies path, bearer auth, request payload and
// response decoding for attachment registration.
func TestPostCipherAttachment(t *testing.T) {
	router := chi.NewRouter()
	router.Post("/ciphers/{cipherID}/attachment/v2", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "cipher-1", chi.URLParam(r, "cipherID"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var req models.AttachmentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "2.a|b|c", req.Key)
		assert.Equal(t, int64(1024), req.FileSize)
		assert.True(t, req.AdminRequest)

		writeJSON(t, w, http.StatusOK, models.AttachmentUploadDataResponse{
			AttachmentID:   "att-1",
			URL:            "https://blob.example/presigned",
			FileUploadType: models.FileUploadCloudBlob,
		})
	})

	cli := newTestClient(t, router)
	resp, err := cli.PostCipherAttachment(context.Background(), "cipher-1", models.AttachmentRequest{
		Key:          "2.a|b|c",
		FileName:     "2.n|a|m",
		FileSize:     1024,
		AdminRequest: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "att-1", resp.AttachmentID)
	assert.Equal(t, "https://blob.example/presigned", resp.URL)
	assert.Equal(t, models.FileUploadCloudBlob, resp.FileUploadType)
}

// TestPostAttachmentFile verifies the multipart body of the through-server
// upload: a "key" form part and a "data" file part named with the
// encrypted file name.
func TestPostAttachmentFile(t *testing.T) {
	payload := []byte{0x02, 0xDE, 0xAD, 0xBE, 0xEF}

	router := chi.NewRouter()
	router.Post("/ciphers/{cipherID}/attachment/{attachmentID}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "att-1", chi.URLParam(r, "attachmentID"))
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "2.k|e|y", r.FormValue("key"))

		file, header, err := r.FormFile("data")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "2.f|n|m", header.Filename)
		assert.Equal(t, "application/octet-stream", header.Header.Get("Content-Type"))

		body, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, payload, body)

		w.WriteHeader(http.StatusOK)
	})

	cli := newTestClient(t, router)
	err := cli.PostAttachmentFile(context.Background(), "cipher-1", "att-1", "2.k|e|y", "2.f|n|m", payload)
	require.NoError(t, err)
}

// TestRenewAttachmentUploadURL verifies the renewal endpoint.
func TestRenewAttachmentUploadURL(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/ciphers/{cipherID}/attachment/{attachmentID}/renew", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.AttachmentUploadURLResponse{URL: "https://blob.example/fresh"})
	})

	cli := newTestClient(t, router)
	url, err := cli.RenewAttachmentUploadURL(context.Background(), "cipher-1", "att-1")
	require.NoError(t, err)
	assert.Equal(t, "https://blob.example/fresh", url)
}

// TestDeleteCipherAttachment verifies both delete variants hit their own
// routes.
func TestDeleteCipherAttachment(t *testing.T) {
	var gotPath string
	router := chi.NewRouter()
	router.Delete("/ciphers/{cipherID}/attachment/{attachmentID}", func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	})
	router.Delete("/ciphers/{cipherID}/attachment/{attachmentID}/admin", func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	})

	cli := newTestClient(t, router)

	require.NoError(t, cli.DeleteCipherAttachment(context.Background(), "cipher-1", "att-1"))
	assert.Equal(t, "/ciphers/cipher-1/attachment/att-1", gotPath)

	require.NoError(t, cli.DeleteCipherAttachmentAdmin(context.Background(), "cipher-1", "att-1"))
	assert.Equal(t, "/ciphers/cipher-1/attachment/att-1/admin", gotPath)
}

// TestGetAttachmentData verifies download-metadata decoding, including the
// string-encoded size.
func TestGetAttachmentData(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/ciphers/{cipherID}/attachment/{attachmentID}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "att-1",
			"url": "https://blob.example/download",
			"size": "2048",
			"fileName": "2.f|n|m",
			"key": "2.k|e|y"
		}`))
	})

	cli := newTestClient(t, router)
	att, err := cli.GetAttachmentData(context.Background(), "cipher-1", "att-1")
	require.NoError(t, err)
	assert.Equal(t, "att-1", att.ID)
	assert.Equal(t, int64(2048), att.Size)
	assert.Equal(t, "2.k|e|y", att.Key)
}

// ── Share endpoints ───────────────────────────────────────────────────────────

// TestPutShareCipher verifies the single-item share round trip.
func TestPutShareCipher(t *testing.T) {
	router := chi.NewRouter()
	router.Put("/ciphers/{cipherID}/share", func(w http.ResponseWriter, r *http.Request) {
		var req models.CipherShareRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"col-1"}, req.CollectionIDs)
		require.NotNil(t, req.Cipher)

		req.Cipher.OrganizationID = "org-1"
		writeJSON(t, w, http.StatusOK, req.Cipher)
	})

	cli := newTestClient(t, router)
	shared, err := cli.PutShareCipher(context.Background(), "cipher-1", models.CipherShareRequest{
		Cipher:        &models.Cipher{ID: "cipher-1", Type: models.CipherTypeLogin},
		CollectionIDs: []string{"col-1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "org-1", shared.OrganizationID)
}

// TestPutShareCiphers verifies the bulk share request shape.
func TestPutShareCiphers(t *testing.T) {
	router := chi.NewRouter()
	router.Put("/ciphers/share", func(w http.ResponseWriter, r *http.Request) {
		var req models.CipherBulkShareRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Len(t, req.Ciphers, 2)
		w.WriteHeader(http.StatusOK)
	})

	cli := newTestClient(t, router)
	err := cli.PutShareCiphers(context.Background(), models.CipherBulkShareRequest{
		Ciphers: []*models.Cipher{{ID: "a"}, {ID: "b"}},
	})
	require.NoError(t, err)
}

// ── Error mapping and auth ────────────────────────────────────────────────────

// TestMapHTTPError verifies the status-to-error mapping, including the
// server's error payload shapes.
func TestMapHTTPError(t *testing.T) {
	router := chi.NewRouter()
	router.Delete("/ciphers/{cipherID}/attachment/unauthorized", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	router.Delete("/ciphers/{cipherID}/attachment/message", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.ErrorResponse{Message: "Cipher was rejected"})
	})
	router.Delete("/ciphers/{cipherID}/attachment/validation", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.ErrorResponse{
			Message:          "The model state is invalid.",
			ValidationErrors: map[string][]string{"FileSize": {"Maximum file size is 500 MB."}},
		})
	})
	router.Delete("/ciphers/{cipherID}/attachment/opaque", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	cli := newTestClient(t, router)
	ctx := context.Background()

	err := cli.DeleteCipherAttachment(ctx, "c", "unauthorized")
	assert.ErrorIs(t, err, ErrUnauthorized)

	err = cli.DeleteCipherAttachment(ctx, "c", "message")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cipher was rejected")

	err = cli.DeleteCipherAttachment(ctx, "c", "validation")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Maximum file size is 500 MB.")

	err = cli.DeleteCipherAttachment(ctx, "c", "opaque")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 502")
}

// TestAccountID verifies subject extraction from the bearer token.
func TestAccountID(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "account-42",
	}).SignedString([]byte("irrelevant"))
	require.NoError(t, err)

	cli := NewHTTPApiClient(HTTPClientConfig{}).(*httpApiClient)
	cli.SetToken(token)

	id, err := cli.AccountID()
	require.NoError(t, err)
	assert.Equal(t, "account-42", id)

	cli.SetToken("not a jwt")
	_, err = cli.AccountID()
	assert.Error(t, err)
}
