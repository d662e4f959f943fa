package adapter

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCloudBlobUpload_Success verifies the PUT shape: block-blob header,
// octet-stream body, accepted on 201.
func TestCloudBlobUpload_Success(t *testing.T) {
	payload := []byte{0x02, 0x01, 0x02, 0x03}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "BlockBlob", r.Header.Get("x-ms-blob-type"))
		assert.Equal(t, "application/octet-stream", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, payload, body)

		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	up := newCloudBlobUploader(5 * time.Second)
	require.NoError(t, up.Upload(context.Background(), srv.URL, payload, nil))
}

// TestCloudBlobUpload_RenewsExpiredURLOnce verifies the expiry path: a 403
// triggers exactly one renewal and one retry against the fresh URL.
func TestCloudBlobUpload_RenewsExpiredURLOnce(t *testing.T) {
	fresh := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	defer fresh.Close()

	expired := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer expired.Close()

	var renewals atomic.Int32
	renew := func(context.Context) (string, error) {
		renewals.Add(1)
		return fresh.URL, nil
	}

	up := newCloudBlobUploader(5 * time.Second)
	require.NoError(t, up.Upload(context.Background(), expired.URL, []byte("x"), renew))
	assert.EqualValues(t, 1, renewals.Load())
}

// TestCloudBlobUpload_RenewalExhausted verifies that a second 403 after
// renewing gives up instead of looping.
func TestCloudBlobUpload_RenewalExhausted(t *testing.T) {
	var puts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		puts.Add(1)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	renew := func(context.Context) (string, error) { return srv.URL, nil }

	up := newCloudBlobUploader(5 * time.Second)
	err := up.Upload(context.Background(), srv.URL, []byte("x"), renew)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRenewalExhausted)
	assert.ErrorIs(t, err, ErrUploadURLExpired)
	assert.EqualValues(t, 2, puts.Load())
}

// TestCloudBlobUpload_NoRenewalOnOtherErrors verifies that only a detected
// expiry triggers the renewal callback.
func TestCloudBlobUpload_NoRenewalOnOtherErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	renew := func(context.Context) (string, error) {
		t.Fatal("renew must not be called for a non-expiry failure")
		return "", nil
	}

	up := newCloudBlobUploader(5 * time.Second)
	err := up.Upload(context.Background(), srv.URL, []byte("x"), renew)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUploadURLExpired)
}
