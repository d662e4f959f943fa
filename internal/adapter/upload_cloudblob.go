package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// cloudBlobUploader PUTs encrypted attachment bytes directly to provider
// blob storage using a pre-signed URL. Pre-signed URLs are short-lived:
// when the provider rejects one as expired mid-upload, the uploader asks
// the renewal callback for a fresh URL and retries the PUT exactly once.
type cloudBlobUploader struct {
	client *resty.Client
}

func newCloudBlobUploader(timeout time.Duration) *cloudBlobUploader {
	return &cloudBlobUploader{
		client: resty.New().SetTimeout(timeout),
	}
}

// Upload transfers encData to url. A renewal is attempted only on a
// positively detected expiry; any other failure is returned as-is.
func (u *cloudBlobUploader) Upload(ctx context.Context, url string, encData []byte, renew func(ctx context.Context) (string, error)) error {
	err := u.put(ctx, url, encData)
	if err == nil {
		return nil
	}
	if !isExpiredURL(err) || renew == nil {
		return err
	}

	renewedURL, renewErr := renew(ctx)
	if renewErr != nil {
		return fmt.Errorf("renew upload url: %w", renewErr)
	}

	if err = u.put(ctx, renewedURL, encData); err != nil {
		if isExpiredURL(err) {
			return fmt.Errorf("%w: %w", ErrRenewalExhausted, err)
		}
		return err
	}
	return nil
}

func (u *cloudBlobUploader) put(ctx context.Context, url string, encData []byte) error {
	resp, err := u.client.R().
		SetContext(ctx).
		SetHeader("x-ms-blob-type", "BlockBlob").
		SetHeader("Content-Type", "application/octet-stream").
		SetBody(bytes.NewReader(encData)).
		Put(url)
	if err != nil {
		return fmt.Errorf("blob put request: %w", err)
	}
	if resp.StatusCode() == http.StatusForbidden {
		// Providers answer 403 for an expired or invalid SAS signature.
		return fmt.Errorf("%w: http %d", ErrUploadURLExpired, resp.StatusCode())
	}
	if resp.StatusCode() >= http.StatusMultipleChoices {
		return fmt.Errorf("blob put: http %d", resp.StatusCode())
	}
	return nil
}

func isExpiredURL(err error) bool {
	return errors.Is(err, ErrUploadURLExpired)
}
