package vehicle

import (
	"context"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"fleet-admin-backend/internal/domain/fleeterr"
)

// StagedImage is a locally selected file held in memory, not yet uploaded.
type StagedImage struct {
	Ext         string
	ContentType string
	Data        []byte
}

// StageImage validates and buffers a selected file. Failures happen before
// anything is read over the network and leave any previously staged file
// untouched (the caller keeps its reference).
func (u *Usecase) StageImage(filename, contentType string, size int64, r io.Reader) (*StagedImage, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return nil, fleeterr.Validationf("file must be an image, got %q", contentType)
	}
	if size > u.maxBytes {
		return nil, fleeterr.Validationf("file size exceeds the limit of %d MB", u.maxBytes/(1024*1024))
	}

	data, err := io.ReadAll(io.LimitReader(r, u.maxBytes+1))
	if err != nil {
		return nil, fleeterr.Backendf("read upload: %v", err)
	}
	if int64(len(data)) > u.maxBytes {
		return nil, fleeterr.Validationf("file size exceeds the limit of %d MB", u.maxBytes/(1024*1024))
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = ".jpg"
	}
	return &StagedImage{Ext: ext, ContentType: contentType, Data: data}, nil
}

// PersistImage uploads the staged file under a key derived from the vehicle
// id, overwriting any previous object, and returns a cache-busted public URL.
// With no staged file it returns previousURL unchanged and issues no call.
func (u *Usecase) PersistImage(ctx context.Context, vehicleID string, img *StagedImage, previousURL string) (string, error) {
	if img == nil {
		return previousURL, nil
	}

	key := vehicleID + img.Ext
	if err := u.store.Upload(ctx, ImageBucket, key, img.Data, img.ContentType); err != nil {
		return "", fleeterr.Backendf("upload image: %v", err)
	}

	// The timestamp defeats stale caches after the object is replaced.
	url := u.store.PublicURL(ImageBucket, key)
	return url + "?t=" + strconv.FormatInt(u.now().UnixMilli(), 10), nil
}
