// Package upload copies extracted record sets to Google Cloud Storage.
package upload

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"cloud.google.com/go/storage"
)

// Uploader copies a local directory tree into a bucket, preserving relative
// paths under {customer}/{subpath}/.
type Uploader struct {
	Bucket string
	Logger *slog.Logger
}

// UploadDir walks dir and uploads every regular file. It returns the number
// of files uploaded.
func (u *Uploader) UploadDir(ctx context.Context, client *storage.Client, dir, customerID, subpath string) (int, error) {
	bucket := client.Bucket(u.Bucket)
	uploaded := 0

	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		object := path.Join(customerID, subpath, filepath.ToSlash(rel))

		if err := u.uploadFile(ctx, bucket, p, object); err != nil {
			return fmt.Errorf("failed to upload %s: %w", rel, err)
		}
		u.Logger.Debug("uploaded file", "object", object)
		uploaded++
		return nil
	})
	if err != nil {
		return uploaded, err
	}

	u.Logger.Info("upload complete", "bucket", u.Bucket, "files", uploaded)
	return uploaded, nil
}

func (u *Uploader) uploadFile(ctx context.Context, bucket *storage.BucketHandle, local, object string) error {
	f, err := os.Open(local)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bucket.Object(object).NewWriter(ctx)
	if _, err := io.Copy(w, f); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
