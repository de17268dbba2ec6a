// Package storage abstracts where uploaded artwork images live. A
// Disk stores blobs under path-like keys and yields public URLs; the
// local disk serves development, S3 serves production.
package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/chitralaya/chitralaya/config"
)

type Disk interface {
	// Put stores the content under key and returns the public URL.
	Put(ctx context.Context, key string, content io.Reader, contentType string) (string, error)
	// Delete removes the object; deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// URL returns the public URL for an existing key.
	URL(key string) string
}

var defaultDisk Disk

// Init selects the disk from configuration: "s3" or "local".
func Init(ctx context.Context) error {
	switch config.StorageDefault() {
	case "s3":
		disk, err := NewS3Disk(ctx)
		if err != nil {
			return fmt.Errorf("storage: init s3: %w", err)
		}
		defaultDisk = disk
	case "local", "":
		defaultDisk = NewLocalDisk(config.StorageLocalRoot(), config.StorageURL())
	default:
		return fmt.Errorf("storage: unknown driver %q", config.StorageDefault())
	}
	return nil
}

// Default returns the configured disk. Init must have run first.
func Default() Disk { return defaultDisk }

// SetDefault overrides the disk, used by tests.
func SetDefault(d Disk) { defaultDisk = d }
