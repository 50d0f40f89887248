package pikavirus

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

// IsGoogleStoragePath reports whether path names an object in Google Storage.
func IsGoogleStoragePath(path string) bool {
	return strings.HasPrefix(path, "gs://")
}

// SplitGoogleStoragePath splits gs://bucket/path/to/object into its bucket and
// object names.
func SplitGoogleStoragePath(path string) (bucketName, objectName string, err error) {
	pathParts := strings.SplitN(strings.TrimPrefix(path, "gs://"), "/", 2)
	if len(pathParts) != 2 || pathParts[0] == "" || pathParts[1] == "" {
		return "", "", fmt.Errorf("Tried to split your google storage path into bucket and object, but got %d parts: %v", len(pathParts), pathParts)
	}

	return pathParts[0], pathParts[1], nil
}

// MaybeOpenFromGoogleStorage opens gs:// paths through client and everything
// else from the local filesystem. A missing object is reported as an
// fs.ErrNotExist path error, just like a missing local file.
func MaybeOpenFromGoogleStorage(ctx context.Context, path string, client *storage.Client) (io.ReadCloser, error) {
	if !IsGoogleStoragePath(path) {
		return os.Open(path)
	}

	if client == nil {
		return nil, pfx.Err(fmt.Errorf("%s: no google storage client was configured", path))
	}

	bucketName, objectName, err := SplitGoogleStoragePath(path)
	if err != nil {
		return nil, pfx.Err(err)
	}

	// Open the bucket with default credentials
	handle := client.Bucket(bucketName).Object(objectName)

	rdr, err := handle.NewReader(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) || errors.Is(err, storage.ErrBucketNotExist) {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	} else if err != nil {
		return nil, pfx.Err(fmt.Errorf("%s: %w", path, err))
	}

	return rdr, nil
}

// Opener opens pipeline inputs, local or in Google Storage, and transparently
// decompresses them. The zero value only opens local files.
type Opener struct {
	StorageClient *storage.Client
}

// Open satisfies the opener interfaces of the report packages.
func (o Opener) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	expanded, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}

	rc, err := MaybeOpenFromGoogleStorage(ctx, expanded, o.StorageClient)
	if err != nil {
		return nil, err
	}

	out, err := MaybeDecompressReadCloser(rc)
	if err != nil {
		rc.Close()
		return nil, pfx.Err(fmt.Errorf("%s: %w", path, err))
	}

	return out, nil
}

// NeedsGoogleStorage reports whether any of paths lives in Google Storage, so
// that commands only build a storage client when one is required.
func NeedsGoogleStorage(paths ...string) bool {
	for _, path := range paths {
		if IsGoogleStoragePath(path) {
			return true
		}
	}

	return false
}

// NewOpener returns an Opener that can read every one of paths. A storage
// client, using the default credentials, is only created when one of them is
// in Google Storage.
func NewOpener(ctx context.Context, paths ...string) (Opener, error) {
	if !NeedsGoogleStorage(paths...) {
		return Opener{}, nil
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return Opener{}, pfx.Err(err)
	}

	return Opener{StorageClient: client}, nil
}

// Close releases the storage client, if there is one.
func (o Opener) Close() error {
	if o.StorageClient == nil {
		return nil
	}

	return o.StorageClient.Close()
}
