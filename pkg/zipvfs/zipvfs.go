package zipvfs

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"net/http"
)

// BuildFileSystem reads the complete zip archive into memory
// and serves its files.
func BuildFileSystem(ctx context.Context, zipFile io.Reader) (http.FileSystem, error) {
	var buf bytes.Buffer

	n, err := io.Copy(&buf, zipFile)
	if err != nil {
		return nil, err
	}

	r, err := zip.NewReader(bytes.NewReader(buf.Bytes()), n)
	if err != nil {
		return nil, err
	}

	return http.FS(r), nil
}
