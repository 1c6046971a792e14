package public

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/gorilla/mux"
	"github.com/wmsdemo/wms/pkg/zipvfs"
)

// Public serves the static frontend bundle. Every directory in Dir is
// served under its name, every zip file under its name without extension.
type Public struct {
	Dir string
}

func (p Public) Mount(r *mux.Router) error {
	entries, err := os.ReadDir(p.Dir)
	if err != nil {
		return err
	}

	for _, e := range entries {
		fullPath := path.Join(p.Dir, e.Name())

		if IsZipFile(e) {
			err := MountZIPFile(r, fullPath)
			if err != nil {
				log.Printf("Unable to serve zip %s due to: %v", fullPath, err)
			}
		} else if e.IsDir() {
			r.PathPrefix("/" + e.Name() + "/").Handler(http.FileServer(http.Dir(p.Dir)))
		}
	}

	return nil
}

func IsZipFile(e os.DirEntry) bool {
	return !e.IsDir() && path.Ext(e.Name()) == ".zip"
}

func MountZIPFile(r *mux.Router, fullPath string) error {
	f, err := os.Open(fullPath)
	if err != nil {
		return err
	}
	defer f.Close()

	folder := strings.TrimSuffix(path.Base(f.Name()), path.Ext(f.Name()))

	return MountZIPReader(r, folder, f)
}

func MountZIPReader(r *mux.Router, folder string, f io.Reader) error {
	vfs, err := zipvfs.BuildFileSystem(context.Background(), f)
	if err != nil {
		return err
	}
	r.PathPrefix("/" + folder + "/").Handler(http.StripPrefix("/"+folder, http.FileServer(vfs)))
	return nil
}
