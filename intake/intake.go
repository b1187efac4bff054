// Package intake turns an upload into the name -> buffer mapping the rest
// of the pipeline works with. A single model file passes through as-is; a
// zip archive is unpacked so models that reference external .bin and
// texture files arrive complete.
package intake

import (
	"archive/zip"
	"bytes"
	"io"
	"io/ioutil"
	"path"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

type Bundle map[string][]byte

var allowedExtensions = map[string]bool{
	".glb":  true,
	".gltf": true,
	".bin":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".ktx2": true,
}

// FromUpload reads one uploaded file. limit caps both the upload itself
// and the total unpacked size, which also bounds zip expansion.
func FromUpload(name string, r io.Reader, limit int64) (Bundle, error) {
	if limit <= 0 {
		return nil, errors.Errorf("Upload size limit must be positive, got %d", limit)
	}

	data, err := ioutil.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to read upload %q", name)
	}
	if int64(len(data)) > limit {
		return nil, errors.Errorf("Upload %q exceeds the %d byte limit", name, limit)
	}

	if strings.EqualFold(path.Ext(name), ".zip") {
		return fromZip(data, limit)
	}

	ext := strings.ToLower(path.Ext(name))
	if !allowedExtensions[ext] {
		return nil, errors.Errorf("Unsupported file type %q", ext)
	}
	return Bundle{path.Base(name): data}, nil
}

func fromZip(data []byte, limit int64) (Bundle, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to open zip archive")
	}

	b := make(Bundle)
	var total int64
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		name := path.Base(f.Name)
		if strings.HasPrefix(name, ".") {
			continue
		}
		if !allowedExtensions[strings.ToLower(path.Ext(name))] {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, errors.Wrapf(err, "Failed to open %q inside archive", f.Name)
		}
		content, err := ioutil.ReadAll(io.LimitReader(rc, limit-total+1))
		rc.Close()
		if err != nil {
			return nil, errors.Wrapf(err, "Failed to read %q inside archive", f.Name)
		}

		total += int64(len(content))
		if total > limit {
			return nil, errors.Errorf("Archive contents exceed the %d byte limit", limit)
		}
		b[name] = content
	}

	if len(b) == 0 {
		return nil, errors.Errorf("Archive contains no usable files")
	}
	return b, nil
}

// PrimaryModel picks the model file conversion starts from. Binary
// containers win over json documents; ties break alphabetically so the
// choice is stable.
func (b Bundle) PrimaryModel() (string, []byte, bool) {
	var names []string
	for name := range b {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, ext := range []string{".glb", ".gltf"} {
		for _, name := range names {
			if strings.EqualFold(path.Ext(name), ext) {
				return name, b[name], true
			}
		}
	}
	return "", nil, false
}
