package session

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// gzipMagic is the two leading bytes of every gzip stream.
var gzipMagic = [2]byte{0x1f, 0x8b}

// IsGzip reports whether data begins with the gzip magic bytes.
func IsGzip(data []byte) bool {
	return len(data) >= 2 && data[0] == gzipMagic[0] && data[1] == gzipMagic[1]
}

// CompressBytes gzips data at the default compression level.
func CompressBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MaybeDecompress gunzips bytes if they look like gzip, else returns
// them unchanged. The bool reports whether decompression occurred.
func MaybeDecompress(data []byte) ([]byte, bool, error) {
	if !IsGzip(data) {
		return data, false, nil
	}
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, false, err
	}
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, false, err
	}
	return out, true, nil
}

// TempPath returns a free "<target>.tmp", "<target>.tmp1", "<target>.tmp2"
// ... path that does not currently exist, matching the original save
// protocol's collision-avoidance rule.
func TempPath(target string) (string, error) {
	base := target + ".tmp"
	if _, err := os.Stat(base); os.IsNotExist(err) {
		return base, nil
	} else if err != nil && !os.IsExist(err) {
		return "", err
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s%d", base, i)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate, nil
		} else if err != nil && !os.IsExist(err) {
			return "", err
		}
		if i > 10000 {
			return "", fmt.Errorf("could not find a free temp path near %s", filepath.Base(target))
		}
	}
}
