// Package source acquires and releases the media handle for one
// pipeline run: a local file, or an HTTP(S) resource copied to a
// temporary file.
package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// LoadError signals that a media source could not be opened: bad
// path, bad URL, unexpected HTTP status, or a non-media content type.
type LoadError struct {
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("load source: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("load source: %s", e.Reason)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Source is an opaque handle to one video (or audio) input. A fetched
// source owns a temporary copy that must be released by the caller on
// every path.
type Source struct {
	Path      string
	Name      string
	MIMEType  string
	temporary bool
}

var videoExtensions = map[string]string{
	".mp4":  "video/mp4",
	".mov":  "video/quicktime",
	".avi":  "video/x-msvideo",
	".mkv":  "video/x-matroska",
	".webm": "video/webm",
	".m4v":  "video/x-m4v",
	".flv":  "video/x-flv",
}

var audioExtensions = map[string]string{
	".mp3": "audio/mpeg",
	".wav": "audio/wav",
	".m4a": "audio/mp4",
}

// FromFile opens a local media file. The extension must be a known
// video or audio format.
func FromFile(path string) (*Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &LoadError{Reason: fmt.Sprintf("cannot open %s", path), Err: err}
	}
	if info.IsDir() {
		return nil, &LoadError{Reason: fmt.Sprintf("%s is a directory", path)}
	}

	mime := mimeForExt(filepath.Ext(path))
	if mime == "" {
		return nil, &LoadError{Reason: fmt.Sprintf("unsupported media extension %q", filepath.Ext(path))}
	}

	return &Source{
		Path:     path,
		Name:     filepath.Base(path),
		MIMEType: mime,
	}, nil
}

// FromURL fetches an HTTP(S) resource into tempDir. The response
// Content-Type must start with video/ or audio/; failures surface the
// HTTP status code and text.
func FromURL(ctx context.Context, rawURL, tempDir string) (*Source, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &LoadError{Reason: fmt.Sprintf("invalid URL %q", rawURL), Err: err}
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, &LoadError{Reason: fmt.Sprintf("fetch %s", rawURL), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &LoadError{Reason: fmt.Sprintf("fetch %s: %s", rawURL, resp.Status)}
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "video/") && !strings.HasPrefix(contentType, "audio/") {
		return nil, &LoadError{Reason: fmt.Sprintf("fetch %s: content type %q is not media", rawURL, contentType)}
	}

	name := filepath.Base(req.URL.Path)
	if name == "" || name == "/" || name == "." {
		name = "download"
	}

	tmp, err := os.CreateTemp(tempDir, "source-*-"+name)
	if err != nil {
		return nil, &LoadError{Reason: "create temp file", Err: err}
	}
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, &LoadError{Reason: fmt.Sprintf("download %s", rawURL), Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return nil, &LoadError{Reason: "write temp file", Err: err}
	}

	return &Source{
		Path:      tmp.Name(),
		Name:      name,
		MIMEType:  contentType,
		temporary: true,
	}, nil
}

// Read loads the entire source into memory.
func (s *Source) Read() ([]byte, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, &LoadError{Reason: fmt.Sprintf("read %s", s.Path), Err: err}
	}
	return data, nil
}

// AudioOnly reports whether the source has no video track to sample.
func (s *Source) AudioOnly() bool {
	return strings.HasPrefix(s.MIMEType, "audio/")
}

// Release removes the temporary copy of a fetched source. Safe to
// call more than once and on local-file sources.
func (s *Source) Release() {
	if !s.temporary {
		return
	}
	os.Remove(s.Path)
	s.temporary = false
}

func mimeForExt(ext string) string {
	ext = strings.ToLower(ext)
	if mime, ok := videoExtensions[ext]; ok {
		return mime
	}
	if mime, ok := audioExtensions[ext]; ok {
		return mime
	}
	return ""
}
