package entities

import (
	"archive/tar"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	prose "github.com/jdkato/prose/v2"

	"github.com/hardiksingh171819/Text-Enrichment-Pipeline/internal/config"
	"github.com/hardiksingh171819/Text-Enrichment-Pipeline/internal/logger"
)

// Model resolution errors.
var (
	ErrModelUnavailable     = errors.New("entity model directory missing and no model_url configured")
	ErrUnexpectedStatusCode = errors.New("unexpected status code")
	ErrUnsafeArchivePath    = errors.New("archive entry escapes model directory")
)

// ModelStore resolves the NER model directory, fetching it over HTTP the
// first time it is needed.
type ModelStore struct {
	dir    string
	url    string
	client *http.Client
	log    *logger.Logger
}

// NewModelStore creates a model store from the entities configuration.
func NewModelStore(cfg config.EntitiesConfig, log *logger.Logger) *ModelStore {
	return &ModelStore{
		dir: cfg.ModelDir,
		url: cfg.ModelURL,
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
		log: log,
	}
}

// Load resolves the model. An empty directory selects the built-in model
// (returned as nil). A configured directory that is missing triggers one
// download followed by one reload attempt; a second failure is returned
// to the caller and aborts the run.
func (s *ModelStore) Load() (*prose.Model, error) {
	if s.dir == "" {
		return nil, nil
	}

	_, err := os.Stat(s.dir)
	if err == nil {
		s.log.Debug("loading entity model from disk", "dir", s.dir)

		return prose.ModelFromDisk(s.dir), nil
	}

	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to stat model directory %s: %w", s.dir, err)
	}

	if s.url == "" {
		return nil, ErrModelUnavailable
	}

	s.log.Warn("entity model missing, downloading", "dir", s.dir, "url", s.url)

	if err := s.download(); err != nil {
		return nil, fmt.Errorf("model download failed: %w", err)
	}

	// One reload after the download; no further recovery.
	if _, err := os.Stat(s.dir); err != nil {
		return nil, fmt.Errorf("model directory still missing after download: %w", err)
	}

	s.log.Info("entity model downloaded", "dir", s.dir)

	return prose.ModelFromDisk(s.dir), nil
}

// download fetches the model archive (tar.gz) and unpacks it into the
// configured directory.
func (s *ModelStore) download() error {
	req, err := http.NewRequest(http.MethodGet, s.url, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/gzip, application/octet-stream")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %d", ErrUnexpectedStatusCode, resp.StatusCode)
	}

	return s.unpack(resp.Body)
}

// unpack extracts a tar.gz stream into the model directory.
func (s *ModelStore) unpack(r io.Reader) error {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return fmt.Errorf("failed to open gzip stream: %w", err)
	}

	defer func() {
		_ = gz.Close()
	}()

	tr := tar.NewReader(gz)

	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}

		if err != nil {
			return fmt.Errorf("failed to read archive: %w", err)
		}

		target, err := s.safeTarget(header.Name)
		if err != nil {
			return err
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", target, err)
			}

		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return fmt.Errorf("failed to create directory for %s: %w", target, err)
			}

			if err := writeArchiveFile(target, tr, header.FileInfo().Mode()); err != nil {
				return err
			}
		}
	}

	return nil
}

// safeTarget maps an archive entry name into the model directory,
// rejecting entries that would escape it.
func (s *ModelStore) safeTarget(name string) (string, error) {
	clean := filepath.Clean(name)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(os.PathSeparator)) || filepath.IsAbs(clean) {
		return "", fmt.Errorf("%w: %s", ErrUnsafeArchivePath, name)
	}

	return filepath.Join(s.dir, clean), nil
}

func writeArchiveFile(target string, r io.Reader, mode os.FileMode) error {
	f, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", target, err)
	}

	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()

		return fmt.Errorf("failed to write file %s: %w", target, err)
	}

	return f.Close()
}
