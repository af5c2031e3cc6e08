package timelineRepository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/entity"
	contextPkg "github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/context"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// document is the on-disk layout of the file backend.
type document struct {
	Emotions []entity.TimelineEntry `json:"emotions"`
	Sessions []interface{}          `json:"sessions"`
}

type fileRepository struct {
	path string
	log  *logrus.Logger
	mu   sync.Mutex
}

// NewFile stores the timeline as a single JSON document at path, creating
// it when missing.
func NewFile(path string, log *logrus.Logger) (Repository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create timeline dir: %w", err)
	}

	r := &fileRepository{path: path, log: log}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := r.write(document{}); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *fileRepository) Backend() Backend { return BackendFile }

func (r *fileRepository) Append(ctx context.Context, entry entity.TimelineEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.read()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"path":       r.path,
			"error":      err.Error(),
		}).Error("Failed to read timeline file")
		return err
	}

	doc.Emotions = append(doc.Emotions, entry)

	if err := r.write(doc); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"path":       r.path,
			"error":      err.Error(),
		}).Error("Failed to write timeline file")
		return err
	}
	return nil
}

func (r *fileRepository) ReadAll(_ context.Context) ([]entity.TimelineEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.read()
	if err != nil {
		return nil, err
	}
	return doc.Emotions, nil
}

func (r *fileRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.write(document{})
}

func (r *fileRepository) read() (document, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return document{}, nil
	}
	if err != nil {
		return document{}, fmt.Errorf("read timeline: %w", err)
	}
	if len(data) == 0 {
		return document{}, nil
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return document{}, fmt.Errorf("decode timeline: %w", err)
	}
	return doc, nil
}

// write replaces the file through a rename so readers never see a torn
// document.
func (r *fileRepository) write(doc document) error {
	if doc.Emotions == nil {
		doc.Emotions = []entity.TimelineEntry{}
	}
	if doc.Sessions == nil {
		doc.Sessions = []interface{}{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode timeline: %w", err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write timeline: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("replace timeline: %w", err)
	}
	return nil
}
