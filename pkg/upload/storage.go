package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"soil-farming-agent/pkg/utils"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var allowedTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
}

// Storage writes accepted multipart image files to a local directory and hands
// back their public paths ("/uploads/<name>"). Files that fail the type or size
// filter are dropped without failing the request; the caller only sees the
// paths of the files that made it. This lenient-drop behavior is intentional.
type Storage struct {
	dir       string
	maxFiles  int
	maxSize   int64
	publicFmt string
	log       *zap.Logger
}

func NewStorage(config utils.UploadConfig, log *zap.Logger) (*Storage, error) {
	if err := os.MkdirAll(config.Dir, 0755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", config.Dir, err)
	}

	return &Storage{
		dir:       config.Dir,
		maxFiles:  config.MaxFiles,
		maxSize:   config.MaxSizeMB * 1024 * 1024,
		publicFmt: "/" + filepath.ToSlash(filepath.Base(config.Dir)) + "/%s",
		log:       log.With(zap.String("component", "upload")),
	}, nil
}

// Dir returns the local directory uploads are written to
func (s *Storage) Dir() string {
	return s.dir
}

// SaveImages stores up to maxFiles accepted images and returns their public paths
func (s *Storage) SaveImages(files []*multipart.FileHeader) ([]string, error) {
	if len(files) > s.maxFiles {
		files = files[:s.maxFiles]
	}

	paths := []string{}
	for _, fh := range files {
		path, ok, err := s.saveOne(fh)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		paths = append(paths, path)
	}

	return paths, nil
}

// saveOne returns ok=false when the file fails the filter (dropped, not an error)
func (s *Storage) saveOne(fh *multipart.FileHeader) (string, bool, error) {
	if fh.Size > s.maxSize {
		s.log.Warn("Dropping oversize upload",
			zap.String("filename", fh.Filename),
			zap.Int64("size", fh.Size),
		)
		return "", false, nil
	}

	src, err := fh.Open()
	if err != nil {
		return "", false, fmt.Errorf("open upload %s: %w", fh.Filename, err)
	}
	defer src.Close()

	// Sniff the real content type; the client-supplied header is not trusted
	head := make([]byte, 512)
	n, err := io.ReadFull(src, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", false, fmt.Errorf("read upload %s: %w", fh.Filename, err)
	}

	mtype := mimetype.Detect(head[:n])
	ext, allowed := allowedTypes[mtype.String()]
	if !allowed {
		s.log.Warn("Dropping upload with disallowed type",
			zap.String("filename", fh.Filename),
			zap.String("detected_type", mtype.String()),
		)
		return "", false, nil
	}

	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], ext)

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", false, fmt.Errorf("create upload file %s: %w", name, err)
	}
	defer dst.Close()

	if _, err := dst.Write(head[:n]); err != nil {
		return "", false, fmt.Errorf("write upload file %s: %w", name, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		return "", false, fmt.Errorf("write upload file %s: %w", name, err)
	}

	return fmt.Sprintf(s.publicFmt, name), true, nil
}
