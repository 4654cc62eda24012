package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/openswim/swimtopia-export/internal/adapter"
	"github.com/openswim/swimtopia-export/models"
)

// Download implements [Exporter]. The signed URL is pre-authorized, so the
// request carries no bearer token; an expired link surfaces as ErrDownload.
// Re-runs with the same parameters but a fresh task identifier produce
// independent files, because the fallback filename embeds the identifier.
func (s *exportService) Download(ctx context.Context, exportHref, taskID, outputDir string) (models.DownloadedArtifact, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return models.DownloadedArtifact{}, fmt.Errorf("%w: create output directory: %v", ErrDownload, err)
	}

	body, suggested, err := s.adapter.DownloadExport(ctx, exportHref)
	if err != nil {
		if errors.Is(err, adapter.ErrTransport) {
			return models.DownloadedArtifact{}, fmt.Errorf("%w: %v", ErrNetwork, err)
		}
		return models.DownloadedArtifact{}, fmt.Errorf("%w: %v", ErrDownload, err)
	}
	defer body.Close()

	name := deriveFilename(suggested, exportHref, taskID)
	localPath := filepath.Join(outputDir, name)

	file, err := os.Create(localPath)
	if err != nil {
		return models.DownloadedArtifact{}, fmt.Errorf("%w: create %s: %v", ErrDownload, localPath, err)
	}

	written, err := io.Copy(file, body)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return models.DownloadedArtifact{}, fmt.Errorf("%w: write %s: %v", ErrDownload, localPath, err)
	}

	s.logger.Info().
		Str("path", localPath).
		Int64("size_bytes", written).
		Msg("export downloaded")

	return models.DownloadedArtifact{
		LocalPath: localPath,
		SizeBytes: written,
		SourceURL: exportHref,
	}, nil
}

// deriveFilename picks the artifact filename: the server's suggestion
// (content-disposition) first, then the URL path basename, then a
// deterministic fallback embedding the task identifier. The result is always
// a bare basename so a hostile header cannot escape the output directory.
func deriveFilename(suggested, href, taskID string) string {
	if suggested != "" {
		if base := filepath.Base(suggested); base != "." && base != string(filepath.Separator) {
			return base
		}
	}

	if u, err := url.Parse(href); err == nil {
		if base := path.Base(u.Path); base != "" && base != "." && base != "/" {
			return base
		}
	}

	return fmt.Sprintf("export-%s.hy3", taskID)
}
