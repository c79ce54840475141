package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/notion-to-github/internal/adapter"
	"github.com/MKhiriev/notion-to-github/internal/app"
	"github.com/MKhiriev/notion-to-github/internal/logger"
	"github.com/MKhiriev/notion-to-github/models"
)

const (
	// PublishBranch is the branch every upload is committed to.
	PublishBranch = "main"

	commitMessageFormat = "Update %s from Notion"
)

type publishService struct {
	github adapter.GitHubAdapter

	logger *logger.Logger
}

func NewPublishService(github adapter.GitHubAdapter, logger *logger.Logger) PublishService {
	return &publishService{
		github: github,
		logger: logger,
	}
}

// Publish creates or overwrites req.Filename under req.Path on [PublishBranch].
//
// The existing file's sha is looked up right before the write. A GitHub
// rejection of the write is returned as the adapter's *GitHubError so the
// caller can relay GitHub's status and payload.
func (s *publishService) Publish(ctx context.Context, req models.PublishRequest) (models.PublishResponse, error) {
	log := logger.FromContext(ctx)
	path := contentPath(req.Path, req.Filename)

	state, err := s.github.GetFile(ctx, req.Token, req.Repo, path)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("existence check failed, uploading as a new file")
	}
	sha := existingSHA(state, err)

	putReq := models.ContentsPutRequest{
		Message: fmt.Sprintf(commitMessageFormat, req.Filename),
		Content: base64.StdEncoding.EncodeToString([]byte(req.Content)),
		Branch:  PublishBranch,
		SHA:     sha,
	}

	resp, err := s.github.PutFile(ctx, req.Token, req.Repo, path, putReq)
	if err != nil {
		var ghErr *adapter.GitHubError
		if errors.As(err, &ghErr) {
			log.Warn().Int("status", ghErr.StatusCode).Str("path", path).Msg("github rejected upload")
			return models.PublishResponse{}, fmt.Errorf("put file: %w", err)
		}
		log.Err(err).Str("path", path).Msg("upload failed")
		return models.PublishResponse{}, fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}

	log.Info().Str("repo", req.Repo).Str("path", path).Bool("overwrite", sha != "").Msg("file uploaded")

	return models.PublishResponse{
		Message: app.MsgUploaded,
		URL:     resp.FileURL(),
	}, nil
}

// contentPath joins dir and filename with exactly one slash.
func contentPath(dir, filename string) string {
	switch {
	case dir == "":
		return filename
	case strings.HasSuffix(dir, "/"):
		return dir + filename
	default:
		return dir + "/" + filename
	}
}

// existingSHA decides which sha to send with the write. Any failed or
// inconclusive existence check means "no existing file".
func existingSHA(state models.RemoteFileState, checkErr error) string {
	if checkErr != nil || !state.Exists {
		return ""
	}
	return state.SHA
}
