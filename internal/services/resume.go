// Package services contains the application services the views talk to. Each
// wraps the API client for one resource and adds whatever client-side policy
// the resource needs (upload guards, status checks). None of them keep state;
// list state lives in the views.
package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aturkov/jobpilot/internal/api"
	"github.com/aturkov/jobpilot/internal/models"
)

// MaxResumeSize caps uploads at 10 MiB, matching the server-side limit.
const MaxResumeSize = 10 << 20

var (
	// ErrFileType means the file is not a PDF or DOCX. The request is blocked
	// before any network I/O.
	ErrFileType = errors.New("only PDF and DOCX files are supported")

	// ErrFileTooLarge means the file exceeds MaxResumeSize. Also blocked
	// before any network I/O.
	ErrFileTooLarge = errors.New("file size must be less than 10MB")
)

// allowedResumeExts is the upload allow-list.
var allowedResumeExts = map[string]struct{}{
	".pdf":  {},
	".docx": {},
}

// ResumeService lists, uploads, deletes, and analyzes resumes.
type ResumeService struct {
	api api.Client
}

func NewResumeService(apiClient api.Client) *ResumeService {
	return &ResumeService{api: apiClient}
}

// List fetches the resume collection.
func (s *ResumeService) List(ctx context.Context) ([]models.Resume, error) {
	list, err := s.api.ListResumes(ctx)
	if err != nil {
		return nil, err
	}
	return list.Resumes, nil
}

// CheckUploadable applies the client-side guard to a candidate file without
// touching the network: extension allow-list first, then the size cap.
func CheckUploadable(path string, size int64) error {
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := allowedResumeExts[ext]; !ok {
		return ErrFileType
	}
	if size > MaxResumeSize {
		return ErrFileTooLarge
	}
	return nil
}

// Upload validates the file at path and sends it as a multipart request.
// Guard violations return before a single byte leaves the client.
func (s *ResumeService) Upload(ctx context.Context, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}
	if err := CheckUploadable(path, info.Size()); err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}
	return s.api.UploadResume(ctx, filepath.Base(path), data)
}

// Delete removes the resume with the given id.
func (s *ResumeService) Delete(ctx context.Context, id string) error {
	return s.api.DeleteResume(ctx, id)
}

// Analyze asks the server to start an analysis job for the resume. The call
// only confirms the job was accepted; completion shows up later as
// IsProcessed on a subsequent fetch.
func (s *ResumeService) Analyze(ctx context.Context, id string) error {
	return s.api.AnalyzeResume(ctx, id)
}
