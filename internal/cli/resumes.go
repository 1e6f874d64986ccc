package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aturkov/jobpilot/internal/api"
	"github.com/aturkov/jobpilot/internal/models"
	"github.com/aturkov/jobpilot/internal/services"
)

// Resumes is the resume view: list on entry, then upload/analyze/delete
// sub-commands until "back".
func (a *App) Resumes(ctx context.Context) {
	a.protected(ctx, a.resumesView)
}

func (a *App) resumesView(ctx context.Context) {
	a.refreshResumes(ctx)
	a.renderResumes()

	for {
		line, err := getSimpleText(a.reader, "resumes: upload <path> | analyze <n> | delete <n> | refresh | back", os.Stdout)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "back":
			return
		case "refresh":
			a.refreshResumes(ctx)
			a.renderResumes()
		case "upload":
			if len(parts) < 2 {
				printlnFn("Usage: upload <path>")
				continue
			}
			a.uploadResume(ctx, strings.Join(parts[1:], " "))
		case "analyze":
			if r, ok := a.pickResume(parts); ok {
				a.analyzeResume(ctx, r.ID)
			}
		case "delete":
			if r, ok := a.pickResume(parts); ok {
				a.deleteResume(ctx, r.ID)
			}
		default:
			printlnFn("Unknown command:", parts[0])
		}
	}
}

// pickResume resolves a 1-based list index argument against the current list.
func (a *App) pickResume(parts []string) (models.Resume, bool) {
	items := a.resumeList.Items()
	if len(parts) < 2 {
		printlnFn("Usage: " + parts[0] + " <n>")
		return models.Resume{}, false
	}
	var n int
	if _, err := fmt.Sscanf(parts[1], "%d", &n); err != nil || n < 1 || n > len(items) {
		printlnFn("No such resume:", parts[1])
		return models.Resume{}, false
	}
	return items[n-1], true
}

func (a *App) refreshResumes(ctx context.Context) {
	seq := a.resumeList.Begin()
	items, err := a.resumeSvc.List(ctx)
	if err != nil {
		a.resumeList.Apply(seq, nil)
		printlnFn(api.ErrorMessage(err, "Failed to load resumes"))
		return
	}
	a.resumeList.Apply(seq, items)
}

func (a *App) renderResumes() {
	if a.resumeList.Len() == 0 {
		printlnFn("No resumes. Get started by uploading your first resume.")
		return
	}
	for i, r := range a.resumeList.Items() {
		state := "processing"
		if r.IsProcessed {
			state = "processed"
		}
		printlnFn(fmt.Sprintf("%2d. %s  %s  %s  %s",
			i+1, r.OriginalFilename, formatFileSize(r.FileSize), state, formatDate(r.CreatedAt)))
	}
}

func (a *App) uploadResume(ctx context.Context, path string) {
	err := a.resumeSvc.Upload(ctx, path)
	if err != nil {
		if errors.Is(err, services.ErrFileType) || errors.Is(err, services.ErrFileTooLarge) {
			printlnFn(err.Error())
			return
		}
		printlnFn(api.ErrorMessage(err, "Failed to upload resume"))
		return
	}
	printlnFn("Resume uploaded successfully!")
	a.refreshResumes(ctx)
	a.renderResumes()
}

func (a *App) analyzeResume(ctx context.Context, id string) {
	if err := a.resumeSvc.Analyze(ctx, id); err != nil {
		printlnFn(api.ErrorMessage(err, "Failed to analyze resume"))
		return
	}
	printlnFn("Resume analysis started! Check back in a few minutes.")
	a.refreshResumes(ctx)
	a.renderResumes()
}

func (a *App) deleteResume(ctx context.Context, id string) {
	if !confirm(a.reader, "Are you sure you want to delete this resume?", os.Stdout) {
		return
	}
	if err := a.resumeSvc.Delete(ctx, id); err != nil {
		printlnFn(api.ErrorMessage(err, "Failed to delete resume"))
		return
	}
	printlnFn("Resume deleted successfully!")
	a.refreshResumes(ctx)
	a.renderResumes()
}
