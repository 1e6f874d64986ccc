package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aturkov/jobpilot/internal/api"
	"github.com/aturkov/jobpilot/internal/models"
	"github.com/aturkov/jobpilot/internal/validate"
)

// Applications is the job-application view: list on entry, then
// new/status/cover/delete sub-commands until "back".
func (a *App) Applications(ctx context.Context) {
	a.protected(ctx, a.applicationsView)
}

func (a *App) applicationsView(ctx context.Context) {
	// The create form selects from the user's resumes, so both collections
	// are fetched on entry.
	a.refreshResumes(ctx)
	a.refreshApplications(ctx)
	a.renderApplications()

	for {
		line, err := getSimpleText(a.reader, "applications: new | status <n> <status> | notes <n> | cover <n> | delete <n> | refresh | back", os.Stdout)
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
			a.refreshApplications(ctx)
			a.renderApplications()
		case "new":
			a.createApplication(ctx)
		case "status":
			if app, ok := a.pickApplication(parts); ok {
				if len(parts) < 3 {
					printlnFn("Usage: status <n> <" + statusChoices() + ">")
					continue
				}
				a.updateApplicationStatus(ctx, app.ID, models.ApplicationStatus(parts[2]))
			}
		case "notes":
			if app, ok := a.pickApplication(parts); ok {
				a.editApplicationNotes(ctx, app.ID)
			}
		case "cover":
			if app, ok := a.pickApplication(parts); ok {
				a.generateCoverLetter(ctx, app.ID)
			}
		case "delete":
			if app, ok := a.pickApplication(parts); ok {
				a.deleteApplication(ctx, app.ID)
			}
		default:
			printlnFn("Unknown command:", parts[0])
		}
	}
}

func statusChoices() string {
	choices := make([]string, 0, len(models.ApplicationStatuses))
	for _, s := range models.ApplicationStatuses {
		choices = append(choices, string(s))
	}
	return strings.Join(choices, "|")
}

func (a *App) pickApplication(parts []string) (models.JobApplication, bool) {
	items := a.appList.Items()
	if len(parts) < 2 {
		printlnFn("Usage: " + parts[0] + " <n>")
		return models.JobApplication{}, false
	}
	var n int
	if _, err := fmt.Sscanf(parts[1], "%d", &n); err != nil || n < 1 || n > len(items) {
		printlnFn("No such application:", parts[1])
		return models.JobApplication{}, false
	}
	return items[n-1], true
}

func (a *App) refreshApplications(ctx context.Context) {
	seq := a.appList.Begin()
	items, err := a.appSvc.List(ctx)
	if err != nil {
		a.appList.Apply(seq, nil)
		printlnFn(api.ErrorMessage(err, "Failed to load applications"))
		return
	}
	a.appList.Apply(seq, items)
}

func (a *App) renderApplications() {
	if a.appList.Len() == 0 {
		printlnFn("No applications yet.")
		return
	}
	for i, app := range a.appList.Items() {
		extra := ""
		if len(app.CoverLetterData) > 0 {
			extra = "  [cover letter ready]"
		}
		printlnFn(fmt.Sprintf("%2d. %s — %s  [%s]  %s%s",
			i+1, app.CompanyName, app.PositionTitle, statusLabel(app.Status), formatDate(app.CreatedAt), extra))
	}
}

// createApplication runs the creation form. Validation failures block the
// request entirely and are shown inline.
func (a *App) createApplication(ctx context.Context) {
	resumes := a.resumeList.Items()
	if len(resumes) == 0 {
		printlnFn("Upload a resume first; every application needs one.")
		return
	}

	company, err := getSimpleText(a.reader, "Company name", os.Stdout)
	if err != nil {
		return
	}
	position, err := getSimpleText(a.reader, "Position title", os.Stdout)
	if err != nil {
		return
	}
	description, err := getSimpleText(a.reader, "Job description", os.Stdout)
	if err != nil {
		return
	}
	url, err := getSimpleText(a.reader, "Application URL (optional)", os.Stdout)
	if err != nil {
		return
	}
	deadline, err := getSimpleText(a.reader, "Application deadline YYYY-MM-DD (optional)", os.Stdout)
	if err != nil {
		return
	}
	notes, err := getSimpleText(a.reader, "Notes (optional)", os.Stdout)
	if err != nil {
		return
	}

	for i, r := range resumes {
		printlnFn(fmt.Sprintf("%2d. %s", i+1, r.OriginalFilename))
	}
	choice, err := getSimpleText(a.reader, "Resume to apply with (number)", os.Stdout)
	if err != nil {
		return
	}
	resumeID := ""
	var n int
	if _, err := fmt.Sscanf(choice, "%d", &n); err == nil && n >= 1 && n <= len(resumes) {
		resumeID = resumes[n-1].ID
	}

	form := validate.ApplicationForm{
		CompanyName:         company,
		PositionTitle:       position,
		JobDescription:      description,
		ApplicationURL:      url,
		ApplicationDeadline: deadline,
		ResumeID:            resumeID,
	}
	if err := validate.Struct(form); err != nil {
		if fe, ok := err.(validate.FieldErrors); ok {
			printFieldErrors(fe)
			return
		}
		printlnFn(err.Error())
		return
	}

	req := models.ApplicationRequest{
		CompanyName:         company,
		PositionTitle:       position,
		JobDescription:      description,
		ApplicationURL:      url,
		ApplicationDeadline: deadline,
		Notes:               notes,
		ResumeID:            resumeID,
	}
	if err := a.appSvc.Create(ctx, req); err != nil {
		printlnFn(api.ErrorMessage(err, "Failed to create application"))
		return
	}
	printlnFn("Application created successfully!")
	a.refreshApplications(ctx)
	a.renderApplications()
}

// editApplicationNotes replaces the notes on an application. The prompt shows
// no current value; notes are write-only from this view.
func (a *App) editApplicationNotes(ctx context.Context, id string) {
	notes, err := getSimpleText(a.reader, "Notes", os.Stdout)
	if err != nil {
		return
	}
	if err := a.appSvc.Update(ctx, id, models.ApplicationUpdate{Notes: notes}); err != nil {
		printlnFn(api.ErrorMessage(err, "Failed to update notes"))
		return
	}
	printlnFn("Notes updated successfully!")
	a.refreshApplications(ctx)
	a.renderApplications()
}

func (a *App) updateApplicationStatus(ctx context.Context, id string, status models.ApplicationStatus) {
	if !status.Valid() {
		printlnFn("Unknown status. Choose one of: " + statusChoices())
		return
	}
	if err := a.appSvc.UpdateStatus(ctx, id, status); err != nil {
		printlnFn(api.ErrorMessage(err, "Failed to update status"))
		return
	}
	printlnFn("Status updated successfully!")
	a.refreshApplications(ctx)
	a.renderApplications()
}

func (a *App) generateCoverLetter(ctx context.Context, id string) {
	if err := a.appSvc.GenerateCoverLetter(ctx, id); err != nil {
		printlnFn(api.ErrorMessage(err, "Failed to generate cover letter"))
		return
	}
	printlnFn("Cover letter generation started! Check back in a few minutes.")
	a.refreshApplications(ctx)
	a.renderApplications()
}

func (a *App) deleteApplication(ctx context.Context, id string) {
	if !confirm(a.reader, "Are you sure you want to delete this application?", os.Stdout) {
		return
	}
	if err := a.appSvc.Delete(ctx, id); err != nil {
		printlnFn(api.ErrorMessage(err, "Failed to delete application"))
		return
	}
	printlnFn("Application deleted successfully!")
	a.refreshApplications(ctx)
	a.renderApplications()
}
