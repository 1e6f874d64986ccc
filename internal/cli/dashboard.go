package cli

import (
	"context"
	"fmt"

	"github.com/aturkov/jobpilot/internal/api"
)

// Dashboard shows the overview stats and the most recent activity.
func (a *App) Dashboard(ctx context.Context) {
	a.protected(ctx, a.dashboardView)
}

func (a *App) dashboardView(ctx context.Context) {
	d, err := a.dashboardSvc.Fetch(ctx)
	if err != nil {
		printlnFn(api.ErrorMessage(err, "Failed to load dashboard"))
		return
	}

	o := d.Overview
	printlnFn(fmt.Sprintf("Resumes: %d  Applications: %d  This month: %d  AI requests: %d",
		o.TotalResumes, o.TotalApplications, o.ApplicationsThisMonth, o.AIRequestsThisMonth))
	if o.SubscriptionStatus != "" {
		sub := "Subscription: " + o.SubscriptionStatus
		if o.SubscriptionExpiresAt != nil {
			sub += " (expires " + formatDate(*o.SubscriptionExpiresAt) + ")"
		}
		printlnFn(sub)
	}

	if len(d.RecentResumes) > 0 {
		printlnFn("Recent resumes:")
		for _, r := range d.RecentResumes {
			printlnFn("  " + r.OriginalFilename + "  " + formatDate(r.CreatedAt))
		}
	}
	if len(d.RecentApplications) > 0 {
		printlnFn("Recent applications:")
		for _, app := range d.RecentApplications {
			printlnFn("  " + app.CompanyName + " — " + app.PositionTitle + "  [" + statusLabel(app.Status) + "]")
		}
	}
}
