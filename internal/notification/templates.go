package notification

import (
	"fmt"
	"html"
	"strings"
)

const (
	submittedSubject = "Claim Submitted Successfully - QuickClaim"
	welcomeSubject   = "Welcome to QuickClaim! \U0001F389"
)

// statusTemplate carries the per-status copy for status-update emails.
type statusTemplate struct {
	Subject string
	Title   string
	Color   string
}

var statusTemplates = map[string]statusTemplate{
	"approved": {
		Subject: "\U0001F389 Your claim has been approved!",
		Title:   "Congratulations! Your claim is approved",
		Color:   "#10B981",
	},
	"rejected": {
		Subject: "Update on your claim application",
		Title:   "Claim application update",
		Color:   "#EF4444",
	},
	"paid": {
		Subject: "\U0001F4B0 Payment processed for your claim",
		Title:   "Payment has been processed!",
		Color:   "#4B0082",
	},
	"under_review": {
		Subject: "Your claim is under review",
		Title:   "Claim under review",
		Color:   "#F59E0B",
	},
}

// statusTemplateFor falls back to the under_review copy for any status
// without dedicated text.
func statusTemplateFor(status string) statusTemplate {
	if t, ok := statusTemplates[status]; ok {
		return t
	}
	return statusTemplates["under_review"]
}

// humanize turns snake_case claim types and statuses into display text.
func humanize(s string) string {
	return strings.ReplaceAll(s, "_", " ")
}

func statusMessage(info ClaimInfo) string {
	claimType := humanize(info.Type)
	switch info.Status {
	case "approved":
		amount := ""
		if info.Amount != nil {
			amount = fmt.Sprintf(" for $%.2f", *info.Amount)
		}
		return fmt.Sprintf("Great news! Your %s claim has been approved%s.", claimType, amount)
	case "rejected":
		return fmt.Sprintf("We've reviewed your %s claim. Unfortunately, we cannot approve it at this time.", claimType)
	case "paid":
		amount := 0.0
		if info.Amount != nil {
			amount = *info.Amount
		}
		return fmt.Sprintf("Your %s claim payment of $%.2f has been processed and should arrive in your account within 1-2 business days.", claimType, amount)
	default:
		return fmt.Sprintf("We're currently reviewing your %s claim. We'll update you as soon as we have more information.", claimType)
	}
}

func renderClaimSubmitted(info ClaimInfo) string {
	claimType := html.EscapeString(humanize(info.Type))
	var b strings.Builder
	openLayout(&b, "QuickClaim")
	fmt.Fprintf(&b, "<h2>Your %s claim has been submitted!</h2>", claimType)
	fmt.Fprintf(&b, "<p>Great news! We've received your %s claim and it's now under review.</p>", claimType)
	b.WriteString(`<div class="card"><h3>Claim Details</h3>`)
	fmt.Fprintf(&b, "<p><strong>Type:</strong> %s</p>", claimType)
	b.WriteString("<p><strong>Status:</strong> Under Review</p></div>")
	b.WriteString("<p>We'll review your application and get back to you within 2-3 business days. You'll receive an email notification as soon as there's an update.</p>")
	closeLayout(&b)
	return b.String()
}

func renderStatusUpdate(info ClaimInfo) string {
	t := statusTemplateFor(info.Status)
	var b strings.Builder
	openLayout(&b, "QuickClaim")
	fmt.Fprintf(&b, "<h2>%s</h2>", html.EscapeString(t.Title))
	fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(statusMessage(info)))
	fmt.Fprintf(&b, `<div class="card" style="border-left: 4px solid %s;"><h3>Claim Update</h3>`, t.Color)
	fmt.Fprintf(&b, "<p><strong>Type:</strong> %s</p>", html.EscapeString(humanize(info.Type)))
	fmt.Fprintf(&b, "<p><strong>Status:</strong> %s</p>", html.EscapeString(humanize(info.Status)))
	if info.Amount != nil {
		fmt.Fprintf(&b, "<p><strong>Amount:</strong> $%.2f</p>", *info.Amount)
	}
	b.WriteString("</div>")
	if info.Status == "approved" {
		b.WriteString("<p>Your payment will be processed within 1-2 business days. You'll receive another email confirmation once the payment is sent.</p>")
	}
	if info.Status == "rejected" && info.AdminNotes != "" {
		fmt.Fprintf(&b, `<div class="note"><p><strong>Additional Information:</strong></p><p>%s</p></div>`,
			html.EscapeString(info.AdminNotes))
	}
	closeLayout(&b)
	return b.String()
}

func renderWelcome(user UserInfo) string {
	name := user.Name
	if name == "" {
		name = "there"
	}
	var b strings.Builder
	openLayout(&b, "Welcome to QuickClaim!")
	fmt.Fprintf(&b, "<h2>Hi %s! \U0001F44B</h2>", html.EscapeString(name))
	b.WriteString("<p>Welcome to QuickClaim! We're excited to help you access the benefits you deserve.</p>")
	b.WriteString(`<div class="card"><h3>What's Next?</h3><ul>`)
	b.WriteString("<li>Complete your profile to see eligible benefits</li>")
	b.WriteString("<li>Upload required documents</li>")
	b.WriteString("<li>Track your claims in real-time</li>")
	b.WriteString("<li>Receive instant email notifications</li>")
	b.WriteString("</ul></div>")
	closeLayout(&b)
	return b.String()
}

func openLayout(b *strings.Builder, heading string) {
	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`)
	fmt.Fprintf(b, `<div style="background: #4B0082; color: white; padding: 20px; text-align: center;"><h1 style="margin: 0;">%s</h1></div>`,
		html.EscapeString(heading))
	b.WriteString(`<div style="padding: 30px; background: #f9f9f9;">`)
}

func closeLayout(b *strings.Builder) {
	b.WriteString(`<p style="color: #999; font-size: 14px; text-align: center;">Questions? Reply to this email or contact our support team.</p>`)
	b.WriteString("</div></div>")
}
