package usecase

import (
	"fmt"
	"strings"

	emaildomain "maildigest-backend/internal/email/domain"
)

// Buckets holds batch indices of each classification set, in batch order.
type Buckets struct {
	Urgent    []int
	Marketing []int
	General   []int
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), substr)
}

func isUrgent(e emaildomain.Email) bool {
	return containsFold(e.Subject, "urgent") ||
		containsFold(e.Subject, "deadline") ||
		containsFold(e.Body, "asap")
}

func isMarketing(e emaildomain.Email) bool {
	return containsFold(e.Subject, "sale") ||
		containsFold(e.Subject, "offer") ||
		containsFold(e.From, "marketing")
}

// Classify sorts emails into buckets. An email may be both urgent and
// marketing; general is everything in neither set.
func Classify(emails []emaildomain.Email) Buckets {
	var b Buckets
	for i, e := range emails {
		urgent, marketing := isUrgent(e), isMarketing(e)
		if urgent {
			b.Urgent = append(b.Urgent, i)
		}
		if marketing {
			b.Marketing = append(b.Marketing, i)
		}
		if !urgent && !marketing {
			b.General = append(b.General, i)
		}
	}
	return b
}

// SummarizeFallback renders the rule-based summary. It is deterministic and
// never fails for a non-empty batch.
func SummarizeFallback(emails []emaildomain.Email) string {
	b := Classify(emails)
	total := len(emails)

	var sb strings.Builder
	fmt.Fprintf(&sb, "📧 **Email Summary** (%d total emails)\n\n", total)

	sb.WriteString("**Overview:**\n")
	fmt.Fprintf(&sb, "You have %d emails to review. ", total)
	if len(b.Urgent) > 0 {
		fmt.Fprintf(&sb, "%d require immediate attention.\n\n", len(b.Urgent))
	} else {
		sb.WriteString("No urgent items detected.\n\n")
	}

	sb.WriteString("**Priority Items:**\n")
	if len(b.Urgent) > 0 {
		for _, i := range b.Urgent {
			fmt.Fprintf(&sb, "• %s: \"%s\"\n", emails[i].From, emails[i].Subject)
		}
	} else {
		sb.WriteString("• No urgent emails\n")
	}
	sb.WriteString("\n")

	sb.WriteString("**Action Required:**\n")
	if len(b.Urgent) > 0 {
		sb.WriteString("• Review deadline-related emails\n• Respond to time-sensitive requests\n\n")
	} else {
		sb.WriteString("• No immediate actions needed\n\n")
	}

	sb.WriteString("**FYI:**\n")
	if n := len(b.Marketing); n > 0 {
		fmt.Fprintf(&sb, "• %d promotional email(s)\n", n)
	}
	if n := len(b.General); n > 0 {
		fmt.Fprintf(&sb, "• %d general email(s)\n", n)
	}
	sb.WriteString("\n")

	sb.WriteString("**Note:** This is a demo summary. For AI-powered summaries, configure your ANTHROPIC_API_KEY environment variable.")
	return sb.String()
}
