package domain

// Submission statuses. The site only ever writes "new"; the rest of the
// lifecycle belongs to the CMS back office.
const (
	SubmissionStatusNew = "new"
)

// ContactSubmission is a lead created through the contact form.
// Write-only from the site's perspective.
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// BusinessQuoteSubmission is a corporate-event quote request.
type BusinessQuoteSubmission struct {
	Name         string `json:"name"`
	Company      string `json:"company"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	EventType    string `json:"event_type"`
	EventDate    string `json:"event_date,omitempty"`
	GuestsNumber *int   `json:"guests_number,omitempty"`
	Notes        string `json:"notes,omitempty"`
	Status       string `json:"status"`
}

// CaptchaChallenge is a short-lived arithmetic question plus its expected
// answer. Only the id and question ever leave the server.
type CaptchaChallenge struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   int    `json:"answer"`
}
