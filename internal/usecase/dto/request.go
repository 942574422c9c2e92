package dto

// ContactRequest is the body of POST /api/contact. Captcha and privacy
// fields are verified server-side as well as in the browser.
type ContactRequest struct {
	Name            string `json:"name" validate:"required,min=2"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"omitempty"`
	Message         string `json:"message" validate:"required,min=10"`
	CaptchaID       string `json:"captcha_id" validate:"required"`
	CaptchaAnswer   *int   `json:"captcha_answer" validate:"required"`
	PrivacyAccepted bool   `json:"privacy_accepted" validate:"eq=true"`
}

// BusinessQuoteRequest is the body of POST /api/business-quote.
// No captcha on this form.
type BusinessQuoteRequest struct {
	Name         string `json:"name" validate:"required"`
	Company      string `json:"company" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"omitempty"`
	EventType    string `json:"event_type" validate:"required"`
	EventDate    string `json:"event_date" validate:"omitempty"`
	GuestsNumber *int   `json:"guests_number" validate:"omitempty,gt=0"`
	Notes        string `json:"notes" validate:"omitempty"`
}
