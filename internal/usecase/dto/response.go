package dto

// CaptchaResponse is a freshly generated arithmetic challenge. The answer
// never leaves the server.
type CaptchaResponse struct {
	ChallengeID string `json:"challenge_id"`
	Question    string `json:"question"`
}
