package domain

// Delivery describes a message handed to a notification channel.
type Delivery struct {
	Channel string `json:"channel"`
	Message string `json:"message"`
	Text    string `json:"text"`
}
