package dto

// TemplateMessageRequest renders the fixed template for one record.
// Empty fields fall back to the configured defaults.
type TemplateMessageRequest struct {
	Template  string `json:"template"`
	VideoLink string `json:"videoLink"`
}

// DraftMessageRequest asks the text generator for a message for one record.
type DraftMessageRequest struct {
	VideoLink string `json:"videoLink"`
}

// WhatsAppLinkRequest builds a deep link for edited text.
type WhatsAppLinkRequest struct {
	Text string `json:"text" binding:"required"`
}

// MessageResponse carries message text and, when requested, its deep link.
type MessageResponse struct {
	Text string `json:"text"`
	Link string `json:"link,omitempty"`
}
