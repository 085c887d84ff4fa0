package models

// WebhookEvent is the envelope the messaging platform POSTs to /webhook.
type WebhookEvent struct {
	Object string         `json:"object"`
	Entry  []WebhookEntry `json:"entry"`
}

// WebhookEntry groups the messaging events of one page.
type WebhookEntry struct {
	ID        string           `json:"id"`
	Time      int64            `json:"time"`
	Messaging []MessagingEvent `json:"messaging"`
}

// MessagingEvent is a single inbound event from one sender.
type MessagingEvent struct {
	Sender    Party            `json:"sender"`
	Recipient Party            `json:"recipient"`
	Timestamp int64            `json:"timestamp"`
	Message   *ReceivedMessage `json:"message,omitempty"`
}

// Party identifies a conversation participant.
type Party struct {
	ID string `json:"id"`
}

// ReceivedMessage carries either text or attachments, never meaningfully both.
type ReceivedMessage struct {
	MID         string       `json:"mid"`
	Text        string       `json:"text"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Attachment is non-text message content; the bot never inspects it
// beyond noticing it exists.
type Attachment struct {
	Type string `json:"type"`
}

// SendRequest is the payload for the platform's outbound send API.
type SendRequest struct {
	Recipient Party       `json:"recipient"`
	Message   SendMessage `json:"message"`
}

// SendMessage is the outbound message body.
type SendMessage struct {
	Text string `json:"text"`
}
