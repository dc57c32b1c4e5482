package domain

// CommandRequest is a slash command already authenticated and parsed by the transport.
type CommandRequest struct {
	Command     string `validate:"required,startswith=/"`
	Text        string
	UserID      string `validate:"required"`
	ChannelID   string
	ResponseURL string `validate:"omitempty,url"`
}

type ResponseType string

const (
	// Plain responses are rendered as bare text by the transport.
	Plain     ResponseType = ""
	Ephemeral ResponseType = "ephemeral"
	InChannel ResponseType = "in_channel"
)

type Attachment struct {
	Text string `json:"text"`
}

// Response is both the synchronous reply and the deferred reply payload.
type Response struct {
	Attachments  []Attachment `json:"attachments,omitempty"`
	ResponseType ResponseType `json:"response_type,omitempty"`
	Text         string       `json:"text,omitempty"`
}

// IsPlain reports whether the response should be written as bare text.
func (r Response) IsPlain() bool {
	return r.ResponseType == Plain && len(r.Attachments) == 0
}

func PlainText(text string) Response {
	return Response{Text: text}
}

func EphemeralText(text string) Response {
	return Response{ResponseType: Ephemeral, Text: text}
}
