package domain

type Notification struct {
	Title string `json:"title,omitempty"`
	Body  string `json:"body,omitempty"`
	Image string `json:"image,omitempty"`
}

// InboundMessage is one push payload delivered while no foreground context is active.
type InboundMessage struct {
	MessageId    string            `json:"messageId,omitempty"`
	From         string            `json:"from,omitempty"`
	CollapseKey  string            `json:"collapseKey,omitempty"`
	Notification *Notification     `json:"notification,omitempty"`
	Data         map[string]string `json:"data,omitempty"`
}

func (m InboundMessage) IsEmpty() bool {
	return m.Notification == nil && len(m.Data) == 0
}
