package service

// EventPublisher pushes realtime events to connected clients.
type EventPublisher interface {
	Publish(payload map[string]interface{})
}

type nopPublisher struct{}

func (nopPublisher) Publish(map[string]interface{}) {}

func orNop(p EventPublisher) EventPublisher {
	if p == nil {
		return nopPublisher{}
	}
	return p
}
