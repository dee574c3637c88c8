package queue

// Subject for fire-and-forget webhook interaction events consumed by
// downstream analytics.
const SubjectVoiceInteractions = "voice.interactions"

// MessageQueue is the publish-side contract the webhook needs. This
// service only produces interaction events; consumers live downstream.
type MessageQueue interface {
	Publish(subject string, data []byte) error
	Close() error
}
