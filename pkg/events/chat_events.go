package events

import "time"

const TurnRecordedType = "TURN_RECORDED"

// NewTurnRecorded is emitted after a question/answer turn is persisted, so
// downstream consumers (memory summarization, external brokers) can react
// without sitting on the request path.
func NewTurnRecorded(chatSessionId, query, answer string) Event {
	return BaseEvent{
		Type: TurnRecordedType,
		Data: map[string]interface{}{
			"chat_session_id": chatSessionId,
			"query":           query,
			"answer":          answer,
		},
		OccurredAt: time.Now(),
	}
}
