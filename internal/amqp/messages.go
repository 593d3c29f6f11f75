package amqp

import (
	"encoding/json"
	"time"
)

// TransactionRecordedMessage notifies downstream consumers (bookkeeping,
// reporting) that a transaction was persisted. It carries identifiers only;
// consumers fetch the full record from the store.
type TransactionRecordedMessage struct {
	ID        int64     `json:"id"`
	Kind      string    `json:"kind"`
	Timestamp time.Time `json:"timestamp"`
}

func NewTransactionRecordedMessage(id int64, kind string) *TransactionRecordedMessage {
	return &TransactionRecordedMessage{
		ID:        id,
		Kind:      kind,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes.
func (m *TransactionRecordedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// TransactionRecordedMessageFromJSON creates a message from JSON bytes.
func TransactionRecordedMessageFromJSON(data []byte) (*TransactionRecordedMessage, error) {
	var msg TransactionRecordedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
