package amqp

import (
	"encoding/json"
	"time"
)

// LedgerEventMessage notifies the sync worker that the ledger changed.
// It carries only the transaction ID and the event kind, the worker
// rebuilds the report from the database.
type LedgerEventMessage struct {
	TransactionID string    `json:"transaction_id"`
	Kind          string    `json:"kind"`
	Date          string    `json:"date"`
	Timestamp     time.Time `json:"timestamp"`
}

const (
	EventPosted   = "posted"
	EventReplaced = "replaced"
	EventDeleted  = "deleted"
)

func NewLedgerEventMessage(transactionID, kind, date string) *LedgerEventMessage {
	return &LedgerEventMessage{
		TransactionID: transactionID,
		Kind:          kind,
		Date:          date,
		Timestamp:     time.Now(),
	}
}

func (m *LedgerEventMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func LedgerEventMessageFromJSON(data []byte) (*LedgerEventMessage, error) {
	var msg LedgerEventMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
