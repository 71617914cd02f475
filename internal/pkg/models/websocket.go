package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// WSMessage is the envelope of every frame on the trip stream
type WSMessage struct {
	Event  string          `json:"event"`
	Data   json.RawMessage `json:"data"`
	SentAt time.Time       `json:"sent_at"`
}

// NewWSMessage encodes data into an envelope for event
func NewWSMessage(event string, data interface{}) (WSMessage, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return WSMessage{}, fmt.Errorf("error marshaling %s payload: %w", event, err)
	}
	return WSMessage{Event: event, Data: raw, SentAt: Now()}, nil
}

// WSErrorMessage is the payload of an error event, e.g. subscribe_failed
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
