package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload returns an event payload as T.
// Payloads published on the MemoryBus are already T or *T. Raw JSON is
// decoded directly, and anything else goes through a JSON round trip.
func DecodePayload[T any](input interface{}) (T, error) {
	var result T

	switch v := input.(type) {
	case T:
		return v, nil
	case *T:
		if v == nil {
			return result, fmt.Errorf(ErrMsgNilPayloadFormat, result)
		}
		return *v, nil
	case json.RawMessage:
		return result, json.Unmarshal(v, &result)
	case []byte:
		return result, json.Unmarshal(v, &result)
	}

	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}
