package ws

import "encoding/json"

// Publish encodes v as JSON and broadcasts it to every connected client.
func (h *Hub) Publish(v any) error {
	if h == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	h.Broadcast(b)
	return nil
}
