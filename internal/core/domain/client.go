package domain

import "github.com/shopspring/decimal"

// DefaultClientID is used for records created before clients existed.
const DefaultClientID = "default"

// Client is a customer of the business.
type Client struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Address      string          `json:"address"`
	DefaultMiles decimal.Decimal `json:"defaultMiles"`
}

// ResolveClient finds a client by id. Unknown ids fall back to the first
// client, and an empty list yields a placeholder client.
func ResolveClient(clients []Client, id string) Client {
	for _, c := range clients {
		if c.ID == id {
			return c
		}
	}
	if len(clients) > 0 {
		return clients[0]
	}
	return Client{ID: DefaultClientID, Name: "Unknown"}
}
