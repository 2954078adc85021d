package models

// Client is the stored shape of a client (clients.json / clients).
type Client struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	DefaultMiles float64 `json:"default_miles"`
}

// DefaultClients is the client list used before any client has been saved.
func DefaultClients() []Client {
	return []Client{{ID: "client_1", Name: "Client 1", Address: "Address\nCity, Postcode", DefaultMiles: 0}}
}
