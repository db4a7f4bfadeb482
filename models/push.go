package models

// PushKeys holds the cryptographic material of a browser push subscription.
// The client forwards it verbatim; the keys are opaque at this layer.
type PushKeys struct {
	P256dh string `json:"p256dh"`
	Auth   string `json:"auth"`
}

// PushSubscription is the descriptor sent to the push subscribe endpoint.
type PushSubscription struct {
	Endpoint string   `json:"endpoint"`
	Keys     PushKeys `json:"keys"`
}
