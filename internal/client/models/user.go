package models

// User is a fleet-side account a booking is made under. The collection also
// drives password autofill when a booking form names a known user.
type User struct {
	Id       int64  `json:"id"`
	Team     string `json:"team"`
	User     string `json:"user"`
	Password string `json:"password"`
	Name     string `json:"name"`
	LastUsed int64  `json:"lastused"`
}

// WhatsAppTo is one notification target remembered by the server.
type WhatsAppTo struct {
	Team     string `json:"team"`
	To       string `json:"to"`
	LastUsed int64  `json:"lastused"`
}
