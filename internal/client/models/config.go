package models

// Config is the server-owned singleton fetched on mount and after every
// login/logout. Never mutated locally.
type Config struct {
	Version        string `json:"version"`
	Name           string `json:"name"`
	Team           string `json:"team"`
	Interval       int64  `json:"interval"`
	Prefix         string `json:"prefix"`
	ClubId         string `json:"clubid"`
	Admin          bool   `json:"admin"`
	MyFleetVersion string `json:"myfleetVersion"`
	TimeZone       string `json:"timezone"`
	Title          string `json:"title"`
	WhatsApp       bool   `json:"whatsapp"`
	WhatsAppId     string `json:"whatsappid"`
	WhatsAppTo     string `json:"whatsappto"`
	AuthRequired   bool   `json:"authRequired"`
	Planner        bool   `json:"planner"`
}

// Login is the request and response body of POST /login. The server echoes
// the pair back with Status set; "ok" is the only success marker.
type Login struct {
	Team     string `json:"team"`
	Password string `json:"password"`
	Status   string `json:"status,omitempty"`
}
