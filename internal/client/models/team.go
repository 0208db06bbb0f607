package models

// Team is one tenant: an isolated group of users and bookings sharing one
// set of credentials and settings. QRCode is only populated while a WhatsApp
// pairing stream is in progress.
type Team struct {
	Id         int64  `json:"id"`
	Team       string `json:"team"`
	Admin      bool   `json:"admin"`
	Password   string `json:"password"`
	Title      string `json:"title"`
	AddTime    bool   `json:"addtime"`
	WhatsApp   bool   `json:"whatsapp"`
	WhatsAppId string `json:"whatsappid"`
	WhatsAppTo string `json:"whatsappto"`
	QRCode     string `json:"qrcode"`
	Prefix     string `json:"prefix"`
	Planner    bool   `json:"planner"`
}
