package mail

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
}

type HotLeadAlertData struct {
	LeadID   int
	Nome     string
	Cargo    string
	Whatsapp string
}
