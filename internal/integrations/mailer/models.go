package mailer

// Message письмо в формате HTML
type Message struct {
	To       []string
	Subject  string
	HTMLBody string
}

// Settings параметры SMTP-сервера и отправителя
type Settings struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromName    string
	FromAddress string
}
