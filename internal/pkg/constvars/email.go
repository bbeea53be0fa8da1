package constvars

const (
	EmailSendBasicEmailSubjectFormat = "To: %s\r\nSubject: %s\r\n\r\n%s\r\n"
	EmailSendHTMLSubjectFormat       = "To: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s\r\n"

	EmailConfirmationSubject = "Your RadioX appointment is confirmed"
	EmailConfirmationSender  = "RadioX Medical Center"
	EmailConfirmationReplyTo = "appointments@radiox.com"
	EmailConfirmationMessage = "Your payment has been successfully processed. Your appointment is now confirmed."

	EmailConfirmationDateDisplayLayout = "Monday, January 2, 2006"
)

const RegexEmail = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`
