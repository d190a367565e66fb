package i18n

// Key identifies a translatable message.
type Key string

// Server responses
const (
	KeyContactSent        Key = "contact.sent"
	KeyInvalidFormData    Key = "contact.invalid_form_data"
	KeyInvalidRequest     Key = "contact.invalid_request"
	KeyEmailConfigError   Key = "contact.email_config_error"
	KeyUnknownSendError   Key = "contact.unknown_send_error"
	KeyTooManyRequests    Key = "contact.too_many_requests"
	KeySMTPHealthy        Key = "smtp.healthy"
	KeySMTPUnhealthy      Key = "smtp.unhealthy"
	KeyErrAuth            Key = "smtp.error.auth"
	KeyErrConnRefused     Key = "smtp.error.conn_refused"
	KeyErrTimeout         Key = "smtp.error.timeout"
	KeyErrUnknown         Key = "smtp.error.unknown"
	KeyNameTooShort       Key = "validation.name_too_short"
	KeyInvalidEmail       Key = "validation.invalid_email"
	KeyMessageTooShort    Key = "validation.message_too_short"
	KeyFieldRequired      Key = "validation.required"
	KeyUnsupportedLang    Key = "validation.unsupported_language"
	KeyClientSuccess      Key = "form.success"
	KeyClientError        Key = "form.error"
	KeyClientSending      Key = "form.sending"
	KeyClientBusy         Key = "form.busy"
	KeyAckSubject         Key = "mail.ack.subject"
	KeyAckGreeting        Key = "mail.ack.greeting"
	KeyAckBody            Key = "mail.ack.body"
	KeyAckThanks          Key = "mail.ack.thanks"
	KeyAckTeam            Key = "mail.ack.team"
	KeyAckTagline         Key = "mail.ack.tagline"
	KeyOwnerSubject       Key = "mail.owner.subject"
	KeyOwnerTitle         Key = "mail.owner.title"
	KeyOwnerDetails       Key = "mail.owner.details"
	KeyOwnerName          Key = "mail.owner.name"
	KeyOwnerMessage       Key = "mail.owner.message"
	KeyOwnerFooter        Key = "mail.owner.footer"
	KeyMissingSMTPConfig  Key = "smtp.missing_config"
	KeyUnknownSMTPFailure Key = "smtp.unknown_failure"
)

var tables = map[Language]map[Key]string{
	PT: {
		KeyContactSent:        "Mensagem enviada com sucesso! Verifique sua caixa de entrada e spam.",
		KeyInvalidFormData:    "Dados de formulário inválidos",
		KeyInvalidRequest:     "Pedido inválido. Verifique os dados enviados.",
		KeyEmailConfigError:   "Erro na configuração de email do servidor. Nossa equipa foi notificada.",
		KeyUnknownSendError:   "Erro desconhecido ao enviar email",
		KeyTooManyRequests:    "Demasiados pedidos. Tente novamente mais tarde.",
		KeySMTPHealthy:        "SMTP configurado corretamente",
		KeySMTPUnhealthy:      "SMTP não configurado corretamente",
		KeyErrAuth:            "Erro de autenticação SMTP. Verifique suas credenciais de email.",
		KeyErrConnRefused:     "Não conseguimos conectar ao servidor de email. Tente novamente mais tarde.",
		KeyErrTimeout:         "Timeout na conexão com o servidor. Tente novamente.",
		KeyErrUnknown:         "Erro ao enviar email. Nossa equipa foi notificada.",
		KeyNameTooShort:       "O nome deve ter pelo menos 2 caracteres",
		KeyInvalidEmail:       "Email inválido",
		KeyMessageTooShort:    "A mensagem deve ter pelo menos 10 caracteres",
		KeyFieldRequired:      "Campo obrigatório",
		KeyUnsupportedLang:    "Idioma não suportado",
		KeyClientSuccess:      "Mensagem enviada com sucesso! Em breve, a nossa equipa entrará em contacto.",
		KeyClientError:        "Erro ao enviar a mensagem. Por favor, tente novamente.",
		KeyClientSending:      "A Enviar...",
		KeyClientBusy:         "Já existe um envio em curso.",
		KeyAckSubject:         "Obrigado pelo seu interesse - AgroFlow",
		KeyAckGreeting:        "Olá %s,",
		KeyAckBody:            "Recebemos sua solicitação de demonstração e agradecemos o seu interesse na AgroFlow.\n\nNossa equipa entrará em contacto consigo em breve para agendar uma demonstração personalizada do nosso sistema de irrigação inteligente.\n\nEstamos ansiosos para mostrar como podemos ajudar a otimizar a sua produção agrícola de forma sustentável.",
		KeyAckThanks:          "Obrigado pela confiança!",
		KeyAckTeam:            "Equipa AgroFlow",
		KeyAckTagline:         "Irrigação Inteligente",
		KeyOwnerSubject:       "Nova Solicitação de Demonstração - %s",
		KeyOwnerTitle:         "Nova Solicitação de Demonstração",
		KeyOwnerDetails:       "Detalhes do Contacto:",
		KeyOwnerName:          "Nome",
		KeyOwnerMessage:       "Mensagem:",
		KeyOwnerFooter:        "Esta mensagem foi enviada através do formulário de contacto da AgroFlow.",
		KeyMissingSMTPConfig:  "Variáveis de ambiente faltando: %s",
		KeyUnknownSMTPFailure: "Erro desconhecido na configuração SMTP",
	},
	EN: {
		KeyContactSent:        "Message sent successfully! Check your inbox and spam folder.",
		KeyInvalidFormData:    "Invalid form data",
		KeyInvalidRequest:     "Invalid request. Please check the submitted data.",
		KeyEmailConfigError:   "Error in server email configuration. Our team has been notified.",
		KeyUnknownSendError:   "Unknown error sending email",
		KeyTooManyRequests:    "Too many requests. Please try again later.",
		KeySMTPHealthy:        "SMTP configured correctly",
		KeySMTPUnhealthy:      "SMTP not configured correctly",
		KeyErrAuth:            "SMTP authentication error. Please check your email credentials.",
		KeyErrConnRefused:     "Could not connect to email server. Please try again later.",
		KeyErrTimeout:         "Email server connection timeout. Please try again.",
		KeyErrUnknown:         "Error sending email. Our team has been notified.",
		KeyNameTooShort:       "Name must be at least 2 characters",
		KeyInvalidEmail:       "Invalid email address",
		KeyMessageTooShort:    "Message must be at least 10 characters",
		KeyFieldRequired:      "This field is required",
		KeyUnsupportedLang:    "Unsupported language",
		KeyClientSuccess:      "Message sent successfully! Our team will be in touch shortly.",
		KeyClientError:        "Error sending message. Please try again.",
		KeyClientSending:      "Sending...",
		KeyClientBusy:         "A submission is already in progress.",
		KeyAckSubject:         "Thank you for your interest - AgroFlow",
		KeyAckGreeting:        "Hello %s,",
		KeyAckBody:            "We received your demo request and appreciate your interest in AgroFlow.\n\nOur team will contact you shortly to schedule a personalized demonstration of our smart irrigation system.\n\nWe look forward to showing you how we can help optimize your agricultural production sustainably.",
		KeyAckThanks:          "Thank you for your trust!",
		KeyAckTeam:            "AgroFlow Team",
		KeyAckTagline:         "Smart Irrigation",
		KeyOwnerSubject:       "New Demo Request - %s",
		KeyOwnerTitle:         "New Demo Request",
		KeyOwnerDetails:       "Contact Details:",
		KeyOwnerName:          "Name",
		KeyOwnerMessage:       "Message:",
		KeyOwnerFooter:        "This message was sent through the AgroFlow contact form.",
		KeyMissingSMTPConfig:  "Missing environment variables: %s",
		KeyUnknownSMTPFailure: "Unknown SMTP configuration error",
	},
}
