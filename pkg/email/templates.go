package email

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"agroflow-backend/pkg/i18n"
)

// ContactEmailData holds the data for contact form emails
type ContactEmailData struct {
	SenderName  string
	SenderEmail string
	Message     string
}

// ownerEmailTemplate is the HTML template for the owner notification.
// html/template escapes every interpolated value.
const ownerEmailTemplate = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background: linear-gradient(135deg, #04653B 0%, #1A4D34 100%); padding: 30px; border-radius: 8px 8px 0 0; text-align: center;">
    <h1 style="color: #ffffff; margin: 0;">{{.Title}}</h1>
  </div>
  <div style="background: #f5f5f5; padding: 30px; border-radius: 0 0 8px 8px;">
    <h2 style="color: #04653B; margin-top: 0;">{{.Details}}</h2>
    <p><strong>{{.NameLabel}}:</strong> {{.SenderName}}</p>
    <p><strong>Email:</strong> <a href="mailto:{{.SenderEmail}}">{{.SenderEmail}}</a></p>
    <h3 style="color: #04653B; margin-top: 30px;">{{.MessageLabel}}</h3>
    <p style="background: #ffffff; padding: 15px; border-left: 4px solid #1EC5FA; border-radius: 4px;">
      {{range $i, $line := .MessageLines}}{{if $i}}<br>{{end}}{{$line}}{{end}}
    </p>
    <hr style="border: none; border-top: 1px solid #ddd; margin: 30px 0;">
    <p style="color: #666; font-size: 12px; margin: 0;">{{.Footer}}</p>
  </div>
</div>`

// ackEmailTemplate is the localized thank-you sent to the submitter.
const ackEmailTemplate = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background: linear-gradient(135deg, #04653B 0%, #1A4D34 100%); padding: 30px; border-radius: 8px 8px 0 0; text-align: center;">
    <h1 style="color: #ffffff; margin: 0;">AgroFlow</h1>
    <p style="color: #1EC5FA; margin: 10px 0 0 0;">{{.Tagline}}</p>
  </div>
  <div style="background: #f5f5f5; padding: 30px; border-radius: 0 0 8px 8px;">
    <p>{{.Greeting}}</p>
    <p style="color: #333; line-height: 1.6;">
      {{range $i, $line := .BodyLines}}{{if $i}}<br>{{end}}{{$line}}{{end}}
    </p>
    <div style="background: #ffffff; padding: 20px; border-radius: 8px; border-left: 4px solid #1EC5FA; margin: 30px 0;">
      <p style="margin: 0; color: #04653B; font-weight: bold;">{{.Thanks}}</p>
    </div>
    <p style="color: #333; margin-top: 30px;">
      {{.Team}}<br>
      <a href="https://agroflow.pt" style="color: #04653B; text-decoration: none;">www.agroflow.pt</a>
    </p>
    <hr style="border: none; border-top: 1px solid #ddd; margin: 30px 0;">
    <p style="color: #999; font-size: 12px; margin: 0; text-align: center;">Porto, Portugal</p>
  </div>
</div>`

var (
	ownerTmpl = template.Must(template.New("owner").Parse(ownerEmailTemplate))
	ackTmpl   = template.Must(template.New("ack").Parse(ackEmailTemplate))
)

// OwnerNotification renders the message sent to the site owner. The owner
// mailbox is Portuguese, so this email is always in PT.
func OwnerNotification(data ContactEmailData, to string) (Message, error) {
	var body bytes.Buffer
	err := ownerTmpl.Execute(&body, map[string]any{
		"Title":        i18n.Translate(i18n.KeyOwnerTitle, i18n.PT),
		"Details":      i18n.Translate(i18n.KeyOwnerDetails, i18n.PT),
		"NameLabel":    i18n.Translate(i18n.KeyOwnerName, i18n.PT),
		"MessageLabel": i18n.Translate(i18n.KeyOwnerMessage, i18n.PT),
		"Footer":       i18n.Translate(i18n.KeyOwnerFooter, i18n.PT),
		"SenderName":   data.SenderName,
		"SenderEmail":  data.SenderEmail,
		"MessageLines": splitLines(data.Message),
	})
	if err != nil {
		return Message{}, fmt.Errorf("failed to execute owner email template: %w", err)
	}

	text := fmt.Sprintf("%s: %s\nEmail: %s\n\n%s:\n%s\n",
		i18n.Translate(i18n.KeyOwnerName, i18n.PT), data.SenderName,
		data.SenderEmail,
		i18n.Translate(i18n.KeyOwnerMessage, i18n.PT), data.Message)

	return Message{
		To:       to,
		ReplyTo:  data.SenderEmail,
		Subject:  fmt.Sprintf(i18n.Translate(i18n.KeyOwnerSubject, i18n.PT), data.SenderName),
		HTMLBody: body.String(),
		TextBody: text,
	}, nil
}

// Acknowledgement renders the thank-you email for the submitter in lang.
func Acknowledgement(data ContactEmailData, lang i18n.Language) (Message, error) {
	var body bytes.Buffer
	err := ackTmpl.Execute(&body, map[string]any{
		"Tagline":   i18n.Translate(i18n.KeyAckTagline, lang),
		"Greeting":  fmt.Sprintf(i18n.Translate(i18n.KeyAckGreeting, lang), data.SenderName),
		"BodyLines": splitLines(i18n.Translate(i18n.KeyAckBody, lang)),
		"Thanks":    i18n.Translate(i18n.KeyAckThanks, lang),
		"Team":      i18n.Translate(i18n.KeyAckTeam, lang),
	})
	if err != nil {
		return Message{}, fmt.Errorf("failed to execute acknowledgement template: %w", err)
	}

	return Message{
		To:       data.SenderEmail,
		Subject:  i18n.Translate(i18n.KeyAckSubject, lang),
		HTMLBody: body.String(),
	}, nil
}

func splitLines(s string) []string {
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}
