package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

func (c SMTPConfig) Enabled() bool {
	return c.Host != "" && c.From != ""
}

// BookingReminderData feeds the reminder mail template.
type BookingReminderData struct {
	ClientName string
	Coach      string
	Date       string
	Time       string
	CourseType string
	Note       string
}

var reminderTemplate = template.Must(template.New("reminder").Parse(`<p>Hi {{.ClientName}},</p>
<p>This is a reminder of your session with <strong>{{.Coach}}</strong>
on <strong>{{.Date}}</strong> at <strong>{{.Time}}</strong> ({{.CourseType}}).</p>
{{if .Note}}<p>Note: {{.Note}}</p>{{end}}
<p>See you at the studio!</p>`))

func RenderReminder(data BookingReminderData) (string, error) {
	var body bytes.Buffer
	if err := reminderTemplate.Execute(&body, data); err != nil {
		return "", err
	}
	return body.String(), nil
}

// SendBookingReminderEmail delivers one reminder synchronously.
func SendBookingReminderEmail(cfg SMTPConfig, to string, data BookingReminderData) error {
	body, err := RenderReminder(data)
	if err != nil {
		return fmt.Errorf("render reminder: %w", err)
	}

	port, err := strconv.Atoi(cfg.Port)
	if err != nil {
		port = 587
	}

	m := gomail.NewMessage()
	m.SetHeader("From", cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Booking reminder: "+data.Date+" "+data.Time)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(cfg.Host, port, cfg.Username, cfg.Password)
	return d.DialAndSend(m)
}
