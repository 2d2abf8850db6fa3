package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/SNAndreatta/prode-master/config"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Prode Master <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F4F6F8; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #0B3D2E; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1B2B24; line-height: 1.6; }
			.content h2 { color: #0B3D2E; margin-top: 0; }
			.footer { background-color: #F4F6F8; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #2E8B57; color: #FFFFFF; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
			.info-box { background: #E8F5EE; padding: 15px; border-radius: 4px; border-left: 4px solid #2E8B57; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>PRODE MASTER</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 Prode Master. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// 1. Welcome / Signup
func SendWelcomeEmail(email, username string) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your account is ready. Pick a tournament, load your predictions before kickoff and climb the table.</p>
		<div class="info-box">Predictions lock at kickoff. Exact scores pay the most.</div>
	`, username)

	html := getEmailTemplate("Welcome to Prode Master", body)
	go SendEmail([]string{email}, "Welcome to Prode Master", html)
}

// 2. Tournament invite
func SendTournamentInviteEmail(email, inviterName, tournamentName string) {
	body := fmt.Sprintf(`
		<p>Hi,</p>
		<p><b>%s</b> invited you to join the tournament <b>%s</b>.</p>
		<div class="info-box">Log in and join from the tournaments page to start predicting.</div>
	`, inviterName, tournamentName)

	html := getEmailTemplate("You have been invited", body)
	go SendEmail([]string{email}, fmt.Sprintf("Invitation to %s", tournamentName), html)
}
