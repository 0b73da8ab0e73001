package auth

import (
	"fmt"
	"net/smtp"

	"kalam-platform/config"
)

func SendOTPEmail(to string, otp string) error {
	from := config.SMTP_FROM
	password := config.SMTP_PASS
	host := config.SMTP_HOST
	port := config.SMTP_PORT

	auth := smtp.PlainAuth("", from, password, host)

	subject := "Your OTP Verification Code"
	body := fmt.Sprintf("Your OTP is: %s. It expires in 5 minutes.", otp)

	message := []byte("Subject: " + subject + "\r\n" +
		"From: " + from + "\r\n" +
		"To: " + to + "\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		body + "\r\n")

	err := smtp.SendMail(host+":"+port, auth, from, []string{to}, message)
	if err != nil {
		fmt.Println("❌ SMTP error:", err)
	}
	return err
}
