package mailer

import (
	"bytes"
	"fmt"
	"html/template"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

const verificationSubject = "Verify Your Email Address"

var verificationTemplate = template.Must(template.New("verification").Parse(`
<p>Welcome to Quickart!</p>
<p>Please verify your email address by clicking the link below. The link
expires in {{.ExpiryMinutes}} minutes.</p>
<p><a href="{{.Link}}">Verify my email</a></p>
<p>If you did not create an account, you can ignore this message.</p>
`))

// Sender delivers verification mail over SMTP. Dispatch is asynchronous:
// transport failures are logged, never returned, so a broken mail relay
// cannot fail a registration request.
type Sender struct {
	dialer        *gomail.Dialer
	from          string
	baseURL       string
	expiryMinutes int
	log           *zap.Logger
}

func NewSender(host string, port int, username, password, from, baseURL string,
	expiryMinutes int, log *zap.Logger) *Sender {
	return &Sender{
		dialer:        gomail.NewDialer(host, port, username, password),
		from:          from,
		baseURL:       baseURL,
		expiryMinutes: expiryMinutes,
		log:           log,
	}
}

func (s *Sender) SendVerification(email, token string) {
	go func() {
		if err := s.send(email, token); err != nil {
			s.log.Error("failed to send verification email",
				zap.String("email", email),
				zap.Error(err))
		}
	}()
}

func (s *Sender) send(email, token string) error {
	body, err := s.buildBody(token)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", verificationSubject)
	m.SetBody("text/html", body)

	return s.dialer.DialAndSend(m)
}

func (s *Sender) buildBody(token string) (string, error) {
	data := struct {
		Link          string
		ExpiryMinutes int
	}{
		Link:          VerificationLink(s.baseURL, token),
		ExpiryMinutes: s.expiryMinutes,
	}

	buf := new(bytes.Buffer)
	if err := verificationTemplate.Execute(buf, data); err != nil {
		return "", fmt.Errorf("failed to render verification email: %w", err)
	}

	return buf.String(), nil
}

// VerificationLink builds the link a user follows to hit the verify endpoint.
func VerificationLink(baseURL, token string) string {
	return fmt.Sprintf("%s/api/v1/user/verify/%s", baseURL, token)
}
