package mailing

import (
	"bytes"
	"html/template"
)

var confirmSignUpTemplate = template.Must(template.New("confirm").Parse(`<p>Hello {{.Name}},</p>
<p>Follow this link to confirm your SmartCart account:</p>
<p><a href="{{.Link}}">Confirm your email</a></p>`))

// ConfirmSignUpBody renders the HTML body of the sign-up confirmation mail.
func ConfirmSignUpBody(name, link string) (string, error) {
	var buf bytes.Buffer
	err := confirmSignUpTemplate.Execute(&buf, struct {
		Name string
		Link string
	}{name, link})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
