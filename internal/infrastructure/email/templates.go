package email

import (
	"bytes"
	"html/template"
)

var (
	resetTmpl = template.Must(template.New("reset").Parse(`<p>Hola {{.Name}},</p>
<p>Recibimos una solicitud para restablecer tu contraseña.</p>
<p><a href="{{.Link}}">Restablecer contraseña</a></p>
<p>El enlace vence en {{.Minutes}} minutos. Si no la solicitaste, ignora este correo.</p>`))

	welcomeTmpl = template.Must(template.New("welcome").Parse(`<p>Bienvenido a {{.AppName}}, {{.Name}}.</p>
<p>Se registró la empresa <strong>{{.Company}}</strong> (rut {{.RUT}}).</p>
<p>Tu usuario es <strong>{{.Email}}</strong> y tu contraseña inicial es <code>{{.Password}}</code>.</p>
<p>Te recomendamos cambiarla al ingresar.</p>`))
)

type resetData struct {
	Name    string
	Link    string
	Minutes int
}

type welcomeData struct {
	AppName  string
	Name     string
	Company  string
	RUT      string
	Email    string
	Password string
}

func render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
