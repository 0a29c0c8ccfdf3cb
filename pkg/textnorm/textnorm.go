// Package textnorm normaliza texto antes de persistirlo o compararlo (rut, email, nombres).
package textnorm

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lower pasa s a minúsculas con reglas del español y recorta espacios.
// Un cases.Caser no es seguro para uso concurrente, por eso se crea por llamada.
func Lower(s string) string {
	return cases.Lower(language.Spanish).String(strings.TrimSpace(s))
}

// Email normaliza un correo para almacenarlo y compararlo sin distinguir mayúsculas.
func Email(s string) string {
	return Lower(s)
}
