// Package rut valida y normaliza el RUT chileno (Rol Único Tributario) de las empresas.
package rut

import (
	"fmt"
	"strings"
	"unicode"
)

// Validate valida que el RUT (con o sin puntos/guion) tenga un dígito verificador correcto
// según el algoritmo módulo 11. Acepta "76.086.428-5", "76086428-5" o "760864285"; la K en cualquier caja.
func Validate(s string) error {
	body, dv, err := split(s)
	if err != nil {
		return err
	}
	expected, err := ComputeVerificationDigit(body)
	if err != nil {
		return err
	}
	if dv != expected {
		return fmt.Errorf("rut: dígito verificador inválido: esperado %c, recibido %c", expected, dv)
	}
	return nil
}

// ComputeVerificationDigit calcula el dígito verificador del cuerpo numérico del RUT.
// Devuelve '0'-'9' o 'k'.
func ComputeVerificationDigit(body string) (byte, error) {
	if len(body) < 6 || len(body) > 8 {
		return 0, fmt.Errorf("rut: el cuerpo debe tener entre 6 y 8 dígitos, se encontraron %d", len(body))
	}
	sum, weight := 0, 2
	for i := len(body) - 1; i >= 0; i-- {
		d := body[i]
		if d < '0' || d > '9' {
			return 0, fmt.Errorf("rut: carácter inválido %q", d)
		}
		sum += int(d-'0') * weight
		weight++
		if weight > 7 {
			weight = 2
		}
	}
	switch r := 11 - sum%11; r {
	case 11:
		return '0', nil
	case 10:
		return 'k', nil
	default:
		return byte('0' + r), nil
	}
}

// Normalize devuelve el RUT sin puntos, con guion y en minúsculas ("76086428-5", "10000013-k").
// Si no tiene forma de RUT se devuelve en minúsculas y sin espacios.
func Normalize(s string) string {
	body, dv, err := split(s)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return body + "-" + string(dv)
}

func split(s string) (body string, dv byte, err error) {
	var b strings.Builder
	for _, r := range s {
		switch {
		case unicode.IsDigit(r), r == 'k', r == 'K':
			b.WriteRune(unicode.ToLower(r))
		case r == '.', r == '-', unicode.IsSpace(r):
		default:
			return "", 0, fmt.Errorf("rut: carácter inválido %q", r)
		}
	}
	clean := b.String()
	if len(clean) < 2 {
		return "", 0, fmt.Errorf("rut: demasiado corto")
	}
	body, dv = clean[:len(clean)-1], clean[len(clean)-1]
	if strings.ContainsRune(body, 'k') {
		return "", 0, fmt.Errorf("rut: la K solo puede ser dígito verificador")
	}
	return body, dv, nil
}
