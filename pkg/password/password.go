// Package password encapsula el hash de contraseñas (bcrypt con sal aleatoria por llamada)
// y la generación de contraseñas iniciales.
package password

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// Cost costo bcrypt usado al hashear.
var Cost = bcrypt.DefaultCost

// MinGeneratedLength largo mínimo aceptado por Generate.
const MinGeneratedLength = 8

// MaxBytes largo máximo en bytes que bcrypt acepta. Se cuenta en bytes, no en runas.
const MaxBytes = 72

// ErrTooLong la contraseña supera MaxBytes.
var ErrTooLong = errors.New("password: supera 72 bytes")

const (
	lower   = "abcdefghijkmnopqrstuvwxyz"
	upper   = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	digits  = "23456789"
	symbols = "!#$%&*+-=?@"
)

// Hash devuelve el hash bcrypt de plain. Más de MaxBytes: ErrTooLong.
func Hash(plain string) (string, error) {
	if !FitsHash(plain) {
		return "", ErrTooLong
	}
	h, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", fmt.Errorf("password: hash: %w", err)
	}
	return string(h), nil
}

// FitsHash indica si plain cabe en un hash bcrypt.
func FitsHash(plain string) bool {
	return len(plain) <= MaxBytes
}

// Verify compara plain contra el hash en tiempo constante.
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// Generate crea una contraseña aleatoria de n caracteres con al menos una minúscula,
// una mayúscula, un dígito y un símbolo.
func Generate(n int) (string, error) {
	if n < MinGeneratedLength {
		return "", errors.New("password: largo insuficiente")
	}
	sets := []string{lower, upper, digits, symbols}
	all := lower + upper + digits + symbols

	out := make([]byte, n)
	for i := range out {
		set := all
		if i < len(sets) {
			set = sets[i]
		}
		c, err := pick(set)
		if err != nil {
			return "", err
		}
		out[i] = c
	}
	// Mezcla Fisher-Yates para que los caracteres obligatorios no queden al inicio.
	for i := len(out) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return "", fmt.Errorf("password: aleatorio: %w", err)
		}
		k := j.Int64()
		out[i], out[k] = out[k], out[i]
	}
	return string(out), nil
}

func pick(set string) (byte, error) {
	i, err := rand.Int(rand.Reader, big.NewInt(int64(len(set))))
	if err != nil {
		return 0, fmt.Errorf("password: aleatorio: %w", err)
	}
	return set[i.Int64()], nil
}
