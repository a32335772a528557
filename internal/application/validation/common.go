// Package validation contiene las reglas de forma de los payloads de ofertas y plantillas.
// Cada función devuelve el primer incumplimiento como domain.ErrInvalidInput con el mensaje
// que verá el cliente, o nil si el payload es válido.
package validation

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Payload es un cuerpo JSON decodificado sin tipar.
type Payload = map[string]interface{}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// IsBlank: ausente, null o string vacío tras recortar.
func IsBlank(v interface{}) bool {
	switch s := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(s) == ""
	}
	return false
}

// ToNumber acepta números JSON y strings numéricos.
func ToNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}

// ParseDate acepta RFC 3339 y YYYY-MM-DD.
func ParseDate(v interface{}) (time.Time, bool) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, false
	}
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ValidEmail comprueba la forma básica local@dominio.tld.
func ValidEmail(s string) bool {
	return emailRe.MatchString(strings.TrimSpace(s))
}

// startOfDay devuelve la fecha de calendario de t en su propia zona, sin convertirla.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
