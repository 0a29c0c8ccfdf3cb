// seed_cities genera la migración SQL que puebla la tabla cities
// a partir de un CSV de comunas codificado en ISO-8859-1 (id;nombre;región).
//
// Uso: go run ./cmd/seed_cities [ruta/comunas.csv]
// Por defecto busca comunas.csv en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/003_cities.sql
package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/backoffice-api/pkg/textnorm"
)

type city struct {
	id     int
	name   string
	region string
}

func main() {
	csvPath := "comunas.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	cities, err := parseCities(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	outPath := filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "migrations", "003_cities.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := writeSQL(out, cities); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d ciudades\n", outPath, len(cities))
}

// parseCities lee filas id;nombre;región (UTF-8). Omite la cabecera y las filas incompletas.
func parseCities(r io.Reader) ([]city, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var cities []city
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(rec) < 3 {
			continue
		}
		id, err := strconv.Atoi(strings.TrimSpace(rec[0]))
		if err != nil {
			continue // cabecera
		}
		name, region := textnorm.Lower(rec[1]), textnorm.Lower(rec[2])
		if name == "" {
			continue
		}
		cities = append(cities, city{id: id, name: name, region: region})
	}
	sort.Slice(cities, func(i, j int) bool { return cities[i].id < cities[j].id })
	return cities, nil
}

func writeSQL(w io.Writer, cities []city) error {
	if len(cities) == 0 {
		return errors.New("sin ciudades")
	}
	var b strings.Builder
	b.WriteString("-- Generado con cmd/seed_cities a partir del listado de comunas (ISO-8859-1).\n")
	b.WriteString("INSERT INTO cities (id, name, region) VALUES\n")
	for i, c := range cities {
		sep := ","
		if i == len(cities)-1 {
			sep = ""
		}
		fmt.Fprintf(&b, "    (%d, '%s', '%s')%s\n", c.id, escapeSQL(c.name), escapeSQL(c.region), sep)
	}
	b.WriteString("ON CONFLICT (id) DO NOTHING;\n\n")
	b.WriteString("SELECT setval(pg_get_serial_sequence('cities', 'id'), (SELECT max(id) FROM cities));\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
