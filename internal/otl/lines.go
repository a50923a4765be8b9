// Package otl reads, validates, and parses outline-formatted work logs.
//
// The format records a date line, one or more indented description lines,
// and a duration line with the worked minutes:
//
//	2025-03-01
//		Review deployment scripts
//		60
//
// Validation needs indexed access to the first, last, and adjacent lines,
// so the whole file is materialized up front. Parsing then yields work
// units lazily in file order.
package otl

import (
	"bufio"
	"os"
	"strings"
)

// ReadLines loads the work log, dropping blank lines and trailing
// whitespace per line. Leading indentation is preserved because it carries
// the line's role.
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for a read-only log.
			_ = cerr
		}
	}()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
