/*
Package export renders payment histories as CSV.

PURPOSE:
  Produces the spreadsheet the school hands to its accountant. Two
  variants: the student-scoped history (the columns of the source format,
  "ID Pago,Descripción,Monto,Fecha,Categoría,Estado") and the global
  listing with an extra leading "Alumno" column.

FORMAT:
  UTF-8 with a byte-order mark so Excel detects the encoding, fields quoted
  per RFC 4180 by encoding/csv, and amounts emitted as raw decimal numbers,
  never currency-formatted.
*/
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/matricula/tuition-engine/tuition"
)

var header = []string{"ID Pago", "Descripción", "Monto", "Fecha", "Categoría", "Estado"}

// utf8BOM makes Excel pick up the accented Spanish headers correctly.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// StudentPayments writes the student-scoped CSV variant.
func StudentPayments(w io.Writer, payments []tuition.Payment) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, p := range payments {
		if err := cw.Write(row(p)); err != nil {
			return fmt.Errorf("failed to write payment %s: %w", p.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// AllPayments writes the global CSV variant with a leading student-name
// column. names maps student id to display name; payments of unknown
// students fall back to the raw id.
func AllPayments(w io.Writer, payments []tuition.Payment, names map[string]string) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{"Alumno"}, header...)); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, p := range payments {
		name, ok := names[p.StudentID]
		if !ok {
			name = p.StudentID
		}
		if err := cw.Write(append([]string{name}, row(p)...)); err != nil {
			return fmt.Errorf("failed to write payment %s: %w", p.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func row(p tuition.Payment) []string {
	return []string{
		p.ID,
		p.Description,
		p.Amount.String(),
		p.Date.String(),
		string(p.Category),
		string(p.Status),
	}
}
