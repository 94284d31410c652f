package pdf

import "golang.org/x/text/encoding/charmap"

// maxCellRunes ancho máximo de una celda de texto antes de truncar.
const maxCellRunes = 30

// truncate corta s a max runas, terminando en "..." cuando se excede.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// pdfText reemplaza por '?' las runas que la fuente base (Windows-1252) no puede dibujar.
func pdfText(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if _, ok := charmap.Windows1252.EncodeRune(r); !ok {
			r = '?'
		}
		out = append(out, r)
	}
	return string(out)
}
