package handler

import (
	"strings"

	"github.com/iliyamo/kucinema/internal/model"
	"github.com/iliyamo/kucinema/internal/prompt"
)

const (
	seatFree  = "□"
	seatTaken = "■"
)

// seatMap draws the hall as a grid, rows A-E down and columns 1-5 across.
func seatMap(seats model.SeatVector) string {
	var b strings.Builder
	b.WriteString("   1 2 3 4 5\n")
	for r := 0; r < model.SeatRows; r++ {
		b.WriteString(model.SeatLabel(r * model.SeatCols)[:1])
		b.WriteString(" ")
		for c := 0; c < model.SeatCols; c++ {
			b.WriteString(" ")
			if seats[r*model.SeatCols+c] != 0 {
				b.WriteString(seatTaken)
			} else {
				b.WriteString(seatFree)
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func showLine(p *prompt.Prompt, n int, sh model.Show, extra string) {
	p.Printf("%d) %s %s | %s%s\n", n, sh.Date, sh.Time, sh.Title, extra)
}

func seatList(seats model.SeatVector) string {
	labels := seats.Labels()
	if len(labels) == 0 {
		return "(no seats)"
	}
	return strings.Join(labels, " ")
}
