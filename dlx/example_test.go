package dlx_test

import (
	"fmt"

	"github.com/katalvlaran/dlxdeals/dlx"
)

// Example builds a tiny 3x3 matrix where (row, col) holds an entry iff
// row+col is even, and prints which columns each row covers.
func Example() {
	rows := []any{1, 2, 3}
	cols := []any{1, 2, 3}
	m, err := dlx.NewMatrix(rows, cols, func(r, c any) bool {
		return (r.(int)+c.(int))%2 == 0
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	rowSeq, _ := m.Rows(m.Header())
	for r := range rowSeq {
		fmt.Printf("row %v covers:", r.Datum())
		for e := range m.RowEntries(r) {
			fmt.Printf(" %v", e.Col().Datum())
		}
		fmt.Println()
	}
	// Output:
	// row 1 covers: 1 3
	// row 2 covers: 2
	// row 3 covers: 1 3
}
