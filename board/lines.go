package board

// Cleared is the result of removing the full rows of a field.
type Cleared struct {
	// Field is the compacted field, the same size as the input
	Field Matrix
	// Amount is the number of rows that were removed
	Amount int
}

// ClearLines removes every full row of field and inserts as many empty rows at the top. The rows
// that remain keep their relative order. Fullness is judged on field as passed in, so rows that
// move down are not checked again.
func ClearLines(field Matrix) Cleared {
	kept := make(Matrix, 0, len(field))
	for _, row := range field {
		if isFull(row) {
			continue
		}
		kept = append(kept, row)
	}

	cleared := len(field) - len(kept)
	out := make(Matrix, 0, len(field))
	for range cleared {
		out = append(out, make([]int, field.Cols()))
	}
	for _, row := range kept {
		out = append(out, append([]int(nil), row...))
	}
	return Cleared{Field: out, Amount: cleared}
}

func isFull(row []int) bool {
	for _, v := range row {
		if v == Empty {
			return false
		}
	}
	return true
}
