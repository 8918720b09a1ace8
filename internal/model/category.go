package model

// Category is a syntactic class a candidate line can match. A line may
// match several categories at once.
type Category string

const (
	// CategoryNone marks a line that matched no category.
	CategoryNone Category = ""
	// CategoryAssignment matches lines containing '=' outside loop headers.
	CategoryAssignment Category = "assignment"
	// CategoryAddition matches lines containing '+'.
	CategoryAddition Category = "addition"
	// CategoryVariable matches primitive type keywords (int, long, char, WORD, BYTE, void).
	CategoryVariable Category = "variable"
	// CategoryReturn matches lines containing "return".
	CategoryReturn Category = "return"
	// CategoryLoop matches lines containing "for" or "while".
	CategoryLoop Category = "loop"
	// CategoryConditional matches lines containing "if" or "else".
	CategoryConditional Category = "conditional"
	// CategoryFunction matches call-shaped text: identifier followed by parentheses.
	CategoryFunction Category = "function"
	// CategoryTypedCast matches typed memory access casts (_DWORD, _BYTE, _QWORD).
	CategoryTypedCast Category = "_TYPE"
)

// AllCategories lists every category in evaluation order. The order breaks
// ties between equally weighted categories.
var AllCategories = []Category{
	CategoryAssignment,
	CategoryAddition,
	CategoryVariable,
	CategoryReturn,
	CategoryLoop,
	CategoryConditional,
	CategoryFunction,
	CategoryTypedCast,
}

// ClassifiedLine is a candidate line with its best matching category.
type ClassifiedLine struct {
	Text     string
	Category Category
	Strength int
}

// Selection is the outcome of one selector run over a query or block.
type Selection struct {
	Block      Block
	Candidates int
	Target     int
	Lines      []ClassifiedLine
}

// Texts returns the selected lines in selection order.
func (s Selection) Texts() []string {
	texts := make([]string, 0, len(s.Lines))
	for _, line := range s.Lines {
		texts = append(texts, line.Text)
	}

	return texts
}
