package components

const (
	// ColumnWidth is the fixed outer width of a rendered column
	ColumnWidth = 40

	// CardWidth is the fixed outer width of a rendered card
	CardWidth = 36

	// CardHeight is the fixed height of a rendered card
	CardHeight = 5

	// cardTitleMaxLength is where card titles get truncated
	cardTitleMaxLength = 30
)
