package markup

// Dataset is the tabular input contract for tables and charts: an ordered
// column-name sequence, an ordered row-label sequence, and a 2D value
// accessor. Column and row order are rendered exactly as declared.
type Dataset interface {
	Columns() []string
	RowLabels() []string
	Value(row, col int) string
}

// Grid is a simple in-memory Dataset. Rows are kept in insertion order.
type Grid struct {
	columns []string
	labels  []string
	cells   [][]string
}

func NewGrid(columns ...string) *Grid {
	return &Grid{columns: columns}
}

// AddRow appends a labeled row. An empty label is allowed; when every row
// label is empty the table renders without an index column. Missing values
// render as empty cells, extra values are dropped.
func (g *Grid) AddRow(label string, values ...string) {
	row := make([]string, len(g.columns))
	copy(row, values)
	g.labels = append(g.labels, label)
	g.cells = append(g.cells, row)
}

func (g *Grid) Columns() []string { return g.columns }

func (g *Grid) RowLabels() []string { return g.labels }

func (g *Grid) Value(row, col int) string {
	return g.cells[row][col]
}

var _ Dataset = (*Grid)(nil)
