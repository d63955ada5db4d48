// Package ports defines the interfaces between the core and its adapters.
package ports

// ChartValue is one labeled segment of a chart.
type ChartValue struct {
	Label string
	Count int
	Color string // hex, e.g. "#2ECC71"
}

// ChartRenderer renders a two-segment donut visualization with a legend.
// The caller supplies both segments and gets styled terminal art back; the
// renderer keeps no state the caller can query.
type ChartRenderer interface {
	Donut(a, b ChartValue) string
}
