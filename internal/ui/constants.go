// Package ui holds layout helpers shared by the UI components.
package ui

const (
	// ScrollMargin is how many rows stay visible past the cursor.
	ScrollMargin = 3

	// BorderHeight is the rows (or columns) a rounded border takes.
	BorderHeight = 2

	// HeaderHeight is a panel title plus its separator.
	HeaderHeight = 2

	PanelOverhead = BorderHeight + HeaderHeight

	// MinProgressBarWidth is the narrowest bar worth drawing.
	MinProgressBarWidth = 5
)
