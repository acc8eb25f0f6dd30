package entity

// Revenue is one bar of the revenue chart.
type Revenue struct {
	Month   string
	Revenue int64
}
