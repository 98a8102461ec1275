package domain

import "fmt"

// ChartType is one of the chart kinds the advisor may recommend.
// Values are case-sensitive.
type ChartType string

// The closed set of chart kinds.
const (
	ChartTypeLine       ChartType = "Line"
	ChartTypeArea       ChartType = "Area"
	ChartTypeColumn     ChartType = "Column"
	ChartTypeBar        ChartType = "Bar"
	ChartTypePie        ChartType = "Pie"
	ChartTypeDonut      ChartType = "Donut"
	ChartTypeStackedBar ChartType = "Stacked Bar"
	ChartTypeHistogram  ChartType = "Histogram"
	ChartTypeScatter    ChartType = "Scatter"
)

var allChartTypes = []ChartType{
	ChartTypeLine,
	ChartTypeArea,
	ChartTypeColumn,
	ChartTypeBar,
	ChartTypePie,
	ChartTypeDonut,
	ChartTypeStackedBar,
	ChartTypeHistogram,
	ChartTypeScatter,
}

// AllChartTypes returns every valid chart type in canonical order.
// The returned slice is a copy and may be modified by the caller.
func AllChartTypes() []ChartType {
	out := make([]ChartType, len(allChartTypes))
	copy(out, allChartTypes)
	return out
}

// ChartTypeNames returns the canonical chart type names as strings,
// suitable for schema enums.
func ChartTypeNames() []string {
	names := make([]string, len(allChartTypes))
	for i, ct := range allChartTypes {
		names[i] = string(ct)
	}
	return names
}

// Valid reports whether the chart type belongs to the closed set.
func (c ChartType) Valid() bool {
	switch c {
	case ChartTypeLine, ChartTypeArea, ChartTypeColumn, ChartTypeBar, ChartTypePie,
		ChartTypeDonut, ChartTypeStackedBar, ChartTypeHistogram, ChartTypeScatter:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (c ChartType) String() string {
	return string(c)
}

// ParseChartType converts a string to a ChartType. No case folding or
// trimming is applied.
func ParseChartType(s string) (ChartType, error) {
	ct := ChartType(s)
	if !ct.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownChartType, s)
	}
	return ct, nil
}
