// Package sort implements an in-place bubble sort that stops as soon as a
// full pass makes no exchange.
package sort

type Sorter interface {
	Len() int
	Less(i, j int) bool
	Swap(i, j int)
}

type IntArray []int

func (p IntArray) Len() int { return len(p) }

func (p IntArray) Less(i, j int) bool { return p[i] < p[j] }

func (p IntArray) Swap(i, j int) { p[i], p[j] = p[j], p[i] }

type Float64Array []float64

func (p Float64Array) Len() int { return len(p) }

func (p Float64Array) Less(i, j int) bool { return p[i] < p[j] }

func (p Float64Array) Swap(i, j int) { p[i], p[j] = p[j], p[i] }

type StringArray []string

func (p StringArray) Len() int { return len(p) }

func (p StringArray) Less(i, j int) bool { return p[i] < p[j] }

func (p StringArray) Swap(i, j int) { p[i], p[j] = p[j], p[i] }

// Stats counts the work done by one call.
type Stats struct {
	Passes      int
	Comparisons int
	Exchanges   int
	// EarlyExit is set when a pass without exchanges ended the sort
	// before the last pass was reached.
	EarlyExit bool
}

// StepKind tells what a Step reports.
type StepKind int

const (
	StepExchange StepKind = iota
	StepPassEnd
)

// Step is handed to the observer of SortTrace. For StepExchange, J is the
// left index of the exchanged pair; for StepPassEnd, Exchanges is the number
// of exchanges made by the pass that just ended.
type Step struct {
	Kind      StepKind
	Pass      int
	J         int
	Exchanges int
}

// Sort sorts data in place in non-decreasing order.
func Sort(data Sorter) {
	bubble(data, nil)
}

// SortStats is Sort, returning the counts of the run.
func SortStats(data Sorter) Stats {
	return bubble(data, nil)
}

// SortTrace is Sort, calling fn for every exchange and at the end of every
// pass.
func SortTrace(data Sorter, fn func(Step)) Stats {
	return bubble(data, fn)
}

func bubble(data Sorter, fn func(Step)) Stats {
	var st Stats
	n := data.Len()
	for i := 0; i < n-1; i++ {
		swapped := false
		exchanges := 0
		for j := 0; j < n-i-1; j++ {
			st.Comparisons++
			// strictly greater only: equal keys keep their order
			if data.Less(j+1, j) {
				data.Swap(j, j+1)
				swapped = true
				exchanges++
				if fn != nil {
					fn(Step{Kind: StepExchange, Pass: i, J: j})
				}
			}
		}
		st.Passes++
		st.Exchanges += exchanges
		if fn != nil {
			fn(Step{Kind: StepPassEnd, Pass: i, Exchanges: exchanges})
		}
		if !swapped {
			st.EarlyExit = i < n-2
			break
		}
	}
	return st
}

// IsSorted reports whether data is in non-decreasing order.
func IsSorted(data Sorter) bool {
	for i := data.Len() - 1; i > 0; i-- {
		if data.Less(i, i-1) {
			return false
		}
	}
	return true
}
