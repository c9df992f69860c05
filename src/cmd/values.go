package cmd

import (
	"fmt"
	"math"
	"strconv"

	"github.com/urfave/cli/v2"

	"bubblesort/src/dataset"
	"bubblesort/src/sort"
	"bubblesort/src/utils"
)

type kind string

const (
	kindInt    kind = "int"
	kindFloat  kind = "float"
	kindString kind = "string"
)

func typeFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "type",
		Aliases: []string{"t"},
		Value:   string(kindInt),
		Usage:   "element type of the values: int, float or string",
	}
}

func parseKind(s string) (kind, error) {
	switch k := kind(s); k {
	case kindInt, kindFloat, kindString:
		return k, nil
	case "":
		return kindInt, nil
	}
	return "", fmt.Errorf("unknown element type %q", s)
}

type result struct {
	Output []string
	Stats  sort.Stats
}

// sortSequence parses the fields of seq as values of kind k and sorts them.
// When tree is not nil every pass and exchange is added below it.
func sortSequence(k kind, seq dataset.Sequence, tree *utils.Node) (*result, error) {
	var (
		data   sort.Sorter
		format func(i int) string
	)
	switch k {
	case kindInt:
		ints := make(sort.IntArray, len(seq.Fields))
		for i, f := range seq.Fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%s: value %d: %w", seq.Name, i, err)
			}
			ints[i] = v
		}
		data = ints
		format = func(i int) string { return strconv.Itoa(ints[i]) }
	case kindFloat:
		floats := make(sort.Float64Array, len(seq.Fields))
		for i, f := range seq.Fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: value %d: %w", seq.Name, i, err)
			}
			// NaN has no place in a total order
			if math.IsNaN(v) {
				return nil, fmt.Errorf("%s: value %d: NaN is not comparable", seq.Name, i)
			}
			floats[i] = v
		}
		data = floats
		format = func(i int) string { return strconv.FormatFloat(floats[i], 'g', -1, 64) }
	case kindString:
		strs := make(sort.StringArray, len(seq.Fields))
		copy(strs, seq.Fields)
		data = strs
		format = func(i int) string { return strs[i] }
	default:
		return nil, fmt.Errorf("unknown element type %q", k)
	}

	var st sort.Stats
	if tree == nil {
		st = sort.SortStats(data)
	} else {
		var pass *utils.Node
		st = sort.SortTrace(data, func(s sort.Step) {
			if pass == nil {
				pass = tree.Add(fmt.Sprintf("pass %d", s.Pass+1))
			}
			switch s.Kind {
			case sort.StepExchange:
				// the pair is already exchanged: j holds the smaller value
				pass.Add(fmt.Sprintf("swap [%d] %s > [%d] %s", s.J, format(s.J+1), s.J+1, format(s.J)))
			case sort.StepPassEnd:
				pass.Name = fmt.Sprintf("pass %d: %d exchanges", s.Pass+1, s.Exchanges)
				pass = nil
			}
		})
	}
	recordStats(k, st)

	out := make([]string, data.Len())
	for i := range out {
		out[i] = format(i)
	}
	return &result{Output: out, Stats: st}, nil
}
