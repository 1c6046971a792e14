package reducer

import "math"

// Row is a single emitted value, rows with the same key are reduced together.
type Row struct {
	Key   int
	Value float64
}

type Stat struct {
	Sum   float64
	Min   float64
	Max   float64
	Count int64
}

// Mean is zero for an empty group
func (s Stat) Mean() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.Sum / float64(s.Count)
}

// Stats groups rows by key and keeps sum, min, max and count per key.
type Stats struct {
	result map[int]*Stat
}

func NewStats() *Stats {
	return &Stats{
		result: make(map[int]*Stat),
	}
}

func (r *Stats) Reduce(row Row) {
	s, ok := r.result[row.Key]
	if !ok {
		s = &Stat{Min: math.Inf(1), Max: math.Inf(-1)}
		r.result[row.Key] = s
	}
	s.Sum += row.Value
	s.Min = math.Min(s.Min, row.Value)
	s.Max = math.Max(s.Max, row.Value)
	s.Count++
}

// Get returns the stat of the key, the zero Stat if nothing was reduced
func (r *Stats) Get(key int) Stat {
	s, ok := r.result[key]
	if !ok {
		return Stat{}
	}
	return *s
}
