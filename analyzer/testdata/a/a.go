package a

import "fmt"

type shape interface {
	area() float64
}

type square struct {
	side float64
}

func (s *square) area() float64 { return s.side * s.side }

func (s *square) grow() { s.side++ }

func total(s *square) float64 { // want `Usage of '\*square' can be replaced by 'shape'`
	return s.area()
}

func newSquare() *square { // want `Usage of '\*square' can be replaced by 'shape'`
	return &square{side: 1}
}

func size() float64 {
	return newSquare().area()
}

func enlarge() float64 {
	s := newLargeSquare()
	s.grow()

	return s.area()
}

func newLargeSquare() *square {
	return &square{side: 2}
}

func same(a, b *square) bool {
	return a == b
}

func describe(v any) bool {
	_, ok := v.(*square)
	return ok
}

func Area(s *square) float64 {
	return s.area()
}

func show(s *square) { // want `Usage of '\*square' can be replaced by 'shape'`
	fmt.Println(s)
}

func local() float64 {
	var s *square = &square{} // want `Usage of '\*square' can be replaced by 'shape'`
	return s.area()
}

func ignored(s *square) float64 { //nolint:supertype
	return s.area()
}
