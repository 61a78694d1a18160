package explain

type shape interface {
	area() float64
}

type square struct {
	side float64
}

func (s *square) area() float64 { // want `Usage of '\*square' must keep its type \(st:def\)`
	return s.side * s.side
}

func (s *square) grow() { // want `Usage of '\*square' must keep its type \(st:def\)`
	s.side++
}

func enlarge(s *square) float64 { // want `Usage of '\*square' must keep its type \(st:mem\)`
	s.grow()

	return s.area()
}

func zero() float64 {
	var s *square // want `Usage of '\*square' must keep its type \(st:def\)`
	return s.area()
}

func total(s *square) float64 { // want `Usage of '\*square' can be replaced by 'shape'`
	return s.area()
}
