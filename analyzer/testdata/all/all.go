package all

type shape interface {
	area() float64
}

type square struct {
	side float64
}

func (s *square) area() float64 { return s.side * s.side }

type circle struct {
	radius float64
}

func (c circle) area() float64 { return 3 * c.radius * c.radius }

func total(s *square, c circle) float64 { // want `Usage of '\*square' can be replaced by 'shape'` `Usage of 'circle' can be replaced by 'shape'`
	return s.area() + c.area()
}
