package nonnil

type shape interface {
	area() float64
}

type square struct {
	side float64
}

func (s *square) area() float64 { return s.side * s.side }

type box struct {
	content *square // want `Usage of '\*square' can be replaced by 'shape'`
}

func (b *box) size() float64 {
	return b.content.area()
}

func zero() float64 {
	var s *square // want `Usage of '\*square' can be replaced by 'shape'`
	return s.area()
}
