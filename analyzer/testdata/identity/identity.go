package identity

type shape interface {
	area() float64
}

type square struct {
	side float64
}

func (s *square) area() float64 { return s.side * s.side }

func same(a, b *square) bool { // want `Usage of '\*square' can be replaced by 'shape'`
	return a == b
}

func describe(v any) float64 {
	switch s := v.(type) {
	case *square: // want `Usage of '\*square' can be replaced by 'shape'`
		return s.area()
	}

	return 0
}
