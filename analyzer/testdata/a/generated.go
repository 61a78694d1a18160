// Code generated by hand for tests. DO NOT EDIT.

package a

func generated(s *square) float64 {
	return s.area()
}
