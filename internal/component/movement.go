// component/movement.go
package component

import "go-bean-farm/pkg/utils"

// Position — позиция в пикселях мира
type Position struct {
	X, Y int
}

// At — короткий конструктор позиции
func At(x, y int) Position {
	return Position{X: x, Y: y}
}

// DistanceTo возвращает усечённое евклидово расстояние
func (p Position) DistanceTo(o Position) int {
	return utils.Distance(p.X, p.Y, o.X, o.Y)
}
