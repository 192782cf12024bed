package control

import "github.com/san-kum/orbitlander/internal/dynamo"

type None struct{}

func NewNone() *None {
	return &None{}
}

func (n *None) Command(c dynamo.Craft, t float64) Command {
	return Command{}
}
