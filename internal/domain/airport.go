package domain

type Airport struct {
	Name      string
	Terminals int
	City      City
}
