package entity

// City ciudad de referencia para la dirección de una empresa (tabla de solo lectura).
type City struct {
	ID     int
	Name   string
	Region string
}
