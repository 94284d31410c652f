package entity

// Item representa un ítem de estoque (papel, material) mantenido fuera del motor.
// Name se trata como único para mostrar y cruzar datos; Sector agrupa ítems en el reporte.
type Item struct {
	ID     string
	Name   string
	Unit   string
	Sector string
}
