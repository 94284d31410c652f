package entity

// Person es quien registra movimientos (autor opcional de una Transaction).
type Person struct {
	ID   string
	Name string
}

// Project se usa solo como valor predefinido de observación al registrar entradas.
type Project struct {
	ID   string
	Name string
}
