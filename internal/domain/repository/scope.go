package repository

// Scope delimita explícitamente las operaciones del store de carretes al dueño
// indicado; se pasa como valor a cada método en lugar de estado ambiente.
type Scope struct {
	OwnerID string
}
