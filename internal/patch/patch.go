// Package patch implementa la regla "si viene valor nuevo, usarlo; si no,
// conservar el existente" de todos los updates parciales.
//
// Punteros para PATCH real: nil = no tocar (campo ausente o null).
// Un puntero no nil siempre gana, aunque apunte al valor cero, así
// {"adopted": false} limpia un true.
package patch

// Value devuelve *incoming si viene seteado; si no, existing.
func Value[T any](existing T, incoming *T) T {
	if incoming == nil {
		return existing
	}
	return *incoming
}

// Apply pisa *dst con *incoming si incoming viene seteado.
func Apply[T any](dst *T, incoming *T) {
	if incoming != nil {
		*dst = *incoming
	}
}
