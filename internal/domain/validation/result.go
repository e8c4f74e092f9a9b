// Package validation agrupa las reglas de validación de formularios y entidades del inventario.
//
// Todas las funciones son puras y totales: una entrada inválida produce un Result con mensajes
// listos para mostrar, nunca un error ni un panic. Pueden invocarse concurrentemente.
package validation

// Result es la forma de retorno de toda validación. IsValid es true si y solo si Errors está vacío.
type Result struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// Valid devuelve un resultado sin errores.
func Valid() Result {
	return Result{IsValid: true, Errors: []string{}}
}

// Invalid devuelve un resultado con los mensajes dados, en orden.
func Invalid(errs ...string) Result {
	return newResult(errs)
}

func newResult(errs []string) Result {
	if errs == nil {
		errs = []string{}
	}
	return Result{IsValid: len(errs) == 0, Errors: errs}
}

// collector acumula mensajes en el orden en que se evalúan las reglas.
type collector struct {
	errs []string
}

func (c *collector) add(msg string) { c.errs = append(c.errs, msg) }

func (c *collector) merge(r Result) { c.errs = append(c.errs, r.Errors...) }

func (c *collector) result() Result { return newResult(c.errs) }
