package ports

// Store define el puerto de persistencia local clave-valor (DIP).
// Cada dataset lógico (catálogo, ventas, ajustes) vive bajo su propia clave
// versionada y se escribe como un único valor atómico.
type Store interface {
	// Save serializa y persiste el valor bajo la clave. Devuelve
	// domain.ErrQuotaExceeded si no hay espacio; en ese caso el valor
	// previamente persistido queda intacto.
	Save(key string, value any) error
	// Load deserializa el valor de la clave en out. Un dato ausente o
	// corrupto nunca es un error duro: devuelve found=false y el subsistema
	// cae a su valor por defecto.
	Load(key string, out any) (found bool, err error)
}
