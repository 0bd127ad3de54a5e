package model

// Rol is the role record attached to an employee by the remote API.
type Rol struct {
	ID     int    `json:"id_rol"`
	Nombre string `json:"nombre"` // Administrador | Ayudante
}

// Empleado is a staff member. The password is write-only: it travels in the
// registration request and never comes back in any response.
type Empleado struct {
	ID        string `json:"id_empleado"`
	Nombres   string `json:"nombres"`
	Apellidos string `json:"apellidos"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email"`
	Rol       Rol    `json:"id_rol"`
}
