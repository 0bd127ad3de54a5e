package dto

type RegistrarEmpleadoRequest struct {
	Nombres   string `json:"nombres" validate:"required"`
	Apellidos string `json:"apellidos" validate:"required"`
	Telefono  string `json:"telefono" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	IDRol     int    `json:"id_rol" validate:"required"`
}

type ActualizarEmpleadoRequest struct {
	Nombres   *string `json:"nombres,omitempty"`
	Apellidos *string `json:"apellidos,omitempty"`
	Telefono  *string `json:"telefono,omitempty"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	IDRol     *int    `json:"id_rol,omitempty"`
}
