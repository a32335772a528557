package entity

// User es la vista de solo lectura de un usuario. La colección la gestiona el servicio de
// autenticación; aquí sólo se usa para resolver referencias y datos de contacto por defecto.
type User struct {
	ID           string `json:"id" bson:"_id"`
	Name         string `json:"name" bson:"name"`
	Email        string `json:"email" bson:"email"`
	Phone        string `json:"phone,omitempty" bson:"phone,omitempty"`
	Role         Role   `json:"role" bson:"role"`
	Organisation string `json:"organisation,omitempty" bson:"organisation,omitempty"`
}
