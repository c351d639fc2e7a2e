package model

const (
	TableName  = "devices"
	EntityName = "device"

	FieldID   = "id"
	FieldName = "name"
)

type Device struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}
