package model

const (
	TableName  = "buildings"
	EntityName = "building"

	FieldID   = "id"
	FieldName = "name"
)

type Building struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}
