package schema

// CatalogSceneTable represents the 'catalog.scene' table
type CatalogSceneTable struct {
	Table       string
	ID          string
	FilmID      string
	LocationID  string
	SceneNumber string
	Description string
	TimeOfDay   string
	Interior    string
	CreatedAt   string
}

// CatalogScene is the schema definition for catalog.scene
var CatalogScene = CatalogSceneTable{
	Table:       "catalog.scene",
	ID:          "id",
	FilmID:      "filmid",
	LocationID:  "locationid",
	SceneNumber: "scenenumber",
	Description: "description",
	TimeOfDay:   "timeofday",
	Interior:    "interior",
	CreatedAt:   "createdat",
}

func (t CatalogSceneTable) Columns() []string {
	return []string{
		t.ID, t.FilmID, t.LocationID, t.SceneNumber, t.Description,
		t.TimeOfDay, t.Interior, t.CreatedAt,
	}
}
