package schema

// CatalogActorLanguageTable represents the 'catalog.actorlanguage' table
type CatalogActorLanguageTable struct {
	Table    string
	ActorID  string
	Language string
}

// CatalogActorLanguage is the schema definition for catalog.actorlanguage
var CatalogActorLanguage = CatalogActorLanguageTable{
	Table:    "catalog.actorlanguage",
	ActorID:  "actorid",
	Language: "language",
}
