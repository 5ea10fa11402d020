package alias

// Interactions standardizes the names of edge/interaction kinds recognized
// across topology and non-trophic layers.
var Interactions = mustNew(map[string][]string{
	"trophic":      {"feeding", "predation", "consumption"},
	"competition":  {"comp", "space_competition"},
	"facilitation": {"facil", "mutualism"},
	"interference": {"interf", "predator_interference"},
	"refuge":       {"shelter", "prey_refuge"},
})

// Parameters standardizes the names of blueprint/property parameters.
var Parameters = mustNew(map[string][]string{
	"topology":         {"A", "adjacency"},
	"intensity":        {"I", "strength"},
	"functional_form":  {"F", "form", "shape"},
	"connectance":      {"C", "conn"},
	"number_of_links":  {"L", "n_links", "nlinks"},
	"symmetry":         {"sym", "symmetric"},
})

func mustNew(table map[string][]string) *Map {
	m, err := New(table)
	if err != nil {
		// These tables are package-level constants authored once; a failure
		// here is a programming error caught immediately by tests, not a
		// runtime condition callers can recover from.
		panic(err)
	}
	return m
}
