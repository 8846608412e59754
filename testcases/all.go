package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in scene and image filenames.
var All = map[string][]TestCase{
	"basic":     basicCases,
	"culling":   cullingCases,
	"transform": transformCases,
	"clip":      clipCases,
	"camera":    cameraCases,
	"large":     largeCases,
}
