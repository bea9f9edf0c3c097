package curve

import "strconv"

// catalog lists every stroke feature with its class, in canonical order.
// Classes: 1 横, 2 竖, 3 撇, 4 点, 5 折 (every turning stroke).
var catalog = []struct {
	name  string
	class int
}{
	{"横", 1}, {"提", 1},
	{"竖", 2}, {"竖钩", 2},
	{"撇", 3},
	{"点", 4}, {"捺", 4},
	{"横钩", 5}, {"横撇", 5}, {"横折", 5}, {"横折钩", 5}, {"横斜钩", 5},
	{"横折提", 5}, {"横折折", 5}, {"横折弯", 5}, {"横撇弯钩", 5}, {"横折弯钩", 5},
	{"横折折撇", 5}, {"横折折折", 5}, {"横折折折钩", 5},
	{"竖提", 5}, {"竖折", 5}, {"竖弯", 5}, {"竖弯钩", 5}, {"竖折撇", 5},
	{"竖折折钩", 5}, {"竖折折", 5},
	{"撇点", 5}, {"撇折", 5},
	{"弯钩", 5}, {"斜钩", 5},
}

var classOf = func() map[string]int {
	m := make(map[string]int, len(catalog))
	for _, f := range catalog {
		m[f.name] = f.class
	}

	return m
}()

// Features returns the catalog feature names in canonical order.
func Features() []string {
	out := make([]string, len(catalog))
	for i, f := range catalog {
		out[i] = f.name
	}

	return out
}

// ValidFeature reports whether name is in the catalog.
func ValidFeature(name string) bool {
	_, ok := classOf[name]

	return ok
}

// Classifier maps stroke features to small integer classes.
// The zero value uses the built-in catalog.
type Classifier struct {
	// Override replaces the class of individual features.
	Override map[string]int
}

// Classify returns the class of feature, or 0 when it is unknown.
func (c Classifier) Classify(feature string) int {
	if v, ok := c.Override[feature]; ok {
		return v
	}

	return classOf[feature]
}

// Label returns the class of feature as a decimal string ("1".."5"),
// which is how single strokes are named when they act as roots.
func (c Classifier) Label(feature string) string {
	return strconv.Itoa(c.Classify(feature))
}
