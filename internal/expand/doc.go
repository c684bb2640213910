// Package expand owns the point classification and expansion engine.
//
// Responsibilities: pulling the label number out of a point label, mapping
// that number to a category through ordered inclusive ranges, looking up
// the category's displacement catalog, and materialising generated points.
// Key types: Point, Config, GeneratedPoint, Row.
//
// Dependency rule: this package performs no I/O. Reading points and writing
// rows live in internal/pointio; catalog files live in internal/config.
package expand
